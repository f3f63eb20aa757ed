// Package mapcanvas bridges continuously-mutating pixel buffers into
// geo-referenced quads rendered by a GoGPU map pipeline.
//
// # Overview
//
// A map application often needs to project live, application-drawn
// content onto the map: radar sweeps, game overlays, video frames, or
// any off-screen drawable that is redrawn every frame. mapcanvas wraps
// such a buffer as a LiveRasterSource: the host attaches the source,
// the source samples the buffer once per frame, and the pixels are
// uploaded into a GPU texture stretched across four geographic corner
// coordinates.
//
// # Quick Start
//
//	// Register the drawable buffer under a name the source can resolve.
//	mapcanvas.RegisterBuffer("radar", myBuffer)
//
//	src, err := mapcanvas.NewLiveRasterSource(mapcanvas.SourceConfig{
//	    Buffer: "radar",
//	    Coordinates: mapcanvas.Quad{
//	        {Lon: -76.54, Lat: 39.18},
//	        {Lon: -76.52, Lat: 39.18},
//	        {Lon: -76.52, Lat: 39.17},
//	        {Lon: -76.54, Lat: 39.17},
//	    },
//	}, render.NewImageSource())
//
//	// The host calls OnAdd when the source joins the map, then
//	// Prepare once per frame on the render thread.
//
// # Architecture
//
// The library is organized into:
//   - Public API: LiveRasterSource, SourceConfig, Quad, Scheduler,
//     RasterBuffer, Registry
//   - render/: the default BaseSource (quad projection + texture upload)
//   - schedule/: a ticker-driven Scheduler for hosts without a frame loop
//
// # Update protocol
//
// Each frame the source compares the buffer's current dimensions with
// the dimensions known to the GPU texture. A size change forces a
// texture reallocation; otherwise the existing texture storage is
// refreshed in place, which is cheaper since the buffer is assumed to
// mutate every frame while animating. Transient invalid dimensions (a
// hidden drawable reporting zero size) skip the frame without tearing
// the source down, so the source recovers as soon as the buffer
// becomes valid again.
//
// # Concurrency
//
// LiveRasterSource is single-threaded by design: the host invokes
// Prepare synchronously on the render thread, once per frame, never
// concurrently with itself. Scheduler implementations must make Cancel
// synchronous so that no tick is delivered after it returns.
package mapcanvas
