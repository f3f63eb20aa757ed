package mapcanvas

import "github.com/gogpu/gpucontext"

// BaseSource is the static image source a LiveRasterSource extends. It
// owns the quad geometry, the coordinate-to-mesh projection, and the
// generic texture upload primitive. The render package provides the
// default implementation; hosts with their own raster pipeline can
// supply one of their own.
type BaseSource interface {
	// SetCoordinates replaces the four geographic corner coordinates of
	// the quad, clockwise from top-left.
	SetCoordinates(q Quad) error

	// UploadTexture samples the buffer into the GPU texture. When
	// reallocate is true the texture storage must be recreated at the
	// buffer's current size before the pixels are written; otherwise
	// refreshing the existing storage in place is sufficient.
	UploadTexture(provider gpucontext.DeviceProvider, buf RasterBuffer, reallocate bool) error

	// FinishLoading signals the base source's loading protocol that the
	// source data is resolved and rendering may begin.
	FinishLoading()
}

// Host is the map/runtime side of the integration. The host owns the
// render loop trigger and the GPU context handle; mapcanvas receives
// both, it does not create them.
type Host interface {
	// Scheduler returns the host's shared animation scheduler, or nil
	// if the host has no frame loop.
	Scheduler() Scheduler

	// GPUContextProvider returns the shared GPU device handle textures
	// are created against.
	GPUContextProvider() gpucontext.DeviceProvider
}

// RenderSlot is the placement the host assigns to a source once the map
// knows where the quad lands. Prepare is a no-op until a slot exists,
// since without one there is not enough placement data to render.
type RenderSlot struct {
	// Zoom is the tile zoom level of the placement.
	Zoom uint8

	// X, Y are the tile coordinates at that zoom.
	X, Y uint32
}
