// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/mapcanvas"
)

// Upload errors.
var (
	// ErrNilProvider is returned when no GPU context provider is available
	// at upload time.
	ErrNilProvider = errors.New("render: nil device provider")

	// ErrNoUploadPath is returned when the provider exposes neither a
	// gpucontext texture creator nor HAL device/queue handles.
	ErrNoUploadPath = errors.New("render: provider supports no texture upload path")

	// ErrNoTextureCreator is returned when the provider's draw context
	// has no texture creator bound.
	ErrNoTextureCreator = errors.New("render: draw context has no texture creator")

	// ErrNoHALHandles is returned when the provider advertises HAL access
	// but the handles are not hal.Device / hal.Queue.
	ErrNoHALHandles = errors.New("render: provider HAL handles have wrong types")
)

// textureDestroyer matches the Destroy method of host texture types.
type textureDestroyer interface {
	Destroy()
}

// halProvider is implemented by providers that expose raw wgpu HAL
// handles (e.g. gogpu contexts). HalDevice and HalQueue return
// hal.Device and hal.Queue behind any.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// ImageSource is the default mapcanvas.BaseSource: it owns the quad
// geometry, projects the corners to Web Mercator, and uploads buffer
// pixels into a GPU texture.
//
// ImageSource is NOT safe for concurrent use; the render thread owns it.
type ImageSource struct {
	quad mapcanvas.Quad
	mesh [4]Mercator

	// gpucontext-path texture. Held as any, the way host frameworks hand
	// them out; capabilities are asserted per operation.
	texture any

	// HAL-path texture.
	halTex quadTexture

	loaded  bool
	onReady func()
}

// NewImageSource creates an empty image source. Geometry arrives through
// SetCoordinates and pixels through UploadTexture.
func NewImageSource() *ImageSource {
	return &ImageSource{}
}

// OnReady registers a callback invoked when FinishLoading runs.
func (s *ImageSource) OnReady(fn func()) {
	s.onReady = fn
}

// Loaded reports whether FinishLoading has run.
func (s *ImageSource) Loaded() bool {
	return s.loaded
}

// SetCoordinates replaces the quad's geographic corners and reprojects
// the mesh.
func (s *ImageSource) SetCoordinates(q mapcanvas.Quad) error {
	if err := q.Validate(); err != nil {
		return err
	}
	s.quad = q
	s.mesh = projectQuad(q)
	return nil
}

// Coordinates returns the current geographic corners.
func (s *ImageSource) Coordinates() mapcanvas.Quad {
	return s.quad
}

// Mesh returns the Web Mercator projection of the quad corners,
// clockwise from top-left.
func (s *ImageSource) Mesh() [4]Mercator {
	return s.mesh
}

// FinishLoading marks the source data as resolved and fires the ready
// callback if one is registered.
func (s *ImageSource) FinishLoading() {
	s.loaded = true
	if s.onReady != nil {
		s.onReady()
	}
}

// UploadTexture samples the buffer into the GPU texture. When
// reallocate is true the texture storage is recreated at the buffer's
// current size; otherwise the existing storage is refreshed in place.
//
// The upload goes through the first capability the provider exposes:
// the gpucontext texture-creator path, then raw HAL handles.
func (s *ImageSource) UploadTexture(provider gpucontext.DeviceProvider, buf mapcanvas.RasterBuffer, reallocate bool) error {
	if provider == nil {
		return ErrNilProvider
	}

	w, h := buf.Width(), buf.Height()
	data := TightPixels(buf)

	if drawer, ok := provider.(gpucontext.TextureDrawer); ok {
		return s.uploadCreator(drawer, data, w, h, reallocate)
	}
	if hp, ok := provider.(halProvider); ok {
		return s.uploadHAL(hp, data, w, h, reallocate)
	}
	return ErrNoUploadPath
}

// Texture returns the gpucontext-path texture for drawing, if one has
// been created and implements gpucontext.Texture.
func (s *ImageSource) Texture() (gpucontext.Texture, bool) {
	tex, ok := s.texture.(gpucontext.Texture)
	return tex, ok
}

// uploadCreator uploads through the gpucontext texture-creator path.
// Refreshes update the existing texture in place; reallocations create
// a new texture and destroy the old one afterwards. NewTextureFromRGBA
// waits for the GPU internally, so by the time it returns no in-flight
// command buffer references the old texture and destroying it is safe.
func (s *ImageSource) uploadCreator(drawer gpucontext.TextureDrawer, data []byte, w, h int, reallocate bool) error {
	if !reallocate && s.texture != nil {
		if updater, ok := s.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(data); err != nil {
				return fmt.Errorf("render: texture update failed: %w", err)
			}
			return nil
		}
		// The host texture cannot update in place; recreate instead.
	}

	creator := drawer.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}

	tex, err := creator.NewTextureFromRGBA(w, h, data)
	if err != nil {
		return fmt.Errorf("render: NewTextureFromRGBA failed: %w", err)
	}

	// Buffer pixels are premultiplied alpha; mark the texture so the
	// host composites with the BlendFactorOne pipeline.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}

	if old := s.texture; old != nil {
		if destroyer, ok := old.(textureDestroyer); ok {
			destroyer.Destroy()
		}
	}
	s.texture = tex
	return nil
}

// uploadHAL uploads through raw wgpu HAL handles.
func (s *ImageSource) uploadHAL(hp halProvider, data []byte, w, h int, reallocate bool) error {
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return ErrNoHALHandles
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return ErrNoHALHandles
	}

	if reallocate {
		s.halTex.destroy(device)
	}
	//nolint:gosec // G115: dimensions validated positive by the caller
	if err := s.halTex.ensure(device, uint32(w), uint32(h)); err != nil {
		return err
	}
	s.halTex.write(queue, data)
	return nil
}

// Close releases GPU resources on the gpucontext path. HAL-path
// textures are owned by the device and must be released by the host
// through CloseHAL with the device handle.
func (s *ImageSource) Close() {
	if s.texture != nil {
		if destroyer, ok := s.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		s.texture = nil
	}
}

// CloseHAL releases the HAL-path texture against the owning device.
func (s *ImageSource) CloseHAL(device hal.Device) {
	s.halTex.destroy(device)
}

// Ensure ImageSource implements mapcanvas.BaseSource.
var _ mapcanvas.BaseSource = (*ImageSource)(nil)
