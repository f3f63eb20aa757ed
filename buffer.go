package mapcanvas

import "sync"

// RasterBuffer is the externally-owned, continuously mutating pixel
// surface a LiveRasterSource samples into a GPU texture.
//
// The buffer is never copied defensively: the source reads Pixels at
// upload time, so the provider must keep the contents stable for the
// duration of one upload call. Width and Height are queried live every
// frame and are never cached beyond it.
type RasterBuffer interface {
	// Width returns the current buffer width in pixels.
	Width() int

	// Height returns the current buffer height in pixels.
	Height() int

	// Pixels returns the current pixel data in RGBA format,
	// 4 bytes per pixel, row-major.
	Pixels() []byte

	// Stride returns the number of bytes per row. For tightly packed
	// buffers this is Width * 4, but rows may include padding.
	Stride() int
}

// globalBuffers is the default registry.
var globalBuffers = NewRegistry()

// Registry maps buffer reference names to live RasterBuffer instances.
//
// The host environment registers its drawable surfaces under stable
// names; source configurations refer to them by name and resolve the
// reference at load time. The registry holds non-owning references.
type Registry struct {
	mu      sync.RWMutex
	buffers map[string]RasterBuffer
}

// NewRegistry creates a new empty registry. Most code should use the
// global registry via RegisterBuffer and ResolveBuffer.
func NewRegistry() *Registry {
	return &Registry{buffers: make(map[string]RasterBuffer)}
}

// RegisterBuffer adds a buffer to the global registry.
// Registering a name that already exists replaces the previous entry.
func RegisterBuffer(name string, buf RasterBuffer) {
	globalBuffers.Register(name, buf)
}

// UnregisterBuffer removes a buffer from the global registry.
func UnregisterBuffer(name string) {
	globalBuffers.Unregister(name)
}

// ResolveBuffer looks up a buffer in the global registry.
func ResolveBuffer(name string) (RasterBuffer, error) {
	return globalBuffers.Resolve(name)
}

// Register adds a buffer to this registry.
func (r *Registry) Register(name string, buf RasterBuffer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.buffers == nil {
		r.buffers = make(map[string]RasterBuffer)
	}
	r.buffers[name] = buf
}

// Unregister removes a buffer from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.buffers, name)
}

// Resolve returns the buffer registered under name.
// Returns a *ResolutionError if no buffer is registered.
func (r *Registry) Resolve(name string) (RasterBuffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buf, ok := r.buffers[name]
	if !ok {
		return nil, &ResolutionError{Name: name}
	}
	return buf, nil
}
