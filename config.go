package mapcanvas

import "errors"

// SourceTypeCanvas identifies live raster sources in serialized form.
const SourceTypeCanvas = "canvas"

// SourceConfig describes a LiveRasterSource. It is consumed at
// construction and returned, reconstructed, by Serialize.
type SourceConfig struct {
	// Type is the source type identifier. Populated by Serialize;
	// ignored on input.
	Type string `json:"type"`

	// Buffer names the registered RasterBuffer to sample.
	Buffer string `json:"buffer"`

	// Animate controls whether the source registers with the host
	// scheduler for continuous re-renders. nil defaults to true.
	// Immutable after construction.
	Animate *bool `json:"animate,omitempty"`

	// Coordinates are the four geographic corners of the raster quad,
	// clockwise from top-left.
	Coordinates Quad `json:"coordinates"`
}

// ErrNoBufferReference is returned when the configuration names no buffer.
var ErrNoBufferReference = errors.New("mapcanvas: configuration has no buffer reference")

// Validate checks the configuration for construction-time errors.
func (c SourceConfig) Validate() error {
	if c.Buffer == "" {
		return ErrNoBufferReference
	}
	return c.Coordinates.Validate()
}

// Animated reports the configured animate flag with its default applied.
func (c SourceConfig) Animated() bool {
	if c.Animate == nil {
		return true
	}
	return *c.Animate
}
