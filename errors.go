package mapcanvas

import (
	"errors"
	"fmt"
)

// Errors.
var (
	// ErrNilBaseSource is returned when a LiveRasterSource is constructed
	// without a base source to delegate geometry and uploads to.
	ErrNilBaseSource = errors.New("mapcanvas: nil base source")

	// ErrNilScheduler is returned when Play is requested but the attached
	// host provided no scheduler.
	ErrNilScheduler = errors.New("mapcanvas: host has no scheduler")
)

// ConfigurationError indicates the buffer reported dimensions that cannot
// back a texture. It is recoverable: the offending frame is skipped and
// the source retries on the next frame, since the buffer may legally
// report zero size while hidden and become valid again later.
type ConfigurationError struct {
	Width  int
	Height int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("mapcanvas: dimensions cannot be less than or equal to zero (%dx%d)", e.Width, e.Height)
}

// ResolutionError indicates the configured buffer reference does not name
// a registered buffer. It is recoverable only by external reconfiguration;
// the source stays unloaded.
type ResolutionError struct {
	Name string
}

func (e *ResolutionError) Error() string {
	return "mapcanvas: buffer not found: " + e.Name
}

// UploadError wraps a failure from the base source's texture upload
// primitive. The upload is not retried beyond the next natural frame.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return "mapcanvas: texture upload failed: " + e.Err.Error()
}

// Unwrap returns the underlying upload failure.
func (e *UploadError) Unwrap() error {
	return e.Err
}
