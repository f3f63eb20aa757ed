package mapcanvas

// InvalidDimensions reports whether a width/height pair cannot back a
// texture. A dimension is invalid when it is zero or negative; an
// externally-owned buffer may legally report such a size (e.g. a hidden
// drawable) at any point in its lifetime, so callers must check on every
// frame, not just at load time.
func InvalidDimensions(width, height int) bool {
	return width <= 0 || height <= 0
}

// ResizeDecision is the result of comparing the buffer's current
// dimensions against the dimensions last uploaded to the GPU.
type ResizeDecision struct {
	// Changed is true when the GPU-side texture storage must be
	// reallocated before the next upload. When false, refreshing the
	// existing storage in place is sufficient.
	Changed bool
}

// DimensionTracker holds the dimensions last known to the GPU texture
// and detects changes against them.
//
// The stored dimensions advance only through Commit, which callers
// invoke once per successful upload. A failed upload leaves the tracker
// untouched, so the "changed" signal survives for the retry on the next
// frame.
type DimensionTracker struct {
	lastWidth  int
	lastHeight int
	committed  bool
}

// Update compares the current buffer dimensions against the last
// committed ones. Before the first Commit there is no GPU texture at
// all, so Update always decides Changed.
func (t *DimensionTracker) Update(width, height int) ResizeDecision {
	if !t.committed {
		return ResizeDecision{Changed: true}
	}
	return ResizeDecision{Changed: width != t.lastWidth || height != t.lastHeight}
}

// Commit records the dimensions of a completed upload. Call exactly
// once per successful upload, never per Update.
func (t *DimensionTracker) Commit(width, height int) {
	t.lastWidth = width
	t.lastHeight = height
	t.committed = true
}

// Last returns the dimensions of the last successful upload and whether
// any upload has completed yet.
func (t *DimensionTracker) Last() (width, height int, ok bool) {
	return t.lastWidth, t.lastHeight, t.committed
}
