package mapcanvas

// SourceState is the lifecycle state of a LiveRasterSource.
type SourceState uint8

const (
	// StateUnloaded means the buffer reference is not yet resolved, or
	// resolution failed and the source awaits external reconfiguration.
	StateUnloaded SourceState = iota

	// StateLoaded means the buffer resolved and its initial dimensions
	// validated, but the source is not attached to a host yet.
	StateLoaded

	// StateAttached means the source is bound to a host and prepared
	// once per frame.
	StateAttached

	// StateDetached is terminal: the source was removed from its host
	// and holds no scheduler registration.
	StateDetached
)

// String returns a human-readable name for the state.
func (s SourceState) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoaded:
		return "loaded"
	case StateAttached:
		return "attached"
	case StateDetached:
		return "detached"
	default:
		return "unknown"
	}
}

// LiveRasterSource adapts a continuously-mutating RasterBuffer into a
// geo-referenced quad. It orchestrates load, play/pause, the per-frame
// prepare/upload protocol, and serialization, delegating geometry and
// the upload primitive to its BaseSource.
//
// LiveRasterSource is NOT safe for concurrent use. The host drives it
// from the render thread: Prepare runs synchronously once per frame and
// never concurrently with itself.
type LiveRasterSource struct {
	cfg      SourceConfig
	base     BaseSource
	registry *Registry

	host   Host
	buffer RasterBuffer
	slot   *RenderSlot

	tracker DimensionTracker
	anim    AnimationHandle
	events  events

	state         SourceState
	resizePending bool
}

// SourceOption configures a LiveRasterSource during creation.
type SourceOption func(*LiveRasterSource)

// WithRegistry resolves the buffer reference against a specific registry
// instead of the global one.
func WithRegistry(r *Registry) SourceOption {
	return func(s *LiveRasterSource) {
		s.registry = r
	}
}

// NewLiveRasterSource creates a source from its configuration and the
// base source it delegates geometry and uploads to.
func NewLiveRasterSource(cfg SourceConfig, base BaseSource, opts ...SourceOption) (*LiveRasterSource, error) {
	if base == nil {
		return nil, ErrNilBaseSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &LiveRasterSource{
		cfg:      cfg,
		base:     base,
		registry: globalBuffers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Subscribe registers a listener for ready and error events.
// Listeners run synchronously on the thread producing the event.
func (s *LiveRasterSource) Subscribe(l Listener) {
	s.events.subscribe(l)
}

// State returns the current lifecycle state.
func (s *LiveRasterSource) State() SourceState {
	return s.state
}

// Playing reports whether a live scheduler registration exists.
func (s *LiveRasterSource) Playing() bool {
	return s.anim.Playing()
}

// Load resolves the buffer reference and validates its initial
// dimensions. On failure the error is reported through the event
// surface and the source stays unloaded; there is no automatic retry.
// Loading an already-loaded source is a no-op.
func (s *LiveRasterSource) Load() error {
	if s.state != StateUnloaded {
		return nil
	}

	buf, err := s.registry.Resolve(s.cfg.Buffer)
	if err != nil {
		s.events.error(err)
		return err
	}

	w, h := buf.Width(), buf.Height()
	if InvalidDimensions(w, h) {
		cerr := &ConfigurationError{Width: w, Height: h}
		s.events.error(cerr)
		return cerr
	}

	s.buffer = buf
	s.state = StateLoaded
	s.base.FinishLoading()
	s.events.ready()

	Logger().Info("live raster source loaded",
		"buffer", s.cfg.Buffer, "width", w, "height", h)
	return nil
}

// OnAdd binds the source to a host, loading it first if needed. If the
// buffer resolved successfully the source applies its initial quad and,
// when configured to animate, starts the repeating render registration.
// Adding a source that is already attached is a no-op.
func (s *LiveRasterSource) OnAdd(host Host) {
	if s.host != nil || s.state == StateDetached {
		return
	}
	s.host = host
	s.anim.Bind(host.Scheduler())

	if s.state == StateUnloaded {
		if err := s.Load(); err != nil {
			return
		}
	}

	if s.cfg.Animated() {
		s.Play()
	}
	if err := s.base.SetCoordinates(s.cfg.Coordinates); err != nil {
		s.events.error(err)
	}
	s.state = StateAttached
}

// Play starts the repeating render registration with the host scheduler
// and requests one immediate re-render. Idempotent: a playing source
// keeps its existing ticket.
func (s *LiveRasterSource) Play() {
	if s.state == StateDetached {
		return
	}
	if err := s.anim.Play(); err != nil {
		s.events.error(err)
	}
}

// Pause cancels the scheduler registration if one exists. Pausing a
// source that is not playing is a no-op.
func (s *LiveRasterSource) Pause() {
	s.anim.Pause()
}

// AssignSlot installs the placement the host computed for the quad.
// Pass nil to withdraw placement; Prepare no-ops until a slot exists.
func (s *LiveRasterSource) AssignSlot(slot *RenderSlot) {
	s.slot = slot
}

// Prepare runs the per-frame update protocol on the render thread:
// read the buffer's current dimensions, validate them, decide between
// texture reallocation and in-place refresh, and delegate the upload.
//
// Invalid dimensions skip the frame (reported through the event
// surface) without tearing the source down; the buffer may become valid
// again on a later frame. A failed upload keeps the resize decision
// pending so the retry on the next frame does not lose it.
func (s *LiveRasterSource) Prepare() {
	if s.state != StateAttached || s.slot == nil {
		return
	}

	w, h := s.buffer.Width(), s.buffer.Height()
	if InvalidDimensions(w, h) {
		s.events.error(&ConfigurationError{Width: w, Height: h})
		return
	}

	if s.tracker.Update(w, h).Changed {
		s.resizePending = true
	}

	if err := s.base.UploadTexture(s.host.GPUContextProvider(), s.buffer, s.resizePending); err != nil {
		s.events.error(&UploadError{Err: err})
		return
	}

	s.tracker.Commit(w, h)
	if s.resizePending {
		Logger().Debug("texture reallocated", "width", w, "height", h)
	}
	s.resizePending = false
}

// SetCoordinates replaces the quad's geographic corners, delegating the
// projection to the base source.
func (s *LiveRasterSource) SetCoordinates(q Quad) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if err := s.base.SetCoordinates(q); err != nil {
		return err
	}
	s.cfg.Coordinates = q
	return nil
}

// Serialize produces a configuration-shaped snapshot sufficient to
// reconstruct an equivalent source. Runtime animation state is not
// captured: a reconstructed source defaults to the configured Animate
// flag, not to whether this one is currently playing.
func (s *LiveRasterSource) Serialize() SourceConfig {
	return SourceConfig{
		Type:        SourceTypeCanvas,
		Buffer:      s.cfg.Buffer,
		Animate:     s.cfg.Animate,
		Coordinates: s.cfg.Coordinates,
	}
}

// OnRemove detaches the source from its host. The scheduler
// registration is released unconditionally before the host reference,
// so no registration can leak past detachment. Detachment is terminal.
func (s *LiveRasterSource) OnRemove() {
	s.Pause()
	s.host = nil
	s.slot = nil
	s.state = StateDetached
}
