package mapcanvas

// EventKind tags the outcome a source reports to its listeners.
type EventKind uint8

const (
	// EventReady signals the source has loaded and its data is
	// available for rendering.
	EventReady EventKind = iota

	// EventError carries a recoverable failure scoped to this source.
	// The render loop is never interrupted: a misbehaving source cannot
	// halt rendering of others.
	EventError
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventReady:
		return "ready"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is the tagged result a source delivers to listeners instead of
// string-keyed event dispatch. Err is non-nil exactly when Kind is
// EventError.
type Event struct {
	Kind EventKind
	Err  error
}

// Listener receives source events. Listeners run synchronously on the
// thread that produced the event (the render thread for Prepare-time
// errors) and must not block.
type Listener func(Event)

// events fans source events out to registered listeners.
type events struct {
	listeners []Listener
}

// subscribe registers a listener.
func (e *events) subscribe(l Listener) {
	if l == nil {
		return
	}
	e.listeners = append(e.listeners, l)
}

// ready notifies listeners that the source data is available.
func (e *events) ready() {
	for _, l := range e.listeners {
		l(Event{Kind: EventReady})
	}
}

// error notifies listeners of a failure and logs it.
func (e *events) error(err error) {
	Logger().Warn("source error", "err", err)
	for _, l := range e.listeners {
		l(Event{Kind: EventError, Err: err})
	}
}
