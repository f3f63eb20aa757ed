package mapcanvas

import "time"

// RepeatForever requests an unbounded repeating registration from a
// Scheduler. A registration made with it ticks until Cancel.
const RepeatForever time.Duration = -1

// Ticket is an opaque handle representing an active repeating-render
// registration with a Scheduler. The zero Ticket is never issued.
type Ticket uint64

// Scheduler is the frame scheduling capability the host injects into a
// source. Modeling it as an interface (rather than a process-wide
// singleton) keeps sources testable against a fake scheduler.
type Scheduler interface {
	// RegisterRepeating registers a repeating re-render request for the
	// given duration. Pass RepeatForever for an unbounded registration.
	RegisterRepeating(d time.Duration) (Ticket, error)

	// Cancel invalidates a ticket. After Cancel returns, either no
	// further ticks are delivered or late ticks for the ticket are
	// ignored. Cancelling a zero or already-cancelled ticket is a no-op.
	Cancel(t Ticket)

	// RequestRerender asks the host for one immediate re-render outside
	// the repeating cadence.
	RequestRerender()
}

// AnimationHandle owns at most one repeating registration with a
// Scheduler. Play and Pause are idempotent and safe to call from host
// attach/detach hooks without the host tracking animation state.
//
// The zero AnimationHandle is not usable; bind a scheduler first.
type AnimationHandle struct {
	sched  Scheduler
	ticket Ticket
}

// Bind attaches the handle to a scheduler. Binding while playing pauses
// the existing registration first so no ticket leaks.
func (h *AnimationHandle) Bind(s Scheduler) {
	if h.Playing() {
		h.Pause()
	}
	h.sched = s
}

// Play registers an unbounded repeating render request and immediately
// requests one re-render so the first frame is not delayed until the
// next natural tick. Calling Play while already playing keeps the
// existing ticket; no second registration is created.
func (h *AnimationHandle) Play() error {
	if h.sched == nil {
		return ErrNilScheduler
	}
	if h.ticket != 0 {
		return nil
	}

	t, err := h.sched.RegisterRepeating(RepeatForever)
	if err != nil {
		return err
	}
	h.ticket = t
	h.sched.RequestRerender()
	return nil
}

// Pause cancels the stored ticket if one exists. Pausing a handle that
// is not playing is a no-op.
func (h *AnimationHandle) Pause() {
	if h.ticket == 0 || h.sched == nil {
		h.ticket = 0
		return
	}
	h.sched.Cancel(h.ticket)
	h.ticket = 0
}

// Playing reports whether a live registration exists.
func (h *AnimationHandle) Playing() bool {
	return h.ticket != 0
}
