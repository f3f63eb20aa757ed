// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package schedule

import (
	"errors"
	"sync"
	"time"

	"github.com/gogpu/mapcanvas"
)

// Scheduler errors.
var (
	// ErrStopped is returned when registering with a stopped scheduler.
	ErrStopped = errors.New("schedule: scheduler is stopped")

	// ErrInvalidDuration is returned for zero or negative durations other
	// than mapcanvas.RepeatForever.
	ErrInvalidDuration = errors.New("schedule: invalid repeat duration")
)

// TickScheduler is a time.Ticker-driven implementation of
// mapcanvas.Scheduler for hosts without a native frame loop. It fires
// the rerender callback once per tick interval while at least one
// registration is live.
//
// Cancel is synchronous with respect to attribution: a ticket removed
// under the scheduler's lock can never be charged for a later tick.
// TickScheduler is safe for concurrent use.
type TickScheduler struct {
	mu       sync.Mutex
	tickets  map[mapcanvas.Ticket]time.Time // expiry deadline; zero = unbounded
	next     mapcanvas.Ticket
	interval time.Duration
	rerender func()
	stopped  bool
	looping  bool

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewTickScheduler creates a scheduler that invokes rerender at the
// given interval while registrations exist.
func NewTickScheduler(interval time.Duration, rerender func()) *TickScheduler {
	return &TickScheduler{
		tickets:  make(map[mapcanvas.Ticket]time.Time),
		interval: interval,
		rerender: rerender,
		stopChan: make(chan struct{}),
	}
}

// RegisterRepeating registers a repeating re-render request. Pass
// mapcanvas.RepeatForever for an unbounded registration; a positive
// duration expires on its own after the deadline passes.
func (s *TickScheduler) RegisterRepeating(d time.Duration) (mapcanvas.Ticket, error) {
	if d != mapcanvas.RepeatForever && d <= 0 {
		return 0, ErrInvalidDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return 0, ErrStopped
	}

	s.next++
	t := s.next

	var deadline time.Time
	if d != mapcanvas.RepeatForever {
		deadline = time.Now().Add(d)
	}
	s.tickets[t] = deadline

	if !s.looping {
		s.looping = true
		s.wg.Add(1)
		go s.loop()
	}
	return t, nil
}

// Cancel invalidates a ticket. Cancelling a zero or unknown ticket is a
// no-op. After Cancel returns, no tick is attributed to the ticket.
func (s *TickScheduler) Cancel(t mapcanvas.Ticket) {
	if t == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tickets, t)
}

// RequestRerender invokes the rerender callback once, immediately,
// outside the repeating cadence.
func (s *TickScheduler) RequestRerender() {
	s.rerender()
}

// Active returns the number of live registrations.
func (s *TickScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}

// Stop halts the tick loop and rejects further registrations.
// Stop is idempotent and returns after the loop goroutine has exited.
func (s *TickScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		close(s.stopChan)
	})
	s.wg.Wait()
}

// loop fires rerender once per interval while registrations are live.
func (s *TickScheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case now := <-ticker.C:
			if s.fire(now) {
				s.rerender()
			}
		}
	}
}

// fire expires finite registrations and reports whether any live
// registration remains to render for.
func (s *TickScheduler) fire(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for t, deadline := range s.tickets {
		if !deadline.IsZero() && now.After(deadline) {
			delete(s.tickets, t)
		}
	}
	return len(s.tickets) > 0
}

// Ensure TickScheduler implements mapcanvas.Scheduler.
var _ mapcanvas.Scheduler = (*TickScheduler)(nil)
