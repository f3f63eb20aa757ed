// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/mapcanvas"
)

// TestRegisterRepeating tests validation and ticket issuance.
func TestRegisterRepeating(t *testing.T) {
	s := NewTickScheduler(time.Millisecond, func() {})
	defer s.Stop()

	if _, err := s.RegisterRepeating(0); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("zero duration error = %v, want ErrInvalidDuration", err)
	}
	if _, err := s.RegisterRepeating(-5 * time.Second); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative duration error = %v, want ErrInvalidDuration", err)
	}

	t1, err := s.RegisterRepeating(mapcanvas.RepeatForever)
	if err != nil {
		t.Fatalf("RegisterRepeating failed: %v", err)
	}
	t2, err := s.RegisterRepeating(time.Minute)
	if err != nil {
		t.Fatalf("RegisterRepeating failed: %v", err)
	}

	if t1 == 0 || t2 == 0 {
		t.Error("tickets must be non-zero")
	}
	if t1 == t2 {
		t.Error("tickets must be unique")
	}
	if got := s.Active(); got != 2 {
		t.Errorf("Active() = %d, want 2", got)
	}
}

// TestCancel tests cancellation, including the zero and unknown ticket
// no-ops.
func TestCancel(t *testing.T) {
	s := NewTickScheduler(time.Millisecond, func() {})
	defer s.Stop()

	ticket, err := s.RegisterRepeating(mapcanvas.RepeatForever)
	if err != nil {
		t.Fatalf("RegisterRepeating failed: %v", err)
	}

	s.Cancel(ticket)
	if got := s.Active(); got != 0 {
		t.Errorf("Active() = %d, want 0 after cancel", got)
	}

	s.Cancel(ticket) // repeated cancel is a no-op
	s.Cancel(0)      // zero ticket is a no-op
	s.Cancel(999)    // unknown ticket is a no-op
}

// TestTickDelivery tests that a live registration produces rerender
// callbacks on the tick cadence.
func TestTickDelivery(t *testing.T) {
	fired := make(chan struct{}, 16)
	s := NewTickScheduler(time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	defer s.Stop()

	if _, err := s.RegisterRepeating(mapcanvas.RepeatForever); err != nil {
		t.Fatalf("RegisterRepeating failed: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("no rerender delivered within 5s")
	}
}

// TestNoTicksWithoutRegistrations tests that cancelled registrations
// silence the cadence.
func TestNoTicksWithoutRegistrations(t *testing.T) {
	fired := make(chan struct{}, 16)
	s := NewTickScheduler(time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	defer s.Stop()

	ticket, err := s.RegisterRepeating(mapcanvas.RepeatForever)
	if err != nil {
		t.Fatalf("RegisterRepeating failed: %v", err)
	}
	s.Cancel(ticket)

	// Drain anything delivered before the cancel took effect, then
	// verify silence.
	time.Sleep(10 * time.Millisecond)
	for len(fired) > 0 {
		<-fired
	}
	time.Sleep(20 * time.Millisecond)
	if len(fired) != 0 {
		t.Error("rerender fired with no live registrations")
	}
}

// TestFiniteRegistrationExpires tests that a finite duration drops its
// ticket on its own.
func TestFiniteRegistrationExpires(t *testing.T) {
	s := NewTickScheduler(time.Millisecond, func() {})
	defer s.Stop()

	if _, err := s.RegisterRepeating(5 * time.Millisecond); err != nil {
		t.Fatalf("RegisterRepeating failed: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for s.Active() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("finite registration did not expire within 5s")
		}
		time.Sleep(time.Millisecond)
	}
}

// TestRequestRerender tests the immediate out-of-cadence callback.
func TestRequestRerender(t *testing.T) {
	count := 0
	s := NewTickScheduler(time.Hour, func() { count++ })
	defer s.Stop()

	s.RequestRerender()
	s.RequestRerender()

	if count != 2 {
		t.Errorf("rerenders = %d, want 2", count)
	}
}

// TestStop tests idempotent shutdown and post-stop registration
// rejection.
func TestStop(t *testing.T) {
	s := NewTickScheduler(time.Millisecond, func() {})

	if _, err := s.RegisterRepeating(mapcanvas.RepeatForever); err != nil {
		t.Fatalf("RegisterRepeating failed: %v", err)
	}

	s.Stop()
	s.Stop() // idempotent

	if _, err := s.RegisterRepeating(mapcanvas.RepeatForever); !errors.Is(err, ErrStopped) {
		t.Errorf("post-stop error = %v, want ErrStopped", err)
	}
}
