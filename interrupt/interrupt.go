// Package interrupt provides the cooperative cancellation capability
// probed by the evaluator at each recursion step.
package interrupt

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInterrupted is the distinguished sentinel returned when an
// Interrupt reports that evaluation should stop. It must never be
// wrapped into a plain domain-error string; callers compare against
// it with errors.Is.
var ErrInterrupted = errors.New("interrupted")

// Interrupt is polled cooperatively by the evaluator. Implementations
// must be safe to call repeatedly and cheaply, since a long-running
// expression may probe it thousands of times.
type Interrupt interface {
	ShouldInterrupt() bool
}

// Test returns ErrInterrupted if the Interrupt fires, else nil.
func Test(i Interrupt) error {
	if i != nil && i.ShouldInterrupt() {
		return ErrInterrupted
	}
	return nil
}

// Never never interrupts. It is used by the uncancellable entry point.
type Never struct{}

// ShouldInterrupt always returns false.
func (Never) ShouldInterrupt() bool { return false }

// Timeout interrupts once a fixed duration has elapsed since it was
// created.
type Timeout struct {
	start    time.Time
	duration time.Duration
}

// NewTimeout returns a Timeout that fires after d has elapsed.
func NewTimeout(d time.Duration) *Timeout {
	return &Timeout{start: time.Now(), duration: d}
}

// ShouldInterrupt reports whether the configured duration has elapsed.
func (t *Timeout) ShouldInterrupt() bool {
	return time.Since(t.start) >= t.duration
}
