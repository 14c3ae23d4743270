package core

import (
	"strconv"
	"time"
)

// Pacer reports when the next simulated day is due at a steady days-per-second
// rate, independent of the frame rate of the caller.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer constructs a Pacer targeting rate days per second.
func NewPacer(rate int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetRate(rate)
	p.accumulator = p.step
	return p
}

// SetRate changes the day rate. Non-positive rates fall back to 10.
func (p *Pacer) SetRate(rate int) {
	if rate <= 0 {
		rate = 10
	}
	p.step = time.Second / time.Duration(rate)
}

// Due reports whether one day should be simulated now.
func (p *Pacer) Due() bool {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}

// Stopwatch measures the wall-clock duration of a run.
type Stopwatch struct {
	start time.Time
	stop  time.Time
}

// StartStopwatch returns a running stopwatch.
func StartStopwatch() *Stopwatch { return &Stopwatch{start: time.Now()} }

// Stop freezes the elapsed time.
func (s *Stopwatch) Stop() { s.stop = time.Now() }

// Elapsed returns the time since start, or until Stop when stopped.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.stop.IsZero() {
		return time.Since(s.start)
	}
	return s.stop.Sub(s.start)
}

// FormatSeconds renders d as fixed-point seconds with '.' as the decimal
// separator regardless of locale.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}
