package sird

import "sync/atomic"

// DayStats are the per-day totals reported by the engine.
type DayStats struct {
	// NewInfected counts cells that went Susceptible -> Infected.
	NewInfected int64
	// Infectious counts cells that were Infected when evaluated, before
	// that day's transition applied to them.
	Infectious int64
}

// Tally is a block-local counter owned by one worker.
type Tally struct {
	NewInfected int64
	Infectious  int64
}

// Record adds one evaluated cell to the tally.
func (t *Tally) Record(newlyInfected, wasInfectious bool) {
	if newlyInfected {
		t.NewInfected++
	}
	if wasInfectious {
		t.Infectious++
	}
}

// Aggregator collects the day's counters across concurrent workers.
type Aggregator struct {
	newInfected atomic.Int64
	infectious  atomic.Int64
}

// Record counts one evaluated cell directly with one atomic add per counter.
// Workers that keep a block-local Tally use Merge instead; both paths produce
// the same totals and may be mixed within a day.
func (a *Aggregator) Record(newlyInfected, wasInfectious bool) {
	if newlyInfected {
		a.newInfected.Add(1)
	}
	if wasInfectious {
		a.infectious.Add(1)
	}
}

// Merge folds a worker's local tally into the day's totals.
func (a *Aggregator) Merge(t Tally) {
	a.newInfected.Add(t.NewInfected)
	a.infectious.Add(t.Infectious)
}

// Drain returns the day's totals and resets both counters to zero.
func (a *Aggregator) Drain() DayStats {
	return DayStats{
		NewInfected: a.newInfected.Swap(0),
		Infectious:  a.infectious.Swap(0),
	}
}
