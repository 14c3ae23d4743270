package sird

import (
	"math"

	"epigrid/internal/core"
)

// Source supplies uniform draws in [0, 1). Each worker owns one.
type Source interface {
	Float64() float64
}

// Rule is the stochastic per-cell transition. Infection probabilities for
// every neighbor count are computed once.
type Rule struct {
	params Params
	infect [9]float64
}

// NewRule precomputes 1-(1-beta)^k for k in [0,8].
func NewRule(p Params) Rule {
	r := Rule{params: p}
	for k := range r.infect {
		r.infect[k] = 1 - math.Pow(1-p.Beta, float64(k))
	}
	return r
}

// InfectionProbability returns the chance that a susceptible cell with k
// infected neighbors becomes infected.
func (r Rule) InfectionProbability(k int) float64 {
	if k <= 0 {
		return 0
	}
	if k > 8 {
		k = 8
	}
	return r.infect[k]
}

// Next returns the next state of a cell with k infected neighbors. Draws are
// taken from src only when the outcome is uncertain: a susceptible cell with
// k > 0 takes one, an infected cell takes one, absorbing states take none.
func (r Rule) Next(s core.State, k int, src Source) (core.State, bool) {
	switch s {
	case core.Susceptible:
		if k == 0 {
			return core.Susceptible, false
		}
		return r.Apply(s, k, src.Float64(), 0)
	case core.Infected:
		return r.Apply(s, k, 0, src.Float64())
	}
	return s, false
}

// Apply is the pure form of Next with both draws supplied by the caller.
// draw1 decides infection, draw2 decides the fate of an infected cell.
func (r Rule) Apply(s core.State, k int, draw1, draw2 float64) (core.State, bool) {
	switch s {
	case core.Susceptible:
		if k > 0 && draw1 < r.InfectionProbability(k) {
			return core.Infected, true
		}
		return core.Susceptible, false
	case core.Infected:
		switch {
		case draw2 < r.params.Mu:
			return core.Dead, false
		case draw2 < r.params.Mu+r.params.Gamma:
			return core.Recovered, false
		}
		return core.Infected, false
	}
	return s, false
}
