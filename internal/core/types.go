package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// State is the epidemiological compartment of a single cell.
type State uint8

const (
	Susceptible State = iota
	Infected
	Recovered
	Dead
)

// NumStates is the number of defined cell states.
const NumStates = 4

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Susceptible:
		return "susceptible"
	case Infected:
		return "infected"
	case Recovered:
		return "recovered"
	case Dead:
		return "dead"
	}
	return "unknown"
}

// Valid reports whether s is one of the four defined states.
func (s State) Valid() bool { return s < NumStates }

// Absorbing reports whether no transition leaves s.
func (s State) Absorbing() bool { return s == Recovered || s == Dead }

// Sim defines the minimal contract the interactive viewer drives.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() error
	Cells() []State
}
