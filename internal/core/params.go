package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form values such as the scheduling mode.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single run setting shown to the user.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the settings of a run.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Pairs flattens the snapshot into alternating key/value entries, the shape
// structured loggers accept.
func (s ParameterSnapshot) Pairs() []any {
	var out []any
	for _, g := range s.Groups {
		for _, p := range g.Params {
			out = append(out, p.Key, p.Value)
		}
	}
	return out
}

// ParameterProvider is implemented by sims that expose their settings.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
