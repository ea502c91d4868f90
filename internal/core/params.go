package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single value a simulation was configured with.
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

// ParameterSnapshot captures the current set of parameters exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that can describe their
// configuration.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Stats summarises the outcome of the most recent generation.
type Stats struct {
	Generation int
	Alive      int
	Births     int
	Survivals  int
	Deaths     int
}

// StatsProvider is implemented by sims that track per-generation statistics.
type StatsProvider interface {
	Stats() Stats
}
