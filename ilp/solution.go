package ilp

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Status is the outcome reported by a backend.
type Status int

const (
	// Unknown means the backend stopped without a verdict.
	Unknown Status = iota
	// Optimal means an optimal assignment was proven.
	Optimal
	// Feasible means an assignment was found without an optimality proof.
	Feasible
	// Infeasible means the model has no assignment.
	Infeasible
	// TimeLimit means the run was cut short; Values holds the incumbent
	// if there is one.
	TimeLimit
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Feasible:
		return "feasible"
	case Infeasible:
		return "infeasible"
	case TimeLimit:
		return "time_limit"
	}

	return "unknown"
}

// Solution is a backend's answer for a Model.
type Solution struct {
	Status    Status
	Objective float64
	// Values is indexed by column; nil when no assignment is known.
	Values  []float64
	Backend string
	Runtime time.Duration
	// Message carries backend detail (status string, log tail).
	Message string
}

// HasValues reports whether s carries an assignment.
func (s *Solution) HasValues() bool {
	return s != nil && len(s.Values) > 0
}

// Value returns column v's value, or 0 when there is no assignment.
func (s *Solution) Value(v int) float64 {
	if !s.HasValues() || v < 0 || v >= len(s.Values) {
		return 0
	}

	return s.Values[v]
}

// Solver solves a Model. Implementations must honor ctx cancellation and
// report it as TimeLimit with the incumbent when one exists.
type Solver interface {
	Name() string
	Solve(ctx context.Context, m *Model) (*Solution, error)
}

// Options are passed to backend factories.
type Options struct {
	// TimeLimit bounds a single Solve; 0 means none.
	TimeLimit time.Duration
	// Threads caps solver threads; 0 lets the backend decide.
	Threads int
	// Verbose forwards backend logs at debug level.
	Verbose bool
	// Binary overrides the executable for external-binary backends.
	Binary string
	// WorkDir is where model and solution files are written; "" uses a
	// fresh temp dir that is removed afterwards.
	WorkDir string
	// Logger receives backend logs; nil means no-op.
	Logger *zap.Logger
}

// Log returns o.Logger or a no-op logger.
func (o Options) Log() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}
