package optimizer

import (
	"context"
	"fmt"
	"time"

	"github.com/dshills/boothopt/pkg/scene"
)

// Status is the solver's terminal outcome (spec §4.3, §6).
type Status string

const (
	StatusOptimal      Status = "OPTIMAL"
	StatusFeasible     Status = "FEASIBLE"
	StatusInfeasible   Status = "INFEASIBLE"
	StatusModelInvalid Status = "MODEL_INVALID"
	StatusUnknown      Status = "UNKNOWN"
)

// Success reports whether the status is one the pipeline emits
// outputs for (spec §4.3: "Treat OPTIMAL and FEASIBLE as success").
func (s Status) Success() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// Result is a solver's terminal outcome plus, on success, the
// resulting assignments.
type Result struct {
	Status      Status
	Assignments []Assignment // parallel to Model.Booths; nil unless Status.Success()
	Objective   int
}

// Solver invokes a placement algorithm over a built Model within a
// wall-clock budget.
type Solver interface {
	Solve(ctx context.Context, m *Model) (Result, error)
	Name() string
}

// registry holds registered solver factories, mirroring the
// Register/Get/List pattern used for pluggable spatial algorithms
// elsewhere in this codebase.
var registry = make(map[string]func(scene.SolverConfig) Solver)

// Register adds a solver factory under name. Panics on nil factory or
// duplicate registration, consistent with this codebase's other
// registries: both are programmer errors caught at init time.
func Register(name string, factory func(scene.SolverConfig) Solver) {
	if factory == nil {
		panic(fmt.Sprintf("optimizer: Register factory for %s is nil", name))
	}
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("optimizer: Register called twice for %s", name))
	}
	registry[name] = factory
}

// Get retrieves a solver by name, constructed with cfg (already
// normalized via scene.SolverConfig.Normalized).
func Get(name string, cfg scene.SolverConfig) (Solver, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("optimizer: solver %q not registered", name)
	}
	return factory(cfg), nil
}

// List returns the names of all registered solvers.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Solve builds the model from s and runs the named solver under s's
// own solver configuration and wall-clock budget.
func Solve(ctx context.Context, s *scene.Scene, solverName string) (Result, error) {
	m, err := BuildModel(s)
	if err != nil {
		return Result{Status: StatusModelInvalid}, err
	}

	cfg := s.Solver.Normalized()
	solver, err := Get(solverName, cfg)
	if err != nil {
		return Result{Status: StatusModelInvalid}, err
	}

	timeout := time.Duration(cfg.MaxTimeInSeconds * float64(time.Second))
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return solver.Solve(ctx, m)
}
