package solver

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/packcolor/ilp"
)

// Sentinel errors shared by all backends.
var (
	// ErrUnknownBackend is returned by New for an unregistered name.
	ErrUnknownBackend = errors.New("solver: unknown backend")

	// ErrSolverNotInstalled is returned when an external binary is not
	// found on PATH.
	ErrSolverNotInstalled = errors.New("solver: solver binary not installed")

	// ErrSolverFailed is returned when a backend ran but produced no
	// usable answer (crash, error output, unparsable solution).
	ErrSolverFailed = errors.New("solver: solver failed")

	// ErrUnsupportedModel is returned when a backend cannot represent the
	// model (e.g. continuous columns in the pseudo-boolean backend).
	ErrUnsupportedModel = errors.New("solver: model not supported by backend")
)

// Factory builds a configured backend.
type Factory func(opts ilp.Options) (ilp.Solver, error)

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Default is the backend used when none is configured.
const Default = GophersatName

// Register makes a backend available under name. Registering the same
// name twice or a nil factory panics.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if f == nil {
		panic("solver: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("solver: Register called twice for backend " + name)
	}
	factories[name] = f
}

// New returns the backend registered under name.
func New(name string, opts ilp.Options) (ilp.Solver, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, name, Available())
	}

	return f(opts)
}

// Available lists registered backend names in sorted order.
func Available() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
