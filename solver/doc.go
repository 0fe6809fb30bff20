// Package solver turns an ilp.Model into an ilp.Solution through one of
// several interchangeable backends, selected by name from a registry.
//
// Backends:
//
//	gophersat  pure-Go pseudo-boolean optimizer (default, always present)
//	cplex      IBM CPLEX interactive binary, driven by a command file
//	highs-cli  HiGHS command-line binary
//	highs      HiGHS linked in-process through cgo (build tag "highs")
//
// External-binary backends write the model in LP format into a work
// directory, run the binary under the caller's context and parse its
// solution file. A missing binary is reported as ErrSolverNotInstalled so
// callers can fall back or tell the user what to install.
//
// All backends map their native outcome onto ilp.Status. A run cut short
// by the context or the time limit reports ilp.TimeLimit and keeps the
// incumbent assignment when the backend exposes one.
package solver
