// Package ilp is a small, solver-agnostic model of a mixed-integer linear
// program: columns with kinds and bounds, named rows, and a linear
// objective.
//
// A Model is built once by a formulator and handed to an ilp.Solver; the
// Solver returns a Solution whose Values are indexed by column. Backends
// that drive external binaries serialize the model with WriteLP, the
// CPLEX LP text format that CPLEX, HiGHS, CBC, SCIP and Gurobi all read.
//
// Column indices are dense and stable: the i-th Add* call returns i.
package ilp
