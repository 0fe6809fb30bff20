// Package runner sweeps the clique-chain family P = PStart, PStart+1, ...
// for fixed B and K, solving each graph and writing its artifacts.
//
// Parameters that do not describe a graph are skipped. The sweep ends at
// PEnd, on context cancellation, or with ErrThresholdExceeded once a
// packing chromatic number exceeds StopAbove; in that case the last graph
// is drawn both colored and plain.
package runner
