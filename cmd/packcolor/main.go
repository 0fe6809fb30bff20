// Command packcolor computes packing chromatic numbers of clique-chain
// graphs and of graphs read from adjacency lists.
//
// Usage:
//
//	packcolor run     [--config run.cue] [--p-start 1] [--p-end 0] [--b 1] [--k 5] ...
//	packcolor solve   (--P 6 --B 2 --K 5 | --adjlist graph.txt) [--png out.png]
//	packcolor export  (--P 6 --B 2 --K 5 | --adjlist graph.txt) [--out model.lp]
//	packcolor verify  --adjlist graph.txt --coloring report.txt
//	packcolor solvers
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "packcolor:", err)
		os.Exit(1)
	}
}
