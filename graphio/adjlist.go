package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/packcolor/core"
)

// ErrSyntax marks malformed input lines.
var ErrSyntax = errors.New("graphio: syntax error")

// WriteAdjList writes g in adjlist format behind the three-line comment
// header networkx uses, the third line holding the graph name (possibly
// empty). Vertices come in natural order;
// a vertex lists only neighbors that have not had their own line yet, so
// every edge appears exactly once and isolated vertices get a bare line.
func WriteAdjList(w io.Writer, g *core.Graph) error {
	if g == nil {
		return errors.New("graphio: WriteAdjList: nil graph")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# packcolor adjlist")
	fmt.Fprintf(bw, "# %d vertices, %d edges\n", g.VertexCount(), g.EdgeCount())
	fmt.Fprintf(bw, "# %s\n", g.Name())

	adj := g.AdjacencyList()
	written := make(map[string]bool, len(adj))
	for _, id := range g.Vertices() {
		if strings.ContainsAny(id, " \t\n#") {
			return fmt.Errorf("graphio: vertex %q cannot be written in adjlist format", id)
		}
		bw.WriteString(id)
		for _, nbr := range adj[id] {
			if !written[nbr] {
				bw.WriteByte(' ')
				bw.WriteString(nbr)
			}
		}
		bw.WriteByte('\n')
		written[id] = true
	}

	return bw.Flush()
}

// ReadAdjList parses an adjlist stream. Text after '#' is ignored, except
// that when the stream opens with three whole-line comments the third one
// names the graph, as networkx writes G.name there. Repeated edges are
// accepted once; self-loops are rejected.
func ReadAdjList(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		name  string
		lines [][]string
		// header is the line holding the name; 0 once the header is broken.
		header = 3
	)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if lineNo <= header && !strings.HasPrefix(line, "#") {
			header = 0
		}
		if lineNo == header {
			name = strings.TrimSpace(line[1:])
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		for _, f := range fields[1:] {
			if f == fields[0] {
				return nil, fmt.Errorf("%w: line %d: self-loop on %q", ErrSyntax, lineNo, f)
			}
		}
		lines = append(lines, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: ReadAdjList: %w", err)
	}

	var opts []core.GraphOption
	if name != "" {
		opts = append(opts, core.WithName(name))
	}
	g := core.NewGraph(opts...)
	for _, fields := range lines {
		if err := g.AddVertex(fields[0]); err != nil {
			return nil, err
		}
		for _, nbr := range fields[1:] {
			if g.HasEdge(fields[0], nbr) {
				continue
			}
			if _, err := g.AddEdge(fields[0], nbr); err != nil {
				return nil, fmt.Errorf("graphio: edge %s-%s: %w", fields[0], nbr, err)
			}
		}
	}

	return g, nil
}
