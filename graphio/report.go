package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/packcolor/core"
	"github.com/katalvlaran/packcolor/packing"
)

const (
	chromaticPrefix = "Packing Chromatic Number:"
	assignmentHead  = "Color Assignment:"
)

// WriteColoring writes the coloring report:
//
//	Packing Chromatic Number: 3
//	Color Assignment:
//	Node 0: Color 1
//	...
//
// Vertices are listed in natural order.
func WriteColoring(w io.Writer, c packing.Coloring, chromatic int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d\n", chromaticPrefix, chromatic)
	fmt.Fprintln(bw, assignmentHead)

	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	core.SortIDs(ids)
	for _, id := range ids {
		fmt.Fprintf(bw, "Node %s: Color %d\n", id, c[id])
	}

	return bw.Flush()
}

// ReadColoring parses a report written by WriteColoring and returns the
// coloring and the stated chromatic number. A chromatic number written as
// a whole float ("3.0") is accepted.
func ReadColoring(r io.Reader) (packing.Coloring, int, error) {
	sc := bufio.NewScanner(r)
	c := make(packing.Coloring)
	chromatic := -1
	inBody := false

	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, chromaticPrefix):
			n, err := parseWhole(strings.TrimSpace(strings.TrimPrefix(line, chromaticPrefix)))
			if err != nil {
				return nil, 0, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
			}
			chromatic = n
		case line == assignmentHead:
			inBody = true
		case inBody && strings.HasPrefix(line, "Node "):
			id, col, err := parseAssignment(line)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
			}
			if _, dup := c[id]; dup {
				return nil, 0, fmt.Errorf("%w: line %d: node %q assigned twice", ErrSyntax, lineNo, id)
			}
			c[id] = col
		default:
			return nil, 0, fmt.Errorf("%w: line %d: unexpected %q", ErrSyntax, lineNo, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("graphio: ReadColoring: %w", err)
	}
	if chromatic < 0 {
		return nil, 0, fmt.Errorf("%w: missing %q line", ErrSyntax, chromaticPrefix)
	}

	return c, chromatic, nil
}

// parseWhole reads an integer, also in the "3.0" form a float-valued
// objective is printed in.
func parseWhole(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}

	return int(f), nil
}

// parseAssignment splits "Node <id>: Color <c>".
func parseAssignment(line string) (string, int, error) {
	rest := strings.TrimPrefix(line, "Node ")
	i := strings.LastIndex(rest, ": Color ")
	if i <= 0 {
		return "", 0, fmt.Errorf("malformed assignment %q", line)
	}
	col, err := strconv.Atoi(strings.TrimSpace(rest[i+len(": Color "):]))
	if err != nil {
		return "", 0, err
	}

	return rest[:i], col, nil
}
