package graphio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/packcolor/builder"
)

// Stem returns the file stem for a generated graph: p.String() for the
// path topology, with a "_cycle" suffix for the cycle topology so the two
// never overwrite each other.
func Stem(p builder.Params, t builder.Topology) string {
	if t == builder.TopologyCycle {
		return p.String() + "_cycle"
	}

	return p.String()
}

// Paths names every artifact under Dir.
type Paths struct {
	Dir string
}

// Ensure creates Dir if needed.
func (p Paths) Ensure() error {
	return os.MkdirAll(p.Dir, 0o755)
}

// Graph is the adjlist file, "<stem>.txt".
func (p Paths) Graph(stem string) string { return filepath.Join(p.Dir, stem+".txt") }

// Coloring is the report file, "<stem>_color_assignment.txt".
func (p Paths) Coloring(stem string) string {
	return filepath.Join(p.Dir, stem+"_color_assignment.txt")
}

// Image is the rendered PNG, "<stem>_coloring.png".
func (p Paths) Image(stem string) string { return filepath.Join(p.Dir, stem+"_coloring.png") }

// Plain is the uncolored drawing, "<stem>_plain.png".
func (p Paths) Plain(stem string) string { return filepath.Join(p.Dir, stem+"_plain.png") }

// DOT is the Graphviz file, "<stem>.dot".
func (p Paths) DOT(stem string) string { return filepath.Join(p.Dir, stem+".dot") }

// LP is the exported model, "<stem>.lp".
func (p Paths) LP(stem string) string { return filepath.Join(p.Dir, stem+".lp") }

// WriteFile creates path and streams write into it.
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
