package graphio_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/packcolor/builder"
	"github.com/katalvlaran/packcolor/graphio"
	"github.com/katalvlaran/packcolor/packing"
)

func TestWriteAdjList_EachEdgeOnce(t *testing.T) {
	g, err := builder.Generate(builder.Params{P: 4, B: 2, K: 3}, builder.TopologyPath)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("9"))

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteAdjList(&buf, g))

	want := strings.Join([]string{
		"# packcolor adjlist",
		"# 7 vertices, 7 edges",
		"# P4_♦2_K3",
		"0 1 2",
		"1 2 3",
		"2",
		"3 4 5",
		"4 5",
		"5",
		"9",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())

	back, err := graphio.ReadAdjList(&buf)
	require.NoError(t, err)
	require.Equal(t, "P4_♦2_K3", back.Name())
	require.Equal(t, g.Vertices(), back.Vertices())
	require.Equal(t, g.AdjacencyList(), back.AdjacencyList())
}

func TestReadAdjList_NetworkxHeader(t *testing.T) {
	in := "#/usr/bin/python main.py\n# GMT Mon Jan  1 00:00:00 2024\n# demo\n0 1 2\n1 2 # trailing\n\n2 0\n"
	g, err := graphio.ReadAdjList(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "demo", g.Name())
	require.Equal(t, 3, g.EdgeCount(), "repeated 2-0 is accepted once")

	_, err = graphio.ReadAdjList(strings.NewReader("0 1 0\n"))
	require.ErrorIs(t, err, graphio.ErrSyntax)
}

func TestReadAdjList_NameLine(t *testing.T) {
	cases := map[string]string{
		"#prog\n# GMT Mon Jan  1 00:00:00 2024\n# \n0 1\n": "",
		"#prog\n# GMT Mon Jan  1 00:00:00 2024\n#\n0 1\n":  "",
		"# only one comment\n0 1\n":                          "",
		"# a\n0 1\n# b\n1 2\n":                              "",
		"# a\n# b\n# named\n# later\n0 1\n":                "named",
	}
	for in, want := range cases {
		g, err := graphio.ReadAdjList(strings.NewReader(in))
		require.NoError(t, err)
		require.Equalf(t, want, g.Name(), "input %q", in)
	}

	unnamed, err := builder.BuildGraph(nil, nil, builder.Path(2))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteAdjList(&buf, unnamed))
	require.True(t, strings.HasPrefix(buf.String(), "# packcolor adjlist\n# 2 vertices, 1 edges\n# \n0 1\n"))
	back, err := graphio.ReadAdjList(&buf)
	require.NoError(t, err)
	require.Equal(t, "", back.Name())
}

func TestColoringReport(t *testing.T) {
	c := packing.Coloring{"10": 3, "2": 1, "0": 2}

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteColoring(&buf, c, 3))
	require.Equal(t,
		"Packing Chromatic Number: 3\nColor Assignment:\nNode 0: Color 2\nNode 2: Color 1\nNode 10: Color 3\n",
		buf.String())

	back, chromatic, err := graphio.ReadColoring(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, chromatic)
	require.Equal(t, c, back)
}

func TestReadColoring_FloatChromatic(t *testing.T) {
	in := "Packing Chromatic Number: 3.0\nColor Assignment:\nNode 0: Color 1\nNode 1: Color 3\n"
	c, chromatic, err := graphio.ReadColoring(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, chromatic)
	require.Equal(t, packing.Coloring{"0": 1, "1": 3}, c)

	_, _, err = graphio.ReadColoring(strings.NewReader("Packing Chromatic Number: 2.5\n"))
	require.ErrorIs(t, err, graphio.ErrSyntax)
}

func TestReadColoring_Errors(t *testing.T) {
	cases := map[string]string{
		"no header":   "Color Assignment:\nNode 0: Color 1\n",
		"bad number":  "Packing Chromatic Number: x\n",
		"bad line":    "Packing Chromatic Number: 1\nColor Assignment:\nNode 0 Color 1\n",
		"duplicate":   "Packing Chromatic Number: 1\nColor Assignment:\nNode 0: Color 1\nNode 0: Color 1\n",
		"stray text":  "Packing Chromatic Number: 1\nhello\n",
		"bad color":   "Packing Chromatic Number: 1\nColor Assignment:\nNode 0: Color one\n",
		"body before": "Packing Chromatic Number: 1\nNode 0: Color 1\n",
	}
	for name, in := range cases {
		_, _, err := graphio.ReadColoring(strings.NewReader(in))
		require.ErrorIsf(t, err, graphio.ErrSyntax, name)
	}
}

func TestPaths(t *testing.T) {
	dir := t.TempDir()
	p := graphio.Paths{Dir: filepath.Join(dir, "graphs")}
	require.NoError(t, p.Ensure())

	params := builder.Params{P: 6, B: 2, K: 5}
	stem := graphio.Stem(params, builder.TopologyPath)
	require.Equal(t, "P6_♦2_K5", stem)
	require.Equal(t, "P6_♦2_K5_cycle", graphio.Stem(params, builder.TopologyCycle))

	require.Equal(t, filepath.Join(p.Dir, "P6_♦2_K5.txt"), p.Graph(stem))
	require.Equal(t, filepath.Join(p.Dir, "P6_♦2_K5_color_assignment.txt"), p.Coloring(stem))
	require.Equal(t, filepath.Join(p.Dir, "P6_♦2_K5_coloring.png"), p.Image(stem))
	require.Equal(t, filepath.Join(p.Dir, "P6_♦2_K5_plain.png"), p.Plain(stem))
	require.Equal(t, filepath.Join(p.Dir, "P6_♦2_K5.dot"), p.DOT(stem))
	require.Equal(t, filepath.Join(p.Dir, "P6_♦2_K5.lp"), p.LP(stem))

	c := packing.Coloring{"0": 1}
	require.NoError(t, graphio.WriteFile(p.Coloring(stem), func(w io.Writer) error {
		return graphio.WriteColoring(w, c, 1)
	}))
	raw, err := os.ReadFile(p.Coloring(stem))
	require.NoError(t, err)
	require.Contains(t, string(raw), "Node 0: Color 1")
}
