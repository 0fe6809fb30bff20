package cache

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/packcolor/core"
)

// Fingerprint hashes g's vertex set and edge set. It ignores the graph
// name, edge IDs and insertion order, so equal graphs built differently
// hash the same.
func Fingerprint(g *core.Graph) string {
	h := xxhash.New()
	for _, id := range g.Vertices() {
		_, _ = h.WriteString("v\x00")
		_, _ = h.WriteString(id)
		_, _ = h.WriteString("\n")
	}

	edges := g.Edges()
	pairs := make([][2]string, len(edges))
	for i, e := range edges {
		u, v := e.From, e.To
		if core.NaturalLess(v, u) {
			u, v = v, u
		}
		pairs[i] = [2]string{u, v}
	}
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if a[0] != b[0] {
			return core.NaturalLess(a[0], b[0])
		}

		return core.NaturalLess(a[1], b[1])
	})
	for _, p := range pairs {
		_, _ = h.WriteString("e\x00")
		_, _ = h.WriteString(p[0])
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(p[1])
		_, _ = h.WriteString("\n")
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

// Key combines a fingerprint with the backend and the model variant
// (e.g. "bound=greedy") into a file-safe cache key.
func Key(fingerprint, backend, variant string) string {
	return fmt.Sprintf("%s-%016x", fingerprint, xxhash.Sum64String(backend+"\x00"+variant))
}
