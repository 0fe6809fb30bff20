// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors, NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// Metadata stores arbitrary key-value data and is shared on clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is an undirected connection between two vertices.
// From and To keep the orientation in which the edge was added.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	seq uint64 // numeric part of ID, used for ordering
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithName attaches a human-readable name, used in logs and image titles.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// WithVertexCapacity pre-sizes the internal catalogs for n vertices.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// Graph is the in-memory simple undirected graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	name    string
	capHint int

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID; mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (plus the optional capacity hint).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]*Vertex, g.capHint)
	g.edges = make(map[string]*Edge, g.capHint)
	g.adjacency = make(map[string]map[string]string, g.capHint)

	return g
}
