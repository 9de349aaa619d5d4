package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidWeight indicates an edge weight that is NaN or ±Inf.
	ErrInvalidWeight = errors.New("core: edge weight must be finite")

	// ErrNegativeWeight indicates a negative edge weight on a graph that was
	// not built with WithNegativeWeights.
	ErrNegativeWeight = errors.New("core: negative edge weight not allowed")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// graphConfig holds the ingestion policy resolved from GraphOption setters.
// Kept non-generic on purpose so option constructors read naturally at call
// sites (NewGraph[string](WithLoops()) rather than WithLoops[string]()).
type graphConfig struct {
	allowLoops    bool // permit u==v edges
	allowNegative bool // permit w < 0
}

// GraphOption configures ingestion policy of a Graph before creation.
type GraphOption func(*graphConfig)

// WithLoops permits self-loops (edges from a vertex to itself).
// Note: the dense adjacency adapter keeps the diagonal at the sentinel
// regardless, so loops never participate in DM-MSTP selection.
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// WithNegativeWeights permits negative edge weights at ingestion.
// The matrix adapter still rejects negatives when building a DM-MSTP run;
// this flag exists for callers using Graph as a general container.
func WithNegativeWeights() GraphOption {
	return func(c *graphConfig) { c.allowNegative = true }
}

// Graph is an undirected, weighted adjacency container keyed by a comparable
// vertex identifier K. Vertex order is first-seen and never reshuffled.
//
// Storage: adj[u][v] == adj[v][u] == weight. Duplicate AddEdge calls for the
// same pair overwrite the previous weight (last-write-wins).
type Graph[K comparable] struct {
	mu  sync.RWMutex
	cfg graphConfig

	order []K                 // vertex IDs in first-seen order
	index map[K]int           // vertex ID → position in order
	adj   map[K]map[K]float64 // undirected adjacency with mirrored writes
}

// NewGraph creates an empty Graph with the given ingestion options.
// By default loops and negative weights are rejected.
// Complexity: O(1).
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K]{
		cfg:   cfg,
		index: make(map[K]int),
		adj:   make(map[K]map[K]float64),
	}
}

// ensureVertex registers id if unseen and returns its dense position.
// Caller must hold g.mu for writing.
func (g *Graph[K]) ensureVertex(id K) int {
	if pos, ok := g.index[id]; ok {
		return pos
	}
	pos := len(g.order)
	g.order = append(g.order, id)
	g.index[id] = pos
	g.adj[id] = make(map[K]float64)

	return pos
}

// AddVertex registers an isolated vertex. Idempotent: re-adding an existing
// vertex keeps its original position and edges.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(id K) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)
}

// AddEdge records the undirected edge u—v with weight w, registering both
// endpoints in first-seen order (u before v). A repeated pair overwrites the
// stored weight.
//
// Errors: ErrInvalidWeight for NaN/±Inf, ErrNegativeWeight for w < 0 without
// WithNegativeWeights, ErrLoopNotAllowed for u == v without WithLoops.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(u, v K, w float64) error {
	// Validate the weight before touching any state.
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrInvalidWeight
	}
	if w < 0 && !g.cfg.allowNegative {
		return ErrNegativeWeight
	}
	if u == v && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)

	// Mirrored write keeps the container symmetric; a loop writes once.
	g.adj[u][v] = w
	g.adj[v][u] = w

	return nil
}

// HasVertex reports whether id has been registered.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// Vertices returns a copy of all vertex IDs in first-seen order. This order
// is the canonical vertex→index assignment used by the matrix adapter.
// Complexity: O(V).
func (g *Graph[K]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph[K]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of distinct undirected edges (loops count once).
// Complexity: O(V + E).
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var twice int
	var loops int
	for u, nbrs := range g.adj {
		twice += len(nbrs)
		if _, ok := nbrs[u]; ok {
			loops++
		}
	}

	// Every non-loop edge was mirrored, loops were stored once.
	return (twice-loops)/2 + loops
}

// Weight returns the stored weight of edge u—v and whether the edge exists.
// Complexity: O(1).
func (g *Graph[K]) Weight(u, v K) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[u]
	if !ok {
		return 0, false
	}
	w, ok := nbrs[v]

	return w, ok
}

// Neighbors returns a copy of u's neighbor→weight mapping.
// Returns ErrVertexNotFound when u is unknown.
// Complexity: O(deg(u)).
func (g *Graph[K]) Neighbors(u K) (map[K]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[u]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make(map[K]float64, len(nbrs))
	for v, w := range nbrs {
		out[v] = w
	}

	return out, nil
}
