package builder

// Documented defaults — single source of truth for zero-value behavior.
const (
	// DefaultVertexCount is the sample size used when none is requested.
	DefaultVertexCount = 10

	// DefaultEdgeCount is the sample edge budget used when none is requested.
	DefaultEdgeCount = 15

	// DefaultSeed freezes the RNG stream so unspecified runs reproduce.
	DefaultSeed = 42

	// DefaultMinWeight / DefaultMaxWeight bound generated edge weights
	// (half-open range [min, max)).
	DefaultMinWeight = 1.0
	DefaultMaxWeight = 100.0

	// DefaultIDPrefix names vertices "V0", "V1", ….
	DefaultIDPrefix = "V"
)

// Options stores the effective generator configuration after applying
// Option setters. Fields are resolved against the defaults above; validation
// happens inside the generators, which return sentinel errors.
type Options struct {
	vertexCount int     // number of vertices (n ≥ 1)
	edgeCount   int     // total undirected edges (n-1 ≤ m ≤ n(n-1)/2)
	seed        int64   // RNG seed; fixed for reproducibility
	minWeight   float64 // inclusive lower weight bound
	maxWeight   float64 // exclusive upper weight bound
	idPrefix    string  // vertex ID prefix
}

// Option mutates Options. Safe to apply repeatedly; last-writer-wins.
type Option func(*Options)

// WithVertexCount sets the number of generated vertices.
func WithVertexCount(n int) Option {
	return func(o *Options) { o.vertexCount = n }
}

// WithEdgeCount sets the total undirected edge budget.
func WithEdgeCount(m int) Option {
	return func(o *Options) { o.edgeCount = m }
}

// WithSeed fixes the RNG stream; identical seeds reproduce identical graphs.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithWeightRange bounds generated weights to the half-open range [min, max).
func WithWeightRange(min, max float64) Option {
	return func(o *Options) {
		o.minWeight = min
		o.maxWeight = max
	}
}

// WithIDPrefix changes the vertex naming prefix (default "V").
func WithIDPrefix(prefix string) Option {
	return func(o *Options) { o.idPrefix = prefix }
}

// DefaultOptions returns the documented defaults.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		vertexCount: DefaultVertexCount,
		edgeCount:   DefaultEdgeCount,
		seed:        DefaultSeed,
		minWeight:   DefaultMinWeight,
		maxWeight:   DefaultMaxWeight,
		idPrefix:    DefaultIDPrefix,
	}
}

// gatherOptions applies user setters on top of DefaultOptions.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
