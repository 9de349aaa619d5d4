// Package core defines the graph description consumed by the DM-MSTP
// procedure: an undirected, weighted adjacency container keyed by a generic
// comparable vertex identifier.
//
// Why a dedicated container instead of map[K]map[K]float64?
//
//   - Determinism. Go map iteration order is randomized, so a raw nested map
//     cannot yield reproducible vertex→index assignment. Graph records the
//     first-seen order of every vertex (keys first, then nested neighbor
//     keys) and Vertices() replays exactly that order. Two runs over the same
//     insertion sequence therefore index — and select — identically.
//
//   - Validation at ingestion. NaN and ±Inf weights are always rejected;
//     negative weights and self-loops are rejected unless explicitly allowed
//     via WithNegativeWeights / WithLoops. Catching bad weights here keeps
//     the downstream minima computations meaningful.
//
// Graph is safe for concurrent use: reads take an RLock, mutations a Lock.
// The DM-MSTP run itself is single-threaded and owns all of its state; the
// locking only protects the build phase of shared graphs.
//
// Errors (sentinel):
//
//	– ErrInvalidWeight   if an edge weight is NaN or ±Inf.
//	– ErrNegativeWeight  if an edge weight is negative and negatives are disallowed.
//	– ErrLoopNotAllowed  if u == v and loops are disallowed.
//	– ErrVertexNotFound  if a queried vertex does not exist.
package core
