// Package graphio loads graph documents for DM-MSTP runs from YAML or JSON
// files, or from a directory of them.
//
// Document shape (mirrors the procedure's historical input contract):
//
//	distance_edges:
//	  A: {B: 1.0, C: 2.5}
//	  B: {C: 3.0}
//	travel_time_edges:       # optional secondary weighting
//	  A: {B: 10}
//
// distance_edges may be expressed redundantly (both directions) or
// one-sided; the core graph mirrors every pair either way. travel_time_edges
// is parsed and carried on the Document but is NOT consumed by the DM-MSTP
// core — preserving it is this loader's concern alone.
//
// Determinism:
//
//	File maps carry no order, so DistanceGraph feeds vertices in
//	lexicographically sorted key order (then sorted neighbor order). Loading
//	the same files therefore always produces the same vertex indexing, and
//	the same DM-MSTP output.
//
// Directory loading merges every *.yaml, *.yml, and *.json entry in
// lexicographic file order; later files override earlier weights for the
// same pair.
//
// Errors (sentinel): ErrNoGraphFiles, ErrNoDistanceEdges; parse and
// ingestion failures are wrapped with file/vertex context via pkg/errors.
package graphio
