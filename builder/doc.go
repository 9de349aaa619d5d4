// Package builder generates deterministic sample graphs for DM-MSTP demos,
// benchmarks, and the CLI's --sample mode.
//
// Design contract:
//   - Determinism: same options (including the seed) ⇒ byte-identical graph,
//     vertex order included. The RNG is always a local rand.New(rand.NewSource)
//     stream, never the global one.
//   - Safety: generators never panic; invalid parameters surface as sentinel
//     errors (ErrTooFewVertices, ErrTooFewEdges, ErrTooManyEdges,
//     ErrBadWeightRange).
//   - Connectivity: RandomConnected first chains V0—V1—…—V(n−1), then tops
//     up with extra random edges, so every generated graph is connected by
//     construction — though note that DM-MSTP's hardened run may still
//     exhaust genuine edges on sparse shapes (see mstp documentation);
//     Complete produces inputs on which the run always finishes.
//
// Generators:
//
//	RandomConnected(opts ...Option) (*core.Graph[string], error)
//	Complete(n int, opts ...Option) (*core.Graph[string], error)
package builder
