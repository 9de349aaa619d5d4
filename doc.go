// Package dmmstp is a compact toolkit around DM-MSTP — a matrix-driven,
// max-of-column-minima greedy procedure for building spanning structures
// over weighted undirected graphs.
//
// 🚀 What is dmmstp?
//
//	A small, deterministic library + CLI that brings together:
//		• core      — generic, insertion-ordered weighted graph container
//		• matrix    — dense symmetric weight matrices + vertex↔index bijections
//		• mstp      — the DM-MSTP selection procedure itself
//		• builder   — deterministic sample-graph generation
//		• graphio   — YAML/JSON graph-document loading
//		• cmd/dmstp — interactive CLI wrapping it all
//
// ⚠️ What DM-MSTP is NOT:
//
//	DM-MSTP is a greedy maximin rule: among all still-available columns it
//	prefers the one whose cheapest incoming edge is the most expensive. That
//	is fundamentally different from Prim's "cheapest available edge" rule,
//	and the resulting spanning sequence is NOT guaranteed to be a
//	minimum-weight spanning tree. The package reproduces the procedure
//	faithfully (including, behind an option, its historical masking defect)
//	rather than promising graph-theoretic optimality.
//
// ✨ Design points:
//
//   - Deterministic – first-seen vertex indexing, documented tie-breaks
//   - Explicit failure – disconnected inputs surface ErrDisconnected instead
//     of silently emitting infinite-weight edges
//   - Pure library core – no I/O, no logging, no globals inside algorithms
//
// Dive into mstp for the procedure itself and cmd/dmstp for the CLI.
//
//	go get github.com/katalvlaran/dmmstp
package dmmstp
