// Package graph provides a small directed multigraph container keyed by
// string identifiers.
//
// Vertices and edges carry arbitrary payloads. Insertion order is kept so
// that iteration, and everything derived from it, is deterministic.
// Weakly connected components are computed with a union-find.
package graph
