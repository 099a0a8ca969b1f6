// Package domain defines the core types of the alarm graph server.
//
// The package holds two families of types: the recorded input (alarms,
// inventory objects and the situations produced by the correlation engine)
// and the generated output (vertices, edges and layers of a point-in-time
// graph view).
//
// # Input Records
//
// Alarm is a single state-change record. Many records share one alarm ID;
// together they form an append-only log from which the state at any
// instant is reconstructed.
//
// InventoryObject is a managed network element, identified by (type, id)
// and linked to other elements through parent, peer and relative
// references.
//
// Situation groups correlated alarms. Situations arrive in
// SituationResultSets, exactly one of which is primary; the others are
// supplemental and are rendered next to the primary one for comparison.
//
// Dataset bundles the three record families after validation.
//
// # Output Model
//
// Graph is the JSON document returned to clients: metadata, vertices,
// edges and the three fixed layers (inventory, alarms, situations).
//
// GraphView carries the validated request parameters for one graph.
//
// # Design Principles
//
// - Records are immutable after load
// - No database or external dependencies
// - Sentinel errors matched with errors.Is
package domain
