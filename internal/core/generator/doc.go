// Package generator turns a dataset into point-in-time graph views.
//
// A view is produced in four stages:
//
//   - Resolver reconstructs which alarms and situations are active at the
//     requested instant from the append-only alarm log.
//   - Builder assembles the full three-layer graph (inventory, alarms,
//     situations) and selects the focal vertices.
//   - Extract keeps the ego network of the focal vertices up to the
//     requested radius.
//   - Prune optionally drops inventory that carries no alarms.
//
// Generator ties the stages together for one dataset and precomputes the
// dataset's metadata (time range and annotations). Everything in this
// package is synchronous and free of I/O; a Generator may be shared by
// concurrent readers.
package generator
