// Package service exposes generated graphs to the transport layer.
//
// GraphService keeps one generator per dataset id. Registering a dataset
// under an existing id swaps the generator atomically: requests already in
// flight finish against the old snapshot and the result cache is keyed by
// generation, so no stale graph is ever served after a swap.
//
// Every call opens an OpenTelemetry span; with no exporter configured the
// global no-op tracer makes this free.
package service
