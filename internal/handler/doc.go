// Package handler implements the HTTP API for browsing generated graphs.
//
// # Routes
//
//	GET /health          liveness probe
//	GET /                metadata of every dataset
//	GET /{id}            graph for a point in time
//	GET /{id}/metadata   metadata of one dataset
//
// The graph route reads the view from query parameters: time (epoch
// milliseconds, defaults to now), szl or radius, focalPoint,
// removeInventoryWithNoAlarms and vertexLimit.
//
// # Response Format
//
// Success responses are JSON and carry an ETag derived from the body, so
// clients polling an unchanged view get 304 Not Modified. Errors are
// returned as JSON with {error, details}.
//
// # Middleware
//
// Chain composes request id propagation, structured access logging, panic
// recovery and CORS around the router.
package handler
