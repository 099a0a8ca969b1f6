package domain

import "fmt"

// DefaultRadius is the ego-network radius used when none is requested
const DefaultRadius = 3

// ViewParams carries raw, optional view parameters
type ViewParams struct {
	Timestamp                   *int64
	Radius                      *int
	FocalPoint                  string
	RemoveInventoryWithNoAlarms bool
	VertexLimit                 int
}

// GraphView is a validated request for a point-in-time graph
type GraphView struct {
	timestamp                   int64
	radius                      int
	focalPoint                  string
	removeInventoryWithNoAlarms bool
	vertexLimit                 int
}

// NewGraphView validates params and applies defaults
func NewGraphView(p ViewParams) (GraphView, error) {
	if p.Timestamp == nil {
		return GraphView{}, ErrMissingTimestamp
	}
	radius := DefaultRadius
	if p.Radius != nil {
		radius = *p.Radius
	}
	if radius < 0 {
		return GraphView{}, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	return GraphView{
		timestamp:                   *p.Timestamp,
		radius:                      radius,
		focalPoint:                  p.FocalPoint,
		removeInventoryWithNoAlarms: p.RemoveInventoryWithNoAlarms,
		vertexLimit:                 p.VertexLimit,
	}, nil
}

// Timestamp returns the instant of the view in epoch milliseconds
func (v GraphView) Timestamp() int64 { return v.timestamp }

// Radius returns the ego-network hop count
func (v GraphView) Radius() int { return v.radius }

// FocalPoint returns the label substring selecting focal vertices, if any
func (v GraphView) FocalPoint() string { return v.focalPoint }

// RemoveInventoryWithNoAlarms reports whether pruning is requested
func (v GraphView) RemoveInventoryWithNoAlarms() bool { return v.removeInventoryWithNoAlarms }

// VertexLimit returns the requested vertex cap. It is not enforced.
func (v GraphView) VertexLimit() int { return v.vertexLimit }

// String renders the view as a stable cache key
func (v GraphView) String() string {
	return fmt.Sprintf("t=%d r=%d focal=%q prune=%t limit=%d",
		v.timestamp, v.radius, v.focalPoint, v.removeInventoryWithNoAlarms, v.vertexLimit)
}
