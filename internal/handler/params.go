package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"alecviz/internal/domain"
)

// Query parameter names of the graph route
const (
	paramTime        = "time"
	paramSZL         = "szl"
	paramRadius      = "radius"
	paramFocalPoint  = "focalPoint"
	paramPrune       = "removeInventoryWithNoAlarms"
	paramVertexLimit = "vertexLimit"
)

// parseView builds a view from query parameters. A missing time means now;
// szl takes precedence over radius.
func parseView(q url.Values, now time.Time) (domain.GraphView, error) {
	params := domain.ViewParams{FocalPoint: q.Get(paramFocalPoint)}

	ts := now.UnixMilli()
	if raw := q.Get(paramTime); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.GraphView{}, fmt.Errorf("invalid %s %q: must be epoch milliseconds", paramTime, raw)
		}
		ts = v
	}
	params.Timestamp = &ts

	for _, name := range []string{paramSZL, paramRadius} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return domain.GraphView{}, fmt.Errorf("invalid %s %q: must be an integer", name, raw)
		}
		params.Radius = &v
		break
	}

	if raw := q.Get(paramPrune); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.GraphView{}, fmt.Errorf("invalid %s %q: must be a boolean", paramPrune, raw)
		}
		params.RemoveInventoryWithNoAlarms = v
	}

	if raw := q.Get(paramVertexLimit); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return domain.GraphView{}, fmt.Errorf("invalid %s %q: must be an integer", paramVertexLimit, raw)
		}
		params.VertexLimit = v
	}

	return domain.NewGraphView(params)
}
