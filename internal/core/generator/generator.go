package generator

import (
	"fmt"
	"sort"

	"alecviz/internal/domain"
)

const (
	metadataLabel       = "ALEC"
	metadataDescription = "Graph generated from ALEC dataset"
)

// Generator produces graphs for one dataset
type Generator struct {
	builder  *Builder
	metadata domain.GraphMetadata
}

// New validates the dataset and precomputes its metadata
func New(id string, ds *domain.Dataset) (*Generator, error) {
	if ds == nil || len(ds.Alarms()) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	return &Generator{
		builder: NewBuilder(ds),
		metadata: domain.GraphMetadata{
			ID:          id,
			Label:       metadataLabel,
			Description: metadataDescription,
			TimeRange:   timeRange(ds),
			Annotations: annotations(ds.PrimarySituations()),
		},
	}, nil
}

// Metadata returns the dataset's graph metadata
func (g *Generator) Metadata() domain.GraphMetadata {
	return g.metadata
}

// Graph generates the graph for a view
func (g *Generator) Graph(view domain.GraphView) *domain.Graph {
	result := g.builder.Build(view.Timestamp(), view.FocalPoint())
	filtered := Extract(result.Graph, result.FocalPoints, view.Radius())
	if view.RemoveInventoryWithNoAlarms() {
		Prune(filtered)
	}

	return &domain.Graph{
		Metadata: g.metadata,
		Vertices: filtered.Vertices(),
		Edges:    filtered.Edges(),
		Layers:   domain.Layers(),
	}
}

// timeRange spans every alarm record and every primary situation creation
func timeRange(ds *domain.Dataset) domain.TimeRange {
	alarms := ds.Alarms()
	r := domain.TimeRange{StartMs: alarms[0].Time, EndMs: alarms[0].Time}
	extend := func(ts int64) {
		if ts < r.StartMs {
			r.StartMs = ts
		}
		if ts > r.EndMs {
			r.EndMs = ts
		}
	}
	for _, a := range alarms {
		extend(a.Time)
	}
	for _, s := range ds.PrimarySituations() {
		extend(s.CreationTime)
	}
	return r
}

// annotations marks the creation of the largest primary situations
func annotations(situations []domain.Situation) []domain.Annotation {
	sorted := append([]domain.Situation(nil), situations...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i].AlarmIDs) != len(sorted[j].AlarmIDs) {
			return len(sorted[i].AlarmIDs) > len(sorted[j].AlarmIDs)
		}
		return sorted[i].CreationTime > sorted[j].CreationTime
	})

	out := make([]domain.Annotation, 0, MaxFocalSituations)
	for i := 0; i < len(sorted) && i < MaxFocalSituations; i++ {
		out = append(out, domain.Annotation{
			Timestamp: sorted[i].CreationTime,
			Label:     fmt.Sprintf("Situation #%s Created", sorted[i].ID),
		})
	}
	return out
}
