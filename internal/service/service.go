package service

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"alecviz/internal/core/generator"
	"alecviz/internal/domain"
)

const tracerName = "alecviz/service"

type registration struct {
	generator  *generator.Generator
	generation uint64
}

// GraphService provides graphs and metadata for registered datasets
type GraphService struct {
	mu         sync.RWMutex
	datasets   map[string]registration
	order      []string
	generation uint64

	cache  *lru.Cache
	logger *zap.Logger
	tracer trace.Tracer
}

// NewGraphService creates a service caching up to cacheSize generated graphs
func NewGraphService(cacheSize int, logger *zap.Logger) (*GraphService, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph cache: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GraphService{
		datasets: make(map[string]registration),
		cache:    cache,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}, nil
}

// Register makes ds available under id, replacing any previous dataset
func (s *GraphService) Register(id string, ds *domain.Dataset) error {
	gen, err := generator.New(id, ds)
	if err != nil {
		return fmt.Errorf("failed to register dataset %s: %w", id, err)
	}

	s.mu.Lock()
	s.generation++
	if _, exists := s.datasets[id]; !exists {
		s.order = append(s.order, id)
	}
	s.datasets[id] = registration{generator: gen, generation: s.generation}
	s.mu.Unlock()

	meta := gen.Metadata()
	s.logger.Info("dataset registered",
		zap.String("dataset", id),
		zap.Int("alarms", len(ds.Alarms())),
		zap.Int("inventory", len(ds.Inventory())),
		zap.Int("result_sets", len(ds.SituationResultSets())),
		zap.Int64("start_ms", meta.TimeRange.StartMs),
		zap.Int64("end_ms", meta.TimeRange.EndMs),
	)
	return nil
}

// Remove unregisters a dataset
func (s *GraphService) Remove(id string) {
	s.mu.Lock()
	if _, ok := s.datasets[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.datasets, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.logger.Info("dataset removed", zap.String("dataset", id))
}

func (s *GraphService) lookup(id string) (registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, ok := s.datasets[id]
	if !ok {
		return registration{}, fmt.Errorf("dataset %s: %w", id, domain.ErrNotFound)
	}
	return reg, nil
}

// ListGraphs returns the metadata of every dataset in registration order
func (s *GraphService) ListGraphs(ctx context.Context) []domain.GraphMetadata {
	_, span := s.tracer.Start(ctx, "GraphService.ListGraphs")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.GraphMetadata, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.datasets[id].generator.Metadata())
	}
	span.SetAttributes(attribute.Int("graph.count", len(out)))
	return out
}

// GetGraphMetadata returns a dataset's metadata
func (s *GraphService) GetGraphMetadata(ctx context.Context, id string) (domain.GraphMetadata, error) {
	_, span := s.tracer.Start(ctx, "GraphService.GetGraphMetadata",
		trace.WithAttributes(attribute.String("dataset.id", id)))
	defer span.End()

	reg, err := s.lookup(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.GraphMetadata{}, err
	}
	return reg.generator.Metadata(), nil
}

// GetGraph returns the graph for a view. The returned graph may be shared
// with other callers and must not be modified.
func (s *GraphService) GetGraph(ctx context.Context, id string, view domain.GraphView) (*domain.Graph, error) {
	_, span := s.tracer.Start(ctx, "GraphService.GetGraph", trace.WithAttributes(
		attribute.String("dataset.id", id),
		attribute.Int64("view.timestamp", view.Timestamp()),
		attribute.Int("view.radius", view.Radius()),
		attribute.String("view.focal_point", view.FocalPoint()),
		attribute.Bool("view.prune", view.RemoveInventoryWithNoAlarms()),
	))
	defer span.End()

	reg, err := s.lookup(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if view.VertexLimit() > 0 {
		s.logger.Debug("vertex limit is not enforced", zap.Int("vertex_limit", view.VertexLimit()))
	}

	key := fmt.Sprintf("%s@%d|%s", id, reg.generation, view)
	if cached, ok := s.cache.Get(key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.(*domain.Graph), nil
	}

	graph := reg.generator.Graph(view)
	s.cache.Add(key, graph)

	span.SetAttributes(
		attribute.Bool("cache.hit", false),
		attribute.Int("graph.vertices", len(graph.Vertices)),
		attribute.Int("graph.edges", len(graph.Edges)),
	)
	s.logger.Debug("graph generated",
		zap.String("dataset", id),
		zap.Stringer("view", view),
		zap.Int("vertices", len(graph.Vertices)),
		zap.Int("edges", len(graph.Edges)),
	)
	return graph, nil
}
