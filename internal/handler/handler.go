package handler

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"alecviz/internal/domain"
)

// GraphProvider serves graphs and metadata by dataset id
type GraphProvider interface {
	ListGraphs(ctx context.Context) []domain.GraphMetadata
	GetGraphMetadata(ctx context.Context, id string) (domain.GraphMetadata, error)
	GetGraph(ctx context.Context, id string, view domain.GraphView) (*domain.Graph, error)
}

// GraphHandler handles graph API requests
type GraphHandler struct {
	svc    GraphProvider
	logger *zap.Logger
	now    func() time.Time
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(svc GraphProvider, logger *zap.Logger) *GraphHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GraphHandler{svc: svc, logger: logger, now: time.Now}
}

// Error response structure
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Routes registers the API on r. /health is registered before the dataset
// routes so it is never taken for a dataset id.
func (h *GraphHandler) Routes(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/", h.ListGraphs).Methods(http.MethodGet)
	r.HandleFunc("/{id}/metadata", h.GetGraphMetadata).Methods(http.MethodGet)
	r.HandleFunc("/{id}", h.GetGraph).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		h.writeError(w, "Not found", "", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		h.writeError(w, "Method not allowed", "", http.StatusMethodNotAllowed)
	})
}

// Router creates a router with the API registered
func (h *GraphHandler) Router() *mux.Router {
	r := mux.NewRouter()
	h.Routes(r)
	return r
}

// Health reports liveness
func (h *GraphHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// ListGraphs returns the metadata of every dataset
func (h *GraphHandler) ListGraphs(w http.ResponseWriter, r *http.Request) {
	h.writeCacheable(w, r, h.svc.ListGraphs(r.Context()))
}

// GetGraphMetadata returns one dataset's metadata
func (h *GraphHandler) GetGraphMetadata(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	meta, err := h.svc.GetGraphMetadata(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, "Failed to get graph metadata", err)
		return
	}

	h.writeCacheable(w, r, meta)
}

// GetGraph returns the graph for the view described by the query string
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	view, err := parseView(r.URL.Query(), h.now())
	if err != nil {
		h.writeError(w, "Invalid view parameters", err.Error(), http.StatusBadRequest)
		return
	}

	graph, err := h.svc.GetGraph(r.Context(), id, view)
	if err != nil {
		h.handleServiceError(w, r, "Failed to get graph", err)
		return
	}

	h.writeCacheable(w, r, graph)
}

func (h *GraphHandler) handleServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.writeError(w, "Not found", err.Error(), http.StatusNotFound)
		return
	}
	h.logger.Error(msg,
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.Error(err),
	)
	h.writeError(w, msg, err.Error(), http.StatusInternalServerError)
}

// writeCacheable writes data with an ETag, answering 304 when the client
// already holds the same representation
func (h *GraphHandler) writeCacheable(w http.ResponseWriter, r *http.Request, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
		h.writeError(w, "Failed to encode response", err.Error(), http.StatusInternalServerError)
		return
	}
	body = append(body, '\n')

	etag := fingerprint(body)
	w.Header().Set("ETag", etag)
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("failed to write response", zap.Error(err))
	}
}

func (h *GraphHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON", zap.Error(err))
	}
}

func (h *GraphHandler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	h.writeJSON(w, ErrorResponse{Error: error, Details: details}, statusCode)
}

// fingerprint returns a strong ETag for body
func fingerprint(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// etagMatches implements the If-None-Match weak comparison
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
