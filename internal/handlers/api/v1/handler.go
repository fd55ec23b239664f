// Package v1 exposes the HTTP/JSON API: catalog CRUD, shop simulations,
// and the client bundle export.
package v1

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/orchestrators/catalog"
	"github.com/arcspirits/spirits-api/internal/orchestrators/export"
	"github.com/arcspirits/spirits-api/internal/orchestrators/simulation"
)

// HandlerConfig holds dependencies for the API handler
type HandlerConfig struct {
	CatalogService    catalog.Service
	SimulationService simulation.Service
	ExportService     export.Service

	// HealthCheck, when set, is called by /healthz. A non-nil error
	// marks the service unhealthy.
	HealthCheck func(ctx context.Context) error

	Logger *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogService == nil {
		vb.RequiredField("CatalogService")
	}
	if c.SimulationService == nil {
		vb.RequiredField("SimulationService")
	}
	if c.ExportService == nil {
		vb.RequiredField("ExportService")
	}

	return vb.Build()
}

// Handler implements the versioned HTTP API
type Handler struct {
	catalogService    catalog.Service
	simulationService simulation.Service
	exportService     export.Service
	healthCheck       func(ctx context.Context) error
	logger            *zap.Logger
}

// NewHandler creates a new API handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		catalogService:    cfg.CatalogService,
		simulationService: cfg.SimulationService,
		exportService:     cfg.ExportService,
		healthCheck:       cfg.HealthCheck,
		logger:            logger,
	}, nil
}

// Register attaches all API routes to the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	mux.HandleFunc("GET /v1/monsters", h.handleListMonsters)
	mux.HandleFunc("POST /v1/monsters", h.handleCreateMonster)
	mux.HandleFunc("GET /v1/monsters/{id}", h.handleGetMonster)
	mux.HandleFunc("PUT /v1/monsters/{id}", h.handleUpdateMonster)
	mux.HandleFunc("DELETE /v1/monsters/{id}", h.handleDeleteMonster)

	mux.HandleFunc("GET /v1/cards", h.handleListCards)
	mux.HandleFunc("POST /v1/cards", h.handleCreateCard)
	mux.HandleFunc("GET /v1/cards/{id}", h.handleGetCard)
	mux.HandleFunc("PUT /v1/cards/{id}", h.handleUpdateCard)
	mux.HandleFunc("DELETE /v1/cards/{id}", h.handleDeleteCard)

	mux.HandleFunc("POST /v1/simulations", h.handleRunSimulation)
	mux.HandleFunc("GET /v1/simulations/stream", h.handleSimulationStream)
	mux.HandleFunc("GET /v1/simulations/{id}", h.handleGetSimulation)

	mux.HandleFunc("GET /v1/export/bundle", h.handleExportBundle)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if h.healthCheck != nil {
		if err := h.healthCheck(r.Context()); err != nil {
			h.logger.Warn("health check failed", zap.Error(err))
			h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("code", code.String()), zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (h *Handler) decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body")
	}
	return nil
}
