package v1

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/arcspirits/spirits-api/internal/engine/shopsim"
	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/orchestrators/simulation"
	simrun "github.com/arcspirits/spirits-api/internal/repositories/sim_run"
)

// runSimulationRequest is the body for POST /v1/simulations and the first
// frame on the stream socket.
type runSimulationRequest struct {
	Params             shopsim.Params `json:"params"`
	Seed               *uint64        `json:"seed"`
	UseCatalogMonsters bool           `json:"use_catalog_monsters"`
}

// streamFrame is one message on the stream socket. Progress frames carry
// Completed/Total, the final frame carries Run, error frames carry
// Code/Message.
type streamFrame struct {
	Type      string      `json:"type"`
	Completed int         `json:"completed,omitempty"`
	Total     int         `json:"total,omitempty"`
	Run       *simrun.Run `json:"run,omitempty"`
	Code      string      `json:"code,omitempty"`
	Message   string      `json:"message,omitempty"`
}

func (h *Handler) handleRunSimulation(w http.ResponseWriter, r *http.Request) {
	var req runSimulationRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.simulationService.RunShopSimulation(r.Context(), &simulation.RunShopSimulationInput{
		Params:             req.Params,
		Seed:               req.Seed,
		UseCatalogMonsters: req.UseCatalogMonsters,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, output.Run)
}

func (h *Handler) handleGetSimulation(w http.ResponseWriter, r *http.Request) {
	output, err := h.simulationService.GetSimulation(r.Context(), &simulation.GetSimulationInput{
		RunID: r.PathValue("id"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, output.Run)
}

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The dashboard is served from a different origin in development.
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleSimulationStream runs one simulation per connection. The client
// sends a single request frame, receives progress frames while the run is
// in flight, and a final result or error frame before the server closes.
func (h *Handler) handleSimulationStream(w http.ResponseWriter, r *http.Request) {
	conn, err := streamUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			h.logger.Debug("websocket close failed", zap.Error(closeErr))
		}
	}()

	var req runSimulationRequest
	if err := conn.ReadJSON(&req); err != nil {
		h.writeStreamError(conn, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request frame"))
		return
	}

	output, err := h.simulationService.RunShopSimulation(r.Context(), &simulation.RunShopSimulationInput{
		Params:             req.Params,
		Seed:               req.Seed,
		UseCatalogMonsters: req.UseCatalogMonsters,
		Progress: func(completed, total int) {
			frame := streamFrame{Type: "progress", Completed: completed, Total: total}
			if writeErr := conn.WriteJSON(frame); writeErr != nil {
				h.logger.Debug("progress frame dropped", zap.Error(writeErr))
			}
		},
	})
	if err != nil {
		h.writeStreamError(conn, err)
		return
	}

	if err := conn.WriteJSON(streamFrame{Type: "result", Run: output.Run}); err != nil {
		h.logger.Warn("failed to write result frame", zap.Error(err))
	}
}

func (h *Handler) writeStreamError(conn *websocket.Conn, err error) {
	frame := streamFrame{
		Type:    "error",
		Code:    errors.GetCode(err).String(),
		Message: errors.GetMessage(err),
	}
	if writeErr := conn.WriteJSON(frame); writeErr != nil {
		h.logger.Debug("error frame dropped", zap.Error(writeErr))
	}
}
