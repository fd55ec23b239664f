package v1

import (
	"net/http"

	"github.com/arcspirits/spirits-api/internal/orchestrators/export"
)

func (h *Handler) handleExportBundle(w http.ResponseWriter, r *http.Request) {
	output, err := h.exportService.BuildBundle(r.Context(), &export.BuildBundleInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, output.Bundle)
}
