package v1

import (
	"net/http"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/orchestrators/catalog"
)

// cardRequest carries the caller-supplied card fields for create and
// update. The ID comes from the URL, never from the body.
type cardRequest struct {
	Name   string           `json:"name"`
	Kind   spirits.CardKind `json:"kind"`
	Rarity spirits.Rarity   `json:"rarity"`
	Cost   int              `json:"cost"`
	Copies int              `json:"copies"`
	Effect string           `json:"effect"`
	ArtRef string           `json:"art_ref"`
}

func (h *Handler) handleListCards(w http.ResponseWriter, r *http.Request) {
	input := &catalog.ListCardsInput{}
	if raw := r.URL.Query().Get("rarity"); raw != "" {
		rarity := spirits.Rarity(raw)
		if !rarity.IsValid() {
			h.writeError(w, errors.InvalidArgumentf("unknown rarity %q", raw))
			return
		}
		input.Rarity = rarity
	}

	output, err := h.catalogService.ListCards(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"cards": output.Cards})
}

func (h *Handler) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.catalogService.CreateCard(r.Context(), &catalog.CreateCardInput{
		Name:   req.Name,
		Kind:   req.Kind,
		Rarity: req.Rarity,
		Cost:   req.Cost,
		Copies: req.Copies,
		Effect: req.Effect,
		ArtRef: req.ArtRef,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, output.Card)
}

func (h *Handler) handleGetCard(w http.ResponseWriter, r *http.Request) {
	output, err := h.catalogService.GetCard(r.Context(), &catalog.GetCardInput{
		CardID: r.PathValue("id"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, output.Card)
}

func (h *Handler) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.catalogService.UpdateCard(r.Context(), &catalog.UpdateCardInput{
		Card: &spirits.Card{
			ID:     r.PathValue("id"),
			Name:   req.Name,
			Kind:   req.Kind,
			Rarity: req.Rarity,
			Cost:   req.Cost,
			Copies: req.Copies,
			Effect: req.Effect,
			ArtRef: req.ArtRef,
		},
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, output.Card)
}

func (h *Handler) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	_, err := h.catalogService.DeleteCard(r.Context(), &catalog.DeleteCardInput{
		CardID: r.PathValue("id"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
