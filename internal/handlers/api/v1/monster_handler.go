package v1

import (
	"net/http"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/orchestrators/catalog"
)

// monsterRequest carries the caller-supplied monster fields for create and
// update. The ID comes from the URL, never from the body.
type monsterRequest struct {
	Name          string         `json:"name"`
	Rarity        spirits.Rarity `json:"rarity"`
	ShopTakeLimit int            `json:"shop_take_limit"`
	Count         int            `json:"count"`
	StageMin      int            `json:"stage_min"`
	StageMax      int            `json:"stage_max"`
	Lore          string         `json:"lore"`
	ArtRef        string         `json:"art_ref"`
	Strength      int            `json:"strength"`
}

func (h *Handler) handleListMonsters(w http.ResponseWriter, r *http.Request) {
	output, err := h.catalogService.ListMonsters(r.Context(), &catalog.ListMonstersInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"monsters": output.Monsters})
}

func (h *Handler) handleCreateMonster(w http.ResponseWriter, r *http.Request) {
	var req monsterRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.catalogService.CreateMonster(r.Context(), &catalog.CreateMonsterInput{
		Name:          req.Name,
		Rarity:        req.Rarity,
		ShopTakeLimit: req.ShopTakeLimit,
		Count:         req.Count,
		StageMin:      req.StageMin,
		StageMax:      req.StageMax,
		Lore:          req.Lore,
		ArtRef:        req.ArtRef,
		Strength:      req.Strength,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, output.Monster)
}

func (h *Handler) handleGetMonster(w http.ResponseWriter, r *http.Request) {
	output, err := h.catalogService.GetMonster(r.Context(), &catalog.GetMonsterInput{
		MonsterID: r.PathValue("id"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, output.Monster)
}

func (h *Handler) handleUpdateMonster(w http.ResponseWriter, r *http.Request) {
	var req monsterRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.catalogService.UpdateMonster(r.Context(), &catalog.UpdateMonsterInput{
		Monster: &spirits.Monster{
			ID:            r.PathValue("id"),
			Name:          req.Name,
			Rarity:        req.Rarity,
			ShopTakeLimit: req.ShopTakeLimit,
			Count:         req.Count,
			StageMin:      req.StageMin,
			StageMax:      req.StageMax,
			Lore:          req.Lore,
			ArtRef:        req.ArtRef,
			Strength:      req.Strength,
		},
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, output.Monster)
}

func (h *Handler) handleDeleteMonster(w http.ResponseWriter, r *http.Request) {
	_, err := h.catalogService.DeleteMonster(r.Context(), &catalog.DeleteMonsterInput{
		MonsterID: r.PathValue("id"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
