package spirits

import "time"

// Monster is an NPC entity that appears during a stage window and consumes
// matching-rarity cards from the shop while it is active.
type Monster struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Rarity of the shop cards this monster consumes.
	Rarity Rarity `json:"rarity"`

	// ShopTakeLimit caps how many cards one occurrence of this monster can
	// take from the shop across the whole game. Zero means it never takes.
	ShopTakeLimit int `json:"shop_take_limit"`

	// Count is how many occurrences of this monster are in play.
	Count int `json:"count"`

	// Stage window in which the monster is active (inclusive).
	StageMin int `json:"stage_min"`
	StageMax int `json:"stage_max"`

	Lore     string `json:"lore,omitempty"`
	ArtRef   string `json:"art_ref,omitempty"`
	Strength int    `json:"strength,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActiveAt reports whether the monster is in play during the given stage.
func (m *Monster) ActiveAt(stage int) bool {
	return stage >= m.StageMin && stage <= m.StageMax
}
