package spirits

import "time"

// CardKind distinguishes the draftable card families in the catalog.
type CardKind string

// Card families
const (
	CardKindRune     CardKind = "rune"
	CardKindArtifact CardKind = "artifact"
	CardKindEvent    CardKind = "event"
)

// IsValid reports whether k is a known card family.
func (k CardKind) IsValid() bool {
	switch k {
	case CardKindRune, CardKindArtifact, CardKindEvent:
		return true
	}
	return false
}

// Card is a draftable catalog entry: a rune, artifact, or event card with a
// rarity tier that drives its cost and how many copies enter the supply pool.
type Card struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Kind   CardKind `json:"kind"`
	Rarity Rarity   `json:"rarity"`

	// Cost in shards; expected to lie inside the rarity's cost range.
	Cost int `json:"cost"`

	// Copies overrides the rarity's default copy count when positive.
	Copies int `json:"copies,omitempty"`

	Effect string `json:"effect,omitempty"`
	ArtRef string `json:"art_ref,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
