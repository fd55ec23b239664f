package catalog

import (
	"github.com/arcspirits/spirits-api/internal/entities/spirits"
)

// CreateMonsterInput contains the monster fields supplied by the caller.
// The ID is assigned by the orchestrator.
type CreateMonsterInput struct {
	Name          string
	Rarity        spirits.Rarity
	ShopTakeLimit int
	Count         int
	StageMin      int
	StageMax      int
	Lore          string
	ArtRef        string
	Strength      int
}

// CreateMonsterOutput contains the stored monster
type CreateMonsterOutput struct {
	Monster *spirits.Monster
}

// GetMonsterInput identifies the monster to fetch
type GetMonsterInput struct {
	MonsterID string
}

// GetMonsterOutput contains the fetched monster
type GetMonsterOutput struct {
	Monster *spirits.Monster
}

// UpdateMonsterInput contains the full replacement state for a monster
type UpdateMonsterInput struct {
	Monster *spirits.Monster
}

// UpdateMonsterOutput contains the stored monster
type UpdateMonsterOutput struct {
	Monster *spirits.Monster
}

// DeleteMonsterInput identifies the monster to delete
type DeleteMonsterInput struct {
	MonsterID string
}

// DeleteMonsterOutput is empty; deletion has no result payload
type DeleteMonsterOutput struct{}

// ListMonstersInput has no filters yet
type ListMonstersInput struct{}

// ListMonstersOutput contains the full monster catalog
type ListMonstersOutput struct {
	Monsters []*spirits.Monster
}

// CreateCardInput contains the card fields supplied by the caller.
// The ID is assigned by the orchestrator.
type CreateCardInput struct {
	Name   string
	Kind   spirits.CardKind
	Rarity spirits.Rarity
	Cost   int
	Copies int
	Effect string
	ArtRef string
}

// CreateCardOutput contains the stored card
type CreateCardOutput struct {
	Card *spirits.Card
}

// GetCardInput identifies the card to fetch
type GetCardInput struct {
	CardID string
}

// GetCardOutput contains the fetched card
type GetCardOutput struct {
	Card *spirits.Card
}

// UpdateCardInput contains the full replacement state for a card
type UpdateCardInput struct {
	Card *spirits.Card
}

// UpdateCardOutput contains the stored card
type UpdateCardOutput struct {
	Card *spirits.Card
}

// DeleteCardInput identifies the card to delete
type DeleteCardInput struct {
	CardID string
}

// DeleteCardOutput is empty; deletion has no result payload
type DeleteCardOutput struct{}

// ListCardsInput narrows the list to one rarity tier when Rarity is set
type ListCardsInput struct {
	Rarity spirits.Rarity
}

// ListCardsOutput contains the cards matching the filter
type ListCardsOutput struct {
	Cards []*spirits.Card
}
