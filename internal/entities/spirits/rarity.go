package spirits

// Rarity is a named tier of card scarcity used for balance costing and for
// pool composition in the shop simulator.
type Rarity string

// Rarity tiers from lowest to highest. Unknown tags cards whose tier has not
// been assigned yet in the catalog.
const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
	RarityUnknown   Rarity = "unknown"
)

// AllRarities returns the tiers in ascending order, excluding unknown.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary, RarityMythic}
}

// IsValid reports whether r is one of the known tiers (including unknown).
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary, RarityMythic, RarityUnknown:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	case RarityMythic:
		return "Mythic"
	default:
		return "Unknown"
	}
}

// RarityConfig holds the static per-tier balance numbers: how many copies of
// each card at this tier enter the supply pool, and the valid cost range for
// cards of this tier.
type RarityConfig struct {
	Rarity  Rarity `json:"rarity" yaml:"rarity"`
	Copies  int    `json:"copies" yaml:"copies"`
	MinCost int    `json:"min_cost" yaml:"min_cost"`
	MaxCost int    `json:"max_cost" yaml:"max_cost"`
}

// DefaultRarityConfigs returns the baseline balance table used when no
// catalog configuration is loaded.
func DefaultRarityConfigs() []RarityConfig {
	return []RarityConfig{
		{Rarity: RarityCommon, Copies: 8, MinCost: 1, MaxCost: 3},
		{Rarity: RarityRare, Copies: 6, MinCost: 3, MaxCost: 5},
		{Rarity: RarityEpic, Copies: 4, MinCost: 5, MaxCost: 7},
		{Rarity: RarityLegendary, Copies: 2, MinCost: 7, MaxCost: 9},
		{Rarity: RarityMythic, Copies: 1, MinCost: 9, MaxCost: 12},
	}
}
