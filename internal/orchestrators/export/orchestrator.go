// Package export implements the dataset bundle builder: the whole catalog
// serialized into one JSON document for downstream tooling.
package export

//go:generate mockgen -destination=mock/mock_service.go -package=exportmock github.com/arcspirits/spirits-api/internal/orchestrators/export Service

import (
	"context"
	"time"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/pkg/clock"
	cardrepo "github.com/arcspirits/spirits-api/internal/repositories/card"
	monsterrepo "github.com/arcspirits/spirits-api/internal/repositories/monster"
)

// BundleVersion tags the bundle layout so consumers can detect drift.
const BundleVersion = "1"

// Bundle is the complete dataset: every catalog entity plus the rarity
// balance table, with tallies for quick sanity checks on the consumer side.
type Bundle struct {
	Version     string                 `json:"version"`
	GeneratedAt time.Time              `json:"generated_at"`
	Rarities    []spirits.RarityConfig `json:"rarities"`
	Monsters    []*spirits.Monster     `json:"monsters"`
	Cards       []*spirits.Card        `json:"cards"`
	Counts      BundleCounts           `json:"counts"`
}

// BundleCounts summarizes the bundle contents
type BundleCounts struct {
	Monsters      int                    `json:"monsters"`
	Cards         int                    `json:"cards"`
	CardsByRarity map[spirits.Rarity]int `json:"cards_by_rarity"`
}

// BuildBundleInput has no parameters yet
type BuildBundleInput struct{}

// BuildBundleOutput contains the assembled bundle
type BuildBundleOutput struct {
	Bundle *Bundle
}

// Service defines the interface for export operations
type Service interface {
	BuildBundle(ctx context.Context, input *BuildBundleInput) (*BuildBundleOutput, error)
}

// Config holds the dependencies for the export orchestrator
type Config struct {
	MonsterRepo monsterrepo.Repository
	CardRepo    cardrepo.Repository
	Clock       clock.Clock

	// Rarities overrides the balance table embedded in the bundle; nil
	// means the defaults.
	Rarities []spirits.RarityConfig

	// RaritySource, when set, is consulted on every bundle build instead
	// of Rarities. It lets the server hand out a hot-reloaded table.
	RaritySource func() []spirits.RarityConfig
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.CardRepo == nil {
		vb.RequiredField("CardRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	monsterRepo  monsterrepo.Repository
	cardRepo     cardrepo.Repository
	clock        clock.Clock
	rarities     []spirits.RarityConfig
	raritySource func() []spirits.RarityConfig
}

// NewOrchestrator creates a new export orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	rarities := cfg.Rarities
	if len(rarities) == 0 {
		rarities = spirits.DefaultRarityConfigs()
	}

	return &orchestrator{
		monsterRepo:  cfg.MonsterRepo,
		cardRepo:     cfg.CardRepo,
		clock:        cfg.Clock,
		rarities:     rarities,
		raritySource: cfg.RaritySource,
	}, nil
}

func (o *orchestrator) rarityTable() []spirits.RarityConfig {
	if o.raritySource != nil {
		if table := o.raritySource(); len(table) > 0 {
			return table
		}
	}
	return o.rarities
}

// BuildBundle assembles the full dataset bundle
func (o *orchestrator) BuildBundle(ctx context.Context, input *BuildBundleInput) (*BuildBundleOutput, error) {
	monsters, err := o.monsterRepo.List(ctx, monsterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters for bundle")
	}

	cards, err := o.cardRepo.List(ctx, cardrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cards for bundle")
	}

	byRarity := make(map[spirits.Rarity]int)
	for _, c := range cards.Cards {
		byRarity[c.Rarity]++
	}

	bundle := &Bundle{
		Version:     BundleVersion,
		GeneratedAt: o.clock.Now(),
		Rarities:    o.rarityTable(),
		Monsters:    monsters.Monsters,
		Cards:       cards.Cards,
		Counts: BundleCounts{
			Monsters:      len(monsters.Monsters),
			Cards:         len(cards.Cards),
			CardsByRarity: byRarity,
		},
	}

	return &BuildBundleOutput{Bundle: bundle}, nil
}
