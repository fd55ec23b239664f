// Package catalog implements the orchestrator for the game-entity catalog:
// monsters and draftable cards, with validation and ID assignment.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/arcspirits/spirits-api/internal/orchestrators/catalog Service

import (
	"context"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/pkg/idgen"
	cardrepo "github.com/arcspirits/spirits-api/internal/repositories/card"
	monsterrepo "github.com/arcspirits/spirits-api/internal/repositories/monster"
)

// Service defines the interface for catalog operations
type Service interface {
	CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error)
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)
	UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error)
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error)
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)

	CreateCard(ctx context.Context, input *CreateCardInput) (*CreateCardOutput, error)
	GetCard(ctx context.Context, input *GetCardInput) (*GetCardOutput, error)
	UpdateCard(ctx context.Context, input *UpdateCardInput) (*UpdateCardOutput, error)
	DeleteCard(ctx context.Context, input *DeleteCardInput) (*DeleteCardOutput, error)
	ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	MonsterRepo monsterrepo.Repository
	CardRepo    cardrepo.Repository
	IDGenerator idgen.Generator
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
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	monsterRepo monsterrepo.Repository
	cardRepo    cardrepo.Repository
	idGen       idgen.Generator
}

// NewOrchestrator creates a new catalog orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		monsterRepo: cfg.MonsterRepo,
		cardRepo:    cfg.CardRepo,
		idGen:       cfg.IDGenerator,
	}, nil
}

func validateMonster(m *spirits.Monster) error {
	vb := errors.NewValidationBuilder()

	if m.Name == "" {
		vb.RequiredField("name")
	}
	if !m.Rarity.IsValid() {
		vb.InvalidField("rarity", "unknown tier "+string(m.Rarity))
	}
	if m.ShopTakeLimit < 0 {
		vb.InvalidField("shop_take_limit", "must not be negative")
	}
	if m.Count < 0 {
		vb.InvalidField("count", "must not be negative")
	}
	if m.StageMax < m.StageMin {
		vb.InvalidField("stage_max", "must not be before stage_min")
	}

	return vb.Build()
}

func validateCard(c *spirits.Card) error {
	vb := errors.NewValidationBuilder()

	if c.Name == "" {
		vb.RequiredField("name")
	}
	if !c.Kind.IsValid() {
		vb.InvalidField("kind", "unknown kind "+string(c.Kind))
	}
	if !c.Rarity.IsValid() {
		vb.InvalidField("rarity", "unknown tier "+string(c.Rarity))
	}
	if c.Cost < 0 {
		vb.InvalidField("cost", "must not be negative")
	}
	if c.Copies < 0 {
		vb.InvalidField("copies", "must not be negative")
	}

	return vb.Build()
}

// CreateMonster validates the input, assigns an ID, and stores the monster
func (o *orchestrator) CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	m := &spirits.Monster{
		ID:            o.idGen.Generate(),
		Name:          input.Name,
		Rarity:        input.Rarity,
		ShopTakeLimit: input.ShopTakeLimit,
		Count:         input.Count,
		StageMin:      input.StageMin,
		StageMax:      input.StageMax,
		Lore:          input.Lore,
		ArtRef:        input.ArtRef,
		Strength:      input.Strength,
	}
	if err := validateMonster(m); err != nil {
		return nil, err
	}

	out, err := o.monsterRepo.Create(ctx, monsterrepo.CreateInput{Monster: m})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create monster")
	}

	return &CreateMonsterOutput{Monster: out.Monster}, nil
}

// GetMonster fetches a monster by ID
func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil || input.MonsterID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	out, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, err
	}

	return &GetMonsterOutput{Monster: out.Monster}, nil
}

// UpdateMonster validates and stores the full replacement state
func (o *orchestrator) UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error) {
	if input == nil || input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}
	if err := validateMonster(input.Monster); err != nil {
		return nil, err
	}

	out, err := o.monsterRepo.Update(ctx, monsterrepo.UpdateInput{Monster: input.Monster})
	if err != nil {
		return nil, err
	}

	return &UpdateMonsterOutput{Monster: out.Monster}, nil
}

// DeleteMonster removes a monster from the catalog
func (o *orchestrator) DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error) {
	if input == nil || input.MonsterID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	if _, err := o.monsterRepo.Delete(ctx, monsterrepo.DeleteInput{ID: input.MonsterID}); err != nil {
		return nil, err
	}

	return &DeleteMonsterOutput{}, nil
}

// ListMonsters returns the full monster catalog
func (o *orchestrator) ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error) {
	out, err := o.monsterRepo.List(ctx, monsterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters")
	}

	return &ListMonstersOutput{Monsters: out.Monsters}, nil
}

// CreateCard validates the input, assigns an ID, and stores the card
func (o *orchestrator) CreateCard(ctx context.Context, input *CreateCardInput) (*CreateCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	c := &spirits.Card{
		ID:     o.idGen.Generate(),
		Name:   input.Name,
		Kind:   input.Kind,
		Rarity: input.Rarity,
		Cost:   input.Cost,
		Copies: input.Copies,
		Effect: input.Effect,
		ArtRef: input.ArtRef,
	}
	if err := validateCard(c); err != nil {
		return nil, err
	}

	out, err := o.cardRepo.Create(ctx, cardrepo.CreateInput{Card: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create card")
	}

	return &CreateCardOutput{Card: out.Card}, nil
}

// GetCard fetches a card by ID
func (o *orchestrator) GetCard(ctx context.Context, input *GetCardInput) (*GetCardOutput, error) {
	if input == nil || input.CardID == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}

	out, err := o.cardRepo.Get(ctx, cardrepo.GetInput{ID: input.CardID})
	if err != nil {
		return nil, err
	}

	return &GetCardOutput{Card: out.Card}, nil
}

// UpdateCard validates and stores the full replacement state
func (o *orchestrator) UpdateCard(ctx context.Context, input *UpdateCardInput) (*UpdateCardOutput, error) {
	if input == nil || input.Card == nil {
		return nil, errors.InvalidArgument("card is required")
	}
	if input.Card.ID == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}
	if err := validateCard(input.Card); err != nil {
		return nil, err
	}

	out, err := o.cardRepo.Update(ctx, cardrepo.UpdateInput{Card: input.Card})
	if err != nil {
		return nil, err
	}

	return &UpdateCardOutput{Card: out.Card}, nil
}

// DeleteCard removes a card from the catalog
func (o *orchestrator) DeleteCard(ctx context.Context, input *DeleteCardInput) (*DeleteCardOutput, error) {
	if input == nil || input.CardID == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}

	if _, err := o.cardRepo.Delete(ctx, cardrepo.DeleteInput{ID: input.CardID}); err != nil {
		return nil, err
	}

	return &DeleteCardOutput{}, nil
}

// ListCards returns cards, optionally filtered by rarity
func (o *orchestrator) ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error) {
	var rarity spirits.Rarity
	if input != nil {
		if input.Rarity != "" && !input.Rarity.IsValid() {
			return nil, errors.InvalidArgumentf("unknown rarity %q", input.Rarity)
		}
		rarity = input.Rarity
	}

	out, err := o.cardRepo.List(ctx, cardrepo.ListInput{Rarity: rarity})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cards")
	}

	return &ListCardsOutput{Cards: out.Cards}, nil
}
