package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/orchestrators/catalog"
	"github.com/arcspirits/spirits-api/internal/pkg/idgen"
	cardrepo "github.com/arcspirits/spirits-api/internal/repositories/card"
	cardmock "github.com/arcspirits/spirits-api/internal/repositories/card/mock"
	monsterrepo "github.com/arcspirits/spirits-api/internal/repositories/monster"
	monstermock "github.com/arcspirits/spirits-api/internal/repositories/monster/mock"
)

type CatalogOrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	monsterRepo *monstermock.MockRepository
	cardRepo    *cardmock.MockRepository
	svc         catalog.Service
	ctx         context.Context
}

func (s *CatalogOrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.monsterRepo = monstermock.NewMockRepository(s.ctrl)
	s.cardRepo = cardmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	svc, err := catalog.NewOrchestrator(&catalog.Config{
		MonsterRepo: s.monsterRepo,
		CardRepo:    s.cardRepo,
		IDGenerator: idgen.NewSequential("mon"),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *CatalogOrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CatalogOrchestratorTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := catalog.NewOrchestrator(&catalog.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogOrchestratorTestSuite) TestCreateMonster() {
	s.monsterRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input monsterrepo.CreateInput) (*monsterrepo.CreateOutput, error) {
			s.Equal("mon_1", input.Monster.ID)
			s.Equal("Gloom Stalker", input.Monster.Name)
			return &monsterrepo.CreateOutput{Monster: input.Monster}, nil
		})

	out, err := s.svc.CreateMonster(s.ctx, &catalog.CreateMonsterInput{
		Name:          "Gloom Stalker",
		Rarity:        spirits.RarityRare,
		ShopTakeLimit: 2,
		Count:         1,
		StageMin:      0,
		StageMax:      3,
	})
	s.Require().NoError(err)
	s.Equal("mon_1", out.Monster.ID)
}

func (s *CatalogOrchestratorTestSuite) TestCreateMonsterValidation() {
	testCases := []struct {
		name  string
		input *catalog.CreateMonsterInput
	}{
		{
			name:  "missing name",
			input: &catalog.CreateMonsterInput{Rarity: spirits.RarityRare},
		},
		{
			name:  "bad rarity",
			input: &catalog.CreateMonsterInput{Name: "X", Rarity: "shiny"},
		},
		{
			name: "negative take limit",
			input: &catalog.CreateMonsterInput{
				Name: "X", Rarity: spirits.RarityRare, ShopTakeLimit: -1,
			},
		},
		{
			name: "inverted stage window",
			input: &catalog.CreateMonsterInput{
				Name: "X", Rarity: spirits.RarityRare, StageMin: 3, StageMax: 1,
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.CreateMonster(s.ctx, tc.input)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *CatalogOrchestratorTestSuite) TestGetMonsterNotFound() {
	s.monsterRepo.EXPECT().
		Get(s.ctx, monsterrepo.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("monster with ID missing not found"))

	_, err := s.svc.GetMonster(s.ctx, &catalog.GetMonsterInput{MonsterID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *CatalogOrchestratorTestSuite) TestUpdateMonsterRequiresID() {
	_, err := s.svc.UpdateMonster(s.ctx, &catalog.UpdateMonsterInput{
		Monster: &spirits.Monster{Name: "X", Rarity: spirits.RarityRare},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogOrchestratorTestSuite) TestDeleteMonster() {
	s.monsterRepo.EXPECT().
		Delete(s.ctx, monsterrepo.DeleteInput{ID: "mon_9"}).
		Return(&monsterrepo.DeleteOutput{}, nil)

	_, err := s.svc.DeleteMonster(s.ctx, &catalog.DeleteMonsterInput{MonsterID: "mon_9"})
	s.NoError(err)
}

func (s *CatalogOrchestratorTestSuite) TestCreateCard() {
	s.cardRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input cardrepo.CreateInput) (*cardrepo.CreateOutput, error) {
			s.NotEmpty(input.Card.ID)
			s.Equal(spirits.CardKindRune, input.Card.Kind)
			return &cardrepo.CreateOutput{Card: input.Card}, nil
		})

	out, err := s.svc.CreateCard(s.ctx, &catalog.CreateCardInput{
		Name:   "Emberlink",
		Kind:   spirits.CardKindRune,
		Rarity: spirits.RarityCommon,
		Cost:   2,
	})
	s.Require().NoError(err)
	s.Equal("Emberlink", out.Card.Name)
}

func (s *CatalogOrchestratorTestSuite) TestCreateCardValidation() {
	_, err := s.svc.CreateCard(s.ctx, &catalog.CreateCardInput{
		Name:   "Emberlink",
		Kind:   "sticker",
		Rarity: spirits.RarityCommon,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.CreateCard(s.ctx, &catalog.CreateCardInput{
		Name:   "Emberlink",
		Kind:   spirits.CardKindRune,
		Rarity: spirits.RarityCommon,
		Cost:   -1,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogOrchestratorTestSuite) TestListCards() {
	s.cardRepo.EXPECT().
		List(s.ctx, cardrepo.ListInput{Rarity: spirits.RarityRare}).
		Return(&cardrepo.ListOutput{Cards: []*spirits.Card{
			{ID: "card_1", Name: "Tidebinder", Rarity: spirits.RarityRare},
		}}, nil)

	out, err := s.svc.ListCards(s.ctx, &catalog.ListCardsInput{Rarity: spirits.RarityRare})
	s.Require().NoError(err)
	s.Len(out.Cards, 1)
}

func (s *CatalogOrchestratorTestSuite) TestListCardsRejectsUnknownRarity() {
	_, err := s.svc.ListCards(s.ctx, &catalog.ListCardsInput{Rarity: "shiny"})
	s.True(errors.IsInvalidArgument(err))
}

func TestCatalogOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogOrchestratorTestSuite))
}
