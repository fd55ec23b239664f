package export_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/orchestrators/export"
	"github.com/arcspirits/spirits-api/internal/pkg/clock"
	cardrepo "github.com/arcspirits/spirits-api/internal/repositories/card"
	cardmock "github.com/arcspirits/spirits-api/internal/repositories/card/mock"
	monsterrepo "github.com/arcspirits/spirits-api/internal/repositories/monster"
	monstermock "github.com/arcspirits/spirits-api/internal/repositories/monster/mock"
)

type ExportOrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	monsterRepo *monstermock.MockRepository
	cardRepo    *cardmock.MockRepository
	svc         export.Service
	ctx         context.Context
	now         time.Time
}

func (s *ExportOrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.monsterRepo = monstermock.NewMockRepository(s.ctrl)
	s.cardRepo = cardmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	svc, err := export.NewOrchestrator(&export.Config{
		MonsterRepo: s.monsterRepo,
		CardRepo:    s.cardRepo,
		Clock:       &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *ExportOrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExportOrchestratorTestSuite) TestBuildBundle() {
	s.monsterRepo.EXPECT().
		List(s.ctx, monsterrepo.ListInput{}).
		Return(&monsterrepo.ListOutput{Monsters: []*spirits.Monster{
			{ID: "mon_1", Name: "Gloom Stalker", Rarity: spirits.RarityRare},
		}}, nil)
	s.cardRepo.EXPECT().
		List(s.ctx, cardrepo.ListInput{}).
		Return(&cardrepo.ListOutput{Cards: []*spirits.Card{
			{ID: "card_1", Name: "Emberlink", Rarity: spirits.RarityCommon},
			{ID: "card_2", Name: "Tidebinder", Rarity: spirits.RarityRare},
			{ID: "card_3", Name: "Stonewake", Rarity: spirits.RarityCommon},
		}}, nil)

	out, err := s.svc.BuildBundle(s.ctx, &export.BuildBundleInput{})
	s.Require().NoError(err)

	bundle := out.Bundle
	s.Equal(export.BundleVersion, bundle.Version)
	s.Equal(s.now, bundle.GeneratedAt)
	s.Len(bundle.Rarities, 5)
	s.Equal(1, bundle.Counts.Monsters)
	s.Equal(3, bundle.Counts.Cards)
	s.Equal(2, bundle.Counts.CardsByRarity[spirits.RarityCommon])
	s.Equal(1, bundle.Counts.CardsByRarity[spirits.RarityRare])
}

func (s *ExportOrchestratorTestSuite) TestBuildBundlePropagatesErrors() {
	s.monsterRepo.EXPECT().
		List(s.ctx, monsterrepo.ListInput{}).
		Return(nil, errors.Internal("redis down"))

	_, err := s.svc.BuildBundle(s.ctx, &export.BuildBundleInput{})
	s.Error(err)
}

func (s *ExportOrchestratorTestSuite) TestBuildBundleUsesRaritySource() {
	table := []spirits.RarityConfig{
		{Rarity: spirits.RarityCommon, Copies: 12, MinCost: 1, MaxCost: 3},
	}
	svc, err := export.NewOrchestrator(&export.Config{
		MonsterRepo:  s.monsterRepo,
		CardRepo:     s.cardRepo,
		Clock:        &clock.Fixed{T: s.now},
		RaritySource: func() []spirits.RarityConfig { return table },
	})
	s.Require().NoError(err)

	s.monsterRepo.EXPECT().
		List(s.ctx, monsterrepo.ListInput{}).
		Return(&monsterrepo.ListOutput{}, nil)
	s.cardRepo.EXPECT().
		List(s.ctx, cardrepo.ListInput{}).
		Return(&cardrepo.ListOutput{}, nil)

	out, err := svc.BuildBundle(s.ctx, &export.BuildBundleInput{})
	s.Require().NoError(err)
	s.Equal(table, out.Bundle.Rarities)
}

func (s *ExportOrchestratorTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := export.NewOrchestrator(&export.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func TestExportOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(ExportOrchestratorTestSuite))
}
