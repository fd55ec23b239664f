package simrun_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arcspirits/spirits-api/internal/engine/shopsim"
	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/pkg/clock"
	simrun "github.com/arcspirits/spirits-api/internal/repositories/sim_run"
	"github.com/arcspirits/spirits-api/internal/testutils"
)

type RedisSimRunTestSuite struct {
	suite.Suite
	repo    simrun.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *RedisSimRunTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.clock = &clock.Fixed{T: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}

	repo, err := simrun.NewRedis(&simrun.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisSimRunTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisSimRunTestSuite) testRun(id string) *simrun.Run {
	params := shopsim.Params{
		CopiesByRarity: map[spirits.Rarity]int{spirits.RarityCommon: 8},
		Players:        2,
		ShopSize:       4,
		Stages:         1,
		Iterations:     1,
		RNG:            shopsim.NewSeededRNG(1),
	}
	return &simrun.Run{
		ID:     id,
		Params: params,
		Result: shopsim.Run(params),
	}
}

func (s *RedisSimRunTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, simrun.CreateInput{Run: s.testRun("sim_1")})
	s.Require().NoError(err)
	s.Equal(s.clock.T, created.Run.CreatedAt)
	s.Equal(s.clock.T.Add(time.Hour), created.Run.ExpiresAt)

	got, err := s.repo.Get(s.ctx, simrun.GetInput{ID: "sim_1"})
	s.Require().NoError(err)
	s.Equal(created.Run.Result, got.Run.Result)
	s.Equal(2, got.Run.Params.Players)
}

func (s *RedisSimRunTestSuite) TestExpiredRunIsGone() {
	_, err := s.repo.Create(s.ctx, simrun.CreateInput{
		Run: s.testRun("sim_1"),
		TTL: 10 * time.Minute,
	})
	s.Require().NoError(err)

	s.clock.T = s.clock.T.Add(11 * time.Minute)

	_, err = s.repo.Get(s.ctx, simrun.GetInput{ID: "sim_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisSimRunTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, simrun.CreateInput{Run: s.testRun("sim_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, simrun.DeleteInput{ID: "sim_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, simrun.GetInput{ID: "sim_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisSimRunTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, simrun.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, simrun.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisSimRunTestSuite(t *testing.T) {
	suite.Run(t, new(RedisSimRunTestSuite))
}
