package monster_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/pkg/clock"
	"github.com/arcspirits/spirits-api/internal/repositories/monster"
	"github.com/arcspirits/spirits-api/internal/testutils"
)

type RedisMonsterTestSuite struct {
	suite.Suite
	repo    monster.Repository
	cleanup func()
	ctx     context.Context
	now     time.Time
}

func (s *RedisMonsterTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	repo, err := monster.NewRedis(&monster.Config{
		Client: client,
		Clock:  &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisMonsterTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisMonsterTestSuite) testMonster(id string) *spirits.Monster {
	return &spirits.Monster{
		ID:            id,
		Name:          "Gloom Stalker",
		Rarity:        spirits.RarityRare,
		ShopTakeLimit: 2,
		Count:         1,
		StageMin:      0,
		StageMax:      3,
	}
}

func (s *RedisMonsterTestSuite) TestNewRedisValidation() {
	_, err := monster.NewRedis(nil)
	s.Error(err)

	_, err = monster.NewRedis(&monster.Config{})
	s.Error(err)
}

func (s *RedisMonsterTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, monster.CreateInput{Monster: s.testMonster("mon_1")})
	s.Require().NoError(err)
	s.Equal(s.now, created.Monster.CreatedAt)

	got, err := s.repo.Get(s.ctx, monster.GetInput{ID: "mon_1"})
	s.Require().NoError(err)
	s.Equal("Gloom Stalker", got.Monster.Name)
	s.Equal(spirits.RarityRare, got.Monster.Rarity)
	s.Equal(2, got.Monster.ShopTakeLimit)
}

func (s *RedisMonsterTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, monster.CreateInput{Monster: s.testMonster("mon_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, monster.CreateInput{Monster: s.testMonster("mon_1")})
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisMonsterTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, monster.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, monster.CreateInput{Monster: &spirits.Monster{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisMonsterTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, monster.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisMonsterTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, monster.CreateInput{Monster: s.testMonster("mon_1")})
	s.Require().NoError(err)

	updated := s.testMonster("mon_1")
	updated.Name = "Gloom Stalker Alpha"
	updated.ShopTakeLimit = 3

	out, err := s.repo.Update(s.ctx, monster.UpdateInput{Monster: updated})
	s.Require().NoError(err)
	s.Equal(s.now, out.Monster.CreatedAt)

	got, err := s.repo.Get(s.ctx, monster.GetInput{ID: "mon_1"})
	s.Require().NoError(err)
	s.Equal("Gloom Stalker Alpha", got.Monster.Name)
	s.Equal(3, got.Monster.ShopTakeLimit)
}

func (s *RedisMonsterTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, monster.UpdateInput{Monster: s.testMonster("missing")})
	s.True(errors.IsNotFound(err))
}

func (s *RedisMonsterTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, monster.CreateInput{Monster: s.testMonster("mon_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, monster.DeleteInput{ID: "mon_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, monster.GetInput{ID: "mon_1"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, monster.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Monsters)
}

func (s *RedisMonsterTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, monster.DeleteInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisMonsterTestSuite) TestListOrdersByName() {
	b := s.testMonster("mon_b")
	b.Name = "Bramble Wisp"
	a := s.testMonster("mon_a")
	a.Name = "Ash Revenant"

	_, err := s.repo.Create(s.ctx, monster.CreateInput{Monster: b})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, monster.CreateInput{Monster: a})
	s.Require().NoError(err)

	list, err := s.repo.List(s.ctx, monster.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Monsters, 2)
	s.Equal("Ash Revenant", list.Monsters[0].Name)
	s.Equal("Bramble Wisp", list.Monsters[1].Name)
}

func TestRedisMonsterTestSuite(t *testing.T) {
	suite.Run(t, new(RedisMonsterTestSuite))
}
