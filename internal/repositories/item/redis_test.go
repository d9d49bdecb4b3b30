package item_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	"github.com/KirkDiggler/mechbay-api/internal/repositories/item"
	"github.com/KirkDiggler/mechbay-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	repo      item.Repository
	ctx       context.Context
	cleanup   func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedis(s.T())
	s.miniRedis = mr
	s.cleanup = cleanup

	repo, err := item.NewRedis(&item.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateAndList() {
	medkit := testutils.CreateTestItem("i1", testutils.TestCharacterID, "Medkit")
	medkit.Quantity = 4
	_, err := s.repo.Create(s.ctx, item.CreateInput{Item: medkit})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, item.CreateInput{Item: medkit})
	s.True(errors.IsAlreadyExists(err))

	out, err := s.repo.ListByOwner(s.ctx, item.ListByOwnerInput{OwnerID: testutils.TestCharacterID})
	s.Require().NoError(err)
	s.Require().Len(out.Items, 1)
	s.Equal(2.0, out.Items[0].TotalWeight)
}

func (s *RedisRepositoryTestSuite) TestUnknownLocationReadsAsHead() {
	s.Require().NoError(s.miniRedis.Set("item:old",
		`{"id":"old","ownerID":"c1","name":"Flare","quantity":1,"weight":1,"location":"backpack"}`))

	out, err := s.repo.Get(s.ctx, item.GetInput{ID: "old"})
	s.Require().NoError(err)
	s.Equal(equipment.LocationHead, out.Item.Location)
}

func (s *RedisRepositoryTestSuite) TestUpdateAndDelete() {
	it := testutils.CreateTestItem("i1", testutils.TestCharacterID, "Medkit")
	_, err := s.repo.Create(s.ctx, item.CreateInput{Item: it})
	s.Require().NoError(err)

	it.Location = equipment.LocationTorsoC
	out, err := s.repo.Update(s.ctx, item.UpdateInput{Item: it})
	s.Require().NoError(err)
	s.Equal(equipment.LocationTorsoC, out.Item.Location)

	_, err = s.repo.Delete(s.ctx, item.DeleteInput{ID: "i1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, item.GetInput{ID: "i1"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
