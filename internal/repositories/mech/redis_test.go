package mech_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	"github.com/KirkDiggler/mechbay-api/internal/pkg/clock"
	"github.com/KirkDiggler/mechbay-api/internal/repositories/mech"
	"github.com/KirkDiggler/mechbay-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	repo      mech.Repository
	ctx       context.Context
	cleanup   func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedis(s.T())
	s.miniRedis = mr
	s.cleanup = cleanup

	repo, err := mech.NewRedis(&mech.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{At: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	m := testutils.CreateTestMech("m1", testutils.TestCharacterID, testutils.TestMechID)
	_, err := s.repo.Create(s.ctx, mech.CreateInput{Mech: m})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, mech.GetInput{ID: "m1"})
	s.Require().NoError(err)
	s.Equal(testutils.TestMechID, out.Mech.MechID)
	s.Equal(10.0, out.Mech.BodyPartHP[equipment.LocationTorsoRear])
	s.Len(out.Mech.BodyPartMaxArmour, len(equipment.HitLocations()))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	testCases := []struct {
		name string
		mech *equipment.Mech
	}{
		{name: "nil mech", mech: nil},
		{name: "empty id", mech: testutils.CreateTestMech("", testutils.TestCharacterID, "a")},
		{name: "empty owner", mech: testutils.CreateTestMech("m1", "", "a")},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, mech.CreateInput{Mech: tc.mech})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestGetFillsMissingBodyStats() {
	s.Require().NoError(s.miniRedis.Set("mech:legacy",
		`{"id":"legacy","ownerID":"c1","mechID":"abc","bodyPartHP":{"head":3}}`))

	out, err := s.repo.Get(s.ctx, mech.GetInput{ID: "legacy"})
	s.Require().NoError(err)
	s.Equal(3.0, out.Mech.BodyPartHP[equipment.LocationHead])
	s.Equal(0.0, out.Mech.BodyPartHP[equipment.LocationLegR])
	s.Len(out.Mech.BodyPartArmour, len(equipment.HitLocations()))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	m := testutils.CreateTestMech("m1", testutils.TestCharacterID, testutils.TestMechID)
	_, err := s.repo.Create(s.ctx, mech.CreateInput{Mech: m})
	s.Require().NoError(err)

	m.Weight = 75
	out, err := s.repo.Update(s.ctx, mech.UpdateInput{Mech: m})
	s.Require().NoError(err)
	s.Equal(75.0, out.Mech.Weight)

	moved := m.Copy()
	moved.OwnerID = "other"
	_, err = s.repo.Update(s.ctx, mech.UpdateInput{Mech: moved})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteAndList() {
	for _, m := range []*equipment.Mech{
		testutils.CreateTestMech("m1", testutils.TestCharacterID, "a"),
		testutils.CreateTestMech("m2", testutils.TestCharacterID, "b"),
		testutils.CreateTestMech("m3", "other", "c"),
	} {
		_, err := s.repo.Create(s.ctx, mech.CreateInput{Mech: m})
		s.Require().NoError(err)
	}

	_, err := s.repo.Delete(s.ctx, mech.DeleteInput{ID: "m1"})
	s.Require().NoError(err)

	out, err := s.repo.ListByOwner(s.ctx, mech.ListByOwnerInput{OwnerID: testutils.TestCharacterID})
	s.Require().NoError(err)
	s.Require().Len(out.Mechs, 1)
	s.Equal("m2", out.Mechs[0].ID)

	_, err = s.repo.Delete(s.ctx, mech.DeleteInput{ID: "m1"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
