package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/mechbay-api/internal/engine"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	"github.com/KirkDiggler/mechbay-api/internal/testutils"
)

const owner = testutils.TestCharacterID

type EngineTestSuite struct {
	suite.Suite
	engine engine.Engine
	mech   *equipment.Mech
	other  *equipment.Mech
}

func (s *EngineTestSuite) SetupTest() {
	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = eng
	s.mech = testutils.CreateTestMech("m1", owner, testutils.TestMechID)
	s.other = testutils.CreateTestMech("m2", owner, "def456")
}

func (s *EngineTestSuite) mechs() []*equipment.Mech {
	return []*equipment.Mech{s.mech, s.other}
}

func (s *EngineTestSuite) TestResolveAssignment() {
	testCases := []struct {
		name     string
		part     *equipment.Part
		mechID   string
		location equipment.Location
		want     *engine.PartUpdate
		wantErr  bool
	}{
		{
			name:     "pool to mech",
			part:     testutils.CreateTestPart("p3", owner, "Laser"),
			mechID:   testutils.TestMechID,
			location: equipment.LocationArmL,
			want:     &engine.PartUpdate{MechID: testutils.TestMechID, Location: equipment.LocationArmL},
		},
		{
			name:     "mech to other mech",
			part:     testutils.CreateTestPartOn("p1", owner, "Laser", testutils.TestMechID, equipment.LocationArmL),
			mechID:   "def456",
			location: equipment.LocationHead,
			want:     &engine.PartUpdate{MechID: "def456", Location: equipment.LocationHead},
		},
		{
			name:     "back to pool ignores location",
			part:     testutils.CreateTestPartOn("p1", owner, "Laser", testutils.TestMechID, equipment.LocationArmL),
			mechID:   equipment.UnattachedMechID,
			location: equipment.LocationHead,
			want:     &engine.PartUpdate{MechID: equipment.UnattachedMechID, Location: equipment.LocationLight},
		},
		{
			name:     "empty mechID means pool",
			part:     testutils.CreateTestPartOn("p1", owner, "Laser", testutils.TestMechID, equipment.LocationArmL),
			mechID:   "",
			location: equipment.LocationUnassigned,
			want:     &engine.PartUpdate{MechID: equipment.UnattachedMechID, Location: equipment.LocationLight},
		},
		{
			name:     "same place",
			part:     testutils.CreateTestPartOn("p1", owner, "Laser", testutils.TestMechID, equipment.LocationArmL),
			mechID:   testutils.TestMechID,
			location: equipment.LocationArmL,
		},
		{
			name:     "pool to pool",
			part:     testutils.CreateTestPart("p1", owner, "Laser"),
			mechID:   equipment.UnattachedMechID,
			location: equipment.LocationUnassigned,
		},
		{
			name:     "missing mech",
			part:     testutils.CreateTestPart("p3", owner, "Laser"),
			mechID:   "xyz999",
			location: equipment.LocationArmL,
			wantErr:  true,
		},
		{
			name:     "torso_rear is not mountable",
			part:     testutils.CreateTestPart("p3", owner, "Laser"),
			mechID:   testutils.TestMechID,
			location: equipment.LocationTorsoRear,
			wantErr:  true,
		},
		{
			name:     "unknown location to pool",
			part:     testutils.CreateTestPart("p3", owner, "Laser"),
			mechID:   equipment.UnattachedMechID,
			location: "tail",
			wantErr:  true,
		},
		{
			name:     "mech of another owner",
			part:     testutils.CreateTestPart("p3", "someone-else", "Laser"),
			mechID:   testutils.TestMechID,
			location: equipment.LocationHead,
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := s.engine.ResolveAssignment(&engine.ResolveAssignmentInput{
				Part:     tc.part,
				Mechs:    s.mechs(),
				MechID:   tc.mechID,
				Location: tc.location,
			})
			if tc.wantErr {
				s.Require().Error(err)
				s.True(errors.IsInvalidArgument(err), "got %v", err)
				s.Nil(got)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *EngineTestSuite) TestResolveAssignmentRequiresPart() {
	_, err := s.engine.ResolveAssignment(&engine.ResolveAssignmentInput{MechID: testutils.TestMechID})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestAggregateExcludesDisabledParts() {
	p1 := testutils.CreateTestPartOn("p1", owner, "Heatsink", testutils.TestMechID, equipment.LocationTorsoC)
	p1.Resources = equipment.Resources{"heatsink": 2}
	p2 := testutils.CreateTestPartOn("p2", owner, "Autocannon", testutils.TestMechID, equipment.LocationArmR)
	p2.ResourceType = equipment.ResourceTypeConsumable
	p2.Resources = equipment.Resources{"ammo": 10}
	p2.Enabled = false

	summary := s.engine.Aggregate(&engine.AggregateInput{Mech: s.mech, Parts: []*equipment.Part{p1, p2}})
	s.Require().NotNil(summary)
	s.Equal(map[string]float64{"heatsink": 2}, summary.StaticResources)
	s.Equal(map[string]float64{}, summary.ConsumableResources)
	s.Equal(2, summary.PartCount)
	s.Equal(1, summary.EnabledPartCount)
	s.Equal(2.0, summary.TotalWeight)
}

func (s *EngineTestSuite) TestAggregateBuckets() {
	legacy := testutils.CreateTestPartOn("p1", owner, "Coolant", testutils.TestMechID, equipment.LocationTorsoL)
	legacy.ResourceType = ""
	legacy.Resources = equipment.Resources{"heatsink": 1.5}

	static := testutils.CreateTestPartOn("p2", owner, "Heatsink", testutils.TestMechID, equipment.LocationTorsoR)
	static.Resources = equipment.Resources{"heatsink": 2, "armor": 3}

	ammo := testutils.CreateTestPartOn("p3", owner, "Ammo Bin", testutils.TestMechID, equipment.LocationTorsoC)
	ammo.ResourceType = equipment.ResourceTypeConsumable
	ammo.Resources = equipment.Resources{"ammo": 20, "junk": math.NaN(), "": 4, "neg": -1}

	elsewhere := testutils.CreateTestPartOn("p4", owner, "Elsewhere", "def456", equipment.LocationHead)
	elsewhere.Resources = equipment.Resources{"heatsink": 100}

	pooled := testutils.CreateTestPart("p5", owner, "Spare")
	pooled.Resources = equipment.Resources{"heatsink": 100}

	summary := s.engine.Aggregate(&engine.AggregateInput{
		Mech:  s.mech,
		Parts: []*equipment.Part{ammo, elsewhere, static, pooled, legacy},
	})
	s.Equal(map[string]float64{"heatsink": 3.5, "armor": 3}, summary.StaticResources)
	s.Equal(map[string]float64{"ammo": 20}, summary.ConsumableResources)
	s.Equal(3, summary.PartCount)
	s.Equal(testutils.TestMechID, summary.MechID)
}

func (s *EngineTestSuite) TestAggregateWeightCountsDisabledParts() {
	heavy := testutils.CreateTestPartOn("p1", owner, "Plate", testutils.TestMechID, equipment.LocationLegL)
	heavy.Quantity = 3
	heavy.Weight = 2.5
	heavy.Enabled = false

	summary := s.engine.Aggregate(&engine.AggregateInput{Mech: s.mech, Parts: []*equipment.Part{heavy}})
	s.Equal(7.5, summary.TotalWeight)
	s.Zero(summary.EnabledPartCount)
}

func (s *EngineTestSuite) TestAggregateOrderIndependent() {
	parts := make([]*equipment.Part, 0, 30)
	for i := 0; i < 30; i++ {
		p := testutils.CreateTestPartOn(string(rune('a'+i%26))+"-part", owner, "Cell", testutils.TestMechID, equipment.LocationHead)
		p.ID = p.ID + string(rune('0'+i/26))
		p.Resources = equipment.Resources{"energy": 0.1 * float64(i+1)}
		parts = append(parts, p)
	}
	reversed := make([]*equipment.Part, len(parts))
	for i, p := range parts {
		reversed[len(parts)-1-i] = p
	}

	a := s.engine.Aggregate(&engine.AggregateInput{Mech: s.mech, Parts: parts})
	b := s.engine.Aggregate(&engine.AggregateInput{Mech: s.mech, Parts: reversed})
	s.Equal(a.StaticResources["energy"], b.StaticResources["energy"])
}

func (s *EngineTestSuite) TestAggregateInvalidMechIDHasNoParts() {
	broken := testutils.CreateTestMech("m3", owner, equipment.UnattachedMechID)
	pooled := testutils.CreateTestPart("p1", owner, "Spare")
	pooled.Resources = equipment.Resources{"heatsink": 1}

	summary := s.engine.Aggregate(&engine.AggregateInput{Mech: broken, Parts: []*equipment.Part{pooled}})
	s.Zero(summary.PartCount)
	s.Empty(summary.StaticResources)
}

func (s *EngineTestSuite) TestAggregateNilMech() {
	s.Nil(s.engine.Aggregate(&engine.AggregateInput{}))
}

func (s *EngineTestSuite) TestGroupByLocation() {
	head := testutils.CreateTestPartOn("p1", owner, "Sensor", testutils.TestMechID, equipment.LocationHead)
	armB := testutils.CreateTestPartOn("p2", owner, "B Laser", testutils.TestMechID, equipment.LocationArmL)
	armA := testutils.CreateTestPartOn("p3", owner, "A Laser", testutils.TestMechID, equipment.LocationArmL)
	other := testutils.CreateTestPartOn("p4", owner, "Other", "def456", equipment.LocationHead)

	layout := s.engine.GroupByLocation(&engine.AggregateInput{
		Mech:  s.mech,
		Parts: []*equipment.Part{armB, other, head, armA},
	})

	s.Len(layout, 8)
	for _, loc := range equipment.MountLocations() {
		s.NotNil(layout[loc], "missing %s", loc)
	}
	s.Equal([]*equipment.Part{head}, layout[equipment.LocationHead])
	s.Equal([]*equipment.Part{armA, armB}, layout[equipment.LocationArmL])
	s.Empty(layout[equipment.LocationLegR])
	_, hasRear := layout[equipment.LocationTorsoRear]
	s.False(hasRear)
}

func (s *EngineTestSuite) TestEffectivePart() {
	testCases := []struct {
		name         string
		part         *equipment.Part
		wantMech     *equipment.Mech
		wantMechID   string
		wantLocation equipment.Location
		wantDangling bool
	}{
		{
			name:         "mounted",
			part:         testutils.CreateTestPartOn("p1", owner, "Laser", testutils.TestMechID, equipment.LocationArmL),
			wantMech:     s.mech,
			wantMechID:   testutils.TestMechID,
			wantLocation: equipment.LocationArmL,
		},
		{
			name:         "pooled",
			part:         testutils.CreateTestPart("p2", owner, "Laser"),
			wantMechID:   equipment.UnattachedMechID,
			wantLocation: equipment.LocationLight,
		},
		{
			name:         "dangling",
			part:         testutils.CreateTestPartOn("p3", owner, "Laser", "gone42", equipment.LocationHead),
			wantMechID:   equipment.UnattachedMechID,
			wantLocation: equipment.LocationLight,
			wantDangling: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			before := *tc.part
			got := s.engine.EffectivePart(&engine.EffectivePartInput{Part: tc.part, Mechs: s.mechs()})
			s.Require().NotNil(got)
			s.Equal(tc.wantMech, got.Mech)
			s.Equal(tc.wantMechID, got.Part.MechID)
			s.Equal(tc.wantLocation, got.Part.Location)
			s.Equal(tc.wantDangling, got.Dangling)
			s.Equal(before.MechID, tc.part.MechID, "input must not be modified")
		})
	}
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
