package equipment_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
)

func TestLocationClassification(t *testing.T) {
	assert.Len(t, equipment.MountLocations(), 8)
	assert.Len(t, equipment.HitLocations(), 9)

	assert.True(t, equipment.LocationTorsoRear.IsHitLocation())
	assert.False(t, equipment.LocationTorsoRear.IsMountPoint())
	assert.False(t, equipment.LocationLight.IsMountPoint())

	for _, alias := range []equipment.Location{"", equipment.LocationUnassigned, equipment.LocationLight} {
		assert.Equal(t, equipment.LocationLight, alias.Normalize())
	}
	assert.Equal(t, equipment.LocationArmL, equipment.LocationArmL.Normalize())

	loc, ok := equipment.LocationFromString("unassigned")
	assert.True(t, ok)
	assert.Equal(t, equipment.LocationLight, loc)
	_, ok = equipment.LocationFromString("torso_rear")
	assert.False(t, ok)
}

func TestIsValidMechID(t *testing.T) {
	for _, id := range []string{"", " ", "0", "NaN", "nan", "undefined", "null"} {
		assert.False(t, equipment.IsValidMechID(id), "%q should be invalid", id)
	}
	for _, id := range []string{"abc123", "01hqz8", "mech_1"} {
		assert.True(t, equipment.IsValidMechID(id), "%q should be valid", id)
	}
}

func TestNewPartDefaults(t *testing.T) {
	p := equipment.NewPart("char-1", "Laser")

	assert.Equal(t, equipment.UnattachedMechID, p.MechID)
	assert.Equal(t, equipment.LocationLight, p.Location)
	assert.Equal(t, 1, p.Quantity)
	assert.True(t, p.Enabled)
	assert.Equal(t, equipment.ResourceTypeStatic, p.ResourceType)
	assert.Equal(t, "1d20+@str.mod+ceil(@lvl / 2)", p.Formula)
	assert.NotNil(t, p.Resources)
	require.NoError(t, p.Validate())
}

func TestPartNormalize(t *testing.T) {
	p := &equipment.Part{
		ID:       "p1",
		Quantity: 2,
		Weight:   1.5,
		Location: equipment.LocationHead,
		Roll:     equipment.Roll{DiceNum: 3, DiceSize: "d8", DiceBonus: "+2"},
	}
	p.Normalize()

	assert.Equal(t, equipment.UnattachedMechID, p.MechID)
	assert.Equal(t, equipment.LocationLight, p.Location, "unattached parts sit in the pool")
	assert.Equal(t, 3.0, p.TotalWeight)
	assert.Equal(t, "3d8+2", p.Formula)
	assert.NotNil(t, p.Resources)
}

func TestPartValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(p *equipment.Part)
		field  string
	}{
		{name: "zero quantity", modify: func(p *equipment.Part) { p.Quantity = 0 }, field: "quantity"},
		{name: "negative weight", modify: func(p *equipment.Part) { p.Weight = -1 }, field: "weight"},
		{name: "nan weight", modify: func(p *equipment.Part) { p.Weight = math.NaN() }, field: "weight"},
		{name: "unknown resource type", modify: func(p *equipment.Part) { p.ResourceType = "fuel" }, field: "resourceType"},
		{name: "blank resource name", modify: func(p *equipment.Part) { p.Resources = equipment.Resources{" ": 1} }, field: "resources"},
		{name: "zero resource", modify: func(p *equipment.Part) { p.Resources = equipment.Resources{"heat": 0} }, field: "resources"},
		{name: "infinite resource", modify: func(p *equipment.Part) { p.Resources = equipment.Resources{"heat": math.Inf(1)} }, field: "resources"},
		{name: "no dice", modify: func(p *equipment.Part) { p.Roll.DiceNum = 0 }, field: "roll.diceNum"},
		{name: "bad die", modify: func(p *equipment.Part) { p.Roll.DiceSize = "20" }, field: "roll.diceSize"},
		{
			name: "mounted at hit location only",
			modify: func(p *equipment.Part) {
				p.MechID = "abc123"
				p.Location = equipment.LocationTorsoRear
			},
			field: "location",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := equipment.NewPart("char-1", "Laser")
			tc.modify(p)

			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestPartCopyIsDeep(t *testing.T) {
	p := equipment.NewPart("char-1", "Laser")
	p.Resources["heat"] = 2

	c := p.Copy()
	c.Resources["heat"] = 5

	assert.Equal(t, 2.0, p.Resources["heat"])
}

func TestResourcesDecodeLoosely(t *testing.T) {
	testCases := []struct {
		name string
		json string
		want equipment.Resources
	}{
		{name: "numbers", json: `{"heatsink":2,"ammo":10.5}`, want: equipment.Resources{"heatsink": 2, "ammo": 10.5}},
		{name: "numeric strings", json: `{"heatsink":"2"," ammo ":" 3 "}`, want: equipment.Resources{"heatsink": 2, " ammo ": 3}},
		{name: "junk dropped", json: `{"heat":"lots","cool":null,"flux":true,"spare":{"n":1},"ok":1}`, want: equipment.Resources{"ok": 1}},
		{name: "non-finite strings dropped", json: `{"heat":"NaN","cool":"Inf"}`, want: equipment.Resources{}},
		{name: "not an object", json: `"heatsink"`, want: equipment.Resources{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p equipment.Part
			require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","resources":`+tc.json+`}`), &p))
			assert.Equal(t, tc.want, p.Resources)
		})
	}
}

func TestResourceTypeEffective(t *testing.T) {
	assert.Equal(t, equipment.ResourceTypeStatic, equipment.ResourceType("").Effective())
	assert.Equal(t, equipment.ResourceTypeStatic, equipment.ResourceTypeStatic.Effective())
	assert.Equal(t, equipment.ResourceTypeConsumable, equipment.ResourceTypeConsumable.Effective())
}

func TestMechNormalizeAndValidate(t *testing.T) {
	m := &equipment.Mech{ID: "m1", MechID: "abc123", BodyPartHP: equipment.BodyStats{equipment.LocationHead: 4}}
	m.Normalize()

	for _, loc := range equipment.HitLocations() {
		_, ok := m.BodyPartMaxArmour[loc]
		assert.True(t, ok, "missing %s", loc)
	}
	assert.Equal(t, 4.0, m.BodyPartHP[equipment.LocationHead])
	require.NoError(t, m.Validate())

	m.BodyPartArmour[equipment.LocationArmL] = -3
	require.Error(t, m.Validate())

	m.BodyPartArmour[equipment.LocationArmL] = 3
	m.BodyPartHP["tail"] = 1
	require.Error(t, m.Validate())
}

func TestItemNormalize(t *testing.T) {
	legacy := &equipment.Item{ID: "i1", Location: "backpack", Weight: 2}
	legacy.Normalize()
	assert.Equal(t, equipment.LocationHead, legacy.Location)
	assert.Equal(t, 1, legacy.Quantity)
	assert.Equal(t, 2.0, legacy.TotalWeight)

	pooled := &equipment.Item{ID: "i2", Location: equipment.LocationUnassigned, Quantity: 3, Weight: 1}
	pooled.Normalize()
	assert.Equal(t, equipment.LocationLight, pooled.Location)
	assert.Equal(t, 3.0, pooled.TotalWeight)

	bad := &equipment.Item{ID: "i3", Quantity: 1, Location: "backpack"}
	assert.Error(t, bad.Validate())
}
