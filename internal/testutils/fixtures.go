package testutils

import (
	"github.com/KirkDiggler/mechbay-api/internal/entities"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
)

// Fixture identifiers shared across test packages
const (
	TestPlayerID    = "player-test-001"
	TestCharacterID = "char-test-001"
	TestMechID      = "abc123"
	TestOtherMechID = "xyz999"
)

// CreateTestCharacter creates a character with no mech equipped
func CreateTestCharacter(id string) *entities.Character {
	return &entities.Character{
		ID:             id,
		PlayerID:       TestPlayerID,
		Name:           "Test Pilot",
		EquippedMechID: equipment.UnattachedMechID,
	}
}

// CreateTestMech creates a mech with full body stats on every hit location
func CreateTestMech(id, ownerID, mechID string) *equipment.Mech {
	mech := &equipment.Mech{
		ID:                id,
		OwnerID:           ownerID,
		Name:              "Test Mech " + id,
		MechID:            mechID,
		Weight:            50,
		BodyPartHP:        equipment.BodyStats{},
		BodyPartMaxHP:     equipment.BodyStats{},
		BodyPartArmour:    equipment.BodyStats{},
		BodyPartMaxArmour: equipment.BodyStats{},
	}
	for _, loc := range equipment.HitLocations() {
		mech.BodyPartHP[loc] = 10
		mech.BodyPartMaxHP[loc] = 10
		mech.BodyPartArmour[loc] = 5
		mech.BodyPartMaxArmour[loc] = 5
	}
	return mech
}

// CreateTestPart creates an enabled static part sitting in the pool
func CreateTestPart(id, ownerID, name string) *equipment.Part {
	part := equipment.NewPart(ownerID, name)
	part.ID = id
	part.Weight = 1
	part.Derive()
	return part
}

// CreateTestPartOn creates a part already mounted on a mech
func CreateTestPartOn(id, ownerID, name, mechID string, loc equipment.Location) *equipment.Part {
	part := CreateTestPart(id, ownerID, name)
	part.MechID = mechID
	part.Location = loc
	return part
}

// CreateTestItem creates a pooled item
func CreateTestItem(id, ownerID, name string) *equipment.Item {
	item := &equipment.Item{
		ID:       id,
		OwnerID:  ownerID,
		Name:     name,
		Quantity: 1,
		Weight:   0.5,
		Location: equipment.LocationLight,
	}
	item.Normalize()
	return item
}
