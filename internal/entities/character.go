// Package entities provides core data structures for mechbay-api.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
)

// EntityTypeCharacter is the core.Entity type of a character
const EntityTypeCharacter = "character"

// Character is the root owner of mechs, parts and items
type Character struct {
	ID             string `json:"id"`
	PlayerID       string `json:"playerID"`
	Name           string `json:"name"`
	EquippedMechID string `json:"equippedMechID"` // mechID of an owned mech, "0" for none
	CreatedAt      int64  `json:"createdAt"`
	UpdatedAt      int64  `json:"updatedAt"`
}

var _ core.Entity = (*Character)(nil)

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// HasEquippedMech reports whether the character points at a mech
func (c *Character) HasEquippedMech() bool {
	return !equipment.IsUnattached(c.EquippedMechID)
}

// Normalize fills the equipped sentinel on characters stored without one
func (c *Character) Normalize() {
	if c.EquippedMechID == "" {
		c.EquippedMechID = equipment.UnattachedMechID
	}
}
