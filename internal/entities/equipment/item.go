package equipment

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/mechbay-api/internal/errors"
)

// EntityTypeItem is the core.Entity type of an inventory item
const EntityTypeItem = "item"

// Item is a generic inventory entry. It only carries a location
// classification and never relates to a mech.
type Item struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"ownerID"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	Weight      float64  `json:"weight"`
	TotalWeight float64  `json:"totalWeight"`
	Location    Location `json:"location"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

var _ core.Entity = (*Item)(nil)

// GetID returns the item's storage ID
func (i *Item) GetID() string {
	return i.ID
}

// GetType returns the entity type for rpg-toolkit
func (i *Item) GetType() string {
	return EntityTypeItem
}

// Normalize derives totalWeight and settles the location. Items stored with a
// location that is no longer recognised are listed under head.
func (i *Item) Normalize() {
	if i.Quantity < 1 {
		i.Quantity = DefaultQuantity
	}
	switch {
	case i.Location.IsMountPoint():
	case i.Location.IsPool():
		i.Location = LocationLight
	default:
		i.Location = LocationHead
	}
	i.TotalWeight = float64(i.Quantity) * i.Weight
}

// Validate checks the item's user-editable fields
func (i *Item) Validate() error {
	vb := errors.NewValidationBuilder()
	if i.Quantity < 1 {
		vb.Field("quantity", "must be a positive integer")
	}
	if math.IsNaN(i.Weight) || math.IsInf(i.Weight, 0) || i.Weight < 0 {
		vb.Field("weight", "must be a non-negative number")
	}
	if !i.Location.IsMountPoint() && !i.Location.IsPool() {
		vb.Fieldf("location", "%q is not a known location", i.Location)
	}
	return vb.Build()
}
