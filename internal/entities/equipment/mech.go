package equipment

import (
	"math"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/mechbay-api/internal/errors"
)

// EntityTypeMech is the core.Entity type of a mech
const EntityTypeMech = "mech"

// BodyStats maps each hit location to a non-negative value
type BodyStats map[Location]float64

// Copy returns an independent copy of the stats
func (b BodyStats) Copy() BodyStats {
	out := make(BodyStats, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// normalized fills every hit location, dropping nothing
func (b BodyStats) normalized() BodyStats {
	out := b.Copy()
	for _, loc := range HitLocations() {
		if _, ok := out[loc]; !ok {
			out[loc] = 0
		}
	}
	return out
}

func (b BodyStats) validate(field string, vb *errors.ValidationBuilder) {
	for loc, v := range b {
		if !loc.IsHitLocation() {
			vb.Fieldf(field, "unknown location %q", loc)
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			vb.Fieldf(field, "%s must be a non-negative number", loc)
		}
	}
}

// Mech is an equipment container owned by a character. Parts reference it by
// MechID, never by ID, so the relation survives re-creation under a new owner.
type Mech struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"ownerID"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	MechID            string    `json:"mechID"`
	Weight            float64   `json:"weight"`
	BodyPartHP        BodyStats `json:"bodyPartHP"`
	BodyPartMaxHP     BodyStats `json:"bodyPartMaxHP"`
	BodyPartArmour    BodyStats `json:"bodyPartArmour"`
	BodyPartMaxArmour BodyStats `json:"bodyPartMaxArmour"`
	CreatedAt         int64     `json:"createdAt"`
	UpdatedAt         int64     `json:"updatedAt"`
}

var _ core.Entity = (*Mech)(nil)

// GetID returns the mech's storage ID
func (m *Mech) GetID() string {
	return m.ID
}

// GetType returns the entity type for rpg-toolkit
func (m *Mech) GetType() string {
	return EntityTypeMech
}

// IsValidMechID reports whether id can serve as a mech relation key
func IsValidMechID(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" || id == UnattachedMechID {
		return false
	}
	return !strings.EqualFold(id, "nan") && !strings.EqualFold(id, "undefined") && !strings.EqualFold(id, "null")
}

// HasValidMechID reports whether the mech's relation key is usable
func (m *Mech) HasValidMechID() bool {
	return IsValidMechID(m.MechID)
}

// Normalize fills missing hit locations in every body stat map
func (m *Mech) Normalize() {
	m.BodyPartHP = m.BodyPartHP.normalized()
	m.BodyPartMaxHP = m.BodyPartMaxHP.normalized()
	m.BodyPartArmour = m.BodyPartArmour.normalized()
	m.BodyPartMaxArmour = m.BodyPartMaxArmour.normalized()
}

// Validate checks the mech's user-editable fields
func (m *Mech) Validate() error {
	vb := errors.NewValidationBuilder()
	if math.IsNaN(m.Weight) || math.IsInf(m.Weight, 0) || m.Weight < 0 {
		vb.Field("weight", "must be a non-negative number")
	}
	m.BodyPartHP.validate("bodyPartHP", vb)
	m.BodyPartMaxHP.validate("bodyPartMaxHP", vb)
	m.BodyPartArmour.validate("bodyPartArmour", vb)
	m.BodyPartMaxArmour.validate("bodyPartMaxArmour", vb)
	return vb.Build()
}

// Copy returns a deep copy of the mech
func (m *Mech) Copy() *Mech {
	if m == nil {
		return nil
	}
	out := *m
	out.BodyPartHP = m.BodyPartHP.Copy()
	out.BodyPartMaxHP = m.BodyPartMaxHP.Copy()
	out.BodyPartArmour = m.BodyPartArmour.Copy()
	out.BodyPartMaxArmour = m.BodyPartMaxArmour.Copy()
	return &out
}
