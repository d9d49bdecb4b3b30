package engine

import (
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
)

// ResolveAssignmentInput describes a requested move of a part
type ResolveAssignmentInput struct {
	Part *equipment.Part
	// Mechs are the mechs owned by the part's owner
	Mechs    []*equipment.Mech
	MechID   string
	Location equipment.Location
}

// PartUpdate is the field set applied to a part in one write. MechID and
// Location always change together.
type PartUpdate struct {
	MechID   string             `json:"mechID"`
	Location equipment.Location `json:"location"`
}

// Apply writes the update onto the part
func (u *PartUpdate) Apply(part *equipment.Part) {
	part.MechID = u.MechID
	part.Location = u.Location
}

// AggregateInput is a mech and the candidate parts of its owner. Parts that
// reference another mech are ignored.
type AggregateInput struct {
	Mech  *equipment.Mech
	Parts []*equipment.Part
}

// BodyStats is the mech's own hit point and armour state
type BodyStats struct {
	HP        equipment.BodyStats `json:"bodyPartHP"`
	MaxHP     equipment.BodyStats `json:"bodyPartMaxHP"`
	Armour    equipment.BodyStats `json:"bodyPartArmour"`
	MaxArmour equipment.BodyStats `json:"bodyPartMaxArmour"`
}

// Summary is the derived state of a mech. It is never persisted.
type Summary struct {
	MechID              string             `json:"mechID"`
	BodyStats           BodyStats          `json:"bodyStats"`
	TotalWeight         float64            `json:"totalWeight"`
	StaticResources     map[string]float64 `json:"staticResourceTotals"`
	ConsumableResources map[string]float64 `json:"consumableResourceTotals"`
	PartCount           int                `json:"partCount"`
	EnabledPartCount    int                `json:"enabledPartCount"`
}

// Layout maps each mount location to the parts mounted there
type Layout map[equipment.Location][]*equipment.Part

// EffectivePartInput is a part and the mechs of its owner
type EffectivePartInput struct {
	Part  *equipment.Part
	Mechs []*equipment.Mech
}

// EffectivePartOutput is the reader's view of a part
type EffectivePartOutput struct {
	Part *equipment.Part
	Mech *equipment.Mech
	// Dangling is set when the stored mechID points at no owned mech
	Dangling bool
}
