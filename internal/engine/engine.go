package engine

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
)

type engine struct{}

// Config holds engine options. There are none yet.
type Config struct{}

// Validate validates the Config
func (cfg *Config) Validate() error {
	return nil
}

// New creates the rules engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{}, nil
}

func (e *engine) ResolveAssignment(input *ResolveAssignmentInput) (*PartUpdate, error) {
	if input == nil || input.Part == nil {
		return nil, errors.InvalidArgument("part is required")
	}
	part := input.Part
	mechID := strings.TrimSpace(input.MechID)

	var update PartUpdate
	if equipment.IsUnattached(mechID) {
		// back to the pool, no mech lookup needed
		if !input.Location.IsPool() && !input.Location.IsMountPoint() {
			return nil, errors.NewValidationBuilder().
				Fieldf("location", "%q is not a known location", input.Location).
				Build()
		}
		update = PartUpdate{MechID: equipment.UnattachedMechID, Location: equipment.LocationLight}
	} else {
		vb := errors.NewValidationBuilder()
		if !input.Location.IsMountPoint() {
			vb.Fieldf("location", "%q is not a mount location", input.Location)
		}
		mech := findMech(input.Mechs, mechID)
		if mech == nil || (part.OwnerID != "" && mech.OwnerID != part.OwnerID) {
			vb.Fieldf("mechID", "no mech with mechID %s on this character", mechID)
		}
		if err := vb.Build(); err != nil {
			return nil, errors.Wrap(err, "invalid part assignment").
				WithMeta("part_id", part.ID).
				WithMeta("mech_id", mechID)
		}
		update = PartUpdate{MechID: mechID, Location: input.Location}
	}

	current := PartUpdate{MechID: part.MechID, Location: part.Location}
	if equipment.IsUnattached(current.MechID) {
		current = PartUpdate{MechID: equipment.UnattachedMechID, Location: current.Location.Normalize()}
	}
	if current == update {
		return nil, nil
	}
	return &update, nil
}

func (e *engine) Aggregate(input *AggregateInput) *Summary {
	if input == nil || input.Mech == nil {
		return nil
	}
	mech := input.Mech
	summary := &Summary{
		MechID: mech.MechID,
		BodyStats: BodyStats{
			HP:        mech.BodyPartHP.Copy(),
			MaxHP:     mech.BodyPartMaxHP.Copy(),
			Armour:    mech.BodyPartArmour.Copy(),
			MaxArmour: mech.BodyPartMaxArmour.Copy(),
		},
		StaticResources:     map[string]float64{},
		ConsumableResources: map[string]float64{},
	}

	// summing in a fixed order keeps float totals independent of storage order
	for _, part := range sortedParts(attachedTo(mech, input.Parts)) {
		summary.PartCount++
		summary.TotalWeight += float64(part.Quantity) * part.Weight
		if !part.Enabled {
			continue
		}
		summary.EnabledPartCount++

		bucket := summary.StaticResources
		if part.ResourceType.Effective() == equipment.ResourceTypeConsumable {
			bucket = summary.ConsumableResources
		}
		for name, value := range part.Resources {
			if strings.TrimSpace(name) == "" || !equipment.IsCountable(value) {
				continue
			}
			bucket[name] += value
		}
	}

	return summary
}

func (e *engine) GroupByLocation(input *AggregateInput) Layout {
	layout := make(Layout, len(equipment.MountLocations()))
	for _, loc := range equipment.MountLocations() {
		layout[loc] = []*equipment.Part{}
	}
	if input == nil || input.Mech == nil {
		return layout
	}
	for _, part := range sortedParts(attachedTo(input.Mech, input.Parts)) {
		if !part.Location.IsMountPoint() {
			continue
		}
		layout[part.Location] = append(layout[part.Location], part)
	}
	return layout
}

func (e *engine) EffectivePart(input *EffectivePartInput) *EffectivePartOutput {
	if input == nil || input.Part == nil {
		return nil
	}
	part := input.Part.Copy()
	part.Normalize()
	if !part.IsAssigned() {
		return &EffectivePartOutput{Part: part}
	}

	mech := findMech(input.Mechs, part.MechID)
	if mech == nil {
		part.MechID = equipment.UnattachedMechID
		part.Location = equipment.LocationLight
		return &EffectivePartOutput{Part: part, Dangling: true}
	}
	return &EffectivePartOutput{Part: part, Mech: mech}
}

func findMech(mechs []*equipment.Mech, mechID string) *equipment.Mech {
	for _, m := range mechs {
		if m != nil && m.MechID == mechID {
			return m
		}
	}
	return nil
}

func attachedTo(mech *equipment.Mech, parts []*equipment.Part) []*equipment.Part {
	if !mech.HasValidMechID() {
		return nil
	}
	out := make([]*equipment.Part, 0, len(parts))
	for _, p := range parts {
		if p != nil && p.MechID == mech.MechID {
			out = append(out, p)
		}
	}
	return out
}

func sortedParts(parts []*equipment.Part) []*equipment.Part {
	sort.SliceStable(parts, func(i, j int) bool {
		if parts[i].Name != parts[j].Name {
			return parts[i].Name < parts[j].Name
		}
		return parts[i].ID < parts[j].ID
	})
	return parts
}
