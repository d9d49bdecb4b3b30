package equipment

import (
	"context"
	"strings"

	"github.com/KirkDiggler/mechbay-api/internal/engine"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	characterrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/character"
	mechrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/mech"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
)

// CreateMech creates a mech with a fresh mechID
func (o *Orchestrator) CreateMech(
	ctx context.Context,
	input *equipmentsvc.CreateMechInput,
) (*equipmentsvc.CreateMechOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	log := &changeLog{}
	defer o.publish(ctx, log)

	unlock := o.locks.Lock(input.CharacterID)
	defer unlock()

	if _, err := o.getCharacter(ctx, input.CharacterID); err != nil {
		return nil, err
	}

	mech := &equipment.Mech{
		ID:                o.idGen.Generate(),
		OwnerID:           input.CharacterID,
		Name:              strings.TrimSpace(input.Name),
		Description:       input.Description,
		MechID:            o.mechIDGen.Generate(),
		Weight:            input.Weight,
		BodyPartHP:        input.BodyPartHP.Copy(),
		BodyPartMaxHP:     input.BodyPartMaxHP.Copy(),
		BodyPartArmour:    input.BodyPartArmour.Copy(),
		BodyPartMaxArmour: input.BodyPartMaxArmour.Copy(),
	}
	if err := mech.Validate(); err != nil {
		return nil, err
	}

	out, err := o.mechRepo.Create(ctx, mechrepo.CreateInput{Mech: mech})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mech")
	}

	log.add(out.Mech.OwnerID, equipmentsvc.ActionCreated, out.Mech)

	return &equipmentsvc.CreateMechOutput{Mech: out.Mech}, nil
}

// GetMech returns a mech with its aggregate and layout. A mech stored with an
// unusable mechID gets a new one before anything is derived.
func (o *Orchestrator) GetMech(
	ctx context.Context,
	input *equipmentsvc.GetMechInput,
) (*equipmentsvc.GetMechOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MechEntityID == "" {
		return nil, errors.InvalidArgument("mech entity ID is required")
	}

	mech, err := o.getMech(ctx, input.MechEntityID)
	if err != nil {
		return nil, err
	}

	repaired := false
	if !mech.HasValidMechID() {
		mech, err = o.repairLoadedMech(ctx, mech)
		if err != nil {
			return nil, err
		}
		repaired = true
	}

	parts, err := o.attachedParts(ctx, mech)
	if err != nil {
		return nil, err
	}

	aggInput := &engine.AggregateInput{Mech: mech, Parts: parts}
	return &equipmentsvc.GetMechOutput{
		Mech:     mech,
		Summary:  o.engine.Aggregate(aggInput),
		Layout:   o.engine.GroupByLocation(aggInput),
		Repaired: repaired,
	}, nil
}

// repairLoadedMech takes the owner's lock and re-reads the mech, since
// another caller may have fixed it in the meantime
func (o *Orchestrator) repairLoadedMech(ctx context.Context, mech *equipment.Mech) (*equipment.Mech, error) {
	log := &changeLog{}
	defer o.publish(ctx, log)

	unlock := o.locks.Lock(mech.OwnerID)
	defer unlock()

	current, err := o.getMech(ctx, mech.ID)
	if err != nil {
		return nil, err
	}
	if current.HasValidMechID() {
		return current, nil
	}

	return o.repairMechID(ctx, current, log)
}

// ListMechs lists a character's mechs
func (o *Orchestrator) ListMechs(
	ctx context.Context,
	input *equipmentsvc.ListMechsInput,
) (*equipmentsvc.ListMechsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	mechs, err := o.listMechs(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &equipmentsvc.ListMechsOutput{Mechs: mechs}, nil
}

// UpdateMech edits a mech's name, weight and body stats. Body stat maps
// replace the stored map key by key.
func (o *Orchestrator) UpdateMech(
	ctx context.Context,
	input *equipmentsvc.UpdateMechInput,
) (*equipmentsvc.UpdateMechOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MechEntityID == "" {
		return nil, errors.InvalidArgument("mech entity ID is required")
	}

	mech, err := o.getMech(ctx, input.MechEntityID)
	if err != nil {
		return nil, err
	}

	log := &changeLog{}
	defer o.publish(ctx, log)

	unlock := o.locks.Lock(mech.OwnerID)
	defer unlock()

	// re-read under the lock
	mech, err = o.getMech(ctx, input.MechEntityID)
	if err != nil {
		return nil, err
	}

	updated := mech.Copy()
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, errors.NewValidationBuilder().RequiredField("name").Build()
		}
		updated.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	if input.Weight != nil {
		updated.Weight = *input.Weight
	}
	mergeStats(updated.BodyPartHP, input.BodyPartHP)
	mergeStats(updated.BodyPartMaxHP, input.BodyPartMaxHP)
	mergeStats(updated.BodyPartArmour, input.BodyPartArmour)
	mergeStats(updated.BodyPartMaxArmour, input.BodyPartMaxArmour)

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	out, err := o.mechRepo.Update(ctx, mechrepo.UpdateInput{Mech: updated})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update mech")
	}

	log.add(out.Mech.OwnerID, equipmentsvc.ActionUpdated, out.Mech)

	return &equipmentsvc.UpdateMechOutput{Mech: out.Mech}, nil
}

func mergeStats(dst, src equipment.BodyStats) {
	for loc, v := range src {
		dst[loc] = v
	}
}

// EquipMech points the character at one of its mechs
func (o *Orchestrator) EquipMech(
	ctx context.Context,
	input *equipmentsvc.EquipMechInput,
) (*equipmentsvc.EquipMechOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	errors.ValidateRequired("mechEntityID", input.MechEntityID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	log := &changeLog{}
	defer o.publish(ctx, log)

	unlock := o.locks.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	mech, err := o.getMech(ctx, input.MechEntityID)
	if err != nil {
		return nil, err
	}
	if mech.OwnerID != char.ID {
		return nil, errors.FailedPreconditionf("mech %s is not owned by character %s", mech.ID, char.ID)
	}

	if !mech.HasValidMechID() {
		if mech, err = o.repairMechID(ctx, mech, log); err != nil {
			return nil, err
		}
	}

	if char.EquippedMechID == mech.MechID {
		return &equipmentsvc.EquipMechOutput{Character: char}, nil
	}

	updated := *char
	updated.EquippedMechID = mech.MechID
	out, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: &updated})
	if err != nil {
		return nil, errors.Wrap(err, "failed to equip mech")
	}
	log.add(out.Character.ID, equipmentsvc.ActionUpdated, out.Character)

	return &equipmentsvc.EquipMechOutput{Character: out.Character}, nil
}

// UnequipMech clears the character's equipped mech
func (o *Orchestrator) UnequipMech(
	ctx context.Context,
	input *equipmentsvc.UnequipMechInput,
) (*equipmentsvc.UnequipMechOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	log := &changeLog{}
	defer o.publish(ctx, log)

	unlock := o.locks.Lock(input.CharacterID)
	defer unlock()

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if !char.HasEquippedMech() {
		return &equipmentsvc.UnequipMechOutput{Character: char}, nil
	}

	updated := *char
	updated.EquippedMechID = equipment.UnattachedMechID
	out, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: &updated})
	if err != nil {
		return nil, errors.Wrap(err, "failed to unequip mech")
	}

	log.add(out.Character.ID, equipmentsvc.ActionUpdated, out.Character)

	return &equipmentsvc.UnequipMechOutput{Character: out.Character}, nil
}
