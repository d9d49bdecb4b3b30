package equipment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/mechbay-api/internal/engine"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	partrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/part"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
)

// CreatePart creates a part, in inventory or mounted when a mechID is given
func (o *Orchestrator) CreatePart(
	ctx context.Context,
	input *equipmentsvc.CreatePartInput,
) (*equipmentsvc.CreatePartOutput, error) {
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

	part := equipment.NewPart(input.CharacterID, strings.TrimSpace(input.Name))
	part.ID = o.idGen.Generate()
	part.Description = input.Description
	part.Weight = input.Weight
	if input.Quantity != 0 {
		part.Quantity = input.Quantity
	}
	if input.Resources != nil {
		part.Resources = input.Resources.Copy()
	}
	if input.ResourceType != "" {
		part.ResourceType = input.ResourceType
	}
	if input.Enabled != nil {
		part.Enabled = *input.Enabled
	}
	if input.Roll != nil {
		part.Roll = *input.Roll
	}

	if !equipment.IsUnattached(input.MechID) {
		mechs, err := o.listMechs(ctx, input.CharacterID)
		if err != nil {
			return nil, err
		}
		update, err := o.engine.ResolveAssignment(&engine.ResolveAssignmentInput{
			Part:     part,
			Mechs:    mechs,
			MechID:   input.MechID,
			Location: input.Location,
		})
		if err != nil {
			return nil, err
		}
		if update != nil {
			update.Apply(part)
		}
	}

	part.Derive()
	if err := part.Validate(); err != nil {
		return nil, err
	}

	out, err := o.partRepo.Create(ctx, partrepo.CreateInput{Part: part})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create part")
	}

	log.add(out.Part.OwnerID, equipmentsvc.ActionCreated, out.Part)

	return &equipmentsvc.CreatePartOutput{Part: out.Part}, nil
}

// GetPart returns a part as readers see it. A mechID that matches none of
// the owner's mechs reads as unassigned.
func (o *Orchestrator) GetPart(
	ctx context.Context,
	input *equipmentsvc.GetPartInput,
) (*equipmentsvc.GetPartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PartID == "" {
		return nil, errors.InvalidArgument("part ID is required")
	}

	part, err := o.getPart(ctx, input.PartID)
	if err != nil {
		return nil, err
	}

	var mechs []*equipment.Mech
	if part.IsAssigned() {
		if mechs, err = o.listMechs(ctx, part.OwnerID); err != nil {
			return nil, err
		}
	}

	view := o.engine.EffectivePart(&engine.EffectivePartInput{Part: part, Mechs: mechs})
	if view.Dangling {
		slog.WarnContext(ctx, "part references missing mech, reporting unassigned",
			"part_id", part.ID,
			"mech_id", part.MechID)
	}

	return &equipmentsvc.GetPartOutput{
		Part:     view.Part,
		Mech:     view.Mech,
		Assigned: view.Mech != nil,
	}, nil
}

// ListParts lists a character's parts as readers see them
func (o *Orchestrator) ListParts(
	ctx context.Context,
	input *equipmentsvc.ListPartsInput,
) (*equipmentsvc.ListPartsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.partRepo.ListByOwner(ctx, partrepo.ListByOwnerInput{OwnerID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list parts")
	}
	mechs, err := o.listMechs(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	parts := make([]*equipment.Part, 0, len(out.Parts))
	for _, p := range out.Parts {
		view := o.engine.EffectivePart(&engine.EffectivePartInput{Part: p, Mechs: mechs})
		if input.UnassignedOnly && view.Mech != nil {
			continue
		}
		parts = append(parts, view.Part)
	}

	return &equipmentsvc.ListPartsOutput{Parts: parts}, nil
}

// UpdatePart edits a part's own fields. Assignment and enablement have
// their own operations.
func (o *Orchestrator) UpdatePart(
	ctx context.Context,
	input *equipmentsvc.UpdatePartInput,
) (*equipmentsvc.UpdatePartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PartID == "" {
		return nil, errors.InvalidArgument("part ID is required")
	}

	return withLockedPart(ctx, o, input.PartID, func(part *equipment.Part, log *changeLog) (*equipmentsvc.UpdatePartOutput, error) {
		updated := part.Copy()
		if input.Name != nil {
			if strings.TrimSpace(*input.Name) == "" {
				return nil, errors.NewValidationBuilder().RequiredField("name").Build()
			}
			updated.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			updated.Description = *input.Description
		}
		if input.Quantity != nil {
			updated.Quantity = *input.Quantity
		}
		if input.Weight != nil {
			updated.Weight = *input.Weight
		}
		if input.Resources != nil {
			updated.Resources = input.Resources.Copy()
		}
		if input.ResourceType != nil {
			updated.ResourceType = *input.ResourceType
		}
		if input.Roll != nil {
			updated.Roll = *input.Roll
		}
		updated.Derive()

		if err := updated.Validate(); err != nil {
			return nil, err
		}

		out, err := o.partRepo.Update(ctx, partrepo.UpdateInput{Part: updated})
		if err != nil {
			return nil, errors.Wrap(err, "failed to update part")
		}
		log.add(out.Part.OwnerID, equipmentsvc.ActionUpdated, out.Part)

		return &equipmentsvc.UpdatePartOutput{Part: out.Part}, nil
	})
}

// SetPartEnabled toggles whether a part's resources count toward its mech
func (o *Orchestrator) SetPartEnabled(
	ctx context.Context,
	input *equipmentsvc.SetPartEnabledInput,
) (*equipmentsvc.SetPartEnabledOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PartID == "" {
		return nil, errors.InvalidArgument("part ID is required")
	}

	return withLockedPart(ctx, o, input.PartID, func(part *equipment.Part, log *changeLog) (*equipmentsvc.SetPartEnabledOutput, error) {
		if part.Enabled == input.Enabled {
			return &equipmentsvc.SetPartEnabledOutput{Part: part}, nil
		}

		updated := part.Copy()
		updated.Enabled = input.Enabled
		out, err := o.partRepo.Update(ctx, partrepo.UpdateInput{Part: updated})
		if err != nil {
			return nil, errors.Wrap(err, "failed to toggle part")
		}
		log.add(out.Part.OwnerID, equipmentsvc.ActionUpdated, out.Part)

		return &equipmentsvc.SetPartEnabledOutput{Part: out.Part, Changed: true}, nil
	})
}

// AssignPart mounts a part on one of its owner's mechs, or returns it to
// inventory when mechID is "0". Moving a part to the place it already is
// writes nothing.
func (o *Orchestrator) AssignPart(
	ctx context.Context,
	input *equipmentsvc.AssignPartInput,
) (*equipmentsvc.AssignPartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	errors.ValidateRequired("partID", input.PartID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	log := &changeLog{}
	defer o.publish(ctx, log)

	unlock := o.locks.Lock(input.CharacterID)
	defer unlock()

	part, err := o.getPart(ctx, input.PartID)
	if err != nil {
		return nil, err
	}
	if part.OwnerID != input.CharacterID {
		return nil, errors.FailedPreconditionf(
			"part %s belongs to another character, move it with a transfer", part.ID).
			WithMeta("part_id", part.ID).
			WithMeta("character_id", input.CharacterID)
	}

	var mechs []*equipment.Mech
	if !equipment.IsUnattached(input.MechID) {
		if mechs, err = o.listMechs(ctx, part.OwnerID); err != nil {
			return nil, err
		}
	}

	update, err := o.engine.ResolveAssignment(&engine.ResolveAssignmentInput{
		Part:     part,
		Mechs:    mechs,
		MechID:   input.MechID,
		Location: input.Location,
	})
	if err != nil {
		return nil, err
	}
	if update == nil {
		slog.DebugContext(ctx, "part already at requested location",
			"part_id", part.ID,
			"mech_id", part.MechID,
			"location", part.Location)
		return &equipmentsvc.AssignPartOutput{Part: part}, nil
	}

	updated := part.Copy()
	update.Apply(updated)
	out, err := o.partRepo.Update(ctx, partrepo.UpdateInput{Part: updated})
	if err != nil {
		return nil, errors.Wrap(err, "failed to assign part")
	}

	log.add(out.Part.OwnerID, equipmentsvc.ActionUpdated, out.Part)

	return &equipmentsvc.AssignPartOutput{Part: out.Part, Changed: true}, nil
}

// DeletePart deletes a part
func (o *Orchestrator) DeletePart(
	ctx context.Context,
	input *equipmentsvc.DeletePartInput,
) (*equipmentsvc.DeletePartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PartID == "" {
		return nil, errors.InvalidArgument("part ID is required")
	}

	return withLockedPart(ctx, o, input.PartID, func(part *equipment.Part, log *changeLog) (*equipmentsvc.DeletePartOutput, error) {
		if _, err := o.partRepo.Delete(ctx, partrepo.DeleteInput{ID: part.ID}); err != nil {
			return nil, errors.Wrap(err, "failed to delete part")
		}
		log.add(part.OwnerID, equipmentsvc.ActionDeleted, part)
		return &equipmentsvc.DeletePartOutput{}, nil
	})
}

// withLockedPart loads a part, takes its owner's lock, re-reads it and runs
// fn. Changes fn records are published after the lock is released.
func withLockedPart[T any](
	ctx context.Context,
	o *Orchestrator,
	partID string,
	fn func(part *equipment.Part, log *changeLog) (*T, error),
) (*T, error) {
	part, err := o.getPart(ctx, partID)
	if err != nil {
		return nil, err
	}

	log := &changeLog{}
	defer o.publish(ctx, log)

	unlock := o.locks.Lock(part.OwnerID)
	defer unlock()

	if part, err = o.getPart(ctx, partID); err != nil {
		return nil, err
	}
	return fn(part, log)
}
