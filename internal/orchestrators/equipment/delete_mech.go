package equipment

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	characterrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/character"
	mechrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/mech"
	partrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/part"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
)

// DeleteMech deletes a mech and settles the parts mounted on it. With parts
// attached a resolution is required: unassign returns them to inventory,
// delete_all removes them, cancel changes nothing. The parts are settled in
// one transaction and the equipped reference is cleared before the mech is
// deleted.
func (o *Orchestrator) DeleteMech(
	ctx context.Context,
	input *equipmentsvc.DeleteMechInput,
) (*equipmentsvc.DeleteMechOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("mechEntityID", input.MechEntityID, vb)
	if input.Resolution != "" && !input.Resolution.IsValid() {
		errors.ValidateEnum("resolution", string(input.Resolution), resolutionNames(), vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	mech, err := o.getMech(ctx, input.MechEntityID)
	if err != nil {
		return nil, err
	}
	if input.CharacterID != "" && mech.OwnerID != input.CharacterID {
		return nil, errors.FailedPreconditionf("mech %s is not owned by character %s", mech.ID, input.CharacterID)
	}

	log := &changeLog{}
	defer o.publish(ctx, log)

	unlock := o.locks.Lock(mech.OwnerID)
	defer unlock()

	// re-read under the lock
	if mech, err = o.getMech(ctx, input.MechEntityID); err != nil {
		return nil, err
	}

	ctx, c := o.startCascade(ctx, opDeleteMech,
		deleteMechSteps(),
		attribute.String("mech.entity_id", mech.ID),
		attribute.String("mech.id", mech.MechID),
		attribute.String("character.id", mech.OwnerID),
		attribute.String("resolution", string(input.Resolution)),
	)
	defer c.end()

	var parts []*equipment.Part
	if err := c.step(ctx, stepEnumerate, false, func() error {
		parts, err = o.attachedParts(ctx, mech)
		return err
	}); err != nil {
		return nil, err
	}
	c.span.SetAttributes(attribute.Int("parts.attached", len(parts)))

	output := &equipmentsvc.DeleteMechOutput{PartsAffected: len(parts)}

	// cancel wins even when nothing is attached: the caller asked for no
	// change, so the mech stays and nothing is written
	if input.Resolution == equipmentsvc.ResolutionCancel {
		if err := c.step(ctx, stepCancel, false, nil); err != nil {
			return nil, err
		}
		output.Outcome = equipmentsvc.OutcomeCancelled
		output.PartsAffected = 0
		return output, nil
	}

	if len(parts) > 0 {
		switch input.Resolution {
		case equipmentsvc.ResolutionUnassign:
			err = c.step(ctx, stepUnassign, true, func() error {
				return o.unassignAll(ctx, parts, log)
			})
		case equipmentsvc.ResolutionDeleteAll:
			err = c.step(ctx, stepDeleteParts, true, func() error {
				return o.deleteAll(ctx, parts, log)
			})
		default:
			return nil, c.fail(ctx, stepEnumerate, errors.FailedPreconditionf(
				"mech %s has %d attached parts, choose a resolution", mech.ID, len(parts)).
				WithMeta("mech_entity_id", mech.ID).
				WithMeta("parts_attached", len(parts)).
				WithMeta("resolutions", resolutionNames()))
		}
		if err != nil {
			return nil, err
		}
	}

	if err := o.resetEquipped(ctx, c, mech, log, &output.EquipReset); err != nil {
		return nil, err
	}

	if err := c.step(ctx, stepDeleteMech, true, func() error {
		if _, err := o.mechRepo.Delete(ctx, mechrepo.DeleteInput{ID: mech.ID}); err != nil {
			return errors.Wrap(err, "failed to delete mech")
		}
		log.add(mech.OwnerID, equipmentsvc.ActionDeleted, mech)
		return nil
	}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "mech deleted",
		"mech_entity_id", mech.ID,
		"mech_id", mech.MechID,
		"resolution", input.Resolution,
		"parts_affected", len(parts),
		"equip_reset", output.EquipReset)

	output.Outcome = equipmentsvc.OutcomeDeleted
	return output, nil
}

func resolutionNames() []string {
	out := make([]string, 0, len(equipmentsvc.Resolutions()))
	for _, r := range equipmentsvc.Resolutions() {
		out = append(out, string(r))
	}
	return out
}

func (o *Orchestrator) unassignAll(ctx context.Context, parts []*equipment.Part, log *changeLog) error {
	updates := make([]*equipment.Part, len(parts))
	for i, p := range parts {
		updates[i] = p.Copy()
		updates[i].MechID = equipment.UnattachedMechID
		updates[i].Location = equipment.LocationLight
	}

	out, err := o.partRepo.BatchUpdate(ctx, partrepo.BatchUpdateInput{Parts: updates})
	if err != nil {
		return errors.Wrap(err, "failed to unassign parts")
	}
	for _, p := range out.Parts {
		log.add(p.OwnerID, equipmentsvc.ActionUpdated, p)
	}
	return nil
}

func (o *Orchestrator) deleteAll(ctx context.Context, parts []*equipment.Part, log *changeLog) error {
	ids := make([]string, len(parts))
	for i, p := range parts {
		ids[i] = p.ID
	}

	if _, err := o.partRepo.BatchDelete(ctx, partrepo.BatchDeleteInput{IDs: ids}); err != nil {
		return errors.Wrap(err, "failed to delete parts")
	}
	for _, p := range parts {
		log.add(p.OwnerID, equipmentsvc.ActionDeleted, p)
	}
	return nil
}

// resetEquipped clears the owner's equipped reference when it points at the
// mech. The step is skipped otherwise.
func (o *Orchestrator) resetEquipped(
	ctx context.Context,
	c *cascade,
	mech *equipment.Mech,
	log *changeLog,
	reset *bool,
) error {
	char, err := o.getCharacter(ctx, mech.OwnerID)
	if err != nil {
		if errors.IsNotFound(err) {
			// owner is gone, nothing to reset
			return nil
		}
		return c.fail(ctx, stepResetEquip, err)
	}
	if !mech.HasValidMechID() || char.EquippedMechID != mech.MechID {
		return nil
	}

	return c.step(ctx, stepResetEquip, true, func() error {
		updated := *char
		updated.EquippedMechID = equipment.UnattachedMechID
		out, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: &updated})
		if err != nil {
			return errors.Wrap(err, "failed to reset equipped mech")
		}
		*reset = true
		log.add(out.Character.ID, equipmentsvc.ActionUpdated, out.Character)
		return nil
	})
}
