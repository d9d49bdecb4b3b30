package equipment

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	mechrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/mech"
	partrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/part"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
)

// TransferMech moves a mech and the parts mounted on it to another
// character. Copies keep the mechID and get new storage IDs. Every copy is
// written before any source entity is removed, so an interrupted transfer
// leaves duplicates rather than losing parts. A mech with no parts takes the
// plain copy and delete path. Destination parts that already reference the
// mechID without a mech are unassigned first so they never join the copy.
func (o *Orchestrator) TransferMech(
	ctx context.Context,
	input *equipmentsvc.TransferMechInput,
) (*equipmentsvc.TransferMechOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sourceCharacterID", input.SourceCharacterID, vb)
	errors.ValidateRequired("destinationCharacterID", input.DestinationCharacterID, vb)
	errors.ValidateRequired("mechEntityID", input.MechEntityID, vb)
	if input.SourceCharacterID != "" && input.SourceCharacterID == input.DestinationCharacterID {
		vb.Field("destinationCharacterID", "must differ from the source character")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	log := &changeLog{}
	defer o.publish(ctx, log)

	unlock := o.locks.Lock(input.SourceCharacterID, input.DestinationCharacterID)
	defer unlock()

	mech, err := o.getMech(ctx, input.MechEntityID)
	if err != nil {
		return nil, err
	}
	if mech.OwnerID != input.SourceCharacterID {
		return nil, errors.FailedPreconditionf("mech %s is not owned by character %s",
			mech.ID, input.SourceCharacterID)
	}
	if _, err := o.getCharacter(ctx, input.DestinationCharacterID); err != nil {
		return nil, err
	}

	if !mech.HasValidMechID() {
		if mech, err = o.repairMechID(ctx, mech, log); err != nil {
			return nil, err
		}
	}

	destMechs, err := o.listMechs(ctx, input.DestinationCharacterID)
	if err != nil {
		return nil, err
	}
	for _, m := range destMechs {
		if m.MechID == mech.MechID {
			return nil, errors.AlreadyExistsf("character %s already has a mech with mechID %s",
				input.DestinationCharacterID, mech.MechID).
				WithMeta("mech_entity_id", m.ID)
		}
	}

	ctx, c := o.startCascade(ctx, opTransferMech,
		transferMechSteps(),
		attribute.String("mech.entity_id", mech.ID),
		attribute.String("mech.id", mech.MechID),
		attribute.String("character.source_id", input.SourceCharacterID),
		attribute.String("character.destination_id", input.DestinationCharacterID),
	)
	defer c.end()

	var parts, strays []*equipment.Part
	if err := c.step(ctx, stepEnumerate, false, func() error {
		if parts, err = o.attachedParts(ctx, mech); err != nil {
			return err
		}
		out, err := o.partRepo.ListByMechID(ctx, partrepo.ListByMechIDInput{
			OwnerID: input.DestinationCharacterID,
			MechID:  mech.MechID,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to list destination parts").
				WithMeta("mech_id", mech.MechID)
		}
		strays = out.Parts
		return nil
	}); err != nil {
		return nil, err
	}
	c.span.SetAttributes(
		attribute.Int("parts.attached", len(parts)),
		attribute.Int("parts.stray", len(strays)),
	)

	if len(strays) > 0 {
		if err := c.step(ctx, stepFreeStrays, true, func() error {
			slog.WarnContext(ctx, "unassigning destination parts left on a missing mech",
				"mech_id", mech.MechID,
				"character_id", input.DestinationCharacterID,
				"count", len(strays))
			return o.unassignAll(ctx, strays, log)
		}); err != nil {
			return nil, err
		}
	}

	output := &equipmentsvc.TransferMechOutput{Parts: []*equipment.Part{}}

	if err := c.step(ctx, stepCopyMech, true, func() error {
		copied := mech.Copy()
		copied.ID = o.idGen.Generate()
		copied.OwnerID = input.DestinationCharacterID

		out, err := o.mechRepo.Create(ctx, mechrepo.CreateInput{Mech: copied})
		if err != nil {
			return errors.Wrap(err, "failed to copy mech")
		}
		output.Mech = out.Mech
		log.add(out.Mech.OwnerID, equipmentsvc.ActionCreated, out.Mech)
		return nil
	}); err != nil {
		return nil, err
	}

	if len(parts) > 0 {
		if err := c.step(ctx, stepCopyParts, true, func() error {
			copies := make([]*equipment.Part, len(parts))
			for i, p := range parts {
				copies[i] = p.Copy()
				copies[i].ID = o.idGen.Generate()
				copies[i].OwnerID = input.DestinationCharacterID
			}

			out, err := o.partRepo.BatchCreate(ctx, partrepo.BatchCreateInput{Parts: copies})
			if err != nil {
				return errors.Wrap(err, "failed to copy parts")
			}
			output.Parts = out.Parts
			for _, p := range out.Parts {
				log.add(p.OwnerID, equipmentsvc.ActionCreated, p)
			}
			return nil
		}); err != nil {
			return nil, err
		}

		if err := c.step(ctx, stepDeleteSource, true, func() error {
			return o.deleteAll(ctx, parts, log)
		}); err != nil {
			return nil, err
		}
	}

	var reset bool
	if err := o.resetEquipped(ctx, c, mech, log, &reset); err != nil {
		return nil, err
	}

	if err := c.step(ctx, stepDeleteMech, true, func() error {
		if _, err := o.mechRepo.Delete(ctx, mechrepo.DeleteInput{ID: mech.ID}); err != nil {
			return errors.Wrap(err, "failed to delete source mech")
		}
		log.add(mech.OwnerID, equipmentsvc.ActionTransferred, mech)
		return nil
	}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "mech transferred",
		"mech_id", mech.MechID,
		"source_character_id", input.SourceCharacterID,
		"destination_character_id", input.DestinationCharacterID,
		"parts_moved", len(output.Parts),
		"equip_reset", reset)

	return output, nil
}
