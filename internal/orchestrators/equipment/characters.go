package equipment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/mechbay-api/internal/entities"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	characterrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/character"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
)

// CreateCharacter creates a character with no mech equipped
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *equipmentsvc.CreateCharacterInput,
) (*equipmentsvc.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{
		Character: &entities.Character{
			ID:             o.idGen.Generate(),
			PlayerID:       input.PlayerID,
			Name:           strings.TrimSpace(input.Name),
			EquippedMechID: equipment.UnattachedMechID,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	log := &changeLog{}
	log.add(out.Character.ID, equipmentsvc.ActionCreated, out.Character)
	o.publish(ctx, log)

	return &equipmentsvc.CreateCharacterOutput{Character: out.Character}, nil
}

// GetCharacter returns a character and the mech it has equipped, if any
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *equipmentsvc.GetCharacterInput,
) (*equipmentsvc.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	output := &equipmentsvc.GetCharacterOutput{Character: char}
	if !char.HasEquippedMech() {
		return output, nil
	}

	mechs, err := o.listMechs(ctx, char.ID)
	if err != nil {
		return nil, err
	}
	for _, m := range mechs {
		if m.MechID == char.EquippedMechID {
			output.EquippedMech = m
			return output, nil
		}
	}

	slog.WarnContext(ctx, "equipped mech not found, reporting none",
		"character_id", char.ID,
		"equipped_mech_id", char.EquippedMechID)
	char.EquippedMechID = equipment.UnattachedMechID

	return output, nil
}
