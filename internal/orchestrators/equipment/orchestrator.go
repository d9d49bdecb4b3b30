// Package equipment implements the equipment orchestrator. It owns every
// multi-step change to a character's mechs, parts and items: assignment
// through the rules engine, the delete and transfer cascades, and change
// notifications on the event bus.
package equipment

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/mechbay-api/internal/engine"
	"github.com/KirkDiggler/mechbay-api/internal/entities"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	"github.com/KirkDiggler/mechbay-api/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/character"
	itemrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/item"
	mechrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/mech"
	partrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/part"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
)

const tracerName = "github.com/KirkDiggler/mechbay-api/internal/orchestrators/equipment"

// Config holds the dependencies for the equipment orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	MechRepo      mechrepo.Repository
	PartRepo      partrepo.Repository
	ItemRepo      itemrepo.Repository
	Engine        engine.Engine
	EventBus      events.EventBus
	// IDGenerator issues storage IDs
	IDGenerator idgen.Generator
	// MechIDGenerator issues mechIDs, the relation key parts point at
	MechIDGenerator idgen.Generator
	// Tracer is optional, the global provider is used when nil
	Tracer trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.MechRepo == nil {
		vb.RequiredField("MechRepo")
	}
	if c.PartRepo == nil {
		vb.RequiredField("PartRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.MechIDGenerator == nil {
		vb.RequiredField("MechIDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the equipment.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	mechRepo      mechrepo.Repository
	partRepo      partrepo.Repository
	itemRepo      itemrepo.Repository
	engine        engine.Engine
	eventBus      events.EventBus
	idGen         idgen.Generator
	mechIDGen     idgen.Generator
	tracer        trace.Tracer
	locks         *characterLocks
}

// New creates a new equipment orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		mechRepo:      cfg.MechRepo,
		partRepo:      cfg.PartRepo,
		itemRepo:      cfg.ItemRepo,
		engine:        cfg.Engine,
		eventBus:      cfg.EventBus,
		idGen:         cfg.IDGenerator,
		mechIDGen:     cfg.MechIDGenerator,
		tracer:        tracer,
		locks:         newCharacterLocks(),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ equipmentsvc.Service = (*Orchestrator)(nil)

func (o *Orchestrator) getCharacter(ctx context.Context, characterID string) (*entities.Character, error) {
	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character").
			WithMeta("character_id", characterID)
	}
	return out.Character, nil
}

func (o *Orchestrator) getMech(ctx context.Context, mechEntityID string) (*equipment.Mech, error) {
	out, err := o.mechRepo.Get(ctx, mechrepo.GetInput{ID: mechEntityID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get mech").
			WithMeta("mech_entity_id", mechEntityID)
	}
	return out.Mech, nil
}

func (o *Orchestrator) getPart(ctx context.Context, partID string) (*equipment.Part, error) {
	out, err := o.partRepo.Get(ctx, partrepo.GetInput{ID: partID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get part").
			WithMeta("part_id", partID)
	}
	return out.Part, nil
}

func (o *Orchestrator) listMechs(ctx context.Context, characterID string) ([]*equipment.Mech, error) {
	out, err := o.mechRepo.ListByOwner(ctx, mechrepo.ListByOwnerInput{OwnerID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list mechs").
			WithMeta("character_id", characterID)
	}
	return out.Mechs, nil
}

// attachedParts returns the parts mounted on the mech. A mech without a
// usable mechID cannot have any.
func (o *Orchestrator) attachedParts(ctx context.Context, mech *equipment.Mech) ([]*equipment.Part, error) {
	if !mech.HasValidMechID() {
		return []*equipment.Part{}, nil
	}
	out, err := o.partRepo.ListByMechID(ctx, partrepo.ListByMechIDInput{
		OwnerID: mech.OwnerID,
		MechID:  mech.MechID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list parts on mech").
			WithMeta("mech_id", mech.MechID)
	}
	return out.Parts, nil
}

// repairMechID replaces an unusable mechID and persists it. The caller must
// hold the owner's lock.
func (o *Orchestrator) repairMechID(ctx context.Context, mech *equipment.Mech, log *changeLog) (*equipment.Mech, error) {
	old := mech.MechID
	fixed := mech.Copy()
	fixed.MechID = o.mechIDGen.Generate()

	out, err := o.mechRepo.Update(ctx, mechrepo.UpdateInput{Mech: fixed})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to repair mech id").
			WithMeta("mech_entity_id", mech.ID)
	}

	slog.WarnContext(ctx, "regenerated invalid mech id",
		"mech_entity_id", mech.ID,
		"old_mech_id", old,
		"new_mech_id", out.Mech.MechID)

	log.add(out.Mech.OwnerID, equipmentsvc.ActionUpdated, out.Mech)
	return out.Mech, nil
}
