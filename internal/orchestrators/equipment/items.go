package equipment

import (
	"context"
	"strings"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	itemrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/item"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
)

// CreateItem creates an inventory item
func (o *Orchestrator) CreateItem(
	ctx context.Context,
	input *equipmentsvc.CreateItemInput,
) (*equipmentsvc.CreateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.getCharacter(ctx, input.CharacterID); err != nil {
		return nil, err
	}

	item := &equipment.Item{
		ID:          o.idGen.Generate(),
		OwnerID:     input.CharacterID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Quantity:    input.Quantity,
		Weight:      input.Weight,
		Location:    input.Location,
	}
	if item.Quantity == 0 {
		item.Quantity = equipment.DefaultQuantity
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	out, err := o.itemRepo.Create(ctx, itemrepo.CreateInput{Item: item})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	log := &changeLog{}
	log.add(out.Item.OwnerID, equipmentsvc.ActionCreated, out.Item)
	o.publish(ctx, log)

	return &equipmentsvc.CreateItemOutput{Item: out.Item}, nil
}

// ListItems lists a character's items, also grouped by location
func (o *Orchestrator) ListItems(
	ctx context.Context,
	input *equipmentsvc.ListItemsInput,
) (*equipmentsvc.ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.itemRepo.ListByOwner(ctx, itemrepo.ListByOwnerInput{OwnerID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	byLocation := make(map[equipment.Location][]*equipment.Item)
	for _, it := range out.Items {
		byLocation[it.Location] = append(byLocation[it.Location], it)
	}

	return &equipmentsvc.ListItemsOutput{Items: out.Items, ByLocation: byLocation}, nil
}

// MoveItem changes an item's location classification
func (o *Orchestrator) MoveItem(
	ctx context.Context,
	input *equipmentsvc.MoveItemInput,
) (*equipmentsvc.MoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	got, err := o.itemRepo.Get(ctx, itemrepo.GetInput{ID: input.ItemID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item").WithMeta("item_id", input.ItemID)
	}

	moved := *got.Item
	moved.Location = input.Location.Normalize()
	if err := moved.Validate(); err != nil {
		return nil, err
	}
	if moved.Location == got.Item.Location {
		return &equipmentsvc.MoveItemOutput{Item: got.Item}, nil
	}

	out, err := o.itemRepo.Update(ctx, itemrepo.UpdateInput{Item: &moved})
	if err != nil {
		return nil, errors.Wrap(err, "failed to move item")
	}

	log := &changeLog{}
	log.add(out.Item.OwnerID, equipmentsvc.ActionUpdated, out.Item)
	o.publish(ctx, log)

	return &equipmentsvc.MoveItemOutput{Item: out.Item}, nil
}

// DeleteItem deletes an item
func (o *Orchestrator) DeleteItem(
	ctx context.Context,
	input *equipmentsvc.DeleteItemInput,
) (*equipmentsvc.DeleteItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	got, err := o.itemRepo.Get(ctx, itemrepo.GetInput{ID: input.ItemID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item").WithMeta("item_id", input.ItemID)
	}
	if _, err := o.itemRepo.Delete(ctx, itemrepo.DeleteInput{ID: input.ItemID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete item")
	}

	log := &changeLog{}
	log.add(got.Item.OwnerID, equipmentsvc.ActionDeleted, got.Item)
	o.publish(ctx, log)

	return &equipmentsvc.DeleteItemOutput{}, nil
}
