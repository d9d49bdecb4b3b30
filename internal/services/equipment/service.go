// Package equipment defines the interface for mech, part and item operations
package equipment

//go:generate mockgen -destination=mock/mock_service.go -package=equipmentmock github.com/KirkDiggler/mechbay-api/internal/services/equipment Service

import (
	"context"

	"github.com/KirkDiggler/mechbay-api/internal/engine"
	"github.com/KirkDiggler/mechbay-api/internal/entities"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
)

// Service defines the interface for equipment operations
type Service interface {
	// Characters
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// Mechs
	CreateMech(ctx context.Context, input *CreateMechInput) (*CreateMechOutput, error)
	GetMech(ctx context.Context, input *GetMechInput) (*GetMechOutput, error)
	ListMechs(ctx context.Context, input *ListMechsInput) (*ListMechsOutput, error)
	UpdateMech(ctx context.Context, input *UpdateMechInput) (*UpdateMechOutput, error)
	EquipMech(ctx context.Context, input *EquipMechInput) (*EquipMechOutput, error)
	UnequipMech(ctx context.Context, input *UnequipMechInput) (*UnequipMechOutput, error)
	DeleteMech(ctx context.Context, input *DeleteMechInput) (*DeleteMechOutput, error)
	TransferMech(ctx context.Context, input *TransferMechInput) (*TransferMechOutput, error)

	// Parts
	CreatePart(ctx context.Context, input *CreatePartInput) (*CreatePartOutput, error)
	GetPart(ctx context.Context, input *GetPartInput) (*GetPartOutput, error)
	ListParts(ctx context.Context, input *ListPartsInput) (*ListPartsOutput, error)
	UpdatePart(ctx context.Context, input *UpdatePartInput) (*UpdatePartOutput, error)
	SetPartEnabled(ctx context.Context, input *SetPartEnabledInput) (*SetPartEnabledOutput, error)
	AssignPart(ctx context.Context, input *AssignPartInput) (*AssignPartOutput, error)
	DeletePart(ctx context.Context, input *DeletePartInput) (*DeletePartOutput, error)

	// Items
	CreateItem(ctx context.Context, input *CreateItemInput) (*CreateItemOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
	MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error)
	DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error)

	// Subscribe registers fn for changes to one character's equipment. An
	// empty characterID receives every change. The caller owns the returned
	// handle and must Close it.
	Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error)
}

// Resolution selects what happens to the parts mounted on a mech being deleted
type Resolution string

// Delete resolutions
const (
	ResolutionUnassign  Resolution = "unassign"
	ResolutionDeleteAll Resolution = "delete_all"
	ResolutionCancel    Resolution = "cancel"
)

// Resolutions lists the accepted values, in the order a host presents them
func Resolutions() []Resolution {
	return []Resolution{ResolutionUnassign, ResolutionDeleteAll, ResolutionCancel}
}

// IsValid checks if the resolution is known
func (r Resolution) IsValid() bool {
	switch r {
	case ResolutionUnassign, ResolutionDeleteAll, ResolutionCancel:
		return true
	}
	return false
}

// Outcome is the terminal state of a mech deletion
type Outcome string

// Delete outcomes
const (
	OutcomeDeleted   Outcome = "deleted"
	OutcomeCancelled Outcome = "cancelled"
)

// Character types

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	PlayerID string
	Name     string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character. A stored
// equipped reference to a mech that no longer exists reads back as "0".
type GetCharacterOutput struct {
	Character    *entities.Character
	EquippedMech *equipment.Mech
}

// Mech types

// CreateMechInput defines the request for creating a mech
type CreateMechInput struct {
	CharacterID       string
	Name              string
	Description       string
	Weight            float64
	BodyPartHP        equipment.BodyStats
	BodyPartMaxHP     equipment.BodyStats
	BodyPartArmour    equipment.BodyStats
	BodyPartMaxArmour equipment.BodyStats
}

// CreateMechOutput defines the response for creating a mech
type CreateMechOutput struct {
	Mech *equipment.Mech
}

// GetMechInput defines the request for getting a mech
type GetMechInput struct {
	MechEntityID string
}

// GetMechOutput defines the response for getting a mech with its derived state
type GetMechOutput struct {
	Mech    *equipment.Mech
	Summary *engine.Summary
	Layout  engine.Layout
	// Repaired is set when the stored mechID was unusable and a new one was written
	Repaired bool
}

// ListMechsInput defines the request for listing a character's mechs
type ListMechsInput struct {
	CharacterID string
}

// ListMechsOutput defines the response for listing a character's mechs
type ListMechsOutput struct {
	Mechs []*equipment.Mech
}

// UpdateMechInput defines the request for editing a mech. Nil fields are left as is.
type UpdateMechInput struct {
	MechEntityID      string
	Name              *string
	Description       *string
	Weight            *float64
	BodyPartHP        equipment.BodyStats
	BodyPartMaxHP     equipment.BodyStats
	BodyPartArmour    equipment.BodyStats
	BodyPartMaxArmour equipment.BodyStats
}

// UpdateMechOutput defines the response for editing a mech
type UpdateMechOutput struct {
	Mech *equipment.Mech
}

// EquipMechInput defines the request for equipping a mech
type EquipMechInput struct {
	CharacterID  string
	MechEntityID string
}

// EquipMechOutput defines the response for equipping a mech
type EquipMechOutput struct {
	Character *entities.Character
}

// UnequipMechInput defines the request for clearing the equipped mech
type UnequipMechInput struct {
	CharacterID string
}

// UnequipMechOutput defines the response for clearing the equipped mech
type UnequipMechOutput struct {
	Character *entities.Character
}

// DeleteMechInput defines the request for deleting a mech. Resolution may be
// empty when the mech carries no parts.
type DeleteMechInput struct {
	CharacterID  string
	MechEntityID string
	Resolution   Resolution
}

// DeleteMechOutput defines the response for deleting a mech
type DeleteMechOutput struct {
	Outcome       Outcome
	PartsAffected int
	EquipReset    bool
}

// TransferMechInput defines the request for moving a mech to another character
type TransferMechInput struct {
	SourceCharacterID      string
	DestinationCharacterID string
	MechEntityID           string
}

// TransferMechOutput defines the response for moving a mech
type TransferMechOutput struct {
	Mech  *equipment.Mech
	Parts []*equipment.Part
}

// Part types

// CreatePartInput defines the request for creating a part. Zero values take
// the part defaults; MechID and Location optionally mount it straight away.
type CreatePartInput struct {
	CharacterID  string
	Name         string
	Description  string
	Quantity     int
	Weight       float64
	Resources    equipment.Resources
	ResourceType equipment.ResourceType
	Enabled      *bool
	Roll         *equipment.Roll
	MechID       string
	Location     equipment.Location
}

// CreatePartOutput defines the response for creating a part
type CreatePartOutput struct {
	Part *equipment.Part
}

// GetPartInput defines the request for getting a part
type GetPartInput struct {
	PartID string
}

// GetPartOutput defines the response for getting a part. A part pointing at a
// mech that is gone reads back unassigned.
type GetPartOutput struct {
	Part     *equipment.Part
	Mech     *equipment.Mech
	Assigned bool
}

// ListPartsInput defines the request for listing a character's parts
type ListPartsInput struct {
	CharacterID    string
	UnassignedOnly bool
}

// ListPartsOutput defines the response for listing a character's parts
type ListPartsOutput struct {
	Parts []*equipment.Part
}

// UpdatePartInput defines the request for editing a part. Nil fields are left as is.
type UpdatePartInput struct {
	PartID       string
	Name         *string
	Description  *string
	Quantity     *int
	Weight       *float64
	Resources    equipment.Resources
	ResourceType *equipment.ResourceType
	Roll         *equipment.Roll
}

// UpdatePartOutput defines the response for editing a part
type UpdatePartOutput struct {
	Part *equipment.Part
}

// SetPartEnabledInput defines the request for toggling a part
type SetPartEnabledInput struct {
	PartID  string
	Enabled bool
}

// SetPartEnabledOutput defines the response for toggling a part
type SetPartEnabledOutput struct {
	Part    *equipment.Part
	Changed bool
}

// AssignPartInput defines the request for mounting or unmounting a part
type AssignPartInput struct {
	CharacterID string
	PartID      string
	MechID      string
	Location    equipment.Location
}

// AssignPartOutput defines the response for mounting or unmounting a part
type AssignPartOutput struct {
	Part    *equipment.Part
	Changed bool
}

// DeletePartInput defines the request for deleting a part
type DeletePartInput struct {
	PartID string
}

// DeletePartOutput defines the response for deleting a part
type DeletePartOutput struct{}

// Item types

// CreateItemInput defines the request for creating an item
type CreateItemInput struct {
	CharacterID string
	Name        string
	Description string
	Quantity    int
	Weight      float64
	Location    equipment.Location
}

// CreateItemOutput defines the response for creating an item
type CreateItemOutput struct {
	Item *equipment.Item
}

// ListItemsInput defines the request for listing a character's items
type ListItemsInput struct {
	CharacterID string
}

// ListItemsOutput defines the response for listing a character's items
type ListItemsOutput struct {
	Items      []*equipment.Item
	ByLocation map[equipment.Location][]*equipment.Item
}

// MoveItemInput defines the request for moving an item
type MoveItemInput struct {
	ItemID   string
	Location equipment.Location
}

// MoveItemOutput defines the response for moving an item
type MoveItemOutput struct {
	Item *equipment.Item
}

// DeleteItemInput defines the request for deleting an item
type DeleteItemInput struct {
	ItemID string
}

// DeleteItemOutput defines the response for deleting an item
type DeleteItemOutput struct{}

// Change notifications

// Change kinds
const (
	KindCharacter = "character"
	KindMech      = "mech"
	KindPart      = "part"
	KindItem      = "item"
)

// Change actions
const (
	ActionCreated     = "created"
	ActionUpdated     = "updated"
	ActionDeleted     = "deleted"
	ActionTransferred = "transferred"
)

// EventType returns the bus topic for a kind and action, e.g. equipment.part.updated
func EventType(kind, action string) string {
	return "equipment." + kind + "." + action
}

// Change describes one entity mutation
type Change struct {
	Type        string
	Kind        string
	Action      string
	CharacterID string
	EntityID    string
	// MechID is the relation key touched by the change, "" when none
	MechID string
}

// ChangeHandler receives changes. Errors are logged and do not stop delivery.
type ChangeHandler func(ctx context.Context, change *Change) error

// SubscribeInput defines the request for a change subscription
type SubscribeInput struct {
	CharacterID string
	Handler     ChangeHandler
}

// SubscribeOutput holds the subscription handle
type SubscribeOutput struct {
	Subscription Subscription
}

// Subscription is a registered change handler
type Subscription interface {
	// Close stops delivery. It is safe to call more than once.
	Close() error
}
