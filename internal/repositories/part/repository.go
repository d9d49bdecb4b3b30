// Package part provides the interface for part persistence. Besides the
// owner index the store keeps a mechID index per owner, so the parts mounted
// on a mech are found without scanning the owner's inventory.
package part

//go:generate mockgen -destination=mock/mock_repository.go -package=partmock github.com/KirkDiggler/mechbay-api/internal/repositories/part Repository

import (
	"context"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
)

// Repository defines the interface for part persistence
type Repository interface {
	// Create stores a new part
	// Returns errors.InvalidArgument for missing id or owner
	// Returns errors.AlreadyExists if a part with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// BatchCreate stores several parts in one transaction. Either every part
	// is written or none is.
	// Returns errors.AlreadyExists if any ID is taken
	// Returns errors.Aborted if a concurrent write touched the keys
	BatchCreate(ctx context.Context, input BatchCreateInput) (*BatchCreateOutput, error)

	// Get retrieves a part by storage ID
	// Returns errors.NotFound if the part doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing part and moves it between mech indexes
	// Returns errors.NotFound if the part doesn't exist
	// Returns errors.FailedPrecondition on an owner change
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// BatchUpdate replaces several parts in one transaction
	// Returns errors.NotFound if any part doesn't exist, with nothing written
	// Returns errors.Aborted if a concurrent write touched the keys
	BatchUpdate(ctx context.Context, input BatchUpdateInput) (*BatchUpdateOutput, error)

	// Delete removes a part and its index entries
	// Returns errors.NotFound if the part doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// BatchDelete removes several parts in one transaction
	// Returns errors.NotFound if any part doesn't exist, with nothing removed
	// Returns errors.Aborted if a concurrent write touched the keys
	BatchDelete(ctx context.Context, input BatchDeleteInput) (*BatchDeleteOutput, error)

	// ListByOwner returns every part owned by a character
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// ListByMechID returns the owner's parts whose mechID matches
	ListByMechID(ctx context.Context, input ListByMechIDInput) (*ListByMechIDOutput, error)
}

// CreateInput defines the input for creating a part
type CreateInput struct {
	Part *equipment.Part
}

// CreateOutput defines the output for creating a part
type CreateOutput struct {
	Part *equipment.Part
}

// BatchCreateInput defines the input for creating several parts
type BatchCreateInput struct {
	Parts []*equipment.Part
}

// BatchCreateOutput defines the output for creating several parts
type BatchCreateOutput struct {
	Parts []*equipment.Part
}

// GetInput defines the input for getting a part
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a part
type GetOutput struct {
	Part *equipment.Part
}

// UpdateInput defines the input for updating a part
type UpdateInput struct {
	Part *equipment.Part
}

// UpdateOutput defines the output for updating a part
type UpdateOutput struct {
	Part *equipment.Part
}

// BatchUpdateInput defines the input for updating several parts
type BatchUpdateInput struct {
	Parts []*equipment.Part
}

// BatchUpdateOutput defines the output for updating several parts
type BatchUpdateOutput struct {
	Parts []*equipment.Part
}

// DeleteInput defines the input for deleting a part
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a part
type DeleteOutput struct{}

// BatchDeleteInput defines the input for deleting several parts
type BatchDeleteInput struct {
	IDs []string
}

// BatchDeleteOutput defines the output for deleting several parts
type BatchDeleteOutput struct {
	Deleted int
}

// ListByOwnerInput defines the input for listing a character's parts
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing a character's parts
type ListByOwnerOutput struct {
	Parts []*equipment.Part
}

// ListByMechIDInput defines the input for listing the parts on a mech
type ListByMechIDInput struct {
	OwnerID string
	MechID  string
}

// ListByMechIDOutput defines the output for listing the parts on a mech
type ListByMechIDOutput struct {
	Parts []*equipment.Part
}
