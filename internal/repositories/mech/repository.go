// Package mech provides the interface for mech persistence
package mech

//go:generate mockgen -destination=mock/mock_repository.go -package=mechmock github.com/KirkDiggler/mechbay-api/internal/repositories/mech Repository

import (
	"context"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
)

// Repository defines the interface for mech persistence
type Repository interface {
	// Create stores a new mech and adds it to its owner's index
	// Returns errors.InvalidArgument for missing id or owner
	// Returns errors.AlreadyExists if a mech with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a mech by storage ID
	// Returns errors.NotFound if the mech doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing mech. The owner cannot change.
	// Returns errors.NotFound if the mech doesn't exist
	// Returns errors.FailedPrecondition on an owner change
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a mech and its owner index entry
	// Returns errors.NotFound if the mech doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner returns every mech owned by a character
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// CreateInput defines the input for creating a mech
type CreateInput struct {
	Mech *equipment.Mech
}

// CreateOutput defines the output for creating a mech
type CreateOutput struct {
	Mech *equipment.Mech
}

// GetInput defines the input for getting a mech
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a mech
type GetOutput struct {
	Mech *equipment.Mech
}

// UpdateInput defines the input for updating a mech
type UpdateInput struct {
	Mech *equipment.Mech
}

// UpdateOutput defines the output for updating a mech
type UpdateOutput struct {
	Mech *equipment.Mech
}

// DeleteInput defines the input for deleting a mech
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a mech
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing a character's mechs
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing a character's mechs
type ListByOwnerOutput struct {
	Mechs []*equipment.Mech
}
