// Package item provides the interface for inventory item persistence
package item

//go:generate mockgen -destination=mock/mock_repository.go -package=itemmock github.com/KirkDiggler/mechbay-api/internal/repositories/item Repository

import (
	"context"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
)

// Repository defines the interface for item persistence
type Repository interface {
	// Create stores a new item
	// Returns errors.AlreadyExists if an item with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an item by storage ID
	// Returns errors.NotFound if the item doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing item
	// Returns errors.NotFound if the item doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an item
	// Returns errors.NotFound if the item doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner returns every item owned by a character
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// CreateInput defines the input for creating an item
type CreateInput struct {
	Item *equipment.Item
}

// CreateOutput defines the output for creating an item
type CreateOutput struct {
	Item *equipment.Item
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *equipment.Item
}

// UpdateInput defines the input for updating an item
type UpdateInput struct {
	Item *equipment.Item
}

// UpdateOutput defines the output for updating an item
type UpdateOutput struct {
	Item *equipment.Item
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing a character's items
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing a character's items
type ListByOwnerOutput struct {
	Items []*equipment.Item
}
