// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
)

// WashFilter represents filter criteria for listing washes.
type WashFilter struct {
	// Window bounds the wash timestamps (inclusive on both ends).
	Window *period.Window

	// Plate filters by substring match on the wash plate or the linked
	// customer's plate.
	Plate string
}

// WashRepository defines the interface for wash persistence operations.
type WashRepository interface {
	// Create creates a new wash in the database.
	Create(ctx context.Context, wash *entity.Wash) error

	// FindByID retrieves a wash by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Wash, error)

	// FindByIDWithCustomer retrieves a wash with its linked customer by ID.
	FindByIDWithCustomer(ctx context.Context, id uuid.UUID) (*entity.WashWithCustomer, error)

	// FindByFilter retrieves washes matching the filter, newest first, with
	// linked customers attached.
	FindByFilter(ctx context.Context, filter WashFilter) ([]*entity.WashWithCustomer, error)

	// FindByCustomer retrieves the most recent washes for a customer.
	// A non-positive limit returns all of them.
	FindByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.Wash, error)

	// Update updates an existing wash in the database.
	Update(ctx context.Context, wash *entity.Wash) error

	// Delete removes a wash from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
