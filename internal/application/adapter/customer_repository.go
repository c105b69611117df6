// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lavacar/backend/internal/domain/entity"
)

// CustomerRepository defines the interface for customer persistence operations.
type CustomerRepository interface {
	// Create creates a new customer in the database.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByPlate retrieves a customer by its normalized plate (for uniqueness checks).
	FindByPlate(ctx context.Context, plate string) (*entity.Customer, error)

	// Search retrieves customers whose name or plate contains the search term,
	// most recently registered first. An empty term returns all customers.
	Search(ctx context.Context, term string) ([]*entity.Customer, error)

	// Update updates an existing customer in the database.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer. Washes referencing the customer keep their
	// history with the reference nulled, never cascade-deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
