// Package customer contains customer-related use cases.
package customer

import (
	"context"
	"fmt"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
)

// recentWashesLimit is how many recent washes are embedded per customer in listings.
const recentWashesLimit = 5

// ListCustomersInput represents the input for listing customers.
type ListCustomersInput struct {
	// Search filters by substring match on name or plate. Empty lists all.
	Search string
}

// ListCustomersOutput represents the output of listing customers.
type ListCustomersOutput struct {
	Customers []*entity.CustomerWithWashes
}

// ListCustomersUseCase handles customer listing with recent wash history.
type ListCustomersUseCase struct {
	customerRepo adapter.CustomerRepository
	washRepo     adapter.WashRepository
}

// NewListCustomersUseCase creates a new ListCustomersUseCase instance.
func NewListCustomersUseCase(
	customerRepo adapter.CustomerRepository,
	washRepo adapter.WashRepository,
) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
		washRepo:     washRepo,
	}
}

// Execute retrieves customers with their most recent washes attached.
func (uc *ListCustomersUseCase) Execute(ctx context.Context, input ListCustomersInput) (*ListCustomersOutput, error) {
	customers, err := uc.customerRepo.Search(ctx, input.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	result := make([]*entity.CustomerWithWashes, len(customers))
	for i, c := range customers {
		washes, err := uc.washRepo.FindByCustomer(ctx, c.ID, recentWashesLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch washes for customer %s: %w", c.ID, err)
		}
		result[i] = &entity.CustomerWithWashes{
			Customer: c,
			Washes:   washes,
		}
	}

	return &ListCustomersOutput{
		Customers: result,
	}, nil
}
