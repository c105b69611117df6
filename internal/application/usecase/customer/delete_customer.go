// Package customer contains customer-related use cases.
package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lavacar/backend/internal/application/adapter"
	domainerror "github.com/lavacar/backend/internal/domain/error"
)

// DeleteCustomerInput represents the input for customer deletion.
type DeleteCustomerInput struct {
	CustomerID uuid.UUID
}

// DeleteCustomerOutput represents the output of customer deletion.
type DeleteCustomerOutput struct {
	Success bool
}

// DeleteCustomerUseCase handles customer deletion. Wash history is preserved:
// the repository nulls the customer reference on associated washes instead of
// cascade-deleting them.
type DeleteCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewDeleteCustomerUseCase creates a new DeleteCustomerUseCase instance.
func NewDeleteCustomerUseCase(customerRepo adapter.CustomerRepository) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute performs the customer deletion. Deleting a missing id is NotFound.
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, input DeleteCustomerInput) (*DeleteCustomerOutput, error) {
	if _, err := uc.customerRepo.FindByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, domainerror.ErrCustomerNotFound) {
			return nil, domainerror.NewCustomerError(
				domainerror.ErrCodeCustomerNotFound,
				"cliente não encontrado",
				domainerror.ErrCustomerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	if err := uc.customerRepo.Delete(ctx, input.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to delete customer: %w", err)
	}

	return &DeleteCustomerOutput{
		Success: true,
	}, nil
}
