// Package customer contains customer-related use cases.
package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
)

// GetCustomerInput represents the input for retrieving a customer.
type GetCustomerInput struct {
	CustomerID uuid.UUID
}

// GetCustomerOutput represents the output of retrieving a customer.
type GetCustomerOutput struct {
	Customer *entity.CustomerWithWashes
}

// GetCustomerUseCase retrieves a customer with their full wash history.
type GetCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
	washRepo     adapter.WashRepository
}

// NewGetCustomerUseCase creates a new GetCustomerUseCase instance.
func NewGetCustomerUseCase(
	customerRepo adapter.CustomerRepository,
	washRepo adapter.WashRepository,
) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
		washRepo:     washRepo,
	}
}

// Execute retrieves the customer and all of their washes, newest first.
func (uc *GetCustomerUseCase) Execute(ctx context.Context, input GetCustomerInput) (*GetCustomerOutput, error) {
	customer, err := uc.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCustomerNotFound) {
			return nil, domainerror.NewCustomerError(
				domainerror.ErrCodeCustomerNotFound,
				"cliente não encontrado",
				domainerror.ErrCustomerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	washes, err := uc.washRepo.FindByCustomer(ctx, customer.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer washes: %w", err)
	}

	return &GetCustomerOutput{
		Customer: &entity.CustomerWithWashes{
			Customer: customer,
			Washes:   washes,
		},
	}, nil
}
