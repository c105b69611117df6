// Package customer contains customer-related use cases.
package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
)

// UpdateCustomerInput represents the input for a partial customer update.
// Nil fields are left unchanged.
type UpdateCustomerInput struct {
	CustomerID uuid.UUID
	Name       *string
	Plate      *string
	Phone      *string
}

// UpdateCustomerOutput represents the output of a customer update.
type UpdateCustomerOutput struct {
	Customer *entity.Customer
}

// UpdateCustomerUseCase handles partial customer updates.
type UpdateCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewUpdateCustomerUseCase creates a new UpdateCustomerUseCase instance.
func NewUpdateCustomerUseCase(customerRepo adapter.CustomerRepository) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute performs the customer update. Updating a missing id is NotFound.
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, input UpdateCustomerInput) (*UpdateCustomerOutput, error) {
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

	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
		customer.Name = *input.Name
	}

	if input.Plate != nil {
		if err := validatePlate(*input.Plate); err != nil {
			return nil, err
		}
		plate := entity.NormalizePlate(*input.Plate)

		if plate != customer.Plate {
			existing, err := uc.customerRepo.FindByPlate(ctx, plate)
			if err == nil && existing.ID != customer.ID {
				return nil, duplicatePlateError()
			}
			if err != nil && !errors.Is(err, domainerror.ErrCustomerNotFound) {
				return nil, fmt.Errorf("failed to check plate uniqueness: %w", err)
			}
			customer.Plate = plate
		}
	}

	if input.Phone != nil {
		customer.Phone = *input.Phone
	}

	customer.UpdatedAt = time.Now().UTC()

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		// A concurrent create of the same plate may have won the race
		// between the uniqueness check and the write.
		if errors.Is(err, domainerror.ErrPlateAlreadyExists) {
			return nil, duplicatePlateError()
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return &UpdateCustomerOutput{
		Customer: customer,
	}, nil
}
