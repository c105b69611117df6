// Package customer contains customer-related use cases.
package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
)

// MinCustomerNameLength is the minimum allowed length for customer names.
const MinCustomerNameLength = 3

// CreateCustomerInput represents the input for customer creation.
type CreateCustomerInput struct {
	Name  string
	Plate string
	Phone string // Optional
}

// CreateCustomerOutput represents the output of customer creation.
type CreateCustomerOutput struct {
	Customer *entity.Customer
}

// CreateCustomerUseCase handles customer creation logic.
type CreateCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewCreateCustomerUseCase creates a new CreateCustomerUseCase instance.
func NewCreateCustomerUseCase(customerRepo adapter.CustomerRepository) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute performs the customer creation.
func (uc *CreateCustomerUseCase) Execute(ctx context.Context, input CreateCustomerInput) (*CreateCustomerOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validatePlate(input.Plate); err != nil {
		return nil, err
	}

	plate := entity.NormalizePlate(input.Plate)

	// Check plate uniqueness before inserting
	_, err := uc.customerRepo.FindByPlate(ctx, plate)
	if err == nil {
		return nil, duplicatePlateError()
	}
	if !errors.Is(err, domainerror.ErrCustomerNotFound) {
		return nil, fmt.Errorf("failed to check plate uniqueness: %w", err)
	}

	customer := entity.NewCustomer(input.Name, plate, input.Phone)

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		// A concurrent create may have won the race between the uniqueness
		// check and the insert; the storage constraint reports it here.
		if errors.Is(err, domainerror.ErrPlateAlreadyExists) {
			return nil, duplicatePlateError()
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &CreateCustomerOutput{
		Customer: customer,
	}, nil
}

// validateName enforces the minimum customer name length.
func validateName(name string) error {
	if len(strings.TrimSpace(name)) < MinCustomerNameLength {
		return domainerror.NewCustomerError(
			domainerror.ErrCodeCustomerNameTooShort,
			fmt.Sprintf("nome deve ter no mínimo %d caracteres", MinCustomerNameLength),
			domainerror.ErrCustomerNameTooShort,
		)
	}
	return nil
}

// validatePlate enforces the accepted plate formats.
func validatePlate(plate string) error {
	if !entity.ValidPlate(plate) {
		return domainerror.NewCustomerError(
			domainerror.ErrCodeInvalidPlate,
			"placa inválida (formatos aceitos: ABC-1234, ABC1234 ou ABC1D23)",
			domainerror.ErrInvalidPlate,
		)
	}
	return nil
}

func duplicatePlateError() error {
	return domainerror.NewCustomerError(
		domainerror.ErrCodePlateAlreadyExists,
		"placa já cadastrada",
		domainerror.ErrPlateAlreadyExists,
	)
}
