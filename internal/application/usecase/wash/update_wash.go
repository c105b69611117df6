// Package wash contains wash transaction use cases.
package wash

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
)

// UpdateWashInput represents the input for a partial wash update.
// Nil fields are left unchanged.
type UpdateWashInput struct {
	WashID uuid.UUID

	// CustomerIDSet distinguishes "unlink the customer" (set, nil value) from
	// "leave unchanged" (unset).
	CustomerIDSet bool
	CustomerID    *uuid.UUID

	WashType      *string
	Plate         *string
	Date          *time.Time
	Amount        *decimal.Decimal
	PaymentMethod *entity.PaymentMethod
	Notes         *string
}

// UpdateWashOutput represents the output of a wash update.
type UpdateWashOutput struct {
	Wash *entity.WashWithCustomer
}

// UpdateWashUseCase handles partial wash updates. Closings already computed
// are snapshots and are not touched by edits to the underlying washes.
type UpdateWashUseCase struct {
	washRepo     adapter.WashRepository
	customerRepo adapter.CustomerRepository
}

// NewUpdateWashUseCase creates a new UpdateWashUseCase instance.
func NewUpdateWashUseCase(
	washRepo adapter.WashRepository,
	customerRepo adapter.CustomerRepository,
) *UpdateWashUseCase {
	return &UpdateWashUseCase{
		washRepo:     washRepo,
		customerRepo: customerRepo,
	}
}

// Execute performs the wash update. Updating a missing id is NotFound.
func (uc *UpdateWashUseCase) Execute(ctx context.Context, input UpdateWashInput) (*UpdateWashOutput, error) {
	wash, err := uc.washRepo.FindByID(ctx, input.WashID)
	if err != nil {
		if errors.Is(err, domainerror.ErrWashNotFound) {
			return nil, uc.notFound()
		}
		return nil, fmt.Errorf("failed to find wash: %w", err)
	}

	if input.CustomerIDSet {
		if input.CustomerID != nil {
			if _, err := uc.customerRepo.FindByID(ctx, *input.CustomerID); err != nil {
				if errors.Is(err, domainerror.ErrCustomerNotFound) {
					return nil, domainerror.NewWashError(
						domainerror.ErrCodeWashCustomerNotFound,
						"cliente não encontrado",
						domainerror.ErrWashCustomerNotFound,
					)
				}
				return nil, fmt.Errorf("failed to find customer: %w", err)
			}
			// Linking a customer replaces any walk-in identification.
			wash.WalkIn = nil
		}
		wash.CustomerID = input.CustomerID
	}

	if input.WashType != nil {
		if err := validateWashType(*input.WashType); err != nil {
			return nil, err
		}
		wash.WashType = *input.WashType
	}
	if input.Plate != nil {
		wash.Plate = *input.Plate
	}
	if input.Date != nil {
		wash.Date = *input.Date
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		wash.Amount = *input.Amount
	}
	if input.PaymentMethod != nil {
		if err := validatePaymentMethod(*input.PaymentMethod); err != nil {
			return nil, err
		}
		wash.PaymentMethod = *input.PaymentMethod
	}
	if input.Notes != nil {
		wash.Notes = *input.Notes
	}

	wash.UpdatedAt = time.Now().UTC()

	if err := uc.washRepo.Update(ctx, wash); err != nil {
		return nil, fmt.Errorf("failed to update wash: %w", err)
	}

	updated, err := uc.washRepo.FindByIDWithCustomer(ctx, wash.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload wash: %w", err)
	}

	return &UpdateWashOutput{
		Wash: updated,
	}, nil
}

func (uc *UpdateWashUseCase) notFound() error {
	return domainerror.NewWashError(
		domainerror.ErrCodeWashNotFound,
		"lavagem não encontrada",
		domainerror.ErrWashNotFound,
	)
}
