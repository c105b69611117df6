// Package wash contains wash transaction use cases.
package wash

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
)

// MinWashTypeLength is the minimum allowed length for wash types.
const MinWashTypeLength = 3

// RegisterWashInput represents the input for registering a wash.
//
// CustomerID links the wash to a registered customer; WalkInName/WalkInPhone
// identify a walk-in instead. Providing both is a validation error.
type RegisterWashInput struct {
	CustomerID    *uuid.UUID
	WalkInName    string
	WalkInPhone   string
	WashType      string
	Plate         string
	Date          time.Time // Zero means now; may be backdated
	Amount        decimal.Decimal
	PaymentMethod entity.PaymentMethod
	Notes         string
}

// RegisterWashOutput represents the output of registering a wash.
type RegisterWashOutput struct {
	Wash *entity.WashWithCustomer
}

// RegisterWashUseCase handles wash registration.
type RegisterWashUseCase struct {
	washRepo     adapter.WashRepository
	customerRepo adapter.CustomerRepository
}

// NewRegisterWashUseCase creates a new RegisterWashUseCase instance.
func NewRegisterWashUseCase(
	washRepo adapter.WashRepository,
	customerRepo adapter.CustomerRepository,
) *RegisterWashUseCase {
	return &RegisterWashUseCase{
		washRepo:     washRepo,
		customerRepo: customerRepo,
	}
}

// Execute performs the wash registration.
func (uc *RegisterWashUseCase) Execute(ctx context.Context, input RegisterWashInput) (*RegisterWashOutput, error) {
	if err := validateWashType(input.WashType); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validatePaymentMethod(input.PaymentMethod); err != nil {
		return nil, err
	}

	var customer *entity.Customer
	var walkIn *entity.WalkIn

	if input.CustomerID != nil {
		if input.WalkInName != "" || input.WalkInPhone != "" {
			return nil, domainerror.NewWashError(
				domainerror.ErrCodeWashCustomerConflict,
				"lavagem não pode ter cliente cadastrado e dados avulsos ao mesmo tempo",
				domainerror.ErrWashCustomerConflict,
			)
		}

		found, err := uc.customerRepo.FindByID(ctx, *input.CustomerID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCustomerNotFound) {
				return nil, domainerror.NewWashError(
					domainerror.ErrCodeWashCustomerNotFound,
					"cliente não encontrado",
					domainerror.ErrWashCustomerNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find customer: %w", err)
		}
		customer = found
	} else if input.WalkInName != "" || input.WalkInPhone != "" {
		walkIn = &entity.WalkIn{
			Name:  input.WalkInName,
			Phone: input.WalkInPhone,
		}
	}

	wash := entity.NewWash(
		input.CustomerID,
		walkIn,
		input.WashType,
		input.Plate,
		input.Date,
		input.Amount,
		input.PaymentMethod,
		input.Notes,
	)

	if err := uc.washRepo.Create(ctx, wash); err != nil {
		return nil, fmt.Errorf("failed to create wash: %w", err)
	}

	return &RegisterWashOutput{
		Wash: &entity.WashWithCustomer{
			Wash:     wash,
			Customer: customer,
		},
	}, nil
}

// validateWashType enforces the minimum wash type length.
func validateWashType(washType string) error {
	if len(strings.TrimSpace(washType)) < MinWashTypeLength {
		return domainerror.NewWashError(
			domainerror.ErrCodeWashTypeTooShort,
			fmt.Sprintf("tipo de lavagem deve ter no mínimo %d caracteres", MinWashTypeLength),
			domainerror.ErrWashTypeTooShort,
		)
	}
	return nil
}

// validateAmount enforces strictly positive amounts.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewWashError(
			domainerror.ErrCodeInvalidWashAmount,
			"valor deve ser positivo",
			domainerror.ErrInvalidWashAmount,
		)
	}
	return nil
}

// validatePaymentMethod enforces the closed payment method enum.
func validatePaymentMethod(method entity.PaymentMethod) error {
	if !method.Valid() {
		return domainerror.NewWashError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"forma de pagamento deve ser dinheiro, pix ou cartao",
			domainerror.ErrInvalidPaymentMethod,
		)
	}
	return nil
}
