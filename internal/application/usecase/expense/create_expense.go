// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
)

// MinDescriptionLength is the minimum allowed length for expense descriptions.
const MinDescriptionLength = 3

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Date        time.Time // Zero means now
	Category    entity.ExpenseCategory
	Description string
	Amount      decimal.Decimal
	Notes       string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.Date,
		input.Category,
		input.Description,
		input.Amount,
		input.Notes,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}

// validateCategory enforces the closed expense category enum.
func validateCategory(category entity.ExpenseCategory) error {
	if !category.Valid() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"tipo de despesa inválido",
			domainerror.ErrInvalidExpenseCategory,
		)
	}
	return nil
}

// validateDescription enforces the minimum description length.
func validateDescription(description string) error {
	if len(strings.TrimSpace(description)) < MinDescriptionLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionTooShort,
			fmt.Sprintf("descrição deve ter no mínimo %d caracteres", MinDescriptionLength),
			domainerror.ErrExpenseDescriptionTooShort,
		)
	}
	return nil
}

// validateAmount enforces strictly positive amounts.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"valor deve ser positivo",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	return nil
}
