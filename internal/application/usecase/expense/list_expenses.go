// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
	"github.com/lavacar/backend/internal/domain/period"
)

// listLimit bounds the expense listing.
const listLimit = 100

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *entity.ExpenseCategory
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles expense listing with filters.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves expenses matching the filters, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if input.Category != nil && !input.Category.Valid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"tipo de despesa inválido",
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	filter := adapter.ExpenseFilter{
		Category: input.Category,
		Limit:    listLimit,
	}
	if input.StartDate != nil {
		start := period.Day(*input.StartDate).Start
		filter.StartDate = &start
	}
	if input.EndDate != nil {
		end := period.Day(*input.EndDate).End
		filter.EndDate = &end
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{
		Expenses: expenses,
	}, nil
}
