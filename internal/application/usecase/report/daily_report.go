// Package report contains the period aggregation and reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
)

// GetDailyReportInput represents the input for the daily report.
type GetDailyReportInput struct {
	// Date selects the calendar day to report on. Zero means today.
	Date time.Time
}

// GetDailyReportOutput represents the full daily report: the aggregated
// numbers plus the underlying rows for the client to render.
type GetDailyReportOutput struct {
	Date     time.Time
	Revenue  RevenueSummary
	Expenses ExpenseSummary

	NetProfit decimal.Decimal
	Margin    string

	Washes      []*entity.WashWithCustomer
	ExpenseRows []*entity.Expense
}

// GetDailyReportUseCase assembles the daily revenue/expense/profit report.
type GetDailyReportUseCase struct {
	washRepo    adapter.WashRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetDailyReportUseCase creates a new GetDailyReportUseCase instance.
func NewGetDailyReportUseCase(
	washRepo adapter.WashRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetDailyReportUseCase {
	return &GetDailyReportUseCase{
		washRepo:    washRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute builds the report for the requested day. A day with no activity
// yields all-zero totals and a "0%" margin, not an error.
func (uc *GetDailyReportUseCase) Execute(
	ctx context.Context,
	input GetDailyReportInput,
) (*GetDailyReportOutput, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	window := period.Day(date)

	washes, err := uc.washRepo.FindByFilter(ctx, adapter.WashFilter{Window: &window})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch washes for daily report: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		StartDate: &window.Start,
		EndDate:   &window.End,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for daily report: %w", err)
	}

	plain := make([]*entity.Wash, len(washes))
	for i, w := range washes {
		plain[i] = w.Wash
	}

	revenue := SummarizeRevenue(plain)
	expenseSummary := SummarizeExpenses(expenses)
	profit := revenue.Total.Sub(expenseSummary.Total)

	return &GetDailyReportOutput{
		Date:        window.Start,
		Revenue:     revenue,
		Expenses:    expenseSummary,
		NetProfit:   profit,
		Margin:      FormatMargin(profit, revenue.Total),
		Washes:      washes,
		ExpenseRows: expenses,
	}, nil
}
