// Package closing contains the daily closing (fechamento) use cases.
package closing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/application/usecase/report"
	"github.com/lavacar/backend/internal/domain/period"
)

// GetDaySummaryInput represents the input for the pre-closing day summary.
type GetDaySummaryInput struct {
	// Date selects the calendar day. Zero means today.
	Date time.Time
}

// ExpenseBucket is a labeled expense group shown on the closing screen.
type ExpenseBucket struct {
	Label  string
	Amount decimal.Decimal
}

// GetDaySummaryOutput is the preview shown before the operator closes the day.
type GetDaySummaryOutput struct {
	Date time.Time

	WashCount    int
	RevenueTotal decimal.Decimal
	RevenueCash  decimal.Decimal
	RevenuePix   decimal.Decimal
	RevenueCard  decimal.Decimal

	ExpenseTotal decimal.Decimal
	// ExpenseBuckets lists only the non-zero buckets, using the labels the
	// closing screen renders.
	ExpenseBuckets []ExpenseBucket

	Profit decimal.Decimal
}

// GetDaySummaryUseCase aggregates the day's numbers without persisting anything.
type GetDaySummaryUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewGetDaySummaryUseCase creates a new GetDaySummaryUseCase instance.
func NewGetDaySummaryUseCase(reportRepo adapter.ReportRepository) *GetDaySummaryUseCase {
	return &GetDaySummaryUseCase{reportRepo: reportRepo}
}

// Execute aggregates the day's washes and expenses into the closing preview.
func (uc *GetDaySummaryUseCase) Execute(
	ctx context.Context,
	input GetDaySummaryInput,
) (*GetDaySummaryOutput, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	window := period.Day(date)

	washes, err := uc.reportRepo.FindWashesInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch washes for day summary: %w", err)
	}
	expenses, err := uc.reportRepo.FindExpensesInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for day summary: %w", err)
	}

	revenue := report.SummarizeRevenue(washes)
	expenseSummary := report.SummarizeExpenses(expenses)

	candidates := []ExpenseBucket{
		{Label: "Funcionário", Amount: expenseSummary.Staff},
		{Label: "Produto", Amount: expenseSummary.Supplies},
		{Label: "Marmita", Amount: expenseSummary.Meals},
		{Label: "Outros", Amount: expenseSummary.CollapsedOther()},
	}
	buckets := make([]ExpenseBucket, 0, len(candidates))
	for _, b := range candidates {
		if b.Amount.IsPositive() {
			buckets = append(buckets, b)
		}
	}

	return &GetDaySummaryOutput{
		Date:           window.Start,
		WashCount:      revenue.Count,
		RevenueTotal:   revenue.Total,
		RevenueCash:    revenue.Cash,
		RevenuePix:     revenue.Pix,
		RevenueCard:    revenue.Card,
		ExpenseTotal:   expenseSummary.Total,
		ExpenseBuckets: buckets,
		Profit:         revenue.Total.Sub(expenseSummary.Total),
	}, nil
}
