// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
)

// CategorySummary is one expense category bucket with count and total.
type CategorySummary struct {
	Category entity.ExpenseCategory
	Count    int
	Total    decimal.Decimal
}

// GetSummaryOutput is the expense dashboard summary: today's totals plus the
// month-to-date totals and per-category breakdown.
type GetSummaryOutput struct {
	TodayTotal decimal.Decimal
	TodayCount int

	MonthTotal decimal.Decimal
	MonthCount int
	ByCategory []CategorySummary
}

// GetSummaryUseCase aggregates expenses for the dashboard.
type GetSummaryUseCase struct {
	reportRepo adapter.ReportRepository
	now        func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(reportRepo adapter.ReportRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// Execute aggregates today's expenses and the month-to-date breakdown.
// The month-to-date query is a plain lower bound with no upper bound.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	now := uc.now()
	today := period.Day(now)
	monthStart := period.Month(now.Year(), now.Month(), now.Location()).Start

	monthExpenses, err := uc.reportRepo.FindExpensesSince(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month expenses: %w", err)
	}

	var todayTotal, monthTotal decimal.Decimal
	var todayCount int
	counts := make(map[entity.ExpenseCategory]int)
	totals := make(map[entity.ExpenseCategory]decimal.Decimal)

	for _, e := range monthExpenses {
		monthTotal = monthTotal.Add(e.Amount)
		counts[e.Category]++
		totals[e.Category] = totals[e.Category].Add(e.Amount)

		if today.Contains(e.Date) {
			todayTotal = todayTotal.Add(e.Amount)
			todayCount++
		}
	}

	byCategory := make([]CategorySummary, 0, len(entity.ExpenseCategories))
	for _, category := range entity.ExpenseCategories {
		if counts[category] == 0 {
			continue
		}
		byCategory = append(byCategory, CategorySummary{
			Category: category,
			Count:    counts[category],
			Total:    totals[category],
		})
	}

	return &GetSummaryOutput{
		TodayTotal: todayTotal,
		TodayCount: todayCount,
		MonthTotal: monthTotal,
		MonthCount: len(monthExpenses),
		ByCategory: byCategory,
	}, nil
}
