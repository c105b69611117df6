// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
)

// fakeReportRepository serves window-filtered expenses from memory.
type fakeReportRepository struct {
	expenses []*entity.Expense
}

func (r *fakeReportRepository) FindWashesInWindow(_ context.Context, _ period.Window) ([]*entity.Wash, error) {
	return nil, nil
}

func (r *fakeReportRepository) FindExpensesInWindow(_ context.Context, w period.Window) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		if w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeReportRepository) FindExpensesSince(_ context.Context, start time.Time) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		if !e.Date.Before(start) {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	loc := time.Local
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, loc)

	repo := &fakeReportRepository{
		expenses: []*entity.Expense{
			{Date: time.Date(2025, 3, 10, 9, 0, 0, 0, loc), Category: entity.ExpenseCategoryStaff, Amount: decimal.NewFromInt(80)},
			{Date: time.Date(2025, 3, 10, 12, 0, 0, 0, loc), Category: entity.ExpenseCategoryMeals, Amount: decimal.NewFromInt(25)},
			{Date: time.Date(2025, 3, 5, 12, 0, 0, 0, loc), Category: entity.ExpenseCategoryStaff, Amount: decimal.NewFromInt(80)},
			// Previous month, must not enter the summary.
			{Date: time.Date(2025, 2, 26, 12, 0, 0, 0, loc), Category: entity.ExpenseCategorySupplies, Amount: decimal.NewFromInt(999)},
		},
	}

	uc := NewGetSummaryUseCase(repo)
	uc.now = func() time.Time { return now }

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.TodayCount != 2 {
		t.Errorf("TodayCount = %d, want 2", output.TodayCount)
	}
	if !output.TodayTotal.Equal(decimal.NewFromInt(105)) {
		t.Errorf("TodayTotal = %s, want 105", output.TodayTotal)
	}
	if output.MonthCount != 3 {
		t.Errorf("MonthCount = %d, want 3", output.MonthCount)
	}
	if !output.MonthTotal.Equal(decimal.NewFromInt(185)) {
		t.Errorf("MonthTotal = %s, want 185", output.MonthTotal)
	}

	// Only categories with activity appear, in the canonical category order.
	if len(output.ByCategory) != 2 {
		t.Fatalf("expected 2 category buckets, got %d", len(output.ByCategory))
	}
	if output.ByCategory[0].Category != entity.ExpenseCategoryStaff {
		t.Errorf("first bucket = %s, want funcionario", output.ByCategory[0].Category)
	}
	if output.ByCategory[0].Count != 2 || !output.ByCategory[0].Total.Equal(decimal.NewFromInt(160)) {
		t.Errorf("staff bucket = %+v, want count 2 total 160", output.ByCategory[0])
	}
	if output.ByCategory[1].Category != entity.ExpenseCategoryMeals {
		t.Errorf("second bucket = %s, want marmita", output.ByCategory[1].Category)
	}
}

func TestGetSummaryUseCase_Execute_Empty(t *testing.T) {
	uc := NewGetSummaryUseCase(&fakeReportRepository{})

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.TodayCount != 0 || output.MonthCount != 0 {
		t.Errorf("expected zero counts, got today %d month %d", output.TodayCount, output.MonthCount)
	}
	if !output.TodayTotal.IsZero() || !output.MonthTotal.IsZero() {
		t.Error("expected zero totals")
	}
	if len(output.ByCategory) != 0 {
		t.Errorf("expected no category buckets, got %d", len(output.ByCategory))
	}
}
