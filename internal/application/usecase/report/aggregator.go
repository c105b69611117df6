// Package report contains the period aggregation and reporting use cases.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/domain/entity"
)

// RevenueSummary aggregates wash revenue over a time window.
//
// Every bucket is always present: an empty window yields zeros, never
// missing fields.
type RevenueSummary struct {
	Count int
	Total decimal.Decimal

	// Revenue split by payment method.
	Cash decimal.Decimal
	Pix  decimal.Decimal
	Card decimal.Decimal

	// ByWashType groups by exact string equality on the wash type, ordered by
	// descending count (ties broken by wash type for determinism).
	ByWashType []entity.WashTypeBreakdown
}

// ExpenseSummary aggregates expenses over a time window, split by category.
type ExpenseSummary struct {
	Total decimal.Decimal

	Staff     decimal.Decimal
	Supplies  decimal.Decimal
	Meals     decimal.Decimal
	Rent      decimal.Decimal
	Utilities decimal.Decimal
	Other     decimal.Decimal
}

// CollapsedOther returns the rent, utilities and other categories collapsed
// into the single "outros" bucket used by daily closings and daily reports.
func (s ExpenseSummary) CollapsedOther() decimal.Decimal {
	return s.Rent.Add(s.Utilities).Add(s.Other)
}

// SummarizeRevenue computes all revenue buckets in a single pass over the
// given washes. The caller is responsible for window-filtering the input.
func SummarizeRevenue(washes []*entity.Wash) RevenueSummary {
	summary := RevenueSummary{Count: len(washes)}
	byType := make(map[string]*entity.WashTypeBreakdown)

	for _, w := range washes {
		summary.Total = summary.Total.Add(w.Amount)

		switch w.PaymentMethod {
		case entity.PaymentMethodCash:
			summary.Cash = summary.Cash.Add(w.Amount)
		case entity.PaymentMethodPix:
			summary.Pix = summary.Pix.Add(w.Amount)
		case entity.PaymentMethodCard:
			summary.Card = summary.Card.Add(w.Amount)
		}

		breakdown, ok := byType[w.WashType]
		if !ok {
			breakdown = &entity.WashTypeBreakdown{WashType: w.WashType}
			byType[w.WashType] = breakdown
		}
		breakdown.Count++
		breakdown.Total = breakdown.Total.Add(w.Amount)
	}

	summary.ByWashType = make([]entity.WashTypeBreakdown, 0, len(byType))
	for _, breakdown := range byType {
		summary.ByWashType = append(summary.ByWashType, *breakdown)
	}
	sort.Slice(summary.ByWashType, func(i, j int) bool {
		a, b := summary.ByWashType[i], summary.ByWashType[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.WashType < b.WashType
	})

	return summary
}

// SummarizeExpenses computes the expense total and all six category buckets in
// a single pass over the given expenses.
func SummarizeExpenses(expenses []*entity.Expense) ExpenseSummary {
	var summary ExpenseSummary

	for _, e := range expenses {
		summary.Total = summary.Total.Add(e.Amount)

		switch e.Category {
		case entity.ExpenseCategoryStaff:
			summary.Staff = summary.Staff.Add(e.Amount)
		case entity.ExpenseCategorySupplies:
			summary.Supplies = summary.Supplies.Add(e.Amount)
		case entity.ExpenseCategoryMeals:
			summary.Meals = summary.Meals.Add(e.Amount)
		case entity.ExpenseCategoryRent:
			summary.Rent = summary.Rent.Add(e.Amount)
		case entity.ExpenseCategoryUtilities:
			summary.Utilities = summary.Utilities.Add(e.Amount)
		case entity.ExpenseCategoryOther:
			summary.Other = summary.Other.Add(e.Amount)
		}
	}

	return summary
}

// FormatMargin renders a profit margin as a percentage string ("75.00%").
// Zero or negative revenue reports "0%" rather than dividing by zero.
func FormatMargin(profit, revenue decimal.Decimal) string {
	if !revenue.IsPositive() {
		return "0%"
	}
	return profit.Mul(decimal.NewFromInt(100)).Div(revenue).StringFixed(2) + "%"
}
