// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyClosing is the immutable end-of-day reconciliation snapshot.
//
// At most one closing exists per calendar date. Once persisted, a closing is
// never updated or deleted: it is a ledger entry, not a live view over the
// day's transactions.
type DailyClosing struct {
	ID   uuid.UUID
	Date time.Time // Calendar day; time-of-day components are zero

	WashCount    int
	RevenueTotal decimal.Decimal
	RevenueCash  decimal.Decimal
	RevenuePix   decimal.Decimal
	RevenueCard  decimal.Decimal

	ExpenseTotal    decimal.Decimal
	ExpenseStaff    decimal.Decimal
	ExpenseSupplies decimal.Decimal
	ExpenseMeals    decimal.Decimal
	// ExpenseOther collapses the rent, utilities and other categories.
	ExpenseOther decimal.Decimal

	NetProfit decimal.Decimal

	Notes     string
	CreatedAt time.Time
}

// Reconciles reports whether the closing's totals are internally consistent:
// payment-method buckets sum to the revenue total, expense buckets sum to the
// expense total, and net profit equals revenue minus expenses.
func (c *DailyClosing) Reconciles() bool {
	revenue := c.RevenueCash.Add(c.RevenuePix).Add(c.RevenueCard)
	expense := c.ExpenseStaff.Add(c.ExpenseSupplies).Add(c.ExpenseMeals).Add(c.ExpenseOther)

	return revenue.Equal(c.RevenueTotal) &&
		expense.Equal(c.ExpenseTotal) &&
		c.NetProfit.Equal(c.RevenueTotal.Sub(c.ExpenseTotal))
}
