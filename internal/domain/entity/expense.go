// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the category of an operating expense.
// Wire values are kept in Portuguese for the existing client.
type ExpenseCategory string

const (
	ExpenseCategoryStaff     ExpenseCategory = "funcionario"
	ExpenseCategorySupplies  ExpenseCategory = "produto"
	ExpenseCategoryMeals     ExpenseCategory = "marmita"
	ExpenseCategoryRent      ExpenseCategory = "aluguel"
	ExpenseCategoryUtilities ExpenseCategory = "conta"
	ExpenseCategoryOther     ExpenseCategory = "outro"
)

// ExpenseCategories lists all accepted expense categories.
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryStaff,
	ExpenseCategorySupplies,
	ExpenseCategoryMeals,
	ExpenseCategoryRent,
	ExpenseCategoryUtilities,
	ExpenseCategoryOther,
}

// Valid reports whether the category is one of the accepted values.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseCategoryStaff, ExpenseCategorySupplies, ExpenseCategoryMeals,
		ExpenseCategoryRent, ExpenseCategoryUtilities, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense represents a single operating expense entry.
type Expense struct {
	ID          uuid.UUID
	Date        time.Time
	Category    ExpenseCategory
	Description string
	Amount      decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity. A zero date defaults to the current time.
func NewExpense(
	date time.Time,
	category ExpenseCategory,
	description string,
	amount decimal.Decimal,
	notes string,
) *Expense {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}

	return &Expense{
		ID:          uuid.New(),
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
