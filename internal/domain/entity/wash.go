// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a wash was paid for.
// Wire values are kept in Portuguese for the existing client.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "dinheiro"
	PaymentMethodPix  PaymentMethod = "pix"
	PaymentMethodCard PaymentMethod = "cartao"
)

// PaymentMethods lists all accepted payment methods.
var PaymentMethods = []PaymentMethod{PaymentMethodCash, PaymentMethodPix, PaymentMethodCard}

// Valid reports whether the payment method is one of the accepted values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodPix, PaymentMethodCard:
		return true
	}
	return false
}

// WalkIn holds the free-text identification of a wash with no registered customer.
type WalkIn struct {
	Name  string
	Phone string
}

// Wash represents a single revenue-generating wash transaction.
//
// A wash either references a registered customer (CustomerID set) or is a
// walk-in (WalkIn set); never both. Both may be absent for an anonymous wash.
type Wash struct {
	ID            uuid.UUID
	CustomerID    *uuid.UUID
	WalkIn        *WalkIn
	WashType      string
	Plate         string // Free text, independent of any Customer's plate
	Date          time.Time
	Amount        decimal.Decimal
	PaymentMethod PaymentMethod
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewWash creates a new Wash entity. A zero date defaults to the current time.
func NewWash(
	customerID *uuid.UUID,
	walkIn *WalkIn,
	washType string,
	plate string,
	date time.Time,
	amount decimal.Decimal,
	paymentMethod PaymentMethod,
	notes string,
) *Wash {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}

	return &Wash{
		ID:            uuid.New(),
		CustomerID:    customerID,
		WalkIn:        walkIn,
		WashType:      washType,
		Plate:         plate,
		Date:          date,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsWalkIn reports whether the wash has no linked customer record.
func (w *Wash) IsWalkIn() bool {
	return w.CustomerID == nil
}

// WashWithCustomer represents a wash with its linked customer, when one exists.
type WashWithCustomer struct {
	Wash     *Wash
	Customer *Customer
}

// WashTypeBreakdown aggregates washes sharing the same wash type.
type WashTypeBreakdown struct {
	WashType string
	Count    int
	Total    decimal.Decimal
}
