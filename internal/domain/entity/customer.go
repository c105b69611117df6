// Package entity defines the core business entities for the domain layer.
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Brazilian license plate formats: legacy (ABC1234) and Mercosul (ABC1D23).
var (
	legacyPlatePattern   = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlatePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

// Customer represents a registered customer of the car wash.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Plate     string // Normalized: uppercase, no hyphen
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer creates a new Customer entity with a normalized plate.
func NewCustomer(name, plate, phone string) *Customer {
	now := time.Now().UTC()

	return &Customer{
		ID:        uuid.New(),
		Name:      name,
		Plate:     NormalizePlate(plate),
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NormalizePlate strips hyphens and uppercases a license plate.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), "-", ""))
}

// ValidPlate reports whether the plate matches one of the accepted formats
// after normalization.
func ValidPlate(plate string) bool {
	normalized := NormalizePlate(plate)
	return legacyPlatePattern.MatchString(normalized) || mercosulPlatePattern.MatchString(normalized)
}

// CustomerWithWashes represents a customer with their wash history attached.
type CustomerWithWashes struct {
	Customer *Customer
	Washes   []*Wash
}
