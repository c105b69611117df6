// Package entity defines the core business entities for the domain layer.
package entity

import "testing"

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase with hyphen",
			input:    "abc-1234",
			expected: "ABC1234",
		},
		{
			name:     "already normalized",
			input:    "ABC1234",
			expected: "ABC1234",
		},
		{
			name:     "mercosul format",
			input:    "abc1d23",
			expected: "ABC1D23",
		},
		{
			name:     "surrounding whitespace",
			input:    "  abc-1234  ",
			expected: "ABC1234",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePlate(tt.input); got != tt.expected {
				t.Errorf("NormalizePlate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidPlate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "legacy format",
			input:    "ABC1234",
			expected: true,
		},
		{
			name:     "legacy format with hyphen",
			input:    "ABC-1234",
			expected: true,
		},
		{
			name:     "legacy format lowercase",
			input:    "abc1234",
			expected: true,
		},
		{
			name:     "mercosul format",
			input:    "ABC1D23",
			expected: true,
		},
		{
			name:     "mercosul format with hyphen",
			input:    "ABC-1D23",
			expected: true,
		},
		{
			name:     "too short",
			input:    "AB1234",
			expected: false,
		},
		{
			name:     "too long",
			input:    "ABCD1234",
			expected: false,
		},
		{
			name:     "all letters",
			input:    "ABCDEFG",
			expected: false,
		},
		{
			name:     "all digits",
			input:    "1234567",
			expected: false,
		},
		{
			name:     "mercosul letter in wrong position",
			input:    "ABC12D3",
			expected: false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPlate(tt.input); got != tt.expected {
				t.Errorf("ValidPlate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewCustomerNormalizesPlate(t *testing.T) {
	customer := NewCustomer("Maria Silva", "abc-1234", "11999990000")

	if customer.Plate != "ABC1234" {
		t.Errorf("expected normalized plate ABC1234, got %q", customer.Plate)
	}
	if customer.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a generated ID")
	}
	if customer.CreatedAt.IsZero() || customer.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}
