// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lavacar/backend/internal/domain/entity"
)

// CreateCustomerRequest represents the request body for customer creation.
type CreateCustomerRequest struct {
	Name  string `json:"nome" binding:"required,min=3"`
	Plate string `json:"placa" binding:"required"`
	Phone string `json:"telefone,omitempty"`
}

// UpdateCustomerRequest represents the request body for customer update.
// Absent fields are left unchanged.
type UpdateCustomerRequest struct {
	Name  *string `json:"nome,omitempty" binding:"omitempty,min=3"`
	Plate *string `json:"placa,omitempty"`
	Phone *string `json:"telefone,omitempty"`
}

// CustomerResponse represents a single customer in API responses.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Plate     string    `json:"placa"`
	Phone     string    `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerWashResponse represents a wash entry embedded in customer responses.
type CustomerWashResponse struct {
	ID            string    `json:"id"`
	WashType      string    `json:"tipo_lavagem"`
	Date          time.Time `json:"data"`
	Amount        string    `json:"valor"`
	PaymentMethod string    `json:"forma_pagamento"`
	Notes         string    `json:"observacao,omitempty"`
}

// CustomerWithWashesResponse represents a customer with their wash history.
type CustomerWithWashesResponse struct {
	CustomerResponse
	Washes []CustomerWashResponse `json:"lavagens"`
}

// ToCustomerResponse converts a Customer entity to a CustomerResponse DTO.
func ToCustomerResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Plate:     customer.Plate,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// ToCustomerWithWashesResponse converts a CustomerWithWashes to its DTO.
func ToCustomerWithWashesResponse(customer *entity.CustomerWithWashes) CustomerWithWashesResponse {
	washes := make([]CustomerWashResponse, len(customer.Washes))
	for i, w := range customer.Washes {
		washes[i] = CustomerWashResponse{
			ID:            w.ID.String(),
			WashType:      w.WashType,
			Date:          w.Date,
			Amount:        w.Amount.String(),
			PaymentMethod: string(w.PaymentMethod),
			Notes:         w.Notes,
		}
	}

	return CustomerWithWashesResponse{
		CustomerResponse: ToCustomerResponse(customer.Customer),
		Washes:           washes,
	}
}

// ToCustomerListResponse converts a list of customers with washes to DTOs.
func ToCustomerListResponse(customers []*entity.CustomerWithWashes) []CustomerWithWashesResponse {
	responses := make([]CustomerWithWashesResponse, len(customers))
	for i, c := range customers {
		responses[i] = ToCustomerWithWashesResponse(c)
	}
	return responses
}
