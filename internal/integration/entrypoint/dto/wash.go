// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lavacar/backend/internal/application/usecase/wash"
	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
)

// RegisterWashRequest represents the request body for wash registration.
type RegisterWashRequest struct {
	WashType      string  `json:"tipoLavagem" binding:"required,min=3"`
	Plate         string  `json:"placa,omitempty"`
	CustomerID    *string `json:"clienteId,omitempty"`
	WalkInName    string  `json:"nomeCliente,omitempty"`
	WalkInPhone   string  `json:"telefone,omitempty"`
	Date          string  `json:"data,omitempty"`
	Amount        float64 `json:"valor" binding:"required,gt=0"`
	PaymentMethod string  `json:"formaPagamento" binding:"required,oneof=dinheiro pix cartao"`
	Notes         string  `json:"observacao,omitempty"`
}

// UpdateWashRequest represents the request body for wash update.
// Absent fields are left unchanged; UnlinkCustomer removes the customer link.
type UpdateWashRequest struct {
	CustomerID     *string  `json:"clienteId,omitempty"`
	UnlinkCustomer bool     `json:"removerCliente,omitempty"`
	WashType       *string  `json:"tipoLavagem,omitempty" binding:"omitempty,min=3"`
	Plate          *string  `json:"placa,omitempty"`
	Date           *string  `json:"data,omitempty"`
	Amount         *float64 `json:"valor,omitempty" binding:"omitempty,gt=0"`
	PaymentMethod  *string  `json:"formaPagamento,omitempty" binding:"omitempty,oneof=dinheiro pix cartao"`
	Notes          *string  `json:"observacao,omitempty"`
}

// WashCustomerResponse represents customer information in wash responses.
type WashCustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Plate string `json:"placa"`
	Phone string `json:"telefone,omitempty"`
}

// WashResponse represents a single wash in API responses.
type WashResponse struct {
	ID            string                `json:"id"`
	CustomerID    *string               `json:"cliente_id,omitempty"`
	Customer      *WashCustomerResponse `json:"cliente"`
	WalkInName    string                `json:"nome_cliente,omitempty"`
	WalkInPhone   string                `json:"telefone,omitempty"`
	WashType      string                `json:"tipo_lavagem"`
	Plate         string                `json:"placa,omitempty"`
	Date          time.Time             `json:"data"`
	Amount        string                `json:"valor"`
	PaymentMethod string                `json:"forma_pagamento"`
	Notes         string                `json:"observacao,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// PaymentMethodSummaryResponse represents per-method revenue in the day summary.
type PaymentMethodSummaryResponse struct {
	PaymentMethod string `json:"formaPagamento"`
	Total         string `json:"total"`
	Count         int    `json:"count"`
}

// WashTypeSummaryResponse represents per-type volume in the day summary.
type WashTypeSummaryResponse struct {
	WashType string `json:"tipo"`
	Count    int    `json:"count"`
	Total    string `json:"total"`
}

// WashDaySummaryResponse represents the response for the day summary endpoint.
type WashDaySummaryResponse struct {
	Date            string                         `json:"data"`
	WashCount       int                            `json:"lavagens"`
	Revenue         string                         `json:"receita"`
	ByPaymentMethod []PaymentMethodSummaryResponse `json:"formasPagamento"`
	ByWashType      []WashTypeSummaryResponse      `json:"tiposLavagem"`
}

// ToWashResponse converts a WashWithCustomer to a WashResponse DTO.
func ToWashResponse(w *entity.WashWithCustomer) WashResponse {
	response := WashResponse{
		ID:            w.Wash.ID.String(),
		WashType:      w.Wash.WashType,
		Plate:         w.Wash.Plate,
		Date:          w.Wash.Date,
		Amount:        w.Wash.Amount.String(),
		PaymentMethod: string(w.Wash.PaymentMethod),
		Notes:         w.Wash.Notes,
		CreatedAt:     w.Wash.CreatedAt,
		UpdatedAt:     w.Wash.UpdatedAt,
	}

	if w.Wash.CustomerID != nil {
		customerIDStr := w.Wash.CustomerID.String()
		response.CustomerID = &customerIDStr
	}
	if w.Wash.WalkIn != nil {
		response.WalkInName = w.Wash.WalkIn.Name
		response.WalkInPhone = w.Wash.WalkIn.Phone
	}
	if w.Customer != nil {
		response.Customer = &WashCustomerResponse{
			ID:    w.Customer.ID.String(),
			Name:  w.Customer.Name,
			Plate: w.Customer.Plate,
			Phone: w.Customer.Phone,
		}
	}

	return response
}

// ToWashListResponse converts a list of washes with customers to DTOs.
func ToWashListResponse(washes []*entity.WashWithCustomer) []WashResponse {
	responses := make([]WashResponse, len(washes))
	for i, w := range washes {
		responses[i] = ToWashResponse(w)
	}
	return responses
}

// ToWashDaySummaryResponse converts a GetDaySummaryOutput to its DTO.
func ToWashDaySummaryResponse(output *wash.GetDaySummaryOutput) WashDaySummaryResponse {
	byMethod := make([]PaymentMethodSummaryResponse, len(output.ByPaymentMethod))
	for i, m := range output.ByPaymentMethod {
		byMethod[i] = PaymentMethodSummaryResponse{
			PaymentMethod: string(m.PaymentMethod),
			Total:         m.Total.String(),
			Count:         m.Count,
		}
	}

	byType := make([]WashTypeSummaryResponse, len(output.ByWashType))
	for i, t := range output.ByWashType {
		byType[i] = WashTypeSummaryResponse{
			WashType: t.WashType,
			Count:    t.Count,
			Total:    t.Total.String(),
		}
	}

	return WashDaySummaryResponse{
		Date:            period.DayKey(output.Date),
		WashCount:       output.WashCount,
		Revenue:         output.Revenue.String(),
		ByPaymentMethod: byMethod,
		ByWashType:      byType,
	}
}
