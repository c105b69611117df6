// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lavacar/backend/internal/application/usecase/closing"
	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
)

// CloseDayRequest represents the request body for closing a day.
type CloseDayRequest struct {
	Date  string `json:"data" binding:"required"`
	Notes string `json:"observacao,omitempty"`
}

// ClosingResponse represents a single daily closing in API responses.
type ClosingResponse struct {
	ID   string `json:"id"`
	Date string `json:"data"`

	WashCount    int    `json:"total_lavagens"`
	RevenueTotal string `json:"receita_total"`
	RevenueCash  string `json:"receita_dinheiro"`
	RevenuePix   string `json:"receita_pix"`
	RevenueCard  string `json:"receita_cartao"`

	ExpenseTotal    string `json:"despesa_total"`
	ExpenseStaff    string `json:"despesa_funcionario"`
	ExpenseSupplies string `json:"despesa_produto"`
	ExpenseMeals    string `json:"despesa_marmita"`
	ExpenseOther    string `json:"despesa_outros"`

	NetProfit string `json:"lucro_liquido"`

	Notes     string    `json:"observacao,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckDayResponse represents the response for the day status endpoint.
type CheckDayResponse struct {
	Closed  bool             `json:"encerrado"`
	Closing *ClosingResponse `json:"fechamento"`
}

// ClosingExpenseBucketResponse represents a non-zero expense bucket in the
// pre-closing summary.
type ClosingExpenseBucketResponse struct {
	Label  string `json:"tipo"`
	Amount string `json:"valor"`
}

// ClosingSummaryResponse represents the pre-closing day summary.
type ClosingSummaryResponse struct {
	Date string `json:"data"`

	WashCount    int    `json:"totalLavagens"`
	RevenueTotal string `json:"receitaTotal"`
	RevenueCash  string `json:"receitaDinheiro"`
	RevenuePix   string `json:"receitaPix"`
	RevenueCard  string `json:"receitaCartao"`

	ExpenseTotal   string                         `json:"despesaTotal"`
	ExpenseBuckets []ClosingExpenseBucketResponse `json:"despesaPorTipo"`

	Profit string `json:"lucro"`
}

// ToClosingResponse converts a DailyClosing entity to a ClosingResponse DTO.
func ToClosingResponse(c *entity.DailyClosing) ClosingResponse {
	return ClosingResponse{
		ID:              c.ID.String(),
		Date:            period.DayKey(c.Date),
		WashCount:       c.WashCount,
		RevenueTotal:    c.RevenueTotal.String(),
		RevenueCash:     c.RevenueCash.String(),
		RevenuePix:      c.RevenuePix.String(),
		RevenueCard:     c.RevenueCard.String(),
		ExpenseTotal:    c.ExpenseTotal.String(),
		ExpenseStaff:    c.ExpenseStaff.String(),
		ExpenseSupplies: c.ExpenseSupplies.String(),
		ExpenseMeals:    c.ExpenseMeals.String(),
		ExpenseOther:    c.ExpenseOther.String(),
		NetProfit:       c.NetProfit.String(),
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
	}
}

// ToClosingListResponse converts a list of closings to DTOs.
func ToClosingListResponse(closings []*entity.DailyClosing) []ClosingResponse {
	responses := make([]ClosingResponse, len(closings))
	for i, c := range closings {
		responses[i] = ToClosingResponse(c)
	}
	return responses
}

// ToCheckDayResponse converts a CheckDayOutput to its DTO.
func ToCheckDayResponse(output *closing.CheckDayOutput) CheckDayResponse {
	response := CheckDayResponse{
		Closed: output.Closed,
	}
	if output.Closing != nil {
		closingResponse := ToClosingResponse(output.Closing)
		response.Closing = &closingResponse
	}
	return response
}

// ToClosingSummaryResponse converts a GetDaySummaryOutput to its DTO.
func ToClosingSummaryResponse(output *closing.GetDaySummaryOutput) ClosingSummaryResponse {
	buckets := make([]ClosingExpenseBucketResponse, len(output.ExpenseBuckets))
	for i, b := range output.ExpenseBuckets {
		buckets[i] = ClosingExpenseBucketResponse{
			Label:  b.Label,
			Amount: b.Amount.String(),
		}
	}

	return ClosingSummaryResponse{
		Date:           period.DayKey(output.Date),
		WashCount:      output.WashCount,
		RevenueTotal:   output.RevenueTotal.String(),
		RevenueCash:    output.RevenueCash.String(),
		RevenuePix:     output.RevenuePix.String(),
		RevenueCard:    output.RevenueCard.String(),
		ExpenseTotal:   output.ExpenseTotal.String(),
		ExpenseBuckets: buckets,
		Profit:         output.Profit.String(),
	}
}
