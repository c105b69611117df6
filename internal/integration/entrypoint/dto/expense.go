// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/lavacar/backend/internal/application/usecase/expense"
	"github.com/lavacar/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Date        string  `json:"data,omitempty"`
	Category    string  `json:"tipo" binding:"required,oneof=funcionario produto marmita aluguel conta outro"`
	Description string  `json:"descricao" binding:"required,min=3"`
	Amount      float64 `json:"valor" binding:"required,gt=0"`
	Notes       string  `json:"observacao,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
// Absent fields are left unchanged.
type UpdateExpenseRequest struct {
	Date        *string  `json:"data,omitempty"`
	Category    *string  `json:"tipo,omitempty" binding:"omitempty,oneof=funcionario produto marmita aluguel conta outro"`
	Description *string  `json:"descricao,omitempty" binding:"omitempty,min=3"`
	Amount      *float64 `json:"valor,omitempty" binding:"omitempty,gt=0"`
	Notes       *string  `json:"observacao,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"data"`
	Category    string    `json:"tipo"`
	Description string    `json:"descricao"`
	Amount      string    `json:"valor"`
	Notes       string    `json:"observacao,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpensePeriodTotalsResponse represents totals over a period in the summary.
type ExpensePeriodTotalsResponse struct {
	Total string `json:"total"`
	Count int    `json:"quantidade"`
}

// ExpenseCategorySummaryResponse represents per-category totals in the summary.
type ExpenseCategorySummaryResponse struct {
	Category string `json:"tipo"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
}

// ExpenseSummaryResponse represents the response for the expense summary endpoint.
type ExpenseSummaryResponse struct {
	Today      ExpensePeriodTotalsResponse      `json:"hoje"`
	Month      ExpensePeriodTotalsResponse      `json:"mes"`
	ByCategory []ExpenseCategorySummaryResponse `json:"porTipo"`
}

// ToExpenseResponse converts an Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Date:        e.Date,
		Category:    string(e.Category),
		Description: e.Description,
		Amount:      e.Amount.String(),
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a list of expenses to DTOs.
func ToExpenseListResponse(expenses []*entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return responses
}

// ToExpenseSummaryResponse converts a GetSummaryOutput to its DTO.
func ToExpenseSummaryResponse(output *expense.GetSummaryOutput) ExpenseSummaryResponse {
	byCategory := make([]ExpenseCategorySummaryResponse, len(output.ByCategory))
	for i, c := range output.ByCategory {
		byCategory[i] = ExpenseCategorySummaryResponse{
			Category: string(c.Category),
			Total:    c.Total.String(),
			Count:    c.Count,
		}
	}

	return ExpenseSummaryResponse{
		Today: ExpensePeriodTotalsResponse{
			Total: output.TodayTotal.String(),
			Count: output.TodayCount,
		},
		Month: ExpensePeriodTotalsResponse{
			Total: output.MonthTotal.String(),
			Count: output.MonthCount,
		},
		ByCategory: byCategory,
	}
}
