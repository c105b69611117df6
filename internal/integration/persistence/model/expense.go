package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/domain/entity"
)

// ExpenseModel represents the despesas table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date        time.Time       `gorm:"column:data;not null;index"`
	Category    string          `gorm:"column:tipo;type:varchar(20);not null;index"`
	Description string          `gorm:"column:descricao;type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"column:valor;type:decimal(12,2);not null"`
	Notes       string          `gorm:"column:observacao;type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "despesas"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		Date:        m.Date,
		Category:    entity.ExpenseCategory(m.Category),
		Description: m.Description,
		Amount:      m.Amount,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		Date:        expense.Date,
		Category:    string(expense.Category),
		Description: expense.Description,
		Amount:      expense.Amount,
		Notes:       expense.Notes,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
