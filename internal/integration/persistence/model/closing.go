package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/domain/entity"
	"github.com/lavacar/backend/internal/domain/period"
)

// ClosingModel represents the fechamentos_diarios table in the database.
//
// The date is stored as a YYYY-MM-DD day key so the unique index enforces at
// most one closing per calendar day regardless of time zone or time-of-day
// noise in the persisted value.
type ClosingModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date string    `gorm:"column:data;type:varchar(10);uniqueIndex;not null"`

	WashCount    int             `gorm:"column:total_lavagens;not null"`
	RevenueTotal decimal.Decimal `gorm:"column:receita_total;type:decimal(12,2);not null"`
	RevenueCash  decimal.Decimal `gorm:"column:receita_dinheiro;type:decimal(12,2);not null"`
	RevenuePix   decimal.Decimal `gorm:"column:receita_pix;type:decimal(12,2);not null"`
	RevenueCard  decimal.Decimal `gorm:"column:receita_cartao;type:decimal(12,2);not null"`

	ExpenseTotal    decimal.Decimal `gorm:"column:despesa_total;type:decimal(12,2);not null"`
	ExpenseStaff    decimal.Decimal `gorm:"column:despesa_funcionario;type:decimal(12,2);not null"`
	ExpenseSupplies decimal.Decimal `gorm:"column:despesa_produto;type:decimal(12,2);not null"`
	ExpenseMeals    decimal.Decimal `gorm:"column:despesa_marmita;type:decimal(12,2);not null"`
	ExpenseOther    decimal.Decimal `gorm:"column:despesa_outros;type:decimal(12,2);not null"`

	NetProfit decimal.Decimal `gorm:"column:lucro_liquido;type:decimal(12,2);not null"`

	Notes     string    `gorm:"column:observacao;type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ClosingModel.
func (ClosingModel) TableName() string {
	return "fechamentos_diarios"
}

// ToEntity converts a ClosingModel to a domain DailyClosing entity.
func (m *ClosingModel) ToEntity() *entity.DailyClosing {
	date, _ := period.ParseDayKey(m.Date)

	return &entity.DailyClosing{
		ID:              m.ID,
		Date:            date,
		WashCount:       m.WashCount,
		RevenueTotal:    m.RevenueTotal,
		RevenueCash:     m.RevenueCash,
		RevenuePix:      m.RevenuePix,
		RevenueCard:     m.RevenueCard,
		ExpenseTotal:    m.ExpenseTotal,
		ExpenseStaff:    m.ExpenseStaff,
		ExpenseSupplies: m.ExpenseSupplies,
		ExpenseMeals:    m.ExpenseMeals,
		ExpenseOther:    m.ExpenseOther,
		NetProfit:       m.NetProfit,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
	}
}

// ClosingFromEntity creates a ClosingModel from a domain DailyClosing entity.
func ClosingFromEntity(closing *entity.DailyClosing) *ClosingModel {
	return &ClosingModel{
		ID:              closing.ID,
		Date:            period.DayKey(closing.Date),
		WashCount:       closing.WashCount,
		RevenueTotal:    closing.RevenueTotal,
		RevenueCash:     closing.RevenueCash,
		RevenuePix:      closing.RevenuePix,
		RevenueCard:     closing.RevenueCard,
		ExpenseTotal:    closing.ExpenseTotal,
		ExpenseStaff:    closing.ExpenseStaff,
		ExpenseSupplies: closing.ExpenseSupplies,
		ExpenseMeals:    closing.ExpenseMeals,
		ExpenseOther:    closing.ExpenseOther,
		NetProfit:       closing.NetProfit,
		Notes:           closing.Notes,
		CreatedAt:       closing.CreatedAt,
	}
}
