package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/domain/entity"
)

// WashModel represents the lavagens table in the database.
//
// CustomerID is nullable: walk-in washes carry their identification inline in
// the WalkInName and WalkInPhone columns instead.
type WashModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    *uuid.UUID      `gorm:"column:cliente_id;type:uuid;index"`
	WalkInName    string          `gorm:"column:nome_cliente;type:varchar(255)"`
	WalkInPhone   string          `gorm:"column:telefone;type:varchar(30)"`
	WashType      string          `gorm:"column:tipo_lavagem;type:varchar(100);not null"`
	Plate         string          `gorm:"column:placa;type:varchar(10);index"`
	Date          time.Time       `gorm:"column:data;not null;index"`
	Amount        decimal.Decimal `gorm:"column:valor;type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"column:forma_pagamento;type:varchar(10);not null;index"`
	Notes         string          `gorm:"column:observacao;type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Customer *CustomerModel `gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for the WashModel.
func (WashModel) TableName() string {
	return "lavagens"
}

// ToEntity converts a WashModel to a domain Wash entity.
func (m *WashModel) ToEntity() *entity.Wash {
	wash := &entity.Wash{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		WashType:      m.WashType,
		Plate:         m.Plate,
		Date:          m.Date,
		Amount:        m.Amount,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.CustomerID == nil && (m.WalkInName != "" || m.WalkInPhone != "") {
		wash.WalkIn = &entity.WalkIn{
			Name:  m.WalkInName,
			Phone: m.WalkInPhone,
		}
	}
	return wash
}

// ToEntityWithCustomer converts a WashModel with its preloaded customer.
func (m *WashModel) ToEntityWithCustomer() *entity.WashWithCustomer {
	result := &entity.WashWithCustomer{
		Wash: m.ToEntity(),
	}
	if m.Customer != nil {
		result.Customer = m.Customer.ToEntity()
	}
	return result
}

// WashFromEntity creates a WashModel from a domain Wash entity.
func WashFromEntity(wash *entity.Wash) *WashModel {
	washModel := &WashModel{
		ID:            wash.ID,
		CustomerID:    wash.CustomerID,
		WashType:      wash.WashType,
		Plate:         wash.Plate,
		Date:          wash.Date,
		Amount:        wash.Amount,
		PaymentMethod: string(wash.PaymentMethod),
		Notes:         wash.Notes,
		CreatedAt:     wash.CreatedAt,
		UpdatedAt:     wash.UpdatedAt,
	}
	if wash.WalkIn != nil {
		washModel.WalkInName = wash.WalkIn.Name
		washModel.WalkInPhone = wash.WalkIn.Phone
	}
	return washModel
}
