// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
	"github.com/lavacar/backend/internal/integration/persistence/model"
)

// washRepository implements the adapter.WashRepository interface.
type washRepository struct {
	db *gorm.DB
}

// NewWashRepository creates a new wash repository instance.
func NewWashRepository(db *gorm.DB) adapter.WashRepository {
	return &washRepository{
		db: db,
	}
}

// Create creates a new wash in the database.
func (r *washRepository) Create(ctx context.Context, wash *entity.Wash) error {
	washModel := model.WashFromEntity(wash)
	result := r.db.WithContext(ctx).Create(washModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a wash by its ID.
func (r *washRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wash, error) {
	var washModel model.WashModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&washModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWashNotFound
		}
		return nil, result.Error
	}
	return washModel.ToEntity(), nil
}

// FindByIDWithCustomer retrieves a wash with its linked customer by ID.
func (r *washRepository) FindByIDWithCustomer(ctx context.Context, id uuid.UUID) (*entity.WashWithCustomer, error) {
	var washModel model.WashModel
	result := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&washModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWashNotFound
		}
		return nil, result.Error
	}
	return washModel.ToEntityWithCustomer(), nil
}

// FindByFilter retrieves washes matching the filter, newest first.
func (r *washRepository) FindByFilter(ctx context.Context, filter adapter.WashFilter) ([]*entity.WashWithCustomer, error) {
	query := r.db.WithContext(ctx).Model(&model.WashModel{})

	if filter.Window != nil {
		query = query.Where("lavagens.data >= ? AND lavagens.data <= ?", filter.Window.Start, filter.Window.End)
	}
	if filter.Plate != "" {
		pattern := "%" + entity.NormalizePlate(filter.Plate) + "%"
		query = query.
			Joins("LEFT JOIN clientes ON clientes.id = lavagens.cliente_id").
			Where("UPPER(lavagens.placa) LIKE ? OR clientes.placa LIKE ?", pattern, pattern)
	}

	var washModels []model.WashModel
	result := query.
		Preload("Customer").
		Order("lavagens.data DESC, lavagens.created_at DESC").
		Find(&washModels)
	if result.Error != nil {
		return nil, result.Error
	}

	washes := make([]*entity.WashWithCustomer, len(washModels))
	for i, wm := range washModels {
		washes[i] = wm.ToEntityWithCustomer()
	}
	return washes, nil
}

// FindByCustomer retrieves the most recent washes for a customer.
func (r *washRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.Wash, error) {
	query := r.db.WithContext(ctx).
		Where("cliente_id = ?", customerID).
		Order("data DESC, created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var washModels []model.WashModel
	result := query.Find(&washModels)
	if result.Error != nil {
		return nil, result.Error
	}

	washes := make([]*entity.Wash, len(washModels))
	for i, wm := range washModels {
		washes[i] = wm.ToEntity()
	}
	return washes, nil
}

// Update updates an existing wash in the database.
func (r *washRepository) Update(ctx context.Context, wash *entity.Wash) error {
	washModel := model.WashFromEntity(wash)
	result := r.db.WithContext(ctx).
		Model(&model.WashModel{}).
		Where("id = ?", wash.ID).
		Updates(map[string]interface{}{
			"cliente_id":      washModel.CustomerID,
			"nome_cliente":    washModel.WalkInName,
			"telefone":        washModel.WalkInPhone,
			"tipo_lavagem":    washModel.WashType,
			"placa":           washModel.Plate,
			"data":            washModel.Date,
			"valor":           washModel.Amount,
			"forma_pagamento": washModel.PaymentMethod,
			"observacao":      washModel.Notes,
			"updated_at":      washModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWashNotFound
	}
	return nil
}

// Delete removes a wash from the database.
func (r *washRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.WashModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWashNotFound
	}
	return nil
}
