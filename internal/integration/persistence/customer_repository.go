// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
	"github.com/lavacar/backend/internal/integration/persistence/model"
)

// customerRepository implements the adapter.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance.
func NewCustomerRepository(db *gorm.DB) adapter.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create creates a new customer in the database.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)
	result := r.db.WithContext(ctx).Create(customerModel)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return domainerror.ErrPlateAlreadyExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a customer by its ID.
func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// FindByPlate retrieves a customer by its normalized plate.
func (r *customerRepository) FindByPlate(ctx context.Context, plate string) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).Where("placa = ?", plate).First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// Search retrieves customers whose name or plate contains the search term,
// most recently registered first.
func (r *customerRepository) Search(ctx context.Context, term string) ([]*entity.Customer, error) {
	query := r.db.WithContext(ctx).Model(&model.CustomerModel{})

	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(nome) LIKE ? OR LOWER(placa) LIKE ?", pattern, pattern)
	}

	var customerModels []model.CustomerModel
	result := query.Order("created_at DESC").Find(&customerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	customers := make([]*entity.Customer, len(customerModels))
	for i, cm := range customerModels {
		customers[i] = cm.ToEntity()
	}
	return customers, nil
}

// Update updates an existing customer in the database.
func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)
	result := r.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"nome":       customerModel.Name,
			"placa":      customerModel.Plate,
			"telefone":   customerModel.Phone,
			"updated_at": customerModel.UpdatedAt,
		})
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return domainerror.ErrPlateAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCustomerNotFound
	}
	return nil
}

// Delete removes a customer, keeping wash history with the reference nulled.
func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.WashModel{}).
			Where("cliente_id = ?", id).
			Update("cliente_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.CustomerModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCustomerNotFound
		}
		return nil
	})
}

// isDuplicateKeyError reports whether err was caused by a unique constraint
// violation, covering both the translated gorm error and the raw driver
// messages from PostgreSQL and SQLite.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}
