// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
	"github.com/lavacar/backend/internal/domain/period"
	"github.com/lavacar/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// A single connection keeps every query on the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.CustomerModel{},
		&model.WashModel{},
		&model.ExpenseModel{},
		&model.ClosingModel{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestCustomerRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := entity.NewCustomer("Maria Silva", "ABC1234", "11999990000")
	require.NoError(t, repo.Create(ctx, customer))

	found, err := repo.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.Name, found.Name)
	assert.Equal(t, "ABC1234", found.Plate)

	byPlate, err := repo.FindByPlate(ctx, "ABC1234")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, byPlate.ID)

	_, err = repo.FindByPlate(ctx, "ZZZ9999")
	assert.ErrorIs(t, err, domainerror.ErrCustomerNotFound)
}

func TestCustomerRepository_Create_DuplicatePlate(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, entity.NewCustomer("Maria Silva", "ABC1234", "")))

	err := repo.Create(ctx, entity.NewCustomer("João Souza", "ABC1234", ""))
	assert.ErrorIs(t, err, domainerror.ErrPlateAlreadyExists)
}

func TestCustomerRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	older := entity.NewCustomer("Maria Silva", "ABC1234", "")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := entity.NewCustomer("João Souza", "XYZ5678", "")

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	// Empty term returns everyone, most recently registered first.
	all, err := repo.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)

	// Case-insensitive name match.
	byName, err := repo.Search(ctx, "maria")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, older.ID, byName[0].ID)

	// Partial plate match.
	byPlate, err := repo.Search(ctx, "xyz5")
	require.NoError(t, err)
	require.Len(t, byPlate, 1)
	assert.Equal(t, newer.ID, byPlate[0].ID)

	none, err := repo.Search(ctx, "nada")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCustomerRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := entity.NewCustomer("Maria Silva", "ABC1234", "")
	require.NoError(t, repo.Create(ctx, customer))

	customer.Name = "Maria Souza"
	customer.Phone = "11888880000"
	require.NoError(t, repo.Update(ctx, customer))

	found, err := repo.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", found.Name)
	assert.Equal(t, "11888880000", found.Phone)

	missing := entity.NewCustomer("Ninguém", "ZZZ9999", "")
	assert.ErrorIs(t, repo.Update(ctx, missing), domainerror.ErrCustomerNotFound)
}

func TestCustomerRepository_Delete_KeepsWashHistory(t *testing.T) {
	db := newTestDB(t)
	customerRepo := NewCustomerRepository(db)
	washRepo := NewWashRepository(db)
	ctx := context.Background()

	customer := entity.NewCustomer("Maria Silva", "ABC1234", "")
	require.NoError(t, customerRepo.Create(ctx, customer))

	wash := entity.NewWash(&customer.ID, nil, "completa", "", time.Now(),
		decimal.NewFromInt(50), entity.PaymentMethodCash, "")
	require.NoError(t, washRepo.Create(ctx, wash))

	require.NoError(t, customerRepo.Delete(ctx, customer.ID))

	_, err := customerRepo.FindByID(ctx, customer.ID)
	assert.ErrorIs(t, err, domainerror.ErrCustomerNotFound)

	// Wash history survives with the customer reference nulled.
	kept, err := washRepo.FindByID(ctx, wash.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.CustomerID)

	assert.ErrorIs(t, customerRepo.Delete(ctx, customer.ID), domainerror.ErrCustomerNotFound)
}

func TestWashRepository_FindByFilter_WindowBoundaries(t *testing.T) {
	db := newTestDB(t)
	repo := NewWashRepository(db)
	ctx := context.Background()
	loc := time.Local

	midnight := entity.NewWash(nil, nil, "completa", "", time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		decimal.NewFromInt(50), entity.PaymentMethodCash, "")
	lastInstant := entity.NewWash(nil, nil, "completa", "", time.Date(2025, 3, 10, 23, 59, 59, 999000000, loc),
		decimal.NewFromInt(30), entity.PaymentMethodPix, "")
	nextDay := entity.NewWash(nil, nil, "completa", "", time.Date(2025, 3, 11, 0, 0, 0, 0, loc),
		decimal.NewFromInt(40), entity.PaymentMethodCard, "")

	for _, w := range []*entity.Wash{midnight, lastInstant, nextDay} {
		require.NoError(t, repo.Create(ctx, w))
	}

	window := period.Day(time.Date(2025, 3, 10, 12, 0, 0, 0, loc))
	washes, err := repo.FindByFilter(ctx, adapter.WashFilter{Window: &window})
	require.NoError(t, err)
	require.Len(t, washes, 2)

	ids := []string{washes[0].Wash.ID.String(), washes[1].Wash.ID.String()}
	assert.Contains(t, ids, midnight.ID.String())
	assert.Contains(t, ids, lastInstant.ID.String())
}

func TestWashRepository_FindByFilter_Plate(t *testing.T) {
	db := newTestDB(t)
	customerRepo := NewCustomerRepository(db)
	washRepo := NewWashRepository(db)
	ctx := context.Background()

	customer := entity.NewCustomer("Maria Silva", "ABC1234", "")
	require.NoError(t, customerRepo.Create(ctx, customer))

	// Linked wash carries no plate of its own; the filter must reach the
	// customer's plate through the join.
	linked := entity.NewWash(&customer.ID, nil, "completa", "", time.Now(),
		decimal.NewFromInt(50), entity.PaymentMethodCash, "")
	loose := entity.NewWash(nil, nil, "simples", "XYZ5678", time.Now(),
		decimal.NewFromInt(30), entity.PaymentMethodPix, "")

	require.NoError(t, washRepo.Create(ctx, linked))
	require.NoError(t, washRepo.Create(ctx, loose))

	byCustomerPlate, err := washRepo.FindByFilter(ctx, adapter.WashFilter{Plate: "abc-12"})
	require.NoError(t, err)
	require.Len(t, byCustomerPlate, 1)
	assert.Equal(t, linked.ID, byCustomerPlate[0].Wash.ID)
	require.NotNil(t, byCustomerPlate[0].Customer)
	assert.Equal(t, customer.ID, byCustomerPlate[0].Customer.ID)

	byWashPlate, err := washRepo.FindByFilter(ctx, adapter.WashFilter{Plate: "xyz"})
	require.NoError(t, err)
	require.Len(t, byWashPlate, 1)
	assert.Equal(t, loose.ID, byWashPlate[0].Wash.ID)
}

func TestWashRepository_FindByCustomer(t *testing.T) {
	db := newTestDB(t)
	customerRepo := NewCustomerRepository(db)
	washRepo := NewWashRepository(db)
	ctx := context.Background()

	customer := entity.NewCustomer("Maria Silva", "ABC1234", "")
	require.NoError(t, customerRepo.Create(ctx, customer))

	for i := 0; i < 3; i++ {
		w := entity.NewWash(&customer.ID, nil, "completa", "", time.Now().AddDate(0, 0, -i),
			decimal.NewFromInt(50), entity.PaymentMethodCash, "")
		require.NoError(t, washRepo.Create(ctx, w))
	}

	all, err := washRepo.FindByCustomer(ctx, customer.ID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := washRepo.FindByCustomer(ctx, customer.ID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestWashRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewWashRepository(db)
	ctx := context.Background()

	wash := entity.NewWash(nil, &entity.WalkIn{Name: "João"}, "simples", "XYZ5678", time.Now(),
		decimal.NewFromInt(30), entity.PaymentMethodCash, "")
	require.NoError(t, repo.Create(ctx, wash))

	wash.Amount = decimal.NewFromInt(45)
	wash.PaymentMethod = entity.PaymentMethodPix
	require.NoError(t, repo.Update(ctx, wash))

	found, err := repo.FindByID(ctx, wash.ID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, entity.PaymentMethodPix, found.PaymentMethod)
	require.NotNil(t, found.WalkIn)
	assert.Equal(t, "João", found.WalkIn.Name)
}

func TestWashRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewWashRepository(db)
	ctx := context.Background()

	wash := entity.NewWash(nil, nil, "simples", "", time.Now(),
		decimal.NewFromInt(30), entity.PaymentMethodCash, "")
	require.NoError(t, repo.Create(ctx, wash))

	require.NoError(t, repo.Delete(ctx, wash.ID))

	_, err := repo.FindByID(ctx, wash.ID)
	assert.ErrorIs(t, err, domainerror.ErrWashNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, wash.ID), domainerror.ErrWashNotFound)
}

func TestExpenseRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()
	loc := time.Local

	staff := entity.NewExpense(time.Date(2025, 3, 10, 10, 0, 0, 0, loc),
		entity.ExpenseCategoryStaff, "Diária do lavador", decimal.NewFromInt(80), "")
	supplies := entity.NewExpense(time.Date(2025, 3, 10, 11, 0, 0, 0, loc),
		entity.ExpenseCategorySupplies, "Shampoo automotivo", decimal.NewFromInt(45), "")
	older := entity.NewExpense(time.Date(2025, 2, 20, 11, 0, 0, 0, loc),
		entity.ExpenseCategoryStaff, "Diária", decimal.NewFromInt(80), "")

	for _, e := range []*entity.Expense{staff, supplies, older} {
		require.NoError(t, repo.Create(ctx, e))
	}

	category := entity.ExpenseCategoryStaff
	byCategory, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{Category: &category})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	window := period.Day(time.Date(2025, 3, 10, 0, 0, 0, 0, loc))
	byWindow, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{
		StartDate: &window.Start,
		EndDate:   &window.End,
	})
	require.NoError(t, err)
	assert.Len(t, byWindow, 2)

	both, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{
		StartDate: &window.Start,
		EndDate:   &window.End,
		Category:  &category,
	})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, staff.ID, both[0].ID)

	limited, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestClosingRepository_UniqueDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewClosingRepository(db)
	ctx := context.Background()
	loc := time.Local

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	closing := &entity.DailyClosing{
		ID:           uuid.New(),
		Date:         day,
		WashCount:    2,
		RevenueTotal: decimal.NewFromInt(100),
		RevenueCash:  decimal.NewFromInt(100),
		ExpenseTotal: decimal.NewFromInt(40),
		ExpenseStaff: decimal.NewFromInt(40),
		NetProfit:    decimal.NewFromInt(60),
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, closing))

	second := *closing
	second.ID = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, &second), domainerror.ErrClosingAlreadyExists)

	// Any instant of the calendar day resolves to the same closing.
	found, err := repo.FindByDate(ctx, time.Date(2025, 3, 10, 21, 45, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, closing.ID, found.ID)
	assert.Equal(t, "2025-03-10", period.DayKey(found.Date))
	assert.True(t, found.NetProfit.Equal(decimal.NewFromInt(60)))

	_, err = repo.FindByDate(ctx, time.Date(2025, 3, 11, 0, 0, 0, 0, loc))
	assert.ErrorIs(t, err, domainerror.ErrClosingNotFound)
}

func TestClosingRepository_FindMostRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewClosingRepository(db)
	ctx := context.Background()
	loc := time.Local

	for day := 8; day <= 10; day++ {
		closing := &entity.DailyClosing{
			ID:        uuid.New(),
			Date:      time.Date(2025, 3, day, 0, 0, 0, 0, loc),
			CreatedAt: time.Now(),
		}
		require.NoError(t, repo.Create(ctx, closing))
	}

	recent, err := repo.FindMostRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2025-03-10", period.DayKey(recent[0].Date))
	assert.Equal(t, "2025-03-09", period.DayKey(recent[1].Date))

	all, err := repo.FindMostRecent(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReportRepository_Windows(t *testing.T) {
	db := newTestDB(t)
	washRepo := NewWashRepository(db)
	expenseRepo := NewExpenseRepository(db)
	reportRepo := NewReportRepository(db)
	ctx := context.Background()
	loc := time.Local

	inside := entity.NewWash(nil, nil, "completa", "", time.Date(2025, 3, 10, 12, 0, 0, 0, loc),
		decimal.NewFromInt(50), entity.PaymentMethodCash, "")
	outside := entity.NewWash(nil, nil, "completa", "", time.Date(2025, 3, 11, 0, 0, 0, 0, loc),
		decimal.NewFromInt(30), entity.PaymentMethodPix, "")
	require.NoError(t, washRepo.Create(ctx, inside))
	require.NoError(t, washRepo.Create(ctx, outside))

	early := entity.NewExpense(time.Date(2025, 3, 1, 9, 0, 0, 0, loc),
		entity.ExpenseCategoryStaff, "Diária", decimal.NewFromInt(80), "")
	late := entity.NewExpense(time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		entity.ExpenseCategoryMeals, "Marmitas", decimal.NewFromInt(25), "")
	require.NoError(t, expenseRepo.Create(ctx, early))
	require.NoError(t, expenseRepo.Create(ctx, late))

	window := period.Day(time.Date(2025, 3, 10, 0, 0, 0, 0, loc))

	washes, err := reportRepo.FindWashesInWindow(ctx, window)
	require.NoError(t, err)
	require.Len(t, washes, 1)
	assert.Equal(t, inside.ID, washes[0].ID)

	expenses, err := reportRepo.FindExpensesInWindow(ctx, window)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, late.ID, expenses[0].ID)

	since, err := reportRepo.FindExpensesSince(ctx, time.Date(2025, 3, 5, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Len(t, since, 1)
}
