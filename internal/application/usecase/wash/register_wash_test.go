// Package wash contains wash transaction use cases.
package wash

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lavacar/backend/internal/application/adapter"
	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
)

// fakeWashRepository stores washes in memory.
type fakeWashRepository struct {
	washes map[uuid.UUID]*entity.Wash
}

func newFakeWashRepository() *fakeWashRepository {
	return &fakeWashRepository{washes: make(map[uuid.UUID]*entity.Wash)}
}

func (r *fakeWashRepository) Create(_ context.Context, wash *entity.Wash) error {
	r.washes[wash.ID] = wash
	return nil
}

func (r *fakeWashRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Wash, error) {
	if wash, ok := r.washes[id]; ok {
		return wash, nil
	}
	return nil, domainerror.ErrWashNotFound
}

func (r *fakeWashRepository) FindByIDWithCustomer(ctx context.Context, id uuid.UUID) (*entity.WashWithCustomer, error) {
	wash, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.WashWithCustomer{Wash: wash}, nil
}

func (r *fakeWashRepository) FindByFilter(_ context.Context, filter adapter.WashFilter) ([]*entity.WashWithCustomer, error) {
	var out []*entity.WashWithCustomer
	for _, wash := range r.washes {
		if filter.Window != nil && !filter.Window.Contains(wash.Date) {
			continue
		}
		out = append(out, &entity.WashWithCustomer{Wash: wash})
	}
	return out, nil
}

func (r *fakeWashRepository) FindByCustomer(_ context.Context, customerID uuid.UUID, limit int) ([]*entity.Wash, error) {
	var out []*entity.Wash
	for _, wash := range r.washes {
		if wash.CustomerID != nil && *wash.CustomerID == customerID {
			out = append(out, wash)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeWashRepository) Update(_ context.Context, wash *entity.Wash) error {
	if _, ok := r.washes[wash.ID]; !ok {
		return domainerror.ErrWashNotFound
	}
	r.washes[wash.ID] = wash
	return nil
}

func (r *fakeWashRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.washes[id]; !ok {
		return domainerror.ErrWashNotFound
	}
	delete(r.washes, id)
	return nil
}

// fakeCustomerRepository serves a fixed set of customers by id.
type fakeCustomerRepository struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepository(customers ...*entity.Customer) *fakeCustomerRepository {
	repo := &fakeCustomerRepository{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		repo.customers[c.ID] = c
	}
	return repo
}

func (r *fakeCustomerRepository) Create(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	if customer, ok := r.customers[id]; ok {
		return customer, nil
	}
	return nil, domainerror.ErrCustomerNotFound
}

func (r *fakeCustomerRepository) FindByPlate(_ context.Context, plate string) (*entity.Customer, error) {
	for _, customer := range r.customers {
		if customer.Plate == plate {
			return customer, nil
		}
	}
	return nil, domainerror.ErrCustomerNotFound
}

func (r *fakeCustomerRepository) Search(_ context.Context, _ string) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		out = append(out, customer)
	}
	return out, nil
}

func (r *fakeCustomerRepository) Update(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func TestRegisterWashUseCase_Execute_WithCustomer(t *testing.T) {
	customer := entity.NewCustomer("Maria Silva", "ABC1234", "11999990000")
	washRepo := newFakeWashRepository()
	uc := NewRegisterWashUseCase(washRepo, newFakeCustomerRepository(customer))

	output, err := uc.Execute(context.Background(), RegisterWashInput{
		CustomerID:    &customer.ID,
		WashType:      "completa",
		Plate:         "ABC-1234",
		Amount:        decimal.NewFromInt(50),
		PaymentMethod: entity.PaymentMethodPix,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.Wash.Customer == nil || output.Wash.Customer.ID != customer.ID {
		t.Error("expected the linked customer to be returned")
	}
	if output.Wash.Wash.WalkIn != nil {
		t.Error("expected no walk-in data for a linked wash")
	}
	if output.Wash.Wash.Date.IsZero() {
		t.Error("expected a zero input date to default to now")
	}
	if len(washRepo.washes) != 1 {
		t.Errorf("expected 1 persisted wash, got %d", len(washRepo.washes))
	}
}

func TestRegisterWashUseCase_Execute_WalkIn(t *testing.T) {
	uc := NewRegisterWashUseCase(newFakeWashRepository(), newFakeCustomerRepository())

	date := time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)
	output, err := uc.Execute(context.Background(), RegisterWashInput{
		WalkInName:    "João",
		WalkInPhone:   "11888880000",
		WashType:      "simples",
		Plate:         "XYZ9876",
		Date:          date,
		Amount:        decimal.NewFromInt(30),
		PaymentMethod: entity.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	wash := output.Wash.Wash
	if !wash.IsWalkIn() {
		t.Error("expected a walk-in wash")
	}
	if wash.WalkIn == nil || wash.WalkIn.Name != "João" {
		t.Errorf("WalkIn = %+v, want name João", wash.WalkIn)
	}
	if !wash.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", wash.Date, date)
	}
	if output.Wash.Customer != nil {
		t.Error("expected no customer for a walk-in wash")
	}
}

func TestRegisterWashUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name         string
		input        RegisterWashInput
		expectedCode domainerror.WashErrorCode
	}{
		{
			name: "wash type too short",
			input: RegisterWashInput{
				WashType:      "ab",
				Amount:        decimal.NewFromInt(50),
				PaymentMethod: entity.PaymentMethodCash,
			},
			expectedCode: domainerror.ErrCodeWashTypeTooShort,
		},
		{
			name: "zero amount",
			input: RegisterWashInput{
				WashType:      "completa",
				Amount:        decimal.Zero,
				PaymentMethod: entity.PaymentMethodCash,
			},
			expectedCode: domainerror.ErrCodeInvalidWashAmount,
		},
		{
			name: "negative amount",
			input: RegisterWashInput{
				WashType:      "completa",
				Amount:        decimal.NewFromInt(-10),
				PaymentMethod: entity.PaymentMethodCash,
			},
			expectedCode: domainerror.ErrCodeInvalidWashAmount,
		},
		{
			name: "unknown payment method",
			input: RegisterWashInput{
				WashType:      "completa",
				Amount:        decimal.NewFromInt(50),
				PaymentMethod: "cheque",
			},
			expectedCode: domainerror.ErrCodeInvalidPaymentMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterWashUseCase(newFakeWashRepository(), newFakeCustomerRepository())

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var washErr *domainerror.WashError
			if !errors.As(err, &washErr) {
				t.Fatalf("expected WashError, got %T", err)
			}
			if washErr.Code != tt.expectedCode {
				t.Errorf("code = %s, want %s", washErr.Code, tt.expectedCode)
			}
		})
	}
}

func TestRegisterWashUseCase_Execute_CustomerAndWalkInConflict(t *testing.T) {
	customer := entity.NewCustomer("Maria Silva", "ABC1234", "")
	uc := NewRegisterWashUseCase(newFakeWashRepository(), newFakeCustomerRepository(customer))

	_, err := uc.Execute(context.Background(), RegisterWashInput{
		CustomerID:    &customer.ID,
		WalkInName:    "João",
		WashType:      "completa",
		Amount:        decimal.NewFromInt(50),
		PaymentMethod: entity.PaymentMethodCash,
	})
	if err == nil {
		t.Fatal("expected conflict error")
	}

	var washErr *domainerror.WashError
	if !errors.As(err, &washErr) {
		t.Fatalf("expected WashError, got %T", err)
	}
	if washErr.Code != domainerror.ErrCodeWashCustomerConflict {
		t.Errorf("code = %s, want %s", washErr.Code, domainerror.ErrCodeWashCustomerConflict)
	}
}

func TestRegisterWashUseCase_Execute_CustomerNotFound(t *testing.T) {
	uc := NewRegisterWashUseCase(newFakeWashRepository(), newFakeCustomerRepository())

	missingID := uuid.New()
	_, err := uc.Execute(context.Background(), RegisterWashInput{
		CustomerID:    &missingID,
		WashType:      "completa",
		Amount:        decimal.NewFromInt(50),
		PaymentMethod: entity.PaymentMethodCash,
	})
	if err == nil {
		t.Fatal("expected not-found error")
	}

	var washErr *domainerror.WashError
	if !errors.As(err, &washErr) {
		t.Fatalf("expected WashError, got %T", err)
	}
	if washErr.Code != domainerror.ErrCodeWashCustomerNotFound {
		t.Errorf("code = %s, want %s", washErr.Code, domainerror.ErrCodeWashCustomerNotFound)
	}
	if !errors.Is(err, domainerror.ErrWashCustomerNotFound) {
		t.Error("expected error to wrap ErrWashCustomerNotFound")
	}
}
