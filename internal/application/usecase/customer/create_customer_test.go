// Package customer contains customer-related use cases.
package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lavacar/backend/internal/domain/entity"
	domainerror "github.com/lavacar/backend/internal/domain/error"
)

// fakeCustomerRepository stores customers in memory, indexed by id and by
// normalized plate.
type fakeCustomerRepository struct {
	byID    map[uuid.UUID]*entity.Customer
	byPlate map[string]*entity.Customer
}

func newFakeCustomerRepository() *fakeCustomerRepository {
	return &fakeCustomerRepository{
		byID:    make(map[uuid.UUID]*entity.Customer),
		byPlate: make(map[string]*entity.Customer),
	}
}

func (r *fakeCustomerRepository) Create(_ context.Context, customer *entity.Customer) error {
	if _, exists := r.byPlate[customer.Plate]; exists {
		return domainerror.ErrPlateAlreadyExists
	}
	r.byID[customer.ID] = customer
	r.byPlate[customer.Plate] = customer
	return nil
}

func (r *fakeCustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	if customer, ok := r.byID[id]; ok {
		return customer, nil
	}
	return nil, domainerror.ErrCustomerNotFound
}

func (r *fakeCustomerRepository) FindByPlate(_ context.Context, plate string) (*entity.Customer, error) {
	if customer, ok := r.byPlate[plate]; ok {
		return customer, nil
	}
	return nil, domainerror.ErrCustomerNotFound
}

func (r *fakeCustomerRepository) Search(_ context.Context, _ string) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.byID))
	for _, customer := range r.byID {
		out = append(out, customer)
	}
	return out, nil
}

func (r *fakeCustomerRepository) Update(_ context.Context, customer *entity.Customer) error {
	if _, ok := r.byID[customer.ID]; !ok {
		return domainerror.ErrCustomerNotFound
	}
	r.byID[customer.ID] = customer
	r.byPlate[customer.Plate] = customer
	return nil
}

func (r *fakeCustomerRepository) Delete(_ context.Context, id uuid.UUID) error {
	customer, ok := r.byID[id]
	if !ok {
		return domainerror.ErrCustomerNotFound
	}
	delete(r.byPlate, customer.Plate)
	delete(r.byID, id)
	return nil
}

func TestCreateCustomerUseCase_Execute(t *testing.T) {
	repo := newFakeCustomerRepository()
	uc := NewCreateCustomerUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateCustomerInput{
		Name:  "Maria Silva",
		Plate: "abc-1234",
		Phone: "11999990000",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.Customer.Name != "Maria Silva" {
		t.Errorf("Name = %q, want %q", output.Customer.Name, "Maria Silva")
	}

	// Plate is stored normalized regardless of the input format.
	if output.Customer.Plate != "ABC1234" {
		t.Errorf("Plate = %q, want %q", output.Customer.Plate, "ABC1234")
	}

	if _, ok := repo.byPlate["ABC1234"]; !ok {
		t.Error("expected the customer to be persisted under the normalized plate")
	}
}

func TestCreateCustomerUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name         string
		input        CreateCustomerInput
		expectedCode domainerror.CustomerErrorCode
	}{
		{
			name:         "name too short",
			input:        CreateCustomerInput{Name: "Jo", Plate: "ABC1234"},
			expectedCode: domainerror.ErrCodeCustomerNameTooShort,
		},
		{
			name:         "name only whitespace",
			input:        CreateCustomerInput{Name: "   ", Plate: "ABC1234"},
			expectedCode: domainerror.ErrCodeCustomerNameTooShort,
		},
		{
			name:         "invalid plate",
			input:        CreateCustomerInput{Name: "Maria Silva", Plate: "XYZ"},
			expectedCode: domainerror.ErrCodeInvalidPlate,
		},
		{
			name:         "empty plate",
			input:        CreateCustomerInput{Name: "Maria Silva"},
			expectedCode: domainerror.ErrCodeInvalidPlate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateCustomerUseCase(newFakeCustomerRepository())

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var customerErr *domainerror.CustomerError
			if !errors.As(err, &customerErr) {
				t.Fatalf("expected CustomerError, got %T", err)
			}
			if customerErr.Code != tt.expectedCode {
				t.Errorf("code = %s, want %s", customerErr.Code, tt.expectedCode)
			}
		})
	}
}

func TestCreateCustomerUseCase_Execute_DuplicatePlate(t *testing.T) {
	repo := newFakeCustomerRepository()
	uc := NewCreateCustomerUseCase(repo)

	if _, err := uc.Execute(context.Background(), CreateCustomerInput{
		Name:  "Maria Silva",
		Plate: "ABC1234",
	}); err != nil {
		t.Fatalf("first create returned error: %v", err)
	}

	// Same plate in a different format still collides.
	_, err := uc.Execute(context.Background(), CreateCustomerInput{
		Name:  "João Souza",
		Plate: "abc-1234",
	})
	if err == nil {
		t.Fatal("expected error for duplicate plate")
	}

	var customerErr *domainerror.CustomerError
	if !errors.As(err, &customerErr) {
		t.Fatalf("expected CustomerError, got %T", err)
	}
	if customerErr.Code != domainerror.ErrCodePlateAlreadyExists {
		t.Errorf("code = %s, want %s", customerErr.Code, domainerror.ErrCodePlateAlreadyExists)
	}
	if !errors.Is(err, domainerror.ErrPlateAlreadyExists) {
		t.Error("expected error to wrap ErrPlateAlreadyExists")
	}
}

// racingCustomerRepository reports the plate as free on lookup but fails the
// insert, as when a concurrent create wins the unique index race.
type racingCustomerRepository struct {
	*fakeCustomerRepository
}

func (r *racingCustomerRepository) FindByPlate(_ context.Context, _ string) (*entity.Customer, error) {
	return nil, domainerror.ErrCustomerNotFound
}

func TestCreateCustomerUseCase_Execute_ConcurrentCreateLosesRace(t *testing.T) {
	inner := newFakeCustomerRepository()
	existing := entity.NewCustomer("Maria Silva", "ABC1234", "")
	inner.byID[existing.ID] = existing
	inner.byPlate[existing.Plate] = existing

	uc := NewCreateCustomerUseCase(&racingCustomerRepository{inner})

	_, err := uc.Execute(context.Background(), CreateCustomerInput{
		Name:  "João Souza",
		Plate: "ABC1234",
	})
	if err == nil {
		t.Fatal("expected error when the insert hits the unique index")
	}

	var customerErr *domainerror.CustomerError
	if !errors.As(err, &customerErr) {
		t.Fatalf("expected CustomerError, got %T", err)
	}
	if customerErr.Code != domainerror.ErrCodePlateAlreadyExists {
		t.Errorf("code = %s, want %s", customerErr.Code, domainerror.ErrCodePlateAlreadyExists)
	}
	if !errors.Is(err, domainerror.ErrPlateAlreadyExists) {
		t.Error("expected error to wrap ErrPlateAlreadyExists")
	}
}
