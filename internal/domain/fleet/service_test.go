package fleet

import (
	"context"
	"strings"
	"testing"
)

type fakeFleetRepo struct {
	truckLogs []TruckLog
	expenses  []Expense
}

func (f *fakeFleetRepo) ListTruckLogs(ctx context.Context) ([]TruckLog, error) {
	return f.truckLogs, nil
}

func (f *fakeFleetRepo) GetTruckLogByID(ctx context.Context, id string) (*TruckLog, error) {
	for i := range f.truckLogs {
		if f.truckLogs[i].ID == id {
			log := f.truckLogs[i]
			return &log, nil
		}
	}
	return nil, ErrTruckLogNotFound
}

func (f *fakeFleetRepo) CreateTruckLog(ctx context.Context, log *TruckLog) error {
	f.truckLogs = append(f.truckLogs, *log)
	return nil
}

func (f *fakeFleetRepo) UpdateTruckLog(ctx context.Context, log *TruckLog) error {
	for i := range f.truckLogs {
		if f.truckLogs[i].ID == log.ID {
			f.truckLogs[i] = *log
			return nil
		}
	}
	return ErrTruckLogNotFound
}

func (f *fakeFleetRepo) DeleteTruckLog(ctx context.Context, id string) (bool, error) {
	for i := range f.truckLogs {
		if f.truckLogs[i].ID == id {
			f.truckLogs = append(f.truckLogs[:i], f.truckLogs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFleetRepo) ListExpenses(ctx context.Context) ([]Expense, error) {
	return f.expenses, nil
}

func (f *fakeFleetRepo) GetExpenseByID(ctx context.Context, id string) (*Expense, error) {
	for i := range f.expenses {
		if f.expenses[i].ID == id {
			expense := f.expenses[i]
			return &expense, nil
		}
	}
	return nil, ErrExpenseNotFound
}

func (f *fakeFleetRepo) CreateExpense(ctx context.Context, expense *Expense) error {
	f.expenses = append(f.expenses, *expense)
	return nil
}

func (f *fakeFleetRepo) UpdateExpense(ctx context.Context, expense *Expense) error {
	for i := range f.expenses {
		if f.expenses[i].ID == expense.ID {
			f.expenses[i] = *expense
			return nil
		}
	}
	return ErrExpenseNotFound
}

func (f *fakeFleetRepo) DeleteExpense(ctx context.Context, id string) (bool, error) {
	for i := range f.expenses {
		if f.expenses[i].ID == id {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func validTruckLogInput() CreateTruckLogInput {
	return CreateTruckLogInput{
		TruckModel:        "Volvo FH 540",
		LicensePlate:      "ABC-1D23",
		Month:             "2024-06",
		InitialKm:         120000,
		FinalKm:           120500,
		FuelPricePerLiter: 5.89,
		TotalFuelCost:     1060.2,
		IdealKmLRoute:     2.8,
		Route:             "Chapecó - Itajaí",
		GasStation:        "Posto Trevo",
	}
}

func TestCreateTruckLogAssignsID(t *testing.T) {
	repo := &fakeFleetRepo{}
	svc := NewService(repo)

	log, err := svc.CreateTruckLog(context.Background(), validTruckLogInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if log.ID == "" {
		t.Fatal("expected assigned id")
	}
	if len(repo.truckLogs) != 1 {
		t.Fatalf("expected 1 stored log, got %d", len(repo.truckLogs))
	}
	if repo.truckLogs[0].ID != log.ID {
		t.Fatal("stored log id differs from returned log id")
	}
}

func TestCreateTruckLogValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateTruckLogInput)
		wantErr string
	}{
		{
			name:    "bad month key",
			mutate:  func(in *CreateTruckLogInput) { in.Month = "06/2024" },
			wantErr: "month",
		},
		{
			name:    "month without zero padding",
			mutate:  func(in *CreateTruckLogInput) { in.Month = "2024-6" },
			wantErr: "month",
		},
		{
			name:    "blank truck model",
			mutate:  func(in *CreateTruckLogInput) { in.TruckModel = "  " },
			wantErr: "truckModel",
		},
		{
			name:    "blank route",
			mutate:  func(in *CreateTruckLogInput) { in.Route = "" },
			wantErr: "route",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validTruckLogInput()
			tt.mutate(&input)

			svc := NewService(&fakeFleetRepo{})
			if _, err := svc.CreateTruckLog(context.Background(), input); err == nil {
				t.Fatal("expected validation error")
			} else if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUpdateTruckLogPartial(t *testing.T) {
	repo := &fakeFleetRepo{}
	svc := NewService(repo)

	created, err := svc.CreateTruckLog(context.Background(), validTruckLogInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newFinalKm := 121000.0
	updated, err := svc.UpdateTruckLog(context.Background(), UpdateTruckLogInput{
		ID:      created.ID,
		FinalKm: &newFinalKm,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.FinalKm != newFinalKm {
		t.Fatalf("expected finalKm %v, got %v", newFinalKm, updated.FinalKm)
	}
	if updated.TruckModel != created.TruckModel {
		t.Fatal("untouched field changed on partial update")
	}
	if updated.KmDriven() != newFinalKm-created.InitialKm {
		t.Fatalf("unexpected derived kmDriven %v", updated.KmDriven())
	}
}

func TestUpdateTruckLogUnknownID(t *testing.T) {
	svc := NewService(&fakeFleetRepo{})

	month := "2024-07"
	_, err := svc.UpdateTruckLog(context.Background(), UpdateTruckLogInput{ID: "missing", Month: &month})
	if err != ErrTruckLogNotFound {
		t.Fatalf("expected ErrTruckLogNotFound, got %v", err)
	}
}

func TestDeleteTruckLogUnknownID(t *testing.T) {
	svc := NewService(&fakeFleetRepo{})

	if err := svc.DeleteTruckLog(context.Background(), "missing"); err != ErrTruckLogNotFound {
		t.Fatalf("expected ErrTruckLogNotFound, got %v", err)
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := NewService(&fakeFleetRepo{})

	_, err := svc.CreateExpense(context.Background(), CreateExpenseInput{
		Month:       "2024-06",
		Supplier:    "",
		Description: "Troca de pneus",
		Cost:        1200,
	})
	if err == nil || !strings.Contains(err.Error(), "supplier") {
		t.Fatalf("expected supplier validation error, got %v", err)
	}
}

func TestExpenseLifecycle(t *testing.T) {
	repo := &fakeFleetRepo{}
	svc := NewService(repo)

	created, err := svc.CreateExpense(context.Background(), CreateExpenseInput{
		Month:       "2024-06",
		Supplier:    "Borracharia Zé",
		Description: "Troca de pneus",
		Cost:        1200,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newCost := 1350.0
	updated, err := svc.UpdateExpense(context.Background(), UpdateExpenseInput{ID: created.ID, Cost: &newCost})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Cost != newCost {
		t.Fatalf("expected cost %v, got %v", newCost, updated.Cost)
	}
	if updated.Supplier != created.Supplier {
		t.Fatal("untouched field changed on partial update")
	}

	if err := svc.DeleteExpense(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteExpense(context.Background(), created.ID); err != ErrExpenseNotFound {
		t.Fatalf("expected ErrExpenseNotFound on second delete, got %v", err)
	}
}

func TestLitersConsumedDerivation(t *testing.T) {
	log := TruckLog{TotalFuelCost: 1060.2, FuelPricePerLiter: 5.89}
	liters := log.LitersConsumed()
	if liters < 179.9 || liters > 180.1 {
		t.Fatalf("expected ~180 liters, got %v", liters)
	}

	free := TruckLog{TotalFuelCost: 500, FuelPricePerLiter: 0}
	if free.LitersConsumed() != 0 {
		t.Fatalf("expected 0 liters with zero price, got %v", free.LitersConsumed())
	}
}
