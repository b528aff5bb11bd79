package fleet

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListTruckLogs(ctx context.Context) ([]TruckLog, error) {
	logs, err := s.repo.ListTruckLogs(ctx)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []TruckLog{}
	}
	return logs, nil
}

func (s *Service) CreateTruckLog(ctx context.Context, input CreateTruckLogInput) (*TruckLog, error) {
	if err := validateMonth(input.Month); err != nil {
		return nil, err
	}
	if err := requireField("truckModel", input.TruckModel); err != nil {
		return nil, err
	}
	if err := requireField("licensePlate", input.LicensePlate); err != nil {
		return nil, err
	}
	if err := requireField("route", input.Route); err != nil {
		return nil, err
	}
	if err := requireField("gasStation", input.GasStation); err != nil {
		return nil, err
	}

	log := TruckLog{
		ID:                uuid.NewString(),
		TruckModel:        strings.TrimSpace(input.TruckModel),
		LicensePlate:      strings.TrimSpace(input.LicensePlate),
		Month:             input.Month,
		InitialKm:         input.InitialKm,
		FinalKm:           input.FinalKm,
		FuelPricePerLiter: input.FuelPricePerLiter,
		TotalFuelCost:     input.TotalFuelCost,
		IdealKmLRoute:     input.IdealKmLRoute,
		Route:             strings.TrimSpace(input.Route),
		GasStation:        strings.TrimSpace(input.GasStation),
	}

	if err := s.repo.CreateTruckLog(ctx, &log); err != nil {
		return nil, err
	}

	return &log, nil
}

func (s *Service) UpdateTruckLog(ctx context.Context, input UpdateTruckLogInput) (*TruckLog, error) {
	log, err := s.repo.GetTruckLogByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Month != nil {
		if err := validateMonth(*input.Month); err != nil {
			return nil, err
		}
		log.Month = *input.Month
	}
	if input.TruckModel != nil {
		log.TruckModel = strings.TrimSpace(*input.TruckModel)
	}
	if input.LicensePlate != nil {
		log.LicensePlate = strings.TrimSpace(*input.LicensePlate)
	}
	if input.InitialKm != nil {
		log.InitialKm = *input.InitialKm
	}
	if input.FinalKm != nil {
		log.FinalKm = *input.FinalKm
	}
	if input.FuelPricePerLiter != nil {
		log.FuelPricePerLiter = *input.FuelPricePerLiter
	}
	if input.TotalFuelCost != nil {
		log.TotalFuelCost = *input.TotalFuelCost
	}
	if input.IdealKmLRoute != nil {
		log.IdealKmLRoute = *input.IdealKmLRoute
	}
	if input.Route != nil {
		log.Route = strings.TrimSpace(*input.Route)
	}
	if input.GasStation != nil {
		log.GasStation = strings.TrimSpace(*input.GasStation)
	}
	log.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateTruckLog(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *Service) DeleteTruckLog(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteTruckLog(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTruckLogNotFound
	}
	return nil
}

func (s *Service) ListExpenses(ctx context.Context) ([]Expense, error) {
	expenses, err := s.repo.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []Expense{}
	}
	return expenses, nil
}

func (s *Service) CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	if err := validateMonth(input.Month); err != nil {
		return nil, err
	}
	if err := requireField("supplier", input.Supplier); err != nil {
		return nil, err
	}
	if err := requireField("description", input.Description); err != nil {
		return nil, err
	}

	expense := Expense{
		ID:          uuid.NewString(),
		Month:       input.Month,
		Supplier:    strings.TrimSpace(input.Supplier),
		Description: strings.TrimSpace(input.Description),
		Cost:        input.Cost,
	}

	if err := s.repo.CreateExpense(ctx, &expense); err != nil {
		return nil, err
	}

	return &expense, nil
}

func (s *Service) UpdateExpense(ctx context.Context, input UpdateExpenseInput) (*Expense, error) {
	expense, err := s.repo.GetExpenseByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Month != nil {
		if err := validateMonth(*input.Month); err != nil {
			return nil, err
		}
		expense.Month = *input.Month
	}
	if input.Supplier != nil {
		expense.Supplier = strings.TrimSpace(*input.Supplier)
	}
	if input.Description != nil {
		expense.Description = strings.TrimSpace(*input.Description)
	}
	if input.Cost != nil {
		expense.Cost = *input.Cost
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteExpense(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

var monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func validateMonth(month string) error {
	if !monthRegex.MatchString(month) {
		return fmt.Errorf("month must be a YYYY-MM key")
	}
	return nil
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}
