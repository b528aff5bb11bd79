package fleet

import (
	"context"
	"errors"

	fleetdomain "fleet-app-go/internal/domain/fleet"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListTruckLogs(ctx context.Context) ([]fleetdomain.TruckLog, error) {
	var logs []fleetdomain.TruckLog
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *PostgresRepository) GetTruckLogByID(ctx context.Context, id string) (*fleetdomain.TruckLog, error) {
	var log fleetdomain.TruckLog
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fleetdomain.ErrTruckLogNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *PostgresRepository) CreateTruckLog(ctx context.Context, log *fleetdomain.TruckLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *PostgresRepository) UpdateTruckLog(ctx context.Context, log *fleetdomain.TruckLog) error {
	return r.db.WithContext(ctx).
		Model(&fleetdomain.TruckLog{}).
		Where("id = ?", log.ID).
		Updates(map[string]interface{}{
			"truck_model":          log.TruckModel,
			"license_plate":        log.LicensePlate,
			"month":                log.Month,
			"initial_km":           log.InitialKm,
			"final_km":             log.FinalKm,
			"fuel_price_per_liter": log.FuelPricePerLiter,
			"total_fuel_cost":      log.TotalFuelCost,
			"ideal_km_l_route":     log.IdealKmLRoute,
			"route":                log.Route,
			"gas_station":          log.GasStation,
			"updated_at":           log.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteTruckLog(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&fleetdomain.TruckLog{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListExpenses(ctx context.Context) ([]fleetdomain.Expense, error) {
	var expenses []fleetdomain.Expense
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *PostgresRepository) GetExpenseByID(ctx context.Context, id string) (*fleetdomain.Expense, error) {
	var expense fleetdomain.Expense
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fleetdomain.ErrExpenseNotFound
		}
		return nil, err
	}
	return &expense, nil
}

func (r *PostgresRepository) CreateExpense(ctx context.Context, expense *fleetdomain.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *PostgresRepository) UpdateExpense(ctx context.Context, expense *fleetdomain.Expense) error {
	return r.db.WithContext(ctx).
		Model(&fleetdomain.Expense{}).
		Where("id = ?", expense.ID).
		Updates(map[string]interface{}{
			"month":       expense.Month,
			"supplier":    expense.Supplier,
			"description": expense.Description,
			"cost":        expense.Cost,
			"updated_at":  expense.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteExpense(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&fleetdomain.Expense{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
