package report

import (
	"strconv"
	"strings"
	"time"

	"fleet-app-go/internal/domain/fleet"
)

// FilterSpec is an exact-match AND over populated fields. Empty string means
// no constraint. TruckModel and LicensePlate never constrain expenses.
type FilterSpec struct {
	Month        string
	TruckModel   string
	LicensePlate string
	Supplier     string
	Search       string
}

// Apply derives the filtered subsets every view consumes. The input slices are
// never mutated; when nothing constrains a collection the original slice is
// returned as-is rather than copied.
func Apply(logs []fleet.TruckLog, expenses []fleet.Expense, spec FilterSpec) ([]fleet.TruckLog, []fleet.Expense) {
	return FilterTruckLogs(logs, spec), FilterExpenses(expenses, spec)
}

func FilterTruckLogs(logs []fleet.TruckLog, spec FilterSpec) []fleet.TruckLog {
	if spec.Month == "" && spec.TruckModel == "" && spec.LicensePlate == "" && spec.Search == "" {
		return logs
	}

	filtered := make([]fleet.TruckLog, 0, len(logs))
	for _, log := range logs {
		if spec.Month != "" && log.Month != spec.Month {
			continue
		}
		if spec.TruckModel != "" && log.TruckModel != spec.TruckModel {
			continue
		}
		if spec.LicensePlate != "" && log.LicensePlate != spec.LicensePlate {
			continue
		}
		if spec.Search != "" && !matchesSearch(truckLogFields(log), spec.Search) {
			continue
		}
		filtered = append(filtered, log)
	}
	return filtered
}

func FilterExpenses(expenses []fleet.Expense, spec FilterSpec) []fleet.Expense {
	if spec.Month == "" && spec.Supplier == "" && spec.Search == "" {
		return expenses
	}

	filtered := make([]fleet.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if spec.Month != "" && expense.Month != spec.Month {
			continue
		}
		if spec.Supplier != "" && expense.Supplier != spec.Supplier {
			continue
		}
		if spec.Search != "" && !matchesSearch(expenseFields(expense), spec.Search) {
			continue
		}
		filtered = append(filtered, expense)
	}
	return filtered
}

// matchesSearch checks the term as a case-insensitive substring of any field's
// string form. Numeric fields participate through their decimal text.
func matchesSearch(fields []string, term string) bool {
	needle := strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func truckLogFields(log fleet.TruckLog) []string {
	return []string{
		log.ID,
		log.TruckModel,
		log.LicensePlate,
		log.Month,
		formatNumber(log.InitialKm),
		formatNumber(log.FinalKm),
		formatNumber(log.FuelPricePerLiter),
		formatNumber(log.TotalFuelCost),
		formatNumber(log.IdealKmLRoute),
		log.Route,
		log.GasStation,
		formatTime(log.CreatedAt),
		formatTime(log.UpdatedAt),
	}
}

func expenseFields(expense fleet.Expense) []string {
	return []string{
		expense.ID,
		expense.Month,
		expense.Supplier,
		expense.Description,
		formatNumber(expense.Cost),
		formatTime(expense.CreatedAt),
		formatTime(expense.UpdatedAt),
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatTime matches the wire form of the timestamps, so a term copied from an
// API response finds the record. Zero timestamps are not searchable.
func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(time.RFC3339)
}
