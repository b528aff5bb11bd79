package report

import (
	"sort"

	"fleet-app-go/internal/domain/fleet"
)

// Summary is the aggregated dashboard state. Aggregate is pure: same inputs,
// same output, no hidden state.
type Summary struct {
	TotalKm           float64       `json:"totalKm"`
	TotalFuelCost     float64       `json:"totalFuelCost"`
	TotalExpenses     float64       `json:"totalExpenses"`
	OverallAvgKmL     float64       `json:"overallAvgKmL"`
	Monthly           []MonthlyRow  `json:"monthlyData"`
	ExpenseByCategory []CategoryRow `json:"expenseByCategory"`
}

// MonthlyRow buckets km, fuel cost and expense cost under one YYYY-MM key.
type MonthlyRow struct {
	Month   string  `json:"month"`
	Km      float64 `json:"km"`
	Fuel    float64 `json:"fuel"`
	Expense float64 `json:"expense"`
}

type CategoryRow struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func Aggregate(logs []fleet.TruckLog, expenses []fleet.Expense) Summary {
	var (
		totalKm       float64
		totalFuelCost float64
		totalLiters   float64
		totalExpenses float64
	)

	monthly := make(map[string]*MonthlyRow)
	touch := func(month string) *MonthlyRow {
		row, ok := monthly[month]
		if !ok {
			row = &MonthlyRow{Month: month}
			monthly[month] = row
		}
		return row
	}

	for _, log := range logs {
		km := log.KmDriven()
		fuel := log.TotalFuelCost

		totalKm += km
		totalFuelCost += fuel
		totalLiters += log.LitersConsumed()

		row := touch(log.Month)
		row.Km += km
		row.Fuel += fuel
	}

	categoryTotals := make(map[string]float64)
	categoryOrder := make([]string, 0)
	for _, expense := range expenses {
		totalExpenses += expense.Cost
		touch(expense.Month).Expense += expense.Cost

		if _, ok := categoryTotals[expense.Supplier]; !ok {
			categoryOrder = append(categoryOrder, expense.Supplier)
		}
		categoryTotals[expense.Supplier] += expense.Cost
	}

	months := make([]MonthlyRow, 0, len(monthly))
	for _, row := range monthly {
		months = append(months, *row)
	}
	// Lexical order on YYYY-MM keys is chronological order.
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	categories := make([]CategoryRow, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		categories = append(categories, CategoryRow{Name: name, Value: categoryTotals[name]})
	}
	// Descending by total; ties keep first-seen order.
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Value > categories[j].Value })

	overallAvgKmL := 0.0
	if totalLiters > 0 {
		overallAvgKmL = totalKm / totalLiters
	}

	return Summary{
		TotalKm:           totalKm,
		TotalFuelCost:     totalFuelCost,
		TotalExpenses:     totalExpenses,
		OverallAvgKmL:     overallAvgKmL,
		Monthly:           months,
		ExpenseByCategory: categories,
	}
}
