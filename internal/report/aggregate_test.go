package report

import (
	"math"
	"reflect"
	"testing"

	"fleet-app-go/internal/domain/fleet"
)

func TestAggregateMonthlyScenario(t *testing.T) {
	logs := []fleet.TruckLog{
		{ID: "log-1", Month: "2024-06", InitialKm: 1000, FinalKm: 1500, FuelPricePerLiter: 5, TotalFuelCost: 600},
		{ID: "log-2", Month: "2024-06", InitialKm: 2000, FinalKm: 2300, FuelPricePerLiter: 5, TotalFuelCost: 400},
	}
	expenses := []fleet.Expense{
		{ID: "exp-1", Month: "2024-06", Supplier: "Borracharia Zé", Description: "Troca de pneus", Cost: 1200},
	}

	summary := Aggregate(logs, expenses)

	if len(summary.Monthly) != 1 {
		t.Fatalf("expected exactly one monthly bucket, got %d", len(summary.Monthly))
	}
	row := summary.Monthly[0]
	if row.Month != "2024-06" || row.Km != 800 || row.Expense != 1200 || row.Fuel != 1000 {
		t.Fatalf("unexpected monthly row %+v", row)
	}
	if summary.TotalKm != 800 {
		t.Fatalf("expected totalKm 800, got %v", summary.TotalKm)
	}
	if summary.TotalFuelCost != 1000 {
		t.Fatalf("expected totalFuelCost 1000, got %v", summary.TotalFuelCost)
	}
	if summary.TotalExpenses != 1200 {
		t.Fatalf("expected totalExpenses 1200, got %v", summary.TotalExpenses)
	}
	// 1000 cost / 5 per liter = 200 liters for 800 km.
	if summary.OverallAvgKmL != 4 {
		t.Fatalf("expected avg 4 km/l, got %v", summary.OverallAvgKmL)
	}
}

func TestAggregateIsPure(t *testing.T) {
	logs := sampleLogs()
	expenses := sampleExpenses()

	first := Aggregate(logs, expenses)
	second := Aggregate(logs, expenses)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("aggregation must be deterministic for equal inputs")
	}
}

func TestAggregateZeroLitersFallback(t *testing.T) {
	summary := Aggregate(nil, nil)
	if summary.OverallAvgKmL != 0 {
		t.Fatalf("expected 0 for empty collections, got %v", summary.OverallAvgKmL)
	}

	// Distance without a fuel price yields zero consumed liters; the average
	// must fall back to 0, never NaN or +Inf.
	logs := []fleet.TruckLog{{Month: "2024-01", InitialKm: 0, FinalKm: 500, FuelPricePerLiter: 0, TotalFuelCost: 0}}
	summary = Aggregate(logs, nil)
	if summary.OverallAvgKmL != 0 {
		t.Fatalf("expected 0 fallback, got %v", summary.OverallAvgKmL)
	}
	if math.IsNaN(summary.OverallAvgKmL) || math.IsInf(summary.OverallAvgKmL, 0) {
		t.Fatal("average must stay finite")
	}
}

func TestAggregateNegativeKmNotClamped(t *testing.T) {
	logs := []fleet.TruckLog{{Month: "2024-02", InitialKm: 900, FinalKm: 400}}
	summary := Aggregate(logs, nil)
	if summary.TotalKm != -500 {
		t.Fatalf("expected -500 km to survive unclamped, got %v", summary.TotalKm)
	}
}

func TestMonthlyRowsSortedAscending(t *testing.T) {
	logs := []fleet.TruckLog{
		{Month: "2024-11", InitialKm: 0, FinalKm: 10},
		{Month: "2024-02", InitialKm: 0, FinalKm: 20},
	}
	expenses := []fleet.Expense{
		{Month: "2023-12", Supplier: "A", Cost: 5},
		{Month: "2024-05", Supplier: "B", Cost: 7},
	}

	summary := Aggregate(logs, expenses)
	want := []string{"2023-12", "2024-02", "2024-05", "2024-11"}
	if len(summary.Monthly) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(summary.Monthly))
	}
	for i, month := range want {
		if summary.Monthly[i].Month != month {
			t.Fatalf("position %d: expected %s, got %s", i, month, summary.Monthly[i].Month)
		}
	}
}

func TestCategoriesSortedDescendingStable(t *testing.T) {
	expenses := []fleet.Expense{
		{Month: "2024-01", Supplier: "Posto BR", Cost: 100},
		{Month: "2024-01", Supplier: "Borracharia Zé", Cost: 400},
		{Month: "2024-01", Supplier: "Lava Jato", Cost: 100},
		{Month: "2024-02", Supplier: "Borracharia Zé", Cost: 50},
	}

	summary := Aggregate(nil, expenses)

	if len(summary.ExpenseByCategory) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(summary.ExpenseByCategory))
	}
	if summary.ExpenseByCategory[0].Name != "Borracharia Zé" || summary.ExpenseByCategory[0].Value != 450 {
		t.Fatalf("expected Borracharia Zé first with 450, got %+v", summary.ExpenseByCategory[0])
	}
	// Equal totals keep encounter order: Posto BR was seen before Lava Jato.
	if summary.ExpenseByCategory[1].Name != "Posto BR" || summary.ExpenseByCategory[2].Name != "Lava Jato" {
		t.Fatalf("expected stable tie order, got %+v", summary.ExpenseByCategory[1:])
	}
}
