package render

import (
	"image/color"
	"testing"
	"time"

	"fleet-app-go/internal/domain/fleet"
	"fleet-app-go/internal/report"
)

func sampleData() Data {
	logs := []fleet.TruckLog{
		{
			ID:                "log-1",
			TruckModel:        "Volvo FH 540",
			LicensePlate:      "ABC1D23",
			Month:             "2024-06",
			InitialKm:         1000,
			FinalKm:           1800,
			FuelPricePerLiter: 5,
			TotalFuelCost:     1000,
			Route:             "Santos - Campinas",
			GasStation:        "Posto Ipiranga",
		},
		{
			ID:                "log-2",
			TruckModel:        "Scania R450",
			LicensePlate:      "XYZ9K88",
			Month:             "2024-07",
			InitialKm:         500,
			FinalKm:           900,
			FuelPricePerLiter: 5.5,
			TotalFuelCost:     660,
			Route:             "Curitiba - SP",
			GasStation:        "Posto Shell",
		},
	}
	expenses := []fleet.Expense{
		{ID: "exp-1", Month: "2024-06", Supplier: "Oficina Central", Description: "Troca de pneus", Cost: 1200},
		{ID: "exp-2", Month: "2024-07", Supplier: "Auto Elétrica", Description: "Revisão elétrica", Cost: 300},
	}
	return Data{
		TruckLogs:   logs,
		Expenses:    expenses,
		Summary:     report.Aggregate(logs, expenses),
		GeneratedAt: time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestReportDimensions(t *testing.T) {
	img, err := Report(sampleData())
	if err != nil {
		t.Fatalf("render report: %v", err)
	}

	bounds := img.Bounds()
	if got, want := bounds.Dx(), PageWidthPx*Scale; got != want {
		t.Fatalf("width = %d, want %d", got, want)
	}
	if bounds.Dy() <= 0 {
		t.Fatalf("height = %d, want > 0", bounds.Dy())
	}
}

func TestReportWhiteBackground(t *testing.T) {
	img, err := Report(sampleData())
	if err != nil {
		t.Fatalf("render report: %v", err)
	}

	// The page corner is outside every drawn section.
	r, g, b, _ := img.At(0, 0).RGBA()
	white := color.White
	wr, wg, wb, _ := white.RGBA()
	if r != wr || g != wg || b != wb {
		t.Fatalf("corner pixel = (%d, %d, %d), want white", r, g, b)
	}
}

func TestReportEmptyData(t *testing.T) {
	img, err := Report(Data{GeneratedAt: time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("render empty report: %v", err)
	}

	if got, want := img.Bounds().Dx(), PageWidthPx*Scale; got != want {
		t.Fatalf("width = %d, want %d", got, want)
	}
	if img.Bounds().Dy() <= 0 {
		t.Fatal("empty report must still produce a page")
	}
}

func TestReportSingleMonthSkipsCostChart(t *testing.T) {
	data := sampleData()
	data.TruckLogs = data.TruckLogs[:1]
	data.Expenses = data.Expenses[:1]
	data.Summary = report.Aggregate(data.TruckLogs, data.Expenses)

	multi, err := Report(sampleData())
	if err != nil {
		t.Fatalf("render multi-month report: %v", err)
	}
	single, err := Report(data)
	if err != nil {
		t.Fatalf("render single-month report: %v", err)
	}

	if single.Bounds().Dy() >= multi.Bounds().Dy() {
		t.Fatalf("single-month report should be shorter: single=%d multi=%d",
			single.Bounds().Dy(), multi.Bounds().Dy())
	}
}

func TestReportZeroKmMonth(t *testing.T) {
	logs := []fleet.TruckLog{
		{
			ID:                "log-1",
			TruckModel:        "Volvo FH 540",
			LicensePlate:      "ABC1D23",
			Month:             "2024-06",
			InitialKm:         1000,
			FinalKm:           1000,
			FuelPricePerLiter: 5,
			TotalFuelCost:     0,
			Route:             "Santos - Campinas",
			GasStation:        "Posto Ipiranga",
		},
	}
	data := Data{
		TruckLogs:   logs,
		Summary:     report.Aggregate(logs, nil),
		GeneratedAt: time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC),
	}

	img, err := Report(data)
	if err != nil {
		t.Fatalf("zero-km report failed: %v", err)
	}
	if got, want := img.Bounds().Dx(), PageWidthPx*Scale; got != want {
		t.Fatalf("width = %d, want %d", got, want)
	}
}

func TestReportEqualMonthlyValues(t *testing.T) {
	// Two months with identical totals give the cost chart a flat series.
	logs := []fleet.TruckLog{
		{
			ID: "log-1", TruckModel: "Volvo FH 540", LicensePlate: "ABC1D23",
			Month: "2024-06", InitialKm: 0, FinalKm: 500,
			FuelPricePerLiter: 5, TotalFuelCost: 750,
		},
		{
			ID: "log-2", TruckModel: "Volvo FH 540", LicensePlate: "ABC1D23",
			Month: "2024-07", InitialKm: 500, FinalKm: 1000,
			FuelPricePerLiter: 5, TotalFuelCost: 750,
		},
	}
	expenses := []fleet.Expense{
		{ID: "exp-1", Month: "2024-06", Supplier: "Oficina Central", Description: "Revisão", Cost: 750},
		{ID: "exp-2", Month: "2024-07", Supplier: "Oficina Central", Description: "Revisão", Cost: 750},
	}
	data := Data{
		TruckLogs:   logs,
		Expenses:    expenses,
		Summary:     report.Aggregate(logs, expenses),
		GeneratedAt: time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	if _, err := Report(data); err != nil {
		t.Fatalf("equal-values report failed: %v", err)
	}
}

func TestYRangeNeverZeroSpread(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
	}{
		{"empty", nil},
		{"all zero", []float64{0, 0}},
		{"single value", []float64{800}},
		{"all equal", []float64{750, 750, 750}},
		{"negative only", []float64{-100}},
	}
	for _, tc := range cases {
		r := yRange(tc.values)
		if r.Min >= r.Max {
			t.Errorf("%s: range [%v, %v] has no spread", tc.name, r.Min, r.Max)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.5, "R$ 1.234,50"},
		{1000000, "R$ 1.000.000,00"},
		{-42.1, "-R$ 42,10"},
	}
	for _, tc := range cases {
		if got := formatBRL(tc.in); got != tc.want {
			t.Errorf("formatBRL(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
