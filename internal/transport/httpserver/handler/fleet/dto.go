package fleet

import fleetdomain "fleet-app-go/internal/domain/fleet"

type createTruckLogRequest struct {
	TruckModel        string  `json:"truckModel"`
	LicensePlate      string  `json:"licensePlate"`
	Month             string  `json:"month"`
	InitialKm         float64 `json:"initialKm"`
	FinalKm           float64 `json:"finalKm"`
	FuelPricePerLiter float64 `json:"fuelPricePerLiter"`
	TotalFuelCost     float64 `json:"totalFuelCost"`
	IdealKmLRoute     float64 `json:"idealKmLRoute"`
	Route             string  `json:"route"`
	GasStation        string  `json:"gasStation"`
}

func (r createTruckLogRequest) toInput() fleetdomain.CreateTruckLogInput {
	return fleetdomain.CreateTruckLogInput{
		TruckModel:        r.TruckModel,
		LicensePlate:      r.LicensePlate,
		Month:             r.Month,
		InitialKm:         r.InitialKm,
		FinalKm:           r.FinalKm,
		FuelPricePerLiter: r.FuelPricePerLiter,
		TotalFuelCost:     r.TotalFuelCost,
		IdealKmLRoute:     r.IdealKmLRoute,
		Route:             r.Route,
		GasStation:        r.GasStation,
	}
}

type updateTruckLogRequest struct {
	TruckModel        *string  `json:"truckModel"`
	LicensePlate      *string  `json:"licensePlate"`
	Month             *string  `json:"month"`
	InitialKm         *float64 `json:"initialKm"`
	FinalKm           *float64 `json:"finalKm"`
	FuelPricePerLiter *float64 `json:"fuelPricePerLiter"`
	TotalFuelCost     *float64 `json:"totalFuelCost"`
	IdealKmLRoute     *float64 `json:"idealKmLRoute"`
	Route             *string  `json:"route"`
	GasStation        *string  `json:"gasStation"`
}

func (r updateTruckLogRequest) toInput(id string) fleetdomain.UpdateTruckLogInput {
	return fleetdomain.UpdateTruckLogInput{
		ID:                id,
		TruckModel:        r.TruckModel,
		LicensePlate:      r.LicensePlate,
		Month:             r.Month,
		InitialKm:         r.InitialKm,
		FinalKm:           r.FinalKm,
		FuelPricePerLiter: r.FuelPricePerLiter,
		TotalFuelCost:     r.TotalFuelCost,
		IdealKmLRoute:     r.IdealKmLRoute,
		Route:             r.Route,
		GasStation:        r.GasStation,
	}
}

type createExpenseRequest struct {
	Month       string  `json:"month"`
	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

func (r createExpenseRequest) toInput() fleetdomain.CreateExpenseInput {
	return fleetdomain.CreateExpenseInput{
		Month:       r.Month,
		Supplier:    r.Supplier,
		Description: r.Description,
		Cost:        r.Cost,
	}
}

type updateExpenseRequest struct {
	Month       *string  `json:"month"`
	Supplier    *string  `json:"supplier"`
	Description *string  `json:"description"`
	Cost        *float64 `json:"cost"`
}

func (r updateExpenseRequest) toInput(id string) fleetdomain.UpdateExpenseInput {
	return fleetdomain.UpdateExpenseInput{
		ID:          id,
		Month:       r.Month,
		Supplier:    r.Supplier,
		Description: r.Description,
		Cost:        r.Cost,
	}
}
