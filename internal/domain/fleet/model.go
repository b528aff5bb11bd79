package fleet

import "time"

// TruckLog is one trip record. Month is the YYYY-MM key every time-series
// aggregation groups on; it is a plain string, not a date.
type TruckLog struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	TruckModel        string    `gorm:"not null" json:"truckModel"`
	LicensePlate      string    `gorm:"not null" json:"licensePlate"`
	Month             string    `gorm:"type:char(7);index;not null" json:"month"`
	InitialKm         float64   `gorm:"not null" json:"initialKm"`
	FinalKm           float64   `gorm:"not null" json:"finalKm"`
	FuelPricePerLiter float64   `gorm:"not null" json:"fuelPricePerLiter"`
	TotalFuelCost     float64   `gorm:"not null" json:"totalFuelCost"`
	IdealKmLRoute     float64   `gorm:"not null" json:"idealKmLRoute"`
	Route             string    `gorm:"not null" json:"route"`
	GasStation        string    `gorm:"not null" json:"gasStation"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// KmDriven is the derived trip distance. Negative when finalKm < initialKm;
// bad odometer data is kept visible, not clamped.
func (t TruckLog) KmDriven() float64 {
	return t.FinalKm - t.InitialKm
}

// LitersConsumed derives fuel volume from the stored total cost. The stored
// schema keeps TotalFuelCost canonical and derives liters, never the reverse.
func (t TruckLog) LitersConsumed() float64 {
	if t.FuelPricePerLiter <= 0 {
		return 0
	}
	return t.TotalFuelCost / t.FuelPricePerLiter
}

type Expense struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Month       string    `gorm:"type:char(7);index;not null" json:"month"`
	Supplier    string    `gorm:"not null" json:"supplier"`
	Description string    `gorm:"not null" json:"description"`
	Cost        float64   `gorm:"not null" json:"cost"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type CreateTruckLogInput struct {
	TruckModel        string
	LicensePlate      string
	Month             string
	InitialKm         float64
	FinalKm           float64
	FuelPricePerLiter float64
	TotalFuelCost     float64
	IdealKmLRoute     float64
	Route             string
	GasStation        string
}

// UpdateTruckLogInput carries a partial update: nil fields are left untouched.
type UpdateTruckLogInput struct {
	ID                string
	TruckModel        *string
	LicensePlate      *string
	Month             *string
	InitialKm         *float64
	FinalKm           *float64
	FuelPricePerLiter *float64
	TotalFuelCost     *float64
	IdealKmLRoute     *float64
	Route             *string
	GasStation        *string
}

type CreateExpenseInput struct {
	Month       string
	Supplier    string
	Description string
	Cost        float64
}

type UpdateExpenseInput struct {
	ID          string
	Month       *string
	Supplier    *string
	Description *string
	Cost        *float64
}
