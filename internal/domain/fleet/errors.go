package fleet

import "errors"

var (
	ErrTruckLogNotFound = errors.New("truck log not found")
	ErrExpenseNotFound  = errors.New("expense not found")
)
