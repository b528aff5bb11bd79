package fleet

import "context"

type Repository interface {
	ListTruckLogs(ctx context.Context) ([]TruckLog, error)
	GetTruckLogByID(ctx context.Context, id string) (*TruckLog, error)
	CreateTruckLog(ctx context.Context, log *TruckLog) error
	UpdateTruckLog(ctx context.Context, log *TruckLog) error
	DeleteTruckLog(ctx context.Context, id string) (bool, error)

	ListExpenses(ctx context.Context) ([]Expense, error)
	GetExpenseByID(ctx context.Context, id string) (*Expense, error)
	CreateExpense(ctx context.Context, expense *Expense) error
	UpdateExpense(ctx context.Context, expense *Expense) error
	DeleteExpense(ctx context.Context, id string) (bool, error)
}
