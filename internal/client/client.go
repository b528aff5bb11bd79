package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"fleet-app-go/internal/domain/fleet"
)

// Client consumes the fleet record store API. It owns the in-memory record
// collections; consumers get copies and never mutate shared state. Mutations
// are followed by a full reload of the affected collection rather than a
// speculative local merge, so a failed server call never leaves the cache
// inconsistent.
type Client struct {
	http *resty.Client

	mu        sync.RWMutex
	truckLogs []fleet.TruckLog
	expenses  []fleet.Expense
	loaded    bool
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// New fails fast when no base URL is supplied; the client never guesses a
// local address.
func New(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("fleet api base url is required")
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient}, nil
}

// LoadAll fetches both collections in parallel and joins fail-fast: either
// both succeed or the load reports failure and the cached state is untouched.
func (c *Client) LoadAll(ctx context.Context) error {
	var (
		logs     []fleet.TruckLog
		expenses []fleet.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = c.fetchTruckLogs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = c.fetchExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	c.truckLogs = logs
	c.expenses = expenses
	c.loaded = true
	c.mu.Unlock()
	return nil
}

func (c *Client) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Client) TruckLogs() []fleet.TruckLog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	logs := make([]fleet.TruckLog, len(c.truckLogs))
	copy(logs, c.truckLogs)
	return logs
}

func (c *Client) Expenses() []fleet.Expense {
	c.mu.RLock()
	defer c.mu.RUnlock()
	expenses := make([]fleet.Expense, len(c.expenses))
	copy(expenses, c.expenses)
	return expenses
}

func (c *Client) Health(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("health check: unexpected status %s", resp.Status())
	}
	return nil
}

func (c *Client) CreateTruckLog(ctx context.Context, input fleet.CreateTruckLogInput) (*fleet.TruckLog, error) {
	payload := createTruckLogRequest{
		TruckModel:        input.TruckModel,
		LicensePlate:      input.LicensePlate,
		Month:             input.Month,
		InitialKm:         input.InitialKm,
		FinalKm:           input.FinalKm,
		FuelPricePerLiter: input.FuelPricePerLiter,
		TotalFuelCost:     input.TotalFuelCost,
		IdealKmLRoute:     input.IdealKmLRoute,
		Route:             input.Route,
		GasStation:        input.GasStation,
	}

	var created fleet.TruckLog
	var apiErr errorEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&created).
		SetError(&apiErr).
		Post("/api/truck-logs")
	if err != nil {
		return nil, fmt.Errorf("create truck log: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create truck log: %s", apiMessage(resp.Status(), apiErr))
	}

	if err := c.reloadTruckLogs(ctx); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTruckLog(ctx context.Context, input fleet.UpdateTruckLogInput) (*fleet.TruckLog, error) {
	payload := updateTruckLogRequest{
		TruckModel:        input.TruckModel,
		LicensePlate:      input.LicensePlate,
		Month:             input.Month,
		InitialKm:         input.InitialKm,
		FinalKm:           input.FinalKm,
		FuelPricePerLiter: input.FuelPricePerLiter,
		TotalFuelCost:     input.TotalFuelCost,
		IdealKmLRoute:     input.IdealKmLRoute,
		Route:             input.Route,
		GasStation:        input.GasStation,
	}

	var updated fleet.TruckLog
	var apiErr errorEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&updated).
		SetError(&apiErr).
		Put("/api/truck-logs/" + input.ID)
	if err != nil {
		return nil, fmt.Errorf("update truck log: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("update truck log: %s", apiMessage(resp.Status(), apiErr))
	}

	if err := c.reloadTruckLogs(ctx); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTruckLog(ctx context.Context, id string) error {
	var apiErr errorEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&apiErr).
		Delete("/api/truck-logs/" + id)
	if err != nil {
		return fmt.Errorf("delete truck log: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("delete truck log: %s", apiMessage(resp.Status(), apiErr))
	}

	return c.reloadTruckLogs(ctx)
}

func (c *Client) CreateExpense(ctx context.Context, input fleet.CreateExpenseInput) (*fleet.Expense, error) {
	payload := createExpenseRequest{
		Month:       input.Month,
		Supplier:    input.Supplier,
		Description: input.Description,
		Cost:        input.Cost,
	}

	var created fleet.Expense
	var apiErr errorEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&created).
		SetError(&apiErr).
		Post("/api/expenses")
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create expense: %s", apiMessage(resp.Status(), apiErr))
	}

	if err := c.reloadExpenses(ctx); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateExpense(ctx context.Context, input fleet.UpdateExpenseInput) (*fleet.Expense, error) {
	payload := updateExpenseRequest{
		Month:       input.Month,
		Supplier:    input.Supplier,
		Description: input.Description,
		Cost:        input.Cost,
	}

	var updated fleet.Expense
	var apiErr errorEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&updated).
		SetError(&apiErr).
		Put("/api/expenses/" + input.ID)
	if err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("update expense: %s", apiMessage(resp.Status(), apiErr))
	}

	if err := c.reloadExpenses(ctx); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	var apiErr errorEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&apiErr).
		Delete("/api/expenses/" + id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("delete expense: %s", apiMessage(resp.Status(), apiErr))
	}

	return c.reloadExpenses(ctx)
}

func (c *Client) fetchTruckLogs(ctx context.Context) ([]fleet.TruckLog, error) {
	var logs []fleet.TruckLog
	resp, err := c.http.R().SetContext(ctx).SetResult(&logs).Get("/api/truck-logs")
	if err != nil {
		return nil, fmt.Errorf("fetch truck logs: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch truck logs: unexpected status %s", resp.Status())
	}
	return logs, nil
}

func (c *Client) fetchExpenses(ctx context.Context) ([]fleet.Expense, error) {
	var expenses []fleet.Expense
	resp, err := c.http.R().SetContext(ctx).SetResult(&expenses).Get("/api/expenses")
	if err != nil {
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch expenses: unexpected status %s", resp.Status())
	}
	return expenses, nil
}

func (c *Client) reloadTruckLogs(ctx context.Context) error {
	logs, err := c.fetchTruckLogs(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.truckLogs = logs
	c.mu.Unlock()
	return nil
}

func (c *Client) reloadExpenses(ctx context.Context) error {
	expenses, err := c.fetchExpenses(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.expenses = expenses
	c.mu.Unlock()
	return nil
}

func apiMessage(status string, envelope errorEnvelope) string {
	if envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return "unexpected status " + status
}

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

type updateTruckLogRequest struct {
	TruckModel        *string  `json:"truckModel,omitempty"`
	LicensePlate      *string  `json:"licensePlate,omitempty"`
	Month             *string  `json:"month,omitempty"`
	InitialKm         *float64 `json:"initialKm,omitempty"`
	FinalKm           *float64 `json:"finalKm,omitempty"`
	FuelPricePerLiter *float64 `json:"fuelPricePerLiter,omitempty"`
	TotalFuelCost     *float64 `json:"totalFuelCost,omitempty"`
	IdealKmLRoute     *float64 `json:"idealKmLRoute,omitempty"`
	Route             *string  `json:"route,omitempty"`
	GasStation        *string  `json:"gasStation,omitempty"`
}

type createExpenseRequest struct {
	Month       string  `json:"month"`
	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

type updateExpenseRequest struct {
	Month       *string  `json:"month,omitempty"`
	Supplier    *string  `json:"supplier,omitempty"`
	Description *string  `json:"description,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
}
