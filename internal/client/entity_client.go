package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// endpoints holds the paths for one entity's five operations. Most entities
// sit on a conventional resource path; Income keeps the legacy verb-suffixed
// paths the original web client was built against.
type endpoints struct {
	list   string
	get    func(id string) string
	create string
	update func(id string) string
	delete func(id string) string
}

func resourceEndpoints(base string) endpoints {
	return endpoints{
		list:   base,
		get:    func(id string) string { return base + "/" + url.PathEscape(id) },
		create: base,
		update: func(id string) string { return base + "/" + url.PathEscape(id) },
		delete: func(id string) string { return base + "/" + url.PathEscape(id) },
	}
}

// EntityClient performs the five CRUD operations for one entity type,
// decoding whatever envelope that entity's endpoints use into plain records.
type EntityClient[T any] struct {
	c          *Client
	ep         endpoints
	decodeOne  func(c *Client, ctx context.Context, method, path string, body any) (T, error)
	decodeList func(c *Client, ctx context.Context, path string) ([]T, error)
}

func plainOne[T any](c *Client, ctx context.Context, method, path string, body any) (T, error) {
	var record T
	err := c.do(ctx, method, path, body, &record)
	return record, err
}

func plainList[T any](c *Client, ctx context.Context, path string) ([]T, error) {
	var records []T
	if err := c.do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func envelopedOne[T any](c *Client, ctx context.Context, method, path string, body any) (T, error) {
	var env struct {
		ResponseData T `json:"responseData"`
	}
	err := c.do(ctx, method, path, body, &env)
	return env.ResponseData, err
}

func envelopedList[T any](c *Client, ctx context.Context, path string) ([]T, error) {
	var env struct {
		ResponseData []T `json:"responseData"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.ResponseData, nil
}

func newResourceClient[T any](c *Client, base string) *EntityClient[T] {
	return &EntityClient[T]{
		c:          c,
		ep:         resourceEndpoints(base),
		decodeOne:  plainOne[T],
		decodeList: plainList[T],
	}
}

// List fetches the full collection for the authenticated user.
func (e *EntityClient[T]) List(ctx context.Context) ([]T, error) {
	records, err := e.decodeList(e.c, ctx, e.ep.list)
	if err != nil {
		return nil, fmt.Errorf("list failed: %w", err)
	}
	return records, nil
}

// Get fetches a single record by id.
func (e *EntityClient[T]) Get(ctx context.Context, id string) (T, error) {
	record, err := e.decodeOne(e.c, ctx, http.MethodGet, e.ep.get(id), nil)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("get failed: %w", err)
	}
	return record, nil
}

// Create persists a new record and returns it with the server-assigned id.
func (e *EntityClient[T]) Create(ctx context.Context, record T) (T, error) {
	created, err := e.decodeOne(e.c, ctx, http.MethodPost, e.ep.create, record)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("create failed: %w", err)
	}
	return created, nil
}

// Update replaces the record with the given id.
func (e *EntityClient[T]) Update(ctx context.Context, id string, record T) (T, error) {
	updated, err := e.decodeOne(e.c, ctx, http.MethodPut, e.ep.update(id), record)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("update failed: %w", err)
	}
	return updated, nil
}

// Delete removes the record with the given id.
func (e *EntityClient[T]) Delete(ctx context.Context, id string) error {
	if err := e.c.do(ctx, http.MethodDelete, e.ep.delete(id), nil, nil); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// Incomes returns the client for income records. Income endpoints keep the
// legacy verb paths and nest every body under responseData.
func (c *Client) Incomes() *EntityClient[Income] {
	return &EntityClient[Income]{
		c: c,
		ep: endpoints{
			list:   "/api/v1/IncomeRecords/IncomeGetAll",
			get:    func(id string) string { return "/api/v1/IncomeRecords/IncomeGetById/" + url.PathEscape(id) },
			create: "/api/v1/IncomeRecords/IncomeCreate",
			update: func(id string) string { return "/api/v1/IncomeRecords/IncomeUpdate/" + url.PathEscape(id) },
			delete: func(id string) string { return "/api/v1/IncomeRecords/IncomeDelete/" + url.PathEscape(id) },
		},
		decodeOne:  envelopedOne[Income],
		decodeList: envelopedList[Income],
	}
}

// Expenses returns the client for expense records.
func (c *Client) Expenses() *EntityClient[Expense] {
	return newResourceClient[Expense](c, "/api/v1/expenses")
}

// Savings returns the client for saving records.
func (c *Client) Savings() *EntityClient[Saving] {
	return newResourceClient[Saving](c, "/api/v1/savings")
}

// SavingPayments returns the client for saving payment records.
func (c *Client) SavingPayments() *EntityClient[SavingPayment] {
	return newResourceClient[SavingPayment](c, "/api/v1/saving-payments")
}

// Investments returns the client for investment records.
func (c *Client) Investments() *EntityClient[Investment] {
	return newResourceClient[Investment](c, "/api/v1/investments")
}

// BudgetPeriods returns the client for budget period records.
func (c *Client) BudgetPeriods() *EntityClient[BudgetPeriod] {
	return newResourceClient[BudgetPeriod](c, "/api/v1/budgets")
}

// Goals returns the client for goal records.
func (c *Client) Goals() *EntityClient[Goal] {
	return newResourceClient[Goal](c, "/api/v1/goals")
}
