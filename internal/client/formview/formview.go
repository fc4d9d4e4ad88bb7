// Package formview implements the generic form screen behavior: a single
// draft record bound to a schema, validated synchronously before submit,
// persisted through the entity client on success, and kept intact on
// failure so the user can retry without re-entering data.
package formview

import (
	"context"
	"fmt"

	"github.com/raghusami/personal-finance-tracker/internal/client/notify"
)

// Mode is the form mode.
type Mode string

// Form modes.
const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Store is the subset of the entity client a form needs.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, id string, record T) (T, error)
}

// Schema provides the draft defaults and synchronous validation for one
// entity type.
type Schema[T any] interface {
	Defaults() T
	Validate(record T) map[string]string
}

// Controller manages one draft record. A controller starts in create mode
// with the schema defaults; LoadForEdit switches it to edit mode.
type Controller[T any] struct {
	name    string
	schema  Schema[T]
	store   Store[T]
	sink    notify.Sink
	mode    Mode
	id      string
	draft   T
	errors  map[string]string
	loading bool
}

// New creates a form controller in create mode. The name is used in
// notification messages, e.g. "Expense".
func New[T any](name string, schema Schema[T], store Store[T], sink notify.Sink) *Controller[T] {
	return &Controller[T]{
		name:   name,
		schema: schema,
		store:  store,
		sink:   sink,
		mode:   ModeCreate,
		draft:  schema.Defaults(),
		errors: map[string]string{},
	}
}

// LoadForEdit fetches the record with the given id and replaces the entire
// draft with it, switching the controller to edit mode. The fetched record
// overwrites every draft field; nothing from the defaults survives.
func (c *Controller[T]) LoadForEdit(ctx context.Context, id string) error {
	c.loading = true
	record, err := c.store.Get(ctx, id)
	c.loading = false
	if err != nil {
		c.sink.Notify(notify.SeverityError, fmt.Sprintf("Failed to load %s", c.name))
		return err
	}
	c.mode = ModeEdit
	c.id = id
	c.draft = record
	c.errors = map[string]string{}
	return nil
}

// Mode returns the current form mode.
func (c *Controller[T]) Mode() Mode {
	return c.mode
}

// Loading reports whether the edit-mode record fetch is outstanding.
func (c *Controller[T]) Loading() bool {
	return c.loading
}

// Draft returns the current draft record.
func (c *Controller[T]) Draft() T {
	return c.draft
}

// SetDraft replaces the draft record.
func (c *Controller[T]) SetDraft(record T) {
	c.draft = record
}

// Errors returns the field-scoped validation messages from the last
// Validate or Submit call.
func (c *Controller[T]) Errors() map[string]string {
	return c.errors
}

// Validate runs the schema against the draft and records the result.
func (c *Controller[T]) Validate() map[string]string {
	c.errors = c.schema.Validate(c.draft)
	return c.errors
}

// Submit validates the draft and, when valid, persists it via create or
// update depending on the mode. It returns the persisted record and true on
// success, signalling the caller to navigate to the list view. Validation
// failures populate Errors and block the call; transport failures are
// notified and leave the draft intact so the user can retry.
func (c *Controller[T]) Submit(ctx context.Context) (T, bool) {
	var zero T
	if len(c.Validate()) > 0 {
		return zero, false
	}

	var (
		saved T
		err   error
	)
	if c.mode == ModeEdit {
		saved, err = c.store.Update(ctx, c.id, c.draft)
	} else {
		saved, err = c.store.Create(ctx, c.draft)
	}
	if err != nil {
		c.sink.Notify(notify.SeverityError, fmt.Sprintf("Failed to save %s", c.name))
		return zero, false
	}

	if c.mode == ModeEdit {
		c.sink.Notify(notify.SeveritySuccess, fmt.Sprintf("%s updated", c.name))
	} else {
		c.sink.Notify(notify.SeveritySuccess, fmt.Sprintf("%s created", c.name))
	}
	return saved, true
}

// Cancel discards the draft without any client call, resetting the
// controller to create mode with fresh defaults.
func (c *Controller[T]) Cancel() {
	c.mode = ModeCreate
	c.id = ""
	c.draft = c.schema.Defaults()
	c.errors = map[string]string{}
}
