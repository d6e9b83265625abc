package volunteering

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"donatehub/pkg/types"
)

var (
	ErrUnknownField  = errors.New("unknown form field")
	ErrReadOnlyField = errors.New("form field is read-only")
)

var editableFields = map[string]bool{
	FieldName:           true,
	FieldTown:           true,
	FieldDescription:    true,
	FieldAvailableUntil: true,
	FieldCountyCoverage: true,
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now when computing the default available_until.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Today formats t as an ISO calendar date in UTC.
func Today(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Binding connects a presentational input to one controller field.
type Binding struct {
	Field string
	Get   func() any
	Set   func(value any) error
}

// Controller owns the live values of one open dialog and the errors of its
// last submit attempt. Values are validated only by HandleSubmit, so errors
// stay in place while the user edits until the next attempt.
type Controller struct {
	schema   *Schema
	category int
	now      func() time.Time

	values map[string]any
	errors FieldErrors
}

func NewController(schema *Schema, category int, opts ...Option) *Controller {
	o := buildOptions(opts)

	c := &Controller{
		schema:   schema,
		category: category,
		now:      o.now,
	}
	c.Reset()

	return c
}

// Reset restores the defaults the dialog opens with.
func (c *Controller) Reset() {
	c.values = map[string]any{
		FieldCategory:       c.category,
		FieldCountyCoverage: []string{},
		FieldAvailableUntil: Today(c.now()),
	}
	c.errors = nil
}

func (c *Controller) Category() int {
	return c.category
}

func (c *Controller) Set(field string, value any) error {
	if field == FieldCategory {
		return fmt.Errorf("%s: %w", field, ErrReadOnlyField)
	}
	if !editableFields[field] {
		return fmt.Errorf("%s: %w", field, ErrUnknownField)
	}

	switch v := value.(type) {
	case string:
		value = strings.TrimSpace(v)
	case []string:
		value = append([]string{}, v...)
	}

	c.values[field] = value
	return nil
}

// SetAll applies every entry of values, stopping at the first rejected field.
func (c *Controller) SetAll(values map[string]any) error {
	for field, value := range values {
		if err := c.Set(field, value); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies a posted dialog form into the controller.
func (c *Controller) Apply(sub *types.VolunteeringSubmission) {
	c.values[FieldName] = strings.TrimSpace(sub.Name)
	c.values[FieldTown] = strings.TrimSpace(sub.Town)
	c.values[FieldDescription] = strings.TrimSpace(sub.Description)
	c.values[FieldAvailableUntil] = strings.TrimSpace(sub.AvailableUntil)

	counties := make([]string, 0, len(sub.CountyCoverage))
	for _, id := range sub.CountyCoverage {
		if id = strings.TrimSpace(id); id != "" {
			counties = append(counties, id)
		}
	}
	c.values[FieldCountyCoverage] = counties
}

func (c *Controller) Get(field string) any {
	return c.values[field]
}

func (c *Controller) Bind(field string) (Binding, error) {
	if field != FieldCategory && !editableFields[field] {
		return Binding{}, fmt.Errorf("%s: %w", field, ErrUnknownField)
	}

	return Binding{
		Field: field,
		Get:   func() any { return c.Get(field) },
		Set:   func(value any) error { return c.Set(field, value) },
	}, nil
}

// Values returns a copy of the current candidate.
func (c *Controller) Values() map[string]any {
	return maps.Clone(c.values)
}

// Errors returns the field errors of the last failed submit attempt.
func (c *Controller) Errors() FieldErrors {
	return c.errors
}

// HandleSubmit validates the current values. On success the stored errors are
// cleared and complete is called once with the typed form; on failure the
// errors are stored and complete is not called.
func (c *Controller) HandleSubmit(complete func(types.VolunteeringResourceForm)) bool {
	errs := c.schema.Validate(c.values)
	if len(errs) > 0 {
		c.errors = errs
		return false
	}

	c.errors = nil
	complete(Decode(c.values))

	return true
}
