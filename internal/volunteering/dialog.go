package volunteering

import (
	"context"
	"errors"
	"fmt"

	"donatehub/internal/i18n"
	"donatehub/pkg/types"
)

var ErrAlreadySubmitted = errors.New("dialog already submitted")

// Submitter receives the payload of a successful submission.
type Submitter interface {
	SubmitVolunteering(ctx context.Context, req *types.DonateVolunteeringRequest) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, req *types.DonateVolunteeringRequest) error

func (f SubmitterFunc) SubmitVolunteering(ctx context.Context, req *types.DonateVolunteeringRequest) error {
	return f(ctx, req)
}

// State is where the dialog is in its Editing → Submitted lifecycle.
type State int

const (
	StateEditing State = iota
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitted:
		return "submitted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Dialog is the volunteering signup form opened for one resource category.
type Dialog struct {
	tr         i18n.Translator
	counties   []types.County
	category   int
	onSubmit   Submitter
	controller *Controller
	state      State
}

func NewDialog(tr i18n.Translator, counties []types.County, category int, onSubmit Submitter, opts ...Option) *Dialog {
	ids := make([]string, len(counties))
	for i, c := range counties {
		ids[i] = c.ID
	}

	return &Dialog{
		tr:         tr,
		counties:   counties,
		category:   category,
		onSubmit:   onSubmit,
		controller: NewController(NewVolunteeringSchema(tr, ids...), category, opts...),
		state:      StateEditing,
	}
}

func (d *Dialog) Controller() *Controller {
	return d.controller
}

func (d *Dialog) State() State {
	return d.state
}

func (d *Dialog) Category() int {
	return d.category
}

func (d *Dialog) Counties() []types.County {
	return d.counties
}

// Submit validates the form and hands the payload to the submitter exactly
// once. Validation failures come back as FieldErrors and leave the dialog
// editable. An error from the submitter is returned wrapped; the dialog is
// submitted either way.
func (d *Dialog) Submit(ctx context.Context) error {
	if d.state == StateSubmitted {
		return ErrAlreadySubmitted
	}

	var req *types.DonateVolunteeringRequest
	ok := d.controller.HandleSubmit(func(form types.VolunteeringResourceForm) {
		req = ToRequest(form)
	})
	if !ok {
		return d.controller.Errors()
	}

	d.state = StateSubmitted

	if err := d.onSubmit.SubmitVolunteering(ctx, req); err != nil {
		return fmt.Errorf("submit volunteering resource: %w", err)
	}

	return nil
}

// Reset reopens the dialog for another entry.
func (d *Dialog) Reset() {
	d.controller.Reset()
	d.state = StateEditing
}
