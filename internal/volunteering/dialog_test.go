package volunteering

import (
	"context"
	"errors"
	"testing"

	"donatehub/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	calls []*types.DonateVolunteeringRequest
	err   error
}

func (r *recordingSubmitter) SubmitVolunteering(_ context.Context, req *types.DonateVolunteeringRequest) error {
	r.calls = append(r.calls, req)
	return r.err
}

var countyOne = []types.County{{ID: "C1", Label: "County One"}}

func newTestDialog(category int, sub Submitter) *Dialog {
	return NewDialog(idTranslator{}, countyOne, category, sub, WithClock(fixedClock))
}

func TestDialogSubmit_Scenario(t *testing.T) {
	sub := &recordingSubmitter{}
	d := newTestDialog(2, sub)

	require.NoError(t, d.Controller().Set(FieldName, "Jane"))
	require.NoError(t, d.Controller().Set(FieldCountyCoverage, []string{"C1"}))

	require.NoError(t, d.Submit(context.Background()))

	require.Len(t, sub.calls, 1)
	assert.Equal(t, &types.DonateVolunteeringRequest{
		Name:           "Jane",
		Category:       2,
		AvailableUntil: "2026-10-19",
		CountyCoverage: []string{"C1"},
		Type:           2,
	}, sub.calls[0])
	assert.Equal(t, StateSubmitted, d.State())
}

func TestDialogSubmit_MissingNameAndCounties(t *testing.T) {
	sub := &recordingSubmitter{}
	d := newTestDialog(2, sub)

	require.NoError(t, d.Controller().Set(FieldName, ""))

	err := d.Submit(context.Background())

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Len(t, fieldErrs, 2)
	assert.Contains(t, fieldErrs, FieldName)
	assert.Contains(t, fieldErrs, FieldCountyCoverage)
	assert.Empty(t, sub.calls)
	assert.Equal(t, StateEditing, d.State())
}

func TestDialogSubmit_AllFields(t *testing.T) {
	sub := &recordingSubmitter{}
	d := newTestDialog(5, sub)

	require.NoError(t, d.Controller().SetAll(map[string]any{
		FieldName:           "Jane",
		FieldTown:           "Springfield",
		FieldDescription:    "Two drivers, one van",
		FieldAvailableUntil: "2026-12-01",
		FieldCountyCoverage: []any{"C1"},
	}))

	require.NoError(t, d.Submit(context.Background()))
	require.Len(t, sub.calls, 1)

	req := sub.calls[0]
	assert.Equal(t, "Springfield", req.Town)
	assert.Equal(t, "Two drivers, one van", req.Description)
	assert.Equal(t, "2026-12-01", req.AvailableUntil)
	assert.Equal(t, []string{"C1"}, req.CountyCoverage)
	assert.Equal(t, req.Category, req.Type)
}

func TestDialogSubmit_CategoryFixed(t *testing.T) {
	sub := &recordingSubmitter{}
	d := newTestDialog(7, sub)

	assert.Error(t, d.Controller().Set(FieldCategory, 1))
	require.NoError(t, d.Controller().Set(FieldName, "Jane"))
	require.NoError(t, d.Controller().Set(FieldCountyCoverage, []string{"C1"}))

	require.NoError(t, d.Submit(context.Background()))
	assert.Equal(t, 7, sub.calls[0].Category)
	assert.Equal(t, 7, sub.calls[0].Type)
}

func TestDialogSubmit_UnknownCounty(t *testing.T) {
	sub := &recordingSubmitter{}
	d := newTestDialog(2, sub)

	require.NoError(t, d.Controller().Set(FieldName, "Jane"))
	require.NoError(t, d.Controller().Set(FieldCountyCoverage, []string{"C7"}))

	err := d.Submit(context.Background())

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, MsgCountyInvalid, fieldErrs[FieldCountyCoverage].MessageID)
	assert.Empty(t, sub.calls)
}

func TestDialogSubmit_ZeroValuedOptionalFields(t *testing.T) {
	sub := &recordingSubmitter{}
	d := newTestDialog(2, sub)

	require.NoError(t, d.Controller().SetAll(map[string]any{
		FieldName:           "Jane",
		FieldCountyCoverage: []any{"C1"},
		FieldTown:           0.0,
		FieldDescription:    false,
	}))

	err := d.Submit(context.Background())

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, []string{FieldDescription, FieldTown}, fieldErrs.Fields())
	assert.Equal(t, MsgMustBeString, fieldErrs[FieldTown].MessageID)
	assert.Equal(t, MsgMustBeString, fieldErrs[FieldDescription].MessageID)
	assert.Empty(t, sub.calls)
	assert.Equal(t, StateEditing, d.State())
}

func TestDialogSubmit_OnceOnly(t *testing.T) {
	sub := &recordingSubmitter{}
	d := newTestDialog(2, sub)

	require.NoError(t, d.Controller().Set(FieldName, "Jane"))
	require.NoError(t, d.Controller().Set(FieldCountyCoverage, []string{"C1"}))
	require.NoError(t, d.Submit(context.Background()))

	assert.ErrorIs(t, d.Submit(context.Background()), ErrAlreadySubmitted)
	assert.Len(t, sub.calls, 1)

	d.Reset()
	assert.Equal(t, StateEditing, d.State())
	assert.Nil(t, d.Controller().Get(FieldName))
}

func TestDialogSubmit_SubmitterError(t *testing.T) {
	boom := errors.New("boom")
	sub := &recordingSubmitter{err: boom}
	d := newTestDialog(2, sub)

	require.NoError(t, d.Controller().Set(FieldName, "Jane"))
	require.NoError(t, d.Controller().Set(FieldCountyCoverage, []string{"C1"}))

	err := d.Submit(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Len(t, sub.calls, 1)
	assert.Equal(t, StateSubmitted, d.State())
}

func TestSubmitterFunc(t *testing.T) {
	var got *types.DonateVolunteeringRequest
	d := newTestDialog(3, SubmitterFunc(func(_ context.Context, req *types.DonateVolunteeringRequest) error {
		got = req
		return nil
	}))

	require.NoError(t, d.Controller().Set(FieldName, "Jane"))
	require.NoError(t, d.Controller().Set(FieldCountyCoverage, []string{"C1"}))
	require.NoError(t, d.Submit(context.Background()))

	require.NotNil(t, got)
	assert.Equal(t, 3, got.Type)
}

func TestDialogView(t *testing.T) {
	counties := []types.County{{ID: "C1", Label: "County One"}, {ID: "C2", Label: "County Two"}}
	d := NewDialog(idTranslator{}, counties, 2, &recordingSubmitter{}, WithClock(fixedClock))

	require.NoError(t, d.Controller().Set(FieldCountyCoverage, []string{"C2"}))
	require.Error(t, d.Submit(context.Background()))

	view := d.View()

	assert.Equal(t, "signup.volunteering.name", view.Name.Label)
	assert.Equal(t, MsgNameRequired, view.Name.Error)
	assert.Equal(t, "", view.CountyCoverage.Error)
	assert.Equal(t, "signup.other.county_coverage", view.CountyCoverage.Label)
	assert.Equal(t, "2026-10-19", view.AvailableUntil.Value)
	assert.Equal(t, "add", view.SubmitLabel)
	assert.Equal(t, 2, view.Category)
	assert.False(t, view.Submitted)
	assert.Equal(t, []SelectOption{
		{Value: "C1", Label: "County One"},
		{Value: "C2", Label: "County Two", Selected: true},
	}, view.CountyCoverage.Options)
}

func TestToRequest(t *testing.T) {
	form := types.VolunteeringResourceForm{
		Name:           "Jane",
		Category:       4,
		CountyCoverage: []string{"C1"},
	}

	req := ToRequest(form)
	form.CountyCoverage[0] = "C2"

	assert.Equal(t, 4, req.Type)
	assert.Equal(t, []string{"C1"}, req.CountyCoverage)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "editing", StateEditing.String())
	assert.Equal(t, "submitted", StateSubmitted.String())
	assert.Equal(t, "State(9)", State(9).String())
}
