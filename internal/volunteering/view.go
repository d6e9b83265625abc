package volunteering

import "fmt"

// FieldView is one labelled input with its current value and error.
type FieldView struct {
	Name  string
	Label string
	Value string
	Error string
}

// SelectOption is one entry of a multi-select.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// MultiSelectView is a FieldView rendered as a multi-select.
type MultiSelectView struct {
	FieldView
	Options []SelectOption
}

// DialogView is everything the dialog template needs to render.
type DialogView struct {
	Title          string
	Category       int
	Submitted      bool
	Name           FieldView
	CountyCoverage MultiSelectView
	Town           FieldView
	Description    FieldView
	AvailableUntil FieldView
	SubmitLabel    string
}

// View renders the dialog with translated labels and the errors of the
// last failed submit.
func (d *Dialog) View() DialogView {
	c := d.controller
	errs := c.Errors()

	field := func(name, label string) FieldView {
		return FieldView{
			Name:  name,
			Label: d.tr.T(label),
			Value: display(c.Get(name)),
			Error: errs.Message(name),
		}
	}

	selected := map[string]bool{}
	for _, id := range toStrings(c.Get(FieldCountyCoverage)) {
		selected[id] = true
	}

	options := make([]SelectOption, len(d.counties))
	for i, county := range d.counties {
		options[i] = SelectOption{
			Value:    county.ID,
			Label:    county.Label,
			Selected: selected[county.ID],
		}
	}

	return DialogView{
		Title:     d.tr.T("signup.volunteering.title"),
		Category:  d.category,
		Submitted: d.state == StateSubmitted,
		Name:      field(FieldName, "signup.volunteering.name"),
		CountyCoverage: MultiSelectView{
			FieldView: field(FieldCountyCoverage, "signup.other.county_coverage"),
			Options:   options,
		},
		Town:           field(FieldTown, "signup.volunteering.town"),
		Description:    field(FieldDescription, "signup.volunteering.description"),
		AvailableUntil: field(FieldAvailableUntil, "signup.volunteering.available_until"),
		SubmitLabel:    d.tr.T("add"),
	}
}

func display(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string, []any:
		return ""
	}
	return fmt.Sprint(v)
}
