package volunteering

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idTranslator returns message identifiers unchanged.
type idTranslator struct{}

func (idTranslator) T(id string) string { return id }
func (idTranslator) Locale() string     { return "id" }

func validCandidate() map[string]any {
	return map[string]any{
		FieldName:           "Jane",
		FieldCategory:       2,
		FieldTown:           "Springfield",
		FieldDescription:    "Weekend driver",
		FieldAvailableUntil: "2026-12-31",
		FieldCountyCoverage: []string{"C1", "C2"},
	}
}

func TestValidate_ValidCandidate(t *testing.T) {
	s := NewVolunteeringSchema(idTranslator{})
	assert.Nil(t, s.Validate(validCandidate()))
}

func TestValidate_OptionalFieldsAbsent(t *testing.T) {
	s := NewVolunteeringSchema(idTranslator{})
	candidate := map[string]any{
		FieldName:           "Jane",
		FieldCategory:       0,
		FieldCountyCoverage: []string{"C1"},
	}
	assert.Nil(t, s.Validate(candidate))

	candidate[FieldTown] = ""
	candidate[FieldDescription] = ""
	candidate[FieldAvailableUntil] = ""
	assert.Nil(t, s.Validate(candidate))
}

func TestValidate_Name(t *testing.T) {
	s := NewVolunteeringSchema(idTranslator{})

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"missing", nil, MsgNameRequired},
		{"empty", "", MsgNameRequired},
		{"not text", 42, MsgMustBeString},
		{"zero", 0, MsgMustBeString},
		{"false", false, MsgMustBeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validCandidate()
			if tt.value == nil {
				delete(candidate, FieldName)
			} else {
				candidate[FieldName] = tt.value
			}

			errs := s.Validate(candidate)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[FieldName].MessageID)
		})
	}
}

func TestValidate_Category(t *testing.T) {
	s := NewVolunteeringSchema(idTranslator{})

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"missing", nil, MsgTypeRequired},
		{"not numeric", "abc", MsgMustBeNumber},
		{"fraction", 2.5, MsgMustBeNumber},
		{"not finite", math.Inf(1), MsgMustBeNumber},
		{"bool", true, MsgMustBeNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validCandidate()
			if tt.value == nil {
				delete(candidate, FieldCategory)
			} else {
				candidate[FieldCategory] = tt.value
			}

			errs := s.Validate(candidate)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[FieldCategory].MessageID)
		})
	}
}

func TestValidate_CategoryNumericForms(t *testing.T) {
	s := NewVolunteeringSchema(idTranslator{})

	for _, value := range []any{2, float64(2), "2", int64(7)} {
		candidate := validCandidate()
		candidate[FieldCategory] = value
		assert.Nil(t, s.Validate(candidate), "category %#v", value)
	}
}

func TestValidate_OptionalTextFields(t *testing.T) {
	s := NewVolunteeringSchema(idTranslator{})

	for _, field := range []string{FieldTown, FieldDescription, FieldAvailableUntil} {
		for _, value := range []any{12, 0, 0.0, false, true} {
			candidate := validCandidate()
			candidate[field] = value

			errs := s.Validate(candidate)
			require.Len(t, errs, 1, "%s = %#v", field, value)
			assert.Equal(t, MsgMustBeString, errs[field].MessageID, "%s = %#v", field, value)
		}
	}
}

func TestValidate_AvailableUntilNotADate(t *testing.T) {
	s := NewVolunteeringSchema(idTranslator{})

	candidate := validCandidate()
	candidate[FieldAvailableUntil] = "2026-02-30"

	errs := s.Validate(candidate)
	require.Len(t, errs, 1)
	assert.Equal(t, MsgDateInvalid, errs[FieldAvailableUntil].MessageID)
}

func TestValidate_CountyCoverage(t *testing.T) {
	s := NewVolunteeringSchema(idTranslator{})

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"missing", nil, MsgCountyMinOne},
		{"nil slice", []string(nil), MsgCountyMinOne},
		{"empty", []string{}, MsgCountyMinOne},
		{"empty json array", []any{}, MsgCountyMinOne},
		{"not a list", "C1", MsgMustBeList},
		{"element not text", []any{"C1", 3}, MsgCountyInvalid},
		{"empty element", []string{""}, MsgCountyInvalid},
		{"pointer element", []*string{ptr("C1")}, MsgCountyInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validCandidate()
			if tt.value == nil {
				delete(candidate, FieldCountyCoverage)
			} else {
				candidate[FieldCountyCoverage] = tt.value
			}

			errs := s.Validate(candidate)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[FieldCountyCoverage].MessageID)
		})
	}
}

func TestValidate_RestrictedCounties(t *testing.T) {
	s := NewVolunteeringSchema(idTranslator{}, "C1", "C2")

	candidate := validCandidate()
	assert.Nil(t, s.Validate(candidate))

	candidate[FieldCountyCoverage] = []string{"C1", "C9"}
	errs := s.Validate(candidate)
	require.Len(t, errs, 1)
	assert.Equal(t, MsgCountyInvalid, errs[FieldCountyCoverage].MessageID)

	candidate[FieldCountyCoverage] = []*string{ptr("C1")}
	errs = s.Validate(candidate)
	require.Len(t, errs, 1)
	assert.Equal(t, MsgCountyInvalid, errs[FieldCountyCoverage].MessageID)
}

func ptr(s string) *string {
	return &s
}

func TestValidate_FieldsIndependent(t *testing.T) {
	s := NewVolunteeringSchema(idTranslator{})

	errs := s.Validate(map[string]any{
		FieldCategory: "x",
		FieldTown:     7,
	})

	assert.Equal(t, MsgNameRequired, errs[FieldName].MessageID)
	assert.Equal(t, MsgMustBeNumber, errs[FieldCategory].MessageID)
	assert.Equal(t, MsgMustBeString, errs[FieldTown].MessageID)
	assert.Equal(t, MsgCountyMinOne, errs[FieldCountyCoverage].MessageID)
	assert.NotContains(t, errs, FieldDescription)
	assert.NotContains(t, errs, FieldAvailableUntil)
}

func TestValidate_TranslatesMessages(t *testing.T) {
	tr := mapTranslator{MsgNameRequired: "Name is required"}
	s := NewVolunteeringSchema(tr)

	candidate := validCandidate()
	candidate[FieldName] = ""

	errs := s.Validate(candidate)
	assert.Equal(t, "Name is required", errs.Message(FieldName))
	assert.Equal(t, map[string]string{FieldName: "Name is required"}, errs.Messages())
}

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{
		FieldName:           {Field: FieldName, Message: "name is required"},
		FieldCountyCoverage: {Field: FieldCountyCoverage, Message: "select at least one county"},
	}

	assert.Equal(t,
		"validation failed: county_coverage: select at least one county; name: name is required",
		errs.Error())
}

func TestDecode(t *testing.T) {
	form := Decode(map[string]any{
		FieldName:           "Jane",
		FieldCategory:       float64(3),
		FieldCountyCoverage: []any{"C1", "C2"},
	})

	assert.Equal(t, "Jane", form.Name)
	assert.Equal(t, 3, form.Category)
	assert.Equal(t, "", form.Town)
	assert.Equal(t, []string{"C1", "C2"}, form.CountyCoverage)
}

type mapTranslator map[string]string

func (m mapTranslator) T(id string) string {
	if text, ok := m[id]; ok {
		return text
	}
	return id
}

func (m mapTranslator) Locale() string { return "test" }
