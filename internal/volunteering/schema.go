package volunteering

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"donatehub/internal/i18n"
	"donatehub/pkg/types"

	"github.com/go-playground/validator/v10"
)

const (
	FieldName           = "name"
	FieldCategory       = "category"
	FieldTown           = "town"
	FieldDescription    = "description"
	FieldAvailableUntil = "available_until"
	FieldCountyCoverage = "county_coverage"
)

// DateLayout is the ISO calendar date form used for available_until.
const DateLayout = "2006-01-02"

const (
	MsgNameRequired  = "error.name.required"
	MsgMustBeNumber  = "error.must.be.number"
	MsgTypeRequired  = "error.type.required"
	MsgMustBeString  = "error.must.be.string"
	MsgMustBeList    = "error.must.be.list"
	MsgDateInvalid   = "error.date.invalid"
	MsgCountyMinOne  = "error.county.minOne"
	MsgCountyInvalid = "error.county.invalid"
	MsgInvalid       = "error.invalid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	custom := map[string]validator.Func{
		"text":     isText,
		"list":     isList,
		"integral": isIntegral,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return v
}

func isText(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String
}

func isList(fl validator.FieldLevel) bool {
	kind := fl.Field().Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

func isIntegral(fl validator.FieldLevel) bool {
	_, ok := toInt(fl.Field())
	return ok
}

// Rule binds one field to a validator tag expression. A missing value fails
// with the "required" message when Required is set and passes otherwise.
// Optional rules also skip an empty string; any other value, zero or not,
// goes through Tags.
// Each, when set, is evaluated against every element of a list value once
// Tags has passed. Messages maps the failing tag to a message identifier.
type Rule struct {
	Field       string
	Required    bool
	Optional    bool
	Tags        string
	Each        string
	Messages    map[string]string
	EachMessage string
}

func (r Rule) message(tag string) string {
	if id, ok := r.Messages[tag]; ok {
		return id
	}
	return MsgInvalid
}

// VolunteeringRules is the rule list of the volunteering signup dialog.
func VolunteeringRules() []Rule {
	return []Rule{
		{
			Field:    FieldName,
			Required: true,
			Tags:     "text,required",
			Messages: map[string]string{
				"required": MsgNameRequired,
				"text":     MsgMustBeString,
			},
		},
		{
			Field:    FieldCategory,
			Required: true,
			Tags:     "numeric,integral",
			Messages: map[string]string{
				"required": MsgTypeRequired,
				"numeric":  MsgMustBeNumber,
				"integral": MsgMustBeNumber,
			},
		},
		{
			Field:    FieldTown,
			Optional: true,
			Tags:     "text",
			Messages: map[string]string{"text": MsgMustBeString},
		},
		{
			Field:    FieldDescription,
			Optional: true,
			Tags:     "text",
			Messages: map[string]string{"text": MsgMustBeString},
		},
		{
			Field:    FieldAvailableUntil,
			Optional: true,
			Tags:     "text,datetime=" + DateLayout,
			Messages: map[string]string{
				"text":     MsgMustBeString,
				"datetime": MsgDateInvalid,
			},
		},
		{
			Field:    FieldCountyCoverage,
			Required: true,
			Tags:     "list,min=1",
			Each:     "required,text",
			Messages: map[string]string{
				"required": MsgCountyMinOne,
				"list":     MsgMustBeList,
				"min":      MsgCountyMinOne,
			},
			EachMessage: MsgCountyInvalid,
		},
	}
}

// Schema evaluates a rule list against an untyped candidate. Rules are
// independent of each other; the first failing tag of a rule decides the
// message for its field.
type Schema struct {
	rules []Rule
	tr    i18n.Translator
	known map[string]map[string]bool
}

func NewSchema(tr i18n.Translator, rules ...Rule) *Schema {
	return &Schema{
		rules: rules,
		tr:    tr,
		known: map[string]map[string]bool{},
	}
}

// NewVolunteeringSchema builds the dialog schema. When counties are given,
// county_coverage may only hold their identifiers.
func NewVolunteeringSchema(tr i18n.Translator, countyIDs ...string) *Schema {
	s := NewSchema(tr, VolunteeringRules()...)
	if len(countyIDs) > 0 {
		s.Restrict(FieldCountyCoverage, countyIDs...)
	}
	return s
}

// Restrict limits the elements of a list field to the given values.
func (s *Schema) Restrict(field string, values ...string) {
	allowed := make(map[string]bool, len(values))
	for _, v := range values {
		allowed[v] = true
	}
	s.known[field] = allowed
}

// Validate returns nil when every rule passes.
func (s *Schema) Validate(candidate map[string]any) FieldErrors {
	var errs FieldErrors
	for _, rule := range s.rules {
		id, failed := s.check(rule, candidate[rule.Field])
		if !failed {
			continue
		}

		if errs == nil {
			errs = FieldErrors{}
		}
		errs[rule.Field] = FieldError{
			Field:     rule.Field,
			MessageID: id,
			Message:   s.tr.T(id),
		}
	}

	return errs
}

func (s *Schema) check(rule Rule, value any) (string, bool) {
	if isMissing(value) {
		if rule.Required {
			return rule.message("required"), true
		}
		return "", false
	}
	if rule.Optional && value == "" {
		return "", false
	}

	if tag, failed := failingTag(value, rule.Tags); failed {
		return rule.message(tag), true
	}

	if rule.Each == "" {
		return "", false
	}

	list := reflect.ValueOf(value)
	if list.Kind() != reflect.Slice && list.Kind() != reflect.Array {
		return "", false
	}

	allowed := s.known[rule.Field]
	for i := 0; i < list.Len(); i++ {
		elem := list.Index(i).Interface()
		id, ok := elem.(string)
		if !ok {
			return rule.EachMessage, true
		}
		if _, failed := failingTag(id, rule.Each); failed {
			return rule.EachMessage, true
		}
		if allowed != nil && !allowed[id] {
			return rule.EachMessage, true
		}
	}

	return "", false
}

func isMissing(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func failingTag(value any, tags string) (string, bool) {
	if tags == "" {
		return "", false
	}

	err := validate.Var(value, tags)
	if err == nil {
		return "", false
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag(), true
	}

	return "", true
}

// FieldError is a validation message attached to one form field.
type FieldError struct {
	Field     string `json:"field"`
	MessageID string `json:"message_id"`
	Message   string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors is keyed by field name.
type FieldErrors map[string]FieldError

func (e FieldErrors) Error() string {
	fields := e.Fields()
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = e[field].Error()
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the names of the failing fields in sorted order.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Message returns the translated message for field, or "".
func (e FieldErrors) Message(field string) string {
	return e[field].Message
}

func (e FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(e))
	for field, fe := range e {
		out[field] = fe.Message
	}
	return out
}

// Decode converts a candidate that passed Validate into the typed form.
func Decode(candidate map[string]any) types.VolunteeringResourceForm {
	category, _ := toInt(reflect.ValueOf(candidate[FieldCategory]))

	return types.VolunteeringResourceForm{
		Name:           toString(candidate[FieldName]),
		Category:       category,
		Town:           toString(candidate[FieldTown]),
		Description:    toString(candidate[FieldDescription]),
		AvailableUntil: toString(candidate[FieldAvailableUntil]),
		CountyCoverage: toStrings(candidate[FieldCountyCoverage]),
	}
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

func toStrings(v any) []string {
	list := reflect.ValueOf(v)
	if list.Kind() != reflect.Slice && list.Kind() != reflect.Array {
		return []string{}
	}

	out := make([]string, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		if s, ok := list.Index(i).Interface().(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toInt(v reflect.Value) (int, bool) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() > math.MaxInt32 || v.Int() < math.MinInt32 {
			return 0, false
		}
		return int(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > math.MaxInt32 {
			return 0, false
		}
		return int(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return floatToInt(v.Float())
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	}

	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
