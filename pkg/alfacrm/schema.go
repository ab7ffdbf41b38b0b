package alfacrm

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// FieldType is the declared wire type of a schema field.
type FieldType int

const (
	TypeInt FieldType = iota
	TypeFloat
	TypeString
	TypeBool
	TypeDate
	TypeEnum
	TypeIntList
	TypeStringList
	TypeAny
)

// DateFormat is the wire format of a date field. The upstream API is not
// consistent: some resources expect ISO dates, others dotted day-first dates,
// and the pay filter uses dotted year-first dates.
type DateFormat string

const (
	DateISO       DateFormat = "2006-01-02"
	DateDotted    DateFormat = "02.01.2006"
	DateDottedYMD DateFormat = "2006.01.02"
)

// timePattern matches HH:MM clock values used by lesson and working-hour fields.
var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Field declares one input field: its type, whether it is required, and its
// value constraints. Unknown input fields are always rejected, so a schema's
// field list is the complete accepted surface of an operation.
type Field struct {
	Name     string
	Type     FieldType
	Required bool

	MinValue *float64
	MaxValue *float64
	MinLen   int
	MaxLen   int
	Pattern  *regexp.Regexp
	Values   []string
	Format   DateFormat
}

// Int declares an integer field.
func Int(name string) Field { return Field{Name: name, Type: TypeInt} }

// Float declares a floating point field.
func Float(name string) Field { return Field{Name: name, Type: TypeFloat} }

// Str declares a string field.
func Str(name string) Field { return Field{Name: name, Type: TypeString} }

// Bool declares a boolean field.
func Bool(name string) Field { return Field{Name: name, Type: TypeBool} }

// Date declares a calendar date field normalized to the given wire format.
func Date(name string, format DateFormat) Field {
	return Field{Name: name, Type: TypeDate, Format: format}
}

// Enum declares a field restricted to the given literal values. Integer
// literals are compared by their decimal representation.
func Enum(name string, values ...string) Field {
	return Field{Name: name, Type: TypeEnum, Values: values}
}

// IntList declares a list-of-integers field.
func IntList(name string) Field { return Field{Name: name, Type: TypeIntList} }

// StrList declares a list-of-strings field.
func StrList(name string) Field { return Field{Name: name, Type: TypeStringList} }

// Clock declares an HH:MM string field.
func Clock(name string) Field {
	return Field{Name: name, Type: TypeString, Pattern: timePattern}
}

// Any declares a field that passes through without type checking.
func Any(name string) Field { return Field{Name: name, Type: TypeAny} }

// Req marks the field as required.
func (f Field) Req() Field {
	f.Required = true

	return f
}

// Min sets the minimum accepted numeric value (inclusive).
func (f Field) Min(v float64) Field {
	f.MinValue = &v

	return f
}

// Max sets the maximum accepted numeric value (inclusive).
func (f Field) Max(v float64) Field {
	f.MaxValue = &v

	return f
}

// Between sets the inclusive numeric bounds.
func (f Field) Between(min, max float64) Field {
	return f.Min(min).Max(max)
}

// Len sets the accepted string length range.
func (f Field) Len(min, max int) Field {
	f.MinLen = min
	f.MaxLen = max

	return f
}

// Match sets a regexp the string value must fully satisfy.
func (f Field) Match(pattern string) Field {
	f.Pattern = regexp.MustCompile(pattern)

	return f
}

// Rule is a cross-field check run after all per-field checks passed for the
// fields it inspects. It returns nil when satisfied.
type Rule func(fields Params) *FieldViolation

// Schema is the declared shape of one operation's input: an ordered field list
// plus cross-field rules. A nil *Schema means raw pass-through (the resource
// has no declared shape for that operation).
type Schema struct {
	Fields []Field
	Rules  []Rule
}

// NewSchema builds a schema from the given fields.
func NewSchema(fields ...Field) *Schema {
	return &Schema{Fields: fields}
}

// WithRules attaches cross-field rules, run in order after per-field checks.
func (s *Schema) WithRules(rules ...Rule) *Schema {
	s.Rules = append(s.Rules, rules...)

	return s
}

// Validate checks raw input against the schema and returns the normalized
// field map: dates rendered in their wire format, nils omitted, unknown fields
// rejected. All violations are collected into a single ValidationError.
func (s *Schema) Validate(input Params) (Params, error) {
	byName := make(map[string]Field, len(s.Fields))
	for _, f := range s.Fields {
		byName[f.Name] = f
	}

	var violations []FieldViolation

	out := make(Params, len(input))

	for name, value := range input {
		field, known := byName[name]
		if !known {
			violations = append(violations, FieldViolation{Field: name, Message: "unknown field"})

			continue
		}

		if value == nil {
			continue
		}

		normalized, violation := field.check(value)
		if violation != nil {
			violations = append(violations, *violation)

			continue
		}

		out[name] = normalized
	}

	for _, f := range s.Fields {
		if !f.Required {
			continue
		}

		if _, present := out[f.Name]; !present {
			violations = append(violations, FieldViolation{Field: f.Name, Message: "field is required"})
		}
	}

	if len(violations) == 0 {
		for _, rule := range s.Rules {
			if violation := rule(out); violation != nil {
				violations = append(violations, *violation)
			}
		}
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	return out, nil
}

func (f Field) check(value interface{}) (interface{}, *FieldViolation) {
	switch f.Type {
	case TypeInt:
		n, ok := asInt(value)
		if !ok {
			return nil, f.violation("must be an integer")
		}

		return f.checkBounds(float64(n), n)

	case TypeFloat:
		n, ok := asFloat(value)
		if !ok {
			return nil, f.violation("must be a number")
		}

		return f.checkBounds(n, n)

	case TypeString:
		str, ok := value.(string)
		if !ok {
			return nil, f.violation("must be a string")
		}

		return f.checkString(str)

	case TypeBool:
		b, ok := value.(bool)
		if !ok {
			return nil, f.violation("must be a boolean")
		}

		return b, nil

	case TypeDate:
		return f.checkDate(value)

	case TypeEnum:
		return f.checkEnum(value)

	case TypeIntList:
		list, ok := asIntList(value)
		if !ok {
			return nil, f.violation("must be a list of integers")
		}

		return list, nil

	case TypeStringList:
		list, ok := asStringList(value)
		if !ok {
			return nil, f.violation("must be a list of strings")
		}

		return list, nil

	default:
		return value, nil
	}
}

func (f Field) checkBounds(n float64, normalized interface{}) (interface{}, *FieldViolation) {
	if f.MinValue != nil && n < *f.MinValue {
		return nil, f.violation(fmt.Sprintf("must be >= %v", *f.MinValue))
	}

	if f.MaxValue != nil && n > *f.MaxValue {
		return nil, f.violation(fmt.Sprintf("must be <= %v", *f.MaxValue))
	}

	return normalized, nil
}

func (f Field) checkString(str string) (interface{}, *FieldViolation) {
	if f.MinLen > 0 && len([]rune(str)) < f.MinLen {
		return nil, f.violation(fmt.Sprintf("must be at least %d characters", f.MinLen))
	}

	if f.MaxLen > 0 && len([]rune(str)) > f.MaxLen {
		return nil, f.violation(fmt.Sprintf("must be at most %d characters", f.MaxLen))
	}

	if f.Pattern != nil && !f.Pattern.MatchString(str) {
		return nil, f.violation(fmt.Sprintf("must match %s", f.Pattern.String()))
	}

	return str, nil
}

func (f Field) checkDate(value interface{}) (interface{}, *FieldViolation) {
	format := f.Format
	if format == "" {
		format = DateISO
	}

	switch v := value.(type) {
	case time.Time:
		return v.Format(string(format)), nil
	case string:
		if _, err := time.Parse(string(format), v); err != nil {
			return nil, f.violation("invalid date, expected format " + formatHint(format))
		}

		return v, nil
	default:
		return nil, f.violation("must be a date")
	}
}

func (f Field) checkEnum(value interface{}) (interface{}, *FieldViolation) {
	literal := ""

	switch v := value.(type) {
	case string:
		literal = v
	default:
		n, ok := asInt(value)
		if !ok {
			return nil, f.violation("invalid value")
		}

		literal = strconv.Itoa(n)
	}

	for _, allowed := range f.Values {
		if literal == allowed {
			return value, nil
		}
	}

	return nil, f.violation(fmt.Sprintf("must be one of %v", f.Values))
}

func (f Field) violation(message string) *FieldViolation {
	return &FieldViolation{Field: f.Name, Message: message}
}

func formatHint(format DateFormat) string {
	switch format {
	case DateDotted:
		return "DD.MM.YYYY"
	case DateDottedYMD:
		return "YYYY.MM.DD"
	default:
		return "YYYY-MM-DD"
	}
}

// NumericRange checks to >= from when both fields are present.
func NumericRange(from, to string) Rule {
	return func(fields Params) *FieldViolation {
		a, okFrom := asFloat(fields[from])
		b, okTo := asFloat(fields[to])

		if okFrom && okTo && b < a {
			return &FieldViolation{Field: to, Message: fmt.Sprintf("%s must be >= %s", to, from)}
		}

		return nil
	}
}

// DateRange checks to >= from for two date fields sharing one wire format.
// Both values are already normalized strings when the rule runs.
func DateRange(from, to string, format DateFormat) Rule {
	return func(fields Params) *FieldViolation {
		a, okFrom := fields[from].(string)
		b, okTo := fields[to].(string)

		if !okFrom || !okTo {
			return nil
		}

		ta, errA := time.Parse(string(format), a)
		tb, errB := time.Parse(string(format), b)

		if errA == nil && errB == nil && tb.Before(ta) {
			return &FieldViolation{Field: to, Message: fmt.Sprintf("%s must be >= %s", to, from)}
		}

		return nil
	}
}

// ClockRange checks that an HH:MM end value is strictly after the start value.
func ClockRange(from, to string) Rule {
	return func(fields Params) *FieldViolation {
		a, okFrom := fields[from].(string)
		b, okTo := fields[to].(string)

		if okFrom && okTo && b <= a {
			return &FieldViolation{Field: to, Message: fmt.Sprintf("%s must be after %s", to, from)}
		}

		return nil
	}
}

func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	case float32:
		if float64(v) == float64(int(v)) {
			return int(v), true
		}
	}

	return 0, false
}

func asFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}

	return 0, false
}

func asIntList(value interface{}) ([]int, bool) {
	switch v := value.(type) {
	case []int:
		return v, true
	case []interface{}:
		out := make([]int, 0, len(v))

		for _, item := range v {
			n, ok := asInt(item)
			if !ok {
				return nil, false
			}

			out = append(out, n)
		}

		return out, true
	}

	return nil, false
}

func asStringList(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))

		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}

			out = append(out, str)
		}

		return out, true
	}

	return nil, false
}
