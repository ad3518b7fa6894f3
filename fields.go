package fieldset

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CharOptions configures a CharField. The zero value means required,
// whitespace-trimmed, unbounded length.
type CharOptions struct {
	Optional   bool
	KeepSpace  bool // retain surrounding whitespace instead of trimming
	MinLength  int  // 0 means no lower bound
	MaxLength  int  // 0 means no upper bound
	Validators []Validator
}

// CharField cleans to a string.
type CharField struct {
	baseField
	keepSpace bool
	minLength int
	maxLength int
}

// NewChar returns a text field. A nil opts means defaults.
func NewChar(name string, opts *CharOptions) *CharField {
	if opts == nil {
		opts = &CharOptions{}
	}
	return &CharField{
		baseField: baseField{name: name, optional: opts.Optional, validators: opts.Validators},
		keepSpace: opts.KeepSpace,
		minLength: opts.MinLength,
		maxLength: opts.MaxLength,
	}
}

func (f *CharField) Clean(raw string) (any, error) {
	s := raw
	if !f.keepSpace {
		s = strings.TrimSpace(s)
	}
	if s == "" {
		if f.Required() {
			return nil, f.requiredError()
		}
		return nil, nil
	}
	if n := len([]rune(s)); f.minLength > 0 && n < f.minLength {
		return nil, ValidationError{Field: f.name, Message: fmt.Sprintf("Must be at least %d characters", f.minLength)}
	}
	if n := len([]rune(s)); f.maxLength > 0 && n > f.maxLength {
		return nil, ValidationError{Field: f.name, Message: fmt.Sprintf("Must be at most %d characters", f.maxLength)}
	}
	return s, nil
}

// IntegerOptions configures an IntegerField. Min and Max are inclusive
// bounds; nil means unbounded.
type IntegerOptions struct {
	Optional   bool
	Min        *int64
	Max        *int64
	Validators []Validator
}

// IntegerField cleans to an int64.
type IntegerField struct {
	baseField
	min *int64
	max *int64
}

// NewInteger returns a whole-number field. A nil opts means defaults.
func NewInteger(name string, opts *IntegerOptions) *IntegerField {
	if opts == nil {
		opts = &IntegerOptions{}
	}
	return &IntegerField{
		baseField: baseField{name: name, optional: opts.Optional, validators: opts.Validators},
		min:       opts.Min,
		max:       opts.Max,
	}
}

func (f *IntegerField) Clean(raw string) (any, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		if f.Required() {
			return nil, f.requiredError()
		}
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, ValidationError{Field: f.name, Message: "Enter a whole number."}
	}
	if f.min != nil && n < *f.min {
		return nil, ValidationError{Field: f.name, Message: fmt.Sprintf("Must be at least %d", *f.min)}
	}
	if f.max != nil && n > *f.max {
		return nil, ValidationError{Field: f.name, Message: fmt.Sprintf("Must be at most %d", *f.max)}
	}
	return n, nil
}

// FloatOptions configures a FloatField.
type FloatOptions struct {
	Optional   bool
	Min        *float64
	Max        *float64
	Validators []Validator
}

// FloatField cleans to a float64.
type FloatField struct {
	baseField
	min *float64
	max *float64
}

// NewFloat returns a decimal-number field. A nil opts means defaults.
func NewFloat(name string, opts *FloatOptions) *FloatField {
	if opts == nil {
		opts = &FloatOptions{}
	}
	return &FloatField{
		baseField: baseField{name: name, optional: opts.Optional, validators: opts.Validators},
		min:       opts.Min,
		max:       opts.Max,
	}
}

func (f *FloatField) Clean(raw string) (any, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		if f.Required() {
			return nil, f.requiredError()
		}
		return nil, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, ValidationError{Field: f.name, Message: "Enter a number."}
	}
	if f.min != nil && n < *f.min {
		return nil, ValidationError{Field: f.name, Message: fmt.Sprintf("Must be at least %v", *f.min)}
	}
	if f.max != nil && n > *f.max {
		return nil, ValidationError{Field: f.name, Message: fmt.Sprintf("Must be at most %v", *f.max)}
	}
	return n, nil
}

// BooleanOptions configures a BooleanField.
type BooleanOptions struct {
	Optional   bool
	Validators []Validator
}

// BooleanField cleans to a bool. "true", "on" and "1" are true, case
// insensitively; everything else is false. A required boolean must be
// true, matching checkbox semantics where absent means unchecked.
type BooleanField struct {
	baseField
}

// NewBoolean returns a checkbox-style field. A nil opts means defaults.
func NewBoolean(name string, opts *BooleanOptions) *BooleanField {
	if opts == nil {
		opts = &BooleanOptions{}
	}
	return &BooleanField{
		baseField: baseField{name: name, optional: opts.Optional, validators: opts.Validators},
	}
}

func (f *BooleanField) Clean(raw string) (any, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	v := s == "true" || s == "on" || s == "1"
	if f.Required() && !v {
		return nil, f.requiredError()
	}
	return v, nil
}

// ChoiceOptions configures a ChoiceField.
type ChoiceOptions struct {
	Optional   bool
	Validators []Validator
}

// ChoiceField cleans to a string drawn from a fixed set.
type ChoiceField struct {
	baseField
	choices []string
}

// NewChoice returns a field accepting only the given choices. A nil
// opts means defaults.
func NewChoice(name string, choices []string, opts *ChoiceOptions) *ChoiceField {
	if opts == nil {
		opts = &ChoiceOptions{}
	}
	return &ChoiceField{
		baseField: baseField{name: name, optional: opts.Optional, validators: opts.Validators},
		choices:   choices,
	}
}

// Choices returns the allowed values.
func (f *ChoiceField) Choices() []string {
	out := make([]string, len(f.choices))
	copy(out, f.choices)
	return out
}

func (f *ChoiceField) Clean(raw string) (any, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		if f.Required() {
			return nil, f.requiredError()
		}
		return nil, nil
	}
	for _, c := range f.choices {
		if s == c {
			return s, nil
		}
	}
	return nil, ValidationError{Field: f.name, Message: fmt.Sprintf("Select a valid choice: %q is not one of the available choices.", s)}
}

// emailPattern is a sanity check, not a full address grammar: it wants
// an @ and a dotted domain.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// EmailField is a CharField that additionally checks address shape.
type EmailField struct {
	CharField
}

// NewEmail returns an email-address field. A nil opts means defaults.
func NewEmail(name string, opts *CharOptions) *EmailField {
	return &EmailField{CharField: *NewChar(name, opts)}
}

func (f *EmailField) Clean(raw string) (any, error) {
	v, err := f.CharField.Clean(raw)
	if err != nil || v == nil {
		return v, err
	}
	s := v.(string)
	if !emailPattern.MatchString(s) {
		return nil, ValidationError{Field: f.name, Message: "Enter a valid email address."}
	}
	return s, nil
}

// RegexField is a CharField whose value must match a pattern.
type RegexField struct {
	CharField
	re *regexp.Regexp
}

// NewRegex returns a pattern-checked text field. The pattern is
// compiled once here; an invalid pattern panics, the same
// construction-time contract as New with duplicate field names.
func NewRegex(name string, pattern string, opts *CharOptions) *RegexField {
	return &RegexField{
		CharField: *NewChar(name, opts),
		re:        regexp.MustCompile(pattern),
	}
}

func (f *RegexField) Clean(raw string) (any, error) {
	v, err := f.CharField.Clean(raw)
	if err != nil || v == nil {
		return v, err
	}
	s := v.(string)
	if !f.re.MatchString(s) {
		return nil, ValidationError{Field: f.name, Message: "Enter a valid value."}
	}
	return s, nil
}
