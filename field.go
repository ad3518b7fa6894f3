package fieldset

// Field is one named entry in a form: it knows whether it must be
// supplied and how to turn the raw string value into a typed one.
type Field interface {
	// Name is the key the field binds to in submitted data.
	Name() string

	// Required reports whether a value must be supplied. Fields are
	// required unless their options say otherwise.
	Required() bool

	// Clean coerces the raw value to the field's typed value. A missing
	// or empty raw value yields an error for required fields and
	// (nil, nil) for optional ones.
	Clean(raw string) (any, error)
}

// baseField carries the parts every concrete field shares. Validators
// attached here run when a bound form validates, after Clean succeeds.
type baseField struct {
	name       string
	optional   bool
	validators []Validator
}

func (f *baseField) Name() string { return f.name }

func (f *baseField) Required() bool { return !f.optional }

func (f *baseField) fieldValidators() []Validator { return f.validators }

// requiredError is the uniform failure for a missing required value.
func (f *baseField) requiredError() error {
	return ValidationError{Field: f.name, Message: "This field is required"}
}
