package fieldset

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// Form is an immutable roster of fields. Declare it once, then Bind it
// to each incoming payload; a Form itself never holds submitted data,
// so one instance serves concurrent requests.
type Form struct {
	fields []Field
	byName map[string]Field
}

// New builds a form from the given fields. It panics on an empty or
// duplicate field name: the roster is part of the program, not input.
func New(fields ...Field) *Form {
	f := &Form{
		fields: fields,
		byName: make(map[string]Field, len(fields)),
	}
	for _, fld := range fields {
		name := fld.Name()
		if name == "" {
			panic("fieldset: field with empty name")
		}
		if _, dup := f.byName[name]; dup {
			panic(fmt.Sprintf("fieldset: duplicate field name %q", name))
		}
		f.byName[name] = fld
	}
	return f
}

// Fields returns the fields in declaration order.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Field returns the named field.
func (f *Form) Field(name string) (Field, bool) {
	fld, ok := f.byName[name]
	return fld, ok
}

// Bind pairs the form with submitted key/value data.
func (f *Form) Bind(data url.Values) *BoundForm {
	return &BoundForm{form: f, raw: data}
}

// BindRequest binds the form to an HTTP request body, handling both
// form-encoded and multipart payloads. Multipart file parts are routed
// to fields implementing UploadCleaner.
func (f *Form) BindRequest(r *http.Request) (*BoundForm, error) {
	ctype := r.Header.Get("Content-Type")
	if strings.HasPrefix(ctype, "multipart/") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, fmt.Errorf("parsing multipart form: %w", err)
		}
		return &BoundForm{
			form:  f,
			raw:   url.Values(r.MultipartForm.Value),
			files: r.MultipartForm.File,
		}, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parsing form: %w", err)
	}
	return &BoundForm{form: f, raw: r.PostForm}, nil
}

// BoundForm is one submission bound to a form. Validate cleans every
// field exactly once; the accessors re-trigger it as needed, so they
// are safe to call in any order.
type BoundForm struct {
	form    *Form
	raw     url.Values
	files   map[string][]*multipart.FileHeader
	cleaned map[string]any
	errs    Errors
	done    bool
}

// withValidators is satisfied by every field built on baseField.
type withValidators interface {
	fieldValidators() []Validator
}

// Validate runs the full clean pipeline once and reports whether the
// submission is valid. Later calls reuse the first run's outcome.
func (b *BoundForm) Validate() bool {
	if !b.done {
		b.clean()
		b.done = true
	}
	return len(b.errs) == 0
}

func (b *BoundForm) clean() {
	b.cleaned = make(map[string]any, len(b.form.fields))
	if b.errs == nil {
		b.errs = make(Errors)
	}

	for _, fld := range b.form.fields {
		name := fld.Name()

		var value any
		var err error
		if uc, ok := fld.(UploadCleaner); ok && len(b.files[name]) > 0 {
			value, err = uc.CleanUpload(b.files[name][0])
		} else {
			value, err = fld.Clean(b.raw.Get(name))
		}
		if err != nil {
			b.errs.Add(name, err.Error())
			continue
		}
		b.cleaned[name] = value

		// Optional fields that stayed empty skip their validators.
		if value == nil {
			continue
		}
		if wv, ok := fld.(withValidators); ok {
			for _, v := range wv.fieldValidators() {
				if verr := v.Validate(value); verr != nil {
					b.errs.Add(name, verr.Error())
				}
			}
		}
	}
}

// Errors returns the accumulated validation errors, keyed by field
// name. The map is live: AddError writes into it.
func (b *BoundForm) Errors() Errors {
	b.Validate()
	return b.errs
}

// CleanedData returns the typed values of every field that cleaned
// successfully.
func (b *BoundForm) CleanedData() map[string]any {
	b.Validate()
	return b.cleaned
}

// Value returns the cleaned value of one field, or nil if the field is
// unknown or failed to clean.
func (b *BoundForm) Value(name string) any {
	b.Validate()
	return b.cleaned[name]
}

// RawValue returns the submitted string for a field, before cleaning.
func (b *BoundForm) RawValue(name string) string {
	return b.raw.Get(name)
}

// AddError records an extra error against a field, for checks that
// live outside the field roster.
func (b *BoundForm) AddError(name, msg string) {
	if b.errs == nil {
		b.errs = make(Errors)
	}
	b.errs.Add(name, msg)
}

// Errors maps field names to their error messages.
type Errors map[string][]string

// Add appends a message to a field's error list.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Has reports whether the field has any errors.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// First returns the field's first error message, or "".
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}
