package fieldset

import (
	"strings"
	"time"

	"github.com/fieldset-dev/fieldset/pkg/strtime"
)

// Default input formats tried, in order, when TemporalOptions.Formats
// is empty.
var (
	DefaultDateFormats = []string{
		"yyyy-MM-dd",
		"MM/dd/yyyy",
		"MM/dd/yy",
	}

	DefaultTimeFormats = []string{
		"HH:mm:ss",
		"HH:mm",
	}

	DefaultDateTimeFormats = []string{
		"yyyy-MM-dd HH:mm:ss",
		"yyyy-MM-dd HH:mm",
		"MM/dd/yyyy HH:mm:ss",
		"MM/dd/yyyy HH:mm",
		"MM/dd/yy HH:mm:ss",
		"MM/dd/yy HH:mm",
	}
)

// TemporalOptions configures the date, time and datetime fields.
// Formats are input format strings tried in order; Locale defaults to
// strtime.English when nil.
type TemporalOptions struct {
	Optional   bool
	Formats    []string
	Locale     *strtime.Locale
	Validators []Validator
}

// TemporalField cleans to a time.Time in UTC. The input formats are
// compiled once at construction and tried in order; the first match
// wins. A date-only format yields midnight, a time-only format is
// anchored at 1900-01-01 by the engine's defaults.
type TemporalField struct {
	baseField
	formats []*strtime.CompiledFormat
	badMsg  string
}

// NewDate returns a calendar-date field. A nil opts means defaults.
func NewDate(name string, opts *TemporalOptions) *TemporalField {
	return newTemporal(name, opts, DefaultDateFormats, "Enter a valid date.")
}

// NewTime returns a time-of-day field. A nil opts means defaults.
func NewTime(name string, opts *TemporalOptions) *TemporalField {
	return newTemporal(name, opts, DefaultTimeFormats, "Enter a valid time.")
}

// NewDateTime returns a combined date-and-time field. A nil opts means
// defaults.
func NewDateTime(name string, opts *TemporalOptions) *TemporalField {
	return newTemporal(name, opts, DefaultDateTimeFormats, "Enter a valid date/time.")
}

// newTemporal compiles the format list against the chosen locale. A
// malformed format string panics: formats are part of the form
// definition, so the failure is a programmer error.
func newTemporal(name string, opts *TemporalOptions, defaults []string, badMsg string) *TemporalField {
	if opts == nil {
		opts = &TemporalOptions{}
	}
	loc := strtime.English
	if opts.Locale != nil {
		loc = *opts.Locale
	}
	sources := opts.Formats
	if len(sources) == 0 {
		sources = defaults
	}
	formats := make([]*strtime.CompiledFormat, len(sources))
	for i, src := range sources {
		formats[i] = strtime.MustCompile(src, loc)
	}
	return &TemporalField{
		baseField: baseField{name: name, optional: opts.Optional, validators: opts.Validators},
		formats:   formats,
		badMsg:    badMsg,
	}
}

// Formats returns the source strings of the compiled input formats.
func (f *TemporalField) Formats() []string {
	out := make([]string, len(f.formats))
	for i, cf := range f.formats {
		out[i] = cf.String()
	}
	return out
}

func (f *TemporalField) Clean(raw string) (any, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		if f.Required() {
			return nil, f.requiredError()
		}
		return nil, nil
	}
	ct, err := strtime.ParseAny(s, f.formats...)
	if err != nil {
		return nil, ValidationError{Field: f.name, Message: f.badMsg}
	}
	return ct.Time(time.UTC), nil
}
