package fieldset

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validator checks a cleaned field value.
type Validator interface {
	// Validate returns nil if the value is acceptable, or an error
	// carrying the message to report.
	Validate(value any) error
}

// ValidatorFunc is a function that implements Validator.
type ValidatorFunc func(value any) error

func (f ValidatorFunc) Validate(value any) error {
	return f(value)
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// MinLength validates that a string has at least n characters.
func MinLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be at least %d characters", n)
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil // empties are the required check's business
		}
		if len([]rune(s)) < n {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MaxLength validates that a string has at most n characters.
func MaxLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be at most %d characters", n)
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if len([]rune(s)) > n {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// Pattern validates that a string matches the given regular expression.
func Pattern(pattern string, msg string) Validator {
	re := regexp.MustCompile(pattern)
	if msg == "" {
		msg = "Invalid format"
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		if !re.MatchString(s) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MinValue validates that a numeric value is at least min.
func MinValue(min any, msg string) Validator {
	limit := toFloat64(min)
	if msg == "" {
		msg = fmt.Sprintf("Must be at least %v", min)
	}
	return ValidatorFunc(func(value any) error {
		if value == nil {
			return nil
		}
		if toFloat64(value) < limit {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MaxValue validates that a numeric value is at most max.
func MaxValue(max any, msg string) Validator {
	limit := toFloat64(max)
	if msg == "" {
		msg = fmt.Sprintf("Must be at most %v", max)
	}
	return ValidatorFunc(func(value any) error {
		if value == nil {
			return nil
		}
		if toFloat64(value) > limit {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// OneOf validates that a string is one of the allowed values.
func OneOf(allowed []string, msg string) Validator {
	if msg == "" {
		msg = "Must be one of: " + strings.Join(allowed, ", ")
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return ValidationError{Message: msg}
	})
}

// DateAfter validates that a time value is after the given time.
func DateAfter(t time.Time, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be after %s", t.Format(time.RFC3339))
	}
	return ValidatorFunc(func(value any) error {
		dt, ok := toTime(value)
		if !ok {
			return nil
		}
		if !dt.After(t) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// DateBefore validates that a time value is before the given time.
func DateBefore(t time.Time, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be before %s", t.Format(time.RFC3339))
	}
	return ValidatorFunc(func(value any) error {
		dt, ok := toTime(value)
		if !ok {
			return nil
		}
		if !dt.Before(t) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// Custom creates a validator from a function.
func Custom(fn func(value any) error) Validator {
	return ValidatorFunc(fn)
}

// toString converts a cleaned value to a string for string-shaped
// validators. Non-string values stringify through fmt.
func toString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// toFloat64 converts a numeric cleaned value to float64.
func toFloat64(value any) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	case float32:
		return float64(v)
	default:
		return 0
	}
}

// toTime extracts a time.Time from a cleaned value. Cleaned temporal
// values are always time.Time, so no string parsing happens here.
func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	}
	return time.Time{}, false
}
