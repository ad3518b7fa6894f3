package strtime

import (
	"errors"
	"fmt"
)

// ErrNoMatch is wrapped by the error ParseAny returns when every
// candidate format has been tried without success.
var ErrNoMatch = errors.New("strtime: value does not match any supplied format")

// FormatError reports a malformed format string or layout: an
// unrecognized directive token, an unterminated quoted literal, or an
// incomplete trailing directive.
type FormatError struct {
	// Format is the offending format or layout string.
	Format string

	// Pos is the byte offset of the offending token within Format.
	Pos int

	// Token is the offending token text, if the problem is tied to one.
	Token string

	// Reason describes what is wrong with the token.
	Reason string
}

func (e *FormatError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("strtime: format %q: %s %q at offset %d", e.Format, e.Reason, e.Token, e.Pos)
	}
	return fmt.Sprintf("strtime: format %q: %s at offset %d", e.Format, e.Reason, e.Pos)
}

// ParseError reports input text that does not match a compiled format.
type ParseError struct {
	// Format is the source format string of the CompiledFormat.
	Format string

	// Input is the text that failed to match.
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("strtime: input %q does not match format %q", e.Input, e.Format)
}

// RangeError reports a captured field value outside its valid range,
// including the calendar-aware day-of-month check.
type RangeError struct {
	// Field names the offending field: "month", "day", "hour",
	// "minute" or "second".
	Field string

	// Value is the out-of-range value that was captured.
	Value int

	// Min and Max are the bounds Value violated. For the day field the
	// bounds reflect the resolved month and year.
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("strtime: %s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}
