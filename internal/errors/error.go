package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/fieldset-dev/fieldset/pkg/strtime"
)

// Category represents the type of error.
type Category string

const (
	CategoryFormat     Category = "format"
	CategoryParse      Category = "parse"
	CategoryRange      Category = "range"
	CategoryValidation Category = "validation"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// Location represents a position in a file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// FieldsetError is a structured error with snippets, suggestions, and documentation.
type FieldsetError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (format, parse, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the file position where the error occurred.
	Location *Location

	// Context contains lines surrounding Location.
	Context []string

	// Snippet is the offending format string or input value.
	Snippet string

	// SnippetPos is the byte offset of the problem within Snippet.
	// Negative means no single position is to blame.
	SnippetPos int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is a format or value showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *FieldsetError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *FieldsetError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file position to the error.
func (e *FieldsetError) WithLocation(file string, line, column int) *FieldsetError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSnippet attaches the offending text and the position of the
// problem within it. Pass a negative pos when no single position
// applies.
func (e *FieldsetError) WithSnippet(snippet string, pos int) *FieldsetError {
	e.Snippet = snippet
	e.SnippetPos = pos
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *FieldsetError) WithSuggestion(s string) *FieldsetError {
	e.Suggestion = s
	return e
}

// WithExample adds an example to the error.
func (e *FieldsetError) WithExample(ex string) *FieldsetError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *FieldsetError) WithDetail(d string) *FieldsetError {
	e.Detail = d
	return e
}

// WithContext adds custom context lines to the error.
func (e *FieldsetError) WithContext(lines []string) *FieldsetError {
	e.Context = lines
	return e
}

// Wrap wraps another error.
func (e *FieldsetError) Wrap(err error) *FieldsetError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a FieldsetError from a registered error code.
func New(code string) *FieldsetError {
	template, ok := registry[code]
	if !ok {
		return &FieldsetError{
			Code:       code,
			Message:    "Unknown error",
			SnippetPos: -1,
		}
	}
	return &FieldsetError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		DocURL:     template.DocURL,
		SnippetPos: -1,
	}
}

// Newf creates a new FieldsetError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *FieldsetError {
	return &FieldsetError{
		Category:   category,
		Message:    fmt.Sprintf(format, args...),
		SnippetPos: -1,
	}
}

// FromError wraps a standard error in a FieldsetError.
func FromError(err error, code string) *FieldsetError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FieldsetError); ok {
		return fe
	}
	return New(code).Wrap(err)
}

// rangeCodes maps strtime range fields to their error codes.
var rangeCodes = map[string]string{
	"month":  "E040",
	"day":    "E041",
	"hour":   "E042",
	"minute": "E043",
	"second": "E044",
}

// FromStrtime converts an error from the strtime package into a coded
// FieldsetError, carrying the offending format as a snippet where the
// source error pins down a position.
func FromStrtime(err error) *FieldsetError {
	if err == nil {
		return nil
	}

	var fmtErr *strtime.FormatError
	if stderrors.As(err, &fmtErr) {
		code := "E004"
		suggestion := ""
		switch {
		case strings.HasPrefix(fmtErr.Reason, "unrecognized directive"):
			code = "E001"
			suggestion = "Quote literal text in single quotes, e.g. 'T'."
		case strings.HasPrefix(fmtErr.Reason, "unterminated"):
			code = "E002"
			suggestion = "Close the literal with a matching ', or write '' for a literal apostrophe."
		case strings.HasPrefix(fmtErr.Reason, "trailing %"):
			code = "E003"
			suggestion = "Write %% for a literal percent sign."
		}
		fe := New(code).WithSnippet(fmtErr.Format, fmtErr.Pos).Wrap(err)
		if suggestion != "" {
			fe = fe.WithSuggestion(suggestion)
		}
		return fe
	}

	var parseErr *strtime.ParseError
	if stderrors.As(err, &parseErr) {
		return New("E020").
			WithDetail(fmt.Sprintf("The value %q does not match the format %q.", parseErr.Input, parseErr.Format)).
			Wrap(err)
	}

	var rangeErr *strtime.RangeError
	if stderrors.As(err, &rangeErr) {
		code, ok := rangeCodes[rangeErr.Field]
		if !ok {
			return Newf(CategoryRange, "%s out of range", rangeErr.Field).Wrap(err)
		}
		return New(code).
			WithDetail(fmt.Sprintf("Got %d, allowed range is [%d, %d].", rangeErr.Value, rangeErr.Min, rangeErr.Max)).
			Wrap(err)
	}

	if stderrors.Is(err, strtime.ErrNoMatch) {
		return New("E021").Wrap(err)
	}

	return New("E020").Wrap(err)
}
