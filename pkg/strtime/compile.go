package strtime

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// CompiledFormat is a format string compiled against a locale: the
// derived match pattern plus the ordered sequence of directives whose
// captures the pattern produces. It is immutable after Compile returns
// and safe for concurrent use by multiple goroutines.
type CompiledFormat struct {
	format string
	locale Locale
	re     *regexp2.Regexp
	seq    []directive
}

// Compile turns a format string into a CompiledFormat using the
// supplied locale table. It returns a *FormatError if the format
// contains an unrecognized directive token or an unterminated quoted
// literal.
//
// Compilation is the expensive step; callers are expected to compile
// each distinct format once and reuse the result across parses.
func Compile(format string, loc Locale) (*CompiledFormat, error) {
	var pat strings.Builder
	var seq []directive

	pat.WriteString(`\A`)

	for i := 0; i < len(format); {
		c := format[i]
		switch {
		case c == '\'':
			lit, next, ok := scanQuoted(format, i)
			if !ok {
				return nil, &FormatError{
					Format: format,
					Pos:    i,
					Reason: "unterminated quoted literal",
				}
			}
			pat.WriteString(regexp.QuoteMeta(lit))
			i = next

		case isFormatLetter(c):
			start := i
			for i < len(format) && format[i] == c {
				i++
			}
			run := format[start:i]
			d, ok := directiveFor(c, len(run))
			if !ok {
				return nil, &FormatError{
					Format: format,
					Pos:    start,
					Token:  run,
					Reason: "unrecognized directive",
				}
			}
			pat.WriteString(d.pattern(loc))
			seq = append(seq, d)

		case isSpace(c):
			// A whitespace run in the format is one separator that
			// tolerates any whitespace run in the input.
			for i < len(format) && isSpace(format[i]) {
				i++
			}
			pat.WriteString(`\s+`)

		default:
			pat.WriteString(regexp.QuoteMeta(string(c)))
			i++
		}
	}

	pat.WriteString(`\z`)

	re, err := regexp2.Compile(pat.String(), regexp2.None)
	if err != nil {
		return nil, &FormatError{
			Format: format,
			Reason: "pattern construction failed: " + err.Error(),
		}
	}

	return &CompiledFormat{
		format: format,
		locale: loc,
		re:     re,
		seq:    seq,
	}, nil
}

// MustCompile is like Compile but panics on error. Intended for
// package-level variables holding well-known formats.
func MustCompile(format string, loc Locale) *CompiledFormat {
	cf, err := Compile(format, loc)
	if err != nil {
		panic(err)
	}
	return cf
}

// String returns the source format string.
func (cf *CompiledFormat) String() string {
	return cf.format
}

// scanQuoted consumes a quoted literal starting at the apostrophe at
// format[i]. A doubled apostrophe is a literal apostrophe, both inside
// quotes and standing alone. Returns the literal text, the index after
// the closing quote, and whether the quote was terminated.
func scanQuoted(format string, i int) (string, int, bool) {
	// Standalone '' outside a quoted section.
	if i+1 < len(format) && format[i+1] == '\'' {
		return "'", i + 2, true
	}

	var lit strings.Builder
	i++ // opening quote
	for i < len(format) {
		if format[i] == '\'' {
			if i+1 < len(format) && format[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			return lit.String(), i + 1, true
		}
		lit.WriteByte(format[i])
		i++
	}
	return "", i, false
}

func isFormatLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
