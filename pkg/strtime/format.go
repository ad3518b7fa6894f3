package strtime

import (
	"fmt"
	"strings"
	"time"
)

// Format renders t according to a %-directive layout. The layout
// language is independent of the parse-direction one:
//
//	%Y  four-digit year, zero-padded
//	%y  two-digit year (year modulo 100), zero-padded
//	%m  month 01-12
//	%d  day 01-31
//	%H  hour 00-23
//	%M  minute 00-59
//	%S  second 00-59
//	%%  literal percent sign
//
// A percent followed by an unrecognized byte contributes nothing to
// the output. A percent at the very end of the layout has no verb to
// consume and is a *FormatError.
func Format(t time.Time, layout string) (string, error) {
	var b strings.Builder
	b.Grow(len(layout) + 8)

	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(layout) {
			return "", &FormatError{
				Format: layout,
				Pos:    i - 1,
				Reason: "trailing % with no directive",
			}
		}
		switch layout[i] {
		case 'Y':
			fmt.Fprintf(&b, "%04d", t.Year())
		case 'y':
			fmt.Fprintf(&b, "%02d", t.Year()%100)
		case 'm':
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case 'd':
			fmt.Fprintf(&b, "%02d", t.Day())
		case 'H':
			fmt.Fprintf(&b, "%02d", t.Hour())
		case 'M':
			fmt.Fprintf(&b, "%02d", t.Minute())
		case 'S':
			fmt.Fprintf(&b, "%02d", t.Second())
		case '%':
			b.WriteByte('%')
		default:
			// Unknown directive, contributes nothing.
		}
	}
	return b.String(), nil
}

// FormatCanonical renders a parsed record without converting it
// through time.Time first.
func FormatCanonical(ct CanonicalTime, layout string) (string, error) {
	return Format(ct.Time(nil), layout)
}
