// Package strtime parses and renders dates and times using explicit,
// locale-aware format strings.
//
// The package is split into two independent directions:
//
//   - Parsing: a format string such as "yyyy-MM-dd HH:mm:ss" is compiled
//     once into a CompiledFormat, which can then be matched against input
//     text any number of times. Matching extracts a CanonicalTime record
//     and validates every field, including calendar-aware day-of-month
//     checks (leap years, month lengths).
//   - Formatting: Format renders a time.Time through a simpler
//     percent-token layout ("%Y-%m-%d"), independent of the compiler.
//
// # Compiling and parsing
//
//	cf, err := strtime.Compile("yyyy-MM-dd", strtime.English)
//	if err != nil {
//	    // malformed format string
//	}
//	ct, err := cf.Parse("2024-02-29")
//	// ct.Year == 2024, ct.Month == 2, ct.Day == 29
//
// A CompiledFormat is immutable after construction and safe for
// concurrent use. Compile it once per distinct format string and reuse
// it; construction is the expensive step.
//
// # Format tokens (parsing direction)
//
//	yyyy        four-digit year
//	yy          two-digit year (windowed: <68 → 2000+, 68-99 → 1900+)
//	M, MM       numeric month (one or two digits)
//	MMM         abbreviated month name from the locale
//	MMMM        full month name from the locale
//	d, dd       day of month
//	H, HH       hour, 24-hour clock
//	h, hh       hour, 12-hour clock (combine with "a")
//	m, mm       minute
//	s, ss       second
//	a           meridiem marker (locale AM/PM)
//	'text'      quoted literal, '' is a literal apostrophe
//
// Any other ASCII letter run is rejected with a FormatError; quote
// literal letters ("yyyy-MM-dd'T'HH:mm:ss"). Runs of whitespace in the
// format match any run of whitespace in the input. Everything else is
// literal text and must match exactly, case-sensitively.
//
// # Layout tokens (formatting direction)
//
//	%Y  %y  %m  %d  %H  %M  %S  %%
//
// Numeric tokens are zero-padded. Unrecognized percent tokens render as
// the empty string; a bare trailing percent is a FormatError.
//
// # Fields absent from a format
//
// Fields the format does not mention keep their defaults: year 1900,
// month 1, day 1, hour, minute and second 0. Parsing "14:30" with
// "HH:mm" therefore yields 1900-01-01 14:30:00.
//
// # Errors
//
// The three failure kinds are *FormatError (malformed format string),
// *ParseError (input does not match) and *RangeError (a field value
// outside its valid range). All are terminal for the attempt; use
// ParseAny to try several candidate formats in order.
package strtime
