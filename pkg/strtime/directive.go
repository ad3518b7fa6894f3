package strtime

import (
	"regexp"
	"sort"
	"strings"
)

// directive is the canonical code for one format token. Capture groups
// are positional, so a CompiledFormat pairs each group with the
// directive that produced it, in encounter order.
type directive int

const (
	dirYear4 directive = iota // yyyy
	dirYear2                  // yy
	dirMonth                  // M, MM
	dirMonthAbbr              // MMM
	dirMonthFull              // MMMM
	dirDay                    // d, dd
	dirHour24                 // H, HH
	dirHour12                 // h, hh
	dirMinute                 // m, mm
	dirSecond                 // s, ss
	dirMeridiem               // a
)

// directiveFor maps a letter run to its directive. Runs are maximal, so
// longest-match is inherent: "yyyy" can never be seen as two "yy"
// tokens. Run lengths outside the table are unrecognized.
func directiveFor(letter byte, runLen int) (directive, bool) {
	switch letter {
	case 'y':
		switch runLen {
		case 4:
			return dirYear4, true
		case 2:
			return dirYear2, true
		}
	case 'M':
		switch runLen {
		case 1, 2:
			return dirMonth, true
		case 3:
			return dirMonthAbbr, true
		case 4:
			return dirMonthFull, true
		}
	case 'd':
		if runLen <= 2 {
			return dirDay, true
		}
	case 'H':
		if runLen <= 2 {
			return dirHour24, true
		}
	case 'h':
		if runLen <= 2 {
			return dirHour12, true
		}
	case 'm':
		if runLen <= 2 {
			return dirMinute, true
		}
	case 's':
		if runLen <= 2 {
			return dirSecond, true
		}
	case 'a':
		if runLen == 1 {
			return dirMeridiem, true
		}
	}
	return 0, false
}

// pattern returns the capturing sub-pattern for a directive. Numeric
// patterns are deliberately permissive digit classes: out-of-range
// values like month 13 must reach the extractor and fail as a
// RangeError, not disappear into a non-match. [0-9] rather than \d,
// which under regexp2 would admit non-ASCII digits strconv can't read.
func (d directive) pattern(loc Locale) string {
	switch d {
	case dirYear4:
		return `([0-9]{4})`
	case dirYear2:
		return `([0-9]{2})`
	case dirMonth, dirDay, dirHour24, dirHour12, dirMinute, dirSecond:
		return `([0-9]{1,2})`
	case dirMonthFull:
		return nameGroup(loc.MonthNames[:])
	case dirMonthAbbr:
		return nameGroup(loc.MonthNamesShort[:])
	case dirMeridiem:
		return nameGroup([]string{loc.AM, loc.PM})
	}
	return `()`
}

// nameGroup builds a capturing alternation of locale strings. Longer
// alternatives come first so no name is shadowed by a shorter prefix,
// and every string is escaped before it enters the pattern: locale
// tables are data, never pattern syntax.
func nameGroup(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	for i, n := range sorted {
		sorted[i] = regexp.QuoteMeta(n)
	}
	return "(" + strings.Join(sorted, "|") + ")"
}
