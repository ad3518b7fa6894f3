package strtime

import (
	"fmt"
	"strconv"
	"time"
)

// CanonicalTime is the fixed nine-field record a parse produces.
// Fields absent from the format keep their defaults: year 1900, month
// and day 1, clock fields 0. Weekday, YearDay and IsDST are carried
// for record-shape compatibility and always hold their placeholder
// values; nothing computes them.
type CanonicalTime struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31, calendar-checked against Month and Year
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59

	Weekday int // placeholder, always 0
	YearDay int // placeholder, always 1
	IsDST   int // placeholder, always -1
}

// newCanonicalTime returns a record holding every default.
func newCanonicalTime() CanonicalTime {
	return CanonicalTime{
		Year:    1900,
		Month:   1,
		Day:     1,
		Weekday: 0,
		YearDay: 1,
		IsDST:   -1,
	}
}

// Slice returns the record as the fixed nine-element sequence
// (year, month, day, hour, minute, second, weekday, yearday, isdst).
func (ct CanonicalTime) Slice() [9]int {
	return [9]int{
		ct.Year, ct.Month, ct.Day,
		ct.Hour, ct.Minute, ct.Second,
		ct.Weekday, ct.YearDay, ct.IsDST,
	}
}

// Time converts the record to a time.Time in the given location.
// A nil location means UTC.
func (ct CanonicalTime) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(ct.Year, time.Month(ct.Month), ct.Day, ct.Hour, ct.Minute, ct.Second, 0, loc)
}

// Parse matches input against the compiled format and extracts the
// canonical record. It returns a *ParseError when the input does not
// match the pattern and a *RangeError when a captured value violates a
// field bound; either way no partial record escapes.
func (cf *CompiledFormat) Parse(input string) (CanonicalTime, error) {
	m, err := cf.re.FindStringMatch(input)
	if err != nil || m == nil {
		return CanonicalTime{}, &ParseError{Format: cf.format, Input: input}
	}

	// Zip captures with the directive sequence positionally. Group 0 is
	// the whole match; captures start at 1. Repeated directives of the
	// same kind overwrite earlier captures.
	groups := m.Groups()
	raw := make(map[directive]string, len(cf.seq))
	for i, d := range cf.seq {
		raw[d] = groups[i+1].String()
	}

	ct := newCanonicalTime()

	// Year: the four-digit form is verbatim, the two-digit form is
	// windowed with a pivot at 68.
	if s, ok := raw[dirYear4]; ok {
		ct.Year = atoi(s)
	} else if s, ok := raw[dirYear2]; ok {
		y := atoi(s)
		if y < 68 {
			y += 2000
		} else {
			y += 1900
		}
		ct.Year = y
	}

	// Month: numeric beats full name beats abbreviated name. A name
	// that misses the locale table leaves the month at its default.
	if s, ok := raw[dirMonth]; ok {
		mo := atoi(s)
		if mo < 1 || mo > 12 {
			return CanonicalTime{}, &RangeError{Field: "month", Value: mo, Min: 1, Max: 12}
		}
		ct.Month = mo
	} else if s, ok := raw[dirMonthFull]; ok {
		if mo, found := cf.locale.monthByName(s); found {
			ct.Month = mo
		}
	} else if s, ok := raw[dirMonthAbbr]; ok {
		if mo, found := cf.locale.monthByShortName(s); found {
			ct.Month = mo
		}
	}

	// Day, first stage: the cheap [1,31] bound. The calendar-aware
	// bound runs last, once the year and month are both settled.
	if s, ok := raw[dirDay]; ok {
		d := atoi(s)
		if d < 1 || d > 31 {
			return CanonicalTime{}, &RangeError{Field: "day", Value: d, Min: 1, Max: 31}
		}
		ct.Day = d
	}

	// Hour: a 24-hour capture is used directly. Otherwise a 12-hour
	// capture is midnight-adjusted and then shifted by the meridiem
	// marker, compared for exact equality with the locale's PM string.
	if s, ok := raw[dirHour24]; ok {
		h := atoi(s)
		if h > 23 {
			return CanonicalTime{}, &RangeError{Field: "hour", Value: h, Min: 0, Max: 23}
		}
		ct.Hour = h
	} else if s, ok := raw[dirHour12]; ok {
		h := atoi(s)
		if h < 1 || h > 12 {
			return CanonicalTime{}, &RangeError{Field: "hour", Value: h, Min: 1, Max: 12}
		}
		if h == 12 {
			h = 0
		}
		if mer, ok := raw[dirMeridiem]; ok && mer == cf.locale.PM {
			h += 12
		}
		ct.Hour = h
	}

	if s, ok := raw[dirMinute]; ok {
		mi := atoi(s)
		if mi > 59 {
			return CanonicalTime{}, &RangeError{Field: "minute", Value: mi, Min: 0, Max: 59}
		}
		ct.Minute = mi
	}

	if s, ok := raw[dirSecond]; ok {
		sec := atoi(s)
		if sec > 59 {
			return CanonicalTime{}, &RangeError{Field: "second", Value: sec, Min: 0, Max: 59}
		}
		ct.Second = sec
	}

	// Day, second stage: month length depends on the year through the
	// leap rule, so this check cannot run until everything is resolved.
	if max := daysInMonth(ct.Year, ct.Month); ct.Day > max {
		return CanonicalTime{}, &RangeError{Field: "day", Value: ct.Day, Min: 1, Max: max}
	}

	return ct, nil
}

// ParseAny tries each compiled format in order and returns the first
// successful parse. When every format fails it returns a single error
// wrapping ErrNoMatch; the individual failures are deliberately not
// surfaced, matching the "first success wins" caller contract.
func ParseAny(input string, formats ...*CompiledFormat) (CanonicalTime, error) {
	for _, cf := range formats {
		if ct, err := cf.Parse(input); err == nil {
			return ct, nil
		}
	}
	return CanonicalTime{}, fmt.Errorf("%w: %q", ErrNoMatch, input)
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysInMonth returns the number of days in the given month, honoring
// the leap rule: divisible by 4 and (not by 100, or by 400).
func daysInMonth(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// atoi converts an all-digit capture. Patterns only ever capture one
// to four ASCII digits, so the strconv error path is unreachable.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
