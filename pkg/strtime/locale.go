package strtime

// Locale supplies the month names and meridiem markers a format is
// compiled against. The table is captured once at compile time; a
// CompiledFormat never consults ambient state.
//
// Name lookups during extraction are exact and case-sensitive, so the
// strings here must match the input text byte for byte.
type Locale struct {
	// MonthNames are the full month names, January first.
	MonthNames [12]string

	// MonthNamesShort are the abbreviated month names, January first.
	MonthNamesShort [12]string

	// AM and PM are the meridiem markers. Only equality with PM
	// matters during extraction: a 12-hour value paired with PM gains
	// twelve hours, anything else is left alone.
	AM string
	PM string
}

// English is the en_US locale table.
var English = Locale{
	MonthNames: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthNamesShort: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	AM: "AM",
	PM: "PM",
}

// monthByName returns the 1-based month for an exact full-name match.
func (l Locale) monthByName(name string) (int, bool) {
	for i, n := range l.MonthNames {
		if n == name {
			return i + 1, true
		}
	}
	return 0, false
}

// monthByShortName returns the 1-based month for an exact
// abbreviated-name match.
func (l Locale) monthByShortName(name string) (int, bool) {
	for i, n := range l.MonthNamesShort {
		if n == name {
			return i + 1, true
		}
	}
	return 0, false
}
