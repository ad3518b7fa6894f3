package fieldset

import (
	"testing"
	"time"

	"github.com/fieldset-dev/fieldset/pkg/strtime"
)

func TestDateField(t *testing.T) {
	f := NewDate("birthday", nil)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"2023-07-14", time.Date(2023, time.July, 14, 0, 0, 0, 0, time.UTC)},
		{"07/14/2023", time.Date(2023, time.July, 14, 0, 0, 0, 0, time.UTC)},
		{"07/14/23", time.Date(2023, time.July, 14, 0, 0, 0, 0, time.UTC)},
		{"07/14/99", time.Date(1999, time.July, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		v, err := f.Clean(tt.input)
		if err != nil {
			t.Errorf("Clean(%q) returned error: %v", tt.input, err)
			continue
		}
		got, ok := v.(time.Time)
		if !ok {
			t.Errorf("Clean(%q) type = %T, want time.Time", tt.input, v)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Clean(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDateFieldInvalid(t *testing.T) {
	f := NewDate("birthday", nil)

	// Unmatchable text and out-of-range values report the same way.
	for _, input := range []string{"14.07.2023", "not a date", "2023-02-30", "2023-13-01"} {
		_, err := f.Clean(input)
		if err == nil {
			t.Errorf("Clean(%q) succeeded, want error", input)
			continue
		}
		if err.Error() != "Enter a valid date." {
			t.Errorf("Clean(%q) message = %q, want %q", input, err.Error(), "Enter a valid date.")
		}
	}
}

func TestTimeField(t *testing.T) {
	f := NewTime("alarm", nil)

	v, err := f.Clean("09:30:15")
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}
	want := time.Date(1900, time.January, 1, 9, 30, 15, 0, time.UTC)
	if got := v.(time.Time); !got.Equal(want) {
		t.Errorf("Clean = %v, want %v", got, want)
	}

	v, err = f.Clean("09:30")
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}
	want = time.Date(1900, time.January, 1, 9, 30, 0, 0, time.UTC)
	if got := v.(time.Time); !got.Equal(want) {
		t.Errorf("Clean = %v, want %v", got, want)
	}

	if _, err := f.Clean("25:00"); err == nil {
		t.Error("expected error for hour out of range")
	}
	if _, err := f.Clean("9.30"); err == nil {
		t.Error("expected error for wrong separator")
	}
}

func TestDateTimeField(t *testing.T) {
	f := NewDateTime("starts", nil)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"2023-07-14 09:05:42", time.Date(2023, time.July, 14, 9, 5, 42, 0, time.UTC)},
		{"2023-07-14 09:05", time.Date(2023, time.July, 14, 9, 5, 0, 0, time.UTC)},
		{"07/14/2023 09:05:42", time.Date(2023, time.July, 14, 9, 5, 42, 0, time.UTC)},
		{"07/14/2023 09:05", time.Date(2023, time.July, 14, 9, 5, 0, 0, time.UTC)},
		{"07/14/23 09:05:42", time.Date(2023, time.July, 14, 9, 5, 42, 0, time.UTC)},
		{"07/14/23 09:05", time.Date(2023, time.July, 14, 9, 5, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		v, err := f.Clean(tt.input)
		if err != nil {
			t.Errorf("Clean(%q) returned error: %v", tt.input, err)
			continue
		}
		if got := v.(time.Time); !got.Equal(tt.want) {
			t.Errorf("Clean(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	_, err := f.Clean("2023-07-14T09:05:42")
	if err == nil {
		t.Fatal("expected error for unlisted format")
	}
	if err.Error() != "Enter a valid date/time." {
		t.Errorf("message = %q, want %q", err.Error(), "Enter a valid date/time.")
	}
}

func TestTemporalCustomFormats(t *testing.T) {
	f := NewDate("when", &TemporalOptions{Formats: []string{"dd.MM.yyyy"}})

	v, err := f.Clean("14.07.2023")
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}
	want := time.Date(2023, time.July, 14, 0, 0, 0, 0, time.UTC)
	if got := v.(time.Time); !got.Equal(want) {
		t.Errorf("Clean = %v, want %v", got, want)
	}

	// Custom formats replace the defaults rather than extending them.
	if _, err := f.Clean("2023-07-14"); err == nil {
		t.Error("expected error for default format after override")
	}
}

func TestTemporalCustomLocale(t *testing.T) {
	loc := strtime.Locale{
		MonthNames: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MonthNamesShort: [12]string{
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
		},
		AM: "vorm.",
		PM: "nachm.",
	}
	f := NewDate("when", &TemporalOptions{
		Formats: []string{"d. MMMM yyyy"},
		Locale:  &loc,
	})

	v, err := f.Clean("14. Juli 2023")
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}
	want := time.Date(2023, time.July, 14, 0, 0, 0, 0, time.UTC)
	if got := v.(time.Time); !got.Equal(want) {
		t.Errorf("Clean = %v, want %v", got, want)
	}

	if _, err := f.Clean("14. July 2023"); err == nil {
		t.Error("expected error for name outside the locale table")
	}
}

func TestTemporalOptional(t *testing.T) {
	f := NewDateTime("ends", &TemporalOptions{Optional: true})

	v, err := f.Clean("")
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}
	if v != nil {
		t.Errorf("Clean = %v, want nil", v)
	}
}

func TestTemporalFormatsAccessor(t *testing.T) {
	f := NewTime("alarm", nil)

	got := f.Formats()
	if len(got) != len(DefaultTimeFormats) {
		t.Fatalf("Formats() length = %d, want %d", len(got), len(DefaultTimeFormats))
	}
	for i, want := range DefaultTimeFormats {
		if got[i] != want {
			t.Errorf("Formats()[%d] = %q, want %q", i, got[i], want)
		}
	}
}
