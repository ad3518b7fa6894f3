package errors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fieldset-dev/fieldset/pkg/strtime"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "format error code",
			code:    "E001",
			wantMsg: "Unrecognized format directive",
			wantCat: CategoryFormat,
		},
		{
			name:    "parse error",
			code:    "E020",
			wantMsg: "Input does not match format",
			wantCat: CategoryParse,
		},
		{
			name:    "range error",
			code:    "E040",
			wantMsg: "Month out of range",
			wantCat: CategoryRange,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "fieldset.json")
	if err.Message != `file "fieldset.json" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "fieldset.json" not found`)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestFieldsetError_Error(t *testing.T) {
	err := New("E001")
	got := err.Error()
	want := "E001: Unrecognized format directive"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &FieldsetError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestFieldsetError_WithLocation(t *testing.T) {
	// Create a temp file with some content
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "fieldset.json")
	content := `{
  "dateFormats": [
    "yyyy-MM-dd",
    "yyyy-Q",
    "MM/dd/yyyy"
  ]
}
`
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New("E123").WithLocation(tmpFile, 4, 6)

	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.File != tmpFile {
		t.Errorf("Location.File = %q, want %q", err.Location.File, tmpFile)
	}
	if err.Location.Line != 4 {
		t.Errorf("Location.Line = %d, want %d", err.Location.Line, 4)
	}
	if err.Location.Column != 6 {
		t.Errorf("Location.Column = %d, want %d", err.Location.Column, 6)
	}
	if len(err.Context) == 0 {
		t.Error("Context should not be empty")
	}
}

func TestFieldsetError_WithSnippet(t *testing.T) {
	err := New("E001").WithSnippet("yyyy-Q", 5)
	if err.Snippet != "yyyy-Q" {
		t.Errorf("Snippet = %q, want %q", err.Snippet, "yyyy-Q")
	}
	if err.SnippetPos != 5 {
		t.Errorf("SnippetPos = %d, want %d", err.SnippetPos, 5)
	}

	// Default is no position
	if New("E020").SnippetPos != -1 {
		t.Error("SnippetPos should default to -1")
	}
}

func TestFieldsetError_WithSuggestion(t *testing.T) {
	err := New("E001").WithSuggestion("Quote literal text in single quotes")
	if err.Suggestion != "Quote literal text in single quotes" {
		t.Errorf("Suggestion = %q, want %q", err.Suggestion, "Quote literal text in single quotes")
	}
}

func TestFieldsetError_WithExample(t *testing.T) {
	example := `fields.NewDate("birthday", &fieldset.TemporalOptions{
    Formats: []string{"yyyy-MM-dd'T'HH:mm"},
})`
	err := New("E001").WithExample(example)
	if err.Example != example {
		t.Errorf("Example = %q, want %q", err.Example, example)
	}
}

func TestFieldsetError_WithDetail(t *testing.T) {
	err := New("E001").WithDetail("Custom detail")
	if err.Detail != "Custom detail" {
		t.Errorf("Detail = %q, want %q", err.Detail, "Custom detail")
	}
}

func TestFieldsetError_Wrap(t *testing.T) {
	inner := New("E002")
	outer := New("E001").Wrap(inner)

	if outer.Wrapped != inner {
		t.Error("Wrapped error mismatch")
	}
	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
}

func TestFromError(t *testing.T) {
	// nil error
	if FromError(nil, "E001") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	// Already FieldsetError
	fe := New("E001")
	if FromError(fe, "E002") != fe {
		t.Error("FromError should return FieldsetError as-is")
	}

	// Standard error
	stdErr := &testError{msg: "test error"}
	result := FromError(stdErr, "E001")
	if result.Wrapped != stdErr {
		t.Error("Standard error should be wrapped")
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestFromStrtime(t *testing.T) {
	t.Run("unrecognized directive", func(t *testing.T) {
		_, err := strtime.Compile("yyyy-Q", strtime.English)
		if err == nil {
			t.Fatal("expected compile error")
		}

		fe := FromStrtime(err)
		if fe.Code != "E001" {
			t.Errorf("Code = %q, want E001", fe.Code)
		}
		if fe.Snippet != "yyyy-Q" {
			t.Errorf("Snippet = %q, want %q", fe.Snippet, "yyyy-Q")
		}
		if fe.SnippetPos != 5 {
			t.Errorf("SnippetPos = %d, want 5", fe.SnippetPos)
		}
		if fe.Suggestion == "" {
			t.Error("expected a suggestion for an unrecognized directive")
		}
		if fe.Wrapped == nil {
			t.Error("expected the source error to be wrapped")
		}
	})

	t.Run("unterminated quote", func(t *testing.T) {
		_, err := strtime.Compile("yyyy 'T", strtime.English)
		if err == nil {
			t.Fatal("expected compile error")
		}

		fe := FromStrtime(err)
		if fe.Code != "E002" {
			t.Errorf("Code = %q, want E002", fe.Code)
		}
	})

	t.Run("trailing percent in layout", func(t *testing.T) {
		_, err := strtime.Format(time.Date(2023, 7, 14, 0, 0, 0, 0, time.UTC), "%Y %")
		if err == nil {
			t.Fatal("expected layout error")
		}

		fe := FromStrtime(err)
		if fe.Code != "E003" {
			t.Errorf("Code = %q, want E003", fe.Code)
		}
		if fe.Snippet != "%Y %" {
			t.Errorf("Snippet = %q, want %q", fe.Snippet, "%Y %")
		}
	})

	t.Run("parse mismatch", func(t *testing.T) {
		cf := strtime.MustCompile("yyyy-MM-dd", strtime.English)
		_, err := cf.Parse("hello")
		if err == nil {
			t.Fatal("expected parse error")
		}

		fe := FromStrtime(err)
		if fe.Code != "E020" {
			t.Errorf("Code = %q, want E020", fe.Code)
		}
		if !strings.Contains(fe.Detail, `"hello"`) {
			t.Errorf("Detail = %q, want it to name the input", fe.Detail)
		}
	})

	t.Run("range errors by field", func(t *testing.T) {
		cf := strtime.MustCompile("yyyy-MM-dd HH:mm:ss", strtime.English)
		cases := []struct {
			input string
			code  string
		}{
			{"2023-13-01 00:00:00", "E040"},
			{"2023-02-30 00:00:00", "E041"},
			{"2023-07-14 24:00:00", "E042"},
			{"2023-07-14 10:61:00", "E043"},
			{"2023-07-14 10:00:61", "E044"},
		}
		for _, tc := range cases {
			_, err := cf.Parse(tc.input)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tc.input)
			}
			fe := FromStrtime(err)
			if fe.Code != tc.code {
				t.Errorf("Parse(%q): Code = %q, want %q", tc.input, fe.Code, tc.code)
			}
			if fe.Detail == "" {
				t.Errorf("Parse(%q): expected range detail", tc.input)
			}
		}
	})

	t.Run("no format matched", func(t *testing.T) {
		_, err := strtime.ParseAny("hello", strtime.MustCompile("yyyy-MM-dd", strtime.English))
		if err == nil {
			t.Fatal("expected error")
		}

		fe := FromStrtime(err)
		if fe.Code != "E021" {
			t.Errorf("Code = %q, want E021", fe.Code)
		}
	})

	t.Run("nil", func(t *testing.T) {
		if FromStrtime(nil) != nil {
			t.Error("FromStrtime(nil) should return nil")
		}
	})
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{
			name: "nil location",
			loc:  nil,
			want: "",
		},
		{
			name: "with column",
			loc:  &Location{File: "fieldset.json", Line: 10, Column: 5},
			want: "fieldset.json:10:5",
		},
		{
			name: "without column",
			loc:  &Location{File: "fieldset.json", Line: 10, Column: 0},
			want: "fieldset.json:10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.loc.String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E001").
		WithSnippet("yyyy-Q", 5).
		WithSuggestion("Quote literal text in single quotes, e.g. 'Q'.").
		WithExample(`"yyyy-'Q'"`)

	formatted := err.Format()

	// Check that key components are present
	if !strings.Contains(formatted, "E001") {
		t.Error("Format should contain error code")
	}
	if !strings.Contains(formatted, "Unrecognized format directive") {
		t.Error("Format should contain error message")
	}
	if !strings.Contains(formatted, "  yyyy-Q\n       ^") {
		t.Errorf("Format should render the caret under the offending position, got:\n%s", formatted)
	}
	if !strings.Contains(formatted, "Hint:") {
		t.Error("Format should contain hint")
	}
	if !strings.Contains(formatted, "Example:") {
		t.Error("Format should contain example")
	}
	if !strings.Contains(formatted, "Learn more:") {
		t.Error("Format should contain doc URL")
	}
}

func TestFormatWithLocation(t *testing.T) {
	DisableColors()
	defer EnableColors()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "fieldset.json")
	content := `{
  "serve": {
    "port": -1
  }
}
`
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	formatted := New("E122").WithLocation(tmpFile, 3, 13).Format()

	if !strings.Contains(formatted, tmpFile) {
		t.Error("Format should contain file path")
	}
	if !strings.Contains(formatted, `"port": -1`) {
		t.Error("Format should contain the offending line")
	}
	if !strings.Contains(formatted, "→") {
		t.Error("Format should mark the offending line with an arrow")
	}
}

func TestFormatSnippetWithoutPosition(t *testing.T) {
	DisableColors()
	defer EnableColors()

	formatted := New("E020").WithSnippet("hello world", -1).Format()

	if !strings.Contains(formatted, "hello world") {
		t.Error("Format should contain the snippet")
	}
	if strings.Contains(formatted, "^") {
		t.Error("Format should not render a caret without a position")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E001").WithLocation("formats.json", 10, 5)
	compact := err.FormatCompact()

	want := "formats.json:10:5: E001: Unrecognized format directive"
	if compact != want {
		t.Errorf("FormatCompact() = %q, want %q", compact, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("E001").WithSnippet("yyyy-Q", 5)
	json := err.FormatJSON()

	if !strings.Contains(json, `"code":"E001"`) {
		t.Error("JSON should contain code")
	}
	if !strings.Contains(json, `"category":"format"`) {
		t.Error("JSON should contain category")
	}
	if !strings.Contains(json, `"message":"Unrecognized format directive"`) {
		t.Error("JSON should contain message")
	}
	if !strings.Contains(json, `"snippet":"yyyy-Q"`) {
		t.Error("JSON should contain snippet")
	}
	if !strings.Contains(json, `"pos":5`) {
		t.Error("JSON should contain position")
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Error("GetAllCodes() should return codes")
	}

	// Check that E001 is in the list
	found := false
	for _, code := range codes {
		if code == "E001" {
			found = true
			break
		}
	}
	if !found {
		t.Error("E001 should be in the codes list")
	}
}

func TestGetTemplate(t *testing.T) {
	template, ok := GetTemplate("E001")
	if !ok {
		t.Error("E001 should exist")
	}
	if template.Message != "Unrecognized format directive" {
		t.Error("Template message mismatch")
	}

	_, ok = GetTemplate("E999")
	if ok {
		t.Error("E999 should not exist")
	}
}

func TestRegister(t *testing.T) {
	Register("E999", ErrorTemplate{
		Category: CategoryCLI,
		Message:  "Custom test error",
		Detail:   "This is a test error",
		DocURL:   "https://test.dev/E999",
	})

	err := New("E999")
	if err.Message != "Custom test error" {
		t.Errorf("Message = %q, want %q", err.Message, "Custom test error")
	}

	// Cleanup
	delete(registry, "E999")
}

func TestWrapText(t *testing.T) {
	// Test short text that doesn't need wrapping
	got := wrapText("short text", 100)
	if len(got) != 1 || got[0] != "short text" {
		t.Errorf("wrapText short text: got %v", got)
	}

	// Test text that needs wrapping
	got = wrapText("this is a longer text that should be wrapped", 20)
	if len(got) != 3 {
		t.Errorf("wrapText long text: expected 3 lines, got %d: %v", len(got), got)
	}

	// Test empty string returns empty/nil
	got = wrapText("", 10)
	if len(got) != 0 {
		t.Errorf("wrapText empty: expected empty, got %v", got)
	}
}

func TestColorFunctions(t *testing.T) {
	// With colors enabled
	EnableColors()
	if !strings.Contains(red("test"), "\033[31m") {
		t.Error("red should contain ANSI code when colors enabled")
	}

	// With colors disabled
	DisableColors()
	if strings.Contains(red("test"), "\033[") {
		t.Error("red should not contain ANSI code when colors disabled")
	}
	EnableColors()
}
