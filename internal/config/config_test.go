package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fieldset-dev/fieldset"
	"github.com/fieldset-dev/fieldset/internal/errors"
	"github.com/fieldset-dev/fieldset/pkg/strtime"
)

var germanLocale = &LocaleConfig{
	Name: "de",
	Months: []string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	MonthsAbbr: []string{
		"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
	},
	AM: "vorm.",
	PM: "nachm.",
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Version != "0.1.0" {
		t.Errorf("Version = %q, want %q", cfg.Version, "0.1.0")
	}
	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Serve.MetricsNamespace != DefaultNamespace {
		t.Errorf("Serve.MetricsNamespace = %q, want %q", cfg.Serve.MetricsNamespace, DefaultNamespace)
	}
	if cfg.Serve.MaxBodySize != 10<<20 {
		t.Errorf("Serve.MaxBodySize = %d, want %d", cfg.Serve.MaxBodySize, 10<<20)
	}
	if cfg.Serve.Upload.Dir != DefaultUploadDir {
		t.Errorf("Serve.Upload.Dir = %q, want %q", cfg.Serve.Upload.Dir, DefaultUploadDir)
	}
	if cfg.Serve.Upload.TTL != DefaultUploadTTL {
		t.Errorf("Serve.Upload.TTL = %q, want %q", cfg.Serve.Upload.TTL, DefaultUploadTTL)
	}
	if len(cfg.Formats.Date) != len(fieldset.DefaultDateFormats) {
		t.Errorf("len(Formats.Date) = %d, want %d", len(cfg.Formats.Date), len(fieldset.DefaultDateFormats))
	}
	if cfg.Formats.Date[0] != "yyyy-MM-dd" {
		t.Errorf("Formats.Date[0] = %q, want %q", cfg.Formats.Date[0], "yyyy-MM-dd")
	}
	if len(cfg.Formats.Time) != len(fieldset.DefaultTimeFormats) {
		t.Errorf("len(Formats.Time) = %d, want %d", len(cfg.Formats.Time), len(fieldset.DefaultTimeFormats))
	}
	if len(cfg.Formats.DateTime) != len(fieldset.DefaultDateTimeFormats) {
		t.Errorf("len(Formats.DateTime) = %d, want %d", len(cfg.Formats.DateTime), len(fieldset.DefaultDateTimeFormats))
	}
	if cfg.Locale != nil {
		t.Error("Locale should be nil by default")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	if err == nil {
		t.Error("Expected error for missing config")
	}
	if !strings.Contains(err.Error(), "E140") {
		t.Errorf("Missing config error = %v, want E140", err)
	}

	// Create a config file
	configPath := filepath.Join(tmpDir, ConfigFileName)
	configJSON := `{
  "name": "signup-forms",
  "version": "1.2.3",
  "formats": {
    "date": ["dd.MM.yyyy", "yyyy-MM-dd"]
  },
  "locale": {
    "name": "de",
    "months": ["Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"],
    "monthsAbbr": ["Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"],
    "am": "vorm.",
    "pm": "nachm."
  },
  "serve": {
    "port": 3000,
    "host": "0.0.0.0"
  }
}
`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	// Load the config
	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Name != "signup-forms" {
		t.Errorf("Name = %q, want %q", cfg.Name, "signup-forms")
	}
	if cfg.Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", cfg.Version, "1.2.3")
	}
	if len(cfg.Formats.Date) != 2 || cfg.Formats.Date[0] != "dd.MM.yyyy" {
		t.Errorf("Formats.Date = %v, want configured list", cfg.Formats.Date)
	}
	if cfg.Serve.Port != 3000 {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, 3000)
	}
	if cfg.Serve.Host != "0.0.0.0" {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, "0.0.0.0")
	}
	if cfg.Locale == nil || cfg.Locale.Name != "de" {
		t.Errorf("Locale = %+v, want de override", cfg.Locale)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}

	// Unset fields should get defaults
	if cfg.Serve.MetricsNamespace != DefaultNamespace {
		t.Errorf("Serve.MetricsNamespace = %q, want default %q", cfg.Serve.MetricsNamespace, DefaultNamespace)
	}
	if len(cfg.Formats.Time) != len(fieldset.DefaultTimeFormats) {
		t.Errorf("Formats.Time = %v, want defaults", cfg.Formats.Time)
	}
	if len(cfg.Formats.DateTime) != len(fieldset.DefaultDateTimeFormats) {
		t.Errorf("Formats.DateTime = %v, want defaults", cfg.Formats.DateTime)
	}
	if cfg.Serve.Upload.Dir != DefaultUploadDir {
		t.Errorf("Serve.Upload.Dir = %q, want default %q", cfg.Serve.Upload.Dir, DefaultUploadDir)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("not valid json{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "E120") {
		t.Errorf("Invalid JSON error = %v, want E120", err)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := New()
	cfg.Name = "save-test"

	// Save without a path should fail
	if err := cfg.Save(); err == nil {
		t.Error("Expected error saving config without path")
	}

	// SaveTo should work
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	// File should end with a newline
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("Saved config should end with newline")
	}

	// Reload and verify
	loaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("Reload error: %v", err)
	}
	if loaded.Name != "save-test" {
		t.Errorf("Name = %q, want %q", loaded.Name, "save-test")
	}

	// Save should now work since the path is set
	loaded.Serve.Port = 9999
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	reloaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Serve.Port != 9999 {
		t.Errorf("Serve.Port = %d, want %d", reloaded.Serve.Port, 9999)
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid, got: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "negative port",
			mutate: func(c *Config) { c.Serve.Port = -1 },
			want:   "E122",
		},
		{
			name:   "port too high",
			mutate: func(c *Config) { c.Serve.Port = 70000 },
			want:   "E122",
		},
		{
			name:   "negative max body size",
			mutate: func(c *Config) { c.Serve.MaxBodySize = -1 },
			want:   "maxBodySize",
		},
		{
			name:   "negative upload max size",
			mutate: func(c *Config) { c.Serve.Upload.MaxSize = -1 },
			want:   "maxSize",
		},
		{
			name:   "invalid upload ttl",
			mutate: func(c *Config) { c.Serve.Upload.TTL = "fortnight" },
			want:   "ttl",
		},
		{
			name:   "bad date format",
			mutate: func(c *Config) { c.Formats.Date = []string{"yyyy-Q"} },
			want:   "E123",
		},
		{
			name:   "bad time format",
			mutate: func(c *Config) { c.Formats.Time = []string{"HH:mm 'open"} },
			want:   "E123",
		},
		{
			name:   "incomplete locale",
			mutate: func(c *Config) { c.Locale = &LocaleConfig{Name: "de", AM: "vorm."} },
			want:   "E124",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestValidate_BadFormatNamesFormat(t *testing.T) {
	cfg := New()
	cfg.Formats.Date = []string{"yyyy-Q"}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	var fe *errors.FieldsetError
	if !stderrors.As(err, &fe) {
		t.Fatalf("Validate error type = %T, want *errors.FieldsetError", err)
	}
	if !strings.Contains(fe.Detail, "yyyy-Q") {
		t.Errorf("Detail = %q, want it to name the bad format", fe.Detail)
	}
	if fe.Snippet != "yyyy-Q" {
		t.Errorf("Snippet = %q, want %q", fe.Snippet, "yyyy-Q")
	}
}

func TestStrtimeLocale(t *testing.T) {
	t.Run("default is English", func(t *testing.T) {
		cfg := New()
		loc, err := cfg.StrtimeLocale()
		if err != nil {
			t.Fatal(err)
		}
		if loc.MonthNames[0] != "January" || loc.PM != "PM" {
			t.Errorf("Locale = %+v, want English", loc)
		}
	})

	t.Run("full override", func(t *testing.T) {
		cfg := New()
		cfg.Locale = germanLocale
		loc, err := cfg.StrtimeLocale()
		if err != nil {
			t.Fatal(err)
		}
		if loc.MonthNames[0] != "Januar" {
			t.Errorf("MonthNames[0] = %q, want %q", loc.MonthNames[0], "Januar")
		}
		if loc.MonthNamesShort[2] != "Mär" {
			t.Errorf("MonthNamesShort[2] = %q, want %q", loc.MonthNamesShort[2], "Mär")
		}
		if loc.AM != "vorm." || loc.PM != "nachm." {
			t.Errorf("Meridiem = %q/%q, want vorm./nachm.", loc.AM, loc.PM)
		}
	})

	t.Run("incomplete override", func(t *testing.T) {
		cfg := New()
		cfg.Locale = &LocaleConfig{Name: "de", Months: []string{"Januar"}}
		_, err := cfg.StrtimeLocale()
		if err == nil {
			t.Fatal("Expected error for incomplete locale")
		}
		if !strings.Contains(err.Error(), "E124") {
			t.Errorf("Locale error = %v, want E124", err)
		}
	})
}

func TestCompileFormats(t *testing.T) {
	cfg := New()

	compiled, err := cfg.CompileFormats(cfg.Formats.Date)
	if err != nil {
		t.Fatalf("CompileFormats error: %v", err)
	}
	if len(compiled) != len(cfg.Formats.Date) {
		t.Errorf("len(compiled) = %d, want %d", len(compiled), len(cfg.Formats.Date))
	}

	// Compiled formats should actually parse input
	ct, err := strtime.ParseAny("2024-03-15", compiled...)
	if err != nil {
		t.Fatalf("ParseAny error: %v", err)
	}
	if ct.Year != 2024 || ct.Month != 3 || ct.Day != 15 {
		t.Errorf("ParseAny = %+v, want 2024-03-15", ct)
	}

	_, err = cfg.CompileFormats([]string{"yyyy-Q"})
	if err == nil {
		t.Fatal("Expected error for bad format")
	}
	if !strings.Contains(err.Error(), "E001") {
		t.Errorf("CompileFormats error = %v, want E001", err)
	}
}

func TestCompileFormats_LocaleAware(t *testing.T) {
	cfg := New()
	cfg.Locale = germanLocale

	compiled, err := cfg.CompileFormats([]string{"d. MMMM yyyy"})
	if err != nil {
		t.Fatalf("CompileFormats error: %v", err)
	}

	ct, err := strtime.ParseAny("3. Oktober 1990", compiled...)
	if err != nil {
		t.Fatalf("ParseAny error: %v", err)
	}
	if ct.Year != 1990 || ct.Month != 10 || ct.Day != 3 {
		t.Errorf("ParseAny = %+v, want 1990-10-03", ct)
	}
}

func TestAllFormats(t *testing.T) {
	cfg := New()
	cfg.Formats = FormatsConfig{
		Date:     []string{"yyyy-MM-dd"},
		Time:     []string{"HH:mm"},
		DateTime: []string{"yyyy-MM-dd HH:mm"},
	}

	all := cfg.AllFormats()
	want := []string{"yyyy-MM-dd HH:mm", "yyyy-MM-dd", "HH:mm"}
	if len(all) != len(want) {
		t.Fatalf("len(AllFormats) = %d, want %d", len(all), len(want))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("AllFormats[%d] = %q, want %q", i, all[i], want[i])
		}
	}
}

func TestAddress(t *testing.T) {
	cfg := New()
	if cfg.Address() != "localhost:8080" {
		t.Errorf("Address() = %q, want %q", cfg.Address(), "localhost:8080")
	}

	cfg.Serve.Host = "0.0.0.0"
	cfg.Serve.Port = 3000
	if cfg.Address() != "0.0.0.0:3000" {
		t.Errorf("Address() = %q, want %q", cfg.Address(), "0.0.0.0:3000")
	}
}

func TestUploadTTL(t *testing.T) {
	cfg := New()
	if cfg.UploadTTL() != time.Hour {
		t.Errorf("UploadTTL() = %v, want 1h", cfg.UploadTTL())
	}

	cfg.Serve.Upload.TTL = "30m"
	if cfg.UploadTTL() != 30*time.Minute {
		t.Errorf("UploadTTL() = %v, want 30m", cfg.UploadTTL())
	}

	// Unparseable TTL falls back to the default
	cfg.Serve.Upload.TTL = "fortnight"
	if cfg.UploadTTL() != time.Hour {
		t.Errorf("UploadTTL() = %v, want 1h fallback", cfg.UploadTTL())
	}
}

func TestUploadDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatal(err)
	}

	// Relative dir is joined with the config directory
	want := filepath.Join(tmpDir, DefaultUploadDir)
	if cfg.UploadDir() != want {
		t.Errorf("UploadDir() = %q, want %q", cfg.UploadDir(), want)
	}

	// Absolute dir is used as-is
	abs := filepath.Join(tmpDir, "elsewhere")
	cfg.Serve.Upload.Dir = abs
	if cfg.UploadDir() != abs {
		t.Errorf("UploadDir() = %q, want %q", cfg.UploadDir(), abs)
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()

	if Exists(tmpDir) {
		t.Error("Exists should return false for empty directory")
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	if !Exists(tmpDir) {
		t.Error("Exists should return true")
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()

	// Create nested directories
	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	// No config anywhere should fail
	if _, err := FindProjectRoot(nested); err == nil {
		t.Error("Expected error when no config exists")
	}

	// Place config at the top
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}

	// Resolve symlinks for comparison (macOS /tmp is a symlink)
	wantRoot, _ := filepath.EvalSymlinks(tmpDir)
	gotRoot, _ := filepath.EvalSymlinks(root)
	if gotRoot != wantRoot {
		t.Errorf("FindProjectRoot = %q, want %q", gotRoot, wantRoot)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Serve.Upload.TTL != DefaultUploadTTL {
		t.Errorf("Serve.Upload.TTL = %q, want %q", cfg.Serve.Upload.TTL, DefaultUploadTTL)
	}
	if len(cfg.Formats.Date) == 0 || len(cfg.Formats.Time) == 0 || len(cfg.Formats.DateTime) == 0 {
		t.Error("applyDefaults should fill in format lists")
	}
}

func TestItoa(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{10, "10"},
		{123, "123"},
		{3000, "3000"},
		{65535, "65535"},
		{-1, "-1"},
		{-100, "-100"},
	}

	for _, tt := range tests {
		result := itoa(tt.input)
		if result != tt.expected {
			t.Errorf("itoa(%d) = %q, want %q", tt.input, tt.expected, result)
		}
	}
}
