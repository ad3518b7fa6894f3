package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/fieldset-dev/fieldset"
	"github.com/fieldset-dev/fieldset/internal/errors"
	"github.com/fieldset-dev/fieldset/pkg/strtime"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "fieldset.json"

	// DefaultPort is the default validation server port.
	DefaultPort = 8080

	// DefaultHost is the default validation server host.
	DefaultHost = "localhost"

	// DefaultNamespace is the default Prometheus metrics namespace.
	DefaultNamespace = "fieldset"

	// DefaultUploadDir is the default upload staging directory.
	DefaultUploadDir = ".fieldset/uploads"

	// DefaultUploadTTL is how long staged uploads live before cleanup.
	DefaultUploadTTL = "1h"
)

// Config represents the complete fieldset.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Formats contains the format lists the temporal fields and the
	// parse command try, in order.
	Formats FormatsConfig `json:"formats,omitempty"`

	// Locale overrides the built-in English month names and meridiem
	// markers. Nil means English.
	Locale *LocaleConfig `json:"locale,omitempty"`

	// Serve contains validation server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// FormatsConfig contains the candidate format lists by kind.
type FormatsConfig struct {
	// Date formats, tried in order.
	Date []string `json:"date,omitempty"`

	// Time formats, tried in order.
	Time []string `json:"time,omitempty"`

	// DateTime formats, tried in order.
	DateTime []string `json:"datetime,omitempty"`
}

// LocaleConfig describes a locale override. All of Months, MonthsAbbr,
// AM and PM must be supplied; lookups are exact and case-sensitive.
type LocaleConfig struct {
	// Name identifies the locale for the --locale flag.
	Name string `json:"name,omitempty"`

	// Months are the twelve full month names, January first.
	Months []string `json:"months,omitempty"`

	// MonthsAbbr are the twelve abbreviated month names, January first.
	MonthsAbbr []string `json:"monthsAbbr,omitempty"`

	// AM and PM are the meridiem markers.
	AM string `json:"am,omitempty"`
	PM string `json:"pm,omitempty"`
}

// ServeConfig contains validation server settings.
type ServeConfig struct {
	// Port is the port to run the server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// MetricsNamespace is the Prometheus namespace for server metrics.
	MetricsNamespace string `json:"metricsNamespace,omitempty"`

	// MaxBodySize caps request bodies in bytes.
	MaxBodySize int64 `json:"maxBodySize,omitempty"`

	// Upload contains upload staging configuration.
	Upload UploadConfig `json:"upload,omitempty"`
}

// UploadConfig contains upload staging settings.
type UploadConfig struct {
	// Dir is the staging directory for uploaded files.
	Dir string `json:"dir,omitempty"`

	// MaxSize caps a single upload in bytes.
	MaxSize int64 `json:"maxSize,omitempty"`

	// TTL is how long staged uploads live, as a duration string.
	TTL string `json:"ttl,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Formats: FormatsConfig{
			Date:     append([]string(nil), fieldset.DefaultDateFormats...),
			Time:     append([]string(nil), fieldset.DefaultTimeFormats...),
			DateTime: append([]string(nil), fieldset.DefaultDateTimeFormats...),
		},
		Serve: ServeConfig{
			Port:             DefaultPort,
			Host:             DefaultHost,
			MetricsNamespace: DefaultNamespace,
			MaxBodySize:      10 << 20,
			Upload: UploadConfig{
				Dir:     DefaultUploadDir,
				MaxSize: 32 << 20,
				TTL:     DefaultUploadTTL,
			},
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for fieldset.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E140").
				WithDetail("No fieldset.json found in " + filepath.Dir(path)).
				WithSuggestion("Create fieldset.json in the project root, or pass formats with flags")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse fieldset.json: " + err.Error()).
			WithSuggestion("Check that fieldset.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.MetricsNamespace == "" {
		c.Serve.MetricsNamespace = DefaultNamespace
	}
	if c.Serve.MaxBodySize == 0 {
		c.Serve.MaxBodySize = 10 << 20
	}
	if c.Serve.Upload.Dir == "" {
		c.Serve.Upload.Dir = DefaultUploadDir
	}
	if c.Serve.Upload.MaxSize == 0 {
		c.Serve.Upload.MaxSize = 32 << 20
	}
	if c.Serve.Upload.TTL == "" {
		c.Serve.Upload.TTL = DefaultUploadTTL
	}

	if len(c.Formats.Date) == 0 {
		c.Formats.Date = append([]string(nil), fieldset.DefaultDateFormats...)
	}
	if len(c.Formats.Time) == 0 {
		c.Formats.Time = append([]string(nil), fieldset.DefaultTimeFormats...)
	}
	if len(c.Formats.DateTime) == 0 {
		c.Formats.DateTime = append([]string(nil), fieldset.DefaultDateTimeFormats...)
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535")
	}
	if c.Serve.MaxBodySize < 0 {
		return errors.Newf(errors.CategoryConfig, "maxBodySize must not be negative")
	}
	if c.Serve.Upload.MaxSize < 0 {
		return errors.Newf(errors.CategoryConfig, "upload maxSize must not be negative")
	}
	if _, err := time.ParseDuration(c.Serve.Upload.TTL); err != nil {
		return errors.Newf(errors.CategoryConfig, "upload ttl %q is not a duration", c.Serve.Upload.TTL)
	}

	loc, err := c.StrtimeLocale()
	if err != nil {
		return err
	}

	for _, list := range [][]string{c.Formats.Date, c.Formats.Time, c.Formats.DateTime} {
		for _, format := range list {
			if _, err := strtime.Compile(format, loc); err != nil {
				se := errors.FromStrtime(err)
				return errors.New("E123").
					WithDetail("Format " + format + ": " + se.Message).
					WithSnippet(se.Snippet, se.SnippetPos).
					Wrap(err)
			}
		}
	}

	return nil
}

// StrtimeLocale builds the locale table the formats compile against.
// A nil override means the built-in English table.
func (c *Config) StrtimeLocale() (strtime.Locale, error) {
	if c.Locale == nil {
		return strtime.English, nil
	}

	lc := c.Locale
	if len(lc.Months) != 12 || len(lc.MonthsAbbr) != 12 || lc.AM == "" || lc.PM == "" {
		return strtime.Locale{}, errors.New("E124").
			WithDetail("Locale " + lc.Name + " needs 12 months, 12 abbreviations, and both meridiem markers")
	}

	loc := strtime.Locale{AM: lc.AM, PM: lc.PM}
	copy(loc.MonthNames[:], lc.Months)
	copy(loc.MonthNamesShort[:], lc.MonthsAbbr)
	return loc, nil
}

// CompileFormats compiles a format list against the configured locale.
func (c *Config) CompileFormats(formats []string) ([]*strtime.CompiledFormat, error) {
	loc, err := c.StrtimeLocale()
	if err != nil {
		return nil, err
	}

	compiled := make([]*strtime.CompiledFormat, 0, len(formats))
	for _, format := range formats {
		cf, err := strtime.Compile(format, loc)
		if err != nil {
			return nil, errors.FromStrtime(err)
		}
		compiled = append(compiled, cf)
	}
	return compiled, nil
}

// AllFormats returns every configured format: datetime first, then
// date, then time. The parse command tries them in this order.
func (c *Config) AllFormats() []string {
	all := make([]string, 0, len(c.Formats.DateTime)+len(c.Formats.Date)+len(c.Formats.Time))
	all = append(all, c.Formats.DateTime...)
	all = append(all, c.Formats.Date...)
	all = append(all, c.Formats.Time...)
	return all
}

// Address returns the address string for the validation server.
func (c *Config) Address() string {
	return c.Serve.Host + ":" + itoa(c.Serve.Port)
}

// UploadTTL returns the staged upload lifetime. Call Validate first;
// an unparseable TTL falls back to the default here.
func (c *Config) UploadTTL() time.Duration {
	d, err := time.ParseDuration(c.Serve.Upload.TTL)
	if err != nil {
		d, _ = time.ParseDuration(DefaultUploadTTL)
	}
	return d
}

// UploadDir returns the absolute path to the upload staging directory.
func (c *Config) UploadDir() string {
	if filepath.IsAbs(c.Serve.Upload.Dir) {
		return c.Serve.Upload.Dir
	}
	return filepath.Join(c.Dir(), c.Serve.Upload.Dir)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing fieldset.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E140").
				WithDetail("No fieldset.json found in " + startDir + " or any parent directory").
				WithSuggestion("Create fieldset.json in the project root, or pass formats with flags")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

// itoa converts int to string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	// Reverse
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
