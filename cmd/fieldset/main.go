package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldset-dev/fieldset/internal/config"
	"github.com/fieldset-dev/fieldset/internal/errors"
	"github.com/fieldset-dev/fieldset/pkg/strtime"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬┌─┐┬  ┌┬┐┌─┐┌─┐┌┬┐
  ├┤ │├┤ │   ││└─┐├┤  │
  └  ┴└─┘┴─┘─┴┘└─┘└─┘ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldset",
		Short: "Form validation with a locale-aware date/time engine",
		Long: `Fieldset is a form definition and validation library.

Define fields, bind submissions, and get cleaned native values
back. At the core sits a locale-aware date/time format engine:

  • Unicode-style format tokens (yyyy-MM-dd, d MMMM yyyy h:mm a)
  • Locale month names and meridiem markers
  • Range errors instead of silent mismatches
  • Per-project formats and locale via fieldset.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands
	rootCmd.AddCommand(
		parseCmd(),
		formatCmd(),
		checkCmd(),
		serveCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		var fe *errors.FieldsetError
		if stderrors.As(err, &fe) {
			errors.PrintError(fe)
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the Fieldset ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}

// loadConfig reads fieldset.json from the working directory, falling
// back to defaults outside a project. A present-but-broken config
// still fails: silently ignoring it would mask typos.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		var fe *errors.FieldsetError
		if stderrors.As(err, &fe) && fe.Code == "E140" {
			return config.New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// resolveLocale picks the locale table for a --locale flag value.
// Empty means the config's override when present, English otherwise.
func resolveLocale(cfg *config.Config, name string) (strtime.Locale, error) {
	switch {
	case name == "":
		return cfg.StrtimeLocale()
	case name == "en":
		return strtime.English, nil
	case cfg.Locale != nil && cfg.Locale.Name == name:
		return cfg.StrtimeLocale()
	}

	known := `"en"`
	if cfg.Locale != nil && cfg.Locale.Name != "" {
		known += fmt.Sprintf(", %q", cfg.Locale.Name)
	}
	return strtime.Locale{}, errors.New("E143").
		WithDetail(fmt.Sprintf("Locale %q is not defined; known locales: %s.", name, known)).
		WithSuggestion("Add a locale block to fieldset.json, or use --locale=en")
}
