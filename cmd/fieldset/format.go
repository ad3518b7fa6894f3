package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldset-dev/fieldset/internal/errors"
	"github.com/fieldset-dev/fieldset/pkg/strtime"
)

func formatCmd() *cobra.Command {
	var (
		layout string
		locale string
		utc    bool
	)

	cmd := &cobra.Command{
		Use:   "format [DATETIME]",
		Short: "Render a date/time with a %-layout",
		Long: `Render a moment with a %-directive layout.

DATETIME is an RFC 3339 timestamp, anything the configured formats
can parse, or "now" (the default) for the current time.

Directives: %Y %y %m %d %H %M %S %%

Examples:
  fieldset format
  fieldset format --layout="%d.%m.%Y"
  fieldset format 2024-03-15T14:30:00Z --layout="%H:%M"
  fieldset format "03/15/2024" --layout=%Y-%m-%d`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return runFormat(arg, layout, locale, utc)
		},
	}

	cmd.Flags().StringVarP(&layout, "layout", "L", "%Y-%m-%d %H:%M:%S", "Output layout")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "Locale for parsing month names (default from fieldset.json)")
	cmd.Flags().BoolVar(&utc, "utc", false, "Render in UTC")

	return cmd
}

func runFormat(arg, layout, locale string, utc bool) error {
	// Reject a bad layout before touching the input.
	if _, err := strtime.Format(time.Time{}, layout); err != nil {
		return layoutError(layout, err)
	}

	if arg == "" || arg == "now" {
		t := time.Now()
		if utc {
			t = t.UTC()
		}
		out, err := strtime.Format(t, layout)
		if err != nil {
			return layoutError(layout, err)
		}
		fmt.Println(out)
		return nil
	}

	if t, err := time.Parse(time.RFC3339, arg); err == nil {
		if utc {
			t = t.UTC()
		}
		out, err := strtime.Format(t, layout)
		if err != nil {
			return layoutError(layout, err)
		}
		fmt.Println(out)
		return nil
	}

	// Not RFC 3339; fall back to the configured parse formats.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loc, err := resolveLocale(cfg, locale)
	if err != nil {
		return err
	}
	compiled, err := compileAll(cfg.AllFormats(), loc)
	if err != nil {
		return err
	}

	ct, err := strtime.ParseAny(arg, compiled...)
	if err != nil {
		return errors.New("E141").
			WithDetail(fmt.Sprintf("%q is neither RFC 3339 nor a configured format.", arg)).
			WithSuggestion("Pass an RFC 3339 timestamp like 2024-03-15T14:30:00Z")
	}

	out, err := strtime.FormatCanonical(ct, layout)
	if err != nil {
		return layoutError(layout, err)
	}
	fmt.Println(out)
	return nil
}

// layoutError recodes an engine layout failure as the CLI-facing
// invalid-layout error, keeping the snippet caret.
func layoutError(layout string, err error) error {
	se := errors.FromStrtime(err)
	return errors.New("E142").
		WithDetail(se.Message + " in layout " + fmt.Sprintf("%q", layout)).
		WithSnippet(se.Snippet, se.SnippetPos).
		Wrap(err)
}

// compileAll compiles a format list, surfacing the first failure with
// its caret.
func compileAll(formats []string, loc strtime.Locale) ([]*strtime.CompiledFormat, error) {
	compiled := make([]*strtime.CompiledFormat, 0, len(formats))
	for _, f := range formats {
		cf, err := strtime.Compile(f, loc)
		if err != nil {
			return nil, errors.FromStrtime(err)
		}
		compiled = append(compiled, cf)
	}
	return compiled, nil
}
