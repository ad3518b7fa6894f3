package main

import (
	"github.com/spf13/cobra"

	"github.com/fieldset-dev/fieldset/internal/errors"
	"github.com/fieldset-dev/fieldset/pkg/strtime"
)

func checkCmd() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "check [FORMAT...]",
		Short: "Check that formats compile",
		Long: `Compile each format against the locale and report problems.

Failures point at the offending token:

  Format:
    yyyy-Q
         ^

With no arguments inside a project, the fieldset.json format lists
are checked instead.

Examples:
  fieldset check yyyy-MM-dd
  fieldset check "d MMMM yyyy" HH:mm
  fieldset check --locale=en "MMMM d"
  fieldset check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, locale)
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "Locale for month names (default from fieldset.json)")

	return cmd
}

func runCheck(formats []string, locale string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loc, err := resolveLocale(cfg, locale)
	if err != nil {
		return err
	}

	if len(formats) == 0 {
		formats = cfg.AllFormats()
		info("Checking %d formats from fieldset.json", len(formats))
	}

	failed := 0
	for _, f := range formats {
		if _, err := strtime.Compile(f, loc); err != nil {
			failed++
			errorMsg("%s", f)
			errors.PrintError(errors.FromStrtime(err))
			continue
		}
		success("%s", f)
	}

	if failed > 0 {
		return errors.Newf(errors.CategoryCLI, "%d of %d formats failed to compile", failed, len(formats))
	}
	return nil
}
