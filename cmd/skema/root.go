package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/reoring/skema/i18n"
	"github.com/reoring/skema/internal/demo"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	stdout, stderr io.Writer

	logLevel string
	lang     string
	noColor  bool

	log    *slog.Logger
	set    *demo.Set
	good   func(a ...any) string
	bad    func(a ...any) string
	accent func(a ...any) string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "skema",
		Short:         "Document, project and validate against the demo schema set",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.lang, "lang", "en", "language of validation messages (en, ja)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.listCmd(),
		a.docCmd(),
		a.wireCmd(),
		a.validateCmd(),
	)
	return root
}

func (a *app) setup() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.log = slog.New(tint.NewHandler(a.stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    a.noColor || !isTerminal(a.stderr),
	}))
	i18n.SetLanguage(a.lang)

	colored := !a.noColor && isTerminal(a.stdout)
	a.good = sprint(color.FgGreen, colored)
	a.bad = sprint(color.FgRed, colored)
	a.accent = sprint(color.FgCyan, colored)

	set, err := demo.New()
	if err != nil {
		return fmt.Errorf("building demo schemas: %w", err)
	}
	a.set = set
	a.log.Debug("demo schemas ready", "count", set.Registry.Len())
	return nil
}

func sprint(attr color.Attribute, enabled bool) func(a ...any) string {
	c := color.New(attr)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
