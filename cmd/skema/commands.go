package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/htmldoc"
	"github.com/reoring/skema/jsonschema"
	"github.com/reoring/skema/validate"
)

// errInvalid reports that validation ran and the value was rejected. The
// issues have already been printed.
var errInvalid = errors.New("value does not conform")

func (a *app) lookup(name string) (skema.Node, error) {
	n, ok := a.set.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: no schema titled %q (see `skema list`)", skema.ErrUnknownReference, name)
	}
	return n, nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the titled schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, n := range a.set.Registry.Nodes() {
				opts := n.Meta()
				fmt.Fprintf(a.stdout, "%s\t%s\n", a.accent(opts.Title), opts.Description)
			}
			return nil
		},
	}
}

func (a *app) docCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Render the HTML documentation page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := htmldoc.New(htmldoc.WithLogger(a.log)).Document(a.set.Top)
			if out == "" || out == "-" {
				_, err := fmt.Fprint(a.stdout, page)
				return err
			}
			if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			a.log.Info("wrote documentation", "path", out, "schemas", len(a.set.Top))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (a *app) wireCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "wire NAME",
		Short: "Print the wire schema of a titled schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			w, err := jsonschema.Project(n)
			if err != nil {
				return err
			}
			var b []byte
			switch strings.ToLower(format) {
			case "json":
				b, err = w.JSON()
			case "yaml":
				b, err = w.YAML()
			case "draft2020":
				b, err = json.MarshalIndent(w.Draft2020(), "", "  ")
			default:
				return fmt.Errorf("unknown format %q (json, yaml, draft2020)", format)
			}
			if err != nil {
				return err
			}
			if len(b) > 0 && b[len(b)-1] != '\n' {
				b = append(b, '\n')
			}
			_, err = a.stdout.Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml or draft2020")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate NAME FILE",
		Short: "Check a JSON or YAML document against a titled schema",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			v, dups, err := readValue(args[1])
			if err != nil {
				return err
			}
			for _, it := range dups {
				a.log.Warn("duplicate key in input", "path", it.Path, "key", it.Params["key"])
			}
			a.log.Debug("validating", "schema", args[0], "file", args[1])
			var iss skema.Issues
			if strict {
				iss = append(iss, dups...)
			}
			if err := validate.Check(n, v); err != nil {
				more, ok := skema.AsIssues(err)
				if !ok {
					return err
				}
				iss = append(iss, more...)
			}
			if len(iss) == 0 {
				fmt.Fprintf(a.stdout, "%s %s conforms to %s\n", a.good("ok"), args[1], args[0])
				return nil
			}
			for _, it := range iss {
				line := fmt.Sprintf("%s %s %s: %s", a.bad("✗"), a.accent(it.Path), it.Code, it.Message)
				if it.Hint != "" {
					line += " (" + it.Hint + ")"
				}
				fmt.Fprintln(a.stdout, line)
			}
			a.log.Info("validation failed", "schema", args[0], "issues", len(iss))
			return errInvalid
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat duplicate JSON object keys as failures")
	return cmd
}
