package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/reoring/fieldkit"
	"github.com/reoring/fieldkit/codec"
	"github.com/reoring/fieldkit/report"
	"github.com/reoring/fieldkit/schema"
)

func (a *app) validateCmd() *cobra.Command {
	var (
		schemaName string
		format     string
		output     string
		failFast   bool
	)
	cmd := &cobra.Command{
		Use:   "validate --schema NAME [FILE]",
		Short: "Validate a JSON or YAML document",
		Long:  "Validate a document read from FILE, or stdin when FILE is omitted or \"-\". Prints the validated document, or an error body and exits 1.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := lookup(schemaName)
			if err != nil {
				return err
			}
			if n.schema == nil {
				return fmt.Errorf("schema %q is documentation only", schemaName)
			}
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			data, err := a.read(name)
			if err != nil {
				return err
			}
			in := codec.FormatOf(name)
			if format != "" {
				if in, err = codec.ParseFormat(format); err != nil {
					return err
				}
			}
			outFmt, err := codec.ParseFormat(output)
			if err != nil {
				return err
			}

			doc, err := codec.Decode(in, data)
			if err != nil {
				return a.fail(fieldkit.IssuesFromErr("/", err))
			}
			v := a.validator()
			if failFast {
				v = v.With(schema.WithFailFast(true))
			}
			got, err := v.ValidateAny(cmd.Context(), n.schema, doc)
			if err != nil {
				iss, ok := fieldkit.AsIssues(err)
				if !ok {
					return err
				}
				return a.fail(iss)
			}
			a.log.Info().Str("schema", schemaName).Msg("document valid")
			return codec.Encode(a.out, outFmt, got)
		},
	}
	f := cmd.Flags()
	f.StringVar(&schemaName, "schema", "", "schema name (see 'fieldkit schema --list')")
	f.StringVar(&format, "format", "", "input format: json or yaml (default: from file extension)")
	f.StringVar(&output, "output", "json", "output format: json or yaml")
	f.BoolVar(&failFast, "fail-fast", false, "report only the first issue of each field")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func (a *app) read(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(a.in)
	}
	return os.ReadFile(name)
}

// fail prints the error body for iss and returns errIssues.
func (a *app) fail(iss fieldkit.Issues) error {
	a.log.Warn().Int("issues", len(iss)).Msg("document invalid")
	body := report.NewErrorBody(iss, http.StatusBadRequest, "", time.Now())
	if err := codec.EncodeJSON(a.out, body, true); err != nil {
		return err
	}
	return errIssues
}
