package main

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reoring/fieldkit/i18n"
	"github.com/reoring/fieldkit/internal/logging"
	"github.com/reoring/fieldkit/schema"
)

// errIssues signals that validation failed and the error body was already
// printed.
var errIssues = errors.New("validation failed")

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logLevel  string
	logFormat string
	lang      string

	log zerolog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, log: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "fieldkit",
		Short:         "Validate documents against fieldkit schemas",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.New(a.logLevel, a.logFormat, a.errOut)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", logging.FormatConsole, "log format (console, json)")
	pf.StringVar(&a.lang, "lang", "en", "message language, as an Accept-Language value")

	root.AddCommand(a.validateCmd(), a.schemaCmd(), a.paginateCmd())
	return root
}

func (a *app) validator() *schema.Validator {
	cat := i18n.MustBundle("en").Lookup(a.lang)
	a.log.Debug().Str("lang", cat.Lang()).Msg("message catalog selected")
	return schema.NewValidator(schema.WithCatalog(cat), schema.WithLogger(a.log))
}
