package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/fieldkit/codec"
)

func (a *app) schemaCmd() *cobra.Command {
	var (
		asYAML bool
		list   bool
	)
	cmd := &cobra.Command{
		Use:   "schema [NAME]",
		Short: "Print the JSON Schema of a named schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list || len(args) == 0 {
				_, err := fmt.Fprintln(a.out, strings.Join(names(), "\n"))
				return err
			}
			n, err := lookup(args[0])
			if err != nil {
				return err
			}
			if asYAML {
				return codec.Encode(a.out, codec.YAML, n.doc())
			}
			return codec.EncodeJSON(a.out, n.doc(), true)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print YAML instead of JSON")
	cmd.Flags().BoolVar(&list, "list", false, "list schema names")
	return cmd
}
