// Command fieldkit validates documents against the built-in schemas, prints
// their JSON Schemas and computes pagination metadata.
//
// Usage:
//
//	fieldkit validate --schema offset-options query.json
//	fieldkit schema app-config --yaml
//	fieldkit paginate offset --total 95 --limit 10 --page 3
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errIssues) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
