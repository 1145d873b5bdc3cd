// hebmorph resolves and exercises the Hebrew analysis dictionary:
// load it from configured or well-known locations, check words against it,
// run the analyzers, and serve the diagnostics API.
package main

import (
	"os"

	"github.com/code972/hebmorph/cmd/hebmorph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
