// Command cupidctl builds the catalog and inspects Cardboard Cupid's saved state.
//
// Usage:
//
//	cupidctl prep --in ranks.csv --out games.json
//	cupidctl owned list
//	cupidctl owned clear
//	cupidctl search [query]
package main

import (
	"fmt"
	"os"

	"github.com/abelbrown/cupid/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cupidctl:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
