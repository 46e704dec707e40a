// Command rei is the thin driver over internal/rei's evaluator: it
// implements only the `<interpreter> <file>` execution surface (spec
// §6). The `new`/`setup`/interactive-prompt surfaces spec §6 also
// documents are explicit Non-goals and are not implemented here.
package main

import (
	"fmt"
	"os"

	"github.com/zyneaa/rei/cmd/rei/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
