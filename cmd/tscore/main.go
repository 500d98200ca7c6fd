// Command tscore exposes the type store as a standalone tool: dumping the
// builtin identifier table and exercising the regular-expression constant
// partial-evaluator from the shell, without needing a full checker.
package main

import (
	"fmt"
	"os"

	"github.com/tsforge/tscore/cmd/tscore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
