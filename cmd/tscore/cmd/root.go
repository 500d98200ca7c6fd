package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tscore",
	Short: "Inspect the type-store's builtin table and regex evaluator",
	Long: `tscore is a standalone driver for the type store: the append-only
arena of builtin and user type descriptors, and the constant-folding
evaluators built on top of it.

It does not parse or check a program -- there is no source language front
end here -- it only exercises the store directly, which is useful for
understanding the builtin identifier table and for spot-checking how the
regex partial-evaluator folds a pattern against a known string.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
