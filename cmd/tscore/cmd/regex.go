package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tsforge/tscore/internal/clierr"
	"github.com/tsforge/tscore/internal/jsregex"
	"github.com/tsforge/tscore/internal/types"
)

var (
	regexFlags   string
	regexAgainst string
)

var regexCmd = &cobra.Command{
	Use:   "regex <pattern>",
	Short: "Compile a regular expression and optionally exec it against a literal",
	Long: `Compile <pattern> through the store's regex constructor.

Without --against, prints the canonical /pattern/flags source and whether
the flags fall outside what the concrete evaluator supports.

With --against, partial-evaluates the pattern against the given literal
string the way the checker would for a known-constant operand, and prints
the rendered shape of the result (a match-object type, or null).`,
	Args: cobra.ExactArgs(1),
	RunE: runRegex,
}

func init() {
	rootCmd.AddCommand(regexCmd)

	regexCmd.Flags().StringVar(&regexFlags, "flags", "", "regex flags, e.g. \"gi\"")
	regexCmd.Flags().StringVar(&regexAgainst, "against", "", "literal string to exec the pattern against")
}

func runRegex(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	out := cmd.OutOrStdout()

	store := types.NewStore()
	regexType, err := store.NewRegExp(pattern, regexFlags)
	if err != nil {
		if uf, ok := err.(*jsregex.UnknownFlagError); ok {
			return clierr.New(uf.Error(), regexFlags, "--flags", 0)
		}
		return clierr.New(err.Error(), pattern, "pattern", 0)
	}

	compiled, _ := store.RegExpOf(regexType)

	if regexAgainst == "" {
		fmt.Fprintln(out, compiled.Source())
		if compiled.FlagsUnsupported() {
			fmt.Fprintln(out, "flags unsupported for concrete evaluation")
		}
		return nil
	}

	operand := store.NewConstantType(types.NewStringConstant(regexAgainst))
	result := store.ExecRegExp(regexType, operand, types.NullSpan)
	fmt.Fprintln(out, store.Render(result))
	return nil
}
