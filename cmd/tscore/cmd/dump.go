package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tsforge/tscore/internal/types"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the builtin identifier table",
	Long: `Print every builtin type registered by a fresh store, one per line,
in registration order: its id, its descriptor variant, and its rendered
shape.`,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	store := types.NewStore()
	out := cmd.OutOrStdout()

	for i := 0; i < store.Count(); i++ {
		id := types.TypeID(i)
		fmt.Fprintf(out, "%-4s %T %s\n", id, store.Get(id), store.Render(id))
	}
	return nil
}
