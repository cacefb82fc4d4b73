package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/twmerge/internal/engine"
)

var mergeSort bool

var mergeCmd = &cobra.Command{
	Use:   "merge [class-list...]",
	Short: "Merge class lists; later classes win",
	Long: `Merge one or more class lists into a single conflict-free list.

Each argument is a space-separated class list. Lists are read from stdin, one
per line, when no arguments are given. Later classes override earlier classes
with the same group and modifiers.

Examples:
  twmerge merge "p-4 w-6" "w-8"
  echo "px-2 py-1 p-3" | twmerge merge`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().BoolVar(&mergeSort, "sort", false, "Emit merged classes in lexicographic order")
}

type mergeOutput struct {
	Input  []string `json:"input"`
	Result string   `json:"result"`
}

func runMerge(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	lists, err := classLists(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var opts []engine.Option
	if mergeSort {
		opts = append(opts, engine.WithSortedOutput())
	}
	result := s.newEngine(opts...).Merge(lists...)

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), mergeOutput{Input: lists, Result: result})
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
