package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/twmerge/internal/engine"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <class...>",
	Short: "Show the conflict group of each class",
	Long: `Classify classes against the rule table and print each one's group and
group key. Two classes conflict exactly when their keys are equal.

Examples:
  twmerge classify p-4 hover:px-2 "bg-[#123456]" btn`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	eng := s.newEngine()
	results := make([]engine.Classification, 0, len(args))
	for _, raw := range args {
		results = append(results, eng.Classify(raw))
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), results)
	}

	rows := make([][]string, 0, len(results))
	for _, c := range results {
		rows = append(rows, []string{
			c.Token,
			orDash(c.Modifiers),
			orDash(c.Group),
			orDash(c.Key),
		})
	}
	PrintTable(cmd.OutOrStdout(), []string{"CLASS", "MODIFIERS", "GROUP", "KEY"}, rows)
	return nil
}
