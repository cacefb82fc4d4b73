package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/twmerge/internal/config"
	"github.com/danieljhkim/twmerge/internal/fsops"
	"github.com/danieljhkim/twmerge/internal/hash"
)

var (
	rulesGroup  string
	rulesOutput string
	rulesForce  bool
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and export the rule table",
	Long: `Inspect the active rule table: the built-in catalogue plus any custom
rules from the loaded rule file.`,
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List matchers and their groups",
	Long: `List every matcher in registration order with its group and kind.

Examples:
  twmerge rules list
  twmerge rules list --group padding`,
	Args: cobra.NoArgs,
	RunE: runRulesList,
}

var rulesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active rule table as a rule file",
	Long: `Export the active rule table as a self-contained rule file.

The exported file disables the built-in catalogue and lists every rule
explicitly, so it can be edited and loaded with --rules.

Examples:
  twmerge rules export > rules.yaml
  twmerge rules export --output .twmerge.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runRulesExport,
}

func init() {
	rulesListCmd.Flags().StringVarP(&rulesGroup, "group", "g", "", "Only list matchers of this group")
	rulesExportCmd.Flags().StringVarP(&rulesOutput, "output", "o", "", "Write to a file instead of stdout")
	rulesExportCmd.Flags().BoolVarP(&rulesForce, "force", "f", false, "Overwrite an existing output file")

	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesExportCmd)
}

type ruleEntryOutput struct {
	Group   string `json:"group"`
	Matcher string `json:"matcher"`
	Kind    string `json:"kind"`
}

func runRulesList(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	var entries []ruleEntryOutput
	for _, e := range s.newEngine().Rules() {
		if rulesGroup != "" && e.Group != rulesGroup {
			continue
		}
		entries = append(entries, ruleEntryOutput{
			Group:   e.Group,
			Matcher: e.Matcher.Value,
			Kind:    e.Matcher.Kind.String(),
		})
	}

	if jsonOutput {
		if entries == nil {
			entries = []ruleEntryOutput{}
		}
		return outputJSON(cmd.OutOrStdout(), entries)
	}

	w := cmd.OutOrStdout()
	if len(entries) == 0 {
		if rulesGroup != "" {
			PrintEmptyState(w, fmt.Sprintf("No matchers for group %q", rulesGroup))
		} else {
			PrintEmptyState(w, "Rule table is empty")
		}
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Group, e.Matcher, e.Kind})
	}
	PrintTable(w, []string{"GROUP", "MATCHER", "KIND"}, rows)
	return nil
}

func runRulesExport(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	table := s.newEngine().Table()
	body, err := config.Marshal(config.FromTable(table))
	if err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# twmerge rules export (%s)\n", orDash(s.rulesPath))
	fmt.Fprintf(&buf, "# sha256: %s\n", hash.Digest(body))
	buf.Write(body)

	if rulesOutput == "" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	fs := fsops.NewRealFS()
	exists, err := fs.Exists(rulesOutput)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", rulesOutput, err)
	}
	if exists {
		// Leave an identical file untouched so rule watchers do not reload.
		current, err := fs.ReadFile(rulesOutput)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rulesOutput, err)
		}
		if hash.Digest(current) == hash.Digest(buf.Bytes()) {
			PrintInfo(cmd.OutOrStdout(), fmt.Sprintf("%s is already up to date", rulesOutput))
			return nil
		}
		if !rulesForce {
			return fmt.Errorf("%s already exists\nUse --force to overwrite", rulesOutput)
		}
	}
	if err := fs.AtomicWrite(rulesOutput, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rulesOutput, err)
	}

	s.logger.Info().Str("path", rulesOutput).Int("bytes", buf.Len()).Msg("rules exported")
	PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Exported %s to %s",
		PrintCount(table.Len(), "matcher", "matchers"), rulesOutput))
	return nil
}
