package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [class-list...]",
	Short: "Show which classes a merge keeps and why",
	Long: `Explain a merge: list every input class with its group key, whether it
survives, and which later class displaced each dropped one.

Examples:
  twmerge explain "p-4 w-6" "w-8"
  twmerge explain --json "hover:bg-red-500 hover:bg-blue-500"`,
	RunE: runExplain,
}

type explainToken struct {
	Index int    `json:"index"`
	Class string `json:"class"`
	Group string `json:"group,omitempty"`
	Key   string `json:"key,omitempty"`
	Kept  bool   `json:"kept"`
}

type explainConflict struct {
	Key     string `json:"key,omitempty"`
	Dropped string `json:"dropped"`
	Winner  string `json:"winner"`
	// Duplicate is true when the dropped class repeats a kept class verbatim
	Duplicate bool `json:"duplicate"`
}

type explainOutput struct {
	Result    string            `json:"result"`
	Tokens    []explainToken    `json:"tokens"`
	Conflicts []explainConflict `json:"conflicts"`
}

func runExplain(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	lists, err := classLists(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	eng := s.newEngine()
	plan := eng.Plan(lists...)

	out := explainOutput{
		Result:    eng.Render(plan),
		Tokens:    make([]explainToken, 0, len(plan.Entries)),
		Conflicts: make([]explainConflict, 0, len(plan.Conflicts)),
	}
	for _, e := range plan.Entries {
		out.Tokens = append(out.Tokens, explainToken{
			Index: e.Index,
			Class: e.Token.Raw,
			Group: e.Group,
			Key:   e.Key,
			Kept:  e.Kept,
		})
	}
	for _, c := range plan.Conflicts {
		out.Conflicts = append(out.Conflicts, explainConflict{
			Key:       c.Key,
			Dropped:   c.Dropped,
			Winner:    c.Winner,
			Duplicate: c.Duplicate(),
		})
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), out)
	}

	w := cmd.OutOrStdout()

	PrintSection(w, "Result")
	PrintLabelValue(w, "Merged", orDash(out.Result))
	PrintLabelValue(w, "Dropped", PrintCount(len(out.Conflicts), "class", "classes"))

	PrintSection(w, "Classes")
	if len(out.Tokens) == 0 {
		PrintEmptyState(w, "No classes in input")
		return nil
	}
	rows := make([][]string, 0, len(out.Tokens))
	for _, t := range out.Tokens {
		rows = append(rows, []string{
			strconv.Itoa(t.Index),
			t.Class,
			orDash(t.Key),
			statusLabel(t.Kept),
		})
	}
	PrintTable(w, []string{"#", "CLASS", "KEY", "STATUS"}, rows)

	if len(out.Conflicts) == 0 {
		return nil
	}

	PrintSection(w, "Overrides")
	items := make([]string, 0, len(out.Conflicts))
	for _, c := range out.Conflicts {
		if c.Duplicate {
			items = append(items, fmt.Sprintf("%s repeated later", c.Dropped))
			continue
		}
		items = append(items, fmt.Sprintf("%s → %s (%s)", c.Dropped, c.Winner, c.Key))
	}
	PrintList(w, items, 1)

	return nil
}

