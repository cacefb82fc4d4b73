package planner

import "github.com/danieljhkim/twmerge/internal/token"

// Classifier maps a base name to its conflict group.
type Classifier interface {
	Classify(base string) (string, bool)
}

// Build resolves tokens against c. Later tokens take precedence: for each
// group key only the last token is kept, and unclassified tokens are only
// dropped when an identical token appears later.
func Build(tokens []string, c Classifier) *Plan {
	plan := &Plan{
		Entries:   make([]Entry, len(tokens)),
		Conflicts: []Conflict{},
	}

	for i, raw := range tokens {
		tok := token.Parse(raw)
		entry := Entry{Index: i, Token: tok}
		if group, ok := c.Classify(tok.Base); ok && group != "" {
			entry.Group = group
			entry.Key = tok.Modifiers + group
		}
		plan.Entries[i] = entry
	}

	keptByKey := make(map[string]int)
	keptByLiteral := make(map[string]int)

	for i := len(plan.Entries) - 1; i >= 0; i-- {
		entry := &plan.Entries[i]

		if entry.Classified() {
			if winner, seen := keptByKey[entry.Key]; seen {
				plan.addConflict(Conflict{
					Key:          entry.Key,
					Dropped:      entry.Token.Raw,
					DroppedIndex: i,
					Winner:       plan.Entries[winner].Token.Raw,
					WinnerIndex:  winner,
				})
				continue
			}
			keptByKey[entry.Key] = i
			entry.Kept = true
			continue
		}

		if winner, seen := keptByLiteral[entry.Token.Raw]; seen {
			plan.addConflict(Conflict{
				Dropped:      entry.Token.Raw,
				DroppedIndex: i,
				Winner:       plan.Entries[winner].Token.Raw,
				WinnerIndex:  winner,
			})
			continue
		}
		keptByLiteral[entry.Token.Raw] = i
		entry.Kept = true
	}

	return plan
}
