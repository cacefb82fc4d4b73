package planner

import "github.com/danieljhkim/twmerge/internal/token"

// Plan is the outcome of resolving one token sequence.
type Plan struct {
	// Entries holds one entry per input token, in input order
	Entries []Entry

	// Conflicts lists every dropped token, ordered from the last input
	// position to the first
	Conflicts []Conflict
}

// Entry is a single input token and its resolution.
type Entry struct {
	// Index is the token's position in the flattened input
	Index int

	// Token is the parsed token
	Token token.Token

	// Group is the conflict group, empty when unclassified
	Group string

	// Key is Modifiers + Group, empty when unclassified
	Key string

	// Kept reports whether the token survives
	Kept bool
}

// Classified reports whether the token resolved to a conflict group.
func (e Entry) Classified() bool {
	return e.Group != ""
}

// Conflict records a dropped token and the token that displaced it.
type Conflict struct {
	// Key is the shared group key; empty for duplicates of unclassified tokens
	Key string

	// Dropped is the losing token
	Dropped string

	// DroppedIndex is the losing token's input position
	DroppedIndex int

	// Winner is the surviving token
	Winner string

	// WinnerIndex is the surviving token's input position
	WinnerIndex int
}

// Duplicate reports whether the conflict is a literal duplicate rather than
// a group override.
func (c Conflict) Duplicate() bool {
	return c.Dropped == c.Winner
}

// HasConflicts returns true if any token was dropped.
func (p *Plan) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// Kept returns the surviving tokens in input order.
func (p *Plan) Kept() []string {
	kept := make([]string, 0, len(p.Entries)-len(p.Conflicts))
	for _, e := range p.Entries {
		if e.Kept {
			kept = append(kept, e.Token.Raw)
		}
	}
	return kept
}

// Dropped returns the dropped tokens in input order.
func (p *Plan) Dropped() []string {
	var dropped []string
	for _, e := range p.Entries {
		if !e.Kept {
			dropped = append(dropped, e.Token.Raw)
		}
	}
	return dropped
}

// addConflict adds a conflict to the plan.
func (p *Plan) addConflict(conflict Conflict) {
	p.Conflicts = append(p.Conflicts, conflict)
}
