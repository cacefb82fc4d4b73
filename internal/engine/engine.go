// Package engine provides the class merging operations used by the public
// API and the CLI.
//
// The engine is the orchestration layer between callers and the lower-level
// packages. It flattens class lists, asks the planner which tokens survive,
// and serializes the result.
//
// Key components:
//   - Engine: owns a rule table and a logger
//   - Merge/Plan: conflict resolution over class lists
//   - Classify: group key lookup for a single token
//   - AddRule: runtime extension of the rule table
package engine

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/twmerge/internal/planner"
	"github.com/danieljhkim/twmerge/internal/rules"
	"github.com/danieljhkim/twmerge/internal/token"
)

// Engine merges class lists against its own rule table.
//
// An Engine is safe for concurrent Merge calls as long as no goroutine calls
// AddRule at the same time.
type Engine struct {
	table  *rules.Table
	logger zerolog.Logger
	sorted bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithSortedOutput makes Merge emit surviving tokens in lexicographic order
// instead of their original relative order.
func WithSortedOutput() Option {
	return func(e *Engine) {
		e.sorted = true
	}
}

// New creates an Engine that owns table.
func New(table *rules.Table, logger zerolog.Logger, opts ...Option) *Engine {
	if table == nil {
		table = rules.New()
	}
	e := &Engine{
		table:  table,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Merge flattens lists, resolves conflicts, and returns the surviving tokens
// space-joined. It returns "" when there are no tokens.
func (e *Engine) Merge(lists ...string) string {
	return e.Render(e.Plan(lists...))
}

// Render serializes the surviving tokens of plan using the engine's output
// order.
func (e *Engine) Render(plan *planner.Plan) string {
	kept := plan.Kept()
	if e.sorted {
		sort.Strings(kept)
	}
	return strings.Join(kept, " ")
}

// Plan returns the full resolution for lists.
func (e *Engine) Plan(lists ...string) *planner.Plan {
	tokens := token.Fields(lists...)
	plan := planner.Build(tokens, e.table)

	for _, c := range plan.Conflicts {
		e.logger.Debug().
			Str("dropped", c.Dropped).
			Str("winner", c.Winner).
			Str("key", c.Key).
			Msg("class overridden")
	}

	return plan
}

// Classify resolves the group key of a single token.
func (e *Engine) Classify(raw string) Classification {
	tok := token.Parse(raw)
	c := Classification{
		Token:     tok.Raw,
		Modifiers: tok.Modifiers,
		Base:      tok.Base,
	}
	if _, ok := token.ArbitraryKey(tok.Base); ok {
		c.Arbitrary = true
	}
	if group, ok := e.table.Classify(tok.Base); ok {
		c.Group = group
		c.Key = tok.Modifiers + group
	}
	return c
}

// AddRule registers matchers for group. Matchers ending in "-" are prefixes;
// all others match exactly.
func (e *Engine) AddRule(group string, matchers ...string) {
	e.table.Register(group, matchers...)
	e.logger.Debug().
		Str("group", group).
		Strs("matchers", matchers).
		Msg("rule added")
}

// Rules returns the engine's rule table entries in registration order.
func (e *Engine) Rules() []rules.Entry {
	return e.table.Entries()
}

// Table returns the engine's rule table.
func (e *Engine) Table() *rules.Table {
	return e.table
}
