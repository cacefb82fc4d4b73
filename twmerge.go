// Package twmerge merges utility class lists, dropping classes that are
// overridden by a later class for the same property.
//
// # Merging
//
// Later classes win within a conflict group; classes that do not conflict are
// kept in their original order:
//
//	twmerge.Merge("p-4 pt-2 text-red-500", "pt-1 text-blue-500")
//	// "p-4 pt-1 text-blue-500"
//
// Variant modifiers are part of a class's identity, so "hover:text-red-500"
// and "text-blue-500" both survive.
//
// # Custom rules
//
// AddRule registers extra matchers. A matcher ending in "-" matches by prefix,
// and the longest matching prefix wins; any other matcher must equal the class
// exactly and outranks every prefix:
//
//	twmerge.AddRule("brand-color", "text-brand-")
//
// The package-level functions share one default Merger. Register rules at
// startup, before Merge is called from multiple goroutines. Use New for
// independently configured mergers.
package twmerge

import (
	"github.com/rs/zerolog"

	"github.com/danieljhkim/twmerge/internal/engine"
	"github.com/danieljhkim/twmerge/internal/rules"
)

// Merger merges class lists against its own rule table.
type Merger struct {
	eng *engine.Engine
}

type settings struct {
	logger   zerolog.Logger
	defaults bool
	sorted   bool
	rules    []rules.Rule
}

// Option configures a Merger.
type Option func(*settings)

// WithLogger sets the logger used for debug output about dropped classes.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithRule registers matchers for group when the Merger is created.
func WithRule(group string, matchers ...string) Option {
	return func(s *settings) {
		s.rules = append(s.rules, rules.Rule{Group: group, Matchers: matchers})
	}
}

// WithoutDefaultRules starts from an empty rule table.
func WithoutDefaultRules() Option {
	return func(s *settings) {
		s.defaults = false
	}
}

// WithSortedOutput emits surviving classes in lexicographic order.
func WithSortedOutput() Option {
	return func(s *settings) {
		s.sorted = true
	}
}

// New creates a Merger with the built-in rules plus any configured options.
func New(opts ...Option) *Merger {
	s := settings{
		logger:   zerolog.Nop(),
		defaults: true,
	}
	for _, opt := range opts {
		opt(&s)
	}

	table := rules.New()
	if s.defaults {
		table = rules.NewDefault()
	}
	for _, r := range s.rules {
		table.Register(r.Group, r.Matchers...)
	}

	var engOpts []engine.Option
	if s.sorted {
		engOpts = append(engOpts, engine.WithSortedOutput())
	}
	return &Merger{eng: engine.New(table, s.logger, engOpts...)}
}

// Merge combines space-separated class lists into one conflict-resolved,
// space-separated list.
func (m *Merger) Merge(classLists ...string) string {
	return m.eng.Merge(classLists...)
}

// AddRule registers matchers for group. Matchers ending in "-" are prefixes;
// all others are exact class names.
func (m *Merger) AddRule(group string, matchers ...string) {
	m.eng.AddRule(group, matchers...)
}

// GroupKey returns the conflict identity of class (modifiers + group), or
// false when the class belongs to no group.
func (m *Merger) GroupKey(class string) (string, bool) {
	c := m.eng.Classify(class)
	return c.Key, c.Classified()
}

var defaultMerger = New()

// Merge combines class lists using the default Merger.
func Merge(classLists ...string) string {
	return defaultMerger.Merge(classLists...)
}

// AddRule registers matchers on the default Merger.
func AddRule(group string, matchers ...string) {
	defaultMerger.AddRule(group, matchers...)
}
