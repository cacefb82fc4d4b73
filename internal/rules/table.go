// Package rules holds the rule table that maps class base names to conflict
// groups.
//
// A rule pairs a group identifier with matchers. A matcher ending in "-" is a
// prefix; any other matcher must equal the base name exactly. Lookup order:
//
//  1. exact match on the literal base name
//  2. arbitrary values ("bg-[#000]") are looked up by their "<stem>-" key
//  3. the longest registered prefix of the key
//  4. negative values ("-mt-4") fall back to their positive form
//
// A Table is not safe for concurrent mutation. Register every rule before
// the table is shared between goroutines.
package rules

import (
	"strings"

	"github.com/danieljhkim/twmerge/internal/token"
)

// Kind distinguishes exact matchers from prefix matchers.
type Kind int

const (
	// Exact matchers must equal the base name.
	Exact Kind = iota
	// Prefix matchers must be a leading substring of the match key.
	Prefix
)

// String returns "exact" or "prefix".
func (k Kind) String() string {
	if k == Prefix {
		return "prefix"
	}
	return "exact"
}

// PrefixDelimiter marks a matcher as a prefix when it is the last character.
const PrefixDelimiter = "-"

// Matcher is a single exact or prefix pattern.
type Matcher struct {
	Value string
	Kind  Kind
}

// ParseMatcher classifies a matcher string by its trailing delimiter.
func ParseMatcher(s string) Matcher {
	if strings.HasSuffix(s, PrefixDelimiter) {
		return Matcher{Value: s, Kind: Prefix}
	}
	return Matcher{Value: s, Kind: Exact}
}

// Rule is a group identifier and the matchers that select it.
type Rule struct {
	Group    string
	Matchers []string
}

// Entry is a registered matcher together with its group.
type Entry struct {
	Group   string
	Matcher Matcher
}

// Table maps base names to conflict groups.
type Table struct {
	exact  map[string]string
	prefix map[string]string

	// order lists matchers in first-registration order.
	order []Matcher
}

// New creates an empty Table.
func New() *Table {
	return &Table{
		exact:  make(map[string]string),
		prefix: make(map[string]string),
	}
}

// NewDefault creates a Table holding the built-in catalogue.
func NewDefault() *Table {
	t := New()
	for _, r := range Defaults() {
		t.Register(r.Group, r.Matchers...)
	}
	return t
}

// Register adds matchers for group. Re-registering an existing matcher moves
// it to the new group; empty matchers are ignored.
func (t *Table) Register(group string, matchers ...string) {
	for _, s := range matchers {
		if s == "" {
			continue
		}
		m := ParseMatcher(s)
		target := t.exact
		if m.Kind == Prefix {
			target = t.prefix
		}
		if _, exists := target[m.Value]; !exists {
			t.order = append(t.order, m)
		}
		target[m.Value] = group
	}
}

// Classify returns the conflict group for a base name, or false when no rule
// matches.
func (t *Table) Classify(base string) (string, bool) {
	if base == "" {
		return "", false
	}

	if group, ok := t.exact[base]; ok {
		return group, true
	}

	key := base
	if k, ok := token.ArbitraryKey(base); ok {
		key = k
	}
	if group, ok := t.longestPrefix(key); ok {
		return group, true
	}

	if len(base) > 1 && strings.HasPrefix(base, "-") {
		return t.Classify(base[1:])
	}

	return "", false
}

// longestPrefix probes every leading substring of key, longest first.
func (t *Table) longestPrefix(key string) (string, bool) {
	for i := len(key); i > 0; i-- {
		if group, ok := t.prefix[key[:i]]; ok {
			return group, true
		}
	}
	return "", false
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		exact:  make(map[string]string, len(t.exact)),
		prefix: make(map[string]string, len(t.prefix)),
		order:  make([]Matcher, len(t.order)),
	}
	for k, v := range t.exact {
		c.exact[k] = v
	}
	for k, v := range t.prefix {
		c.prefix[k] = v
	}
	copy(c.order, t.order)
	return c
}

// Entries returns every matcher with its current group, in registration
// order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, m := range t.order {
		group := t.exact[m.Value]
		if m.Kind == Prefix {
			group = t.prefix[m.Value]
		}
		entries = append(entries, Entry{Group: group, Matcher: m})
	}
	return entries
}

// Rules regroups the table's entries into rules, ordered by each group's
// first appearance.
func (t *Table) Rules() []Rule {
	var out []Rule
	index := make(map[string]int)
	for _, e := range t.Entries() {
		i, ok := index[e.Group]
		if !ok {
			i = len(out)
			index[e.Group] = i
			out = append(out, Rule{Group: e.Group})
		}
		out[i].Matchers = append(out[i].Matchers, e.Matcher.Value)
	}
	return out
}

// Groups returns the distinct group identifiers in first-appearance order.
func (t *Table) Groups() []string {
	rules := t.Rules()
	groups := make([]string, len(rules))
	for i, r := range rules {
		groups[i] = r.Group
	}
	return groups
}

// Len returns the number of registered matchers.
func (t *Table) Len() int {
	return len(t.order)
}
