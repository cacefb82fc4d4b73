package planner

import (
	"reflect"
	"strings"
	"testing"
)

// fakeClassifier groups base names by their text before the first dash.
type fakeClassifier struct {
	groups map[string]string
}

func newFakeClassifier() *fakeClassifier {
	return &fakeClassifier{groups: map[string]string{
		"p":    "padding",
		"pt":   "padding-top",
		"w":    "width",
		"text": "text-color",
		"bg":   "bg-color",
	}}
}

func (f *fakeClassifier) Classify(base string) (string, bool) {
	stem, _, ok := strings.Cut(base, "-")
	if !ok {
		return "", false
	}
	group, ok := f.groups[stem]
	return group, ok
}

func TestBuild_Kept(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "empty",
			tokens: nil,
			want:   []string{},
		},
		{
			name:   "last wins within group",
			tokens: []string{"p-4", "w-6", "w-8"},
			want:   []string{"p-4", "w-8"},
		},
		{
			name:   "distinct groups all kept",
			tokens: []string{"p-4", "pt-2", "w-6"},
			want:   []string{"p-4", "pt-2", "w-6"},
		},
		{
			name:   "modifiers are part of the key",
			tokens: []string{"hover:text-red-500", "text-blue-500"},
			want:   []string{"hover:text-red-500", "text-blue-500"},
		},
		{
			name:   "same modifiers conflict",
			tokens: []string{"hover:text-red-500", "hover:text-green-500"},
			want:   []string{"hover:text-green-500"},
		},
		{
			name:   "modifier order is significant",
			tokens: []string{"hover:focus:p-2", "focus:hover:p-4"},
			want:   []string{"hover:focus:p-2", "focus:hover:p-4"},
		},
		{
			name:   "unclassified kept unless duplicated",
			tokens: []string{"card", "p-2", "card", "shadow"},
			want:   []string{"p-2", "card", "shadow"},
		},
		{
			name:   "modifier-only token kept",
			tokens: []string{"hover:", "p-2", "hover:"},
			want:   []string{"p-2", "hover:"},
		},
		{
			name:   "unclassified never suppresses classified",
			tokens: []string{"p-2", "px"},
			want:   []string{"p-2", "px"},
		},
		{
			name:   "winner keeps its original position",
			tokens: []string{"w-6", "p-4", "w-8", "bg-red"},
			want:   []string{"p-4", "w-8", "bg-red"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Build(tt.tokens, newFakeClassifier())
			if got := plan.Kept(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Kept() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuild_Entries(t *testing.T) {
	plan := Build([]string{"md:p-4", "card"}, newFakeClassifier())

	if len(plan.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(plan.Entries))
	}

	first := plan.Entries[0]
	if first.Index != 0 || first.Group != "padding" || first.Key != "md:padding" || !first.Kept {
		t.Errorf("unexpected first entry: %+v", first)
	}
	if first.Token.Modifiers != "md:" || first.Token.Base != "p-4" {
		t.Errorf("unexpected token split: %+v", first.Token)
	}

	second := plan.Entries[1]
	if second.Classified() || second.Key != "" || !second.Kept {
		t.Errorf("unexpected second entry: %+v", second)
	}
}

func TestBuild_Conflicts(t *testing.T) {
	plan := Build([]string{"p-1", "card", "p-2", "card", "p-3"}, newFakeClassifier())

	// Conflicts are recorded walking backwards.
	want := []Conflict{
		{Key: "padding", Dropped: "p-2", DroppedIndex: 2, Winner: "p-3", WinnerIndex: 4},
		{Dropped: "card", DroppedIndex: 1, Winner: "card", WinnerIndex: 3},
		{Key: "padding", Dropped: "p-1", DroppedIndex: 0, Winner: "p-3", WinnerIndex: 4},
	}

	if !reflect.DeepEqual(plan.Conflicts, want) {
		t.Errorf("Conflicts = %+v\nwant %+v", plan.Conflicts, want)
	}
	if !plan.HasConflicts() {
		t.Error("expected conflicts")
	}
	if got := plan.Dropped(); !reflect.DeepEqual(got, []string{"p-1", "card", "p-2"}) {
		t.Errorf("Dropped() = %v", got)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	inputs := [][]string{
		{"p-4", "w-6", "w-8", "card", "card"},
		{"hover:text-red-500", "text-blue-500", "hover:text-green-500"},
	}

	for _, in := range inputs {
		once := Build(in, newFakeClassifier()).Kept()
		twice := Build(once, newFakeClassifier()).Kept()
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
