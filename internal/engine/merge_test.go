package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/twmerge/internal/rules"
)

func newTestEngine(opts ...Option) *Engine {
	return New(rules.NewDefault(), zerolog.Nop(), opts...)
}

func TestEngine_Merge(t *testing.T) {
	tests := []struct {
		name  string
		lists []string
		want  string
	}{
		{"no input", nil, ""},
		{"empty string", []string{""}, ""},
		{"whitespace only", []string{"  \t ", ""}, ""},
		{"basic merge", []string{"p-4 w-6", "w-8"}, "p-4 w-8"},
		{"multiple conflicts", []string{"p-4 w-6 text-blue-500", "w-8 text-red-500"}, "p-4 w-8 text-red-500"},
		{"display", []string{"block", "inline"}, "inline"},
		{"arbitrary overwrites named", []string{"bg-red-500", "bg-[#000]"}, "bg-[#000]"},
		{"arbitrary overwrites arbitrary", []string{"bg-[#ff0000]", "bg-[#000]"}, "bg-[#000]"},
		{"named overwrites arbitrary", []string{"bg-[#000]", "bg-red-500"}, "bg-red-500"},
		{"no conflict", []string{"p-4 w-6", "text-blue-500"}, "p-4 w-6 text-blue-500"},
		{"grid no conflict", []string{"grid grid-cols-3 grid-rows-3", "grid-cols-4 grid-rows-2"}, "grid grid-cols-4 grid-rows-2"},
		{"sub-group specificity", []string{"p-4 pt-2 pb-3 px-3", "pt-1 pb-4 px-2"}, "p-4 pt-1 pb-4 px-2"},
		{"modifier isolation", []string{"hover:text-red-500", "text-blue-500"}, "hover:text-red-500 text-blue-500"},
		{"same modifier conflicts", []string{"hover:text-red-500", "hover:text-green-500"}, "hover:text-green-500"},
		{"font size separate from color", []string{"text-sm text-red-500", "text-lg"}, "text-red-500 text-lg"},
		{"negative value", []string{"mt-2", "-mt-4"}, "-mt-4"},
		{"unclassified duplicates collapse", []string{"card shadow-none card", "card"}, "shadow-none card"},
		{"within one list", []string{"p-2 p-4"}, "p-4"},
		{"malformed arbitrary value is still total", []string{"bg-[#000 bg-red-500"}, "bg-red-500"},
		{"modifier-only token kept", []string{"hover: p-2", "hover:"}, "p-2 hover:"},
	}

	eng := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eng.Merge(tt.lists...); got != tt.want {
				t.Errorf("Merge(%q) = %q, want %q", tt.lists, got, tt.want)
			}
		})
	}
}

func TestEngine_MergeIdempotent(t *testing.T) {
	eng := newTestEngine()
	inputs := []string{
		"p-4 pt-2 pb-3 px-3 pt-1 pb-4 px-2",
		"hover:text-red-500 text-blue-500 hover:text-green-500 card card",
		"bg-red-500 bg-[#000] rounded-lg rounded-t-md rounded",
	}

	for _, in := range inputs {
		once := eng.Merge(in)
		if twice := eng.Merge(once); twice != once {
			t.Errorf("Merge not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestEngine_SortedOutput(t *testing.T) {
	eng := newTestEngine(WithSortedOutput())

	got := eng.Merge("w-6 p-4", "text-blue-500 w-8")
	if got != "p-4 text-blue-500 w-8" {
		t.Errorf("Merge() = %q, want sorted output", got)
	}
}

func TestEngine_AddRule(t *testing.T) {
	eng := newTestEngine()

	if got := eng.Merge("custom-1", "custom-2"); got != "custom-1 custom-2" {
		t.Fatalf("before AddRule: got %q", got)
	}

	eng.AddRule("custom", "custom-")

	if got := eng.Merge("custom-1", "custom-2"); got != "custom-2" {
		t.Errorf("after AddRule: got %q, want custom-2", got)
	}

	found := false
	for _, e := range eng.Rules() {
		if e.Group == "custom" && e.Matcher.Value == "custom-" && e.Matcher.Kind == rules.Prefix {
			found = true
		}
	}
	if !found {
		t.Error("Rules() does not list the added rule")
	}
}

func TestEngine_AddRuleRefinesBuiltIn(t *testing.T) {
	eng := newTestEngine()
	eng.AddRule("brand-bg", "bg-brand-")

	// bg-brand-* no longer competes with other background colors.
	if got := eng.Merge("bg-brand-500 bg-red-500"); got != "bg-brand-500 bg-red-500" {
		t.Errorf("got %q", got)
	}
	if got := eng.Merge("bg-brand-500 bg-brand-600"); got != "bg-brand-600" {
		t.Errorf("got %q", got)
	}

	// Exact matchers outrank any prefix.
	eng.AddRule("display", "bg-hidden")
	if got := eng.Merge("block bg-hidden"); got != "bg-hidden" {
		t.Errorf("got %q", got)
	}
}

func TestEngine_IndependentTables(t *testing.T) {
	a := newTestEngine()
	b := newTestEngine()

	a.AddRule("custom", "custom-")

	if got := b.Merge("custom-1 custom-2"); got != "custom-1 custom-2" {
		t.Errorf("rule leaked between engines: %q", got)
	}
}

func TestEngine_Classify(t *testing.T) {
	eng := newTestEngine()

	tests := []struct {
		raw  string
		want Classification
	}{
		{
			raw:  "hover:bg-[#000]",
			want: Classification{Token: "hover:bg-[#000]", Modifiers: "hover:", Base: "bg-[#000]", Arbitrary: true, Group: "bg-color", Key: "hover:bg-color"},
		},
		{
			raw:  "p-4",
			want: Classification{Token: "p-4", Base: "p-4", Group: "padding", Key: "padding"},
		},
		{
			raw:  "card",
			want: Classification{Token: "card", Base: "card"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := eng.Classify(tt.raw)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
			if got.Classified() != (tt.want.Group != "") {
				t.Errorf("Classified() = %v", got.Classified())
			}
		})
	}
}

func TestEngine_PlanLogsOverrides(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	eng := New(rules.NewDefault(), logger)

	plan := eng.Plan("p-2", "p-4")
	if len(plan.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(plan.Conflicts))
	}

	out := buf.String()
	if !strings.Contains(out, `"dropped":"p-2"`) || !strings.Contains(out, `"winner":"p-4"`) {
		t.Errorf("expected override log line, got %q", out)
	}
}

func TestNew_NilTable(t *testing.T) {
	eng := New(nil, zerolog.Nop())
	if got := eng.Merge("p-2 p-4"); got != "p-2 p-4" {
		t.Errorf("empty table should classify nothing, got %q", got)
	}
	if eng.Table() == nil {
		t.Error("Table() returned nil")
	}
}

func TestEngine_Render(t *testing.T) {
	eng := newTestEngine(WithSortedOutput())

	plan := eng.Plan("p-4 block", "m-2 p-1")
	if got := eng.Render(plan); got != "block m-2 p-1" {
		t.Errorf("Render() = %q, want sorted survivors", got)
	}
	if got := eng.Render(eng.Plan()); got != "" {
		t.Errorf("Render() of empty plan = %q", got)
	}
}
