package integration

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/twmerge"
	"github.com/danieljhkim/twmerge/internal/config"
	"github.com/danieljhkim/twmerge/internal/engine"
)

const projectRules = `
rules:
  - group: elevation
    matchers: [elevation-]
  - group: brand-bg
    matchers: [bg-brand-]
`

func TestRuleFile_FullCycle(t *testing.T) {
	root, path := setupProject(t, projectRules)

	// Discovery from a nested directory finds the project rule file.
	found, err := config.FindRulesFile(filepath.Join(root, "web", "components"))
	if err != nil {
		t.Fatalf("FindRulesFile() error = %v", err)
	}
	if found != path {
		t.Fatalf("FindRulesFile() = %s, want %s", found, path)
	}

	f, err := config.Load(found)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	eng := engine.New(f.Table(), zerolog.Nop())

	// The public API configured with the same rules agrees with the engine.
	m := twmerge.New(
		twmerge.WithRule("elevation", "elevation-"),
		twmerge.WithRule("brand-bg", "bg-brand-"),
	)

	cases := append([]mergeCase{
		{[]string{"elevation-1 p-2", "elevation-3"}, "p-2 elevation-3"},
		{[]string{"bg-brand-300 bg-red-500", "bg-brand-500"}, "bg-red-500 bg-brand-500"},
		{[]string{"hover:elevation-1 elevation-2"}, "hover:elevation-1 elevation-2"},
	}, corpus...)

	for _, tc := range cases {
		if got := eng.Merge(tc.lists...); got != tc.want {
			t.Errorf("engine Merge(%q) = %q, want %q", tc.lists, got, tc.want)
		}
		if got := m.Merge(tc.lists...); got != tc.want {
			t.Errorf("Merger.Merge(%q) = %q, want %q", tc.lists, got, tc.want)
		}
	}
}

func TestExport_RoundTrip(t *testing.T) {
	_, path := setupProject(t, projectRules)

	f, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	original := engine.New(f.Table(), zerolog.Nop())

	data, err := config.Marshal(config.FromTable(original.Table()))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	exportPath := filepath.Join(t.TempDir(), "exported.yaml")
	writeFile(t, exportPath, string(data))

	exported, err := config.Load(exportPath)
	if err != nil {
		t.Fatalf("exported file does not load: %v", err)
	}
	rebuilt := engine.New(exported.Table(), zerolog.Nop())

	if rebuilt.Table().Len() != original.Table().Len() {
		t.Errorf("rebuilt table has %d matchers, want %d", rebuilt.Table().Len(), original.Table().Len())
	}
	for _, tc := range corpus {
		if got := rebuilt.Merge(tc.lists...); got != tc.want {
			t.Errorf("rebuilt Merge(%q) = %q, want %q", tc.lists, got, tc.want)
		}
	}
	if got := rebuilt.Merge("elevation-1 elevation-2"); got != "elevation-2" {
		t.Errorf("custom rule lost in export: %q", got)
	}
}

func TestHotReload_FullCycle(t *testing.T) {
	_, path := setupProject(t, projectRules)

	holder, err := config.NewHolder(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHolder() error = %v", err)
	}
	defer holder.Stop()

	var current atomic.Pointer[engine.Engine]
	current.Store(engine.New(holder.Get().Table(), zerolog.Nop()))
	holder.OnChange(func(f *config.RuleFile) {
		current.Store(engine.New(f.Table(), zerolog.Nop()))
	})
	if err := holder.WatchFile(); err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}

	if got := current.Load().Merge("chip-a chip-b"); got != "chip-a chip-b" {
		t.Fatalf("chip classes should not conflict before reload, got %q", got)
	}

	writeFile(t, path, projectRules+"  - group: chip\n    matchers: [chip-]\n")

	deadline := time.Now().Add(5 * time.Second)
	for current.Load().Merge("chip-a chip-b") != "chip-b" {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for rules to reload")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// A broken edit keeps the last good rules.
	writeFile(t, path, "rules:\n  - group: \"\"\n")
	time.Sleep(100 * time.Millisecond)
	if got := current.Load().Merge("chip-a chip-b"); got != "chip-b" {
		t.Errorf("invalid rule file replaced the engine: %q", got)
	}
}
