// Package integration exercises the rule file, engine and public API
// together the way the CLI and library consumers use them.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/twmerge/internal/config"
	"github.com/danieljhkim/twmerge/internal/fsops"
)

// mergeCase is one merge input and its expected output.
type mergeCase struct {
	lists []string
	want  string
}

// corpus covers every built-in family the CLI users lean on most.
var corpus = []mergeCase{
	{[]string{"p-4 w-6", "w-8"}, "p-4 w-8"},
	{[]string{"p-4 w-6 text-blue-500", "w-8 text-red-500"}, "p-4 w-8 text-red-500"},
	{[]string{"block", "inline"}, "inline"},
	{[]string{"grid grid-cols-3 grid-rows-3", "grid-cols-4 grid-rows-2"}, "grid grid-cols-4 grid-rows-2"},
	{[]string{"p-4 w-6", "text-blue-500"}, "p-4 w-6 text-blue-500"},
	{[]string{"text-sm text-red-500", "text-lg"}, "text-red-500 text-lg"},
	{[]string{"mt-2", "-mt-4"}, "-mt-4"},
	{[]string{"hover:bg-red-500 bg-blue-500", "hover:bg-green-500"}, "bg-blue-500 hover:bg-green-500"},
	{[]string{"bg-red-500", "bg-[#123456]"}, "bg-[#123456]"},
	{[]string{"px-2 py-1", "p-3"}, "px-2 py-1 p-3"},
	{[]string{""}, ""},
}

// setupProject creates a project directory with a rule file at its root and
// isolates rule discovery from the user's environment. It returns the
// project root and the rule file path.
func setupProject(t *testing.T, rules string) (string, string) {
	t.Helper()

	t.Setenv(config.EnvRules, "")
	t.Setenv(config.EnvRoot, t.TempDir())
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvSort, "")

	root := t.TempDir()
	path := filepath.Join(root, config.LocalRulesFile)
	writeFile(t, path, rules)

	if err := os.MkdirAll(filepath.Join(root, "web", "components"), 0755); err != nil {
		t.Fatalf("failed to create project tree: %v", err)
	}
	return root, path
}

// writeFile replaces path atomically, the way editors and rules export do.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := fsops.NewRealFS().AtomicWrite(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
