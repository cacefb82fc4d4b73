package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/twmerge/internal/config"
	"github.com/danieljhkim/twmerge/internal/fsops"
)

var (
	initForce bool
	initDir   string
)

// starterRules is the content written by init.
const starterRules = `# twmerge rule file
#
# Custom rules are registered on top of the built-in catalogue. A matcher
# ending in "-" is a prefix (bg-brand- matches bg-brand-500); any other
# matcher must equal the class exactly. When several prefixes match, the
# longest one wins, so custom rules can carve a sub-group out of a built-in
# family.

# Set to false to start from an empty rule table.
defaults: true

# Emit merged classes in lexicographic order instead of input order.
sort: false

logging:
  level: warn      # debug logs every dropped class
  format: console  # or json

rules:
  - group: brand-bg
    matchers: [bg-brand-]
  - group: brand-text
    matchers: [text-brand-]
  # - group: elevation
  #   matchers: [elevation-]
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter .twmerge.yaml",
	Long: `Create a starter .twmerge.yaml rule file in the current directory.

twmerge loads the nearest .twmerge.yaml found by walking up from the working
directory, so a file at the project root applies to the whole project.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"Overwrite an existing .twmerge.yaml")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "Directory to create the rule file in")
}

func runInit(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	dir, err := filepath.Abs(initDir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory: %w", err)
	}
	path := filepath.Join(dir, config.LocalRulesFile)

	// 1. Refuse to clobber an existing rule file
	fs := fsops.NewRealFS()
	exists, err := fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		if !initForce {
			return fmt.Errorf("%s already exists\nUse --force to overwrite", path)
		}
		PrintWarning(w, fmt.Sprintf("%s already exists (overwriting with --force)", path))
	}

	// 2. The starter must load cleanly
	if _, err := config.Parse([]byte(starterRules)); err != nil {
		return fmt.Errorf("starter rules are invalid: %w", err)
	}

	// 3. Write atomically
	if err := fs.AtomicWrite(path, []byte(starterRules), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	// 4. Display success message
	PrintSuccess(w, fmt.Sprintf("Created %s", path))
	_, _ = fmt.Fprintln(w)
	PrintInfo(w, "Next steps:")
	_, _ = fmt.Fprintln(w, "  1. Add rules:         edit the rules: list")
	_, _ = fmt.Fprintln(w, "  2. Check grouping:    twmerge classify bg-brand-500")
	_, _ = fmt.Fprintln(w, "  3. Merge:             twmerge merge \"bg-brand-300 p-2\" \"bg-brand-500\"")

	return nil
}
