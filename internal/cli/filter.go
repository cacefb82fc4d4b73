package cli

import (
	"bufio"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/twmerge/internal/config"
	"github.com/danieljhkim/twmerge/internal/engine"
)

// errNoRulesFile is returned by filter --watch when there is nothing to watch.
var errNoRulesFile = errors.New("no rule file to watch: pass --rules or create one with 'twmerge init'")

var (
	filterSort  bool
	filterWatch bool
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Merge each line of stdin",
	Long: `Read class lists from stdin and write each merged list to stdout, one
line in, one line out.

With --watch the rule file is watched for changes; lines read after a change
are merged with the new rules. A rule file that fails to load is reported and
the previous rules stay in effect.

Examples:
  cat classes.txt | twmerge filter
  twmerge filter --watch --rules .twmerge.yaml`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().BoolVar(&filterSort, "sort", false, "Emit merged classes in lexicographic order")
	filterCmd.Flags().BoolVarP(&filterWatch, "watch", "w", false, "Reload the rule file when it changes")
}

func runFilter(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	var opts []engine.Option
	if filterSort {
		opts = append(opts, engine.WithSortedOutput())
	}

	var current atomic.Pointer[engine.Engine]
	current.Store(s.newEngine(opts...))

	if filterWatch {
		if s.rulesPath == "" {
			return errNoRulesFile
		}

		holder, err := config.NewHolder(s.rulesPath, s.logger)
		if err != nil {
			return fmt.Errorf("failed to load rules for watching: %w", err)
		}
		defer holder.Stop()

		// Each reload builds a fresh engine; in-flight lines finish on the
		// engine they started with.
		holder.OnChange(func(f *config.RuleFile) {
			current.Store(buildEngine(f, s.logger, opts...))
		})
		if err := holder.WatchFile(); err != nil {
			return fmt.Errorf("failed to watch %s: %w", s.rulesPath, err)
		}
		s.logger.Info().Str("path", holder.Path()).Msg("watching rules")
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, current.Load().Merge(scanner.Text())); err != nil {
			return err
		}
		// Flush per line so interactive pipelines see output immediately.
		if err := out.Flush(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}
