package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/twmerge/internal/config"
	"github.com/danieljhkim/twmerge/internal/engine"
)

// session is the per-invocation state shared by every command: the resolved
// rule file and the diagnostics logger.
type session struct {
	// rulesPath is empty when only the built-in catalogue is in use
	rulesPath string
	file      *config.RuleFile
	logger    zerolog.Logger
}

// loadSession resolves the rule file and builds the logger.
func loadSession(cmd *cobra.Command) (*session, error) {
	path := rulesPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path, err = config.FindRulesFile(cwd)
		if err != nil {
			return nil, fmt.Errorf("failed to locate rules: %w", err)
		}
	}

	var file *config.RuleFile
	if path == "" {
		file = config.Default()
	} else {
		var err error
		file, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules from %s: %w", path, err)
		}
	}

	logging := file.Logging
	if logLevel != "" {
		logging.Level = logLevel
	}
	if logFormat != "" {
		logging.Format = logFormat
	}
	logger, err := newLogger(cmd.ErrOrStderr(), logging)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("rules", orDash(path)).
		Bool("defaults", file.UseDefaults()).
		Int("custom_rules", len(file.Rules)).
		Msg("rules loaded")

	return &session{rulesPath: path, file: file, logger: logger}, nil
}

// newEngine creates an engine from the session's rule file.
func (s *session) newEngine(extra ...engine.Option) *engine.Engine {
	return buildEngine(s.file, s.logger, extra...)
}

// buildEngine creates an engine from a rule file. Each call builds a fresh
// table, so engines built from successive reloads never share state.
func buildEngine(file *config.RuleFile, logger zerolog.Logger, extra ...engine.Option) *engine.Engine {
	opts := append([]engine.Option(nil), extra...)
	if file.Sort {
		opts = append(opts, engine.WithSortedOutput())
	}
	return engine.New(file.Table(), logger, opts...)
}

// classLists returns args, or every line of r when args is empty.
func classLists(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lists []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lists = append(lists, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return lists, nil
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
