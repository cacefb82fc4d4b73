package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/twmerge/internal/rules"
)

// Environment overrides applied on top of a rule file.
const (
	EnvLogLevel  = "TWMERGE_LOG_LEVEL"
	EnvLogFormat = "TWMERGE_LOG_FORMAT"
	EnvSort      = "TWMERGE_SORT"
)

// RuleFile is the root structure of a rule file.
type RuleFile struct {
	// Defaults includes the built-in catalogue (default: true)
	Defaults *bool `yaml:"defaults,omitempty"`

	// Sort emits merged classes in lexicographic order
	Sort bool `yaml:"sort,omitempty"`

	Logging LoggingConfig `yaml:"logging,omitempty"`
	Rules   []RuleConfig  `yaml:"rules"`
}

// RuleConfig is one custom rule.
type RuleConfig struct {
	Group    string   `yaml:"group"`
	Matchers []string `yaml:"matchers"`
}

// LoggingConfig configures diagnostics.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format,omitempty"` // "console" or "json"
}

// Default returns the configuration used when no rule file exists.
func Default() *RuleFile {
	f := &RuleFile{}
	applyEnvOverrides(f)
	setDefaults(f)
	return f
}

// Load reads a rule file from path.
func Load(path string) (*RuleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return Parse(data)
}

// Parse decodes rule file contents. ${VAR} references are expanded from the
// environment before decoding.
func Parse(data []byte) (*RuleFile, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var f RuleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	applyEnvOverrides(&f)
	setDefaults(&f)

	if err := validate(&f); err != nil {
		return nil, fmt.Errorf("validate rules: %w", err)
	}

	return &f, nil
}

// UseDefaults reports whether the built-in catalogue is included.
func (f *RuleFile) UseDefaults() bool {
	return f.Defaults == nil || *f.Defaults
}

// Table builds the rule table described by the file.
func (f *RuleFile) Table() *rules.Table {
	table := rules.New()
	if f.UseDefaults() {
		table = rules.NewDefault()
	}
	for _, r := range f.Rules {
		table.Register(r.Group, r.Matchers...)
	}
	return table
}

// FromTable describes a complete table as a self-contained rule file.
func FromTable(table *rules.Table) *RuleFile {
	off := false
	f := &RuleFile{Defaults: &off}
	for _, r := range table.Rules() {
		f.Rules = append(f.Rules, RuleConfig{Group: r.Group, Matchers: r.Matchers})
	}
	return f
}

// Marshal encodes f as YAML.
func Marshal(f *RuleFile) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode rules: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies TWMERGE_* environment variables to the file.
// Environment variables always override file-based configuration.
func applyEnvOverrides(f *RuleFile) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		f.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		f.Logging.Format = v
	}
	if v := os.Getenv(EnvSort); v != "" {
		f.Sort = parseBool(v)
	}
}

func setDefaults(f *RuleFile) {
	if f.Logging.Level == "" {
		f.Logging.Level = "warn"
	}
	if f.Logging.Format == "" {
		f.Logging.Format = "console"
	}
}

func validate(f *RuleFile) error {
	for i, r := range f.Rules {
		if strings.TrimSpace(r.Group) == "" {
			return fmt.Errorf("%w: rules[%d]: group is required", ErrInvalidRule, i)
		}
		if len(r.Matchers) == 0 {
			return fmt.Errorf("%w: rules[%d] (%s): at least one matcher is required", ErrInvalidRule, i, r.Group)
		}
		for _, m := range r.Matchers {
			if m == "" {
				return fmt.Errorf("%w: rules[%d] (%s): empty matcher", ErrInvalidRule, i, r.Group)
			}
			// A matcher is compared against a base name, which never holds
			// whitespace or a modifier colon.
			if strings.ContainsAny(m, " \t\r\n:") {
				return fmt.Errorf("%w: rules[%d] (%s): matcher %q contains whitespace or ':'", ErrInvalidRule, i, r.Group, m)
			}
		}
	}

	if _, err := zerolog.ParseLevel(f.Logging.Level); err != nil {
		return fmt.Errorf("%w: level %q", ErrInvalidLogging, f.Logging.Level)
	}
	switch f.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidLogging, f.Logging.Format)
	}

	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
