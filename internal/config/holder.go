package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/danieljhkim/twmerge/internal/hash"
)

// Holder provides thread-safe access to a rule file with hot reload support.
type Holder struct {
	mu       sync.RWMutex
	rules    *RuleFile
	digest   string
	path     string
	hasher   hash.Hasher
	logger   zerolog.Logger
	watcher  *fsnotify.Watcher
	onChange []func(*RuleFile)
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewHolder loads the rule file at path and returns a holder for it.
func NewHolder(path string, logger zerolog.Logger) (*Holder, error) {
	return NewHolderWithHasher(path, hash.NewSHA256Hasher(), logger)
}

// NewHolderWithHasher is NewHolder with a custom content hasher.
func NewHolderWithHasher(path string, hasher hash.Hasher, logger zerolog.Logger) (*Holder, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}

	digest, err := hasher.HashFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("hash rules: %w", err)
	}

	f, err := Load(absPath)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}

	return &Holder{
		rules:  f,
		digest: digest,
		path:   absPath,
		hasher: hasher,
		logger: logger,
		stopCh: make(chan struct{}),
	}, nil
}

// Get returns the current rule file (thread-safe).
func (h *Holder) Get() *RuleFile {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rules
}

// Path returns the absolute path of the watched rule file.
func (h *Holder) Path() string {
	return h.path
}

// Reload reloads the rule file from disk. Unchanged content is ignored; on
// failure the previous rules are kept.
func (h *Holder) Reload() error {
	digest, err := h.hasher.HashFile(h.path)
	if err != nil {
		h.logger.Error().Err(err).Msg("rules reload failed, keeping old rules")
		return fmt.Errorf("reload rules: %w", err)
	}

	h.mu.RLock()
	unchanged := digest == h.digest
	h.mu.RUnlock()
	if unchanged {
		h.logger.Debug().Str("path", h.path).Msg("rules unchanged")
		return nil
	}

	h.logger.Info().Str("path", h.path).Msg("reloading rules")

	f, err := Load(h.path)
	if err != nil {
		h.logger.Error().Err(err).Msg("rules reload failed, keeping old rules")
		return fmt.Errorf("reload rules: %w", err)
	}

	h.mu.Lock()
	old := h.rules
	h.rules = f
	h.digest = digest
	listeners := append([]func(*RuleFile){}, h.onChange...)
	h.mu.Unlock()

	h.logChanges(old, f)

	for _, fn := range listeners {
		fn(f)
	}

	h.logger.Info().Msg("rules reloaded successfully")
	return nil
}

// OnChange registers a callback to be called after every successful reload.
func (h *Holder) OnChange(fn func(*RuleFile)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = append(h.onChange, fn)
}

// WatchFile starts watching the rule file for changes.
// Changes trigger automatic reload.
func (h *Holder) WatchFile() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	h.watcher = watcher

	// Watch the directory; editors often save by renaming a temp file.
	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	go h.watchLoop()

	h.logger.Info().Str("path", h.path).Msg("watching rules file for changes")
	return nil
}

// Stop stops watching for file changes. It is safe to call more than once.
func (h *Holder) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
		if h.watcher != nil {
			_ = h.watcher.Close()
		}
	})
}

func (h *Holder) watchLoop() {
	filename := filepath.Base(h.path)

	for {
		select {
		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				h.logger.Debug().
					Str("event", event.Op.String()).
					Str("file", event.Name).
					Msg("rules file changed")

				if err := h.Reload(); err != nil {
					h.logger.Error().Err(err).Msg("file watch reload failed")
				}
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().Err(err).Msg("file watcher error")

		case <-h.stopCh:
			return
		}
	}
}

func (h *Holder) logChanges(old, new *RuleFile) {
	if len(old.Rules) != len(new.Rules) {
		h.logger.Info().
			Int("old", len(old.Rules)).
			Int("new", len(new.Rules)).
			Msg("custom rule count changed")
	}

	if old.UseDefaults() != new.UseDefaults() {
		h.logger.Info().
			Bool("old", old.UseDefaults()).
			Bool("new", new.UseDefaults()).
			Msg("built-in rules toggled")
	}

	if old.Sort != new.Sort {
		h.logger.Info().
			Bool("old", old.Sort).
			Bool("new", new.Sort).
			Msg("output ordering changed")
	}
}
