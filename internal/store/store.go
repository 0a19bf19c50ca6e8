// Package store persists a project's hooks configuration under
// .claude/hooks.json, serializing concurrent writers with a file lock.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/michael-freling/claude-code-rule2hook/internal/rule2hook"
)

const (
	claudeDirName = ".claude"
	hooksFileName = "hooks.json"
	lockFileName  = ".hooks.lock"
)

// ErrConflicts is returned when a merge would overwrite existing hook
// groups. The accompanying ConflictReport lists them.
var ErrConflicts = errors.New("merge would overwrite existing hooks")

// Store reads and writes a single project's hooks.json.
type Store struct {
	projectDir string
}

// NewStore creates a store rooted at a project directory.
func NewStore(projectDir string) *Store {
	return &Store{
		projectDir: projectDir,
	}
}

// Path returns the hooks.json location for the project.
func (s *Store) Path() string {
	return filepath.Join(s.projectDir, claudeDirName, hooksFileName)
}

// Exists reports whether a hooks file is already present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Load reads and parses the hooks file.
func (s *Store) Load() (*rule2hook.HooksConfig, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to read hooks file: %w", err)
	}

	config, err := rule2hook.ParseHooksConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path(), err)
	}

	return config, nil
}

// Save writes the config, creating the .claude directory if needed.
// The write happens under the file lock so concurrent saves cannot
// interleave.
func (s *Store) Save(config *rule2hook.HooksConfig) error {
	return s.withLock(func() error {
		return s.write(config)
	})
}

// Merge combines incoming hook groups into the stored document. The
// whole read-check-write sequence runs under the file lock. When force
// is false, conflicting (event, matcher) pairs abort the merge with
// ErrConflicts before anything is written; the returned report lists
// the conflicts either way.
func (s *Store) Merge(incoming *rule2hook.HooksConfig, force bool) (*rule2hook.ConflictReport, error) {
	var report *rule2hook.ConflictReport

	err := s.withLock(func() error {
		existing := rule2hook.NewHooksConfig()
		if s.Exists() {
			loaded, err := s.Load()
			if err != nil {
				return err
			}
			existing = loaded
		}

		report = rule2hook.DetectConflicts(existing, incoming)
		if report.HasConflicts && !force {
			return fmt.Errorf("%w: %d conflicting hook groups", ErrConflicts, len(report.Conflicts))
		}

		existing.Merge(incoming)
		return s.write(existing)
	})
	if err != nil {
		return report, err
	}

	return report, nil
}

// withLock runs fn while holding the project's hooks lock, creating the
// .claude directory first so the lock file has somewhere to live.
func (s *Store) withLock(fn func() error) error {
	dir := filepath.Join(s.projectDir, claudeDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	lock := flock.New(filepath.Join(dir, lockFileName))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire hooks lock: %w", err)
	}
	defer lock.Unlock()

	return fn()
}

func (s *Store) write(config *rule2hook.HooksConfig) error {
	serialized, err := config.ToJSON()
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.Path(), []byte(serialized+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write hooks file: %w", err)
	}

	return nil
}
