// Package history keeps the on-disk record of pull requests the advisor has
// already handled.
package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Ledger maps a pull request identifier to the last title it was seen with.
// Presence of a key means the pull request was handled at least once,
// successfully or not. Entries are never removed.
type Ledger struct {
	path    string
	mu      sync.RWMutex
	entries map[string]string
	logger  *slog.Logger
}

// Key renders a pull request number the way the ledger stores it.
func Key(number int) string {
	return strconv.Itoa(number)
}

// Load reads the ledger at path. A missing file yields an empty ledger; any
// other read or decode failure is returned.
func Load(path string, logger *slog.Logger) (*Ledger, error) {
	l := &Ledger{
		path:    path,
		entries: make(map[string]string),
		logger:  logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("no history file, starting empty", "path", path)
			return l, nil
		}
		return nil, fmt.Errorf("failed to read history file %s: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) > 0 {
		if err := l.decode(data); err != nil {
			return nil, fmt.Errorf("failed to parse history file %s: %w", path, err)
		}
	}

	logger.Info("loaded history", "path", path, "entries", len(l.entries))
	return l, nil
}

// Path returns the file the ledger persists to.
func (l *Ledger) Path() string {
	return l.path
}

// Contains reports whether id has been handled.
func (l *Ledger) Contains(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.entries[id]
	return ok
}

// Title returns the recorded title for id.
func (l *Ledger) Title(id string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	title, ok := l.entries[id]
	return title, ok
}

// Mark records id as handled with title, overwriting any previous title.
func (l *Ledger) Mark(id, title string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[id] = title
}

// Len returns the number of recorded identifiers.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Snapshot returns a copy of the current mapping.
func (l *Ledger) Snapshot() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return maps.Clone(l.entries)
}

// Persist writes the whole mapping to disk. The file is replaced by rename, so
// readers see either the previous contents or the new ones.
func (l *Ledger) Persist() error {
	l.mu.RLock()
	data, err := l.encode()
	l.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if err := writeFileAtomic(l.path, data); err != nil {
		return fmt.Errorf("failed to write history file %s: %w", l.path, err)
	}
	l.logger.Debug("saved history", "path", l.path)
	return nil
}

func (l *Ledger) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(l.path))
	return ext == ".yaml" || ext == ".yml"
}

func (l *Ledger) decode(data []byte) error {
	if l.isYAML() {
		return yaml.Unmarshal(data, &l.entries)
	}
	return json.Unmarshal(data, &l.entries)
}

func (l *Ledger) encode() ([]byte, error) {
	if l.isYAML() {
		return yaml.Marshal(l.entries)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(l.entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
