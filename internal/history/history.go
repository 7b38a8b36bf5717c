// Package history persists the replacement filenames the operator has
// accepted, one per line, oldest first. The line editor reads it for
// arrow-key recall; the rename flow only ever appends.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	stateDirName    = "imv"
	historyFileName = "history"
)

// Manager handles the lifecycle of the history file.
type Manager struct {
	path    string
	entries []string
}

// defaultPath places the history file under the user state directory.
func defaultPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not locate home directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, stateDirName, historyFileName), nil
}

// New creates and loads a history manager. An empty path selects the
// default location.
func New(path string) (*Manager, error) {
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("could not create history directory: %w", err)
	}
	m := &Manager{path: path}
	m.load()
	return m, nil
}

// load reads the history file. A missing or unreadable file just means
// an empty history.
func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	for _, line := range strings.Split(content, "\n") {
		if line != "" {
			m.entries = append(m.entries, line)
		}
	}
}

// Entries returns the recorded names, oldest first. The returned slice
// must not be modified.
func (m *Manager) Entries() []string {
	return m.entries
}

// Append records an accepted replacement name. Persistence is best
// effort: history is an affordance, a write failure never fails the
// rename.
func (m *Manager) Append(name string) {
	if name == "" {
		return
	}
	m.entries = append(m.entries, name)
	m.save(name)
}

func (m *Manager) save(name string) {
	f, err := os.OpenFile(m.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintln(f, name)
}
