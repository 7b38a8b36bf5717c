// Package fscomplete expands partial filesystem paths for the tab key.
// Completion is a UX affordance only: anything that cannot be listed
// simply yields no candidates.
package fscomplete

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Completer expands path prefixes against a base directory.
type Completer struct {
	baseDir string
}

// NewCompleter returns a Completer rooted at baseDir. An empty baseDir
// means the current working directory.
func NewCompleter(baseDir string) *Completer {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			// This is unlikely to fail, but if it does, it's a critical error.
			panic(fmt.Sprintf("could not get current working directory: %v", err))
		}
		baseDir = wd
	}
	return &Completer{baseDir: baseDir}
}

// Complete extends prefix as far as the directory listing allows. It
// returns the expanded prefix and the matching entry names; a unique
// directory match gains a trailing '/'. With no matches the prefix is
// returned unchanged.
func (c *Completer) Complete(prefix string) (string, []string) {
	head := ""
	tail := prefix
	if slash := strings.LastIndexByte(prefix, '/'); slash >= 0 {
		head, tail = prefix[:slash+1], prefix[slash+1:]
	}

	dir := c.baseDir
	switch {
	case head == "":
	case strings.HasPrefix(head, "/"):
		dir = head
	default:
		dir = filepath.Join(c.baseDir, head)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return prefix, nil
	}

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), tail) {
			name := e.Name()
			if e.IsDir() {
				name += "/"
			}
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return prefix, nil
	}
	sort.Strings(names)

	if len(names) == 1 {
		return head + names[0], names
	}
	return head + commonPrefix(names), names
}

func commonPrefix(names []string) string {
	prefix := names[0]
	for _, name := range names[1:] {
		for !strings.HasPrefix(name, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
