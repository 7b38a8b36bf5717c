// Package imv wires the rename sessions together: it owns the history
// manager, takes an injected line editor, and processes the configured
// paths in order.
package imv

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/sokinpui/imv/cli"
	"github.com/sokinpui/imv/internal/editor"
	"github.com/sokinpui/imv/internal/history"
	"github.com/sokinpui/imv/internal/session"
	"github.com/sokinpui/imv/internal/ui"
)

// App orchestrates one run of the tool.
type App struct {
	cfg     *cli.Config
	history *history.Manager
	editor  editor.LineEditor
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	hist, err := history.New(cfg.HistoryFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize history: %w", err)
	}
	return &App{
		cfg:     cfg,
		history: hist,
	}, nil
}

// History exposes the loaded history manager so the interactive editor
// can recall past names.
func (a *App) History() *history.Manager {
	return a.history
}

// SetEditor injects the line-editing service used by every session.
func (a *App) SetEditor(ed editor.LineEditor) {
	a.editor = ed
}

// Execute processes the configured paths in order and stops at the first
// session that reports failure. Skips (empty arguments, empty submitted
// names) are not failures. editor.ErrEndOfInput passes through so the
// caller can abort with a distinct status.
func (a *App) Execute() error {
	if a.editor == nil {
		return errors.New("no line editor configured")
	}

	for _, path := range a.cfg.Paths {
		res, err := session.Run(path, a.editor, a.history)
		if err != nil {
			return err
		}
		if !res.Renamed {
			continue
		}
		if a.cfg.Verbose {
			ui.Success("renamed '%s' -> '%s'", res.OldPath, res.NewPath)
		}
		if a.cfg.Clipboard {
			if err := clipboard.WriteAll(res.NewPath); err != nil {
				ui.Warning("Could not copy '%s' to the clipboard: %v", res.NewPath, err)
			}
		}
	}
	return nil
}
