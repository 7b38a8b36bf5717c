package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/sokinpui/imv/cli"
	"github.com/sokinpui/imv/imv"
	"github.com/sokinpui/imv/internal/editor"
	"github.com/sokinpui/imv/internal/fscomplete"
	"github.com/sokinpui/imv/internal/tui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	app, err := imv.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		app.SetEditor(tui.New(cfg.Prompt, app.History(), fscomplete.NewCompleter("")))
	} else {
		// Piped stdin: no editable buffer, read replacements line by line.
		app.SetEditor(editor.NewReader(os.Stdin, os.Stderr, cfg.Prompt))
	}

	if err := app.Execute(); err != nil {
		if errors.Is(err, editor.ErrEndOfInput) {
			fmt.Fprintln(os.Stderr, "Input closed unexpectedly. Aborting.")
			os.Exit(2)
		}
		// The failing session already printed its diagnostic.
		os.Exit(1)
	}
}
