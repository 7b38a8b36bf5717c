package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values plus the paths to rename.
type Config struct {
	Prompt      string
	HistoryFile string
	Verbose     bool
	Clipboard   bool
	NoColor     bool
	Paths       []string
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.StringVarP(&cfg.Prompt, "prompt", "p", "> ", "Prompt shown in front of the editable filename.")
	pflag.StringVarP(&cfg.HistoryFile, "history-file", "H", "", "History file location (default: $XDG_STATE_HOME/imv/history).")
	pflag.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print a line for every successful rename.")
	pflag.BoolVarP(&cfg.Clipboard, "clipboard", "c", false, "Copy the resulting path of the last rename to the clipboard.")
	pflag.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")

	pflag.Usage = func() {
		fmt.Println("Usage: imv [flags] <path>...")
		fmt.Println("\nRename files interactively: each filename is presented in an")
		fmt.Println("editable input line; submit the replacement to rename.")
		fmt.Println("\nExample: imv notes/draft.txt")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if cfg.Prompt == "" {
		return nil, fmt.Errorf("error: --prompt must not be empty")
	}

	cfg.Paths = pflag.Args()
	return cfg, nil
}
