// Package session drives one interactive rename: normalize the path,
// stage the old filename into the edit buffer, wait for the replacement,
// validate it, and rename.
package session

import (
	"errors"
	"os"
	"strings"

	"github.com/sokinpui/imv/internal/editor"
	"github.com/sokinpui/imv/internal/history"
	"github.com/sokinpui/imv/internal/pathutil"
	"github.com/sokinpui/imv/internal/ui"
)

var (
	// ErrEmptyFilename means the path had no filename component after
	// trailing-slash normalization.
	ErrEmptyFilename = errors.New("filename is empty")

	// ErrSlashInName means the submitted replacement contains a '/'.
	ErrSlashInName = errors.New("new filename contains a slash")
)

// Result describes the outcome of one session. A zero Result with a nil
// error is a skip: an empty argument or an empty submitted name.
type Result struct {
	Renamed bool
	OldPath string
	NewPath string
}

// Run processes a single path. Errors stop the batch; editor.ErrEndOfInput
// passes through untouched so the caller can abort the whole run.
func Run(path string, ed editor.LineEditor, hist *history.Manager) (Result, error) {
	oldpath := pathutil.StripTrailingSlashes(path)
	if oldpath == "" {
		// Empty arguments are tolerated.
		return Result{}, nil
	}

	df := pathutil.Split(oldpath)
	if df.Filename == "" {
		ui.Error("Filename is empty!")
		return Result{}, ErrEmptyFilename
	}

	newfilename, err := ed.Edit(df.Filename)
	if err != nil {
		if errors.Is(err, editor.ErrNameTooLong) {
			ui.Error("Filename too long!")
		}
		return Result{}, err
	}

	if newfilename == "" {
		ui.Notice("New filename is empty. Skipping file!")
		return Result{}, nil
	}

	if strings.ContainsRune(newfilename, '/') {
		ui.Error("New filename cannot contain a slash.")
		return Result{}, ErrSlashInName
	}

	hist.Append(newfilename)

	newpath := pathutil.Join(df.Directory, newfilename)
	if err := os.Rename(oldpath, newpath); err != nil {
		ui.Error("Cannot rename file '%s': %v", oldpath, renameReason(err))
		return Result{}, err
	}

	return Result{Renamed: true, OldPath: oldpath, NewPath: newpath}, nil
}

// renameReason unwraps the syscall error from an *os.LinkError so the
// operator sees the bare reason, not the old/new path repeated.
func renameReason(err error) error {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err
	}
	return err
}
