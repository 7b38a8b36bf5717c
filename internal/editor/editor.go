// Package editor defines the line-editing service the rename flow talks
// to: pre-fill an edit buffer, block for one submitted line. The
// interactive implementation lives in internal/tui; this package holds
// the contract, its errors, and a fallback for piped stdin.
package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Capacity is the size of the edit buffer in runes. readline caps its
// stuff buffer at 512 characters; most filesystems only allow filenames
// up to 255 bytes anyway.
const Capacity = 512

var (
	// ErrEndOfInput means the operator closed the input channel. It is
	// fatal to the whole run, not a per-path condition.
	ErrEndOfInput = errors.New("end of input")

	// ErrNameTooLong means the staged filename did not fit the edit
	// buffer.
	ErrNameTooLong = errors.New("filename too long")
)

// LineEditor pre-fills the edit buffer with initial and blocks until the
// operator submits one line or closes the input channel.
type LineEditor interface {
	Edit(initial string) (string, error)
}

// CheckCapacity verifies that s fits the edit buffer, counting runes the
// way they would be staged one at a time.
func CheckCapacity(s string) error {
	if utf8.RuneCountInString(s) > Capacity {
		return ErrNameTooLong
	}
	return nil
}

// Reader is the non-interactive LineEditor used when stdin is not a
// terminal. A pipe offers no editable buffer, so the staged name is
// shown after the prompt and the submitted line replaces it outright.
type Reader struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

// NewReader returns a Reader that prompts on out and reads lines from in.
func NewReader(in io.Reader, out io.Writer, prompt string) *Reader {
	return &Reader{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: prompt,
	}
}

// Edit implements LineEditor. EOF before a complete line maps to
// ErrEndOfInput.
func (r *Reader) Edit(initial string) (string, error) {
	if err := CheckCapacity(initial); err != nil {
		return "", err
	}

	fmt.Fprintf(r.out, "%s%s\n", r.prompt, initial)
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			// A final unterminated line still counts as input.
			return strings.TrimRight(line, "\r"), nil
		}
		return "", ErrEndOfInput
	}
	return strings.TrimRight(line, "\r\n"), nil
}
