// Package clip wraps the system clipboard behind a small interface so the
// dashboard can be tested without one.
package clip

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard unsupported on this system")

// Clipboard receives text to place on the clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard through xclip, xsel, wl-copy, pbcopy or
// the Windows API, whichever atotto/clipboard finds.
type System struct{}

// WriteAll implements Clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Unsupported is a Clipboard that always fails. It stands in for System when
// the platform has no clipboard utility.
type Unsupported struct{}

// WriteAll implements Clipboard.
func (Unsupported) WriteAll(string) error { return ErrUnsupported }

// Detect returns System when a clipboard utility is available and
// Unsupported otherwise.
func Detect() Clipboard {
	if clipboard.Unsupported {
		return Unsupported{}
	}
	return System{}
}
