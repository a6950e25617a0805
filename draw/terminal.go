package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Half-block characters used by Canvas.Render.
const (
	blockFull      = '█'
	blockUpperHalf = '▀'
	blockLowerHalf = '▄'
)

// maxChunkSize is the maximum bytes to write at once. 1400 bytes stays
// under typical MTU size for smooth transmission over SSH.
const maxChunkSize = 1400

// TermSizeFunc returns the terminal dimensions. The SSH server supplies
// one backed by PTY window-change events; locally DefaultTermSizeFunc
// reads from stdout.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves the cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves the cursor to a specific position (1-based).
func MoveCursor(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\033[%d;%dH", y, x)
}

// WriteAt writes a string at a specific position (1-based).
func WriteAt(w io.Writer, x, y int, s string) {
	MoveCursor(w, x, y)
	io.WriteString(w, s)
}
