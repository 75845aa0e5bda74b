// Package clipboardbridge adapts the host system clipboard to the
// editor's copy/paste operations (spec.md section 4.G's copy/paste),
// falling back to an OSC 52 escape sequence when no native clipboard is
// reachable (e.g. over SSH).
package clipboardbridge

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Copy writes blob (an encoded wireformat envelope) to the system
// clipboard, falling back to OSC 52 written to out.
func Copy(blob string, out io.Writer) error {
	if err := clipboard.WriteAll(blob); err == nil {
		return nil
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(blob))
	fmt.Fprintf(out, "\x1b]52;c;%s\x07", encoded)
	return nil
}

// Paste reads the current clipboard contents.
func Paste() (string, error) {
	return clipboard.ReadAll()
}
