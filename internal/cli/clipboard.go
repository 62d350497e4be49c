package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// For mocking in tests
var writeClipboard = clipboard.WriteAll

// CopyHexes puts the hex values of the result on the system clipboard, one per line.
func CopyHexes(r Result) error {
	if err := writeClipboard(strings.Join(r.Hexes(), "\n")); err != nil {
		return fmt.Errorf("failed to copy colours to clipboard: %w", err)
	}
	return nil
}
