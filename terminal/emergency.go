package terminal

import (
	"io"
	"os"
)

// EmergencyReset restores the terminal without a Screen, for crash paths
// Safe to call after Fini; all errors are ignored
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone do not restore termios
	resetTerminalMode()
}
