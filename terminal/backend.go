package terminal

import "time"

// escapeTimeout is how long a read waits for input before reporting nothing
// It is the window that separates a standalone ESC from an escape sequence start
const escapeTimeout = 50 * time.Millisecond

// Backend abstracts the platform raw terminal
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the mode saved by Init
	Fini()

	// Size returns the terminal dimensions, or an error when they cannot be queried directly
	Size() (rows, cols int, err error)

	// Read returns (0, nil) when no input arrived within escapeTimeout
	Read(p []byte) (int, error)
	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)
}
