package terminal

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// ErrClosed is returned by ReadKey after the screen has been finalized
var ErrClosed = errors.New("terminal: screen closed")

// fallbackRows and fallbackCols are used when no size source answers
const (
	fallbackRows = 24
	fallbackCols = 80
)

// Screen is the terminal collaborator an editor session drives
//
// Init acquires the terminal (raw mode) and Fini releases it. Fini is safe to
// call more than once and must be deferred right after a successful Init so
// the terminal is restored on every exit path.
type Screen interface {
	CommandSink

	Init() error
	Fini()

	// Size returns the current terminal dimensions
	Size() (rows, cols int)

	// ReadKey blocks until the next key press
	ReadKey() (Key, error)
}

// ANSIScreen drives a raw-mode terminal with ANSI escape sequences
type ANSIScreen struct {
	backend Backend
	dec     *Decoder
	out     *Writer

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewANSIScreen creates a screen over the process stdin/stdout
func NewANSIScreen() *ANSIScreen {
	return newANSIScreen(newBackend())
}

func newANSIScreen(b Backend) *ANSIScreen {
	return &ANSIScreen{
		backend: b,
		dec:     NewDecoder(b),
		out:     NewWriter(b),
	}
}

// Init enters raw mode and the alternate screen
func (s *ANSIScreen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := s.backend.Init(); err != nil {
		return err
	}

	err := s.out.writeRaw(csiAltScreenEnter)
	if err == nil {
		err = s.out.Emit(EraseDisplay(EraseAll), MoveTo(1, 1))
	}
	if err != nil {
		// Raw mode is already on; leave it before reporting
		s.backend.Fini()
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	s.initialized = true
	return nil
}

// Fini leaves the alternate screen and restores the saved terminal mode
func (s *ANSIScreen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.finalized = true

	if err := s.out.writeRaw(csiCursorShow, csiSGR0, csiAltScreenExit); err != nil {
		log.Printf("terminal: restore sequences: %v", err)
	}
	s.backend.Fini()
}

// Size asks the backend first and falls back to a cursor position report
func (s *ANSIScreen) Size() (int, int) {
	if rows, cols, err := s.backend.Size(); err == nil {
		return rows, cols
	}
	rows, cols, err := QuerySize(s.out, s.dec)
	if err != nil {
		log.Printf("terminal: size query failed, using %dx%d: %v", fallbackRows, fallbackCols, err)
		return fallbackRows, fallbackCols
	}
	return rows, cols
}

// ReadKey decodes the next key from the input stream
func (s *ANSIScreen) ReadKey() (Key, error) {
	s.mu.Lock()
	closed := s.finalized
	s.mu.Unlock()
	if closed {
		return KeyUnknown, ErrClosed
	}
	return s.dec.ReadKey()
}

// Emit writes commands to the terminal
func (s *ANSIScreen) Emit(cmds ...Command) error {
	return s.out.Emit(cmds...)
}
