// @focus: #editor { session }
// Package editor holds the cursor, the viewport and the session loop that ties
// a document to a terminal screen.
package editor

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/afero"

	"github.com/lixenwraith/linedit/buffer"
	"github.com/lixenwraith/linedit/input"
	"github.com/lixenwraith/linedit/render"
	"github.com/lixenwraith/linedit/terminal"
)

// helpMessage is shown in the status bar until the first key press
const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit"

// Options configures a Session
type Options struct {
	Path      string   // Save target; empty for an unnamed buffer
	Fs        afero.Fs // Defaults to the OS filesystem
	Keymap    input.Keymap
	QuitTimes int // Quit presses needed to discard unsaved changes
	StatusBar bool
	Pipeline  render.Pipeline
}

// Session is one editing session: a document, a cursor into it and the screen showing it
type Session struct {
	screen   terminal.Screen
	doc      *buffer.Document
	cursor   *Cursor
	view     *Viewport
	keys     input.Keymap
	pipeline render.Pipeline

	fs        afero.Fs
	path      string
	statusBar bool

	dirty     bool
	touched   bool
	quitTimes int
	quitsLeft int
	message   string
	quit      bool
}

// NewSession creates a session editing doc on screen
func NewSession(screen terminal.Screen, doc *buffer.Document, opts Options) *Session {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Keymap == nil {
		opts.Keymap = input.DefaultKeymap()
	}
	if opts.QuitTimes < 1 {
		opts.QuitTimes = 1
	}

	s := &Session{
		screen:    screen,
		doc:       doc,
		cursor:    NewCursor(doc),
		view:      NewViewport(1, 1),
		keys:      opts.Keymap,
		pipeline:  opts.Pipeline,
		fs:        opts.Fs,
		path:      opts.Path,
		statusBar: opts.StatusBar,
		quitTimes: opts.QuitTimes,
		quitsLeft: opts.QuitTimes,
	}
	if s.statusBar {
		s.message = helpMessage
	}
	return s
}

func (s *Session) Document() *buffer.Document { return s.doc }
func (s *Session) Cursor() *Cursor            { return s.cursor }
func (s *Session) Viewport() *Viewport        { return s.view }
func (s *Session) Dirty() bool                { return s.dirty }
func (s *Session) Message() string            { return s.message }
func (s *Session) Done() bool                 { return s.quit }

// Run drives the editor until quit or a fatal error
// The screen is acquired once and released on every exit path, panics and failed acquires included
func (s *Session) Run() error {
	defer s.screen.Fini()
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("acquire terminal: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("editor: panic: %v", r)
			s.screen.Fini()
			panic(r)
		}
	}()

	log.Printf("editor: session started, path=%q lines=%d", s.path, s.doc.LineCount())

	for !s.quit {
		if err := s.Refresh(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		k, err := s.screen.ReadKey()
		if err != nil {
			if errors.Is(err, terminal.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read key: %w", err)
		}
		s.HandleKey(k)
	}

	log.Printf("editor: quit, dirty=%v", s.dirty)
	return s.screen.Emit(terminal.EraseDisplay(terminal.EraseAll), terminal.MoveTo(1, 1))
}

// Refresh sizes the viewport to the screen, scrolls it to the cursor and redraws
func (s *Session) Refresh() error {
	rows, cols := s.screen.Size()
	// A one-row terminal has no room for the status bar
	status := s.statusBar && rows > 1
	if status {
		rows--
	}
	s.view.Resize(rows, cols)
	s.view.Scroll(s.cursor.Row(), s.cursor.Col())

	return s.screen.Emit(s.pipeline.Build(s.frame(status))...)
}

func (s *Session) frame(status bool) render.Frame {
	row, col := s.view.ToScreen(s.cursor.Row(), s.cursor.Col())
	f := render.Frame{
		Doc:       s.doc,
		Rows:      s.view.Rows(),
		Cols:      s.view.Cols(),
		RowOffset: s.view.RowOffset(),
		ColOffset: s.view.ColOffset(),
		CursorRow: row,
		CursorCol: col,
		Welcome:   s.pipeline.Welcome != "" && !s.touched && s.doc.Empty(),
	}
	if status {
		f.Status = &render.Status{
			Name:     s.path,
			Modified: s.dirty,
			Message:  s.message,
			Row:      s.cursor.Row(),
			Col:      s.cursor.Col(),
			Lines:    s.doc.LineCount(),
		}
	}
	return f
}

// HandleKey applies one key press to the session
func (s *Session) HandleKey(k terminal.Key) {
	a := s.keys.Resolve(k)

	if a == input.ActionNone {
		return
	}
	if a != input.ActionQuit {
		s.quitsLeft = s.quitTimes
	}
	s.message = ""

	switch {
	case a.IsMotion():
		s.move(a)
	case a.IsEdit():
		s.edit(a, k)
	case a == input.ActionSave:
		s.save()
	case a == input.ActionQuit:
		s.requestQuit()
	}
}

func (s *Session) move(a input.Action) {
	c := s.cursor
	switch a {
	case input.ActionMoveLeft:
		c.Left()
	case input.ActionMoveRight:
		c.Right()
	case input.ActionMoveUp:
		c.Up()
	case input.ActionMoveDown:
		c.Down()
	case input.ActionLineStart:
		c.Home()
	case input.ActionLineEnd:
		c.End()
	case input.ActionPageUp:
		c.PageUp(s.view.Rows())
	case input.ActionPageDown:
		c.PageDown(s.view.Rows())
	}
}

func (s *Session) edit(a input.Action, k terminal.Key) {
	row, col := s.cursor.Row(), s.cursor.Col()
	changed := true

	switch a {
	case input.ActionInsertChar:
		s.insert(row, col, k.Rune)
	case input.ActionInsertTab:
		s.insert(row, col, '\t')
	case input.ActionInsertNewline:
		s.doc.SplitLine(row, col)
		s.cursor.Clamp()
		s.cursor.SetRow(row + 1)
		s.cursor.Home()
	case input.ActionDeleteBack:
		r, c := s.doc.DeleteCharBefore(row, col)
		changed = r != row || c != col
		s.cursor.Clamp()
		s.cursor.SetRow(r)
		s.cursor.SetCol(c)
	case input.ActionDeleteForward:
		changed = s.doc.DeleteCharAt(row, col)
		s.cursor.Clamp()
	}

	if changed {
		s.dirty = true
		s.touched = true
	}
}

func (s *Session) insert(row, col int, r rune) {
	s.doc.InsertChar(row, col, r)
	s.cursor.Clamp()
	s.cursor.Right()
}

func (s *Session) save() {
	if s.path == "" {
		s.message = "No file name: start with a path to save"
		return
	}

	if _, err := s.doc.Save(s.fs, s.path); err != nil {
		s.message = fmt.Sprintf("Can't save! %v", err)
		return
	}
	s.dirty = false
	s.message = fmt.Sprintf("%d lines written to %s", s.doc.LineCount(), s.path)
}

func (s *Session) requestQuit() {
	s.quitsLeft--
	if s.dirty && s.quitsLeft > 0 {
		s.message = fmt.Sprintf("WARNING! Unsaved changes. Press Ctrl-Q %d more time(s) to quit.", s.quitsLeft)
		return
	}
	s.quit = true
}
