package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TcellScreen replays terminal commands onto a tcell cell grid
// It is the portable alternative to ANSIScreen: tcell owns raw mode, terminfo and resize handling
type TcellScreen struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool

	row, col int
	style    tcell.Style
	visible  bool
}

// NewTcellScreen creates a screen over the tcell terminal driver
func NewTcellScreen() (*TcellScreen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return NewTcellScreenFrom(s), nil
}

// NewTcellScreenFrom wraps an existing tcell screen, such as a simulation screen
func NewTcellScreenFrom(s tcell.Screen) *TcellScreen {
	return &TcellScreen{screen: s, style: tcell.StyleDefault, visible: true}
}

func (t *TcellScreen) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}
	t.initialized = true
	t.screen.Clear()
	return nil
}

func (t *TcellScreen) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.screen.Fini()
}

func (t *TcellScreen) Size() (int, int) {
	w, h := t.screen.Size()
	if w <= 0 || h <= 0 {
		return fallbackRows, fallbackCols
	}
	return h, w
}

// ReadKey blocks on the tcell event queue
// Resize events surface as KeyUnknown so the caller redraws at the new size
func (t *TcellScreen) ReadKey() (Key, error) {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return KeyUnknown, ErrClosed
		case *tcell.EventKey:
			return keyFromTcell(ev), nil
		case *tcell.EventResize:
			t.screen.Sync()
			return KeyUnknown, nil
		case *tcell.EventError:
			return KeyUnknown, errors.New(ev.Error())
		}
	}
}

// Emit applies commands to the back buffer and shows the result
func (t *TcellScreen) Emit(cmds ...Command) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return ErrClosed
	}

	for _, c := range cmds {
		t.apply(c)
	}

	if t.visible {
		t.screen.ShowCursor(t.col, t.row)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
	return nil
}

func (t *TcellScreen) apply(c Command) {
	w, h := t.screen.Size()

	switch c.Kind {
	case CmdText:
		for _, r := range c.Text {
			switch r {
			case '\r':
				t.col = 0
				continue
			case '\n':
				t.row = min(t.row+1, h-1)
				continue
			}
			t.screen.SetContent(t.col, t.row, r, nil, t.style)
			t.col = min(t.col+max(runewidth.RuneWidth(r), 1), w-1)
		}
	case CmdCursorUp:
		t.row = max(t.row-max(c.N, 0), 0)
	case CmdCursorDown:
		t.row = min(t.row+max(c.N, 0), h-1)
	case CmdCursorForward:
		t.col = min(t.col+max(c.N, 0), w-1)
	case CmdCursorBack:
		t.col = max(t.col-max(c.N, 0), 0)
	case CmdCursorPosition:
		t.row = min(max(c.Row-1, 0), h-1)
		t.col = min(max(c.Col-1, 0), w-1)
	case CmdEraseLine:
		from, to := t.eraseSpan(c.Erase, t.col, w)
		t.fillRow(t.row, from, to)
	case CmdEraseDisplay:
		switch c.Erase {
		case EraseFromCursor:
			t.fillRow(t.row, t.col, w)
			for y := t.row + 1; y < h; y++ {
				t.fillRow(y, 0, w)
			}
		case EraseToCursor:
			for y := 0; y < t.row; y++ {
				t.fillRow(y, 0, w)
			}
			t.fillRow(t.row, 0, t.col+1)
		case EraseAll:
			t.screen.Clear()
		}
	case CmdHideCursor:
		t.visible = false
	case CmdShowCursor:
		t.visible = true
	case CmdForeground:
		t.style = t.style.Foreground(sgrColor(c.Code, FgDefault, 30, 90))
	case CmdBackground:
		t.style = t.style.Background(sgrColor(c.Code, BgDefault, 40, 100))
	case CmdCursorReport:
		// tcell tracks the size itself
	}
}

func (t *TcellScreen) eraseSpan(mode Erase, col, width int) (int, int) {
	switch mode {
	case EraseToCursor:
		return 0, col + 1
	case EraseAll:
		return 0, width
	default:
		return col, width
	}
}

func (t *TcellScreen) fillRow(y, from, to int) {
	for x := from; x < to; x++ {
		t.screen.SetContent(x, y, ' ', nil, t.style)
	}
}

// sgrColor maps a raw SGR code onto the 16-color palette
func sgrColor(code, reset, base, bright int) tcell.Color {
	switch {
	case code == reset:
		return tcell.ColorDefault
	case code >= base && code < base+8:
		return tcell.PaletteColor(code - base)
	case code >= bright && code < bright+8:
		return tcell.PaletteColor(code - bright + 8)
	}
	return tcell.ColorDefault
}

// keyFromTcell translates a tcell key event into the editor key model
// tcell reports Ctrl+letter as KeyCtrlA..KeyCtrlZ, which sit on the ASCII codes of 'A'..'Z'
func keyFromTcell(ev *tcell.EventKey) Key {
	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		return Char(ev.Rune())
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyTab:
		return Ctrl('I')
	case tcell.KeyEnter:
		return KeyNewLine
	}

	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return Ctrl(rune(k))
	case k >= 0 && k < 0x20:
		return controlKey(byte(k))
	}
	return KeyUnknown
}
