// @focus: #terminal { ansi }
package terminal

import (
	"strconv"
)

// Pre-allocated ANSI sequence fragments
var (
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
)

// CommandKind identifies a terminal command
type CommandKind uint8

const (
	CmdText           CommandKind = iota // Literal text at the cursor
	CmdCursorReport                      // ESC [ 6 n
	CmdCursorUp                          // ESC [ N A
	CmdCursorDown                        // ESC [ N B
	CmdCursorForward                     // ESC [ N C
	CmdCursorBack                        // ESC [ N D
	CmdCursorPosition                    // ESC [ row ; col H (1-based)
	CmdEraseDisplay                      // ESC [ mode J
	CmdEraseLine                         // ESC [ mode K
	CmdHideCursor                        // ESC [ ?25l
	CmdShowCursor                        // ESC [ ?25h
	CmdForeground                        // ESC [ code m
	CmdBackground                        // ESC [ code m
)

// Erase selects the span of an erase command
type Erase uint8

const (
	EraseFromCursor Erase = 0
	EraseToCursor   Erase = 1
	EraseAll        Erase = 2
)

// Raw SGR color codes used by the editor chrome
const (
	FgBlack   = 30
	FgDefault = 39
	BgCyan    = 46
	BgDefault = 49
)

// Command is one terminal operation
// Row and Col are 1-based for CmdCursorPosition; N is the count for relative moves
type Command struct {
	Kind  CommandKind
	Row   int
	Col   int
	N     int
	Erase Erase
	Code  int
	Text  string
}

// CommandSink consumes terminal commands in order
type CommandSink interface {
	Emit(cmds ...Command) error
}

// Text writes s at the cursor
func Text(s string) Command { return Command{Kind: CmdText, Text: s} }

// CursorReport asks the terminal to report the cursor position
func CursorReport() Command { return Command{Kind: CmdCursorReport} }

// CursorUp moves the cursor up n rows
func CursorUp(n int) Command { return Command{Kind: CmdCursorUp, N: n} }

// CursorDown moves the cursor down n rows
func CursorDown(n int) Command { return Command{Kind: CmdCursorDown, N: n} }

// CursorForward moves the cursor right n columns
func CursorForward(n int) Command { return Command{Kind: CmdCursorForward, N: n} }

// CursorBack moves the cursor left n columns
func CursorBack(n int) Command { return Command{Kind: CmdCursorBack, N: n} }

// MoveTo positions the cursor at a 1-based row and column
func MoveTo(row, col int) Command { return Command{Kind: CmdCursorPosition, Row: row, Col: col} }

// EraseDisplay clears part of the screen
func EraseDisplay(mode Erase) Command { return Command{Kind: CmdEraseDisplay, Erase: mode} }

// EraseLine clears part of the current line
func EraseLine(mode Erase) Command { return Command{Kind: CmdEraseLine, Erase: mode} }

// HideCursor hides the cursor
func HideCursor() Command { return Command{Kind: CmdHideCursor} }

// ShowCursor shows the cursor
func ShowCursor() Command { return Command{Kind: CmdShowCursor} }

// Foreground emits a raw SGR foreground code (30-37, 39, 90-97)
func Foreground(code int) Command { return Command{Kind: CmdForeground, Code: code} }

// Background emits a raw SGR background code (40-47, 49, 100-107)
func Background(code int) Command { return Command{Kind: CmdBackground, Code: code} }

// AppendANSI appends the escape encoding of c to dst
func (c Command) AppendANSI(dst []byte) []byte {
	switch c.Kind {
	case CmdText:
		return append(dst, c.Text...)
	case CmdCursorReport:
		return append(append(dst, csi...), "6n"...)
	case CmdCursorUp:
		return appendMove(dst, c.N, 'A')
	case CmdCursorDown:
		return appendMove(dst, c.N, 'B')
	case CmdCursorForward:
		return appendMove(dst, c.N, 'C')
	case CmdCursorBack:
		return appendMove(dst, c.N, 'D')
	case CmdCursorPosition:
		dst = append(dst, csi...)
		dst = appendInt(dst, c.Row)
		dst = append(dst, ';')
		dst = appendInt(dst, c.Col)
		return append(dst, 'H')
	case CmdEraseDisplay:
		return append(append(dst, csi...), '0'+byte(c.Erase), 'J')
	case CmdEraseLine:
		return append(append(dst, csi...), '0'+byte(c.Erase), 'K')
	case CmdHideCursor:
		return append(dst, csiCursorHide...)
	case CmdShowCursor:
		return append(dst, csiCursorShow...)
	case CmdForeground, CmdBackground:
		dst = append(dst, csi...)
		dst = appendInt(dst, c.Code)
		return append(dst, 'm')
	}
	return dst
}

// appendMove writes a relative cursor move, omitting the count when it is 1
func appendMove(dst []byte, n int, letter byte) []byte {
	if n <= 0 {
		return dst
	}
	dst = append(dst, csi...)
	if n != 1 {
		dst = appendInt(dst, n)
	}
	return append(dst, letter)
}

// appendInt writes a non-negative integer, clamping negatives to 0
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	return strconv.AppendInt(dst, int64(n), 10)
}
