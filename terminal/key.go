// @focus: #sys { io } #input { keys }
package terminal

import (
	"fmt"
	"unicode"
)

// Code discriminates the Key variants
type Code uint8

const (
	CodeUnknown Code = iota // Unrecognized or malformed sequence
	CodeChar                // Printable character (check Key.Rune)
	CodeCtrl                // Ctrl+letter (Key.Rune holds the upper-case letter)
	CodeEscape
	CodeNewLine
	CodeBackspace

	// Navigation
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeDelete
)

// Key is one decoded logical key press
// Keys are comparable and usable as map keys
type Key struct {
	Code Code
	Rune rune
}

// Keys without payload
var (
	KeyUnknown   = Key{Code: CodeUnknown}
	KeyEscape    = Key{Code: CodeEscape}
	KeyNewLine   = Key{Code: CodeNewLine}
	KeyBackspace = Key{Code: CodeBackspace}
	KeyUp        = Key{Code: CodeUp}
	KeyDown      = Key{Code: CodeDown}
	KeyLeft      = Key{Code: CodeLeft}
	KeyRight     = Key{Code: CodeRight}
	KeyHome      = Key{Code: CodeHome}
	KeyEnd       = Key{Code: CodeEnd}
	KeyPageUp    = Key{Code: CodePageUp}
	KeyPageDown  = Key{Code: CodePageDown}
	KeyDelete    = Key{Code: CodeDelete}
)

// Char returns the key for a printable character
func Char(r rune) Key {
	return Key{Code: CodeChar, Rune: r}
}

// Ctrl returns the key for Ctrl+letter, letter case is ignored
func Ctrl(letter rune) Key {
	return Key{Code: CodeCtrl, Rune: unicode.ToUpper(letter)}
}

// String renders keys for logs and status messages
func (k Key) String() string {
	switch k.Code {
	case CodeChar:
		return fmt.Sprintf("Char(%q)", k.Rune)
	case CodeCtrl:
		return fmt.Sprintf("Ctrl(%c)", k.Rune)
	}
	if name := KeyName(k); name != "" {
		return name
	}
	return "unknown"
}

// controlKey maps a single byte outside an escape sequence to its key
// 0x1B is not handled here: it opens an escape sequence and needs look-ahead
func controlKey(b byte) Key {
	switch {
	case b == '\n' || b == '\r':
		return KeyNewLine
	case b >= 1 && b <= 26:
		return Ctrl(rune(b) + 64)
	case b == 0x7f:
		return KeyBackspace
	case b >= 0x20 && b < 0x7f:
		return Char(rune(b))
	}
	return KeyUnknown
}
