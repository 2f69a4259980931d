package terminal

import "strings"

// keyToName maps payload-free keys to canonical config string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyNewLine:   "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
}

// nameToKey is the reverse lookup, built from keyToName plus ctrl_a..ctrl_z
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+26)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	for c := 'a'; c <= 'z'; c++ {
		nameToKey["ctrl_"+string(c)] = Ctrl(c)
	}
	// Aliases
	nameToKey["tab"] = Ctrl('I')
	nameToKey["return"] = KeyNewLine
	nameToKey["esc"] = KeyEscape
	nameToKey["pgup"] = KeyPageUp
	nameToKey["pgdn"] = KeyPageDown
}

// KeyName returns the canonical string name for a key
// Returns empty string for characters and unknown keys
func KeyName(k Key) string {
	if k.Code == CodeCtrl {
		return "ctrl_" + strings.ToLower(string(k.Rune))
	}
	return keyToName[k]
}

// KeyByName resolves a name to a key, case-insensitively
// A single character resolves to Char; unknown names return KeyUnknown and false
func KeyByName(name string) (Key, bool) {
	if r := []rune(name); len(r) == 1 && r[0] >= 0x20 && r[0] != 0x7f {
		return Char(r[0]), true
	}
	if k, ok := nameToKey[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, true
	}
	return KeyUnknown, false
}
