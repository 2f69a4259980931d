package input

import "github.com/lixenwraith/linedit/terminal"

// Keymap binds keys to actions
type Keymap map[terminal.Key]Action

// DefaultKeymap returns the default key bindings
func DefaultKeymap() Keymap {
	return Keymap{
		terminal.Ctrl('Q'): ActionQuit,
		terminal.Ctrl('S'): ActionSave,

		terminal.KeyLeft:     ActionMoveLeft,
		terminal.KeyRight:    ActionMoveRight,
		terminal.KeyUp:       ActionMoveUp,
		terminal.KeyDown:     ActionMoveDown,
		terminal.KeyHome:     ActionLineStart,
		terminal.KeyEnd:      ActionLineEnd,
		terminal.KeyPageUp:   ActionPageUp,
		terminal.KeyPageDown: ActionPageDown,

		terminal.Ctrl('I'):    ActionInsertTab,
		terminal.KeyNewLine:   ActionInsertNewline,
		terminal.KeyBackspace: ActionDeleteBack,
		terminal.Ctrl('H'):    ActionDeleteBack,
		terminal.KeyDelete:    ActionDeleteForward,
	}
}

// Resolve returns the action bound to k
// Unbound printable characters resolve to ActionInsertChar; any other unbound key is ActionNone
func (m Keymap) Resolve(k terminal.Key) Action {
	if a, ok := m[k]; ok {
		return a
	}
	if k.Code == terminal.CodeChar {
		return ActionInsertChar
	}
	return ActionNone
}

// Clone returns an independent copy of the keymap
func (m Keymap) Clone() Keymap {
	c := make(Keymap, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
