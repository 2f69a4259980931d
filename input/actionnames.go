package input

import "sort"

// actionRegistry maps canonical action names to actions
// Used by the keymap config loader to resolve action strings to bindings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	// System
	"quit": ActionQuit,
	"save": ActionSave,

	// Motions
	"motion_left":       ActionMoveLeft,
	"motion_right":      ActionMoveRight,
	"motion_up":         ActionMoveUp,
	"motion_down":       ActionMoveDown,
	"motion_line_start": ActionLineStart,
	"motion_line_end":   ActionLineEnd,
	"page_up":           ActionPageUp,
	"page_down":         ActionPageDown,

	// Edits
	"insert_tab":     ActionInsertTab,
	"insert_newline": ActionInsertNewline,
	"delete_back":    ActionDeleteBack,
	"delete_forward": ActionDeleteForward,
}

// actionToName is the reverse of actionRegistry
var actionToName map[Action]string

func init() {
	actionToName = make(map[Action]string, len(actionRegistry)+1)
	for name, a := range actionRegistry {
		actionToName[a] = name
	}
	// Not bindable: printable keys insert themselves when unbound
	actionToName[ActionInsertChar] = "insert_char"
}

// ActionByName resolves a canonical action name
// Returns ActionNone and false if name is unknown
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// IsActionName returns true if name is a registered action
func IsActionName(name string) bool {
	_, ok := actionRegistry[name]
	return ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
