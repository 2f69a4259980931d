package input

// Action is the editing operation a key resolves to
type Action uint8

const (
	ActionNone Action = iota

	// System
	ActionQuit // Ctrl+Q
	ActionSave // Ctrl+S

	// Cursor motions
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionLineStart // Home
	ActionLineEnd   // End
	ActionPageUp
	ActionPageDown

	// Edits
	ActionInsertChar // Any printable key not otherwise bound
	ActionInsertTab
	ActionInsertNewline
	ActionDeleteBack    // Backspace, Ctrl+H
	ActionDeleteForward // Delete
)

// IsMotion reports actions that only move the cursor
func (a Action) IsMotion() bool {
	return a >= ActionMoveLeft && a <= ActionPageDown
}

// IsEdit reports actions that modify the document
func (a Action) IsEdit() bool {
	return a >= ActionInsertChar && a <= ActionDeleteForward
}

func (a Action) String() string {
	if name, ok := actionToName[a]; ok {
		return name
	}
	return "unknown"
}
