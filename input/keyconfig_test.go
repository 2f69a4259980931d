package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/linedit/terminal"
)

func TestParseKeymap(t *testing.T) {
	km, err := ParseKeymap(map[string]string{
		"ctrl_x":    "quit",
		"ctrl_w":    " Save ",
		"ctrl_q":    "none",
		"space":     "insert_tab",
		"page_down": "motion_down",
	})
	require.NoError(t, err)

	assert.Equal(t, Keymap{
		terminal.Ctrl('X'):   ActionQuit,
		terminal.Ctrl('W'):   ActionSave,
		terminal.Ctrl('Q'):   ActionNone,
		terminal.Char(' '):   ActionInsertTab,
		terminal.KeyPageDown: ActionMoveDown,
	}, km)
}

func TestParseKeymapErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		wantErr  string
	}{
		{"unknown key", map[string]string{"hyper_q": "quit"}, "unknown key name"},
		{"unknown action", map[string]string{"ctrl_x": "self_destruct"}, "unknown action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKeymap(tt.bindings)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeKeymap(t *testing.T) {
	base := DefaultKeymap()
	override, err := ParseKeymap(map[string]string{
		"ctrl_q": "none",
		"ctrl_x": "quit",
		"delete": "delete_back",
	})
	require.NoError(t, err)

	merged := MergeKeymap(base, override)

	assert.Equal(t, ActionNone, merged.Resolve(terminal.Ctrl('Q')), "none unbinds")
	assert.Equal(t, ActionQuit, merged.Resolve(terminal.Ctrl('X')))
	assert.Equal(t, ActionDeleteBack, merged.Resolve(terminal.KeyDelete))
	assert.Equal(t, ActionSave, merged.Resolve(terminal.Ctrl('S')), "untouched bindings survive")

	// Base is not modified
	assert.Equal(t, ActionQuit, base.Resolve(terminal.Ctrl('Q')))
	assert.Equal(t, ActionDeleteForward, base.Resolve(terminal.KeyDelete))
}

func TestMergeKeymapNilOverride(t *testing.T) {
	assert.Equal(t, DefaultKeymap(), MergeKeymap(DefaultKeymap(), nil))
}
