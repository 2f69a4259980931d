package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/linedit/terminal"
)

// Key aliases for names that can't be bare config keys
var keyAliases = map[string]terminal.Key{
	"space":     terminal.Char(' '),
	"backslash": terminal.Char('\\'),
}

// ParseKeymap converts config key name → action name bindings into a sparse override Keymap
// "none" as an action unbinds the key when merged
// Returns error on unknown action names or invalid key names
func ParseKeymap(bindings map[string]string) (Keymap, error) {
	km := make(Keymap, len(bindings))

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, keyStr := range names {
		k, err := resolveKey(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}

		a, err := resolveAction(bindings[keyStr])
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		km[k] = a
	}

	return km, nil
}

// resolveKey converts a config key string to a terminal key
// Accepts named keys, single characters and aliases
func resolveKey(s string) (terminal.Key, error) {
	if k, ok := keyAliases[strings.ToLower(s)]; ok {
		return k, nil
	}
	if k, ok := terminal.KeyByName(s); ok {
		return k, nil
	}
	return terminal.KeyUnknown, fmt.Errorf("unknown key name: %q", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeymap returns a new Keymap with base bindings overridden by override
// Override entries bound to ActionNone ("none" action) delete the key from the result
func MergeKeymap(base, override Keymap) Keymap {
	result := base.Clone()
	for k, a := range override {
		if a == ActionNone {
			delete(result, k)
		} else {
			result[k] = a
		}
	}
	return result
}
