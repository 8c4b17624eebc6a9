package app

import "github.com/Paul0Junior/checklist-eng/internal/keys"

// KeyMap is re-exported from the keys package so callers that
// reference app.KeyMap keep working.
type KeyMap = keys.KeyMap

// DefaultKeyMap delegates to keys.DefaultKeyMap.
func DefaultKeyMap() *KeyMap {
	return keys.DefaultKeyMap()
}
