package tui

import (
	"github.com/vovakirdan/tilefield/internal/core"
)

// KeyMapper translates raw key bytes to viewer actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key byte to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Keys are case sensitive and multi-byte sequences are not parsed.
func (km *KeyMapper) MapKey(key byte) (action core.Action, isQuit bool) {
	switch key {
	case 'q':
		return core.ActionQuit, true
	case 'w':
		return core.ActionUp, false
	case 's':
		return core.ActionDown, false
	case 'a':
		return core.ActionLeft, false
	case 'd':
		return core.ActionRight, false
	}
	return core.ActionNone, false
}

var defaultKeyMapper = NewKeyMapper()

// Apply returns the offset after pressing key and whether key ends the session.
func Apply(key byte, off core.Offset) (core.Offset, bool) {
	action, _ := defaultKeyMapper.MapKey(key)
	return action.Apply(off)
}
