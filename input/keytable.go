package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/core"
)

// KeyTable maps terminal keys to game intents
type KeyTable struct {
	// Runes select buttons, matched case-insensitively
	Runes map[rune]core.Button

	// SpecialKeys trigger system intents
	SpecialKeys map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]core.Button{
			'a': core.ButtonA,
			'b': core.ButtonB,
			'x': core.ButtonX,
			'y': core.ButtonY,
		},
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
	}
}

// Translate resolves a key event to an intent
func (kt *KeyTable) Translate(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if b, ok := kt.Runes[unicode.ToLower(ev.Rune())]; ok {
			return Intent{Type: IntentPress, Button: b}
		}
		return Intent{}
	}
	if it, ok := kt.SpecialKeys[ev.Key()]; ok {
		return Intent{Type: it}
	}
	return Intent{}
}
