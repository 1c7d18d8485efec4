package input

import "github.com/lixenwraith/simon/core"

// IntentType classifies a translated key event
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentPress
	IntentQuit
)

// Intent is the semantic result of one key event
type Intent struct {
	Type   IntentType
	Button core.Button
}
