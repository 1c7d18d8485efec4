package core

import (
	"errors"
	"fmt"
)

// Icon is one of the four game symbols
type Icon int

const (
	IconNone Icon = iota
	IconYellow
	IconGreen
	IconRed
	IconBlue
)

// IconCount is the number of playable icons
const IconCount = 4

// Icons lists the playable icons in legend order
var Icons = [IconCount]Icon{IconYellow, IconGreen, IconRed, IconBlue}

// Shape is the figure drawn for an icon
type Shape int

const (
	ShapeNone Shape = iota
	ShapeCircle
	ShapeSquare
	ShapeTriangleDown
	ShapeTriangleUp
)

// Quadrant is the screen corner holding an icon's frame legend
type Quadrant int

const (
	QuadrantTopLeft Quadrant = iota
	QuadrantTopRight
	QuadrantBottomLeft
	QuadrantBottomRight
)

// Button is one of the four physical inputs
type Button int

const (
	ButtonNone Button = iota
	ButtonA
	ButtonB
	ButtonX
	ButtonY
)

// ButtonPriority is the fixed check order used when several buttons read as pressed
var ButtonPriority = [4]Button{ButtonA, ButtonB, ButtonX, ButtonY}

var ErrUnknownButton = errors.New("unknown button")

// iconInfo holds the immutable associations of an icon
type iconInfo struct {
	name     string
	shape    Shape
	tone     float64
	quadrant Quadrant
	button   Button
}

// Order matches the icon values; index 0 is IconNone.
// Triangle orientation follows the reference vertex geometry: Red points up, Blue points down.
var iconTable = [IconCount + 1]iconInfo{
	{name: "None"},
	{name: "Yellow", shape: ShapeCircle, tone: 329, quadrant: QuadrantTopLeft, button: ButtonA},
	{name: "Green", shape: ShapeSquare, tone: 261, quadrant: QuadrantBottomRight, button: ButtonY},
	{name: "Red", shape: ShapeTriangleUp, tone: 293, quadrant: QuadrantBottomLeft, button: ButtonB},
	{name: "Blue", shape: ShapeTriangleDown, tone: 349, quadrant: QuadrantTopRight, button: ButtonX},
}

// Valid reports whether the icon is one of the four playable values
func (i Icon) Valid() bool {
	return i >= IconYellow && i <= IconBlue
}

func (i Icon) info() iconInfo {
	if !i.Valid() {
		return iconTable[IconNone]
	}
	return iconTable[i]
}

func (i Icon) String() string {
	if !i.Valid() && i != IconNone {
		return fmt.Sprintf("Icon(%d)", int(i))
	}
	return i.info().name
}

// Shape returns the figure drawn for the icon
func (i Icon) Shape() Shape { return i.info().shape }

// Tone returns the icon's tone frequency in Hz
func (i Icon) Tone() float64 { return i.info().tone }

// Quadrant returns the frame corner carrying the icon's color
func (i Icon) Quadrant() Quadrant { return i.info().quadrant }

// Button returns the physical button that selects the icon
func (i Icon) Button() Button { return i.info().button }

// Icon maps a physical button to its icon.
// A->Yellow, B->Red, X->Blue, Y->Green; this follows the button layout around
// the screen, not the legend order.
func (b Button) Icon() (Icon, error) {
	switch b {
	case ButtonA:
		return IconYellow, nil
	case ButtonB:
		return IconRed, nil
	case ButtonX:
		return IconBlue, nil
	case ButtonY:
		return IconGreen, nil
	}
	return IconNone, fmt.Errorf("%w: %d", ErrUnknownButton, int(b))
}

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	}
	return "None"
}
