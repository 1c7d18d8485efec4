package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/core"
)

// Pen selects a palette entry; values line up with core.Icon
type Pen int

const (
	PenBlack Pen = iota
	PenYellow
	PenGreen
	PenRed
	PenBlue
	penCount
)

// Palette in pen order: Black, Yellow, Green, Red, Blue
var palette = [penCount]core.RGB{
	{R: 0, G: 0, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 0, G: 255, B: 100},
	{R: 255, G: 0, B: 0},
	{R: 0, G: 0, B: 255},
}

// PenBackground erases drawn shapes
const PenBackground = PenBlack

// PenText is used for every message line
const PenText = PenRed

// IconPen returns the pen an icon is drawn with
func IconPen(icon core.Icon) Pen {
	if !icon.Valid() {
		return PenBackground
	}
	return Pen(icon)
}

// RGB returns the palette color of the pen, black when out of range
func (p Pen) RGB() core.RGB {
	if p < 0 || p >= penCount {
		return palette[PenBlack]
	}
	return palette[p]
}

// tcellColor converts a palette entry at the given backlight level
func tcellColor(p Pen, backlight float64) tcell.Color {
	c := p.RGB().Scale(backlight)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
