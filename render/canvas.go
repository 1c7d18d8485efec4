package render

import (
	"image"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/constants"
)

// halfBlock paints the upper pixel as foreground and the lower as background
const halfBlock = '▀'

// textItem is a message line laid over the pixel layer
type textItem struct {
	text  string
	x, y  int
	wrap  int
	scale float64
	pen   Pen
}

// Canvas implements Surface on a tcell screen.
// The logical panel is scaled to the terminal, two pixel rows per cell.
type Canvas struct {
	screen    tcell.Screen
	grid      pixelGrid
	pen       Pen
	backlight float64
	texts     []textItem
}

// NewCanvas creates a canvas of the given logical size drawing to screen
func NewCanvas(screen tcell.Screen, width, height int) *Canvas {
	return &Canvas{
		screen:    screen,
		grid:      newPixelGrid(width, height),
		backlight: 1.0,
	}
}

// SetPen selects the pen for subsequent drawing
func (c *Canvas) SetPen(p Pen) {
	c.pen = p
}

// Clear fills the whole panel with the current pen and drops text
func (c *Canvas) Clear() {
	c.grid.fill(c.pen)
	c.texts = c.texts[:0]
}

// Text places a message at (x, y); a later call at the same spot replaces it
func (c *Canvas) Text(s string, x, y, wrap int, scale float64) {
	item := textItem{text: s, x: x, y: y, wrap: wrap, scale: scale, pen: c.pen}
	for i := range c.texts {
		if c.texts[i].x == x && c.texts[i].y == y {
			c.texts[i] = item
			return
		}
	}
	c.texts = append(c.texts, item)
}

func (c *Canvas) Circle(cx, cy, r int) {
	c.grid.circle(cx, cy, r, c.pen)
}

func (c *Canvas) Rectangle(x, y, w, h int) {
	c.grid.rectangle(x, y, w, h, c.pen)
}

func (c *Canvas) Triangle(x1, y1, x2, y2, x3, y3 int) {
	c.grid.polygon([]image.Point{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}, c.pen)
}

func (c *Canvas) Polygon(points []image.Point) {
	c.grid.polygon(points, c.pen)
}

// SetBacklight dims every color by level, clamped to [0,1]
func (c *Canvas) SetBacklight(level float64) {
	c.backlight = math.Max(0, math.Min(1, level))
}

// Bounds returns the logical panel size
func (c *Canvas) Bounds() (int, int) {
	return c.grid.width, c.grid.height
}

// Pixel returns the pen stored at a logical pixel
func (c *Canvas) Pixel(x, y int) Pen {
	return c.grid.at(x, y)
}

// Update scales the panel onto the terminal and shows it
func (c *Canvas) Update() {
	cols, rows := c.screen.Size()
	if cols <= 0 || rows <= 0 || c.grid.width == 0 || c.grid.height == 0 {
		return
	}

	prows := rows * 2
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := c.sample(cx, cy*2, cols, prows)
			bottom := c.sample(cx, cy*2+1, cols, prows)
			style := tcell.StyleDefault.
				Foreground(tcellColor(top, c.backlight)).
				Background(tcellColor(bottom, c.backlight))
			c.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	for _, item := range c.texts {
		c.drawText(item, cols, rows)
	}

	c.screen.Show()
}

// sample maps a terminal half-cell to the logical pixel under its center
func (c *Canvas) sample(cx, py, cols, prows int) Pen {
	lx := (2*cx + 1) * c.grid.width / (2 * cols)
	ly := (2*py + 1) * c.grid.height / (2 * prows)
	return c.grid.at(lx, ly)
}

func (c *Canvas) drawText(item textItem, cols, rows int) {
	w, h := c.grid.width, c.grid.height
	col := item.x * cols / w
	row := item.y * rows / h
	width := max(1, item.wrap*cols/w)
	step := max(1, int(math.Round(constants.GlyphHeight*item.scale*float64(rows)/float64(h))))

	style := tcell.StyleDefault.
		Foreground(tcellColor(item.pen, c.backlight)).
		Background(tcellColor(PenBackground, c.backlight))

	for i, line := range wrapText(item.text, width) {
		y := row + i*step
		if y >= rows {
			return
		}
		for j, r := range []rune(line) {
			x := col + j
			if x >= cols {
				break
			}
			c.screen.SetContent(x, y, r, nil, style)
		}
	}
}

// wrapText breaks s on spaces into lines no longer than width runes.
// Words longer than width are split.
func wrapText(s string, width int) []string {
	var lines []string
	var line []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = line[:0]
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(line) == 0:
			line = append(line, w...)
		case len(line)+1+len(w) <= width:
			line = append(line, ' ')
			line = append(line, w...)
		default:
			lines = append(lines, string(line))
			line = append(line[:0], w...)
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
