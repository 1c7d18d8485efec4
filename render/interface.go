package render

import "image"

// Surface is a 2D color drawing target with an explicit flush.
// Coordinates are logical pixels; drawing outside Bounds is clipped.
type Surface interface {
	SetPen(p Pen)
	Clear()
	Update()
	Text(s string, x, y, wrap int, scale float64)
	Circle(cx, cy, r int)
	Rectangle(x, y, w, h int)
	Triangle(x1, y1, x2, y2, x3, y3 int)
	Polygon(points []image.Point)
	SetBacklight(level float64)
	Bounds() (width, height int)
}
