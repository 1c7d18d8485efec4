package render

import (
	"image"
	"math"
	"sort"
)

// pixelGrid is a clipped framebuffer of pens
type pixelGrid struct {
	width, height int
	pixels        []Pen
}

func newPixelGrid(width, height int) pixelGrid {
	return pixelGrid{width: width, height: height, pixels: make([]Pen, width*height)}
}

func (g *pixelGrid) at(x, y int) Pen {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return PenBackground
	}
	return g.pixels[y*g.width+x]
}

func (g *pixelGrid) set(x, y int, p Pen) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.pixels[y*g.width+x] = p
}

func (g *pixelGrid) fill(p Pen) {
	for i := range g.pixels {
		g.pixels[i] = p
	}
}

func (g *pixelGrid) hline(x0, x1, y int, p Pen) {
	if y < 0 || y >= g.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, g.width-1)
	for x := x0; x <= x1; x++ {
		g.pixels[y*g.width+x] = p
	}
}

func (g *pixelGrid) circle(cx, cy, r int, p Pen) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		span := int(math.Sqrt(float64(r*r - dy*dy)))
		g.hline(cx-span, cx+span, cy+dy, p)
	}
}

func (g *pixelGrid) rectangle(x, y, w, h int, p Pen) {
	for row := y; row < y+h; row++ {
		g.hline(x, x+w-1, row, p)
	}
}

// polygon fills using even-odd scanlines sampled at pixel centers
func (g *pixelGrid) polygon(points []image.Point, p Pen) {
	if len(points) < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, pt := range points[1:] {
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}
	minY = max(minY, 0)
	maxY = min(maxY, g.height)

	xs := make([]float64, 0, len(points))
	for y := minY; y < maxY; y++ {
		py := float64(y) + 0.5
		xs = xs[:0]
		for i := range points {
			a := points[i]
			b := points[(i+1)%len(points)]
			ay, by := float64(a.Y), float64(b.Y)
			if (ay <= py && py < by) || (by <= py && py < ay) {
				x := float64(a.X) + (py-ay)*float64(b.X-a.X)/(by-ay)
				xs = append(xs, x)
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Ceil(xs[i+1]-0.5)) - 1
			g.hline(x0, x1, y, p)
		}
	}
}
