package render

import (
	"image"
	"testing"
)

func countPen(g *pixelGrid, p Pen) int {
	n := 0
	for _, px := range g.pixels {
		if px == p {
			n++
		}
	}
	return n
}

func TestRectangleFill(t *testing.T) {
	g := newPixelGrid(20, 10)
	g.rectangle(2, 3, 4, 5, PenGreen)

	if n := countPen(&g, PenGreen); n != 20 {
		t.Errorf("Expected 20 filled pixels, got %d", n)
	}
	if g.at(2, 3) != PenGreen || g.at(5, 7) != PenGreen {
		t.Error("Rectangle corners not filled")
	}
	if g.at(6, 3) != PenBlack || g.at(2, 8) != PenBlack {
		t.Error("Rectangle overflowed its extent")
	}
}

func TestRectangleClipped(t *testing.T) {
	g := newPixelGrid(10, 10)
	g.rectangle(-5, -5, 8, 8, PenRed)

	if n := countPen(&g, PenRed); n != 9 {
		t.Errorf("Expected 9 visible pixels, got %d", n)
	}
}

func TestCircleSymmetry(t *testing.T) {
	g := newPixelGrid(41, 41)
	g.circle(20, 20, 10, PenYellow)

	if g.at(20, 20) != PenYellow {
		t.Error("Circle center not filled")
	}
	if g.at(20, 10) != PenYellow || g.at(30, 20) != PenYellow {
		t.Error("Circle extremes not filled")
	}
	if g.at(29, 29) != PenBlack {
		t.Error("Circle corner should be empty")
	}
	for y := 0; y < 41; y++ {
		for x := 0; x < 41; x++ {
			if g.at(x, y) != g.at(40-x, y) || g.at(x, y) != g.at(x, 40-y) {
				t.Fatalf("Circle not symmetric at (%d,%d)", x, y)
			}
		}
	}
}

func TestTriangleOrientation(t *testing.T) {
	up := newPixelGrid(61, 61)
	up.polygon([]image.Point{image.Pt(0, 60), image.Pt(30, 0), image.Pt(60, 60)}, PenRed)

	if up.at(30, 2) != PenRed {
		t.Error("Upward triangle apex should be filled near the top")
	}
	if up.at(2, 2) != PenBlack {
		t.Error("Upward triangle top corner should be empty")
	}
	if up.at(2, 59) != PenRed {
		t.Error("Upward triangle base should span the bottom")
	}

	down := newPixelGrid(61, 61)
	down.polygon([]image.Point{image.Pt(0, 0), image.Pt(60, 0), image.Pt(30, 60)}, PenBlue)

	if down.at(2, 1) != PenBlue {
		t.Error("Downward triangle base should span the top")
	}
	if down.at(2, 58) != PenBlack {
		t.Error("Downward triangle bottom corner should be empty")
	}
}

func TestPolygonDegenerate(t *testing.T) {
	g := newPixelGrid(10, 10)
	g.polygon([]image.Point{image.Pt(0, 0), image.Pt(5, 5)}, PenRed)

	if n := countPen(&g, PenRed); n != 0 {
		t.Errorf("Two-point polygon should draw nothing, got %d pixels", n)
	}
}

// TestPolygonLShape fills the top-left legend border of a small panel
func TestPolygonLShape(t *testing.T) {
	g := newPixelGrid(40, 20)
	g.polygon([]image.Point{
		image.Pt(0, 0), image.Pt(20, 0), image.Pt(20, 3), image.Pt(3, 3), image.Pt(3, 10), image.Pt(0, 10),
	}, PenYellow)

	// 20x3 top bar plus 3x7 side bar
	if n := countPen(&g, PenYellow); n != 81 {
		t.Errorf("Expected 81 pixels, got %d", n)
	}
	if g.at(5, 5) != PenBlack {
		t.Error("Interior of the L should stay empty")
	}
}
