package render

import (
	"context"
	"image"
	"time"

	"github.com/lixenwraith/simon/audio"
	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/core"
)

// Sleeper holds the caller for a duration
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// IconRenderer draws icons with their tones and owns the message screens.
// It is the only place where picture and sound are synchronized.
type IconRenderer struct {
	surface  Surface
	tone     audio.ToneOutput
	sleeper  Sleeper
	timebase core.Timebase
	cx, cy   int
	size     int
	thick    int
}

// NewIconRenderer centers icons on the surface
func NewIconRenderer(surface Surface, tone audio.ToneOutput, sleeper Sleeper, tb core.Timebase) *IconRenderer {
	w, h := surface.Bounds()
	return &IconRenderer{
		surface:  surface,
		tone:     tone,
		sleeper:  sleeper,
		timebase: tb,
		cx:       w / 2,
		cy:       h / 2,
		size:     constants.IconSize,
		thick:    constants.FrameThickness,
	}
}

// Surface returns the drawing target
func (r *IconRenderer) Surface() Surface {
	return r.surface
}

// Hold sleeps for the given number of time-units
func (r *IconRenderer) Hold(ctx context.Context, units float64) error {
	return r.sleeper.Sleep(ctx, r.timebase.Duration(units))
}

// Show draws the icon with its tone for units, then erases it and holds for half that.
// The tone is always stopped before returning.
func (r *IconRenderer) Show(ctx context.Context, icon core.Icon, units float64) error {
	r.surface.SetPen(IconPen(icon))
	r.drawShape(icon)
	r.tone.Start(icon.Tone())
	r.surface.Update()

	err := r.Hold(ctx, units)
	r.tone.Stop()
	if err != nil {
		return err
	}

	r.Erase(icon)
	return r.Hold(ctx, units/2)
}

// Erase redraws the icon's shape in the background color
func (r *IconRenderer) Erase(icon core.Icon) {
	r.surface.SetPen(PenBackground)
	r.drawShape(icon)
	r.surface.Update()
}

func (r *IconRenderer) drawShape(icon core.Icon) {
	cx, cy, s := r.cx, r.cy, r.size
	switch icon.Shape() {
	case core.ShapeCircle:
		r.surface.Circle(cx, cy, s)
	case core.ShapeSquare:
		r.surface.Rectangle(cx-s, cy-s, 2*s, 2*s)
	case core.ShapeTriangleUp:
		r.surface.Triangle(cx-s, cy+s, cx, cy-s, cx+s, cy+s)
	case core.ShapeTriangleDown:
		r.surface.Triangle(cx-s, cy-s, cx+s, cy-s, cx, cy+s)
	}
}

// Legend draws the frame around the default center
func (r *IconRenderer) Legend() {
	r.Frame(r.cx, r.cy, r.thick)
}

// Frame draws the four L-shaped quadrant borders in their icons' colors
func (r *IconRenderer) Frame(fx, fy, th int) {
	w, h := r.surface.Bounds()
	for _, icon := range core.Icons {
		r.surface.SetPen(IconPen(icon))
		r.surface.Polygon(framePolygon(icon.Quadrant(), fx, fy, th, w, h))
	}
	r.surface.Update()
}

func framePolygon(q core.Quadrant, fx, fy, th, w, h int) []image.Point {
	switch q {
	case core.QuadrantTopLeft:
		return []image.Point{
			image.Pt(0, 0), image.Pt(fx, 0), image.Pt(fx, th), image.Pt(th, th), image.Pt(th, fy), image.Pt(0, fy),
		}
	case core.QuadrantBottomLeft:
		return []image.Point{
			image.Pt(0, fy+1), image.Pt(th, fy+1), image.Pt(th, h-th), image.Pt(fx, h-th), image.Pt(fx, h), image.Pt(0, h),
		}
	case core.QuadrantBottomRight:
		return []image.Point{
			image.Pt(fx+1, h), image.Pt(w, h), image.Pt(w, fy+1), image.Pt(w-th, fy+1), image.Pt(w-th, h-th), image.Pt(fx+1, h-th),
		}
	case core.QuadrantTopRight:
		return []image.Point{
			image.Pt(w, fy), image.Pt(w, 0), image.Pt(fx+1, 0), image.Pt(fx+1, th), image.Pt(w-th, th), image.Pt(w-th, fy),
		}
	}
	return nil
}

// Clear blanks the screen to the background color
func (r *IconRenderer) Clear() {
	r.surface.SetPen(PenBackground)
	r.surface.Clear()
	r.surface.Update()
}

// Message shows text for units, then clears the screen
func (r *IconRenderer) Message(ctx context.Context, text string, units float64) error {
	r.surface.SetPen(PenText)
	r.surface.Text(text, constants.MessageX, constants.MessageY, constants.MessageWrap, constants.MessageScale)
	r.surface.Update()
	err := r.Hold(ctx, units)
	r.Clear()
	return err
}

// PlayTone starts a free-standing tone
func (r *IconRenderer) PlayTone(freq float64) {
	r.tone.Start(freq)
}

// Quiet stops any tone
func (r *IconRenderer) Quiet() {
	r.tone.Stop()
}
