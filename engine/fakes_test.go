package engine

import (
	"context"
	"image"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/simon/core"
	"github.com/lixenwraith/simon/input"
	"github.com/lixenwraith/simon/render"
)

// fakeSurface records text and flushes, ignoring pixels
type fakeSurface struct {
	texts   []string
	updates int
	onText  func(string)
}

func (s *fakeSurface) SetPen(render.Pen) {}
func (s *fakeSurface) Clear() {}
func (s *fakeSurface) Update() { s.updates++ }
func (s *fakeSurface) Text(str string, x, y, wrap int, sc float64) {
	s.texts = append(s.texts, str)
	if s.onText != nil {
		s.onText(str)
	}
}
func (s *fakeSurface) Circle(cx, cy, r int) {}
func (s *fakeSurface) Rectangle(x, y, w, h int) {}
func (s *fakeSurface) Triangle(x1, y1, x2, y2, x3, y3 int) {}
func (s *fakeSurface) Polygon([]image.Point) {}
func (s *fakeSurface) SetBacklight(float64) {}
func (s *fakeSurface) Bounds() (int, int) { return 240, 135 }

// fakeTone records frequencies, 0 for stop
type fakeTone struct {
	events []float64
}

func (t *fakeTone) Start(freq float64) { t.events = append(t.events, freq) }
func (t *fakeTone) Stop() { t.events = append(t.events, 0) }

// scriptedInput replays presses for ReadButton and polls for Poll
type scriptedInput struct {
	presses   []core.Button
	polls     []core.Button
	flushes   int
	exhausted func()
}

func (in *scriptedInput) ReadButton(ctx context.Context) (core.Button, error) {
	if err := ctx.Err(); err != nil {
		return core.ButtonNone, err
	}
	if len(in.presses) == 0 {
		return core.ButtonNone, input.ErrClosed
	}
	b := in.presses[0]
	in.presses = in.presses[1:]
	return b, nil
}

func (in *scriptedInput) Poll() (core.Button, bool) {
	if len(in.polls) == 0 {
		if in.exhausted != nil {
			in.exhausted()
		}
		return core.ButtonNone, false
	}
	b := in.polls[0]
	in.polls = in.polls[1:]
	return b, b != core.ButtonNone
}

func (in *scriptedInput) Flush() { in.flushes++ }

type harness struct {
	surface *fakeSurface
	tone    *fakeTone
	clock   *MockTimeProvider
	input   *scriptedInput
	icons   *render.IconRenderer
}

func newHarness() *harness {
	h := &harness{
		surface: &fakeSurface{},
		tone:    &fakeTone{},
		clock:   NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		input:   &scriptedInput{},
	}
	h.icons = render.NewIconRenderer(h.surface, h.tone, h.clock, core.Timebase(time.Second))
	return h
}

func seededRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// expectedSequence reproduces what a session seeded with seededRNG will draw
func expectedSequence(length int) core.Sequence {
	return core.NewSequence(seededRNG(), length)
}

// answer returns the presses reproducing the first level icons
func answer(seq core.Sequence, level int) []core.Button {
	out := make([]core.Button, level)
	for i := range out {
		out[i] = seq[i].Button()
	}
	return out
}

// wrong returns a button for an icon different from icon
func wrong(icon core.Icon) core.Button {
	return core.Icons[int(icon)%core.IconCount].Button()
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
