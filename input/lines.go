package input

import (
	"context"
	"time"

	"github.com/lixenwraith/simon/core"
)

// Line is one digital button input
type Line interface {
	IsPressed() bool
}

// LineFunc adapts a function to Line
type LineFunc func() bool

func (f LineFunc) IsPressed() bool { return f() }

// Lines polls four button lines in fixed A, B, X, Y order
type Lines struct {
	lines    [4]Line
	sleeper  Sleeper
	interval time.Duration
}

// NewLines creates a polled source; interval is the gap between scans
func NewLines(a, b, x, y Line, sleeper Sleeper, interval time.Duration) *Lines {
	return &Lines{
		lines:    [4]Line{a, b, x, y},
		sleeper:  sleeper,
		interval: interval,
	}
}

// Poll scans once; the first pressed line in priority order wins
func (l *Lines) Poll() (core.Button, bool) {
	for i, line := range l.lines {
		if line != nil && line.IsPressed() {
			return core.ButtonPriority[i], true
		}
	}
	return core.ButtonNone, false
}

// ReadButton scans every interval until a line reads pressed
func (l *Lines) ReadButton(ctx context.Context) (core.Button, error) {
	for {
		if b, ok := l.Poll(); ok {
			return b, nil
		}
		if err := l.sleeper.Sleep(ctx, l.interval); err != nil {
			return core.ButtonNone, err
		}
	}
}

// Flush is a no-op: lines report level, not edges
func (l *Lines) Flush() {}
