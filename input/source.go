package input

import (
	"context"
	"errors"
	"time"

	"github.com/lixenwraith/simon/core"
)

// ErrClosed is returned once the underlying event stream has ended
var ErrClosed = errors.New("input closed")

// Source delivers button presses
type Source interface {
	// ReadButton blocks until a button is pressed or ctx is done
	ReadButton(ctx context.Context) (core.Button, error)

	// Poll checks once without blocking
	Poll() (core.Button, bool)

	// Flush discards presses made before the call
	Flush()
}

// Sleeper holds the caller between polls
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}
