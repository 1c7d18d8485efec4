package input

import (
	"context"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/core"
)

// EventSource yields terminal events; nil means the stream has ended
type EventSource interface {
	PollEvent() tcell.Event
}

// Keyboard is an event-driven Source fed by terminal key events.
// Presses are queued in arrival order.
type Keyboard struct {
	events  EventSource
	table   *KeyTable
	presses chan core.Button
	done    chan struct{}
	once    sync.Once

	mu       sync.Mutex
	onQuit   func()
	onResize func()
}

// NewKeyboard creates a keyboard source; call Run to start reading events
func NewKeyboard(events EventSource, table *KeyTable, queueSize int) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Keyboard{
		events:  events,
		table:   table,
		presses: make(chan core.Button, queueSize),
		done:    make(chan struct{}),
	}
}

// OnQuit registers the handler for quit keys
func (k *Keyboard) OnQuit(fn func()) {
	k.mu.Lock()
	k.onQuit = fn
	k.mu.Unlock()
}

// OnResize registers the handler for terminal resizes
func (k *Keyboard) OnResize(fn func()) {
	k.mu.Lock()
	k.onResize = fn
	k.mu.Unlock()
}

// Run reads events until the source ends
func (k *Keyboard) Run() {
	defer k.Close()
	for {
		ev := k.events.PollEvent()
		if ev == nil {
			return
		}
		k.Handle(ev)
	}
}

// Close marks the stream ended; blocked readers get ErrClosed
func (k *Keyboard) Close() {
	k.once.Do(func() { close(k.done) })
}

// Handle processes a single terminal event
func (k *Keyboard) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := k.table.Translate(ev)
		switch intent.Type {
		case IntentPress:
			select {
			case k.presses <- intent.Button:
			default:
				log.Printf("input: queue full, dropped %v", intent.Button)
			}
		case IntentQuit:
			k.call(&k.onQuit)
		}
	case *tcell.EventResize:
		k.call(&k.onResize)
	}
}

func (k *Keyboard) call(fn *func()) {
	k.mu.Lock()
	f := *fn
	k.mu.Unlock()
	if f != nil {
		f()
	}
}

// ReadButton blocks for the next queued press
func (k *Keyboard) ReadButton(ctx context.Context) (core.Button, error) {
	select {
	case b := <-k.presses:
		return b, nil
	default:
	}
	select {
	case b := <-k.presses:
		return b, nil
	case <-ctx.Done():
		return core.ButtonNone, ctx.Err()
	case <-k.done:
		return core.ButtonNone, ErrClosed
	}
}

// Poll returns a queued press without blocking
func (k *Keyboard) Poll() (core.Button, bool) {
	select {
	case b := <-k.presses:
		return b, true
	default:
		return core.ButtonNone, false
	}
}

// Flush drops queued presses
func (k *Keyboard) Flush() {
	for {
		select {
		case <-k.presses:
		default:
			return
		}
	}
}
