package engine

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/simon/core"
	"github.com/lixenwraith/simon/input"
)

// TestSessionFailureAfterTwoLevels passes two rounds then misses the last icon of round three
func TestSessionFailureAfterTwoLevels(t *testing.T) {
	h := newHarness()
	seq := expectedSequence(50)

	h.input.presses = append(h.input.presses, answer(seq, 1)...)
	h.input.presses = append(h.input.presses, answer(seq, 2)...)
	h.input.presses = append(h.input.presses, answer(seq, 2)...)
	h.input.presses = append(h.input.presses, wrong(seq[2]))

	s := NewSession(h.icons, h.input, seededRNG(), DefaultSessionConfig())
	result, err := s.Play(context.Background())
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	if result.Outcome != core.OutcomeFailure {
		t.Errorf("Expected Failure, got %v", result.Outcome)
	}
	if result.Level != 2 {
		t.Errorf("Expected reported level 2, got %d", result.Level)
	}
	if result.Rounds != 3 {
		t.Errorf("Expected 3 rounds, got %d", result.Rounds)
	}
	if s.State().Playing() {
		t.Error("Session should be idle after failure")
	}

	order := []string{
		"Use buttons to repeat sequence",
		"SUCCESS",
		"You have reached level 1",
		"You have reached level 2",
		"FAILURE - NO MATCH",
		"You reached level 2",
	}
	last := -1
	for _, text := range order {
		i := indexOf(h.surface.texts[last+1:], text)
		if i < 0 {
			t.Fatalf("Missing %q after position %d in %q", text, last, h.surface.texts)
		}
		last += i + 1
	}

	tail := h.tone.events[len(h.tone.events)-3:]
	if tail[0] != 400 || tail[1] != 233 || tail[2] != 0 {
		t.Errorf("Expected failure pattern [400 233 0], got %v", tail)
	}
}

// TestSessionFirstRoundFailure reports level 0
func TestSessionFirstRoundFailure(t *testing.T) {
	h := newHarness()
	seq := expectedSequence(1)
	h.input.presses = []core.Button{wrong(seq[0])}

	s := NewSession(h.icons, h.input, seededRNG(), DefaultSessionConfig())
	result, err := s.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if result.Outcome != core.OutcomeFailure || result.Level != 0 {
		t.Errorf("Expected Failure at level 0, got %v at %d", result.Outcome, result.Level)
	}
	if indexOf(h.surface.texts, "You reached level 0") < 0 {
		t.Errorf("Expected level 0 message, got %q", h.surface.texts)
	}
}

// TestSessionPlaybackSpeedsUp checks hold lengths shrink by 0.005 units per level
func TestSessionPlaybackSpeedsUp(t *testing.T) {
	h := newHarness()
	seq := expectedSequence(50)
	h.input.presses = append(answer(seq, 1), answer(seq, 1)...)
	h.input.presses = append(h.input.presses, wrong(seq[1]))

	s := NewSession(h.icons, h.input, seededRNG(), DefaultSessionConfig())
	if _, err := s.Play(context.Background()); err != nil {
		t.Fatal(err)
	}

	count := func(d time.Duration) int {
		n := 0
		for _, slept := range h.clock.Sleeps() {
			if slept == d {
				n++
			}
		}
		return n
	}

	if got := count(995 * time.Millisecond); got != 2 {
		t.Errorf("Expected two 995ms holds in round two, got %d", got)
	}
	if got := count(497500 * time.Microsecond); got != 2 {
		t.Errorf("Expected two 497.5ms gaps in round two, got %d", got)
	}
}

// TestSessionWinAtCap stops at the cap with Won and no further level
func TestSessionWinAtCap(t *testing.T) {
	h := newHarness()
	seq := expectedSequence(3)
	for level := 1; level <= 3; level++ {
		h.input.presses = append(h.input.presses, answer(seq, level)...)
	}

	cfg := DefaultSessionConfig()
	cfg.MaxLevel = 3
	s := NewSession(h.icons, h.input, seededRNG(), cfg)

	result, err := s.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if result.Outcome != core.OutcomeWon || result.Level != 3 || result.Rounds != 3 {
		t.Errorf("Expected Won at 3 after 3 rounds, got %+v", result)
	}
	if s.State().Level != 0 {
		t.Errorf("Expected idle state, got level %d", s.State().Level)
	}
	if indexOf(h.surface.texts, "Win! Win! Win!") < 0 ||
		indexOf(h.surface.texts, "You have reached the maximum level of 3") < 0 {
		t.Errorf("Missing win messages in %q", h.surface.texts)
	}
	if len(h.input.presses) != 0 {
		t.Errorf("Expected all presses consumed, %d left", len(h.input.presses))
	}
}

// TestSessionFullRun plays all fifty levels
func TestSessionFullRun(t *testing.T) {
	h := newHarness()
	seq := expectedSequence(50)
	for level := 1; level <= 50; level++ {
		h.input.presses = append(h.input.presses, answer(seq, level)...)
	}

	s := NewSession(h.icons, h.input, seededRNG(), DefaultSessionConfig())
	result, err := s.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if result.Outcome != core.OutcomeWon || result.Level != 50 || result.Rounds != 50 {
		t.Errorf("Expected Won at 50 after 50 rounds, got %+v", result)
	}
	if math.Abs(s.State().Speed-0.755) > 1e-9 {
		t.Errorf("Expected final speed 0.755, got %v", s.State().Speed)
	}
	if h.input.flushes != 50 {
		t.Errorf("Expected input flushed once per round, got %d", h.input.flushes)
	}
}

func TestSessionCancelled(t *testing.T) {
	h := newHarness()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSession(h.icons, h.input, seededRNG(), DefaultSessionConfig())
	_, err := s.Play(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if s.State().Playing() {
		t.Error("Cancelled session should be idle")
	}
	if n := len(h.tone.events); n == 0 || h.tone.events[n-1] != 0 {
		t.Errorf("Tone should be silenced, events %v", h.tone.events)
	}
}

func TestSessionInputClosed(t *testing.T) {
	h := newHarness()

	s := NewSession(h.icons, h.input, seededRNG(), DefaultSessionConfig())
	_, err := s.Play(context.Background())
	if !errors.Is(err, input.ErrClosed) {
		t.Errorf("Expected input.ErrClosed, got %v", err)
	}
}

// TestSessionFeedbackTones echoes each pressed icon with its own tone
func TestSessionFeedbackTones(t *testing.T) {
	h := newHarness()
	seq := expectedSequence(1)
	h.input.presses = []core.Button{wrong(seq[0])}

	s := NewSession(h.icons, h.input, seededRNG(), DefaultSessionConfig())
	if _, err := s.Play(context.Background()); err != nil {
		t.Fatal(err)
	}

	pressed, _ := wrong(seq[0]).Icon()
	want := []float64{seq[0].Tone(), 0, pressed.Tone(), 0, 400, 233, 0}
	if len(h.tone.events) != len(want) {
		t.Fatalf("Expected tone events %v, got %v", want, h.tone.events)
	}
	for i := range want {
		if h.tone.events[i] != want[i] {
			t.Errorf("Tone event %d: expected %v, got %v", i, want[i], h.tone.events[i])
		}
	}
}
