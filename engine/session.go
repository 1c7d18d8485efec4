package engine

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/core"
	"github.com/lixenwraith/simon/input"
	"github.com/lixenwraith/simon/render"
)

// SessionConfig tunes level cap and playback speed
type SessionConfig struct {
	MaxLevel int
	Speed    core.SpeedConfig
}

// DefaultSessionConfig returns the stock game tuning
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		MaxLevel: constants.MaxLevel,
		Speed: core.SpeedConfig{
			Start: constants.StartSpeed,
			Step:  constants.SpeedStep,
			Floor: constants.MinPlaybackSpeed,
		},
	}
}

// Result summarizes a finished game
type Result struct {
	Outcome core.Outcome
	Level   int
	Rounds  int
}

// Session runs games: playback, collection, comparison and level progression
type Session struct {
	icons *render.IconRenderer
	input input.Source
	rng   *rand.Rand
	state *core.GameState
}

// NewSession wires a session; rng drives sequence generation
func NewSession(icons *render.IconRenderer, src input.Source, rng *rand.Rand, cfg SessionConfig) *Session {
	return &Session{
		icons: icons,
		input: src,
		rng:   rng,
		state: core.NewGameState(cfg.MaxLevel, cfg.Speed),
	}
}

// State exposes the game state for inspection
func (s *Session) State() *core.GameState {
	return s.state
}

// Play runs one game from a fresh sequence until a win or a mismatch
func (s *Session) Play(ctx context.Context) (Result, error) {
	s.icons.Clear()
	s.state.Start(s.rng)
	log.Printf("session: started, max level %d", s.state.MaxLevel)

	rounds := 0
	for s.state.Playing() {
		outcome, level, err := s.Round(ctx)
		if err != nil {
			s.state.Reset()
			s.icons.Quiet()
			return Result{}, fmt.Errorf("round %d: %w", rounds+1, err)
		}
		rounds++
		if outcome != core.OutcomeSuccess {
			return Result{Outcome: outcome, Level: level, Rounds: rounds}, nil
		}
	}
	return Result{Rounds: rounds}, nil
}

// Round plays back the current prefix, collects the answer and announces the outcome
func (s *Session) Round(ctx context.Context) (core.Outcome, int, error) {
	if err := s.playback(ctx); err != nil {
		return core.OutcomeNone, 0, err
	}

	response, err := s.collect(ctx)
	if err != nil {
		return core.OutcomeNone, 0, err
	}

	attempted := s.state.Level
	outcome, level := s.state.Evaluate(response)
	switch outcome {
	case core.OutcomeSuccess:
		log.Printf("session: level %d passed, speed now %.3f", attempted, s.state.Speed)
	case core.OutcomeWon:
		log.Printf("session: won at level %d", attempted)
	case core.OutcomeFailure:
		log.Printf("session: no match at level %d", attempted)
	}

	if err := s.announce(ctx, outcome, level); err != nil {
		return outcome, level, err
	}
	return outcome, level, nil
}

// playback shows the first level icons at the current speed
func (s *Session) playback(ctx context.Context) error {
	s.icons.Legend()
	if err := s.icons.Hold(ctx, constants.FrameHoldUnits); err != nil {
		return err
	}

	for _, icon := range s.state.Sequence[:s.state.Level] {
		if err := s.icons.Show(ctx, icon, s.state.Speed); err != nil {
			return err
		}
	}

	s.icons.Clear()
	return s.icons.Message(ctx, constants.TextRepeat, constants.RepeatHoldUnits)
}

// collect reads one press per position, echoing each icon back
func (s *Session) collect(ctx context.Context) ([]core.Icon, error) {
	s.icons.Legend()
	// Presses made during playback do not count
	s.input.Flush()

	response := make([]core.Icon, 0, s.state.Level)
	for len(response) < s.state.Level {
		button, err := s.input.ReadButton(ctx)
		if err != nil {
			return nil, err
		}
		icon, err := button.Icon()
		if err != nil {
			log.Printf("session: ignoring press: %v", err)
			continue
		}
		if err := s.icons.Show(ctx, icon, constants.FeedbackUnits); err != nil {
			return nil, err
		}
		response = append(response, icon)
	}
	return response, nil
}

func (s *Session) announce(ctx context.Context, outcome core.Outcome, level int) error {
	s.icons.Clear()

	switch outcome {
	case core.OutcomeSuccess:
		if err := s.icons.Message(ctx, constants.TextSuccess, constants.SuccessHoldUnits); err != nil {
			return err
		}
		return s.icons.Message(ctx, fmt.Sprintf(constants.TextReached, level), constants.ReachedHoldUnits)

	case core.OutcomeWon:
		if err := s.icons.Message(ctx, constants.TextWin, constants.WinHoldUnits); err != nil {
			return err
		}
		return s.icons.Message(ctx, fmt.Sprintf(constants.TextReachedMax, level), constants.ReachedMaxHoldUnits)

	case core.OutcomeFailure:
		defer s.icons.Quiet()
		s.icons.PlayTone(constants.FailureToneHigh)
		if err := s.icons.Message(ctx, constants.TextNoMatch, constants.NoMatchHoldUnits); err != nil {
			return err
		}
		s.icons.PlayTone(constants.FailureToneLow)
		return s.icons.Message(ctx, fmt.Sprintf(constants.TextFailLevel, level), constants.FailLevelHoldUnits)
	}
	return nil
}
