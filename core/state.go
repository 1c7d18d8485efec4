package core

import "math/rand/v2"

// Outcome is the result of comparing one round
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "Success"
	case OutcomeFailure:
		return "Failure"
	case OutcomeWon:
		return "Won"
	}
	return "None"
}

// Speed tuning for the playback phase, in time-units
type SpeedConfig struct {
	Start float64
	Step  float64
	Floor float64
}

// GameState is the mutable state of one session.
// Level 0 means not playing.
type GameState struct {
	Level    int
	MaxLevel int
	Speed    float64
	Sequence Sequence
	speed    SpeedConfig
}

// NewGameState returns an idle state with the given level cap and speed tuning
func NewGameState(maxLevel int, speed SpeedConfig) *GameState {
	return &GameState{MaxLevel: maxLevel, speed: speed}
}

// Playing reports whether a session is in progress
func (g *GameState) Playing() bool {
	return g.Level > 0
}

// Start begins a session at level 1 with a fresh full-length sequence
func (g *GameState) Start(rng *rand.Rand) {
	g.Sequence = NewSequence(rng, g.MaxLevel)
	g.Level = 1
	g.Speed = g.speed.Start
}

// Evaluate compares a response for the current level and applies the transition.
// It returns the outcome and the level to report to the player: the completed
// level on success or win, the last fully completed level (level-1) on failure.
func (g *GameState) Evaluate(response []Icon) (Outcome, int) {
	level := g.Level
	if !g.Sequence.Matches(response, level) {
		g.Reset()
		return OutcomeFailure, level - 1
	}
	if level >= g.MaxLevel {
		g.Reset()
		return OutcomeWon, level
	}
	g.Level++
	g.Speed = NextSpeed(g.Speed, g.speed)
	return OutcomeSuccess, level
}

// Reset returns the state to not playing
func (g *GameState) Reset() {
	g.Level = 0
}

// NextSpeed applies the linear decrement, clamped at the floor.
// With the stock level cap the floor is never reached.
func NextSpeed(speed float64, cfg SpeedConfig) float64 {
	next := speed - cfg.Step
	if next < cfg.Floor {
		return cfg.Floor
	}
	return next
}
