package constants

import "time"

// Game Progression
const (
	// MaxLevel is the longest sequence a player can be asked to repeat
	MaxLevel = 50

	// StartSpeed is the playback hold per icon at level 1, in time-units
	StartSpeed = 1.0

	// SpeedStep is subtracted from the playback hold after each passed level
	SpeedStep = 0.005

	// MinPlaybackSpeed clamps the playback hold; unreachable while MaxLevel is 50
	MinPlaybackSpeed = 0.05
)

// Game Timing (in time-units)
const (
	// FeedbackUnits is how long a pressed icon is shown back to the player
	FeedbackUnits = 1.0

	// FrameHoldUnits is the pause after drawing the frame before playback
	FrameHoldUnits = 1.0

	// ButtonPollUnits is the line polling interval while waiting for a press
	ButtonPollUnits = 0.2

	// HelpIconUnits is the hold for each icon on the help screen
	HelpIconUnits = 1.0
)

// Host Timing
const (
	// DefaultTimeUnit is the wall-clock length of one time-unit
	DefaultTimeUnit = time.Second

	// MenuPollInterval is the idle gap between menu input checks
	MenuPollInterval = 20 * time.Millisecond

	// KeyQueueSize bounds buffered key presses waiting to be read
	KeyQueueSize = 64
)
