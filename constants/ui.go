package constants

// Display Geometry (logical pixels, Pico Display panel)
const (
	ScreenWidth  = 240
	ScreenHeight = 135

	// FrameThickness is the width of the colored legend border
	FrameThickness = 15

	// IconSize is the half-extent of a drawn icon
	IconSize = 30

	// DefaultBacklight is the initial backlight level in [0,1]
	DefaultBacklight = 0.7
)

// Text Layout
const (
	MessageX     = 20
	MessageY     = 30
	MessageWrap  = 210
	MessageScale = 3

	MenuWrap  = 240
	MenuScale = 3

	// GlyphHeight is the bitmap font cell height before scaling
	GlyphHeight = 8
)

// Menu Text
const (
	TextTitle = "SIMON says..."
	TextBegin = "Press A to begin"
	TextHelp  = "Press B for HELP"
)

// Game Text
const (
	TextRepeat     = "Use buttons to repeat sequence"
	TextSuccess    = "SUCCESS"
	TextReached    = "You have reached level %d"
	TextWin        = "Win! Win! Win!"
	TextReachedMax = "You have reached the maximum level of %d"
	TextNoMatch    = "FAILURE - NO MATCH"
	TextFailLevel  = "You reached level %d"
)

// Help Text
const (
	TextHelpIcons    = "Here are the 4 icons"
	TextHelpMemorize = "Memorize the sequence of icons"
	TextHelpButtons  = "Use the coloured buttons to repeat the sequence"
)

// Message Holds (in time-units)
const (
	SuccessHoldUnits    = 0.5
	ReachedHoldUnits    = 1.0
	WinHoldUnits        = 1.0
	ReachedMaxHoldUnits = 2.0
	NoMatchHoldUnits    = 1.0
	FailLevelHoldUnits  = 2.0
	RepeatHoldUnits     = 1.0
	HelpIntroHoldUnits  = 2.0
	HelpTextHoldUnits   = 3.0
)
