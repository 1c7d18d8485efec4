package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
)

// Scale multiplies every channel by level in [0,1], used for backlight dimming
func (c RGB) Scale(level float64) RGB {
	if level >= 1 {
		return c
	}
	if level <= 0 {
		return RGBBlack
	}
	return RGB{
		R: uint8(float64(c.R) * level),
		G: uint8(float64(c.G) * level),
		B: uint8(float64(c.B) * level),
	}
}
