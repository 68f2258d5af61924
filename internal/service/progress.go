package service

import (
	"fmt"
	"math"
)

// Color channels are in [0,1].
type Color struct {
	R, G, B, A float64
}

var (
	ColorAlert   = hexColor(0xFFB36B6B)
	ColorNeutral = hexColor(0xFFCCCCCC)
	ColorBase    = hexColor(0xFFFFFFFF)
	ColorGood    = hexColor(0xFF6C9E6C)
)

func hexColor(argb uint32) Color {
	ch := func(shift uint) float64 {
		return float64((argb>>shift)&0xFF) / 255
	}
	return Color{R: ch(16), G: ch(8), B: ch(0), A: ch(24)}
}

// Lerp interpolates each channel linearly; fraction 0 yields c, 1 yields to.
func (c Color) Lerp(to Color, fraction float64) Color {
	inv := 1 - fraction
	return Color{
		R: c.R*inv + to.R*fraction,
		G: c.G*inv + to.G*fraction,
		B: c.B*inv + to.B*fraction,
		A: c.A*inv + to.A*fraction,
	}
}

// RGB8 returns the red, green and blue channels scaled to 0..255.
func (c Color) RGB8() (uint8, uint8, uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

// Hex renders the colour as #RRGGBB.
func (c Color) Hex() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func channel8(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v*255))))
}

func ProgressColor(state ProgressState, fraction float64) Color {
	switch state {
	case OverLimit, NoLimitWithConsumption:
		return ColorAlert
	case NoLimitNoConsumption:
		return ColorNeutral
	default:
		return ColorBase.Lerp(ColorGood, fraction)
	}
}
