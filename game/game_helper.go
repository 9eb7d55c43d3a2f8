package game

import (
	"cmp"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/candletimer/geometry"
)

func getCurrentMousePosition() geometry.Vector {
	mouseX, mouseY := ebiten.CursorPosition()
	return geometry.Vector{X: float64(mouseX), Y: float64(mouseY)}
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}

// withOpacity returns c with its alpha scaled to opacity in [0,1].
func withOpacity(c color.RGBA, opacity float64) color.NRGBA {
	opacity = clampValue(opacity, 0, 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A)*opacity + 0.5)}
}
