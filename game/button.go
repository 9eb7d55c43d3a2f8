package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/candletimer/assets"
	"github.com/meghashyamc/candletimer/candle"
	"github.com/meghashyamc/candletimer/geometry"
)

var (
	buttonFill         = color.RGBA{R: 0x3a, G: 0x2a, B: 0x1a, A: 0xff}
	buttonFillDisabled = color.RGBA{R: 0x22, G: 0x1c, B: 0x16, A: 0xff}
	buttonBorder       = color.RGBA{R: 0xff, G: 0x9a, B: 0x00, A: 0xff}
	buttonText         = color.RGBA{R: 0xf5, G: 0xe6, B: 0xd0, A: 0xff}
	buttonTextDisabled = color.RGBA{R: 0x70, G: 0x66, B: 0x5c, A: 0xff}
)

// Button is an on-screen control. When state is nil the button is always
// enabled; otherwise the controller decides through the bound candle.Button.
type Button struct {
	label  string
	rect   geometry.Rect
	state  *candle.Button
	action func()
}

func (b *Button) Enabled() bool {
	return b.state == nil || b.state.Enabled
}

// Press runs the button's action if p is inside it and it is enabled.
func (b *Button) Press(p geometry.Vector) bool {
	if !b.rect.Contains(p) || !b.Enabled() {
		return false
	}
	b.action()
	return true
}

func (b *Button) Draw(screen *ebiten.Image) {
	fill, border, label := buttonFill, buttonBorder, buttonText
	if !b.Enabled() {
		fill, border, label = buttonFillDisabled, buttonFillDisabled, buttonTextDisabled
	}

	r := b.rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), fill, true)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 2, border, true)

	center := r.Center()
	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X, center.Y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(label)
	text.Draw(screen, b.label, assets.LabelFont, op)
}
