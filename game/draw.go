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

const (
	candleBase   = 540.0 // y of the candle's foot
	candleWidth  = 90.0
	flameWidth   = 30.0
	flameHeight  = 60.0
	wickWidth    = 4.0
	wickHeight   = 14.0
	dripRadius   = 6.0
	progressTop  = 575.0
	progressSide = 60.0
	progressH    = 12.0
)

var (
	waxColor      = color.RGBA{R: 0xf3, G: 0xe9, B: 0xd2, A: 0xff}
	waxShade      = color.RGBA{R: 0xd8, G: 0xca, B: 0xab, A: 0xff}
	wickColor     = color.RGBA{R: 0x33, G: 0x2a, B: 0x22, A: 0xff}
	smokeColor    = color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
	trackColor    = color.RGBA{R: 0x33, G: 0x2b, B: 0x24, A: 0xff}
	plateColor    = color.RGBA{R: 0x5d, G: 0x4a, B: 0x3a, A: 0xff}
	progressLabel = color.RGBA{R: 0xf5, G: 0xe6, B: 0xd0, A: 0xff}
)

// candleTop is where the top of a full-height candle sits. Flame, wick and
// smoke offsets on the surface are relative to it.
const candleTop = candleBase - candle.BaseHeight

// dripColumns are the horizontal offsets of the drips from the candle's
// left edge, repeated if the surface has more drips.
var dripColumns = []float64{14, 62, 36, 78, 24}

func (g *Game) drawCountdown(screen *ebiten.Image) {
	cd := g.surface.Countdown
	op := &text.DrawOptions{}
	op.GeoM.Translate(screenWidth/2, 70)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(cd.Color)
	text.Draw(screen, cd.Text, assets.DigitFont, op)
}

func (g *Game) drawCandle(screen *ebiten.Image) {
	s := g.surface
	centerX := float64(screenWidth) / 2
	body := geometry.NewRect(centerX-candleWidth/2, candleBase-s.Body.Height, candleWidth, s.Body.Height)

	// Plate under the candle.
	vector.DrawFilledRect(screen, float32(centerX-80), float32(body.Bottom()), 160, 10, plateColor, true)

	g.drawSmoke(screen, centerX)

	vector.DrawFilledRect(screen, float32(body.X), float32(body.Y), float32(body.Width), float32(body.Height), waxColor, true)
	vector.DrawFilledRect(screen, float32(body.X+body.Width-14), float32(body.Y), 14, float32(body.Height), waxShade, true)

	for i, drip := range s.Drips {
		if drip.Opacity <= 0 {
			continue
		}
		x := body.X + dripColumns[i%len(dripColumns)]
		y := body.Y + dripRadius + drip.Offset
		vector.DrawFilledCircle(screen, float32(x), float32(y), dripRadius, withOpacity(waxShade, drip.Opacity), true)
		vector.DrawFilledRect(screen, float32(x-dripRadius), float32(body.Y), dripRadius*2, float32(drip.Offset+dripRadius), withOpacity(waxShade, drip.Opacity), true)
	}

	wickTop := candleTop + s.Wick.Top
	vector.DrawFilledRect(screen, float32(centerX-wickWidth/2), float32(wickTop), wickWidth, wickHeight, wickColor, true)

	g.drawFlame(screen, centerX)
}

// drawFlame paints the flame as three stacked discs, one per gradient stop,
// scaled about the center of the flame box.
func (g *Game) drawFlame(screen *ebiten.Image, centerX float64) {
	f := g.surface.Flame
	if f.Opacity <= 0 || f.Scale <= 0 {
		return
	}

	center := geometry.Vector{X: centerX, Y: candleTop + f.Top + flameHeight/2}
	discs := []struct {
		offset geometry.Vector
		radius float64
		stop   int
	}{
		{geometry.Vector{Y: flameHeight * 0.22}, flameWidth * 0.5, 2},
		{geometry.Vector{Y: 0}, flameWidth * 0.38, 1},
		{geometry.Vector{Y: -flameHeight * 0.22}, flameWidth * 0.24, 0},
	}
	for _, d := range discs {
		p := center.Add(d.offset.Scale(f.Scale))
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(d.radius*f.Scale), withOpacity(f.Gradient[d.stop], f.Opacity), true)
	}
}

func (g *Game) drawSmoke(screen *ebiten.Image, centerX float64) {
	sm := g.surface.Smoke
	if sm.Opacity <= 0 {
		return
	}

	bottom := candleTop + g.surface.Wick.Top - sm.Rise
	radius := sm.Width / 2
	clr := withOpacity(smokeColor, sm.Opacity)
	for y := bottom - radius; y > bottom-sm.Height; y -= radius {
		vector.DrawFilledCircle(screen, float32(centerX), float32(y), float32(radius), clr, true)
	}
}

func (g *Game) drawProgress(screen *ebiten.Image) {
	p := g.surface.ProgressFill
	width := screenWidth - 2*progressSide
	fill := width * clampValue(p.FillPercent, 0, 100) / 100

	vector.DrawFilledRect(screen, progressSide, progressTop, float32(width), progressH, trackColor, true)
	if fill > 0 {
		vector.DrawFilledRect(screen, progressSide, progressTop, float32(fill), progressH, candle.ColorCountdown, true)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(screenWidth/2, progressTop+progressH+16)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(progressLabel)
	text.Draw(screen, g.surface.ProgressText.Text, assets.LabelFont, op)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	st := g.surface.Status
	op := &text.DrawOptions{}
	op.GeoM.Translate(screenWidth/2, 130)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(st.Color)
	text.Draw(screen, st.Text, assets.StatusFont, op)
}
