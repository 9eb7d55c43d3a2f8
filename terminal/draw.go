package terminal

import (
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/meghashyamc/candletimer/candle"
)

const (
	candleCells = 10 // body width in cells
	flameUnits  = 60.0
	smokeUnits  = 100.0
	helpText    = "s start  p pause  r reset  q quit"
)

var (
	background = tcell.NewRGBColor(0x14, 0x10, 0x0c)
	waxColor   = color.RGBA{R: 0xf3, G: 0xe9, B: 0xd2, A: 0xff}
	waxShade   = color.RGBA{R: 0xd8, G: 0xca, B: 0xab, A: 0xff}
	wickColor  = color.RGBA{R: 0x8a, G: 0x7a, B: 0x6a, A: 0xff}
	smokeColor = color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
	dimText    = color.RGBA{R: 0x90, G: 0x84, B: 0x78, A: 0xff}
	labelText  = color.RGBA{R: 0xf5, G: 0xe6, B: 0xd0, A: 0xff}
)

// layout maps surface units onto terminal rows for the current screen size.
type layout struct {
	width, height int
	base          int     // row of the candle's foot
	scale         float64 // rows per surface unit
	centerX       int
}

func newLayout(width, height int) layout {
	areaTop, areaBottom := 3, height-6
	rows := float64(areaBottom - areaTop)
	return layout{
		width:   width,
		height:  height,
		base:    areaBottom,
		scale:   math.Max(rows, 1) / (candle.BaseHeight + flameUnits + smokeUnits),
		centerX: width / 2,
	}
}

// row converts a surface offset from the top of a full-height candle to a
// screen row.
func (l layout) row(offset float64) int {
	top := float64(l.base) - candle.BaseHeight*l.scale
	return int(math.Round(top + offset*l.scale))
}

func (f *Frontend) draw() {
	w, h := f.screen.Size()
	f.fill(w, h)

	l := newLayout(w, h)
	s := f.surface

	f.textCenter(l, 0, s.Countdown.Text, s.Countdown.Color)
	f.textCenter(l, 1, s.Status.Text, s.Status.Color)

	f.drawSmoke(l)
	f.drawBody(l)
	f.drawWick(l)
	f.drawFlame(l)
	f.drawProgress(l)

	f.textCenter(l, h-2, helpText, dimText)
	f.screen.Show()
}

func (f *Frontend) fill(w, h int) {
	style := tcell.StyleDefault.Background(background)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (f *Frontend) drawBody(l layout) {
	s := f.surface
	rows := int(math.Round(s.Body.Height * l.scale))
	left := l.centerX - candleCells/2
	top := l.base - rows

	for y := top; y < l.base; y++ {
		for x := left; x < left+candleCells; x++ {
			clr := waxColor
			if x >= left+candleCells-2 {
				clr = waxShade
			}
			f.set(x, y, '█', clr, 1)
		}
	}

	for i, drip := range s.Drips {
		if drip.Opacity <= 0 {
			continue
		}
		x := left + 1 + (i*3)%(candleCells-1)
		length := int(math.Round(drip.Offset*l.scale)) + 1
		for y := top; y < top+length && y < l.base; y++ {
			f.set(x, y, '▓', waxShade, drip.Opacity)
		}
	}
}

func (f *Frontend) drawWick(l layout) {
	f.set(l.centerX, l.row(f.surface.Wick.Top), '|', wickColor, 1)
}

func (f *Frontend) drawFlame(l layout) {
	fl := f.surface.Flame
	if fl.Opacity <= 0 || fl.Scale <= 0 {
		return
	}

	rows := max(int(math.Round(flameUnits*fl.Scale*l.scale)), 1)
	bottom := l.row(f.surface.Wick.Top) - 1
	for i := 0; i < rows; i++ {
		stop := len(fl.Gradient) - 1 - i*len(fl.Gradient)/rows
		glyph := '▲'
		if i == 0 {
			glyph = '●'
		}
		f.set(l.centerX, bottom-i, glyph, fl.Gradient[stop], fl.Opacity)
	}
}

func (f *Frontend) drawSmoke(l layout) {
	sm := f.surface.Smoke
	if sm.Opacity <= 0 {
		return
	}

	bottom := l.row(f.surface.Wick.Top-sm.Rise) - 1
	rows := max(int(math.Round(sm.Height*l.scale)), 1)
	half := max(int(math.Round(sm.Width*l.scale)), 0)
	for y := bottom; y > bottom-rows && y >= 2; y-- {
		for x := l.centerX - half; x <= l.centerX+half; x++ {
			f.set(x, y, '░', smokeColor, sm.Opacity)
		}
	}
}

func (f *Frontend) drawProgress(l layout) {
	s := f.surface
	y := l.height - 4
	label := " " + s.ProgressText.Text
	barWidth := max(l.width-8-runewidth.StringWidth(label), 1)
	filled := int(math.Round(float64(barWidth) * s.ProgressFill.FillPercent / 100))

	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("-", barWidth-filled) + "]"
	left := (l.width - runewidth.StringWidth(bar+label)) / 2
	x := f.text(left, y, bar, candle.ColorCountdown)
	f.text(x, y, label, labelText)
}

func (f *Frontend) textCenter(l layout, y int, s string, clr color.RGBA) {
	f.text((l.width-runewidth.StringWidth(s))/2, y, s, clr)
}

// text draws s starting at x and returns the column after it.
func (f *Frontend) text(x, y int, s string, clr color.RGBA) int {
	for _, r := range s {
		f.set(x, y, r, clr, 1)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// set draws r at x,y in clr faded toward the background by opacity.
func (f *Frontend) set(x, y int, r rune, clr color.RGBA, opacity float64) {
	w, h := f.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	style := tcell.StyleDefault.Foreground(fade(clr, opacity)).Background(background)
	f.screen.SetContent(x, y, r, nil, style)
}

func fade(c color.RGBA, opacity float64) tcell.Color {
	opacity = math.Max(0, math.Min(opacity, 1))
	const br, bg, bb = 0x14, 0x10, 0x0c
	mix := func(v uint8, b float64) int32 {
		return int32(math.Round(b + (float64(v)-b)*opacity))
	}
	return tcell.NewRGBColor(mix(c.R, br), mix(c.G, bg), mix(c.B, bb))
}
