package candle

import (
	"cmp"
	"image/color"
	"math"
	"strconv"
	"time"
)

const (
	// TotalDuration is how long the candle burns.
	TotalDuration = 20 * time.Second

	// BaseHeight is the candle body height at rest, in surface units.
	BaseHeight = 280.0

	// DefaultDrips is the number of wax drips on the stock candle.
	DefaultDrips = 3

	bodyBurnFraction  = 0.85
	flameShrink       = 0.8
	flameRestTop      = -60.0
	wickRestTop       = -10.0
	dripDelay         = 0.15
	dripStagger       = 0.08
	dripFadeRate      = 3.0
	dripTravel        = 25.0
	smokeStart        = 0.7
	smokeRate         = 3.3
	smokeTravel       = 50.0
	smokeRestWidth    = 10.0
	smokeGrowth       = 20.0
	smokeRestHeight   = 20.0
	darkenStart       = 0.5
	darkenRate        = 2.0
	darkenSpan        = 120.0
	warningSeconds    = 10.0
	criticalSeconds   = 5.0
	countdownDecimals = 1
)

var (
	ColorCountdown = color.RGBA{R: 0xff, G: 0x9a, B: 0x00, A: 0xff}
	ColorWarning   = color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff}
	ColorCritical  = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}

	// RestGradient is the flame gradient, top to bottom, before it darkens.
	RestGradient = Gradient{
		{R: 0xff, G: 0x9a, B: 0x00, A: 0xff},
		{R: 0xff, G: 0x6b, B: 0x00, A: 0xff},
		{R: 0xff, G: 0x33, B: 0x00, A: 0xff},
	}
)

// Gradient holds the three flame color stops, top to bottom.
type Gradient [3]color.RGBA

// CountdownView is the remaining time in seconds, one decimal.
type CountdownView struct {
	Text  string
	Color color.RGBA
}

// ProgressView is the burned fraction as a bar fill and a rounded percent label.
type ProgressView struct {
	FillPercent float64
	Text        string
}

// FlameView places the flame; Top is an offset from the full-height candle top.
type FlameView struct {
	Opacity  float64
	Scale    float64
	Top      float64
	Gradient Gradient
}

// DripView is one wax drip. Offset is how far it has run down the body.
type DripView struct {
	Opacity float64
	Offset  float64
}

// SmokeView is the plume above the wick; Rise lifts it upward.
type SmokeView struct {
	Opacity float64
	Rise    float64
	Width   float64
	Height  float64
}

// Frame is every visual value derived from a single progress reading.
type Frame struct {
	Countdown  CountdownView
	Progress   ProgressView
	BodyHeight float64
	Flame      FlameView
	WickTop    float64
	Drips      []DripView
	Smoke      SmokeView
}

// Compute derives the frame for progress in [0,1] with the given number of
// wax drips. Out-of-range progress is clamped. The result depends on nothing
// but its arguments.
func Compute(progress float64, drips int) Frame {
	if math.IsNaN(progress) {
		progress = 0
	}
	progress = clampValue(progress, 0, 1)
	total := TotalDuration.Seconds()

	remaining := (1 - progress) * total
	text := strconv.FormatFloat(remaining, 'f', countdownDecimals, 64)
	shown, _ := strconv.ParseFloat(text, 64)

	height := BaseHeight * (1 - progress*bodyBurnFraction)
	reduction := BaseHeight - height

	f := Frame{
		Countdown: CountdownView{
			Text:  text,
			Color: countdownColor(shown),
		},
		Progress: ProgressView{
			FillPercent: progress * 100,
			Text:        strconv.Itoa(int(math.Round(progress*100))) + "%",
		},
		BodyHeight: height,
		Flame: FlameView{
			Opacity:  1,
			Scale:    1 - progress*flameShrink,
			Top:      flameRestTop + reduction,
			Gradient: flameGradient(progress),
		},
		WickTop: wickRestTop + reduction,
		Drips:   make([]DripView, max(drips, 0)),
		Smoke: SmokeView{
			Width:  smokeRestWidth,
			Height: smokeRestHeight,
		},
	}

	for i := range f.Drips {
		d := math.Max(0, progress-dripDelay-float64(i)*dripStagger)
		f.Drips[i] = DripView{
			Opacity: math.Min(d*dripFadeRate, 1),
			Offset:  d * dripTravel,
		}
	}

	if progress > smokeStart {
		s := (progress - smokeStart) * smokeRate
		f.Smoke.Opacity = math.Min(s, 1)
		f.Smoke.Rise = s * smokeTravel
		f.Smoke.Width = smokeRestWidth + s*smokeGrowth
	}

	return f
}

// RestFrame is the appearance of an unlit-yet, full-height candle.
func RestFrame(drips int) Frame {
	return Compute(0, drips)
}

// ExtinguishedFrame is the appearance once the candle has burned out: the
// flame is gone and a last plume of smoke hangs above the wick.
func ExtinguishedFrame(drips int) Frame {
	f := Compute(1, drips)
	f.Flame.Opacity = 0
	f.Smoke = SmokeView{
		Opacity: 0.5,
		Rise:    100,
		Width:   50,
		Height:  100,
	}
	return f
}

func countdownColor(remaining float64) color.RGBA {
	switch {
	case remaining <= criticalSeconds:
		return ColorCritical
	case remaining <= warningSeconds:
		return ColorWarning
	default:
		return ColorCountdown
	}
}

func flameGradient(progress float64) Gradient {
	if progress <= darkenStart {
		return RestGradient
	}
	k := (progress - darkenStart) * darkenRate
	r := uint8(math.Round(255 - k*darkenSpan))
	g := uint8(math.Round(154 - k*darkenSpan))
	return Gradient{
		{R: r, G: g, A: 0xff},
		{R: r, G: 80, A: 0xff},
		{R: r, G: 30, A: 0xff},
	}
}

// clampValue mirrors the game package helper; candle stays free of frontend imports.
func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}
