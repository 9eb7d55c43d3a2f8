package candle

import (
	"fmt"
	"image/color"
)

// TextSink receives a label and its color.
type TextSink interface {
	SetText(text string)
	SetColor(c color.RGBA)
}

// FillSink receives how much of the progress bar is filled, in percent.
type FillSink interface {
	SetFillPercent(percent float64)
}

// FlameSink receives the flame appearance. Top is relative to the top of a
// full-height candle.
type FlameSink interface {
	SetOpacity(opacity float64)
	SetScale(scale float64)
	SetTop(top float64)
	SetGradient(g Gradient)
}

type BodySink interface {
	SetHeight(height float64)
}

// WickSink receives the wick position, relative like FlameSink.
type WickSink interface {
	SetTop(top float64)
}

// DripSink receives one wax drip; Offset is how far it has run down the body.
type DripSink interface {
	SetOpacity(opacity float64)
	SetOffset(offset float64)
}

// SmokeSink receives the smoke plume above the wick.
type SmokeSink interface {
	SetOpacity(opacity float64)
	SetRise(rise float64)
	SetSize(width, height float64)
}

// ButtonSink receives whether a control may currently be pressed.
type ButtonSink interface {
	SetEnabled(enabled bool)
}

// Targets binds a controller to the surface it draws on. Every field except
// StartButton and PauseButton is required. The controller only ever writes
// to targets; it never reads their values back.
type Targets struct {
	Countdown    TextSink
	ProgressFill FillSink
	ProgressText TextSink
	Status       TextSink
	Flame        FlameSink
	Body         BodySink
	Wick         WickSink
	Drips        []DripSink
	Smoke        SmokeSink

	StartButton ButtonSink
	PauseButton ButtonSink
}

// apply writes f to every target.
func (t Targets) apply(f Frame) {
	t.Countdown.SetText(f.Countdown.Text)
	t.Countdown.SetColor(f.Countdown.Color)

	t.ProgressFill.SetFillPercent(f.Progress.FillPercent)
	t.ProgressText.SetText(f.Progress.Text)

	t.Body.SetHeight(f.BodyHeight)

	t.Flame.SetOpacity(f.Flame.Opacity)
	t.Flame.SetScale(f.Flame.Scale)
	t.Flame.SetTop(f.Flame.Top)
	t.Flame.SetGradient(f.Flame.Gradient)

	t.Wick.SetTop(f.WickTop)

	for i, drip := range t.Drips {
		drip.SetOpacity(f.Drips[i].Opacity)
		drip.SetOffset(f.Drips[i].Offset)
	}

	t.Smoke.SetOpacity(f.Smoke.Opacity)
	t.Smoke.SetRise(f.Smoke.Rise)
	t.Smoke.SetSize(f.Smoke.Width, f.Smoke.Height)
}

func (t Targets) setStatus(s status) {
	t.Status.SetText(s.text)
	t.Status.SetColor(s.color)
}

func (t Targets) setButtons(canStart, canPause bool) {
	if t.StartButton != nil {
		t.StartButton.SetEnabled(canStart)
	}
	if t.PauseButton != nil {
		t.PauseButton.SetEnabled(canPause)
	}
}

func (t Targets) validate() error {
	required := []struct {
		name  string
		bound bool
	}{
		{"countdown", t.Countdown != nil},
		{"progress fill", t.ProgressFill != nil},
		{"progress text", t.ProgressText != nil},
		{"status", t.Status != nil},
		{"flame", t.Flame != nil},
		{"body", t.Body != nil},
		{"wick", t.Wick != nil},
		{"smoke", t.Smoke != nil},
	}
	for _, r := range required {
		if !r.bound {
			return fmt.Errorf("candle: %s: %w", r.name, ErrMissingTarget)
		}
	}
	for i, d := range t.Drips {
		if d == nil {
			return fmt.Errorf("candle: drip %d: %w", i, ErrMissingTarget)
		}
	}
	return nil
}
