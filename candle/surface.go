package candle

import "image/color"

// Label is a retained text element.
type Label struct {
	Text  string
	Color color.RGBA
}

func (l *Label) SetText(text string)   { l.Text = text }
func (l *Label) SetColor(c color.RGBA) { l.Color = c }

// Bar is a retained progress bar.
type Bar struct {
	FillPercent float64
}

func (b *Bar) SetFillPercent(percent float64) { b.FillPercent = percent }

type Flame struct {
	Opacity  float64
	Scale    float64
	Top      float64
	Gradient Gradient
}

func (f *Flame) SetOpacity(opacity float64) { f.Opacity = opacity }
func (f *Flame) SetScale(scale float64)     { f.Scale = scale }
func (f *Flame) SetTop(top float64)         { f.Top = top }
func (f *Flame) SetGradient(g Gradient)     { f.Gradient = g }

type Body struct {
	Height float64
}

func (b *Body) SetHeight(height float64) { b.Height = height }

type Wick struct {
	Top float64
}

func (w *Wick) SetTop(top float64) { w.Top = top }

type Drip struct {
	Opacity float64
	Offset  float64
}

func (d *Drip) SetOpacity(opacity float64) { d.Opacity = opacity }
func (d *Drip) SetOffset(offset float64)   { d.Offset = offset }

type Smoke struct {
	Opacity float64
	Rise    float64
	Width   float64
	Height  float64
}

func (s *Smoke) SetOpacity(opacity float64) { s.Opacity = opacity }
func (s *Smoke) SetRise(rise float64)       { s.Rise = rise }
func (s *Smoke) SetSize(width, height float64) {
	s.Width = width
	s.Height = height
}

type Button struct {
	Enabled bool
}

func (b *Button) SetEnabled(enabled bool) { b.Enabled = enabled }

// Surface is an in-memory scene holding every element a controller draws
// to. Frontends read it each frame to paint the candle.
type Surface struct {
	Countdown    Label
	ProgressFill Bar
	ProgressText Label
	Status       Label
	Flame        Flame
	Body         Body
	Wick         Wick
	Drips        []Drip
	Smoke        Smoke
	StartButton  Button
	PauseButton  Button
}

// NewSurface creates a surface with the given number of wax drips.
func NewSurface(drips int) *Surface {
	return &Surface{
		Drips:       make([]Drip, max(drips, 0)),
		StartButton: Button{Enabled: true},
	}
}

// Targets binds every element of the surface.
func (s *Surface) Targets() Targets {
	drips := make([]DripSink, len(s.Drips))
	for i := range s.Drips {
		drips[i] = &s.Drips[i]
	}
	return Targets{
		Countdown:    &s.Countdown,
		ProgressFill: &s.ProgressFill,
		ProgressText: &s.ProgressText,
		Status:       &s.Status,
		Flame:        &s.Flame,
		Body:         &s.Body,
		Wick:         &s.Wick,
		Drips:        drips,
		Smoke:        &s.Smoke,
		StartButton:  &s.StartButton,
		PauseButton:  &s.PauseButton,
	}
}

// Snapshot is a copy of a surface that is safe to keep after the surface
// changes.
func (s *Surface) Snapshot() Surface {
	out := *s
	out.Drips = append([]Drip(nil), s.Drips...)
	return out
}
