package game

import (
	"testing"
	"time"

	"github.com/meghashyamc/candletimer/candle"
	"github.com/meghashyamc/candletimer/clock"
	"github.com/meghashyamc/candletimer/config"
	"github.com/meghashyamc/candletimer/geometry"
	"github.com/meghashyamc/candletimer/logger"
)

func newTestGame(t *testing.T) (*Game, *clock.Manual) {
	t.Helper()
	cfg, err := config.Load("does-not-exist", nil)
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	clk := clock.NewManual(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	g, err := newGame(cfg, clk, clock.NewFrameScheduler(), logger.NewNop())
	if err != nil {
		t.Fatalf("newGame() error = %v", err)
	}
	return g, clk
}

func (g *Game) buttonCenter(t *testing.T, label string) geometry.Vector {
	t.Helper()
	for _, b := range g.buttons {
		if b.label == label {
			return b.rect.Center()
		}
	}
	t.Fatalf("no %s button", label)
	return geometry.Vector{}
}

func TestButtonsDriveController(t *testing.T) {
	g, clk := newTestGame(t)

	if !g.click(g.buttonCenter(t, "Start")) {
		t.Fatal("Start button did not respond")
	}
	if g.controller.Phase() != candle.PhaseRunning {
		t.Fatalf("phase = %v, want running", g.controller.Phase())
	}

	clk.Advance(3 * time.Second)
	g.scheduler.Step()

	if !g.click(g.buttonCenter(t, "Pause")) {
		t.Fatal("Pause button did not respond")
	}
	if g.controller.Phase() != candle.PhasePaused || g.controller.Elapsed() != 3*time.Second {
		t.Fatalf("phase %v elapsed %v, want paused at 3s", g.controller.Phase(), g.controller.Elapsed())
	}

	if !g.click(g.buttonCenter(t, "Reset")) {
		t.Fatal("Reset button did not respond")
	}
	if g.controller.Phase() != candle.PhaseIdle || g.surface.Countdown.Text != "20.0" {
		t.Errorf("phase %v countdown %q after reset", g.controller.Phase(), g.surface.Countdown.Text)
	}
}

func TestDisabledButtonsIgnoreClicks(t *testing.T) {
	g, _ := newTestGame(t)

	// Pause is disabled until the candle is lit.
	if g.click(g.buttonCenter(t, "Pause")) {
		t.Error("disabled Pause button responded")
	}

	g.click(g.buttonCenter(t, "Start"))
	if g.click(g.buttonCenter(t, "Start")) {
		t.Error("Start button responded while burning")
	}
}

func TestClickOutsideButtons(t *testing.T) {
	g, _ := newTestGame(t)
	if g.click(geometry.Vector{X: 5, Y: 5}) {
		t.Error("click on empty space pressed a button")
	}
	if g.controller.Phase() != candle.PhaseIdle {
		t.Errorf("phase = %v, want idle", g.controller.Phase())
	}
}

func TestButtonsFitOnScreen(t *testing.T) {
	g, _ := newTestGame(t)
	screen := geometry.NewRect(0, 0, screenWidth, screenHeight)
	for _, b := range g.buttons {
		r := b.rect
		if !screen.Contains(geometry.Vector{X: r.X, Y: r.Y}) || r.X+r.Width > screenWidth || r.Bottom() > screenHeight {
			t.Errorf("%s button %+v is off screen", b.label, r)
		}
	}
}

func TestWithOpacity(t *testing.T) {
	c := candle.ColorCountdown
	tests := []struct {
		opacity float64
		want    uint8
	}{
		{1, 255},
		{0, 0},
		{0.5, 128},
		{-1, 0},
		{3, 255},
	}
	for _, tt := range tests {
		got := withOpacity(c, tt.opacity)
		if got.A != tt.want || got.R != c.R || got.G != c.G {
			t.Errorf("withOpacity(%v) = %v, want alpha %d", tt.opacity, got, tt.want)
		}
	}
}
