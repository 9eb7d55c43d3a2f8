package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/meghashyamc/candletimer/candle"
	"github.com/meghashyamc/candletimer/clock"
	"github.com/meghashyamc/candletimer/logger"
)

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen, *clock.Manual) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	screen.SetSize(60, 40)

	clk := clock.NewManual(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	f, err := newFrontend(screen, candle.DefaultDrips, 16*time.Millisecond, clk, clock.NewFrameScheduler(), logger.NewNop())
	if err != nil {
		t.Fatalf("newFrontend() error = %v", err)
	}
	return f, screen, clk
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func screenContains(screen tcell.Screen, s string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), s) {
			return true
		}
	}
	return false
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want command
	}{
		{tcell.KeyRune, 's', commandStart},
		{tcell.KeyRune, ' ', commandStart},
		{tcell.KeyEnter, 0, commandStart},
		{tcell.KeyRune, 'p', commandPause},
		{tcell.KeyRune, 'R', commandReset},
		{tcell.KeyRune, 'q', commandQuit},
		{tcell.KeyEscape, 0, commandQuit},
		{tcell.KeyCtrlC, 0, commandQuit},
		{tcell.KeyRune, 'x', commandNone},
		{tcell.KeyTab, 0, commandNone},
	}
	for _, tt := range tests {
		if got := keyCommand(tt.key, tt.r); got != tt.want {
			t.Errorf("keyCommand(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestDrawRestingCandle(t *testing.T) {
	f, screen, _ := newTestFrontend(t)
	f.draw()

	if got := strings.TrimSpace(rowText(screen, 0)); got != "20.0" {
		t.Errorf("countdown row = %q, want 20.0", got)
	}
	if got := strings.TrimSpace(rowText(screen, 1)); got != "Ready" {
		t.Errorf("status row = %q, want Ready", got)
	}
	if !screenContains(screen, "0%") {
		t.Error("progress label not drawn")
	}
	if !screenContains(screen, helpText) {
		t.Error("help line not drawn")
	}
	if !screenContains(screen, "█") {
		t.Error("candle body not drawn")
	}
}

func TestCommandsUpdateScreen(t *testing.T) {
	f, screen, clk := newTestFrontend(t)

	if !f.apply(commandStart) {
		t.Fatal("start stopped the frontend")
	}
	clk.Advance(5 * time.Second)
	f.scheduler.Step()
	f.draw()

	if got := strings.TrimSpace(rowText(screen, 0)); got != "15.0" {
		t.Errorf("countdown row = %q, want 15.0", got)
	}
	if !screenContains(screen, "25%") {
		t.Error("progress label 25% not drawn")
	}

	f.apply(commandPause)
	f.draw()
	if got := strings.TrimSpace(rowText(screen, 1)); got != "Paused" {
		t.Errorf("status row = %q, want Paused", got)
	}

	f.apply(commandReset)
	f.draw()
	if got := strings.TrimSpace(rowText(screen, 0)); got != "20.0" {
		t.Errorf("countdown row after reset = %q, want 20.0", got)
	}

	if f.apply(commandQuit) {
		t.Error("quit command kept the frontend running")
	}
}

func TestDrawBurnedOut(t *testing.T) {
	f, screen, clk := newTestFrontend(t)
	f.apply(commandStart)
	clk.Advance(candle.TotalDuration)
	f.scheduler.Step()
	f.draw()

	if got := strings.TrimSpace(rowText(screen, 1)); got != "Burned out!" {
		t.Errorf("status row = %q, want Burned out!", got)
	}
	if screenContains(screen, "▲") {
		t.Error("flame still drawn after burning out")
	}
	if !screenContains(screen, "░") {
		t.Error("smoke not drawn after burning out")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _, _ := newTestFrontend(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
