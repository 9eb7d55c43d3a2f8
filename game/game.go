package game

import (
	"fmt"
	"image/color"

	"github.com/meghashyamc/candletimer/candle"
	"github.com/meghashyamc/candletimer/clock"
	"github.com/meghashyamc/candletimer/config"
	"github.com/meghashyamc/candletimer/geometry"
	"github.com/meghashyamc/candletimer/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 480
	screenHeight = 720
)

const (
	buttonWidth  = 120
	buttonHeight = 44
	buttonGap    = 24
	buttonsTop   = screenHeight - 90
)

type Game struct {
	cfg        *config.Config
	surface    *candle.Surface
	controller *candle.Controller
	scheduler  *clock.FrameScheduler
	buttons    []*Button
	logger     logger.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	return newGame(cfg, clock.Real{}, clock.NewFrameScheduler(), logger.New())
}

func newGame(cfg *config.Config, clk clock.Clock, scheduler *clock.FrameScheduler, log logger.Logger) (*Game, error) {
	surface := candle.NewSurface(cfg.GetDrips())
	controller, err := candle.NewController(surface.Targets(), clk, scheduler, log)
	if err != nil {
		log.Error("failed to create candle controller", "err", err)
		return nil, fmt.Errorf("failed to create candle controller: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		surface:    surface,
		controller: controller,
		scheduler:  scheduler,
		logger:     log,
	}
	g.buttons = g.newButtons()

	g.logger.Info("game initialized", "drips", cfg.GetDrips(), "duration", candle.TotalDuration)
	return g, nil
}

func (g *Game) newButtons() []*Button {
	left := float64(screenWidth-3*buttonWidth-2*buttonGap) / 2
	at := func(i int) geometry.Rect {
		return geometry.NewRect(left+float64(i*(buttonWidth+buttonGap)), buttonsTop, buttonWidth, buttonHeight)
	}

	return []*Button{
		{label: "Start", rect: at(0), state: &g.surface.StartButton, action: g.controller.Start},
		{label: "Pause", rect: at(1), state: &g.surface.PauseButton, action: g.controller.Pause},
		{label: "Reset", rect: at(2), action: g.controller.Reset},
	}
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

func (g *Game) Update() error {
	// Frames requested during the previous tick run first so input handled
	// below acts on an up to date timer.
	g.scheduler.Step()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.controller.Start()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.controller.Pause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.controller.Reset()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(getCurrentMousePosition())
	}

	return nil
}

// click presses the button under p, if any.
func (g *Game) click(p geometry.Vector) bool {
	for _, b := range g.buttons {
		if b.Press(p) {
			g.logger.Debug("button pressed", "button", b.label, "phase", g.controller.Phase().String())
			return true
		}
	}
	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x14, 0x10, 0x0c, 0xff})

	g.drawCountdown(screen)
	g.drawCandle(screen)
	g.drawProgress(screen)
	g.drawStatus(screen)

	for _, b := range g.buttons {
		b.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
