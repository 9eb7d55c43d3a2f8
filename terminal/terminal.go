// Package terminal draws the candle timer with tcell for use over SSH or in
// a plain terminal, driving the same controller as the window frontend.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/meghashyamc/candletimer/candle"
	"github.com/meghashyamc/candletimer/clock"
	"github.com/meghashyamc/candletimer/config"
	"github.com/meghashyamc/candletimer/logger"
)

type command int

const (
	commandNone command = iota
	commandStart
	commandPause
	commandReset
	commandQuit
)

type Frontend struct {
	screen     tcell.Screen
	surface    *candle.Surface
	controller *candle.Controller
	scheduler  *clock.FrameScheduler
	frame      time.Duration
	logger     logger.Logger
}

// New opens the terminal and builds a frontend on it. The caller must call
// Run, which restores the terminal when it returns.
func New(cfg *config.Config, log logger.Logger) (*Frontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	frame := time.Duration(cfg.GetTerminalFrameMillis()) * time.Millisecond
	f, err := newFrontend(screen, cfg.GetDrips(), frame, clock.Real{}, clock.NewFrameScheduler(), log)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return f, nil
}

func newFrontend(screen tcell.Screen, drips int, frame time.Duration, clk clock.Clock, scheduler *clock.FrameScheduler, log logger.Logger) (*Frontend, error) {
	surface := candle.NewSurface(drips)
	controller, err := candle.NewController(surface.Targets(), clk, scheduler, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create candle controller: %w", err)
	}

	return &Frontend{
		screen:     screen,
		surface:    surface,
		controller: controller,
		scheduler:  scheduler,
		frame:      frame,
		logger:     log,
	}, nil
}

// Run redraws every frame interval and handles keys until the user quits or
// ctx is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	defer f.screen.Fini()

	f.logger.Info("terminal frontend started", "frame", f.frame)

	ticker := time.NewTicker(f.frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	f.draw()
	for {
		select {
		case <-ctx.Done():
			f.logger.Info("terminal frontend stopped", "reason", ctx.Err())
			return nil

		case ev := <-eventChan:
			if !f.handleEvent(ev) {
				f.logger.Info("quit requested")
				return nil
			}
			f.draw()

		case <-ticker.C:
			f.scheduler.Step()
			f.draw()
		}
	}
}

// handleEvent applies ev and reports whether the frontend should keep
// running.
func (f *Frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.apply(keyCommand(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) apply(cmd command) bool {
	switch cmd {
	case commandStart:
		f.controller.Start()
	case commandPause:
		f.controller.Pause()
	case commandReset:
		f.controller.Reset()
	case commandQuit:
		return false
	}
	return true
}

func keyCommand(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return commandQuit
	case tcell.KeyEnter:
		return commandStart
	case tcell.KeyRune:
		switch r {
		case 's', 'S', ' ':
			return commandStart
		case 'p', 'P':
			return commandPause
		case 'r', 'R':
			return commandReset
		case 'q', 'Q':
			return commandQuit
		}
	}
	return commandNone
}
