package candle

import (
	"errors"
	"image/color"
	"time"

	"github.com/meghashyamc/candletimer/clock"
	"github.com/meghashyamc/candletimer/logger"
)

// ErrMissingTarget is returned when a required render target is not bound.
var ErrMissingTarget = errors.New("missing render target")

type status struct {
	text  string
	color color.RGBA
}

var (
	statusReady   = status{text: "Ready", color: color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}}
	statusBurning = status{text: "Burning...", color: color.RGBA{R: 0xff, G: 0x9a, B: 0x00, A: 0xff}}
	statusPaused  = status{text: "Paused", color: color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}}
	statusBurnt   = status{text: "Burned out!", color: color.RGBA{R: 0xf4, G: 0x43, B: 0x36, A: 0xff}}
)

// Controller runs one candle timer: it owns the timer state, reacts to
// Start, Pause and Reset, and on every frame maps elapsed time onto its
// render targets.
//
// A Controller is not safe for concurrent use. Control calls and scheduler
// steps must come from the same goroutine.
type Controller struct {
	clock     clock.Clock
	scheduler clock.Scheduler
	targets   Targets
	logger    logger.Logger

	phase        Phase
	elapsed      time.Duration
	runStart     time.Time
	pausedOffset time.Duration
	frame        clock.FrameID
}

// NewController binds a controller to targets and leaves it Idle with the
// targets showing the resting candle.
func NewController(targets Targets, clk clock.Clock, scheduler clock.Scheduler, log logger.Logger) (*Controller, error) {
	if err := targets.validate(); err != nil {
		return nil, err
	}
	if clk == nil || scheduler == nil {
		return nil, errors.New("candle: clock and scheduler are required")
	}
	if log == nil {
		log = logger.NewNop()
	}

	c := &Controller{
		clock:     clk,
		scheduler: scheduler,
		targets:   targets,
		logger:    log,
		phase:     PhaseIdle,
	}
	c.showRest()

	c.logger.Debug("candle controller created", "drips", len(targets.Drips), "duration", TotalDuration)
	return c, nil
}

// Start lights the candle, or relights it after a pause. It does nothing
// while the candle is already burning or once it has burned out.
func (c *Controller) Start() {
	switch c.phase {
	case PhaseRunning, PhaseCompleted:
		c.logger.Debug("start ignored", "phase", c.phase.String())
		return
	}

	c.runStart = c.clock.Now().Add(-c.pausedOffset)
	c.pausedOffset = 0
	c.phase = PhaseRunning

	c.targets.setButtons(false, true)
	c.targets.setStatus(statusBurning)
	c.logger.Debug("candle lit", "elapsed", c.elapsed)

	c.tick()
}

// Pause freezes the candle. Only a burning candle can be paused.
func (c *Controller) Pause() {
	if c.phase != PhaseRunning {
		c.logger.Debug("pause ignored", "phase", c.phase.String())
		return
	}

	c.cancelFrame()
	c.pausedOffset = clampValue(c.clock.Now().Sub(c.runStart), c.elapsed, TotalDuration)
	c.elapsed = c.pausedOffset
	if c.elapsed >= TotalDuration {
		// The candle ran out between two frames.
		c.complete()
		return
	}
	c.phase = PhasePaused

	c.targets.setButtons(true, false)
	c.targets.setStatus(statusPaused)
	c.logger.Debug("candle paused", "elapsed", c.elapsed)
}

// Reset puts the candle back to its initial, unlit state from any phase.
func (c *Controller) Reset() {
	c.cancelFrame()
	c.elapsed = 0
	c.pausedOffset = 0
	c.phase = PhaseIdle
	c.showRest()

	c.logger.Debug("candle reset")
}

func (c *Controller) Phase() Phase {
	return c.phase
}

// Elapsed is the burn time so far, between zero and TotalDuration.
func (c *Controller) Elapsed() time.Duration {
	return c.elapsed
}

func (c *Controller) Remaining() time.Duration {
	return TotalDuration - c.elapsed
}

// Progress is the elapsed fraction of TotalDuration, in [0,1].
func (c *Controller) Progress() float64 {
	return float64(c.elapsed) / float64(TotalDuration)
}

// tick is the per-frame callback. It reschedules itself until the candle
// burns out.
func (c *Controller) tick() {
	c.frame = 0
	if c.phase != PhaseRunning {
		return
	}

	// Never let a clock stepping backward un-burn the candle.
	c.elapsed = clampValue(c.clock.Now().Sub(c.runStart), c.elapsed, TotalDuration)
	c.targets.apply(Compute(c.Progress(), len(c.targets.Drips)))

	if c.elapsed >= TotalDuration {
		c.complete()
		return
	}
	c.frame = c.scheduler.RequestFrame(c.tick)
}

func (c *Controller) complete() {
	c.cancelFrame()
	c.phase = PhaseCompleted
	c.elapsed = TotalDuration
	c.pausedOffset = 0

	c.targets.apply(ExtinguishedFrame(len(c.targets.Drips)))
	c.targets.setButtons(false, false)
	c.targets.setStatus(statusBurnt)
	c.logger.Info("candle burned out", "duration", TotalDuration)
}

func (c *Controller) cancelFrame() {
	if c.frame != 0 {
		c.scheduler.CancelFrame(c.frame)
		c.frame = 0
	}
}

func (c *Controller) showRest() {
	c.targets.apply(RestFrame(len(c.targets.Drips)))
	c.targets.setButtons(true, false)
	c.targets.setStatus(statusReady)
}
