package candle

import "fmt"

// Phase is the lifecycle state of a candle timer.
//
//	          Start            tick >= total
//	Idle ────────────► Running ─────────────► Completed
//	 ▲                  │   ▲                     │
//	 │            Pause │   │ Start               │
//	 │                  ▼   │                     │
//	 └───── Reset ───── Paused                    │
//	 └───────────────────── Reset ────────────────┘
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
