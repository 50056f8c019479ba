package planet

import "image"

// State is a step of the pipeline state machine.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateDistorting
	StateMasking
	StateShading
	StateBrightening
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateIdle:        "idle",
	StateLoading:     "loading",
	StateDistorting:  "distorting",
	StateMasking:     "masking",
	StateShading:     "shading",
	StateBrightening: "brightening",
	StateDone:        "done",
	StateFailed:      "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further events follow s.
func (s State) Terminal() bool { return s == StateDone || s == StateFailed }

// Event is a progress notification. Every stage emits one on entry; the last
// event of a run is always StateDone or StateFailed.
type Event struct {
	State   State
	Message string

	// Set on StateDone.
	Image          *image.NRGBA
	BrightnessLoss float64

	// Set on StateFailed.
	Err error
}

// Progress messages, in stage order.
const (
	msgOpening    = "Opening %s..."
	msgDistorting = "Getting spherization..."
	msgMasking    = "Getting circle..."
	msgShading    = "Adding shadow gradient..."
	msgBrighten   = "Increasing brightness..."
	msgDone       = "Planet is ready!"
	msgFailed     = "Failed: %v"
)
