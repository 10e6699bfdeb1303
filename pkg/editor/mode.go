package editor

// Mode is the active interaction of the controller.
type Mode int

const (
	ModeIdle Mode = iota
	ModeWalking
	ModeMoving
	ModeResizing
	ModeConnecting
	ModeSelecting
	ModeScrollingX
	ModeScrollingY
)

var modeNames = [...]string{
	ModeIdle:       "idle",
	ModeWalking:    "walking",
	ModeMoving:     "moving",
	ModeResizing:   "resizing",
	ModeConnecting: "connecting",
	ModeSelecting:  "selecting",
	ModeScrollingX: "scrolling-x",
	ModeScrollingY: "scrolling-y",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode parses the name returned by [Mode.String].
func ParseMode(s string) (Mode, bool) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), true
		}
	}
	return ModeIdle, false
}
