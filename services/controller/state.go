package controller

// Channel names one group of identically driven output pins.
type Channel uint8

const (
	ChanStatic Channel = iota
	ChanBlink
	ChanStrobe
	ChanControlled

	NumChannels
)

func (c Channel) String() string {
	switch c {
	case ChanStatic:
		return "static"
	case ChanBlink:
		return "blink"
	case ChanStrobe:
		return "strobe"
	case ChanControlled:
		return "controlled"
	default:
		return "unknown"
	}
}

// Title is the channel name as it appears in console notifications.
func (c Channel) Title() string {
	switch c {
	case ChanStatic:
		return "Static"
	case ChanBlink:
		return "Blink"
	case ChanStrobe:
		return "Strobe"
	case ChanControlled:
		return "Controlled"
	default:
		return "Unknown"
	}
}

// State is the single mutable state bundle owned by the tick loop. Nothing
// else writes it; no synchronization is needed.
type State struct {
	Mode      TextMode
	Enabled   [NumChannels]bool
	Inversion bool

	// controlledOn is the last computed controlled level, kept across ticks
	// for the on/off transition notifications.
	controlledOn bool
}

// NewState returns the boot state: normal case, every channel enabled,
// inversion off.
func NewState() *State {
	s := &State{}
	for i := range s.Enabled {
		s.Enabled[i] = true
	}
	return s
}

func (s *State) AnyEnabled() bool {
	for _, on := range s.Enabled {
		if on {
			return true
		}
	}
	return false
}

func (s *State) AllEnabled() bool {
	for _, on := range s.Enabled {
		if !on {
			return false
		}
	}
	return true
}

// SetAll flips every channel at once.
func (s *State) SetAll(on bool) {
	for i := range s.Enabled {
		s.Enabled[i] = on
	}
}

// ControlledLevel composes the final controlled-channel output level.
//
// The inverted branch is not a plain negation of the normal one: with
// inversion on, a disabled channel is driven high no matter the button.
// That asymmetry matches the reference hardware behavior and is asserted
// literally by tests; do not "simplify" it.
func ControlledLevel(enabled, controlledOn, inversion bool) bool {
	if !inversion {
		return enabled && controlledOn
	}
	return !enabled || controlledOn
}
