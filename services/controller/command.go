package controller

// Variant selects which single-byte command set the interpreter speaks.
type Variant uint8

const (
	VariantEcho    Variant = iota // text echo with case conversion
	VariantControl                // LED channel control
)

func (v Variant) String() string {
	if v == VariantControl {
		return "control"
	}
	return "echo"
}

// ActionKind discriminates the closed Action sum.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionHelp
	ActionSetMode
	ActionFlushReset
	ActionAppendEcho
	ActionSetAll
	ActionToggleChannel
	ActionToggleInversion
)

// Action is what one received byte asks the controller to do. Interpret
// builds it; the controller applies it.
type Action struct {
	Kind    ActionKind
	Mode    TextMode // ActionSetMode
	Byte    byte     // ActionAppendEcho
	On      bool     // ActionSetAll
	Channel Channel  // ActionToggleChannel
}

// Interpret maps one command byte to an Action. It is pure: it reads the
// state but never mutates it, and a byte that would change nothing yields
// ActionNone.
func Interpret(v Variant, c byte, st *State, buffered int) Action {
	if c == '?' {
		return Action{Kind: ActionHelp}
	}
	if v == VariantControl {
		return interpretControl(c, st)
	}
	return interpretEcho(c, st, buffered)
}

func interpretEcho(c byte, st *State, buffered int) Action {
	switch c {
	case '=':
		return setMode(st, NormalCase)
	case '+':
		return setMode(st, ForceUpper)
	case '-':
		return setMode(st, ForceLower)
	case '~':
		return setMode(st, InvertedCase)
	case '\r':
		return Action{Kind: ActionFlushReset}
	default:
		if buffered >= BufferSize {
			// Silent drop.
			return Action{}
		}
		return Action{Kind: ActionAppendEcho, Byte: c}
	}
}

// setMode is a no-op when the mode is already active, so the peer is not
// re-notified.
func setMode(st *State, m TextMode) Action {
	if st.Mode == m {
		return Action{}
	}
	return Action{Kind: ActionSetMode, Mode: m}
}

func interpretControl(c byte, st *State) Action {
	switch c {
	case '0':
		if !st.AnyEnabled() {
			return Action{}
		}
		return Action{Kind: ActionSetAll, On: false}
	case '1':
		if st.AllEnabled() {
			return Action{}
		}
		return Action{Kind: ActionSetAll, On: true}
	case '2':
		return Action{Kind: ActionToggleChannel, Channel: ChanStatic}
	case '3':
		return Action{Kind: ActionToggleChannel, Channel: ChanBlink}
	case '4':
		return Action{Kind: ActionToggleChannel, Channel: ChanStrobe}
	case '5':
		return Action{Kind: ActionToggleChannel, Channel: ChanControlled}
	case '9':
		return Action{Kind: ActionToggleInversion}
	default:
		// Unrecognized bytes, carriage returns included, are ignored.
		return Action{}
	}
}
