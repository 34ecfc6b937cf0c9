// Package controller implements the command-and-mode state machine for the
// serial/button LED board: a single-threaded cooperative tick loop that fuses
// one push-button and a byte-oriented serial link into LED channel levels and
// an echoed, case-converted text stream.
//
// The core never touches hardware registers. Everything below is driven
// through the injected capability interfaces in this file; platform bindings
// live in internal/platform.
package controller

// Timing defaults, in milliseconds. The tick doubles as the blink resolution
// and the strobe half-period.
const (
	DefaultTickMS  = 50
	DefaultBlinkMS = 500
)

// ---- Injected hardware capabilities ----

// OutputPin drives one digital output. Set is assumed infallible.
type OutputPin interface {
	Set(level bool)
}

// InputPin samples one logical input. Platform bindings fold active-low
// wiring into the Pressed result.
type InputPin interface {
	Pressed() bool
}

// ByteTransport is the non-blocking command/echo link. TryReadByte returns
// errcode.WouldBlock when no byte is pending; WriteByte and Flush may block.
type ByteTransport interface {
	TryReadByte() (byte, error)
	WriteByte(c byte) error
	Flush() error
}

// Delayer paces the tick loop. The blocking delay is the system's sole time
// base; there is no independent clock read.
type Delayer interface {
	DelayMs(ms uint32)
}

// Diag is a fire-and-forget diagnostic line sink. Not required for
// correctness.
type Diag interface {
	Line(s string)
}

type NopDiag struct{}

func (NopDiag) Line(string) {}

// PrintlnDiag routes lines to the runtime's println (RTT, semihosting or USB
// CDC under TinyGo; stderr on a host).
type PrintlnDiag struct{}

func (PrintlnDiag) Line(s string) { println(s) }
