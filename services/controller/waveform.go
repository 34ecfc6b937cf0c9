package controller

// Waveform derives the periodic LED signals from a free-running counter.
//
// The two signals are produced differently on purpose: blink is computed
// from the counter, so it keeps phase across ticks, while strobe is a plain
// toggle that flips on every Advance no matter what the counter says. Under
// variable tick timing the two drift apart; that matches the reference
// hardware behavior and must not be unified.
type Waveform struct {
	counter uint32
	strobe  bool
	blinkMS uint32
}

func NewWaveform(blinkMS uint32) *Waveform {
	if blinkMS == 0 {
		blinkMS = DefaultBlinkMS
	}
	return &Waveform{blinkMS: blinkMS}
}

// Advance moves the counter by one tick increment, wrapping into
// [0, 2*blinkMS), and flips the strobe toggle.
func (w *Waveform) Advance(tickMS uint32) {
	w.counter = (w.counter + tickMS) % (2 * w.blinkMS)
	w.strobe = !w.strobe
}

// BlinkOn is a 50% duty square wave with period 2*blinkMS: low for the first
// blink period of each cycle, high for the second.
func (w *Waveform) BlinkOn() bool { return w.counter >= w.blinkMS }

// StrobeOn flips on every Advance, giving a square wave of period 2*tick:
// the fastest oscillation in the system.
func (w *Waveform) StrobeOn() bool { return w.strobe }

func (w *Waveform) Counter() uint32 { return w.counter }
