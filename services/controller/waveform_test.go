package controller

import "testing"

func TestWaveform_BlinkWindows(t *testing.T) {
	w := NewWaveform(500)
	// counter in [0,500) => blink off; [500,1000) => blink on; period 1000ms.
	for tick := 0; tick < 40; tick++ {
		w.Advance(50)
		c := w.Counter()
		want := c >= 500
		if got := w.BlinkOn(); got != want {
			t.Fatalf("counter=%d: BlinkOn=%v, want %v", c, got, want)
		}
	}
}

func TestWaveform_CounterWraps(t *testing.T) {
	w := NewWaveform(500)
	for i := 0; i < 19; i++ {
		w.Advance(50)
	}
	if w.Counter() != 950 {
		t.Fatalf("counter = %d, want 950", w.Counter())
	}
	w.Advance(50)
	if w.Counter() != 0 {
		t.Fatalf("counter did not wrap at 1000, got %d", w.Counter())
	}
}

func TestWaveform_StrobeFlipsEveryAdvance(t *testing.T) {
	w := NewWaveform(500)
	prev := w.StrobeOn()
	// Uneven tick increments: the strobe toggle must flip regardless of the
	// counter value.
	for _, tick := range []uint32{50, 50, 7, 500, 1, 999} {
		w.Advance(tick)
		if got := w.StrobeOn(); got == prev {
			t.Fatalf("strobe did not flip on Advance(%d)", tick)
		}
		prev = w.StrobeOn()
	}
}

func TestWaveform_DefaultBlinkPeriod(t *testing.T) {
	w := NewWaveform(0)
	for i := 0; i < 10; i++ {
		w.Advance(50)
	}
	if !w.BlinkOn() {
		t.Fatal("expected default 500ms blink period: high at counter 500")
	}
}
