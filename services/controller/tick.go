package controller

import (
	"context"
	"time"

	"nucleoctl-go/errcode"
)

// Config wires a Controller to its board.
type Config struct {
	Variant Variant
	Board   string // used in the startup banner

	TickMS   uint32 // tick pacing; 0 => DefaultTickMS
	BlinkMS  uint32 // blink half-period; 0 => DefaultBlinkMS
	ModeRing uint8  // button mode cycle length; 0 => 4, 3 for the reduced ring

	Status   []OutputPin              // echo variant status LED group
	Channels [NumChannels][]OutputPin // control variant channel groups

	Button    InputPin // optional; nil reads as never pressed
	Transport ByteTransport
	Delay     Delayer // nil => SleepDelayer
	Diag      Diag
	Telemetry Telemetry
}

// SleepDelayer paces ticks with time.Sleep, which TinyGo implements on every
// supported target.
type SleepDelayer struct{}

func (SleepDelayer) DelayMs(ms uint32) { time.Sleep(time.Duration(ms) * time.Millisecond) }

// Controller owns all loop state and runs the tick state machine. It is not
// safe for concurrent use; exactly one goroutine drives it.
type Controller struct {
	cfg  Config
	st   *State
	wave *Waveform
	line LineBuffer
	edge EdgeDetector
	con  *Console
	tel  Telemetry
	diag Diag

	// pressed is the button level sampled this tick, consumed by the output
	// stage below the poll.
	pressed bool
}

func New(cfg Config) (*Controller, error) {
	if cfg.Transport == nil {
		return nil, errcode.InvalidParams
	}
	if cfg.TickMS == 0 {
		cfg.TickMS = DefaultTickMS
	}
	if cfg.BlinkMS == 0 {
		cfg.BlinkMS = DefaultBlinkMS
	}
	if cfg.ModeRing == 0 {
		cfg.ModeRing = uint8(numTextModes)
	}
	if cfg.Delay == nil {
		cfg.Delay = SleepDelayer{}
	}
	if cfg.Diag == nil {
		cfg.Diag = NopDiag{}
	}
	if cfg.Telemetry == nil {
		cfg.Telemetry = NopTelemetry{}
	}
	if cfg.Board == "" {
		cfg.Board = "Nucleo-F103RB"
	}
	c := &Controller{
		cfg:  cfg,
		st:   NewState(),
		wave: NewWaveform(cfg.BlinkMS),
		tel:  cfg.Telemetry,
		diag: cfg.Diag,
	}
	c.con = NewConsole(cfg.Transport, cfg.Diag)
	return c, nil
}

// State exposes the loop state for inspection. Callers must not mutate it
// while the loop is running.
func (c *Controller) State() *State { return c.st }

// Run sends the startup banner and help text, then ticks until ctx is
// cancelled. The loop has no other exit.
func (c *Controller) Run(ctx context.Context) {
	c.con.WriteLine("Hello, " + c.cfg.Board + "!")
	c.con.WriteLine(Help(c.cfg.Variant))
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		c.Tick()
	}
}

// Tick runs one loop iteration. The stage order is load-bearing: serial
// before button before waveform before outputs, since each later stage reads
// state the earlier ones wrote this tick.
func (c *Controller) Tick() {
	c.pollSerial()
	c.pollButton()
	c.wave.Advance(c.cfg.TickMS)
	c.applyOutputs()
	c.cfg.Delay.DelayMs(c.cfg.TickMS)
}

// pollSerial consumes at most one byte. A would-block is the normal empty
// case; any other transport fault is absorbed so the loop never stalls.
func (c *Controller) pollSerial() {
	b, err := c.cfg.Transport.TryReadByte()
	if err != nil {
		if !errcode.IsWouldBlock(err) {
			c.diag.Line("serial read: " + string(errcode.Of(err)))
		}
		return
	}
	c.apply(Interpret(c.cfg.Variant, b, c.st, c.line.Len()))
}

func (c *Controller) apply(a Action) {
	switch a.Kind {
	case ActionHelp:
		c.con.WriteLine(Help(c.cfg.Variant))
	case ActionSetMode:
		c.changeMode(a.Mode)
	case ActionFlushReset:
		if c.line.Len() > 0 {
			c.line.Flush(c.cfg.Transport, c.st.Mode)
			c.line.Reset(c.cfg.Transport)
		}
	case ActionAppendEcho:
		if c.line.Append(a.Byte) {
			_ = c.cfg.Transport.WriteByte(ConvertCase(a.Byte, c.st.Mode))
		}
	case ActionSetAll:
		c.st.SetAll(a.On)
		for ch := Channel(0); ch < NumChannels; ch++ {
			c.tel.ChannelChanged(ch, a.On)
		}
		if a.On {
			c.con.WriteLine("All LEDs enabled.")
		} else {
			c.con.WriteLine("All LEDs disabled.")
		}
	case ActionToggleChannel:
		on := !c.st.Enabled[a.Channel]
		c.st.Enabled[a.Channel] = on
		c.tel.ChannelChanged(a.Channel, on)
		if on {
			c.con.WriteLine(a.Channel.Title() + " enabled.")
		} else {
			c.con.WriteLine(a.Channel.Title() + " disabled.")
		}
	case ActionToggleInversion:
		c.st.Inversion = !c.st.Inversion
		c.tel.InversionChanged(c.st.Inversion)
		if c.st.Inversion {
			c.con.WriteLine("LED control inversion enabled.")
		} else {
			c.con.WriteLine("LED control inversion disabled.")
		}
	}
}

// changeMode announces the new mode and re-echoes any buffered text with it.
// The buffer is flushed but not reset.
func (c *Controller) changeMode(m TextMode) {
	c.st.Mode = m
	c.tel.ModeChanged(m)
	c.con.WriteLine(m.Notice())
	if c.line.Len() > 0 {
		c.line.Flush(c.cfg.Transport, m)
	}
}

func (c *Controller) pollButton() {
	if c.cfg.Button == nil {
		c.pressed = false
		return
	}
	c.pressed = c.cfg.Button.Pressed()
	if c.edge.Detect(c.pressed) {
		c.tel.ButtonEdge()
		if c.cfg.Variant == VariantEcho {
			c.changeMode(c.st.Mode.Next(c.cfg.ModeRing))
		}
	}
}

func (c *Controller) applyOutputs() {
	if c.cfg.Variant == VariantControl {
		c.applyChannelOutputs()
		return
	}
	setGroup(c.cfg.Status, c.st.Mode.Pattern().Level(c.wave))
}

func (c *Controller) applyChannelOutputs() {
	st := c.st
	setGroup(c.cfg.Channels[ChanStatic], st.Enabled[ChanStatic])
	setGroup(c.cfg.Channels[ChanBlink], st.Enabled[ChanBlink] && c.wave.BlinkOn())
	setGroup(c.cfg.Channels[ChanStrobe], st.Enabled[ChanStrobe] && c.wave.StrobeOn())

	// Inversion swaps which button level counts as active.
	on := c.pressed != st.Inversion
	if st.Enabled[ChanControlled] && on != st.controlledOn {
		if on {
			c.con.WriteLine("Controlled LED on.")
		} else {
			c.con.WriteLine("Controlled LED off.")
		}
	}
	st.controlledOn = on
	setGroup(c.cfg.Channels[ChanControlled],
		ControlledLevel(st.Enabled[ChanControlled], on, st.Inversion))
}

func setGroup(pins []OutputPin, level bool) {
	for _, p := range pins {
		p.Set(level)
	}
}
