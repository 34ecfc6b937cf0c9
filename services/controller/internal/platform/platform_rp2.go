//go:build rp2040 || rp2350

package platform

import (
	"context"
	"image/color"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ws2812"

	"nucleoctl-go/errcode"
	"nucleoctl-go/services/controller"
)

const (
	boardName = "Pico"
	baudRate  = 115200
)

// Pin plan (GP numbering, uart0 on the board-default pins). External LEDs
// wired pin >--|>|--[R]-- GND; the button shorts its pin to GND.
var (
	statusWS2812   = 16
	staticPins     = []int{2, 3}
	blinkPins      = []int{4, 5}
	strobePins     = []int{6, 7}
	controlledPins = []int{8, 9}
	buttonPin      = 10
)

// ---- GPIO ----

type gpioOut struct{ p machine.Pin }

func newOut(n int) controller.OutputPin {
	p := machine.Pin(n)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return gpioOut{p}
}

func (o gpioOut) Set(level bool) { o.p.Set(level) }

func outs(pins []int) []controller.OutputPin {
	group := make([]controller.OutputPin, 0, len(pins))
	for _, n := range pins {
		group = append(group, newOut(n))
	}
	return group
}

type gpioButton struct{ p machine.Pin }

// Pressed reads active-low: the pull-up keeps the line high until the
// button shorts it to ground.
func (b gpioButton) Pressed() bool { return !b.p.Get() }

func userButton() controller.InputPin {
	p := machine.Pin(buttonPin)
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return gpioButton{p}
}

// ---- WS2812 status strip ----

// wsGroup drives a short WS2812 strip as one logical output: all pixels
// take the on color together.
type wsGroup struct {
	dev ws2812.Device
	on  color.RGBA
	buf []color.RGBA
}

func newWSGroup(pinN, pixels int, on color.RGBA) *wsGroup {
	p := machine.Pin(pinN)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &wsGroup{
		dev: ws2812.NewWS2812(p),
		on:  on,
		buf: make([]color.RGBA, pixels),
	}
}

func (g *wsGroup) Set(level bool) {
	c := color.RGBA{}
	if level {
		c = g.on
	}
	for i := range g.buf {
		g.buf[i] = c
	}
	_ = g.dev.WriteColors(g.buf)
}

// ---- Serial ----

// serialPort adapts uartx to the non-blocking transport. Receives block in
// their own goroutine; the tick loop only ever sees the channel.
type serialPort struct {
	u  *uartx.UART
	in chan byte
}

func (s *serialPort) pump() {
	var buf [8]byte
	for {
		n, err := s.u.RecvSomeContext(context.Background(), buf[:])
		if err != nil {
			close(s.in)
			return
		}
		for _, b := range buf[:n] {
			s.in <- b
		}
	}
}

func (s *serialPort) TryReadByte() (byte, error) {
	select {
	case b, ok := <-s.in:
		if !ok {
			// Receiver died; report once, then read as idle.
			s.in = nil
			return 0, errcode.TransportError
		}
		return b, nil
	default:
		return 0, errcode.WouldBlock
	}
}

func (s *serialPort) WriteByte(c byte) error {
	_, err := s.u.Write([]byte{c})
	return err
}

func (s *serialPort) Flush() error { return nil }

func uart0Serial() controller.ByteTransport {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: baudRate,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	s := &serialPort{u: u, in: make(chan byte, 64)}
	go s.pump()
	return s
}

// ---- Wiring ----

// Echo wires the echo build: a WS2812 pixel shows the mode pattern in
// green.
func Echo() (controller.Config, error) {
	return controller.Config{
		Variant: controller.VariantEcho,
		Board:   boardName,
		Status: []controller.OutputPin{
			newWSGroup(statusWS2812, 1, color.RGBA{G: 0x40}),
		},
		Button:    userButton(),
		Transport: uart0Serial(),
	}, nil
}

// Control wires the control build's four external LED groups.
func Control() (controller.Config, error) {
	cfg := controller.Config{
		Variant:   controller.VariantControl,
		Board:     boardName,
		Button:    userButton(),
		Transport: uart0Serial(),
	}
	cfg.Channels[controller.ChanStatic] = outs(staticPins)
	cfg.Channels[controller.ChanBlink] = outs(blinkPins)
	cfg.Channels[controller.ChanStrobe] = outs(strobePins)
	cfg.Channels[controller.ChanControlled] = outs(controlledPins)
	return cfg, nil
}
