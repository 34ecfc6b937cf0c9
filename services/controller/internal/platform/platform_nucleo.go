//go:build nucleof103rb

package platform

import (
	"machine"

	"nucleoctl-go/errcode"
	"nucleoctl-go/services/controller"
)

const (
	boardName = "Nucleo-F103RB"
	baudRate  = 115200
)

// ---- GPIO ----

type gpioOut struct{ p machine.Pin }

func newOut(p machine.Pin) controller.OutputPin {
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return gpioOut{p}
}

func (o gpioOut) Set(level bool) { o.p.Set(level) }

func outs(pins ...machine.Pin) []controller.OutputPin {
	group := make([]controller.OutputPin, 0, len(pins))
	for _, p := range pins {
		group = append(group, newOut(p))
	}
	return group
}

type gpioButton struct {
	p      machine.Pin
	invert bool
}

func (b gpioButton) Pressed() bool {
	level := b.p.Get()
	if b.invert {
		return !level
	}
	return level
}

func userButton() controller.InputPin {
	machine.BUTTON.Configure(machine.PinConfig{Mode: machine.PinInput})
	// B1 pulls the line low when pressed.
	return gpioButton{p: machine.BUTTON, invert: true}
}

// ---- Serial ----

type serialPort struct{ u machine.Serialer }

func (s serialPort) TryReadByte() (byte, error) {
	if s.u.Buffered() == 0 {
		return 0, errcode.WouldBlock
	}
	b, err := s.u.ReadByte()
	if err != nil {
		return 0, errcode.TransportError
	}
	return b, nil
}

func (s serialPort) WriteByte(c byte) error { return s.u.WriteByte(c) }

// Flush is a no-op: UART writes drain in hardware.
func (s serialPort) Flush() error { return nil }

func stlinkSerial() controller.ByteTransport {
	u := machine.Serial
	_ = u.Configure(machine.UARTConfig{BaudRate: baudRate})
	return serialPort{u}
}

// ---- Wiring ----

// Echo wires the echo build: on-board LD2 as the status LED plus the
// ST-Link connected USART.
func Echo() (controller.Config, error) {
	return controller.Config{
		Variant:   controller.VariantEcho,
		Board:     boardName,
		Status:    []controller.OutputPin{newOut(machine.LED)},
		Button:    userButton(),
		Transport: stlinkSerial(),
	}, nil
}

// Control wires the control build's four external LED groups.
// External LEDs are wired pin >--|>|--[R]-- GND.
func Control() (controller.Config, error) {
	cfg := controller.Config{
		Variant:   controller.VariantControl,
		Board:     boardName,
		Button:    userButton(),
		Transport: stlinkSerial(),
	}
	cfg.Channels[controller.ChanStatic] = outs(machine.PA7, machine.PB6, machine.PC7)
	cfg.Channels[controller.ChanBlink] = outs(machine.PB10, machine.PA8)
	cfg.Channels[controller.ChanStrobe] = outs(machine.PA9, machine.PB5)
	cfg.Channels[controller.ChanControlled] = outs(machine.LED, machine.PA10)
	return cfg, nil
}
