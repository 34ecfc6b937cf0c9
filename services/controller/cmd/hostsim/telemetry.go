package main

import (
	"fmt"
	"os"
	"strconv"

	"nucleoctl-go/bus"
	"nucleoctl-go/services/controller"
	"nucleoctl-go/types"
	"nucleoctl-go/x/timex"
)

// Bus topics: ctl/mode, ctl/channel/<name>, ctl/inversion, ctl/button,
// ctl/notify, ctl/uptime and ctl/led/<group>/<n>. State-shaped topics are
// retained so a late subscriber sees the current values.

type busTelemetry struct{ conn *bus.Connection }

func (t busTelemetry) ModeChanged(m controller.TextMode) {
	t.conn.Publish(t.conn.NewMessage(bus.T("ctl", "mode"),
		types.ModeEvent{Mode: m.String(), TS: timex.NowMs()}, true))
}

func (t busTelemetry) ChannelChanged(ch controller.Channel, enabled bool) {
	t.conn.Publish(t.conn.NewMessage(bus.T("ctl", "channel", ch.String()),
		types.ChannelEvent{Channel: ch.String(), Enabled: enabled, TS: timex.NowMs()}, true))
}

func (t busTelemetry) InversionChanged(enabled bool) {
	t.conn.Publish(t.conn.NewMessage(bus.T("ctl", "inversion"),
		types.InversionEvent{Enabled: enabled, TS: timex.NowMs()}, true))
}

func (t busTelemetry) ButtonEdge() {
	t.conn.Publish(t.conn.NewMessage(bus.T("ctl", "button"),
		types.ButtonEvent{Pressed: true, TS: timex.NowMs()}, false))
}

var _ controller.Telemetry = busTelemetry{}

type busDiag struct{ conn *bus.Connection }

func (d busDiag) Line(s string) {
	d.conn.Publish(d.conn.NewMessage(bus.T("ctl", "notify"),
		types.NotificationEvent{Text: s, TS: timex.NowMs()}, false))
}

var _ controller.Diag = busDiag{}

// busPin mirrors one output pin level onto a retained bus topic. Levels are
// published on change only, so blink and strobe stay readable.
type busPin struct {
	conn  *bus.Connection
	topic bus.Topic
	known bool
	last  bool
}

func newBusPin(conn *bus.Connection, group string, n int) *busPin {
	return &busPin{conn: conn, topic: bus.T("ctl", "led", group, strconv.Itoa(n))}
}

func (p *busPin) Set(level bool) {
	if p.known && level == p.last {
		return
	}
	p.known = true
	p.last = level
	var v uint8
	if level {
		v = 1
	}
	p.conn.Publish(p.conn.NewMessage(p.topic, types.LEDValue{Level: v}, true))
}

var _ controller.OutputPin = (*busPin)(nil)

// printEvents mirrors bus traffic to stderr, skipping the per-pin LED
// levels (the strobe group flips every tick).
func printEvents(conn *bus.Connection) {
	sub := conn.Subscribe(bus.T("ctl", "#"))
	for msg := range sub.Channel() {
		switch ev := msg.Payload.(type) {
		case types.ModeEvent:
			fmt.Fprintf(os.Stderr, "[mode] %s\n", ev.Mode)
		case types.ChannelEvent:
			fmt.Fprintf(os.Stderr, "[channel] %s enabled=%v\n", ev.Channel, ev.Enabled)
		case types.InversionEvent:
			fmt.Fprintf(os.Stderr, "[inversion] enabled=%v\n", ev.Enabled)
		case types.ButtonEvent:
			fmt.Fprintln(os.Stderr, "[button] edge")
		case types.NotificationEvent:
			fmt.Fprintf(os.Stderr, "[notify] %s\n", ev.Text)
		case types.UptimeEvent:
			fmt.Fprintf(os.Stderr, "[uptime] %ds, %d button edges\n", ev.UptimeS, ev.ButtonEdges)
		}
	}
}
