package main

import (
	"context"
	"time"

	"nucleoctl-go/bus"
	"nucleoctl-go/types"
	"nucleoctl-go/x/timex"
)

var (
	topicUptime = bus.T("ctl", "uptime")
	topicButton = bus.T("ctl", "button")
)

// heartbeat publishes a retained uptime summary so a late bus subscriber can
// tell how long the sim has been running and how often the button fired.
type heartbeat struct {
	interval time.Duration
}

func (h *heartbeat) loop(ctx context.Context, conn *bus.Connection) {
	btnSub := conn.Subscribe(topicButton)
	defer conn.Unsubscribe(btnSub)

	start := time.Now()
	edges := 0

	tick := time.NewTicker(h.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			conn.Publish(conn.NewMessage(topicUptime, types.UptimeEvent{
				UptimeS:     int64(time.Since(start) / time.Second),
				ButtonEdges: edges,
				TS:          timex.NowMs(),
			}, true))
		case <-btnSub.Channel():
			edges++
		}
	}
}

func (h *heartbeat) Start(ctx context.Context, conn *bus.Connection) {
	go h.loop(ctx, conn)
}
