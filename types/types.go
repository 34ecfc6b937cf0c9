package types

// Telemetry payloads published on ctl/... topics (see bus). Fixed-width
// fields to suit TinyGo.

// ModeEvent is published when the text conversion mode changes.
type ModeEvent struct {
	Mode string `json:"mode"` // "normal", "upper", "lower", "inverted"
	TS   int64  `json:"ts_ms"`
}

// ChannelEvent is published when an LED channel is enabled or disabled.
type ChannelEvent struct {
	Channel string `json:"channel"` // "static", "blink", "strobe", "controlled"
	Enabled bool   `json:"enabled"`
	TS      int64  `json:"ts_ms"`
}

// InversionEvent is published when controlled-channel inversion is toggled.
type InversionEvent struct {
	Enabled bool  `json:"enabled"`
	TS      int64 `json:"ts_ms"`
}

// ButtonEvent is published on a just-pressed edge.
type ButtonEvent struct {
	Pressed bool  `json:"pressed"`
	TS      int64 `json:"ts_ms"`
}

// LEDValue is the retained level of one output pin.
type LEDValue struct {
	Level uint8 `json:"level"` // 0 or 1
}

// NotificationEvent mirrors a console line sent to the serial peer.
type NotificationEvent struct {
	Text string `json:"text"`
	TS   int64  `json:"ts_ms"`
}

// UptimeEvent is the retained periodic summary from the heartbeat.
type UptimeEvent struct {
	UptimeS     int64 `json:"uptime_s"`
	ButtonEdges int   `json:"button_edges"`
	TS          int64 `json:"ts_ms"`
}
