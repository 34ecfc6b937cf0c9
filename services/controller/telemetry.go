package controller

// Telemetry receives typed state-change callbacks from the tick loop.
// Callbacks run on the loop goroutine and must not block; implementations
// that fan out (e.g. onto a bus) should drop rather than wait.
type Telemetry interface {
	ModeChanged(m TextMode)
	ChannelChanged(ch Channel, enabled bool)
	InversionChanged(enabled bool)
	ButtonEdge()
}

type NopTelemetry struct{}

func (NopTelemetry) ModeChanged(TextMode)         {}
func (NopTelemetry) ChannelChanged(Channel, bool) {}
func (NopTelemetry) InversionChanged(bool)        {}
func (NopTelemetry) ButtonEdge()                  {}
