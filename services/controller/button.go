package controller

// EdgeDetector turns sampled button levels into just-pressed events. The
// tick rate itself is the debounce; there is no sub-tick filtering.
type EdgeDetector struct {
	prev bool
}

// Detect reports true exactly once per press: on the tick where the sampled
// level goes from not-pressed to pressed. Sustained press and release do not
// fire.
func (d *EdgeDetector) Detect(level bool) bool {
	edge := level && !d.prev
	d.prev = level
	return edge
}
