package controller

// caseOffset is the distance between upper- and lower-case ASCII letters.
const caseOffset = 0x20

// TextMode selects how echoed text is case-converted.
type TextMode uint8

const (
	NormalCase TextMode = iota
	ForceUpper
	ForceLower
	InvertedCase

	numTextModes
)

func (m TextMode) String() string {
	switch m {
	case ForceUpper:
		return "upper"
	case ForceLower:
		return "lower"
	case InvertedCase:
		return "inverted"
	default:
		return "normal"
	}
}

// Notice is the console line announcing a switch to this mode.
func (m TextMode) Notice() string {
	switch m {
	case ForceUpper:
		return "Force upper case."
	case ForceLower:
		return "Force lower case."
	case InvertedCase:
		return "Use inverted case."
	default:
		return "Use normal case."
	}
}

// Next advances through the mode ring. ring is the cycle length: 4 visits
// every mode, 3 skips InvertedCase. Out-of-range values fall back to 4.
func (m TextMode) Next(ring uint8) TextMode {
	if ring < 2 || ring > uint8(numTextModes) {
		ring = uint8(numTextModes)
	}
	return TextMode((uint8(m) + 1) % ring)
}

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

// ConvertCase applies the mode's transform to one byte. Only ASCII letters
// are touched; every other byte passes through unchanged.
func ConvertCase(c byte, m TextMode) byte {
	switch m {
	case ForceUpper:
		if isLower(c) {
			return c - caseOffset
		}
	case ForceLower:
		if isUpper(c) {
			return c + caseOffset
		}
	case InvertedCase:
		if isLower(c) {
			return c - caseOffset
		}
		if isUpper(c) {
			return c + caseOffset
		}
	}
	return c
}

// LEDPattern is the status LED behavior a text mode maps to in the echo
// variant.
type LEDPattern uint8

const (
	PatternOff LEDPattern = iota
	PatternOn
	PatternBlink
	PatternStrobe
)

// Pattern maps a text mode onto its status LED pattern.
func (m TextMode) Pattern() LEDPattern {
	switch m {
	case ForceUpper:
		return PatternOn
	case ForceLower:
		return PatternBlink
	case InvertedCase:
		return PatternStrobe
	default:
		return PatternOff
	}
}

// Level resolves a pattern against the current waveform signals.
func (p LEDPattern) Level(w *Waveform) bool {
	switch p {
	case PatternOn:
		return true
	case PatternBlink:
		return w.BlinkOn()
	case PatternStrobe:
		return w.StrobeOn()
	default:
		return false
	}
}
