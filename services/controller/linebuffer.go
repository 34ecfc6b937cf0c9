package controller

// BufferSize is the fixed line accumulator capacity.
const BufferSize = 128

// LineBuffer accumulates one line of received bytes until a carriage return
// flushes it back to the peer.
type LineBuffer struct {
	buf [BufferSize]byte
	n   int
}

// Append stores one byte. It reports false, dropping the byte, once the
// buffer is full. The peer is not told about drops.
func (b *LineBuffer) Append(c byte) bool {
	if b.n >= BufferSize {
		return false
	}
	b.buf[b.n] = c
	b.n++
	return true
}

func (b *LineBuffer) Len() int { return b.n }

// Flush re-emits the buffered line: a leading CR, then every byte converted
// with the mode active now (not the mode at append time), then a transport
// flush. The buffer itself is untouched.
func (b *LineBuffer) Flush(tx ByteTransport, mode TextMode) {
	_ = tx.WriteByte('\r')
	for _, c := range b.buf[:b.n] {
		_ = tx.WriteByte(ConvertCase(c, mode))
	}
	_ = tx.Flush()
}

// Reset clears the buffer and emits CR+LF as a visual separator.
func (b *LineBuffer) Reset(tx ByteTransport) {
	b.n = 0
	_ = tx.WriteByte('\r')
	_ = tx.WriteByte('\n')
}
