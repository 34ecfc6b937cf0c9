package main

import (
	"bufio"
	"io"

	"nucleoctl-go/errcode"
)

// sim adapts the terminal to the controller's transport and button
// capabilities. All capability methods run on the tick loop goroutine; only
// the reader goroutine touches the channel's send side.
type sim struct {
	src io.Reader
	in  chan byte
	out *bufio.Writer

	buttonKey byte
	holdTicks int
	hold      int
}

func newSim(src io.Reader, dst io.Writer, key byte, hold int) *sim {
	if hold <= 0 {
		hold = 2
	}
	return &sim{
		src:       src,
		in:        make(chan byte, 256),
		out:       bufio.NewWriter(dst),
		buttonKey: key,
		holdTicks: hold,
	}
}

// Start begins draining stdin. Reads block in their own goroutine; the tick
// loop only ever sees the non-blocking channel.
func (s *sim) Start() {
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := s.src.Read(buf)
			for _, b := range buf[:n] {
				s.in <- b
			}
			if err != nil {
				close(s.in)
				return
			}
		}
	}()
}

func (s *sim) TryReadByte() (byte, error) {
	for {
		select {
		case b, ok := <-s.in:
			if !ok {
				// EOF: read as idle forever rather than an error per tick.
				s.in = nil
				return 0, errcode.WouldBlock
			}
			if b == '\n' {
				b = '\r' // terminal newline stands in for CR
			}
			if b == s.buttonKey {
				s.hold = s.holdTicks
				continue
			}
			return b, nil
		default:
			return 0, errcode.WouldBlock
		}
	}
}

func (s *sim) WriteByte(c byte) error { return s.out.WriteByte(c) }
func (s *sim) Flush() error           { return s.out.Flush() }

// Pressed holds the simulated button down for a few ticks after the button
// key is seen, long enough for the edge detector to sample both levels.
func (s *sim) Pressed() bool {
	if s.hold > 0 {
		s.hold--
		return true
	}
	return false
}
