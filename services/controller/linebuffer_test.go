package controller

import (
	"bytes"
	"testing"
)

func TestLineBuffer_CapacityDrop(t *testing.T) {
	var lb LineBuffer
	for i := 0; i < BufferSize; i++ {
		if !lb.Append('x') {
			t.Fatalf("append %d rejected below capacity", i)
		}
	}
	// Byte 129 is dropped and the index does not advance.
	if lb.Append('y') {
		t.Fatal("append beyond capacity accepted")
	}
	if lb.Len() != BufferSize {
		t.Fatalf("Len = %d, want %d", lb.Len(), BufferSize)
	}

	tx := &fakeTransport{}
	lb.Flush(tx, NormalCase)
	if bytes.ContainsRune(tx.out.Bytes(), 'y') {
		t.Fatal("dropped byte appeared in flush output")
	}
	if got := bytes.Count(tx.out.Bytes(), []byte{'x'}); got != BufferSize {
		t.Fatalf("flush emitted %d payload bytes, want %d", got, BufferSize)
	}
}

func TestLineBuffer_FlushUsesCurrentMode(t *testing.T) {
	var lb LineBuffer
	lb.Append('a')
	lb.Append('B')

	tx := &fakeTransport{}
	// Mode at flush time wins, whatever was active at append time.
	lb.Flush(tx, ForceUpper)
	if got := tx.out.String(); got != "\rAB" {
		t.Fatalf("flush output %q, want %q", got, "\rAB")
	}
	if tx.flushes != 1 {
		t.Fatalf("transport flushes = %d, want 1", tx.flushes)
	}

	tx2 := &fakeTransport{}
	lb.Flush(tx2, InvertedCase)
	if got := tx2.out.String(); got != "\rAb" {
		t.Fatalf("flush output %q, want %q", got, "\rAb")
	}
}

func TestLineBuffer_Reset(t *testing.T) {
	var lb LineBuffer
	lb.Append('h')
	lb.Append('i')

	tx := &fakeTransport{}
	lb.Reset(tx)
	if lb.Len() != 0 {
		t.Fatalf("Len after reset = %d, want 0", lb.Len())
	}
	if got := tx.out.String(); got != "\r\n" {
		t.Fatalf("reset output %q, want CR+LF", got)
	}
}
