// bus/bus_test.go
package bus

import (
	"testing"
	"time"
)

func recv(t *testing.T, sub *Subscription, d time.Duration) *Message {
	t.Helper()
	select {
	case m := <-sub.Channel():
		return m
	case <-time.After(d):
		t.Fatal("timeout waiting for message")
		return nil
	}
}

func expectNone(t *testing.T, sub *Subscription, d time.Duration) {
	t.Helper()
	select {
	case m := <-sub.Channel():
		t.Fatalf("unexpected message on %v: %+v", sub.Topic(), m)
	case <-time.After(d):
	}
}

func TestBasicPubSub(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("ctl", "mode"))
	conn.Publish(conn.NewMessage(T("ctl", "mode"), "upper", false))

	got := recv(t, sub, 100*time.Millisecond)
	if got.Payload.(string) != "upper" {
		t.Errorf("expected payload 'upper', got %v", got.Payload)
	}
}

func TestNoDeliveryOnMismatch(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("ctl", "mode"))
	conn.Publish(conn.NewMessage(T("ctl", "button"), true, false))
	expectNone(t, sub, 20*time.Millisecond)
}

func TestRetainedMessage(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	conn.Publish(conn.NewMessage(T("ctl", "channel", "static"), "enabled", true))

	sub := conn.Subscribe(T("ctl", "channel", "static"))
	got := recv(t, sub, 100*time.Millisecond)
	if got.Payload.(string) != "enabled" {
		t.Errorf("expected retained payload 'enabled', got %v", got.Payload)
	}
}

func TestRetainedClear(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	conn.Publish(conn.NewMessage(T("ctl", "mode"), "lower", true))
	conn.Publish(conn.NewMessage(T("ctl", "mode"), nil, true))

	sub := conn.Subscribe(T("ctl", "mode"))
	expectNone(t, sub, 20*time.Millisecond)
}

// -----------------------------------------------------------------------------
// Wildcards
// -----------------------------------------------------------------------------

func TestWildcard_SingleLevel(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	sub := c.Subscribe(T("ctl", "channel", "+"))
	c.Publish(c.NewMessage(T("ctl", "channel", "blink"), false, false))
	c.Publish(c.NewMessage(T("ctl", "mode"), "normal", false))

	got := recv(t, sub, 100*time.Millisecond)
	if got.Topic[2] != "blink" {
		t.Errorf("expected topic ctl/channel/blink, got %v", got.Topic)
	}
	expectNone(t, sub, 20*time.Millisecond)
}

func TestWildcard_MultiLevel(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	sCtl := c.Subscribe(T("ctl", "#"))
	sAll := c.Subscribe(T("#"))
	sChan := c.Subscribe(T("ctl", "channel", "#"))

	c.Publish(c.NewMessage(T("ctl", "channel", "strobe"), true, false))

	recv(t, sCtl, 100*time.Millisecond)
	recv(t, sAll, 100*time.Millisecond)
	recv(t, sChan, 100*time.Millisecond)

	c.Publish(c.NewMessage(T("ctl", "button"), true, false))
	recv(t, sCtl, 100*time.Millisecond)
	recv(t, sAll, 100*time.Millisecond)
	expectNone(t, sChan, 20*time.Millisecond)
}

func TestWildcard_RetainedDelivery(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	c.Publish(c.NewMessage(T("ctl", "channel", "static"), "enabled", true))
	c.Publish(c.NewMessage(T("ctl", "channel", "strobe"), "disabled", true))

	sub := c.Subscribe(T("ctl", "channel", "#"))
	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		m := recv(t, sub, 100*time.Millisecond)
		seen[m.Payload.(string)] = true
	}
	if !seen["enabled"] || !seen["disabled"] {
		t.Errorf("expected both retained payloads, got %v", seen)
	}
}

func TestQueueOverflow_DropsOldest(t *testing.T) {
	b := NewBus(2)
	c := b.NewConnection("test")

	sub := c.Subscribe(T("ctl", "notify"))
	for i := 0; i < 5; i++ {
		c.Publish(c.NewMessage(T("ctl", "notify"), i, false))
	}

	got := recv(t, sub, 100*time.Millisecond)
	if got.Payload.(int) != 3 {
		t.Errorf("expected oldest surviving payload 3, got %v", got.Payload)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")

	sub := c.Subscribe(T("ctl", "mode"))
	sub.Unsubscribe()
	c.Publish(c.NewMessage(T("ctl", "mode"), "upper", false))

	if _, ok := <-sub.Channel(); ok {
		t.Fatal("expected closed channel after unsubscribe")
	}
}

func TestDisconnectClosesAll(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")

	s1 := c.Subscribe(T("ctl", "mode"))
	s2 := c.Subscribe(T("ctl", "button"))
	c.Disconnect()

	if _, ok := <-s1.Channel(); ok {
		t.Fatal("expected s1 closed")
	}
	if _, ok := <-s2.Channel(); ok {
		t.Fatal("expected s2 closed")
	}
}
