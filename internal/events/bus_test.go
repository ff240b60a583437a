// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package events

import (
	"testing"
	"time"

	"ngocms/internal/kv"
)

// drain collects whatever is buffered on sub without blocking.
func drain(sub *Subscription) []Event {
	var out []Event
	for {
		select {
		case e := <-sub.C():
			out = append(out, e)
		default:
			return out
		}
	}
}

func TestBus_PublishFanOut(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe(nil, 0)
	b := bus.Subscribe(nil, 0)
	defer a.Close()
	defer b.Close()

	bus.Publish(Event{Type: ContentUpdated})

	for name, sub := range map[string]*Subscription{"a": a, "b": b} {
		got := drain(sub)
		if len(got) != 1 || got[0].Type != ContentUpdated {
			t.Errorf("subscriber %s: got %+v, want one content_updated", name, got)
		}
	}
}

func TestBus_Filter(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe(KeyFilter("news"), 0)
	defer sub.Close()

	bus.Publish(Event{Type: Storage, Key: "resources"})
	bus.Publish(Event{Type: Storage, Key: "news", NewValue: "[]"})
	bus.Publish(Event{Type: ContentUpdated})

	got := drain(sub)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(got), got)
	}
	if got[0].Key != "news" || got[0].NewValue != "[]" {
		t.Errorf("first event: got %+v", got[0])
	}
	if got[1].Type != ContentUpdated {
		t.Errorf("second event: got %+v, want content_updated", got[1])
	}
}

func TestBus_TypeFilter(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe(TypeFilter(ContentUpdated), 0)
	defer sub.Close()

	NotifyKeys(bus, map[string]int{"n": 1}, "a", "b")

	if got := drain(sub); len(got) != 1 {
		t.Errorf("got %d events, want exactly one content_updated", len(got))
	}
}

func TestBus_CloseUnsubscribes(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe(nil, 0)
	if bus.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", bus.Len())
	}

	sub.Close()
	sub.Close()

	if bus.Len() != 0 {
		t.Errorf("Len after Close: got %d, want 0", bus.Len())
	}
	if _, ok := <-sub.C(); ok {
		t.Error("channel should be closed")
	}
	bus.Publish(Event{Type: ContentUpdated})
}

func TestBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe(nil, 1)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			bus.Publish(Event{Type: ContentUpdated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}
	if got := drain(sub); len(got) != 1 {
		t.Errorf("buffered events: got %d, want 1", len(got))
	}
}

func TestBus_HooksSeeLocalEventsOnly(t *testing.T) {
	bus := NewBus()
	var seen []Event
	bus.OnPublish(func(e Event) { seen = append(seen, e) })

	bus.Publish(Event{Type: ContentUpdated})
	bus.Deliver(Event{Type: ContentUpdated, Origin: "remote"})

	if len(seen) != 1 {
		t.Errorf("hook calls: got %d, want 1", len(seen))
	}
}

func TestNotifyKeys(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe(nil, 0)
	defer sub.Close()

	NotifyKeys(bus, []string{"x"}, "news")

	got := drain(sub)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Type != ContentUpdated || got[0].NewValue != "" {
		t.Errorf("content_updated must come first and carry no payload: %+v", got[0])
	}
	if got[1].Type != Storage || got[1].Key != "news" || got[1].NewValue != `["x"]` {
		t.Errorf("storage event: got %+v", got[1])
	}
}

func TestNotifyKeys_NilPublisher(t *testing.T) {
	NotifyKeys(nil, "value", "k")
}

func TestNotifySave(t *testing.T) {
	tests := []struct {
		name         string
		live, editor bool
		want         []string
	}{
		{"live", true, false, []string{kv.PageKey("home")}},
		{"editor", false, true, []string{kv.EditorKey("home")}},
		{"both", true, true, []string{kv.PageKey("home"), kv.EditorKey("home")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := NewBus()
			sub := bus.Subscribe(TypeFilter(Storage), 0)
			defer sub.Close()

			NotifySave(bus, "home", nil, tt.live, tt.editor)

			got := drain(sub)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d storage events, want %d", len(got), len(tt.want))
			}
			for i, k := range tt.want {
				if got[i].Key != k {
					t.Errorf("event %d key: got %q, want %q", i, got[i].Key, k)
				}
			}
		})
	}
}
