// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package events is the change-notification layer. After a save, the
// writer publishes one content_updated event plus storage events keyed by
// the keys it wrote; views subscribe and re-read the store.
package events

import (
	"encoding/json"
	"log/slog"
	"sync"

	"ngocms/internal/kv"
)

// Type names an event kind.
type Type string

const (
	// ContentUpdated tells every subscriber to reload from storage. It
	// carries no payload.
	ContentUpdated Type = "content_updated"

	// Storage reports that one key changed and carries its new JSON value.
	Storage Type = "storage"
)

// defaultBuffer is the channel capacity of a subscription.
const defaultBuffer = 64

// Event is a single notification.
type Event struct {
	Type     Type   `json:"type"`
	Key      string `json:"key,omitempty"`
	NewValue string `json:"newValue,omitempty"`
	Origin   string `json:"origin,omitempty"`
}

// Publisher is what writers depend on.
type Publisher interface {
	Publish(e Event)
}

// Filter selects the events a subscriber receives. A nil filter matches all.
type Filter func(Event) bool

// Bus fans events out to in-process subscribers. Hooks see every event
// published locally and are used to forward events to other instances.
type Bus struct {
	mu     sync.RWMutex
	subs   map[uint64]*Subscription
	nextID uint64
	hooks  []func(Event)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[uint64]*Subscription)}
}

// Subscription is a live registration on a Bus.
type Subscription struct {
	id     uint64
	bus    *Bus
	filter Filter
	ch     chan Event
	once   sync.Once
}

// C returns the channel events are delivered on. It is closed by Close.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Close unregisters the subscription and closes its channel.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.subs, s.id)
		s.bus.mu.Unlock()
		close(s.ch)
	})
}

// Subscribe registers a new subscriber. buffer <= 0 uses the default.
func (b *Bus) Subscribe(filter Filter, buffer int) *Subscription {
	if buffer <= 0 {
		buffer = defaultBuffer
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	sub := &Subscription{
		id:     b.nextID,
		bus:    b,
		filter: filter,
		ch:     make(chan Event, buffer),
	}
	b.subs[sub.id] = sub
	return sub
}

// OnPublish registers a hook called for every locally published event.
func (b *Bus) OnPublish(hook func(Event)) {
	b.mu.Lock()
	b.hooks = append(b.hooks, hook)
	b.mu.Unlock()
}

// Publish delivers e to local subscribers and runs the publish hooks.
func (b *Bus) Publish(e Event) {
	b.Deliver(e)

	b.mu.RLock()
	hooks := b.hooks
	b.mu.RUnlock()
	for _, h := range hooks {
		h(e)
	}
}

// Deliver sends e to local subscribers only. A subscriber whose buffer is
// full misses the event.
func (b *Bus) Deliver(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if sub.filter != nil && !sub.filter(e) {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			slog.Warn("event dropped for slow subscriber", "type", e.Type, "key", e.Key)
		}
	}
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// KeyFilter matches storage events for any of keys, plus content_updated.
func KeyFilter(keys ...string) Filter {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return func(e Event) bool {
		if e.Type == ContentUpdated {
			return true
		}
		_, ok := set[e.Key]
		return ok
	}
}

// TypeFilter matches events of the given type.
func TypeFilter(t Type) Filter {
	return func(e Event) bool { return e.Type == t }
}

// NotifyKeys publishes one content_updated event followed by a storage
// event for each key, all carrying value encoded as JSON.
func NotifyKeys(p Publisher, value any, keys ...string) {
	if p == nil {
		return
	}
	newValue := ""
	if value != nil {
		raw, err := json.Marshal(value)
		if err != nil {
			slog.Warn("event payload encode failed", "keys", keys, "error", err)
		} else {
			newValue = string(raw)
		}
	}

	p.Publish(Event{Type: ContentUpdated})
	for _, k := range keys {
		p.Publish(Event{Type: Storage, Key: k, NewValue: newValue})
	}
}

// NotifySave announces a saved page. live and editor select which copies
// were written.
func NotifySave(p Publisher, pageID string, content any, live, editor bool) {
	var keys []string
	if live {
		keys = append(keys, kv.PageKey(pageID))
	}
	if editor {
		keys = append(keys, kv.EditorKey(pageID))
	}
	NotifyKeys(p, content, keys...)
}
