// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Channel is the Valkey pub/sub channel shared by all instances.
const Channel = "ngocms:events"

// ValkeyBridge relays bus events between server instances, the way a
// browser storage event reaches other tabs. Events received from Valkey
// are delivered locally only, so they are never re-forwarded.
type ValkeyBridge struct {
	client *redis.Client
	bus    *Bus
	origin string
}

// NewValkeyBridge attaches a bridge to bus. Locally published events are
// forwarded from now on; call Run to start receiving.
func NewValkeyBridge(client *redis.Client, bus *Bus) *ValkeyBridge {
	vb := &ValkeyBridge{
		client: client,
		bus:    bus,
		origin: uuid.NewString(),
	}
	bus.OnPublish(vb.forward)
	return vb
}

// Origin returns the id this instance stamps on forwarded events.
func (vb *ValkeyBridge) Origin() string {
	return vb.origin
}

func (vb *ValkeyBridge) forward(e Event) {
	if e.Origin != "" {
		return
	}
	e.Origin = vb.origin
	payload, err := json.Marshal(e)
	if err != nil {
		slog.Warn("event bridge encode failed", "error", err)
		return
	}
	if err := vb.client.Publish(context.Background(), Channel, payload).Err(); err != nil {
		slog.Warn("event bridge publish failed", "type", e.Type, "key", e.Key, "error", err)
	}
}

// Run receives events from other instances until ctx is cancelled.
func (vb *ValkeyBridge) Run(ctx context.Context) error {
	ps := vb.client.Subscribe(ctx, Channel)
	defer ps.Close()

	if _, err := ps.Receive(ctx); err != nil {
		return err
	}
	slog.Info("event bridge subscribed", "channel", Channel, "origin", vb.origin)

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var e Event
			if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
				slog.Warn("event bridge decode failed", "error", err)
				continue
			}
			if e.Origin == vb.origin {
				continue
			}
			vb.bus.Deliver(e)
		}
	}
}
