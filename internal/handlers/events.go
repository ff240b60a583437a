// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ngocms/internal/events"
)

// heartbeatInterval keeps idle event streams open through proxies.
const heartbeatInterval = 25 * time.Second

// Events streams content change notifications to browsers so open views
// can refresh after an edit made elsewhere.
type Events struct {
	bus       *events.Bus
	heartbeat time.Duration
}

// NewEvents creates the event stream handler.
func NewEvents(bus *events.Bus) *Events {
	return &Events{bus: bus, heartbeat: heartbeatInterval}
}

// Stream serves GET /api/events as Server-Sent Events. ?keys=a,b limits
// storage events to those keys; content_updated is always sent.
func (e *Events) Stream(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)

	var filter events.Filter
	if keys := r.URL.Query().Get("keys"); keys != "" {
		filter = events.KeyFilter(strings.Split(keys, ",")...)
	}
	sub := e.bus.Subscribe(filter, 0)
	defer sub.Close()

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	// An initial comment lets the client know the stream is open.
	fmt.Fprint(w, ": connected\n\n")
	if err := rc.Flush(); err != nil {
		slog.Warn("event stream cannot flush", "error", err)
		return
	}

	ticker := time.NewTicker(e.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		case ev, ok := <-sub.C():
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				slog.Warn("event encode failed", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
