// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// recent.go keeps a short log of admin edits under the recentEdits key
// for the dashboard. Each entry captures what changed, when, and how
// (create/update/delete/publish/reset).

package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ngocms/internal/kv"
	"ngocms/internal/models"
)

// maxRecentEdits bounds the log; older entries are dropped.
const maxRecentEdits = 50

// RecentEdits handles the edit log.
type RecentEdits struct {
	mu  sync.Mutex
	kv  kv.Store
	now func() time.Time
}

// NewRecentEdits creates a RecentEdits log over s.
func NewRecentEdits(s kv.Store, now func() time.Time) *RecentEdits {
	if now == nil {
		now = time.Now
	}
	return &RecentEdits{kv: s, now: now}
}

// Log records an edit, newest first.
func (r *RecentEdits) Log(ctx context.Context, kind, id, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := kv.GetItemOr(ctx, r.kv, kv.KeyRecentEdits, []models.RecentEdit{})
	entry := models.RecentEdit{Kind: kind, ID: id, Action: action, At: r.now()}
	entries = append([]models.RecentEdit{entry}, entries...)
	if len(entries) > maxRecentEdits {
		entries = entries[:maxRecentEdits]
	}

	// Best-effort: a failed log write must not fail the edit itself.
	if !kv.SetItem(ctx, r.kv, kv.KeyRecentEdits, entries) {
		slog.Warn("failed to log recent edit", "kind", kind, "id", id, "action", action)
		return
	}
	slog.Debug("recent edit logged", "kind", kind, "id", id, "action", action)
}

// Recent returns up to limit entries, newest first.
func (r *RecentEdits) Recent(ctx context.Context, limit int) []models.RecentEdit {
	entries := kv.GetItemOr(ctx, r.kv, kv.KeyRecentEdits, []models.RecentEdit{})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
