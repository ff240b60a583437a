// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides the typed content repositories layered on a
// kv.Store. Every collection is persisted as one JSON array under a fixed
// key and rewritten whole on each change. Writes publish change events so
// open views can refresh.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"ngocms/internal/events"
	"ngocms/internal/kv"
)

var (
	// ErrInvalid wraps validation failures. Nothing is written.
	ErrInvalid = errors.New("invalid content")

	// ErrNotSaved reports that the underlying store rejected a write
	// (backend error or quota). The previous state is left untouched.
	ErrNotSaved = errors.New("content not saved")

	// ErrVersionConflict is returned by conditional saves when the stored
	// version no longer matches the one the editor started from.
	ErrVersionConflict = errors.New("version conflict")
)

// base holds the dependencies shared by every repository. mu is held
// across every read-modify-write of a stored document, so concurrent
// requests in one process never overwrite each other's changes.
type base struct {
	mu     sync.Mutex
	kv     kv.Store
	pub    events.Publisher
	recent *RecentEdits
	now    func() time.Time
}

// record logs an edit and announces the written keys.
func (b *base) record(ctx context.Context, kind, id, action string, value any, keys ...string) {
	if b.recent != nil {
		b.recent.Log(ctx, kind, id, action)
	}
	events.NotifyKeys(b.pub, value, keys...)
}

// Content bundles all repositories over one store.
type Content struct {
	KV        kv.Store
	Pages     *Pages
	News      *News
	Resources *Resources
	Media     *Media
	Global    *Global
	Structure *Structure
	Recent    *RecentEdits

	base *base
}

// Exclusive runs fn while no repository write can interleave with it.
// fn must not call back into the repositories' write methods.
func (c *Content) Exclusive(fn func() error) error {
	c.base.mu.Lock()
	defer c.base.mu.Unlock()
	return fn()
}

// New builds the repositories. pub may be nil when no one listens.
func New(s kv.Store, pub events.Publisher) *Content {
	return newContent(s, pub, time.Now)
}

func newContent(s kv.Store, pub events.Publisher, now func() time.Time) *Content {
	recent := NewRecentEdits(s, now)
	b := &base{kv: s, pub: pub, recent: recent, now: now}
	return &Content{
		KV:        s,
		Pages:     newPages(b),
		News:      newNews(b),
		Resources: newResources(b),
		Media:     newMedia(b),
		Global:    newGlobal(b),
		Structure: newStructure(b),
		Recent:    recent,
		base:      b,
	}
}

// NewID returns a fresh record id.
func NewID() string {
	return uuid.NewString()
}
