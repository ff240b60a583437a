// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ngocms/internal/kv"
	"ngocms/internal/models"
)

// record is satisfied by pointers to the models stored in collections.
type record[T any] interface {
	*T
	GetID() string
	SetID(id string)
	Touch(now time.Time)
}

// Collection is a list of records persisted under a single key. Record
// order is insertion order.
type Collection[T any, P record[T]] struct {
	*base
	key      string
	kind     string
	validate func(*T) error
}

func newCollection[T any, P record[T]](b *base, key, kind string, validate func(*T) error) *Collection[T, P] {
	return &Collection[T, P]{base: b, key: key, kind: kind, validate: validate}
}

// Key returns the storage key of the collection.
func (c *Collection[T, P]) Key() string {
	return c.key
}

// All returns every record, or an empty slice if the key is absent.
func (c *Collection[T, P]) All(ctx context.Context) []T {
	items, ok := kv.GetItem[[]T](ctx, c.kv, c.key)
	if !ok || items == nil {
		return []T{}
	}
	return items
}

// ByID returns the record with the given id.
func (c *Collection[T, P]) ByID(ctx context.Context, id string) (T, bool) {
	for _, item := range c.All(ctx) {
		if P(&item).GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Save creates or updates item. An empty id is replaced by a fresh one.
// An existing record with the same id is overwritten in place; otherwise
// the item is appended. The whole collection is written back.
func (c *Collection[T, P]) Save(ctx context.Context, item T) (T, error) {
	p := P(&item)
	if p.GetID() == "" {
		p.SetID(NewID())
	}
	if c.validate != nil {
		if err := c.validate(&item); err != nil {
			return item, err
		}
	}
	p.Touch(c.now())

	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.All(ctx)
	action := models.EditCreate
	for i := range items {
		if P(&items[i]).GetID() == p.GetID() {
			items[i] = item
			action = models.EditUpdate
			break
		}
	}
	if action == models.EditCreate {
		items = append(items, item)
	}

	if !kv.SetItem(ctx, c.kv, c.key, items) {
		return item, fmt.Errorf("save %s %s: %w", c.kind, p.GetID(), ErrNotSaved)
	}

	slog.Debug("record saved", "kind", c.kind, "id", p.GetID(), "action", action)
	c.record(ctx, c.kind, p.GetID(), action, items, c.key)
	return item, nil
}

// Delete removes the record with the given id. It reports false, and
// writes nothing, when no such record exists.
func (c *Collection[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.All(ctx)
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if P(&item).GetID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}

	if !kv.SetItem(ctx, c.kv, c.key, kept) {
		return false, fmt.Errorf("delete %s %s: %w", c.kind, id, ErrNotSaved)
	}

	slog.Debug("record deleted", "kind", c.kind, "id", id)
	c.record(ctx, c.kind, id, models.EditDelete, kept, c.key)
	return true, nil
}

// Replace overwrites the whole collection, validating every item and
// rejecting duplicate ids.
func (c *Collection[T, P]) Replace(ctx context.Context, items []T) error {
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		p := P(&items[i])
		if p.GetID() == "" {
			p.SetID(NewID())
		}
		if _, dup := seen[p.GetID()]; dup {
			return fmt.Errorf("%w: duplicate %s id %q", ErrInvalid, c.kind, p.GetID())
		}
		seen[p.GetID()] = struct{}{}
		if c.validate != nil {
			if err := c.validate(&items[i]); err != nil {
				return err
			}
		}
		p.Touch(c.now())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !kv.SetItem(ctx, c.kv, c.key, items) {
		return fmt.Errorf("replace %s: %w", c.kind, ErrNotSaved)
	}
	c.record(ctx, c.kind, "*", models.EditUpdate, items, c.key)
	return nil
}
