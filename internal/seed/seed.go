// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seed populates the content store with the default bilingual
// site content, on first run or when an administrator resets the site.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ngocms/internal/events"
	"ngocms/internal/kv"
	"ngocms/internal/models"
	"ngocms/internal/store"
)

// preservedKeys survive a reset.
var preservedKeys = map[string]struct{}{
	kv.KeyAdminAuth: {},
	kv.KeyLanguage:  {},
}

// Initialized reports whether the store has been seeded.
func Initialized(ctx context.Context, s kv.Store) bool {
	done, _ := kv.GetItem[bool](ctx, s, kv.KeyDBInitialized)
	return done
}

// Initialize seeds the store if it has never been seeded. It reports
// whether anything was written.
func Initialize(ctx context.Context, c *store.Content) (bool, error) {
	seeded := false
	err := c.Exclusive(func() error {
		if Initialized(ctx, c.KV) {
			return nil
		}
		if err := populate(ctx, c.KV, time.Now()); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if !seeded {
		slog.Info("content store already seeded, skipping")
		return false, nil
	}
	slog.Info("content store seeded with defaults")
	return true, nil
}

// Reset wipes every key except the admin session marker and the language
// preference, then writes the defaults again. Listeners get a single
// content_updated event.
func Reset(ctx context.Context, c *store.Content, pub events.Publisher) error {
	removed := 0
	err := c.Exclusive(func() error {
		keys, err := c.KV.Keys(ctx)
		if err != nil {
			return fmt.Errorf("reset list keys: %w", err)
		}
		for _, k := range keys {
			if _, keep := preservedKeys[k]; keep {
				continue
			}
			if err := c.KV.Delete(ctx, k); err != nil {
				return fmt.Errorf("reset delete %s: %w", k, err)
			}
			removed++
		}
		return populate(ctx, c.KV, time.Now())
	})
	if err != nil {
		return err
	}

	c.Recent.Log(ctx, "site", "*", models.EditReset)
	events.NotifyKeys(pub, nil)
	slog.Info("content store reset to defaults", "removed", removed)
	return nil
}

// populate writes every default collection and marks the store seeded.
// dbInitialized is written last so a failed seed is retried next start.
func populate(ctx context.Context, s kv.Store, now time.Time) error {
	pages := DefaultPages()
	index := make([]models.Page, 0, len(pages))
	for i := range pages {
		pages[i].Renumber()
		pages[i].Version = 1
		pages[i].UpdatedAt = now
		if err := set(ctx, s, kv.PageKey(pages[i].ID), pages[i]); err != nil {
			return err
		}
		index = append(index, models.Page{ID: pages[i].ID, Title: pages[i].Title, Version: 1, UpdatedAt: now})
	}
	if err := set(ctx, s, kv.KeyPages, index); err != nil {
		return err
	}

	news := DefaultNews()
	for i := range news {
		news[i].UpdatedAt = now
	}
	resources := DefaultResources()
	for i := range resources {
		resources[i].UpdatedAt = now
	}
	global := DefaultGlobalContent()
	for i := range global {
		global[i].UpdatedAt = now
	}

	if err := set(ctx, s, kv.KeyNews, news); err != nil {
		return err
	}
	if err := set(ctx, s, kv.KeyResources, resources); err != nil {
		return err
	}
	if err := set(ctx, s, kv.KeyMediaLibrary, []models.MediaItem{}); err != nil {
		return err
	}
	if err := set(ctx, s, kv.KeyGlobalContent, global); err != nil {
		return err
	}
	if err := set(ctx, s, kv.KeyWebsiteStructure, DefaultStructure()); err != nil {
		return err
	}
	return set(ctx, s, kv.KeyDBInitialized, true)
}

func set[T any](ctx context.Context, s kv.Store, key string, v T) error {
	if !kv.SetItem(ctx, s, key, v) {
		return fmt.Errorf("seed %s: %w", key, store.ErrNotSaved)
	}
	return nil
}
