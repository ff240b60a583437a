// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"ngocms/internal/kv"
	"ngocms/internal/models"
)

// Global is the repository of cross-page strings, addressed by id or by
// (category, key).
type Global struct {
	*Collection[models.GlobalContent, *models.GlobalContent]
}

func newGlobal(b *base) *Global {
	return &Global{newCollection[models.GlobalContent, *models.GlobalContent](b, kv.KeyGlobalContent, "global", ValidateGlobal)}
}

// ByKey returns the entry with the given category and key.
func (g *Global) ByKey(ctx context.Context, category, key string) (models.GlobalContent, bool) {
	for _, item := range g.All(ctx) {
		if item.Category == category && item.Key == key {
			return item, true
		}
	}
	return models.GlobalContent{}, false
}

// ByCategory returns all entries of one category.
func (g *Global) ByCategory(ctx context.Context, category string) []models.GlobalContent {
	out := []models.GlobalContent{}
	for _, item := range g.All(ctx) {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Text returns the value of (category, key) in lang, or fallback.
func (g *Global) Text(ctx context.Context, category, key, lang, fallback string) string {
	item, ok := g.ByKey(ctx, category, key)
	if !ok {
		return fallback
	}
	if v := item.Text.In(lang); v != "" {
		return v
	}
	return fallback
}
