// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"sort"

	"ngocms/internal/kv"
	"ngocms/internal/models"
	"ngocms/internal/slug"
)

// News is the news article repository.
type News struct {
	*Collection[models.NewsItem, *models.NewsItem]
}

func newNews(b *base) *News {
	return &News{newCollection[models.NewsItem, *models.NewsItem](b, kv.KeyNews, "news", ValidateNews)}
}

// Save fills in missing slugs from the titles before saving.
func (n *News) Save(ctx context.Context, item models.NewsItem) (models.NewsItem, error) {
	if item.ID == "" {
		item.ID = NewID()
	}
	if item.Slug.FR == "" {
		item.Slug.FR = slug.Or(item.Title.FR, item.ID)
	}
	if item.Slug.AR == "" {
		item.Slug.AR = slug.Or(item.Title.AR, item.ID)
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return n.Collection.Save(ctx, item)
}

// BySlug finds a news item by its slug in either language.
func (n *News) BySlug(ctx context.Context, s string) (models.NewsItem, bool) {
	for _, item := range n.All(ctx) {
		if item.Slug.FR == s || item.Slug.AR == s {
			return item, true
		}
	}
	return models.NewsItem{}, false
}

// Latest returns up to limit items, newest date first. limit <= 0 returns
// all of them.
func (n *News) Latest(ctx context.Context, limit int) []models.NewsItem {
	items := n.All(ctx)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// ByCategory returns the items whose French or Arabic category matches.
func (n *News) ByCategory(ctx context.Context, category string) []models.NewsItem {
	out := []models.NewsItem{}
	for _, item := range n.All(ctx) {
		if item.Category.FR == category || item.Category.AR == category {
			out = append(out, item)
		}
	}
	return out
}
