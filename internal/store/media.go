// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"ngocms/internal/kv"
	"ngocms/internal/models"
)

// Media is the media library repository. It only tracks metadata; the
// files themselves live in object storage or at external URLs.
type Media struct {
	*Collection[models.MediaItem, *models.MediaItem]
}

func newMedia(b *base) *Media {
	return &Media{newCollection[models.MediaItem, *models.MediaItem](b, kv.KeyMediaLibrary, "media", ValidateMedia)}
}

// ByTag returns the items carrying tag.
func (m *Media) ByTag(ctx context.Context, tag string) []models.MediaItem {
	out := []models.MediaItem{}
	for _, item := range m.All(ctx) {
		for _, t := range item.Tags {
			if t == tag {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Images returns only image items.
func (m *Media) Images(ctx context.Context) []models.MediaItem {
	out := []models.MediaItem{}
	for _, item := range m.All(ctx) {
		if item.Type == models.MediaImage {
			out = append(out, item)
		}
	}
	return out
}
