// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"ngocms/internal/kv"
	"ngocms/internal/models"
)

// Resources is the downloadable resources repository.
type Resources struct {
	*Collection[models.Resource, *models.Resource]
}

func newResources(b *base) *Resources {
	return &Resources{newCollection[models.Resource, *models.Resource](b, kv.KeyResources, "resource", ValidateResource)}
}

// ByType returns the resources of a given type (report, guide, ...).
func (r *Resources) ByType(ctx context.Context, typ string) []models.Resource {
	out := []models.Resource{}
	for _, res := range r.All(ctx) {
		if res.Type == typ {
			out = append(out, res)
		}
	}
	return out
}
