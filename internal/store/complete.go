// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"log/slog"
	"sort"

	"ngocms/internal/models"
)

// PageDefaults is the canonical shape of a known page: its default title
// and the sections it is expected to have, in display order.
type PageDefaults struct {
	Title    models.Text
	Sections []models.Section
}

// Completer makes sure stored pages carry every canonical section. It only
// appends: existing sections keep their edited text and position.
type Completer struct {
	pages     *Pages
	canonical map[string]PageDefaults
}

// NewCompleter returns a Completer for the given canonical registry.
func NewCompleter(pages *Pages, canonical map[string]PageDefaults) *Completer {
	return &Completer{pages: pages, canonical: canonical}
}

// appendMissing adds the canonical sections p lacks and returns how many
// were added.
func appendMissing(p *models.Page, def PageDefaults) int {
	added := 0
	for _, sec := range def.Sections {
		if p.HasSection(sec.ID) {
			continue
		}
		p.Sections = append(p.Sections, sec.Clone())
		added++
	}
	if p.Title.IsZero() && !def.Title.IsZero() {
		p.Title = def.Title
		added++
	}
	return added
}

// EnsureSections completes the live copy of pageID, and its draft when
// one exists. Pages without canonical defaults are returned unchanged.
// Nothing is written when nothing is missing, so repeated calls are cheap
// and leave the store as it is.
func (c *Completer) EnsureSections(ctx context.Context, pageID string) (models.Page, error) {
	def, known := c.canonical[pageID]

	c.pages.mu.Lock()
	defer c.pages.mu.Unlock()
	live, ok := c.pages.Live(ctx, pageID)
	if !ok {
		live = models.Page{ID: pageID, Sections: []models.Section{}}
	}
	if !known {
		return live, nil
	}

	if n := appendMissing(&live, def); n > 0 {
		saved, err := c.pages.saveLive(ctx, live)
		if err != nil {
			return live, err
		}
		live = saved
		slog.Info("page completed with default sections", "id", pageID, "added", n)
	}

	if draft, ok := c.pages.Draft(ctx, pageID); ok {
		if n := appendMissing(&draft, def); n > 0 {
			if _, err := c.pages.saveDraft(ctx, draft); err != nil {
				return live, err
			}
			slog.Info("page draft completed with default sections", "id", pageID, "added", n)
		}
	}
	return live, nil
}

// EnsureAll completes every canonical page.
func (c *Completer) EnsureAll(ctx context.Context) error {
	ids := make([]string, 0, len(c.canonical))
	for id := range c.canonical {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, err := c.EnsureSections(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// SortSections reorders p's sections so the ids listed in order come
// first, in that order. Other sections follow in their current relative
// order.
func SortSections(p *models.Page, order []string) {
	rank := make(map[string]int, len(order))
	for i, id := range order {
		rank[id] = i
	}
	sort.SliceStable(p.Sections, func(i, j int) bool {
		ri, okI := rank[p.Sections[i].ID]
		rj, okJ := rank[p.Sections[j].ID]
		switch {
		case okI && okJ:
			return ri < rj
		case okI:
			return true
		default:
			return false
		}
	})
}

// SortLive applies SortSections to the live copy of pageID and saves it
// when the order changed.
func (c *Completer) SortLive(ctx context.Context, pageID string, order []string) (models.Page, error) {
	c.pages.mu.Lock()
	defer c.pages.mu.Unlock()
	p, ok := c.pages.Live(ctx, pageID)
	if !ok {
		return p, nil
	}
	before := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		before[i] = s.ID
	}
	SortSections(&p, order)
	for i, s := range p.Sections {
		if before[i] != s.ID {
			return c.pages.saveLive(ctx, p)
		}
	}
	return p, nil
}
