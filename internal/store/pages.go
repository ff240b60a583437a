// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"log/slog"

	"ngocms/internal/events"
	"ngocms/internal/kv"
	"ngocms/internal/models"
)

const kindPage = "page"

// Pages manages page content. Each page has a live copy under page_<id>
// shown to visitors and an optional editor draft under editor_<id> that
// survives reloads of the admin editor. The pages key holds an index of
// every live page without its sections.
type Pages struct {
	*base
}

func newPages(b *base) *Pages {
	return &Pages{base: b}
}

// All returns the page index.
func (s *Pages) All(ctx context.Context) []models.Page {
	pages, ok := kv.GetItem[[]models.Page](ctx, s.kv, kv.KeyPages)
	if !ok || pages == nil {
		return []models.Page{}
	}
	return pages
}

// ByID returns the live copy of a page.
func (s *Pages) ByID(ctx context.Context, id string) (models.Page, bool) {
	return s.Live(ctx, id)
}

// Live returns the published copy of a page.
func (s *Pages) Live(ctx context.Context, id string) (models.Page, bool) {
	return s.read(ctx, kv.PageKey(id))
}

// Draft returns the editor draft of a page, if one exists and has content.
func (s *Pages) Draft(ctx context.Context, id string) (models.Page, bool) {
	p, ok := s.read(ctx, kv.EditorKey(id))
	if !ok || p.IsEmpty() {
		return models.Page{}, false
	}
	return p, true
}

func (s *Pages) read(ctx context.Context, key string) (models.Page, bool) {
	p, ok := kv.GetItem[models.Page](ctx, s.kv, key)
	if !ok {
		return models.Page{}, false
	}
	if p.Sections == nil {
		p.Sections = []models.Section{}
	}
	return p, true
}

// GetExact returns the content the admin editor should show: the draft
// when one exists, else the live copy, else an empty page. It never fails.
func (s *Pages) GetExact(ctx context.Context, id string) models.Page {
	if p, ok := s.Draft(ctx, id); ok {
		return p
	}
	if p, ok := s.Live(ctx, id); ok {
		return p
	}
	return models.Page{
		ID:       id,
		Title:    models.Text{},
		Sections: []models.Section{},
	}
}

// HasDraft reports whether a non-empty draft exists for the page.
func (s *Pages) HasDraft(ctx context.Context, id string) bool {
	_, ok := s.Draft(ctx, id)
	return ok
}

// nextVersion returns one more than the highest stored version of a page.
func (s *Pages) nextVersion(ctx context.Context, id string) int64 {
	var v int64
	if p, ok := s.read(ctx, kv.EditorKey(id)); ok && p.Version > v {
		v = p.Version
	}
	if p, ok := s.Live(ctx, id); ok && p.Version > v {
		v = p.Version
	}
	return v + 1
}

func (s *Pages) prepare(ctx context.Context, p *models.Page) error {
	if p.Sections == nil {
		p.Sections = []models.Section{}
	}
	if err := ValidatePage(p); err != nil {
		return err
	}
	p.Renumber()
	p.Version = s.nextVersion(ctx, p.ID)
	p.Touch(s.now())
	return nil
}

// SaveDraft writes the editor copy. Concurrent editors overwrite each
// other; use SaveDraftIfVersion to detect that.
func (s *Pages) SaveDraft(ctx context.Context, p models.Page) (models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveDraft(ctx, p)
}

func (s *Pages) saveDraft(ctx context.Context, p models.Page) (models.Page, error) {
	if err := s.prepare(ctx, &p); err != nil {
		return p, err
	}
	if !kv.SetItem(ctx, s.kv, kv.EditorKey(p.ID), p) {
		return p, fmt.Errorf("save draft %s: %w", p.ID, ErrNotSaved)
	}

	slog.Debug("page draft saved", "id", p.ID, "version", p.Version)
	if s.recent != nil {
		s.recent.Log(ctx, kindPage, p.ID, models.EditUpdate)
	}
	events.NotifySave(s.pub, p.ID, p, false, true)
	return p, nil
}

// SaveDraftIfVersion saves the draft only if the page the editor loaded
// (as returned by GetExact) still has the expected version.
func (s *Pages) SaveDraftIfVersion(ctx context.Context, p models.Page, expected int64) (models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.GetExact(ctx, p.ID)
	if current.Version != expected {
		return p, fmt.Errorf("page %s at version %d, expected %d: %w", p.ID, current.Version, expected, ErrVersionConflict)
	}
	return s.saveDraft(ctx, p)
}

// SaveLive writes the published copy and refreshes the page index.
func (s *Pages) SaveLive(ctx context.Context, p models.Page) (models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLive(ctx, p)
}

func (s *Pages) saveLive(ctx context.Context, p models.Page) (models.Page, error) {
	if err := s.prepare(ctx, &p); err != nil {
		return p, err
	}
	action, err := s.writeLive(ctx, p)
	if err != nil {
		return p, err
	}

	if s.recent != nil {
		s.recent.Log(ctx, kindPage, p.ID, action)
	}
	events.NotifySave(s.pub, p.ID, p, true, false)
	return p, nil
}

// writeLive stores page_<id> and upserts the index entry.
func (s *Pages) writeLive(ctx context.Context, p models.Page) (string, error) {
	_, existed := s.Live(ctx, p.ID)
	if !kv.SetItem(ctx, s.kv, kv.PageKey(p.ID), p) {
		return "", fmt.Errorf("save page %s: %w", p.ID, ErrNotSaved)
	}

	entry := models.Page{ID: p.ID, Title: p.Title, Version: p.Version, UpdatedAt: p.UpdatedAt}
	index := s.All(ctx)
	found := false
	for i := range index {
		if index[i].ID == p.ID {
			index[i] = entry
			found = true
			break
		}
	}
	if !found {
		index = append(index, entry)
	}
	if !kv.SetItem(ctx, s.kv, kv.KeyPages, index) {
		return "", fmt.Errorf("save page index: %w", ErrNotSaved)
	}

	if existed {
		return models.EditUpdate, nil
	}
	return models.EditCreate, nil
}

// Publish promotes the draft to the live copy and removes the draft.
// Reports false if there is no draft to publish.
func (s *Pages) Publish(ctx context.Context, id string) (models.Page, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.Draft(ctx, id)
	if !ok {
		return models.Page{}, false, nil
	}
	draft.Version = s.nextVersion(ctx, id)
	draft.Touch(s.now())

	if _, err := s.writeLive(ctx, draft); err != nil {
		return draft, false, err
	}
	if !kv.RemoveItem(ctx, s.kv, kv.EditorKey(id)) {
		return draft, false, fmt.Errorf("remove draft %s: %w", id, ErrNotSaved)
	}

	slog.Info("page published", "id", id, "version", draft.Version)
	if s.recent != nil {
		s.recent.Log(ctx, kindPage, id, models.EditPublish)
	}
	events.NotifySave(s.pub, id, draft, true, true)
	return draft, true, nil
}

// DiscardDraft drops the editor copy. Reports false if none existed.
func (s *Pages) DiscardDraft(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok, _ := s.kv.Get(ctx, kv.EditorKey(id)); !ok {
		return false, nil
	}
	if !kv.RemoveItem(ctx, s.kv, kv.EditorKey(id)) {
		return false, fmt.Errorf("discard draft %s: %w", id, ErrNotSaved)
	}

	live, _ := s.Live(ctx, id)
	if s.recent != nil {
		s.recent.Log(ctx, kindPage, id, models.EditDelete)
	}
	events.NotifySave(s.pub, id, live, false, true)
	return true, nil
}

// Delete removes a page entirely: live copy, draft, and index entry.
// Reports false if the page did not exist.
func (s *Pages) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.All(ctx)
	kept := make([]models.Page, 0, len(index))
	for _, p := range index {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	_, live := s.Live(ctx, id)
	_, draft, _ := s.kv.Get(ctx, kv.EditorKey(id))
	if len(kept) == len(index) && !live && !draft {
		return false, nil
	}

	if !kv.SetItem(ctx, s.kv, kv.KeyPages, kept) ||
		!kv.RemoveItem(ctx, s.kv, kv.PageKey(id)) ||
		!kv.RemoveItem(ctx, s.kv, kv.EditorKey(id)) {
		return false, fmt.Errorf("delete page %s: %w", id, ErrNotSaved)
	}

	if s.recent != nil {
		s.recent.Log(ctx, kindPage, id, models.EditDelete)
	}
	events.NotifySave(s.pub, id, nil, true, true)
	return true, nil
}

// UpsertSection adds or replaces one section of the live copy, creating
// the page if needed.
func (s *Pages) UpsertSection(ctx context.Context, pageID string, sec models.Section) (models.Page, error) {
	if sec.ID == "" {
		sec.ID = NewID()
	}
	if err := ValidateSection(&sec); err != nil {
		return models.Page{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Live(ctx, pageID)
	if !ok {
		p = models.Page{ID: pageID, Sections: []models.Section{}}
	}
	p.UpsertSection(sec)
	return s.saveLive(ctx, p)
}

// DeleteSection removes one section of the live copy. Reports false if
// the page or the section does not exist.
func (s *Pages) DeleteSection(ctx context.Context, pageID, sectionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Live(ctx, pageID)
	if !ok || !p.RemoveSection(sectionID) {
		return false, nil
	}
	if _, err := s.saveLive(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}
