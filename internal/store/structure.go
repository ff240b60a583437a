// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"

	"ngocms/internal/kv"
	"ngocms/internal/models"
)

const kindStructure = "structure"

// Structure holds the site navigation as a single document.
type Structure struct {
	*base
}

func newStructure(b *base) *Structure {
	return &Structure{base: b}
}

// Get returns the stored structure, or an empty one.
func (s *Structure) Get(ctx context.Context) (models.WebsiteStructure, bool) {
	ws, ok := kv.GetItem[models.WebsiteStructure](ctx, s.kv, kv.KeyWebsiteStructure)
	if ws.MainMenu == nil {
		ws.MainMenu = []models.MenuItem{}
	}
	if ws.Footer == nil {
		ws.Footer = []models.FooterSection{}
	}
	return ws, ok
}

// Save replaces the whole structure.
func (s *Structure) Save(ctx context.Context, ws models.WebsiteStructure) (models.WebsiteStructure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, ws)
}

func (s *Structure) save(ctx context.Context, ws models.WebsiteStructure) (models.WebsiteStructure, error) {
	for i := range ws.MainMenu {
		if ws.MainMenu[i].ID == "" {
			ws.MainMenu[i].ID = NewID()
		}
	}
	for i := range ws.Footer {
		if ws.Footer[i].ID == "" {
			ws.Footer[i].ID = NewID()
		}
		for j := range ws.Footer[i].Links {
			if ws.Footer[i].Links[j].ID == "" {
				ws.Footer[i].Links[j].ID = NewID()
			}
		}
	}
	if err := ValidateStructure(&ws); err != nil {
		return ws, err
	}
	if ws.MainMenu == nil {
		ws.MainMenu = []models.MenuItem{}
	}
	if ws.Footer == nil {
		ws.Footer = []models.FooterSection{}
	}

	if !kv.SetItem(ctx, s.kv, kv.KeyWebsiteStructure, ws) {
		return ws, fmt.Errorf("save website structure: %w", ErrNotSaved)
	}
	s.record(ctx, kindStructure, kv.KeyWebsiteStructure, models.EditUpdate, ws, kv.KeyWebsiteStructure)
	return ws, nil
}

// SaveMenuItem replaces the menu item with the same id or appends it.
func (s *Structure) SaveMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if item.ID == "" {
		item.ID = NewID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, _ := s.Get(ctx)
	replaced := false
	for i := range ws.MainMenu {
		if ws.MainMenu[i].ID == item.ID {
			ws.MainMenu[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		ws.MainMenu = append(ws.MainMenu, item)
	}
	_, err := s.save(ctx, ws)
	return item, err
}

// DeleteMenuItem removes a menu item. Reports false if it was not found.
func (s *Structure) DeleteMenuItem(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, _ := s.Get(ctx)
	kept := make([]models.MenuItem, 0, len(ws.MainMenu))
	for _, m := range ws.MainMenu {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(ws.MainMenu) {
		return false, nil
	}
	ws.MainMenu = kept
	if _, err := s.save(ctx, ws); err != nil {
		return false, err
	}
	return true, nil
}

// SaveFooterSection replaces the footer section with the same id or
// appends it.
func (s *Structure) SaveFooterSection(ctx context.Context, sec models.FooterSection) (models.FooterSection, error) {
	if sec.ID == "" {
		sec.ID = NewID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, _ := s.Get(ctx)
	replaced := false
	for i := range ws.Footer {
		if ws.Footer[i].ID == sec.ID {
			ws.Footer[i] = sec
			replaced = true
			break
		}
	}
	if !replaced {
		ws.Footer = append(ws.Footer, sec)
	}
	saved, err := s.save(ctx, ws)
	if err != nil {
		return sec, err
	}
	for _, f := range saved.Footer {
		if f.ID == sec.ID {
			return f, nil
		}
	}
	return sec, nil
}

// DeleteFooterSection removes a footer section. Reports false if it was
// not found.
func (s *Structure) DeleteFooterSection(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, _ := s.Get(ctx)
	kept := make([]models.FooterSection, 0, len(ws.Footer))
	for _, f := range ws.Footer {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(ws.Footer) {
		return false, nil
	}
	ws.Footer = kept
	if _, err := s.save(ctx, ws); err != nil {
		return false, err
	}
	return true, nil
}
