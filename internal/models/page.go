// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Section is an ordered content block within a page. Its position in
// Page.Sections is its display order; Order mirrors that position and is
// rewritten on every save.
type Section struct {
	ID       string         `json:"id" yaml:"id"`
	Order    int            `json:"order" yaml:"order"`
	Title    Text           `json:"title" yaml:"title"`
	Content  Text           `json:"content" yaml:"content"`
	Image    string         `json:"image,omitempty" yaml:"image,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Page is the full content of one site page. The same shape is stored as
// the live copy (page_<id>) and as the editor draft (editor_<id>).
type Page struct {
	ID        string    `json:"id" yaml:"id"`
	Title     Text      `json:"title" yaml:"title"`
	Sections  []Section `json:"sections" yaml:"sections"`
	Version   int64     `json:"version" yaml:"version"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

func (p *Page) GetID() string { return p.ID }
func (p *Page) SetID(id string) { p.ID = id }
func (p *Page) Touch(now time.Time) { p.UpdatedAt = now }

// IsEmpty reports whether the page carries no usable content. An empty
// draft is treated as absent by the editor reconciliation.
func (p *Page) IsEmpty() bool {
	return len(p.Sections) == 0 && p.Title.IsZero()
}

// Section returns the section with the given id and its index, or -1.
func (p *Page) Section(id string) (*Section, int) {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i], i
		}
	}
	return nil, -1
}

// HasSection reports whether a section with the given id exists.
func (p *Page) HasSection(id string) bool {
	_, i := p.Section(id)
	return i >= 0
}

// UpsertSection replaces the section with the same id in place or appends
// it at the end.
func (p *Page) UpsertSection(s Section) {
	if _, i := p.Section(s.ID); i >= 0 {
		p.Sections[i] = s
		return
	}
	p.Sections = append(p.Sections, s)
}

// Renumber sets each section's Order to its position.
func (p *Page) Renumber() {
	for i := range p.Sections {
		p.Sections[i].Order = i
	}
}

// RemoveSection drops the section with the given id. Returns false if no
// such section exists.
func (p *Page) RemoveSection(id string) bool {
	_, i := p.Section(id)
	if i < 0 {
		return false
	}
	p.Sections = append(p.Sections[:i], p.Sections[i+1:]...)
	return true
}

// Clone returns a deep copy so callers can mutate sections without
// touching a shared value.
func (p Page) Clone() Page {
	out := p
	out.Sections = make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		out.Sections[i] = s.Clone()
	}
	return out
}

// Clone returns a copy of s with its own metadata map.
func (s Section) Clone() Section {
	if s.Metadata != nil {
		m := make(map[string]any, len(s.Metadata))
		for k, v := range s.Metadata {
			m[k] = v
		}
		s.Metadata = m
	}
	return s
}
