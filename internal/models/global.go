// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// GlobalContent is a keyed bilingual string shared across pages, such as
// the organisation name or the contact e-mail label.
type GlobalContent struct {
	ID        string    `json:"id" yaml:"id"`
	Category  string    `json:"category" yaml:"category"`
	Key       string    `json:"key" yaml:"key"`
	Text      Text      `json:"text" yaml:"text"`
	Image     string    `json:"image,omitempty" yaml:"image,omitempty"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

func (g *GlobalContent) GetID() string { return g.ID }
func (g *GlobalContent) SetID(id string) { g.ID = id }
func (g *GlobalContent) Touch(now time.Time) { g.UpdatedAt = now }
