// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// NewsItem is a bilingual news article.
type NewsItem struct {
	ID        string    `json:"id" yaml:"id"`
	Title     Text      `json:"title" yaml:"title"`
	Excerpt   Text      `json:"excerpt" yaml:"excerpt"`
	Content   Text      `json:"content" yaml:"content"`
	Category  Text      `json:"category" yaml:"category"`
	Slug      Text      `json:"slug" yaml:"slug"`
	Date      string    `json:"date" yaml:"date"`
	Author    string    `json:"author" yaml:"author"`
	Image     string    `json:"image" yaml:"image"`
	Tags      []string  `json:"tags" yaml:"tags"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

func (n *NewsItem) GetID() string { return n.ID }
func (n *NewsItem) SetID(id string) { n.ID = id }
func (n *NewsItem) Touch(now time.Time) { n.UpdatedAt = now }
