// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Resource is a downloadable document (report, guide, brochure).
// Date is a display string per language, not a parsed timestamp.
type Resource struct {
	ID          string    `json:"id" yaml:"id"`
	Title       Text      `json:"title" yaml:"title"`
	Description Text      `json:"description" yaml:"description"`
	Type        string    `json:"type" yaml:"type"`
	Format      string    `json:"format" yaml:"format"`
	Date        Text      `json:"date" yaml:"date"`
	DownloadURL string    `json:"downloadUrl" yaml:"downloadUrl"`
	Thumbnail   string    `json:"thumbnail" yaml:"thumbnail"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

func (r *Resource) GetID() string { return r.ID }
func (r *Resource) SetID(id string) { r.ID = id }
func (r *Resource) Touch(now time.Time) { r.UpdatedAt = now }
