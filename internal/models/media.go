// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"
)

// Media types.
const (
	MediaImage = "image"
	MediaOther = "other"
)

// MediaItem is an entry in the media library. URL is what pages embed;
// Path is the object key when the file lives in S3 storage.
type MediaItem struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	URL        string    `json:"url" yaml:"url"`
	Path       string    `json:"path,omitempty" yaml:"path,omitempty"`
	ThumbURL   string    `json:"thumbUrl,omitempty" yaml:"thumbUrl,omitempty"`
	Type       string    `json:"type" yaml:"type"`
	Alt        Text      `json:"alt" yaml:"alt"`
	Tags       []string  `json:"tags" yaml:"tags"`
	UploadDate time.Time `json:"uploadDate" yaml:"uploadDate"`
}

func (m *MediaItem) GetID() string { return m.ID }
func (m *MediaItem) SetID(id string) { m.ID = id }

// Touch stamps the upload date the first time the item is stored.
func (m *MediaItem) Touch(now time.Time) {
	if m.UploadDate.IsZero() {
		m.UploadDate = now
	}
}

// MediaTypeFor maps a MIME type to a media library type.
func MediaTypeFor(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return MediaImage
	}
	return MediaOther
}
