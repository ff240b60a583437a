// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package kv is the key-value layer every content repository is built on.
// A Store holds JSON blobs under string keys; GetItem and SetItem add
// typed (de)serialization that reports failures as sentinels instead of
// errors, so callers only need to check a boolean.
package kv

import (
	"context"
	"errors"
	"strings"
)

// Well-known keys.
const (
	KeyPages            = "pages"
	KeyNews             = "news"
	KeyResources        = "resources"
	KeyMediaLibrary     = "mediaLibrary"
	KeyGlobalContent    = "globalContent"
	KeyWebsiteStructure = "websiteStructure"
	KeyAdminAuth        = "adminAuth"
	KeyLanguage         = "language"
	KeyDBInitialized    = "dbInitialized"
	KeyRecentEdits      = "recentEdits"

	pagePrefix   = "page_"
	editorPrefix = "editor_"
)

// ErrQuotaExceeded is returned by a Store whose size limit would be
// exceeded by a write.
var ErrQuotaExceeded = errors.New("kv: quota exceeded")

// Store is a string-keyed blob store. Implementations must be safe for
// concurrent use. Get reports a missing key as (nil, false, nil).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// PageKey returns the key of a page's live copy.
func PageKey(id string) string { return pagePrefix + id }

// EditorKey returns the key of a page's editor draft.
func EditorKey(id string) string { return editorPrefix + id }

// PageIDFromKey extracts the page id from a page_ or editor_ key.
func PageIDFromKey(key string) (id string, editor bool, ok bool) {
	if strings.HasPrefix(key, editorPrefix) {
		return strings.TrimPrefix(key, editorPrefix), true, true
	}
	if strings.HasPrefix(key, pagePrefix) {
		return strings.TrimPrefix(key, pagePrefix), false, true
	}
	return "", false, false
}
