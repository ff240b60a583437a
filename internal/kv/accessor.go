// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.
package kv

import (
	"context"
	"encoding/json"
	"log/slog"
)

// GetItem reads key from s and decodes it into T. A missing key, a
// backend error, or malformed JSON all report false; the latter two are
// logged.
func GetItem[T any](ctx context.Context, s Store, key string) (T, bool) {
	var zero T
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		slog.Warn("kv get failed", "key", key, "error", err)
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("kv decode failed", "key", key, "error", err)
		return zero, false
	}
	return v, true
}

// GetItemOr is GetItem with a fallback for the not-found and failure cases.
func GetItemOr[T any](ctx context.Context, s Store, key string, fallback T) T {
	if v, ok := GetItem[T](ctx, s, key); ok {
		return v
	}
	return fallback
}

// SetItem encodes v as JSON and writes it under key. Returns false if
// encoding or the write fails (including quota errors).
func SetItem[T any](ctx context.Context, s Store, key string, v T) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Error("kv encode failed", "key", key, "error", err)
		return false
	}
	if err := s.Set(ctx, key, raw); err != nil {
		slog.Error("kv set failed", "key", key, "size", len(raw), "error", err)
		return false
	}
	return true
}

// RemoveItem deletes key, logging and reporting false on failure.
func RemoveItem(ctx context.Context, s Store, key string) bool {
	if err := s.Delete(ctx, key); err != nil {
		slog.Error("kv delete failed", "key", key, "error", err)
		return false
	}
	return true
}
