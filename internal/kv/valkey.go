// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.
package kv

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultValkeyPrefix namespaces content keys apart from sessions and caches.
const DefaultValkeyPrefix = "kv:"

// Valkey stores blobs in a Valkey (Redis-compatible) server without expiry.
// All keys live under a prefix so several stores can share one server.
type Valkey struct {
	client *redis.Client
	prefix string
}

// NewValkey wraps a connected client. An empty prefix uses
// DefaultValkeyPrefix.
func NewValkey(client *redis.Client, prefix string) *Valkey {
	if prefix == "" {
		prefix = DefaultValkeyPrefix
	}
	return &Valkey{client: client, prefix: prefix}
}

func (v *Valkey) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := v.client.Get(ctx, v.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv valkey get: %w", err)
	}
	return val, true, nil
}

func (v *Valkey) Set(ctx context.Context, key string, value []byte) error {
	if err := v.client.Set(ctx, v.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv valkey set: %w", err)
	}
	return nil
}

func (v *Valkey) Delete(ctx context.Context, key string) error {
	if err := v.client.Del(ctx, v.prefix+key).Err(); err != nil {
		return fmt.Errorf("kv valkey delete: %w", err)
	}
	return nil
}

// Keys scans the store's namespace.
func (v *Valkey) Keys(ctx context.Context) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := v.client.Scan(ctx, cursor, v.prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("kv valkey scan: %w", err)
		}
		for _, k := range batch {
			keys = append(keys, strings.TrimPrefix(k, v.prefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}
