// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.
package kv

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-process Store. A positive quota caps the total size of
// keys plus values in bytes, the way browser storage does.
type Memory struct {
	mu    sync.RWMutex
	data  map[string][]byte
	size  int
	quota int
}

// NewMemory returns an empty in-memory store. quota <= 0 disables the limit.
func NewMemory(quota int) *Memory {
	return &Memory{data: make(map[string][]byte), quota: quota}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	newSize := m.size + len(key) + len(value)
	if old, ok := m.data[key]; ok {
		newSize -= len(key) + len(old)
	}
	if m.quota > 0 && newSize > m.quota {
		return ErrQuotaExceeded
	}

	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	m.size = newSize
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.data[key]; ok {
		m.size -= len(key) + len(old)
		delete(m.data, key)
	}
	return nil
}

// Keys returns all keys in lexical order.
func (m *Memory) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Size returns the bytes currently counted against the quota.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.size
}
