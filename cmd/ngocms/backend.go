// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"ngocms/internal/cache"
	"ngocms/internal/config"
	"ngocms/internal/database"
	"ngocms/internal/kv"
)

// sessionPrefix namespaces admin sessions when they live in Valkey.
const sessionPrefix = "sess:"

// backend holds the opened stores and the connections behind them.
type backend struct {
	content  kv.Store
	sessions kv.Store
	valkey   *redis.Client
	db       *sql.DB
}

// openBackend connects the content store selected by STORE_BACKEND.
// Sessions are kept apart from content so a reset never logs anyone out.
func openBackend(cfg *config.Config) (*backend, error) {
	b := &backend{}

	if cfg.HasValkey() {
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return nil, fmt.Errorf("connect valkey: %w", err)
		}
		b.valkey = client
	}

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			b.Close()
			return nil, err
		}
		b.db = db
		if err := database.Migrate(db, "postgres"); err != nil {
			b.Close()
			return nil, err
		}
		b.content = kv.NewSQL(db, kv.DialectPostgres)
	case config.BackendSQLite:
		db, err := database.ConnectSQLite(cfg.SQLitePath)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.db = db
		if err := database.Migrate(db, "sqlite3"); err != nil {
			b.Close()
			return nil, err
		}
		b.content = kv.NewSQL(db, kv.DialectSQLite)
	case config.BackendValkey:
		if b.valkey == nil {
			return nil, fmt.Errorf("valkey backend selected without VALKEY_HOST")
		}
		b.content = kv.NewValkey(b.valkey, kv.DefaultValkeyPrefix)
	default:
		b.content = kv.NewMemory(cfg.StoreQuota)
		slog.Warn("using in-memory content store, edits are lost on restart")
	}

	if b.valkey != nil {
		b.sessions = kv.NewValkey(b.valkey, sessionPrefix)
	} else {
		b.sessions = kv.NewMemory(0)
	}

	slog.Info("content store opened", "backend", cfg.StoreBackend)
	return b, nil
}

// Close releases every connection the backend opened.
func (b *backend) Close() {
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			slog.Warn("database close failed", "error", err)
		}
	}
	if b.valkey != nil {
		if err := b.valkey.Close(); err != nil {
			slog.Warn("valkey close failed", "error", err)
		}
	}
}
