// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.
package kv

import (
	"context"
	"database/sql"
	"fmt"
)

// Dialect selects the placeholder style of a SQL-backed store.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// SQL stores blobs in the content_kv table created by the database
// migrations. It works with both PostgreSQL (pgx) and SQLite.
type SQL struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQL wraps a migrated database connection.
func NewSQL(db *sql.DB, dialect Dialect) *SQL {
	return &SQL{db: db, dialect: dialect}
}

// q rewrites $n placeholders to ? for SQLite.
func (s *SQL) q(query string) string {
	if s.dialect != DialectSQLite {
		return query
	}
	out := make([]byte, 0, len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' {
			out = append(out, '?')
			for i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
				i++
			}
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.q(`SELECT value FROM content_kv WHERE key = $1`), key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv sql get: %w", err)
	}
	return []byte(value), true, nil
}

func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO content_kv (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`),
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("kv sql set: %w", err)
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.q(`DELETE FROM content_kv WHERE key = $1`), key); err != nil {
		return fmt.Errorf("kv sql delete: %w", err)
	}
	return nil
}

func (s *SQL) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM content_kv ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("kv sql keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan kv key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
