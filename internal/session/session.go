// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session provides admin HTTP sessions. Sessions are identified by
// a random cookie value and stored as JSON in a kv.Store, with the expiry
// kept inside the payload so any backend works.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ngocms/internal/kv"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "ngocms_session"

	// DefaultTTL is how long a session stays valid.
	DefaultTTL = 24 * time.Hour

	// keyPrefix namespaces session keys.
	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// Data holds the session payload.
type Data struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (d *Data) Expired(now time.Time) bool {
	return !d.ExpiresAt.IsZero() && now.After(d.ExpiresAt)
}

// Store manages session lifecycle.
type Store struct {
	kv     kv.Store
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewStore creates a session store. secure marks cookies HTTPS-only.
func NewStore(s kv.Store, secure bool) *Store {
	return &Store{kv: s, ttl: DefaultTTL, secure: secure, now: time.Now}
}

// Create generates a new session, stores it, and sets the session cookie
// on the response. Returns the session ID.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, data *Data) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	data.CreatedAt = s.now()
	data.ExpiresAt = data.CreatedAt.Add(s.ttl)

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("session marshal: %w", err)
	}
	if err := s.kv.Set(ctx, keyPrefix+id, payload); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return id, nil
}

// Get retrieves session data using the session ID from the request
// cookie. Returns nil if no valid session exists; expired sessions are
// removed.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}

	payload, ok, err := s.kv.Get(ctx, keyPrefix+cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}
	if data.Expired(s.now()) {
		s.kv.Delete(ctx, keyPrefix+cookie.Value)
		return nil, nil
	}
	return &data, nil
}

// Destroy removes the session and clears the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err == nil {
		if err := s.kv.Delete(ctx, keyPrefix+cookie.Value); err != nil {
			return fmt.Errorf("session destroy: %w", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return nil
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
