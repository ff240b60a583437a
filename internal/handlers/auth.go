// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ngocms/internal/kv"
	"ngocms/internal/middleware"
	"ngocms/internal/session"
)

// Auth handles admin login and logout. There is a single administrator
// whose credentials come from the configuration.
type Auth struct {
	sessions *session.Store
	kv       kv.Store
	username string
	hash     []byte
}

// NewAuth creates the auth handlers. password may be plain text or an
// existing bcrypt hash. s receives the adminAuth marker.
func NewAuth(sessions *session.Store, s kv.Store, username, password string) (*Auth, error) {
	hash := []byte(password)
	if !isBcryptHash(password) {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	}
	return &Auth{sessions: sessions, kv: s, username: username, hash: hash}, nil
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// loginRequest is the body of POST /api/admin/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// sessionResponse describes the caller's admin state.
type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

// Login checks the credentials and opens a session.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.hash, []byte(req.Password))
	if !userOK || passErr != nil {
		slog.Warn("admin login failed", "username", req.Username)
		writeError(w, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{Username: a.username}); err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	kv.SetItem(r.Context(), a.kv, kv.KeyAdminAuth, true)

	slog.Info("admin logged in", "username", a.username)
	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Username: a.username})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	kv.RemoveItem(r.Context(), a.kv, kv.KeyAdminAuth)
	writeJSON(w, http.StatusOK, okResponse{Success: true})
}

// Session reports whether the caller holds an admin session.
func (a *Auth) Session(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeJSON(w, http.StatusOK, sessionResponse{})
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Username: sess.Username})
}
