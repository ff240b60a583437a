// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"ngocms/internal/kv"
	"ngocms/internal/session"
)

func newTestAuth(t *testing.T, env *testEnv) *Auth {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	auth, err := NewAuth(env.sessions, env.kv, "admin", string(hash))
	if err != nil {
		t.Fatalf("NewAuth: %v", err)
	}
	return auth
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	auth := newTestAuth(t, env)

	tests := []struct {
		name     string
		body     loginRequest
		wantCode int
	}{
		{"wrong password", loginRequest{Username: "admin", Password: "nope"}, http.StatusUnauthorized},
		{"wrong username", loginRequest{Username: "root", Password: "s3cret"}, http.StatusUnauthorized},
		{"valid", loginRequest{Username: "admin", Password: "s3cret"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(auth.Login, jsonRequest(t, "POST", "/api/admin/login", tt.body))
			if rr.Code != tt.wantCode {
				t.Fatalf("status: got %d, want %d", rr.Code, tt.wantCode)
			}
			cookies := rr.Result().Cookies()
			if tt.wantCode != http.StatusOK {
				if len(cookies) != 0 {
					t.Error("failed login must not set a cookie")
				}
				return
			}
			if len(cookies) != 1 || cookies[0].Name != session.CookieName {
				t.Fatalf("cookies: got %+v", cookies)
			}
			if ok, _ := kv.GetItem[bool](t.Context(), env.kv, kv.KeyAdminAuth); !ok {
				t.Error("adminAuth marker should be set")
			}
		})
	}
}

func TestLogoutClearsSessionAndMarker(t *testing.T) {
	env := newTestEnv(t)
	auth := newTestAuth(t, env)

	rr := serve(auth.Login, jsonRequest(t, "POST", "/api/admin/login", loginRequest{Username: "admin", Password: "s3cret"}))
	cookie := rr.Result().Cookies()[0]

	req := jsonRequest(t, "POST", "/api/admin/logout", nil)
	req.AddCookie(cookie)
	rr = serve(auth.Logout, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	check := jsonRequest(t, "GET", "/", nil)
	check.AddCookie(cookie)
	if data, _ := env.sessions.Get(t.Context(), check); data != nil {
		t.Error("session should be destroyed")
	}
	if _, ok := kv.GetItem[bool](t.Context(), env.kv, kv.KeyAdminAuth); ok {
		t.Error("adminAuth marker should be removed")
	}
}

func TestSessionStatus(t *testing.T) {
	env := newTestEnv(t)
	auth := newTestAuth(t, env)

	var resp sessionResponse
	decode(t, serve(auth.Session, jsonRequest(t, "GET", "/api/admin/session", nil)), &resp)
	if resp.Authenticated {
		t.Error("anonymous request should not be authenticated")
	}

	resp = sessionResponse{}
	decode(t, serve(auth.Session, withSession(jsonRequest(t, "GET", "/api/admin/session", nil))), &resp)
	if !resp.Authenticated || resp.Username != "admin" {
		t.Errorf("got %+v, want authenticated admin", resp)
	}
}

func TestNewAuth_HashesPlainPassword(t *testing.T) {
	env := newTestEnv(t)
	auth, err := NewAuth(env.sessions, env.kv, "admin", "plain")
	if err != nil {
		t.Fatal(err)
	}
	if err := bcrypt.CompareHashAndPassword(auth.hash, []byte("plain")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if isBcryptHash("plain") {
		t.Error("plain text is not a bcrypt hash")
	}
}
