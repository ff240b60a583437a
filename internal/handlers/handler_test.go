// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Every test runs against a seeded in-memory content store.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"ngocms/internal/events"
	"ngocms/internal/kv"
	"ngocms/internal/middleware"
	"ngocms/internal/seed"
	"ngocms/internal/session"
	"ngocms/internal/store"
)

// testEnv holds a seeded content store and the handlers built on it.
type testEnv struct {
	kv       *kv.Memory
	bus      *events.Bus
	content  *store.Content
	api      *API
	admin    *Admin
	sessions *session.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mem := kv.NewMemory(0)
	bus := events.NewBus()
	content := store.New(mem, bus)
	if _, err := seed.Initialize(context.Background(), content); err != nil {
		t.Fatalf("seed: %v", err)
	}
	completer := store.NewCompleter(content.Pages, seed.Canonical())

	return &testEnv{
		kv:       mem,
		bus:      bus,
		content:  content,
		api:      NewAPI(content, nil),
		admin:    NewAdmin(content, completer, nil, nil, bus),
		sessions: session.NewStore(kv.NewMemory(0), false),
	}
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withURLParams adds chi URL parameters to a request, given as
// alternating keys and values.
func withURLParams(r *http.Request, kvs ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kvs); i += 2 {
		rctx.URLParams.Add(kvs[i], kvs[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withSession marks a request as coming from the logged-in admin.
func withSession(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.SessionKey, &session.Data{Username: "admin"})
	return r.WithContext(ctx)
}

// decode reads a JSON response body into v.
func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

func serve(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, r)
	return rr
}
