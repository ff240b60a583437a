// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allow      string
		origin     string
		method     string
		preflight  bool
		wantOrigin string
		wantCode   int
		wantNext   bool
	}{
		{name: "wildcard", allow: "*", origin: "https://site.example", method: "GET", wantOrigin: "*", wantCode: 200, wantNext: true},
		{name: "listed origin echoed", allow: "https://a.example, https://b.example", origin: "https://b.example", method: "GET", wantOrigin: "https://b.example", wantCode: 200, wantNext: true},
		{name: "unlisted origin", allow: "https://a.example", origin: "https://evil.example", method: "GET", wantOrigin: "", wantCode: 200, wantNext: true},
		{name: "no origin header", allow: "*", method: "GET", wantOrigin: "", wantCode: 200, wantNext: true},
		{name: "preflight", allow: "*", origin: "https://site.example", method: "OPTIONS", preflight: true, wantOrigin: "*", wantCode: 204, wantNext: false},
		{name: "plain options passes through", allow: "*", origin: "https://site.example", method: "OPTIONS", wantOrigin: "*", wantCode: 200, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, called := okHandler()
			req := httptest.NewRequest(tt.method, "/api/pages", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", "PUT")
			}
			rr := httptest.NewRecorder()
			CORS(tt.allow)(inner).ServeHTTP(rr, req)

			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin: got %q, want %q", got, tt.wantOrigin)
			}
			if rr.Code != tt.wantCode {
				t.Errorf("status: got %d, want %d", rr.Code, tt.wantCode)
			}
			if *called != tt.wantNext {
				t.Errorf("next called: got %v, want %v", *called, tt.wantNext)
			}
			if tt.preflight && rr.Header().Get("Access-Control-Allow-Headers") == "" {
				t.Error("preflight should list allowed headers")
			}
		})
	}
}
