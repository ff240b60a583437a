// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	"ngocms/internal/kv"
	"ngocms/internal/storage"
	"ngocms/internal/store"
)

// memObjects is an in-memory objectStore.
type memObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemObjects() *memObjects {
	return &memObjects{objects: make(map[string][]byte)}
}

func (m *memObjects) Upload(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *memObjects) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memObjects) FileURL(key string) string {
	return "https://cdn.example/" + key
}

func (m *memObjects) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.objects))
	for k := range m.objects {
		out = append(out, k)
	}
	return out
}

// uploadRequest builds a multipart upload of a wide PNG, so a thumbnail
// is generated.
func uploadRequest(t *testing.T) *http.Request {
	t.Helper()
	var img bytes.Buffer
	if err := png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 800, 20))); err != nil {
		t.Fatal(err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "banner.png")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write(img.Bytes())
	mw.WriteField("name", "Banner")
	mw.Close()

	req := httptest.NewRequest("POST", "/api/admin/media/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return withSession(req)
}

func TestExtensionFromType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/gif", ".gif"},
		{"image/webp", ".webp"},
		{"image/svg+xml", ".svg"},
		{"application/pdf", ".pdf"},
		{"application/octet-stream", ""},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			if got := extensionFromType(tt.contentType); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectContentType(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`)
	if got := detectContentType(svg, "logo.svg"); got != "image/svg+xml" {
		t.Errorf("svg: got %q", got)
	}
	if got := detectContentType([]byte("%PDF-1.4 rest"), "report.pdf"); got != "application/pdf" {
		t.Errorf("pdf: got %q", got)
	}
	if got := detectContentType(nil, "empty.bin"); got != "text/plain; charset=utf-8" {
		t.Errorf("empty: got %q", got)
	}
}

func TestSplitTags(t *testing.T) {
	got := splitTags(" brand, ,campagne ,")
	if !slices.Equal(got, []string{"brand", "campagne"}) {
		t.Errorf("got %v", got)
	}
	if got := splitTags(""); got == nil || len(got) != 0 {
		t.Errorf("empty input: got %#v, want empty slice", got)
	}
}

func TestMediaUpload_NoStorage(t *testing.T) {
	env := newTestEnv(t)

	req := withSession(httptest.NewRequest("POST", "/api/admin/media/upload", nil))
	rr := serve(env.admin.MediaUpload, req)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want 503", rr.Code)
	}
}

func TestMediaUpload_StoresOriginalAndThumbnail(t *testing.T) {
	objects := newMemObjects()
	content := store.New(kv.NewMemory(0), nil)
	a := &Admin{content: content, storage: objects}

	rr := serve(a.MediaUpload, uploadRequest(t))
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d (%s)", rr.Code, rr.Body.String())
	}
	items := content.Media.All(context.Background())
	if len(items) != 1 || items[0].ThumbURL == "" {
		t.Fatalf("library: %+v", items)
	}
	keys := objects.keys()
	if !slices.Contains(keys, items[0].Path) || !slices.Contains(keys, storage.ThumbKey(items[0].Path)) {
		t.Errorf("stored objects: %v", keys)
	}
}

func TestMediaUpload_SaveFailureRemovesObjects(t *testing.T) {
	objects := newMemObjects()
	// Too small for any media library entry.
	content := store.New(kv.NewMemory(64), nil)
	a := &Admin{content: content, storage: objects}

	rr := serve(a.MediaUpload, uploadRequest(t))
	if rr.Code == http.StatusCreated {
		t.Fatal("upload should fail when the library entry cannot be saved")
	}
	if keys := objects.keys(); len(keys) != 0 {
		t.Errorf("orphaned objects left behind: %v", keys)
	}
}
