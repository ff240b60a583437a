// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ngocms/internal/imaging"
	"ngocms/internal/models"
	"ngocms/internal/storage"
)

const (
	// maxUploadSize is the maximum allowed file upload size (50 MB).
	maxUploadSize = 50 << 20
)

// allowedMediaTypes defines MIME types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// thumbableTypes are image types that support thumbnail generation.
// GIF is excluded to preserve animation; SVG is vector.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// objectStore is the part of the S3 client the media handlers use.
type objectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	FileURL(key string) string
}

// MediaUpload stores an uploaded file in S3, generates a thumbnail for
// raster images, and records the file in the media library.
//
// Form fields: file, name, alt_fr, alt_ar, tags (comma-separated).
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "Object storage is not configured.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 50 MB.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided.")
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read file.")
		return
	}

	contentType := detectContentType(fileBytes, header.Filename)
	if !allowedMediaTypes[contentType] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("File type %q is not allowed.", contentType))
		return
	}

	now := time.Now()
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	fileID := uuid.NewString()
	key := storage.ObjectKey(fileID, ext, now)

	ctx := r.Context()
	if err := a.storage.Upload(ctx, key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", key)
		writeError(w, http.StatusInternalServerError, "Failed to upload file.")
		return
	}

	var thumbURL, thumbKey string
	if thumbableTypes[contentType] {
		thumb, err := imaging.Thumbnail(fileBytes, imaging.Thumb)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", key)
		} else if thumb != nil {
			tk := storage.ThumbKey(key)
			if err := a.storage.Upload(ctx, tk, thumb.ContentType, bytes.NewReader(thumb.Data), int64(len(thumb.Data))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				thumbKey = tk
				thumbURL = a.storage.FileURL(tk)
			}
		}
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		name = header.Filename
	}
	item := models.MediaItem{
		ID:       fileID,
		Name:     name,
		URL:      a.storage.FileURL(key),
		Path:     key,
		ThumbURL: thumbURL,
		Type:     models.MediaTypeFor(contentType),
		Alt:      models.T(r.FormValue("alt_fr"), r.FormValue("alt_ar")),
		Tags:     splitTags(r.FormValue("tags")),
	}

	saved, err := a.content.Media.Save(ctx, item)
	if err != nil {
		// The objects are orphaned without their library entry.
		a.deleteObjects(ctx, key, thumbKey)
		writeStoreError(w, "save media", err)
		return
	}

	slog.Info("media uploaded", "id", saved.ID, "key", key, "type", contentType, "size", len(fileBytes))
	a.cache.InvalidateAll(ctx)
	writeJSON(w, http.StatusCreated, saved)
}

// MediaDelete removes a media item from the library and, when it was
// uploaded to S3, its objects.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := r.Context()

	item, ok := a.content.Media.ByID(ctx, id)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if _, err := a.content.Media.Delete(ctx, id); err != nil {
		writeStoreError(w, "delete media", err)
		return
	}

	// Clean up S3 objects (best-effort, don't fail the request).
	if a.storage != nil && item.Path != "" {
		thumbKey := ""
		if item.ThumbURL != "" {
			thumbKey = storage.ThumbKey(item.Path)
		}
		a.deleteObjects(ctx, item.Path, thumbKey)
	}

	a.cache.InvalidateAll(ctx)
	writeJSON(w, http.StatusOK, okResponse{Success: true})
}

// deleteObjects removes S3 objects, skipping empty keys. Failures are
// logged only.
func (a *Admin) deleteObjects(ctx context.Context, keys ...string) {
	for _, k := range keys {
		if k == "" {
			continue
		}
		if err := a.storage.Delete(ctx, k); err != nil {
			slog.Warn("s3 object delete failed", "error", err, "key", k)
		}
	}
}

// detectContentType sniffs the first 512 bytes. SVG files sniff as XML or
// text, so the extension decides for them.
func detectContentType(data []byte, filename string) string {
	n := min(len(data), 512)
	contentType := http.DetectContentType(data[:n])
	if strings.HasSuffix(strings.ToLower(filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		return "image/svg+xml"
	}
	return contentType
}

// splitTags parses a comma-separated tag list, dropping blanks.
func splitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
