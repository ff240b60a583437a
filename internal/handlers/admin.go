// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"ngocms/internal/cache"
	"ngocms/internal/events"
	"ngocms/internal/models"
	"ngocms/internal/seed"
	"ngocms/internal/storage"
	"ngocms/internal/store"
)

// Admin groups the authenticated editing endpoints.
type Admin struct {
	content   *store.Content
	completer *store.Completer
	cache     *cache.ResponseCache
	storage   objectStore
	pub       events.Publisher
}

// NewAdmin creates the admin handlers. rc and storageClient may be nil
// when Valkey or S3 are not configured.
func NewAdmin(content *store.Content, completer *store.Completer, rc *cache.ResponseCache, storageClient *storage.Client, pub events.Publisher) *Admin {
	a := &Admin{
		content:   content,
		completer: completer,
		cache:     rc,
		pub:       pub,
	}
	if storageClient != nil {
		a.storage = storageClient
	}
	return a
}

// --- Editor (draft/live) ---

// editorResponse is what the page editor loads: the exact content to show
// plus whether it comes from an unpublished draft.
type editorResponse struct {
	Page     models.Page `json:"page"`
	HasDraft bool        `json:"hasDraft"`
}

// EditorGet returns the draft of a page if one exists, else the live copy.
// The ETag carries the version to send back in If-Match.
func (a *Admin) EditorGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p := a.content.Pages.GetExact(r.Context(), id)
	w.Header().Set("ETag", etag(p.Version))
	writeJSON(w, http.StatusOK, editorResponse{
		Page:     p,
		HasDraft: a.content.Pages.HasDraft(r.Context(), id),
	})
}

// EditorSave stores the editor draft. With an If-Match header the save is
// refused with 409 when the page moved on since the editor loaded it.
func (a *Admin) EditorSave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var p models.Page
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if p.ID == "" {
		p.ID = id
	}
	if p.ID != id {
		writeError(w, http.StatusBadRequest, "page id does not match the URL")
		return
	}

	var (
		saved models.Page
		err   error
	)
	if match := r.Header.Get("If-Match"); match != "" {
		expected, perr := parseETag(match)
		if perr != nil {
			writeError(w, http.StatusBadRequest, perr.Error())
			return
		}
		saved, err = a.content.Pages.SaveDraftIfVersion(r.Context(), p, expected)
	} else {
		saved, err = a.content.Pages.SaveDraft(r.Context(), p)
	}
	if err != nil {
		writeStoreError(w, "save draft", err)
		return
	}

	w.Header().Set("ETag", etag(saved.Version))
	writeJSON(w, http.StatusOK, saved)
}

// EditorDiscard drops the draft of a page.
func (a *Admin) EditorDiscard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed, err := a.content.Pages.DiscardDraft(r.Context(), id)
	if err != nil {
		writeStoreError(w, "discard draft", err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "no draft for this page")
		return
	}
	writeJSON(w, http.StatusOK, okResponse{Success: true})
}

// EditorPublish promotes the draft of a page to the live copy.
func (a *Admin) EditorPublish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok, err := a.content.Pages.Publish(r.Context(), id)
	if err != nil {
		writeStoreError(w, "publish page", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "no draft to publish")
		return
	}
	a.cache.InvalidateAll(r.Context())
	w.Header().Set("ETag", etag(p.Version))
	writeJSON(w, http.StatusOK, p)
}

// PageComplete adds any missing default sections to a page. The home
// page is also put back into its canonical section order.
func (a *Admin) PageComplete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := a.completer.EnsureSections(r.Context(), id)
	if err != nil {
		writeStoreError(w, "complete page", err)
		return
	}
	if id == seed.PageHome {
		if p, err = a.completer.SortLive(r.Context(), id, seed.HomeSectionOrder); err != nil {
			writeStoreError(w, "sort page", err)
			return
		}
	}
	a.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, p)
}

// PageDelete removes a page with its draft.
func (a *Admin) PageDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed, err := a.content.Pages.Delete(r.Context(), id)
	if err != nil {
		writeStoreError(w, "delete page", err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}
	a.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, okResponse{Success: true})
}

// --- News, resources, global content ---

// NewsSave creates or updates a news item. PUT takes the id from the URL.
func (a *Admin) NewsSave(w http.ResponseWriter, r *http.Request) {
	var n models.NewsItem
	if !a.decodeWithID(w, r, &n, &n.ID) {
		return
	}
	saved, err := a.content.News.Save(r.Context(), n)
	a.finishSave(w, r, "save news", saved, err)
}

// NewsDelete removes a news item.
func (a *Admin) NewsDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := a.content.News.Delete(r.Context(), chi.URLParam(r, "id"))
	a.finishDelete(w, r, "delete news", removed, err)
}

// ResourceSave creates or updates a resource.
func (a *Admin) ResourceSave(w http.ResponseWriter, r *http.Request) {
	var res models.Resource
	if !a.decodeWithID(w, r, &res, &res.ID) {
		return
	}
	saved, err := a.content.Resources.Save(r.Context(), res)
	a.finishSave(w, r, "save resource", saved, err)
}

// ResourceDelete removes a resource.
func (a *Admin) ResourceDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := a.content.Resources.Delete(r.Context(), chi.URLParam(r, "id"))
	a.finishDelete(w, r, "delete resource", removed, err)
}

// GlobalSave creates or updates a global content entry.
func (a *Admin) GlobalSave(w http.ResponseWriter, r *http.Request) {
	var g models.GlobalContent
	if !a.decodeWithID(w, r, &g, &g.ID) {
		return
	}
	saved, err := a.content.Global.Save(r.Context(), g)
	a.finishSave(w, r, "save global content", saved, err)
}

// GlobalDelete removes a global content entry.
func (a *Admin) GlobalDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := a.content.Global.Delete(r.Context(), chi.URLParam(r, "id"))
	a.finishDelete(w, r, "delete global content", removed, err)
}

// --- Media library ---

// MediaList returns the media library, optionally filtered by ?tag=.
func (a *Admin) MediaList(w http.ResponseWriter, r *http.Request) {
	if tag := r.URL.Query().Get("tag"); tag != "" {
		writeJSON(w, http.StatusOK, a.content.Media.ByTag(r.Context(), tag))
		return
	}
	writeJSON(w, http.StatusOK, a.content.Media.All(r.Context()))
}

// MediaSave records a media item that already has a URL, such as an
// external image.
func (a *Admin) MediaSave(w http.ResponseWriter, r *http.Request) {
	var m models.MediaItem
	if !a.decodeWithID(w, r, &m, &m.ID) {
		return
	}
	saved, err := a.content.Media.Save(r.Context(), m)
	a.finishSave(w, r, "save media", saved, err)
}

// --- Structure ---

// StructureSave replaces the navigation menu and footer.
func (a *Admin) StructureSave(w http.ResponseWriter, r *http.Request) {
	var ws models.WebsiteStructure
	if err := decodeJSON(w, r, &ws); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := a.content.Structure.Save(r.Context(), ws)
	if err != nil {
		writeStoreError(w, "save structure", err)
		return
	}
	a.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, saved)
}

// MenuItemSave creates or updates one main menu entry.
func (a *Admin) MenuItemSave(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if !a.decodeWithID(w, r, &item, &item.ID) {
		return
	}
	saved, err := a.content.Structure.SaveMenuItem(r.Context(), item)
	a.finishSave(w, r, "save menu item", saved, err)
}

// MenuItemDelete removes one main menu entry.
func (a *Admin) MenuItemDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := a.content.Structure.DeleteMenuItem(r.Context(), chi.URLParam(r, "id"))
	a.finishDelete(w, r, "delete menu item", removed, err)
}

// FooterSectionSave creates or updates one footer column.
func (a *Admin) FooterSectionSave(w http.ResponseWriter, r *http.Request) {
	var sec models.FooterSection
	if !a.decodeWithID(w, r, &sec, &sec.ID) {
		return
	}
	saved, err := a.content.Structure.SaveFooterSection(r.Context(), sec)
	a.finishSave(w, r, "save footer section", saved, err)
}

// FooterSectionDelete removes one footer column.
func (a *Admin) FooterSectionDelete(w http.ResponseWriter, r *http.Request) {
	removed, err := a.content.Structure.DeleteFooterSection(r.Context(), chi.URLParam(r, "id"))
	a.finishDelete(w, r, "delete footer section", removed, err)
}

// --- Site ---

// Reset wipes the content store back to the defaults. The admin marker
// and language preference survive.
func (a *Admin) Reset(w http.ResponseWriter, r *http.Request) {
	if err := seed.Reset(r.Context(), a.content, a.pub); err != nil {
		slog.Error("content reset failed", "error", err)
		writeError(w, http.StatusInternalServerError, "reset failed")
		return
	}
	a.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, okResponse{Success: true})
}

// Recent returns the latest edits, newest first. Supports ?limit=.
func (a *Admin) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	writeJSON(w, http.StatusOK, a.content.Recent.Recent(r.Context(), limit))
}

// decodeWithID decodes the body into v and, for routes with an {id}
// parameter, forces the record id to match it.
func (a *Admin) decodeWithID(w http.ResponseWriter, r *http.Request, v any, id *string) bool {
	if err := decodeJSON(w, r, v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	if urlID := chi.URLParam(r, "id"); urlID != "" {
		if *id != "" && *id != urlID {
			writeError(w, http.StatusBadRequest, "id does not match the URL")
			return false
		}
		*id = urlID
	}
	return true
}

func (a *Admin) finishSave(w http.ResponseWriter, r *http.Request, op string, saved any, err error) {
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	a.cache.InvalidateAll(r.Context())
	status := http.StatusOK
	if r.Method == http.MethodPost {
		status = http.StatusCreated
	}
	writeJSON(w, status, saved)
}

func (a *Admin) finishDelete(w http.ResponseWriter, r *http.Request, op string, removed bool, err error) {
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	a.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, okResponse{Success: true})
}

// etag formats a page version as a strong entity tag.
func etag(version int64) string {
	return fmt.Sprintf("%q", strconv.FormatInt(version, 10))
}

// parseETag accepts "3", 3, or W/"3".
func parseETag(s string) (int64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "W/")
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid If-Match version %q", s)
	}
	return v, nil
}
