// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ngocms/internal/cache"
	"ngocms/internal/i18n"
	"ngocms/internal/markdown"
	"ngocms/internal/models"
	"ngocms/internal/store"
)

// API serves the public JSON API read by the site, plus the direct
// content write routes, which the router mounts behind the admin session.
type API struct {
	content *store.Content
	cache   *cache.ResponseCache
}

// NewAPI creates the public API handlers. rc may be nil.
func NewAPI(content *store.Content, rc *cache.ResponseCache) *API {
	return &API{content: content, cache: rc}
}

// responseKey is the cache key of a public response. Language-dependent
// responses pass the negotiated lang so each language is cached apart.
func responseKey(r *http.Request, lang string) string {
	key := r.URL.Path + "?" + r.URL.RawQuery
	if lang != "" {
		key += "#lang=" + lang
	}
	return key
}

// serveCached answers from the response cache when possible. build
// returns the value to encode and whether it exists. lang is empty for
// responses that read the same in every language.
func (a *API) serveCached(w http.ResponseWriter, r *http.Request, lang string, build func() (any, bool)) {
	if lang != "" {
		w.Header().Set("Vary", "Accept-Language, Cookie")
	}
	key := responseKey(r, lang)
	if body, ok := a.cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.Write(body)
		return
	}

	v, found := build()
	if !found {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("response encode failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	a.cache.Set(r.Context(), key, body)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.Write(body)
}

// ListPages returns the page index.
func (a *API) ListPages(w http.ResponseWriter, r *http.Request) {
	a.serveCached(w, r, "", func() (any, bool) {
		return a.content.Pages.All(r.Context()), true
	})
}

// GetPage returns the live copy of a page with its sections.
func (a *API) GetPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	a.serveCached(w, r, "", func() (any, bool) {
		p, ok := a.content.Pages.Live(r.Context(), id)
		return p, ok
	})
}

// CreatePage creates or replaces the live copy of a page.
func (a *API) CreatePage(w http.ResponseWriter, r *http.Request) {
	var p models.Page
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if p.ID == "" {
		p.ID = store.NewID()
	}
	saved, err := a.content.Pages.SaveLive(r.Context(), p)
	if err != nil {
		writeStoreError(w, "save page", err)
		return
	}
	a.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusCreated, saved)
}

// sectionRequest is the body of POST /api/section.
type sectionRequest struct {
	PageID  string         `json:"pageId"`
	Section models.Section `json:"section"`
}

// UpsertSection adds or replaces one section of a live page.
func (a *API) UpsertSection(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.PageID == "" {
		writeError(w, http.StatusBadRequest, "pageId is required")
		return
	}
	page, err := a.content.Pages.UpsertSection(r.Context(), req.PageID, req.Section)
	if err != nil {
		writeStoreError(w, "save section", err)
		return
	}
	a.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, page)
}

// DeleteSection removes one section of a live page.
func (a *API) DeleteSection(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageId")
	sectionID := chi.URLParam(r, "sectionId")
	removed, err := a.content.Pages.DeleteSection(r.Context(), pageID, sectionID)
	if err != nil {
		writeStoreError(w, "delete section", err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "section not found")
		return
	}
	a.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, okResponse{Success: true})
}

// ListNews returns news items, newest first. Supports ?category= and
// ?limit=.
func (a *API) ListNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	category := q.Get("category")

	a.serveCached(w, r, "", func() (any, bool) {
		items := a.content.News.Latest(r.Context(), 0)
		if category != "" {
			filtered := items[:0]
			for _, n := range items {
				if n.Category.FR == category || n.Category.AR == category {
					filtered = append(filtered, n)
				}
			}
			items = filtered
		}
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}
		return items, true
	})
}

// GetNews returns one news item by id or slug.
func (a *API) GetNews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	a.serveCached(w, r, "", func() (any, bool) {
		return a.findNews(r, id)
	})
}

func (a *API) findNews(r *http.Request, id string) (models.NewsItem, bool) {
	if n, ok := a.content.News.ByID(r.Context(), id); ok {
		return n, true
	}
	return a.content.News.BySlug(r.Context(), id)
}

// newsHTML is the rendered form of a news article in one language.
type newsHTML struct {
	ID    string `json:"id"`
	Lang  string `json:"lang"`
	Dir   string `json:"dir"`
	Title string `json:"title"`
	HTML  string `json:"html"`
}

// GetNewsHTML renders a news article's markdown body in the negotiated
// language.
func (a *API) GetNewsHTML(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lang := i18n.Negotiate(r)

	a.serveCached(w, r, lang, func() (any, bool) {
		n, ok := a.findNews(r, id)
		if !ok {
			return nil, false
		}
		html, err := markdown.TextHTML(n.Content, lang)
		if err != nil {
			slog.Warn("news markdown render failed", "id", n.ID, "error", err)
		}
		return newsHTML{
			ID:    n.ID,
			Lang:  lang,
			Dir:   i18n.Dir(lang),
			Title: n.Title.In(lang),
			HTML:  html,
		}, true
	})
}

// CreateNews creates or updates a news item.
func (a *API) CreateNews(w http.ResponseWriter, r *http.Request) {
	var n models.NewsItem
	if err := decodeJSON(w, r, &n); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := a.content.News.Save(r.Context(), n)
	if err != nil {
		writeStoreError(w, "save news", err)
		return
	}
	a.cache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusCreated, saved)
}

// ListResources returns resources, optionally filtered by ?type=.
func (a *API) ListResources(w http.ResponseWriter, r *http.Request) {
	typ := r.URL.Query().Get("type")
	a.serveCached(w, r, "", func() (any, bool) {
		if typ != "" {
			return a.content.Resources.ByType(r.Context(), typ), true
		}
		return a.content.Resources.All(r.Context()), true
	})
}

// ListGlobal returns global content, optionally filtered by ?category=.
func (a *API) ListGlobal(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	a.serveCached(w, r, "", func() (any, bool) {
		if category != "" {
			return a.content.Global.ByCategory(r.Context(), category), true
		}
		return a.content.Global.All(r.Context()), true
	})
}

// GetStructure returns the navigation menu and footer.
func (a *API) GetStructure(w http.ResponseWriter, r *http.Request) {
	a.serveCached(w, r, "", func() (any, bool) {
		ws, _ := a.content.Structure.Get(r.Context())
		return ws, true
	})
}
