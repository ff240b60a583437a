// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// ngocms API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"ngocms/internal/handlers"
	"ngocms/internal/middleware"
	"ngocms/internal/session"
)

// Handlers bundles the handler groups the router mounts.
type Handlers struct {
	API    *handlers.API
	Admin  *handlers.Admin
	Auth   *handlers.Auth
	Events *handlers.Events
}

// Options tunes the router.
type Options struct {
	// CORSOrigin is "*" or a comma-separated list of allowed origins.
	CORSOrigin string
	// LoginLimiter throttles login attempts. Nil disables throttling.
	LoginLimiter *middleware.RateLimiter
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, h Handlers, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(opts.CORSOrigin))
	r.Use(middleware.LoadSession(sessionStore))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Public content API.
		r.Get("/pages", h.API.ListPages)
		r.Get("/page/{id}", h.API.GetPage)
		r.Get("/news", h.API.ListNews)
		r.Get("/news/{id}", h.API.GetNews)
		r.Get("/news/{id}/html", h.API.GetNewsHTML)
		r.Get("/resources", h.API.ListResources)
		r.Get("/global", h.API.ListGlobal)
		r.Get("/structure", h.API.GetStructure)
		r.Get("/events", h.Events.Stream)

		// Content writes change live pages and news, so they need the
		// admin session like the admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Post("/pages", h.API.CreatePage)
			r.Post("/section", h.API.UpsertSection)
			r.Delete("/section/{pageId}/{sectionId}", h.API.DeleteSection)
			r.Post("/news", h.API.CreateNews)
		})

		r.Route("/admin", func(r chi.Router) {
			// Auth endpoints, accessible without a session.
			r.Group(func(r chi.Router) {
				if opts.LoginLimiter != nil {
					r.Use(opts.LoginLimiter.Middleware)
				}
				r.Post("/login", h.Auth.Login)
			})
			r.Post("/logout", h.Auth.Logout)
			r.Get("/session", h.Auth.Session)

			// Authenticated admin area.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/editor/{id}", func(r chi.Router) {
					r.Get("/", h.Admin.EditorGet)
					r.Put("/", h.Admin.EditorSave)
					r.Delete("/", h.Admin.EditorDiscard)
					r.Post("/publish", h.Admin.EditorPublish)
				})

				r.Post("/pages/{id}/complete", h.Admin.PageComplete)
				r.Delete("/pages/{id}", h.Admin.PageDelete)

				r.Route("/news", func(r chi.Router) {
					r.Post("/", h.Admin.NewsSave)
					r.Put("/{id}", h.Admin.NewsSave)
					r.Delete("/{id}", h.Admin.NewsDelete)
				})

				r.Route("/resources", func(r chi.Router) {
					r.Post("/", h.Admin.ResourceSave)
					r.Put("/{id}", h.Admin.ResourceSave)
					r.Delete("/{id}", h.Admin.ResourceDelete)
				})

				r.Route("/global", func(r chi.Router) {
					r.Post("/", h.Admin.GlobalSave)
					r.Put("/{id}", h.Admin.GlobalSave)
					r.Delete("/{id}", h.Admin.GlobalDelete)
				})

				r.Route("/media", func(r chi.Router) {
					r.Get("/", h.Admin.MediaList)
					r.Post("/", h.Admin.MediaSave)
					r.Post("/upload", h.Admin.MediaUpload)
					r.Put("/{id}", h.Admin.MediaSave)
					r.Delete("/{id}", h.Admin.MediaDelete)
				})

				r.Route("/structure", func(r chi.Router) {
					r.Put("/", h.Admin.StructureSave)
					r.Post("/menu", h.Admin.MenuItemSave)
					r.Put("/menu/{id}", h.Admin.MenuItemSave)
					r.Delete("/menu/{id}", h.Admin.MenuItemDelete)
					r.Post("/footer", h.Admin.FooterSectionSave)
					r.Put("/footer/{id}", h.Admin.FooterSectionSave)
					r.Delete("/footer/{id}", h.Admin.FooterSectionDelete)
				})

				r.Post("/reset", h.Admin.Reset)
				r.Get("/recent", h.Admin.Recent)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
