// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ngocms/internal/cache"
	"ngocms/internal/events"
	"ngocms/internal/handlers"
	"ngocms/internal/middleware"
	"ngocms/internal/router"
	"ngocms/internal/seed"
	"ngocms/internal/session"
	"ngocms/internal/storage"
	"ngocms/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the HTTP API server",
	Long: `The serve command opens the content store, seeds it on first run, makes
sure every known page carries its default sections, and serves the public
and admin API until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	// Local bus, relayed across instances when Valkey is available.
	bus := events.NewBus()
	var rc *cache.ResponseCache
	if b.valkey != nil {
		bridge := events.NewValkeyBridge(b.valkey, bus)
		go func() {
			if err := bridge.Run(ctx); err != nil {
				slog.Error("event bridge stopped", "error", err)
			}
		}()

		rc = cache.NewResponseCache(b.valkey, cache.DefaultResponseTTL)
		go rc.Watch(ctx, bus)
	} else {
		slog.Warn("valkey not configured, response cache and event relay disabled")
	}

	content := store.New(b.content, bus)
	if _, err := seed.Initialize(ctx, content); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	completer := store.NewCompleter(content.Pages, seed.Canonical())
	if err := completer.EnsureAll(ctx); err != nil {
		return fmt.Errorf("complete pages: %w", err)
	}

	// S3-compatible object storage is optional; uploads answer 503 without it.
	var storageClient *storage.Client
	if cfg.HasS3() {
		storageClient, err = storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
		if err != nil {
			return fmt.Errorf("init s3 storage: %w", err)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// In non-development environments, mark session cookies as Secure.
	sessionStore := session.NewStore(b.sessions, !cfg.IsDev())

	authHandlers, err := handlers.NewAuth(sessionStore, b.content, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	loginLimiter := middleware.NewRateLimiter(5, time.Minute)
	defer loginLimiter.Stop()

	r := router.New(sessionStore, router.Handlers{
		API:    handlers.NewAPI(content, rc),
		Admin:  handlers.NewAdmin(content, completer, rc, storageClient, bus),
		Auth:   authHandlers,
		Events: handlers.NewEvents(bus),
	}, router.Options{
		CORSOrigin:   cfg.CORSOrigin,
		LoginLimiter: loginLimiter,
	})

	// WriteTimeout stays zero: the event stream holds its response open.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       120 * time.Second,
		// Open event streams end when the signal arrives.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("shutdown signal received")

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
	return nil
}
