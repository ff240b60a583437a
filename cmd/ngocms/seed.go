// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"ngocms/internal/events"
	"ngocms/internal/seed"
	"ngocms/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Writes the default content if the store is empty",
	Long: `The seed command writes the default pages, news, resources and menus
unless the store has already been seeded, then adds any default section a
known page is missing. Edited content is never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend(cfg)
		if err != nil {
			return err
		}
		defer b.Close()

		ctx := cmd.Context()
		content := store.New(b.content, events.NewBus())
		seeded, err := seed.Initialize(ctx, content)
		if err != nil {
			return fmt.Errorf("seed content: %w", err)
		}
		if err := store.NewCompleter(content.Pages, seed.Canonical()).EnsureAll(ctx); err != nil {
			return fmt.Errorf("complete pages: %w", err)
		}
		slog.Info("seed finished", "written", seeded)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restores the default content, discarding every edit",
	Long: `The reset command deletes all stored content except the admin login
marker and the language preference, then writes the defaults again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirmed {
			return fmt.Errorf("reset discards all edits; pass --yes to confirm")
		}
		b, err := openBackend(cfg)
		if err != nil {
			return err
		}
		defer b.Close()

		bus := events.NewBus()
		if b.valkey != nil {
			// Relay the change so running servers drop their caches.
			events.NewValkeyBridge(b.valkey, bus)
		}
		return seed.Reset(cmd.Context(), store.New(b.content, bus), bus)
	},
}

var resetConfirmed bool

func init() {
	resetCmd.Flags().BoolVarP(&resetConfirmed, "yes", "y", false, "confirm the reset")
}
