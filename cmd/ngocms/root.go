// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ngocms/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ngocms",
	Short: "Bilingual content server for the association website",
	Long: `ngocms stores the French/Arabic content of the association website
(pages, news, resources, media, menus) and serves it over a JSON API with an
admin editor backend.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd, resetCmd, exportCmd)
}

// initializeConfig loads the environment and installs the default logger.
func initializeConfig() error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg = c

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Debug("configuration loaded",
		"env", cfg.Env,
		"backend", cfg.StoreBackend,
	)
	return nil
}
