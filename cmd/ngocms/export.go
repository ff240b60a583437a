// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"ngocms/internal/kv"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dumps every stored key as YAML",
	Long: `The export command reads every key of the content store and writes it
as one YAML document, keys sorted, for backups and review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend(cfg)
		if err != nil {
			return err
		}
		defer b.Close()

		var w io.Writer = cmd.OutOrStdout()
		if exportOut != "" && exportOut != "-" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOut, err)
			}
			defer f.Close()
			w = f
		}
		return export(cmd.Context(), b.content, w)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

// export writes the store as a YAML mapping in key order. Values that are
// not valid JSON are written as strings.
func export(ctx context.Context, s kv.Store, w io.Writer) error {
	keys, err := s.Keys(ctx)
	if err != nil {
		return fmt.Errorf("export list keys: %w", err)
	}
	sort.Strings(keys)

	doc := make(yaml.MapSlice, 0, len(keys))
	for _, k := range keys {
		raw, ok, err := s.Get(ctx, k)
		if err != nil {
			return fmt.Errorf("export get %s: %w", k, err)
		}
		if !ok {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			v = string(raw)
		}
		doc = append(doc, yaml.MapItem{Key: k, Value: v})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("export encode: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("export write: %w", err)
	}
	slog.Info("store exported", "keys", len(doc))
	return nil
}
