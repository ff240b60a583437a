// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging generates downscaled JPEG variants of uploaded images
// for the media library. Variants wider than the source are skipped to
// avoid upscaling.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// maxImagePixels caps the number of pixels to prevent memory bombs.
const maxImagePixels = 100_000_000

// ErrTooLarge is returned for images above maxImagePixels.
var ErrTooLarge = errors.New("imaging: image too large")

// Variant describes a single downscaled size.
type Variant struct {
	Name    string // e.g., "thumb", "md"
	Width   int    // Target width in pixels
	Quality int    // JPEG quality 1-100
}

// Thumb is the media library thumbnail.
var Thumb = Variant{Name: "thumb", Width: 400, Quality: 80}

// DefaultVariants are generated when no variants are requested.
var DefaultVariants = []Variant{
	Thumb,
	{Name: "md", Width: 1024, Quality: 80},
}

// ProcessedImage holds one generated variant ready for upload.
type ProcessedImage struct {
	Name        string // Variant name (e.g., "thumb")
	Width       int    // Actual output width
	Height      int    // Actual output height
	Data        []byte // JPEG-encoded image bytes
	ContentType string // Always "image/jpeg"
}

// Thumbnail scales original down to v.Width, preserving aspect ratio.
// It returns nil when the image is already no wider than v.Width.
func Thumbnail(original []byte, v Variant) (*ProcessedImage, error) {
	out, err := GenerateVariants(original, []Variant{v})
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return &out[0], nil
}

// GenerateVariants creates a JPEG variant of the source image for each
// variant narrower than the source. The source is decoded once.
func GenerateVariants(original []byte, variants []Variant) ([]ProcessedImage, error) {
	if len(variants) == 0 {
		variants = DefaultVariants
	}

	// Probe dimensions without fully decoding.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(original))
	if err != nil {
		return nil, fmt.Errorf("imaging: probe failed: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, cfg.Width, cfg.Height, maxImagePixels)
	}

	var src image.Image
	var results []ProcessedImage
	for _, v := range variants {
		if cfg.Width <= v.Width {
			continue
		}
		if src == nil {
			src, _, err = image.Decode(bytes.NewReader(original))
			if err != nil {
				return nil, fmt.Errorf("imaging: decode: %w", err)
			}
		}

		bounds := src.Bounds()
		height := int(float64(bounds.Dy()) * float64(v.Width) / float64(bounds.Dx()))
		if height < 1 {
			height = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, v.Width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: v.Quality}); err != nil {
			return nil, fmt.Errorf("imaging: encode %s: %w", v.Name, err)
		}
		results = append(results, ProcessedImage{
			Name:        v.Name,
			Width:       v.Width,
			Height:      height,
			Data:        buf.Bytes(),
			ContentType: "image/jpeg",
		})
	}
	return results, nil
}
