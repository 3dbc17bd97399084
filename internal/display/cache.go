// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Field is one addressable text region on the screen.
type Field struct {
	Key  string
	Rect image.Rectangle
	Face font.Face
	BG   color.RGBA
}

type fieldState struct {
	Field
	text  string
	fg    color.RGBA
	drawn bool
}

// Cache tracks the last rendered (text, color) per field and repaints a
// field only when either changed. Updates for unknown keys are dropped so
// callers can share one update path across layouts with different fields.
type Cache struct {
	drv    Driver
	fields map[string]*fieldState
	draws  int
}

func NewCache(drv Driver, fields []Field) *Cache {
	c := &Cache{drv: drv, fields: make(map[string]*fieldState, len(fields))}
	for _, f := range fields {
		c.fields[f.Key] = &fieldState{Field: f}
	}
	return c
}

// Update sets a field's text and color, repainting only on change. The
// first Update for a field always paints.
func (c *Cache) Update(key, text string, fg color.RGBA) error {
	fs, ok := c.fields[key]
	if !ok {
		return nil
	}
	if fs.drawn && fs.text == text && fs.fg == fg {
		return nil
	}
	if err := c.paint(fs, text, fg); err != nil {
		return fmt.Errorf("field %s: %w", key, err)
	}
	fs.text = text
	fs.fg = fg
	fs.drawn = true
	return nil
}

// Invalidate forgets all cached values so the next update repaints every
// field. Used after the panel is cleared or re-initialized.
func (c *Cache) Invalidate() {
	for _, fs := range c.fields {
		fs.drawn = false
	}
}

// Draws returns the number of region pushes issued so far.
func (c *Cache) Draws() int { return c.draws }

func (c *Cache) paint(fs *fieldState, text string, fg color.RGBA) error {
	img := image.NewRGBA(fs.Rect)
	draw.Draw(img, fs.Rect, &image.Uniform{fs.BG}, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{fg},
		Face: fs.Face,
		Dot:  fixed.P(fs.Rect.Min.X+2, fs.Rect.Min.Y+fs.Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)

	c.draws++
	return c.drv.DrawRegion(fs.Rect, img)
}
