// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// Field keys shared by all layouts. A layout that lacks a key simply drops
// updates for it.
const (
	FieldTime   = "time"
	FieldZone   = "zone"
	FieldDate   = "date"
	FieldStatus = "status"
	FieldLat    = "lat"
	FieldLon    = "lon"
	FieldGrid   = "grid"
	FieldUTM    = "utm"
	FieldSats   = "sats"
	FieldFix    = "fix"
	FieldWarn   = "warn"
)

// Layout is a screen arrangement for one panel geometry.
type Layout struct {
	Size       image.Point
	BG         color.RGBA
	SepColor   color.RGBA
	Fields     []Field
	Separators []image.Rectangle
}

// Init paints the background and separator lines in a single full-screen
// push. Field content arrives later through the cache.
func (l Layout) Init(drv Driver) error {
	r := image.Rect(0, 0, l.Size.X, l.Size.Y)
	img := image.NewRGBA(r)
	draw.Draw(img, r, &image.Uniform{l.BG}, image.Point{}, draw.Src)
	for _, s := range l.Separators {
		draw.Draw(img, s, &image.Uniform{l.SepColor}, image.Point{}, draw.Src)
	}
	return drv.DrawRegion(r, img)
}

// TFTLayout is the 320x170 landscape arrangement: clock row on top, a
// separator, then two columns of position data and a warning bar at the
// bottom.
func TFTLayout() Layout {
	big := inconsolata.Bold8x16
	reg := inconsolata.Regular8x16
	return Layout{
		Size:     image.Pt(320, 170),
		BG:       Black,
		SepColor: Gray,
		Fields: []Field{
			{Key: FieldTime, Rect: image.Rect(0, 0, 176, 20), Face: big, BG: Black},
			{Key: FieldZone, Rect: image.Rect(176, 0, 320, 20), Face: reg, BG: Black},
			{Key: FieldDate, Rect: image.Rect(0, 22, 160, 40), Face: reg, BG: Black},
			{Key: FieldStatus, Rect: image.Rect(160, 22, 320, 40), Face: reg, BG: Black},
			{Key: FieldLat, Rect: image.Rect(0, 46, 160, 64), Face: reg, BG: Black},
			{Key: FieldLon, Rect: image.Rect(160, 46, 320, 64), Face: reg, BG: Black},
			{Key: FieldGrid, Rect: image.Rect(0, 68, 160, 86), Face: reg, BG: Black},
			{Key: FieldUTM, Rect: image.Rect(160, 68, 320, 86), Face: reg, BG: Black},
			{Key: FieldSats, Rect: image.Rect(0, 90, 160, 108), Face: reg, BG: Black},
			{Key: FieldFix, Rect: image.Rect(160, 90, 320, 108), Face: reg, BG: Black},
			{Key: FieldWarn, Rect: image.Rect(0, 148, 320, 170), Face: reg, BG: Black},
		},
		Separators: []image.Rectangle{
			image.Rect(0, 43, 320, 44),
			image.Rect(0, 145, 320, 146),
		},
	}
}

// OLEDLayout is the compact 128x64 arrangement for the ssd1306 panel:
// five text rows, no columns.
func OLEDLayout() Layout {
	face := basicfont.Face7x13
	return Layout{
		Size:     image.Pt(128, 64),
		BG:       Black,
		SepColor: White,
		Fields: []Field{
			{Key: FieldTime, Rect: image.Rect(0, 0, 128, 13), Face: face, BG: Black},
			{Key: FieldDate, Rect: image.Rect(0, 13, 128, 26), Face: face, BG: Black},
			{Key: FieldZone, Rect: image.Rect(0, 26, 128, 39), Face: face, BG: Black},
			{Key: FieldSats, Rect: image.Rect(0, 39, 128, 52), Face: face, BG: Black},
			{Key: FieldWarn, Rect: image.Rect(0, 52, 128, 64), Face: face, BG: Black},
		},
	}
}
