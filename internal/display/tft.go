// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"fmt"
	"image"
	"image/color"
	"log"

	gc9307 "periph.io/gc9307"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// TFTOptions selects the SPI port, control pins and panel geometry for the
// GC9307 panel.
type TFTOptions struct {
	SPIPort      string
	SpeedHz      int
	RSTPin       string
	DCPin        string
	CSPin        string
	BLPin        string
	Width        int
	Height       int
	RowOffset    int
	ColumnOffset int
	RotationDeg  int
}

// TFT drives a GC9307 panel over SPI.
type TFT struct {
	dev    gc9307.Device
	bounds image.Rectangle
}

// OpenTFT opens the SPI port and initializes the panel. host.Init must have
// run before this is called.
func OpenTFT(opts TFTOptions) (*TFT, error) {
	port, err := spireg.Open(opts.SPIPort)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI port %s: %w", opts.SPIPort, err)
	}
	conn, err := port.Connect(physic.Frequency(opts.SpeedHz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SPI port %s: %w", opts.SPIPort, err)
	}

	rotation, err := rotationFor(opts.RotationDeg)
	if err != nil {
		return nil, err
	}

	dev := gc9307.New(conn,
		gpioreg.ByName(opts.RSTPin),
		gpioreg.ByName(opts.DCPin),
		gpioreg.ByName(opts.CSPin),
		gpioreg.ByName(opts.BLPin))
	dev.Configure(gc9307.Config{
		Width:        int16(opts.Width),
		Height:       int16(opts.Height),
		Rotation:     rotation,
		RowOffset:    int16(opts.RowOffset),
		ColumnOffset: int16(opts.ColumnOffset),
		FrameRate:    gc9307.FRAMERATE_60,
		VSyncLines:   gc9307.MAX_VSYNC_SCANLINES,
		UseCS:        opts.CSPin != "",
	})
	log.Printf("display: gc9307 initialized on %s (%dx%d)", opts.SPIPort, opts.Width, opts.Height)

	// Width/Height are panel-native; after a 90 or 270 degree rotation the
	// drawable surface is transposed.
	w, h := opts.Width, opts.Height
	if opts.RotationDeg == 90 || opts.RotationDeg == 270 {
		w, h = h, w
	}
	return &TFT{dev: dev, bounds: image.Rect(0, 0, w, h)}, nil
}

func rotationFor(deg int) (gc9307.Rotation, error) {
	switch deg {
	case 0:
		return gc9307.NO_ROTATION, nil
	case 90:
		return gc9307.ROTATION_90, nil
	case 180:
		return gc9307.ROTATION_180, nil
	case 270:
		return gc9307.ROTATION_270, nil
	}
	return 0, fmt.Errorf("unsupported display rotation: %d", deg)
}

func (t *TFT) Bounds() image.Rectangle { return t.bounds }

// DrawRegion converts the region to an RGBA scanline buffer and pushes it
// in one panel transaction.
func (t *TFT) DrawRegion(r image.Rectangle, img image.Image) error {
	r = r.Intersect(t.bounds)
	if r.Empty() {
		return nil
	}
	w, h := r.Dx(), r.Dy()
	buf := make([]color.RGBA, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf[y*w+x] = color.RGBAModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.RGBA)
		}
	}
	return t.dev.FillRectangleWithBuffer(int16(r.Min.X), int16(r.Min.Y), int16(w), int16(h), buf)
}
