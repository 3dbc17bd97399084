// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"fmt"
	"image"
	"image/draw"
	"log"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// OLED drives an ssd1306 panel over I2C. Region updates land in a local
// 1-bit frame which is pushed whole; the controller's page addressing makes
// partial pushes not worth the bookkeeping.
type OLED struct {
	dev *ssd1306.Dev
	buf *image1bit.VerticalLSB
}

// OpenOLED opens the first I2C bus and initializes the panel. The ssd1306
// driver only speaks to address 0x3C; config validation enforces that.
// host.Init must have run before this is called.
func OpenOLED() (*OLED, error) {
	bus, err := i2creg.Open("")
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus: %w", err)
	}
	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ssd1306: %w", err)
	}
	log.Printf("display: ssd1306 initialized at 0x3C")
	return &OLED{
		dev: dev,
		buf: image1bit.NewVerticalLSB(dev.Bounds()),
	}, nil
}

func (o *OLED) Bounds() image.Rectangle { return o.dev.Bounds() }

func (o *OLED) DrawRegion(r image.Rectangle, img image.Image) error {
	r = r.Intersect(o.buf.Bounds())
	if r.Empty() {
		return nil
	}
	draw.Draw(o.buf, r, img, r.Min, draw.Src)
	return o.dev.Draw(o.dev.Bounds(), o.buf, image.Point{})
}
