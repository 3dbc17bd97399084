// Package display renders the clock screen through a damage-tracking field
// cache: each field repaints only when its text or color changes, and every
// repaint pushes only that field's rectangle to the panel.
package display

import (
	"image"
	"image/color"
)

// Driver is a region-addressable panel. Implementations push the given
// image, whose bounds equal r, to the panel area r.
type Driver interface {
	Bounds() image.Rectangle
	DrawRegion(r image.Rectangle, img image.Image) error
}

// Panel colors. The monochrome backend collapses everything non-black to on.
var (
	Black  = color.RGBA{A: 0xFF}
	White  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Yellow = color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}
	Green  = color.RGBA{G: 0xFF, A: 0xFF}
	Red    = color.RGBA{R: 0xFF, A: 0xFF}
	Cyan   = color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}
	Gray   = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)
