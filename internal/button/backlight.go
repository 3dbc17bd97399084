package button

import (
	"fmt"
	"os"
	"strconv"
)

// Backlight steps a sysfs backlight through a fixed level sequence. The
// short-press handler calls Cycle; the device boots at the last (brightest)
// level.
type Backlight struct {
	path   string
	levels []int
	idx    int
}

func NewBacklight(path string, levels []int) *Backlight {
	return &Backlight{path: path, levels: levels, idx: len(levels) - 1}
}

// Level returns the currently selected brightness value.
func (b *Backlight) Level() int { return b.levels[b.idx] }

// Apply writes the current level to sysfs.
func (b *Backlight) Apply() error {
	v := strconv.Itoa(b.levels[b.idx])
	if err := os.WriteFile(b.path, []byte(v), 0644); err != nil {
		return fmt.Errorf("backlight write: %w", err)
	}
	return nil
}

// Cycle advances to the next level, wrapping around, and applies it.
func (b *Backlight) Cycle() error {
	b.idx = (b.idx + 1) % len(b.levels)
	return b.Apply()
}
