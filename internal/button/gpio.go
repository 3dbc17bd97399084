// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package button

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/warthog618/go-gpiocdev"
)

// Line is a GPIO input line opened through the character device.
type Line struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// OpenLine requests the named line (e.g. "GPIO14") as a pulled-up input.
// chipPath may name a specific device; when empty every /dev/gpiochip* is
// tried until one exposes the line.
func OpenLine(chipPath, lineName string) (*Line, error) {
	var candidates []string
	if chipPath != "" {
		candidates = []string{chipPath}
	} else {
		entries, _ := os.ReadDir("/dev")
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), "gpiochip") {
				candidates = append(candidates, filepath.Join("/dev", e.Name()))
			}
		}
	}

	for _, path := range candidates {
		chip, err := gpiocdev.NewChip(path)
		if err != nil {
			continue
		}
		offset, err := chip.FindLine(lineName)
		if err != nil {
			_ = chip.Close()
			continue
		}
		line, err := chip.RequestLine(offset,
			gpiocdev.AsInput,
			gpiocdev.WithPullUp,
			gpiocdev.WithConsumer("gps-clock"))
		if err != nil {
			_ = chip.Close()
			continue
		}
		return &Line{chip: chip, line: line}, nil
	}
	return nil, fmt.Errorf("gpio line %q not found (or busy)", lineName)
}

// Sampler returns a Sampler reading the line.
func (l *Line) Sampler() Sampler {
	return l.line.Value
}

func (l *Line) Close() error {
	if l == nil || l.line == nil {
		return nil
	}
	err := l.line.Close()
	l.line = nil
	if l.chip != nil {
		_ = l.chip.Close()
		l.chip = nil
	}
	return err
}
