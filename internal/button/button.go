// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package button turns polled GPIO levels into debounced short and
// long-press actions.
package button

import "time"

// Action is the outcome of one poll.
type Action int

const (
	None Action = iota
	Short
	Long
)

func (a Action) String() string {
	switch a {
	case Short:
		return "short"
	case Long:
		return "long"
	}
	return "none"
}

// Sampler reads the current line value, 1 meaning electrically high.
type Sampler func() (int, error)

const (
	debounceInterval = 250 * time.Millisecond
	longPressHold    = 1000 * time.Millisecond
)

// Button tracks press state across polls. Long fires while the button is
// still held, once per press; Short fires on release. A new press within
// the debounce interval of the previous action is ignored.
type Button struct {
	sample    Sampler
	activeLow bool

	down      bool
	longFired bool
	pressedAt time.Time
	lastEvent time.Time
}

// New returns a Button over the given sampler. activeLow is true for the
// usual pull-up wiring where a press reads 0.
func New(sample Sampler, activeLow bool) *Button {
	return &Button{sample: sample, activeLow: activeLow}
}

// Poll samples the line and advances the press state machine. now is passed
// in so the scheduler's clock drives all timing.
func (b *Button) Poll(now time.Time) (Action, error) {
	v, err := b.sample()
	if err != nil {
		return None, err
	}
	pressed := v == 1
	if b.activeLow {
		pressed = v == 0
	}

	switch {
	case pressed && !b.down:
		if now.Sub(b.lastEvent) < debounceInterval {
			return None, nil
		}
		b.down = true
		b.longFired = false
		b.pressedAt = now

	case pressed && b.down:
		if !b.longFired && now.Sub(b.pressedAt) >= longPressHold {
			b.longFired = true
			b.lastEvent = now
			return Long, nil
		}

	case !pressed && b.down:
		b.down = false
		if !b.longFired {
			b.lastEvent = now
			return Short, nil
		}
	}
	return None, nil
}
