// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package tz

// Resolver tracks the currently selected zone and its daylight-saving
// state. Zone selection changes through two paths: manual cycling (short
// button press) and spatial auto-detection (long press, or once after the
// first usable fix). State lives only for the process lifetime.
type Resolver struct {
	index    int
	manual   bool
	autoDone bool

	dstActive bool
	// DST decision cache key; recomputed only when UTC day or hour moves.
	lastDSTDay  int
	lastDSTHour int
}

func NewResolver() *Resolver {
	return &Resolver{lastDSTDay: -1, lastDSTHour: -1}
}

// Index returns the selected zone index.
func (r *Resolver) Index() int { return r.index }

// ManuallySet reports whether the user has ever cycled the zone by hand.
func (r *Resolver) ManuallySet() bool { return r.manual }

// Cycle advances to the next zone in the table and marks the selection
// manual, which suppresses the one-shot auto-detection path.
func (r *Resolver) Cycle() {
	r.index = (r.index + 1) % len(Zones)
	r.manual = true
	r.invalidateDST()
}

// DetectFrom runs the spatial lookup and adopts the detected zone. When the
// position is outside table coverage the current zone is retained and false
// is returned.
func (r *Resolver) DetectFrom(lat, lon float64) bool {
	idx := Lookup(lat, lon)
	if idx == OutOfCoverage {
		return false
	}
	r.index = idx
	r.autoDone = true
	r.invalidateDST()
	return true
}

// AutoDetect is the one-shot boot path: it runs DetectFrom only if the user
// has never cycled manually and no detection has succeeded yet.
func (r *Resolver) AutoDetect(lat, lon float64) bool {
	if r.manual || r.autoDone {
		return false
	}
	return r.DetectFrom(lat, lon)
}

func (r *Resolver) invalidateDST() {
	r.lastDSTDay = -1
	r.lastDSTHour = -1
}

// UpdateDST refreshes the daylight-saving decision for the given UTC
// instant. The transition-date arithmetic runs only when the UTC day or
// hour differs from the cached key.
func (r *Resolver) UpdateDST(utcYear, utcMonth, utcDay, utcHour, utcMinute int) {
	if utcDay == r.lastDSTDay && utcHour == r.lastDSTHour {
		return
	}
	r.lastDSTDay = utcDay
	r.lastDSTHour = utcHour

	z := Zones[r.index]
	if !z.ObservesDST {
		r.dstActive = false
		return
	}
	r.dstActive = inDaylightWindow(utcYear, utcMonth, utcDay, utcHour*60+utcMinute, z.StdOffsetMin)
}

// DSTActive reports the cached daylight-saving decision.
func (r *Resolver) DSTActive() bool { return r.dstActive }

// OffsetMinutes returns the zone's current UTC offset in minutes.
func (r *Resolver) OffsetMinutes() int {
	z := Zones[r.index]
	if r.dstActive {
		return z.StdOffsetMin + dstShiftMin
	}
	return z.StdOffsetMin
}

// Abbreviation returns the display abbreviation for the current offset.
func (r *Resolver) Abbreviation() string {
	z := Zones[r.index]
	if r.dstActive {
		return z.DSTAbbr
	}
	return z.StdAbbr
}

// Label returns the full display label, e.g. "US Pacific (UTC-7)".
func (r *Resolver) Label() string {
	return label(Zones[r.index], r.OffsetMinutes())
}
