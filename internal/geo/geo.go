// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package geo derives display-ready spatial products from raw GPS
// coordinates: decimal degrees, the Maidenhead grid locator and a UTM
// projected coordinate.
package geo

import (
	"fmt"

	"github.com/relabs-tech/gps_clock/internal/gps"
)

// Position is a decimal-degree coordinate pair (north and east positive).
type Position struct {
	Lat float64
	Lon float64
}

// Decimal converts a transmitted degrees/minutes coordinate to signed
// decimal degrees.
func Decimal(c gps.Coordinate) float64 {
	dec := float64(c.Degrees) + c.Minutes/60.0
	if c.Hemisphere == 'S' || c.Hemisphere == 'W' {
		dec = -dec
	}
	return dec
}

// Derived bundles everything computed from one Position.
type Derived struct {
	Position Position
	Locator  string
	Easting  float64
	Northing float64
	ZoneNum  int
	ZoneLet  byte
}

// UTMString formats the projected coordinate the way it is shown on screen,
// e.g. "18T 583959 4507351".
func (d Derived) UTMString() string {
	return fmt.Sprintf("%d%c %.0f %.0f", d.ZoneNum, d.ZoneLet, d.Easting, d.Northing)
}

// Deriver computes Derived values with change-triggered caching: the
// conversion chain runs only when the raw degrees/minutes fields differ from
// the previous invocation. The projection is by far the most expensive step
// in the render path, so this is a contract, not an optimization.
type Deriver struct {
	lastLat gps.Coordinate
	lastLon gps.Coordinate
	have    bool
	cur     Derived

	computations int
}

// Computations returns how many times the full conversion chain has run.
func (d *Deriver) Computations() int { return d.computations }

// Derive returns the products for the given raw coordinates, reusing the
// cached result when the inputs are field-for-field identical.
func (d *Deriver) Derive(lat, lon gps.Coordinate) Derived {
	if d.have && lat == d.lastLat && lon == d.lastLon {
		return d.cur
	}
	pos := Position{Lat: Decimal(lat), Lon: Decimal(lon)}
	e, n, zn, zl := ToUTM(pos.Lat, pos.Lon)
	d.cur = Derived{
		Position: pos,
		Locator:  Maidenhead(pos.Lat, pos.Lon),
		Easting:  e,
		Northing: n,
		ZoneNum:  zn,
		ZoneLet:  zl,
	}
	d.lastLat = lat
	d.lastLon = lon
	d.have = true
	d.computations++
	return d.cur
}
