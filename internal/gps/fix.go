package gps

import "fmt"

// FixType is the receiver's fix dimensionality as reported by GSA.
type FixType int

const (
	FixNone FixType = 1
	Fix2D   FixType = 2
	Fix3D   FixType = 3
)

func (t FixType) String() string {
	switch t {
	case Fix3D:
		return "3D"
	case Fix2D:
		return "2D"
	default:
		return "None"
	}
}

// Coordinate is a latitude or longitude exactly as transmitted: whole
// degrees, decimal minutes and the hemisphere letter. Kept undecoded so
// downstream caching can compare the fields for exact equality.
type Coordinate struct {
	Degrees    int
	Minutes    float64
	Hemisphere byte // 'N', 'S', 'E' or 'W'
}

// FixRecord is one immutable snapshot of the receiver state, emitted by the
// parser whenever a position-bearing sentence decodes cleanly. A record is
// superseded by the next one; it is never mutated after emission.
type FixRecord struct {
	// UTC time of day.
	Hours   int
	Minutes int
	Seconds float64

	// UTC date as transmitted (2-digit year).
	Day   int
	Month int
	Year  int

	Latitude  Coordinate
	Longitude Coordinate

	Valid      bool // RMC/GLL status flag
	Quality    int  // GGA fix quality (0 = invalid)
	FixType    FixType
	Altitude   float64 // meters above MSL
	SpeedKnots float64
	CourseDeg  float64

	SatellitesInUse  int
	SatellitesInView int
	HDOP             float64
	PDOP             float64
	VDOP             float64
}

// Usable reports whether this record may drive position-derived output:
// the validity flag must be set and the fix at least two-dimensional.
func (f FixRecord) Usable() bool {
	return f.Valid && f.FixType >= Fix2D
}

// SatelliteInfo is one satellite from a completed GSV group. Fields the
// receiver left empty are -1.
type SatelliteInfo struct {
	PRN       int
	Elevation int
	Azimuth   int
	SNR       int
}

// Fix is the JSON shape published over MQTT for external consumers.
type Fix struct {
	Time       string  `json:"time"` // e.g. "12:34:56"
	Date       string  `json:"date"` // e.g. "2025-12-06"
	Latitude   float64 `json:"lat"`  // decimal degrees
	Longitude  float64 `json:"lon"`  // decimal degrees
	SpeedKnots float64 `json:"speed_knots"`
	CourseDeg  float64 `json:"course_deg"`
	FixType    string  `json:"fix_type"`
	NumSat     int     `json:"num_sat"`
}

// WireFix flattens a record into the MQTT payload shape. A record with no
// date yet (position from GLL only) carries the display placeholder instead
// of a fabricated calendar date.
func WireFix(f FixRecord, lat, lon float64) Fix {
	date := "----------"
	if f.Day != 0 || f.Month != 0 || f.Year != 0 {
		date = fmt.Sprintf("%04d-%02d-%02d", 2000+f.Year, f.Month, f.Day)
	}
	return Fix{
		Time:       fmt.Sprintf("%02d:%02d:%02d", f.Hours, f.Minutes, int(f.Seconds)),
		Date:       date,
		Latitude:   lat,
		Longitude:  lon,
		SpeedKnots: f.SpeedKnots,
		CourseDeg:  f.CourseDeg,
		FixType:    f.FixType.String(),
		NumSat:     f.SatellitesInUse,
	}
}
