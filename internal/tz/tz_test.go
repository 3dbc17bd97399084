package tz

import "testing"

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		y, m, d int
		want    int
	}{
		{2026, 3, 8, 0},   // Sunday, 2nd Sunday of March 2026
		{2026, 11, 1, 0},  // Sunday, 1st Sunday of November 2026
		{2026, 8, 29, 6},  // Saturday
		{2024, 2, 29, 4},  // leap day, Thursday
		{2000, 1, 1, 6},   // Saturday
	}
	for _, tc := range tests {
		if got := dayOfWeek(tc.y, tc.m, tc.d); got != tc.want {
			t.Errorf("dayOfWeek(%d, %d, %d) = %d, want %d", tc.y, tc.m, tc.d, got, tc.want)
		}
	}
}

func TestNthSunday(t *testing.T) {
	tests := []struct {
		y, m, n int
		want    int
	}{
		{2026, 3, 2, 8},
		{2026, 11, 1, 1},
		{2025, 3, 2, 9},
		{2025, 11, 1, 2},
		{2024, 3, 2, 10},
		{2024, 11, 1, 3},
	}
	for _, tc := range tests {
		if got := nthSunday(tc.y, tc.m, tc.n); got != tc.want {
			t.Errorf("nthSunday(%d, %d, %d) = %d, want %d", tc.y, tc.m, tc.n, got, tc.want)
		}
	}
}

// Spring transition for US Eastern (UTC-5): 2nd Sunday of March, 02:00
// local standard = 07:00 UTC. The minute before must still be standard
// time, the minute at the boundary must be daylight time.
func TestSpringForwardBoundaryEastern(t *testing.T) {
	const stdOffset = -300 // Eastern
	tests := []struct {
		name               string
		month, day, minute int // UTC
		want               bool
	}{
		{"eve of transition day", 3, 7, 23 * 60, false},
		{"one minute before", 3, 8, 6*60 + 59, false},
		{"at boundary", 3, 8, 7 * 60, true},
		{"one minute after", 3, 8, 7*60 + 1, true},
		{"midsummer", 7, 4, 12 * 60, true},
		{"january", 1, 15, 12 * 60, false},
	}
	for _, tc := range tests {
		got := inDaylightWindow(2026, tc.month, tc.day, tc.minute, stdOffset)
		if got != tc.want {
			t.Errorf("%s: inDaylightWindow = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// Fall transition for US Pacific (UTC-8 standard): 1st Sunday of November,
// 02:00 local daylight = 09:00 UTC.
func TestFallBackBoundaryPacific(t *testing.T) {
	const stdOffset = -480 // Pacific
	tests := []struct {
		name               string
		month, day, minute int // UTC
		want               bool
	}{
		{"one minute before", 11, 1, 8*60 + 59, true},
		{"at boundary", 11, 1, 9 * 60, false},
		{"one minute after", 11, 1, 9*60 + 1, false},
		{"late november", 11, 20, 12 * 60, false},
	}
	for _, tc := range tests {
		got := inDaylightWindow(2026, tc.month, tc.day, tc.minute, stdOffset)
		if got != tc.want {
			t.Errorf("%s: inDaylightWindow = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLookupInteriorPoints(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     int
	}{
		{"New York", 40.7128, -74.0060, ZoneEastern},
		{"Atlanta", 33.7490, -84.3880, ZoneEastern},
		{"Detroit", 42.3314, -83.0458, ZoneEastern},
		{"Miami", 25.7617, -80.1918, ZoneEastern},
		{"Chicago", 41.8781, -87.6298, ZoneCentral},
		{"Dallas", 32.7767, -96.7970, ZoneCentral},
		{"Nashville", 36.1627, -86.7816, ZoneCentral},
		{"Minneapolis", 44.9778, -93.2650, ZoneCentral},
		{"Denver", 39.7392, -104.9903, ZoneMountain},
		{"El Paso", 31.7619, -106.4850, ZoneMountain},
		{"Salt Lake City", 40.7608, -111.8910, ZoneMountain},
		{"Boise", 43.6150, -116.2023, ZoneMountain},
		{"Phoenix", 33.4484, -112.0740, ZoneArizona},
		{"Tucson", 32.2226, -110.9747, ZoneArizona},
		{"Los Angeles", 34.0522, -118.2437, ZonePacific},
		{"Seattle", 47.6062, -122.3321, ZonePacific},
		{"Las Vegas", 36.1699, -115.1398, ZonePacific},
		{"Anchorage", 61.2181, -149.9003, ZoneAlaska},
		{"Honolulu", 21.3069, -157.8583, ZoneHawaii},
	}
	for _, tc := range tests {
		if got := Lookup(tc.lat, tc.lon); got != tc.want {
			t.Errorf("%s: Lookup(%v, %v) = %d, want %d", tc.name, tc.lat, tc.lon, got, tc.want)
		}
	}
}

func TestLookupOutOfCoverage(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
	}{
		{"London", 51.5074, -0.1278},
		{"Mexico City", 19.4326, -99.1332},
		{"mid Atlantic", 35.0, -40.0},
		{"north of grid", 55.0, -100.0},
	}
	for _, tc := range tests {
		if got := Lookup(tc.lat, tc.lon); got != OutOfCoverage {
			t.Errorf("%s: Lookup(%v, %v) = %d, want OutOfCoverage", tc.name, tc.lat, tc.lon, got)
		}
	}
}

func TestResolverCycleWrapsAndMarksManual(t *testing.T) {
	r := NewResolver()
	if r.ManuallySet() {
		t.Fatal("fresh resolver reports manual selection")
	}
	for i := 1; i <= len(Zones); i++ {
		r.Cycle()
		want := i % len(Zones)
		if r.Index() != want {
			t.Fatalf("after %d cycles index = %d, want %d", i, r.Index(), want)
		}
	}
	if !r.ManuallySet() {
		t.Error("Cycle did not mark selection manual")
	}
}

func TestResolverDetectRetainsZoneOutOfCoverage(t *testing.T) {
	r := NewResolver()
	if !r.DetectFrom(39.7392, -104.9903) {
		t.Fatal("DetectFrom failed for Denver")
	}
	if r.Index() != ZoneMountain {
		t.Fatalf("index = %d, want %d", r.Index(), ZoneMountain)
	}
	if r.DetectFrom(51.5074, -0.1278) {
		t.Error("DetectFrom succeeded for London")
	}
	if r.Index() != ZoneMountain {
		t.Errorf("out-of-coverage detection changed index to %d", r.Index())
	}
}

func TestResolverAutoDetectRunsOnce(t *testing.T) {
	r := NewResolver()
	if !r.AutoDetect(41.8781, -87.6298) {
		t.Fatal("first AutoDetect did not run")
	}
	if r.Index() != ZoneCentral {
		t.Fatalf("index = %d, want %d", r.Index(), ZoneCentral)
	}
	if r.AutoDetect(40.7128, -74.0060) {
		t.Error("second AutoDetect ran after a successful detection")
	}
}

func TestResolverAutoDetectSuppressedByManual(t *testing.T) {
	r := NewResolver()
	r.Cycle()
	if r.AutoDetect(41.8781, -87.6298) {
		t.Error("AutoDetect ran after a manual cycle")
	}
}

func TestResolverOffsetAndAbbreviation(t *testing.T) {
	r := NewResolver() // Eastern
	r.UpdateDST(2026, 1, 15, 12, 0)
	if r.DSTActive() {
		t.Fatal("DST active in January")
	}
	if got := r.OffsetMinutes(); got != -300 {
		t.Errorf("winter offset = %d, want -300", got)
	}
	if got := r.Abbreviation(); got != "EST" {
		t.Errorf("winter abbreviation = %q, want EST", got)
	}
	if got := r.Label(); got != "US Eastern (UTC-5)" {
		t.Errorf("winter label = %q", got)
	}

	r.UpdateDST(2026, 7, 4, 12, 0)
	if !r.DSTActive() {
		t.Fatal("DST inactive in July")
	}
	if got := r.OffsetMinutes(); got != -240 {
		t.Errorf("summer offset = %d, want -240", got)
	}
	if got := r.Abbreviation(); got != "EDT" {
		t.Errorf("summer abbreviation = %q, want EDT", got)
	}
	if got := r.Label(); got != "US Eastern (UTC-4)" {
		t.Errorf("summer label = %q", got)
	}
}

func TestResolverArizonaNeverShifts(t *testing.T) {
	r := NewResolver()
	if !r.DetectFrom(33.4484, -112.0740) {
		t.Fatal("DetectFrom failed for Phoenix")
	}
	r.UpdateDST(2026, 7, 4, 12, 0)
	if r.DSTActive() {
		t.Error("Arizona reports DST active")
	}
	if got := r.OffsetMinutes(); got != -420 {
		t.Errorf("Arizona offset = %d, want -420", got)
	}
	if got := r.Abbreviation(); got != "MST" {
		t.Errorf("Arizona abbreviation = %q, want MST", got)
	}
}

// UpdateDST caches on (UTC day, hour): a second call with the same key must
// not rerun the window arithmetic, and a zone change must invalidate it.
func TestResolverDSTCacheInvalidation(t *testing.T) {
	r := NewResolver() // Eastern
	r.UpdateDST(2026, 7, 4, 12, 0)
	if !r.DSTActive() {
		t.Fatal("DST inactive in July for Eastern")
	}
	// Switch to Arizona; a call with the same (day, hour) key must still
	// pick up the new zone's rule.
	if !r.DetectFrom(33.4484, -112.0740) {
		t.Fatal("DetectFrom failed for Phoenix")
	}
	r.UpdateDST(2026, 7, 4, 12, 0)
	if r.DSTActive() {
		t.Error("stale DST decision survived a zone change")
	}
}
