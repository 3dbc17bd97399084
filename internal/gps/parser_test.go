package gps

import (
	"fmt"
	"math"
	"testing"

	nmea "github.com/adrianmo/go-nmea"
)

func nmeaLine(payload string) string {
	ck := byte(0)
	for i := 0; i < len(payload); i++ {
		ck ^= payload[i]
	}
	return fmt.Sprintf("$%s*%02X\r\n", payload, ck)
}

const rmcPayload = "GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W"

func TestFeedRMC(t *testing.T) {
	var p Parser
	updates := p.Feed([]byte(nmeaLine(rmcPayload)))
	if len(updates) != 1 || updates[0].Fix == nil {
		t.Fatalf("expected one fix update, got %+v", updates)
	}
	f := *updates[0].Fix
	if f.Hours != 12 || f.Minutes != 35 || f.Seconds != 19 {
		t.Fatalf("bad time: %02d:%02d:%v", f.Hours, f.Minutes, f.Seconds)
	}
	if f.Day != 23 || f.Month != 3 || f.Year != 94 {
		t.Fatalf("bad date: %d/%d/%d", f.Day, f.Month, f.Year)
	}
	if !f.Valid {
		t.Fatalf("expected valid flag")
	}
	want := Coordinate{Degrees: 48, Minutes: 7.038, Hemisphere: 'N'}
	if f.Latitude != want {
		t.Fatalf("bad latitude: %+v", f.Latitude)
	}
	if f.Longitude.Degrees != 11 || f.Longitude.Hemisphere != 'E' {
		t.Fatalf("bad longitude: %+v", f.Longitude)
	}
	if f.SpeedKnots != 22.4 || f.CourseDeg != 84.4 {
		t.Fatalf("bad speed/course: %v/%v", f.SpeedKnots, f.CourseDeg)
	}
}

// Cross-check our DMS fields against the reference decoder's decimal output.
func TestFeedRMCAgainstReferenceDecoder(t *testing.T) {
	line := nmeaLine(rmcPayload)

	var p Parser
	updates := p.Feed([]byte(line))
	if len(updates) != 1 {
		t.Fatalf("expected one update")
	}
	f := *updates[0].Fix

	ref, err := nmea.Parse(line[:len(line)-2])
	if err != nil {
		t.Fatalf("reference parse: %v", err)
	}
	rmc := ref.(nmea.RMC)

	lat := float64(f.Latitude.Degrees) + f.Latitude.Minutes/60
	lon := float64(f.Longitude.Degrees) + f.Longitude.Minutes/60
	if math.Abs(lat-rmc.Latitude) > 1e-9 {
		t.Fatalf("latitude disagrees with reference: %v vs %v", lat, rmc.Latitude)
	}
	if math.Abs(lon-rmc.Longitude) > 1e-9 {
		t.Fatalf("longitude disagrees with reference: %v vs %v", lon, rmc.Longitude)
	}
}

func TestChecksumMismatchYieldsNothing(t *testing.T) {
	var p Parser
	line := []byte(nmeaLine(rmcPayload))
	line[len(line)-4] = '0'
	line[len(line)-3] = '0'
	if updates := p.Feed(line); len(updates) != 0 {
		t.Fatalf("expected no updates, got %d", len(updates))
	}
	if p.Fix().Valid {
		t.Fatalf("corrupt sentence must not change state")
	}
	if p.Stats().CRCFails != 1 {
		t.Fatalf("expected one CRC failure, got %d", p.Stats().CRCFails)
	}
}

func TestResyncAfterGarbage(t *testing.T) {
	var p Parser
	stream := append([]byte("\xffnoise$GPRMC,half..."), []byte(nmeaLine(rmcPayload))...)
	updates := p.Feed(stream)
	if len(updates) != 1 || updates[0].Fix == nil || !updates[0].Fix.Valid {
		t.Fatalf("expected recovery on next well-formed sentence, got %+v", updates)
	}
}

func TestOverflowResetsBuffer(t *testing.T) {
	var p Parser
	long := make([]byte, 0, 256)
	long = append(long, '$')
	for i := 0; i < 200; i++ {
		long = append(long, 'A')
	}
	if updates := p.Feed(long); len(updates) != 0 {
		t.Fatalf("oversized garbage must not produce updates")
	}
	if p.Stats().Overflows != 1 {
		t.Fatalf("expected overflow counter increment")
	}
	if updates := p.Feed([]byte(nmeaLine(rmcPayload))); len(updates) != 1 {
		t.Fatalf("parser did not recover after overflow")
	}
}

func TestUnsupportedSentenceIgnored(t *testing.T) {
	var p Parser
	if updates := p.Feed([]byte(nmeaLine("GPZDA,160012.71,11,03,2004,-1,00"))); len(updates) != 0 {
		t.Fatalf("unsupported type must be silently ignored")
	}
	// Unknown talker prefix on a known type.
	if updates := p.Feed([]byte(nmeaLine("XXRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W"))); len(updates) != 0 {
		t.Fatalf("unknown talker must be silently ignored")
	}
}

func TestTalkerPrefixesMapToSameDecoder(t *testing.T) {
	for _, talker := range []string{"GP", "GL", "GN"} {
		var p Parser
		payload := talker + rmcPayload[2:]
		updates := p.Feed([]byte(nmeaLine(payload)))
		if len(updates) != 1 || !updates[0].Fix.Valid {
			t.Fatalf("talker %s: expected a valid fix", talker)
		}
	}
}

func TestByteAtATimeFeeding(t *testing.T) {
	var p Parser
	total := 0
	for _, b := range []byte(nmeaLine(rmcPayload)) {
		total += len(p.Feed([]byte{b}))
	}
	if total != 1 {
		t.Fatalf("expected exactly one update, got %d", total)
	}
}

func TestGSASetsFixType(t *testing.T) {
	var p Parser
	updates := p.Feed([]byte(nmeaLine("GPGSA,A,3,04,05,,09,12,,,24,,,,,2.5,1.3,2.1")))
	if len(updates) != 1 {
		t.Fatalf("expected one update")
	}
	f := *updates[0].Fix
	if f.FixType != Fix3D {
		t.Fatalf("expected 3D fix, got %v", f.FixType)
	}
	if f.SatellitesInUse != 5 {
		t.Fatalf("expected 5 satellites in use, got %d", f.SatellitesInUse)
	}
	if f.PDOP != 2.5 || f.HDOP != 1.3 || f.VDOP != 2.1 {
		t.Fatalf("bad DOP: %v %v %v", f.PDOP, f.HDOP, f.VDOP)
	}
}

func TestGSVAggregation(t *testing.T) {
	var p Parser
	part1 := nmeaLine("GPGSV,2,1,07,07,79,048,42,02,51,062,43,26,36,256,42,27,27,138,42")
	part2 := nmeaLine("GPGSV,2,2,07,09,23,313,42,04,19,159,41,15,12,041,42")

	if updates := p.Feed([]byte(part1)); len(updates) != 0 {
		t.Fatalf("incomplete group must not emit satellites")
	}
	updates := p.Feed([]byte(part2))
	if len(updates) != 1 || updates[0].Satellites == nil {
		t.Fatalf("expected a satellite update, got %+v", updates)
	}
	sats := updates[0].Satellites
	if len(sats) != 7 {
		t.Fatalf("expected 7 satellites, got %d", len(sats))
	}
	if sats[0].PRN != 7 || sats[0].Elevation != 79 || sats[0].Azimuth != 48 || sats[0].SNR != 42 {
		t.Fatalf("bad first satellite: %+v", sats[0])
	}
	if p.Fix().SatellitesInView != 7 {
		t.Fatalf("expected 7 in view, got %d", p.Fix().SatellitesInView)
	}
}

func TestGGAQualityAndAltitude(t *testing.T) {
	var p Parser
	updates := p.Feed([]byte(nmeaLine("GNGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,")))
	if len(updates) != 1 {
		t.Fatalf("expected one update")
	}
	f := *updates[0].Fix
	if f.Quality != 1 || f.SatellitesInUse != 8 || f.Altitude != 545.4 {
		t.Fatalf("bad GGA decode: %+v", f)
	}
}

func TestMirrorForwardsOnlyValidSentences(t *testing.T) {
	var mirrored []string
	var p Parser
	p.OnSentence = func(raw []byte) { mirrored = append(mirrored, string(raw)) }

	good := nmeaLine(rmcPayload)
	bad := []byte(nmeaLine(rmcPayload))
	bad[10] ^= 0x01 // corrupt one byte, checksum now wrong

	p.Feed([]byte(good))
	p.Feed(bad)

	if len(mirrored) != 1 {
		t.Fatalf("expected exactly one mirrored sentence, got %d", len(mirrored))
	}
	if mirrored[0] != good[:len(good)-2] {
		t.Fatalf("mirror not byte-for-byte: %q", mirrored[0])
	}
}

func TestVoidRMCClearsValidity(t *testing.T) {
	var p Parser
	p.Feed([]byte(nmeaLine(rmcPayload)))
	updates := p.Feed([]byte(nmeaLine("GPRMC,123520,V,,,,,,,230394,003.1,W")))
	if len(updates) != 1 {
		t.Fatalf("expected an update")
	}
	if updates[0].Fix.Valid {
		t.Fatalf("void sentence must clear validity")
	}
	// Coordinates of the previous fix remain in the snapshot.
	if updates[0].Fix.Latitude.Degrees != 48 {
		t.Fatalf("void sentence must not clobber last coordinates")
	}
}

func TestWireFixWithoutDateUsesPlaceholder(t *testing.T) {
	var p Parser
	// GLL gives position and validity, GSA the fix type; no sentence with a
	// date has arrived yet.
	p.Feed([]byte(nmeaLine("GPGLL,4042.7680,N,07400.3600,W,123456.00,A")))
	p.Feed([]byte(nmeaLine("GPGSA,A,3,01,07,13,19,22,,,,,,,,1.8,1.0,1.5")))

	f := p.Fix()
	if !f.Usable() {
		t.Fatalf("GLL+GSA fix not usable: %+v", f)
	}
	w := WireFix(f, 40.7128, -74.006)
	if w.Date != "----------" {
		t.Fatalf("date = %q, want placeholder for a dateless record", w.Date)
	}
	if w.Time != "12:34:56" {
		t.Fatalf("time = %q", w.Time)
	}
}
