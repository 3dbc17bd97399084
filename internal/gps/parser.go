// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package gps

import (
	"strconv"
	"strings"
)

// sentenceLimit bounds the accumulation buffer. The longest sentence we care
// about (GGA) fits in 82 characters per NMEA 0183; anything longer without a
// terminator is treated as garbage and dropped.
const sentenceLimit = 90

// sentenceType is the closed set of sentences the parser decodes. The
// talker prefix (GP/GL/GN) is stripped during classification, so the same
// tag covers all constellations.
type sentenceType int

const (
	sentenceUnknown sentenceType = iota
	sentenceRMC
	sentenceGGA
	sentenceGSA
	sentenceGSV
	sentenceGLL
	sentenceVTG
)

func classify(field string) sentenceType {
	if len(field) != 5 {
		return sentenceUnknown
	}
	switch field[:2] {
	case "GP", "GL", "GN":
	default:
		return sentenceUnknown
	}
	switch field[2:] {
	case "RMC":
		return sentenceRMC
	case "GGA":
		return sentenceGGA
	case "GSA":
		return sentenceGSA
	case "GSV":
		return sentenceGSV
	case "GLL":
		return sentenceGLL
	case "VTG":
		return sentenceVTG
	}
	return sentenceUnknown
}

// Update is one parser output. Exactly one of the fields is set: Fix for a
// new receiver snapshot, Satellites for a completed satellites-in-view group.
type Update struct {
	Fix        *FixRecord
	Satellites []SatelliteInfo
}

// Stats counts what the stream handler has seen since boot.
type Stats struct {
	CRCFails        int
	CleanSentences  int
	ParsedSentences int
	Overflows       int
}

// Parser turns a raw serial byte stream into FixRecord/SatelliteInfo
// updates. It is a plain value owned by the caller: no globals, no
// goroutines, bounded memory. Feed never returns an error; malformed input
// is discarded and the parser resynchronizes on the next '$'.
type Parser struct {
	buf    [sentenceLimit]byte
	n      int
	active bool

	// OnSentence, when set, receives every checksum-valid sentence verbatim
	// (from '$' through the checksum digits). The slice aliases the internal
	// buffer and must be copied if retained.
	OnSentence func(raw []byte)

	stats Stats

	// Receiver state accumulated across sentences.
	fix FixRecord

	// GSV group accumulation.
	svList []SatelliteInfo
}

// Stats returns stream handler counters.
func (p *Parser) Stats() Stats { return p.stats }

// Fix returns the current receiver snapshot without waiting for an update.
func (p *Parser) Fix() FixRecord { return p.fix }

// Feed consumes a chunk of serial input and returns zero or more updates.
func (p *Parser) Feed(data []byte) []Update {
	var updates []Update
	for _, b := range data {
		if u, ok := p.feedByte(b); ok {
			updates = append(updates, u)
		}
	}
	return updates
}

func (p *Parser) feedByte(b byte) (Update, bool) {
	switch {
	case b == '$':
		// Start marker always resynchronizes, even mid-sentence.
		p.buf[0] = '$'
		p.n = 1
		p.active = true
		return Update{}, false

	case !p.active:
		return Update{}, false

	case b == '\r' || b == '\n':
		p.active = false
		return p.finish()

	default:
		if b < 32 || b > 126 {
			return Update{}, false
		}
		if p.n >= sentenceLimit {
			// Oversized garbage: drop the partial sentence, keep memory flat.
			p.active = false
			p.n = 0
			p.stats.Overflows++
			return Update{}, false
		}
		p.buf[p.n] = b
		p.n++
		return Update{}, false
	}
}

// finish validates and dispatches the buffered sentence.
func (p *Parser) finish() (Update, bool) {
	raw := p.buf[:p.n]
	if len(raw) < 4 {
		return Update{}, false
	}
	star := -1
	for i := len(raw) - 1; i > 0; i-- {
		if raw[i] == '*' {
			star = i
			break
		}
	}
	if star == -1 || len(raw)-star != 3 {
		return Update{}, false
	}
	want, err := strconv.ParseUint(string(raw[star+1:]), 16, 8)
	if err != nil {
		return Update{}, false
	}
	var sum byte
	for _, c := range raw[1:star] {
		sum ^= c
	}
	if sum != byte(want) {
		p.stats.CRCFails++
		return Update{}, false
	}
	p.stats.CleanSentences++

	// Anything that checksums cleanly is forwarded verbatim, supported or not.
	if p.OnSentence != nil {
		p.OnSentence(raw)
	}

	fields := strings.Split(string(raw[1:star]), ",")
	st := classify(fields[0])
	if st == sentenceUnknown {
		// Not an error: receivers emit plenty of sentences we do not use.
		return Update{}, false
	}

	var (
		u  Update
		ok bool
	)
	switch st {
	case sentenceRMC:
		ok = p.decodeRMC(fields)
		if ok {
			u = p.snapshot()
		}
	case sentenceGGA:
		ok = p.decodeGGA(fields)
		if ok {
			u = p.snapshot()
		}
	case sentenceGSA:
		ok = p.decodeGSA(fields)
		if ok {
			u = p.snapshot()
		}
	case sentenceGLL:
		ok = p.decodeGLL(fields)
		if ok {
			u = p.snapshot()
		}
	case sentenceVTG:
		ok = p.decodeVTG(fields)
		if ok {
			u = p.snapshot()
		}
	case sentenceGSV:
		u, ok = p.decodeGSV(fields)
	}
	if ok {
		p.stats.ParsedSentences++
	}
	return u, ok
}

func (p *Parser) snapshot() Update {
	f := p.fix
	return Update{Fix: &f}
}

////////////////////////////////////////////////////////////////////////////
// Field decoders. Indices follow NMEA 0183; a decoder returns false on any
// malformed field and leaves prior state untouched where it can.

func (p *Parser) decodeRMC(f []string) bool {
	if len(f) < 10 {
		return false
	}
	if !p.decodeTime(f[1]) {
		return false
	}
	if !p.decodeDate(f[9]) {
		return false
	}
	if f[2] == "A" {
		lat, ok := decodeCoordinate(f[3], f[4], 2)
		if !ok {
			return false
		}
		lon, ok := decodeCoordinate(f[5], f[6], 3)
		if !ok {
			return false
		}
		spd, err := strconv.ParseFloat(f[7], 64)
		if err != nil {
			return false
		}
		course := 0.0
		if f[8] != "" {
			course, err = strconv.ParseFloat(f[8], 64)
			if err != nil {
				return false
			}
		}
		p.fix.Latitude = lat
		p.fix.Longitude = lon
		p.fix.SpeedKnots = spd
		p.fix.CourseDeg = course
		p.fix.Valid = true
	} else {
		p.fix.Valid = false
	}
	return true
}

func (p *Parser) decodeGLL(f []string) bool {
	if len(f) < 7 {
		return false
	}
	if !p.decodeTime(f[5]) {
		return false
	}
	if f[6] == "A" {
		lat, ok := decodeCoordinate(f[1], f[2], 2)
		if !ok {
			return false
		}
		lon, ok := decodeCoordinate(f[3], f[4], 3)
		if !ok {
			return false
		}
		p.fix.Latitude = lat
		p.fix.Longitude = lon
		p.fix.Valid = true
	} else {
		p.fix.Valid = false
	}
	return true
}

func (p *Parser) decodeGGA(f []string) bool {
	if len(f) < 12 {
		return false
	}
	if !p.decodeTime(f[1]) {
		return false
	}
	quality, err := strconv.Atoi(f[6])
	if err != nil {
		return false
	}
	sats, err := strconv.Atoi(f[7])
	if err != nil {
		return false
	}
	if hdop, err := strconv.ParseFloat(f[8], 64); err == nil {
		p.fix.HDOP = hdop
	}
	if quality > 0 {
		lat, ok := decodeCoordinate(f[2], f[3], 2)
		if !ok {
			return false
		}
		lon, ok := decodeCoordinate(f[4], f[5], 3)
		if !ok {
			return false
		}
		p.fix.Latitude = lat
		p.fix.Longitude = lon
		if alt, err := strconv.ParseFloat(f[9], 64); err == nil {
			p.fix.Altitude = alt
		}
	}
	p.fix.Quality = quality
	p.fix.SatellitesInUse = sats
	return true
}

func (p *Parser) decodeGSA(f []string) bool {
	if len(f) < 18 {
		return false
	}
	ft, err := strconv.Atoi(f[2])
	if err != nil || ft < 1 || ft > 3 {
		return false
	}
	used := 0
	for i := 3; i <= 14; i++ {
		if f[i] == "" {
			continue
		}
		if _, err := strconv.Atoi(f[i]); err != nil {
			return false
		}
		used++
	}
	pdop, err1 := strconv.ParseFloat(f[15], 64)
	hdop, err2 := strconv.ParseFloat(f[16], 64)
	vdop, err3 := strconv.ParseFloat(f[17], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	p.fix.FixType = FixType(ft)
	p.fix.PDOP = pdop
	p.fix.HDOP = hdop
	p.fix.VDOP = vdop
	if used > 0 {
		p.fix.SatellitesInUse = used
	}
	return true
}

func (p *Parser) decodeVTG(f []string) bool {
	if len(f) < 8 {
		return false
	}
	course := 0.0
	speed := 0.0
	var err error
	if f[1] != "" {
		if course, err = strconv.ParseFloat(f[1], 64); err != nil {
			return false
		}
	}
	if f[5] != "" {
		if speed, err = strconv.ParseFloat(f[5], 64); err != nil {
			return false
		}
	}
	p.fix.CourseDeg = course
	p.fix.SpeedKnots = speed
	return true
}

// decodeGSV accumulates one part of a satellites-in-view group and emits the
// assembled list when the final part arrives.
func (p *Parser) decodeGSV(f []string) (Update, bool) {
	if len(f) < 4 {
		return Update{}, false
	}
	total, err1 := strconv.Atoi(f[1])
	current, err2 := strconv.Atoi(f[2])
	inView, err3 := strconv.Atoi(f[3])
	if err1 != nil || err2 != nil || err3 != nil || total < 1 || current < 1 {
		return Update{}, false
	}

	if current == 1 {
		p.svList = p.svList[:0]
	}
	for i := 4; i < len(f) && i <= 16; i += 4 {
		if f[i] == "" {
			break
		}
		prn, err := strconv.Atoi(f[i])
		if err != nil {
			return Update{}, false
		}
		sat := SatelliteInfo{PRN: prn, Elevation: -1, Azimuth: -1, SNR: -1}
		if i+1 < len(f) {
			if v, err := strconv.Atoi(f[i+1]); err == nil {
				sat.Elevation = v
			}
		}
		if i+2 < len(f) {
			if v, err := strconv.Atoi(f[i+2]); err == nil {
				sat.Azimuth = v
			}
		}
		if i+3 < len(f) {
			if v, err := strconv.Atoi(f[i+3]); err == nil {
				sat.SNR = v
			}
		}
		p.svList = append(p.svList, sat)
	}

	p.fix.SatellitesInView = inView

	if current != total {
		return Update{}, false
	}
	out := make([]SatelliteInfo, len(p.svList))
	copy(out, p.svList)
	return Update{Satellites: out}, true
}

func (p *Parser) decodeTime(s string) bool {
	if s == "" {
		p.fix.Hours, p.fix.Minutes, p.fix.Seconds = 0, 0, 0
		return true
	}
	if len(s) < 6 {
		return false
	}
	h, err1 := strconv.Atoi(s[0:2])
	m, err2 := strconv.Atoi(s[2:4])
	sec, err3 := strconv.ParseFloat(s[4:], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	p.fix.Hours, p.fix.Minutes, p.fix.Seconds = h, m, sec
	return true
}

func (p *Parser) decodeDate(s string) bool {
	if s == "" {
		p.fix.Day, p.fix.Month, p.fix.Year = 0, 0, 0
		return true
	}
	if len(s) != 6 {
		return false
	}
	d, err1 := strconv.Atoi(s[0:2])
	m, err2 := strconv.Atoi(s[2:4])
	y, err3 := strconv.Atoi(s[4:6])
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	p.fix.Day, p.fix.Month, p.fix.Year = d, m, y
	return true
}

// decodeCoordinate parses ddmm.mmmm (degDigits=2) or dddmm.mmmm
// (degDigits=3) plus its hemisphere letter.
func decodeCoordinate(v, hemi string, degDigits int) (Coordinate, bool) {
	if len(v) <= degDigits || len(hemi) != 1 {
		return Coordinate{}, false
	}
	switch hemi[0] {
	case 'N', 'S', 'E', 'W':
	default:
		return Coordinate{}, false
	}
	deg, err := strconv.Atoi(v[:degDigits])
	if err != nil {
		return Coordinate{}, false
	}
	mins, err := strconv.ParseFloat(v[degDigits:], 64)
	if err != nil {
		return Coordinate{}, false
	}
	return Coordinate{Degrees: deg, Minutes: mins, Hemisphere: hemi[0]}, true
}
