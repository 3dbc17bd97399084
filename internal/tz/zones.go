// Package tz selects and applies the device's display timezone: a fixed US
// zone table, daylight-saving computation, a precomputed spatial lookup
// grid, and a resolver combining manual cycling with location auto-detect.
package tz

import "fmt"

// Zone is one selectable timezone. Offsets are minutes east of UTC.
type Zone struct {
	Name         string
	StdAbbr      string
	StdOffsetMin int
	DSTAbbr      string
	ObservesDST  bool
}

// Zone indices, in cycling order. The grid table returns these.
const (
	ZoneEastern = iota
	ZoneCentral
	ZoneMountain
	ZoneArizona
	ZonePacific
	ZoneAlaska
	ZoneHawaii
)

// dstShiftMin is the daylight adjustment added to the standard offset.
const dstShiftMin = 60

// Zones is the fixed regional table. Arizona and Hawaii do not observe DST.
var Zones = [...]Zone{
	{Name: "US Eastern", StdAbbr: "EST", StdOffsetMin: -5 * 60, DSTAbbr: "EDT", ObservesDST: true},
	{Name: "US Central", StdAbbr: "CST", StdOffsetMin: -6 * 60, DSTAbbr: "CDT", ObservesDST: true},
	{Name: "US Mountain", StdAbbr: "MST", StdOffsetMin: -7 * 60, DSTAbbr: "MDT", ObservesDST: true},
	{Name: "Arizona", StdAbbr: "MST", StdOffsetMin: -7 * 60, DSTAbbr: "MST", ObservesDST: false},
	{Name: "US Pacific", StdAbbr: "PST", StdOffsetMin: -8 * 60, DSTAbbr: "PDT", ObservesDST: true},
	{Name: "Alaska", StdAbbr: "AKST", StdOffsetMin: -9 * 60, DSTAbbr: "AKDT", ObservesDST: true},
	{Name: "Hawaii", StdAbbr: "HST", StdOffsetMin: -10 * 60, DSTAbbr: "HST", ObservesDST: false},
}

// label formats a zone for the display, e.g. "US Eastern (UTC-5)".
func label(z Zone, offsetMin int) string {
	h := offsetMin / 60
	m := offsetMin % 60
	if m == 0 {
		return fmt.Sprintf("%s (UTC%+d)", z.Name, h)
	}
	if m < 0 {
		m = -m
	}
	return fmt.Sprintf("%s (UTC%+d:%02d)", z.Name, h, m)
}
