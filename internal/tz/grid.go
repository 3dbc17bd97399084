package tz

// OutOfCoverage is returned by Lookup for coordinates outside the table.
// Callers must keep their previously selected zone in that case.
const OutOfCoverage = -1

// Bounding boxes for the two zones detached from the contiguous band, and
// the Arizona rectangle nested inside the Mountain band.
var (
	alaskaBox  = box{latMin: 51.0, latMax: 71.5, lonMin: -170.0, lonMax: -129.5}
	hawaiiBox  = box{latMin: 18.5, latMax: 22.75, lonMin: -161.0, lonMax: -154.5}
	arizonaBox = box{latMin: 31.30, latMax: 37.00, lonMin: -114.85, lonMax: -109.05}
)

type box struct {
	latMin, latMax float64
	lonMin, lonMax float64
}

func (b box) contains(lat, lon float64) bool {
	return lat >= b.latMin && lat < b.latMax && lon >= b.lonMin && lon < b.lonMax
}

// Lookup classifies a coordinate into a zone index, or OutOfCoverage.
//
// The contiguous band is resolved through a precomputed grid: one row per
// 0.25° of latitude, each row holding the three longitude thresholds that
// split it into Eastern/Central/Mountain/Pacific. The detached zones and
// the Arizona carve-out are checked first as plain rectangles.
func Lookup(lat, lon float64) int {
	switch {
	case alaskaBox.contains(lat, lon):
		return ZoneAlaska
	case hawaiiBox.contains(lat, lon):
		return ZoneHawaii
	case arizonaBox.contains(lat, lon):
		return ZoneArizona
	}

	if lat < gridLatMin || lat >= gridLatMax || lon < gridLonMin || lon >= gridLonMax {
		return OutOfCoverage
	}
	row := gridRows[int((lat-gridLatMin)/gridLatStep)]
	switch {
	case lon >= row[0]:
		return ZoneEastern
	case lon >= row[1]:
		return ZoneCentral
	case lon >= row[2]:
		return ZoneMountain
	default:
		return ZonePacific
	}
}
