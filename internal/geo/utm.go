package geo

import "math"

// WGS84 ellipsoid.
const (
	wgs84A = 6378137.0
	wgs84F = 1.0 / 298.257223563
	utmK0  = 0.9996
)

var zoneLetters = []byte("CDEFGHJKLMNPQRSTUVWX")

// ToUTM projects a geodetic coordinate into its UTM zone using the standard
// transverse-Mercator series expansion (Snyder). Accuracy is well under a
// meter for in-zone coordinates, which is far beyond what the display needs.
func ToUTM(lat, lon float64) (easting, northing float64, zoneNum int, zoneLet byte) {
	zoneNum = int((lon+180)/6) + 1
	zoneLet = zoneLetter(lat)

	e2 := wgs84F * (2 - wgs84F)
	e4 := e2 * e2
	e6 := e4 * e2
	ep2 := e2 / (1 - e2)

	phi := lat * math.Pi / 180
	lambda := lon * math.Pi / 180
	lambda0 := float64(zoneNum*6-183) * math.Pi / 180

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	tanPhi := math.Tan(phi)

	n := wgs84A / math.Sqrt(1-e2*sinPhi*sinPhi)
	t := tanPhi * tanPhi
	c := ep2 * cosPhi * cosPhi
	a := cosPhi * (lambda - lambda0)

	m := wgs84A * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))

	easting = utmK0*n*(a+(1-t+c)*a*a*a/6+
		(5-18*t+t*t+72*c-58*ep2)*a*a*a*a*a/120) + 500000.0

	northing = utmK0 * (m + n*tanPhi*(a*a/2+
		(5-t+9*c+4*c*c)*a*a*a*a/24+
		(61-58*t+t*t+600*c-330*ep2)*a*a*a*a*a*a/720))
	if lat < 0 {
		northing += 10000000.0
	}
	return easting, northing, zoneNum, zoneLet
}

// zoneLetter returns the latitude band designator (8° bands, C through X,
// skipping I and O). Out-of-band latitudes clamp to the nearest band.
func zoneLetter(lat float64) byte {
	if lat < -80 {
		return 'C'
	}
	if lat >= 84 {
		return 'X'
	}
	idx := int((lat + 80) / 8)
	if idx >= len(zoneLetters) {
		idx = len(zoneLetters) - 1
	}
	return zoneLetters[idx]
}
