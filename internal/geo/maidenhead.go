package geo

// Maidenhead returns the 6-character grid locator for a decimal-degree
// position. Field is 20°×10°, square 2°×1°, subsquare 5'×2.5'.
func Maidenhead(lat, lon float64) string {
	adjLon := lon + 180.0
	adjLat := lat + 90.0

	lonField := int(adjLon / 20)
	latField := int(adjLat / 10)
	lonSq := int((adjLon - float64(lonField)*20) / 2)
	latSq := int(adjLat - float64(latField)*10)
	lonSub := int((adjLon - float64(lonField)*20 - float64(lonSq)*2) * 12)
	latSub := int((adjLat - float64(latField)*10 - float64(latSq)) * 24)

	return string([]byte{
		byte('A' + lonField),
		byte('A' + latField),
		byte('0' + lonSq),
		byte('0' + latSq),
		byte('a' + lonSub),
		byte('a' + latSub),
	})
}
