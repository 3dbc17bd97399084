package tz

// dayOfWeek returns 0=Sunday..6=Saturday using Sakamoto's method.
func dayOfWeek(year, month, day int) int {
	t := [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	if month < 3 {
		year--
	}
	return (year + year/4 - year/100 + year/400 + t[month-1] + day) % 7
}

// nthSunday returns the day of month of the nth Sunday in the given month.
func nthSunday(year, month, n int) int {
	firstSunday := 1 + (7-dayOfWeek(year, month, 1))%7
	return firstSunday + 7*(n-1)
}

// inDaylightWindow reports whether the given UTC instant falls inside the US
// daylight window for a zone with the given standard offset: from the 2nd
// Sunday of March 02:00 local standard time to the 1st Sunday of November
// 02:00 local daylight time.
func inDaylightWindow(utcYear, utcMonth, utcDay, utcMinuteOfDay, stdOffsetMin int) bool {
	startDay := nthSunday(utcYear, 3, 2)
	endDay := nthSunday(utcYear, 11, 1)

	// Transition instants expressed as UTC minute of day.
	springUTCMin := 2*60 - stdOffsetMin
	fallUTCMin := 2*60 - (stdOffsetMin + dstShiftMin)

	// Encode (month, day, minute) into one comparable value.
	enc := func(month, day, minute int) int {
		return month*50000 + day*1500 + minute
	}
	now := enc(utcMonth, utcDay, utcMinuteOfDay)
	return enc(3, startDay, springUTCMin) <= now && now < enc(11, endDay, fallUTCMin)
}
