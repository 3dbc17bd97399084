// Package clock formats a fix's UTC time and date as local strings for a
// given UTC offset, keeping the calendar date consistent across midnight in
// either direction.
package clock

import (
	"fmt"

	"github.com/relabs-tech/gps_clock/internal/gps"
)

const minutesPerDay = 24 * 60

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

func monthDays(month, year int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// TimeString returns "HH:MM:SS" local time for the record's UTC time of day
// shifted by offsetMin minutes.
func TimeString(f gps.FixRecord, offsetMin int) string {
	total := f.Hours*60 + f.Minutes + offsetMin
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d:%02d", total/60, total%60, int(f.Seconds))
}

// DateString returns "YYYY-MM-DD" local date, rolling the calendar forward
// or backward when the offset pushes the local time across midnight. A
// record with no date yet yields a placeholder.
func DateString(f gps.FixRecord, offsetMin int) string {
	if f.Day == 0 && f.Month == 0 && f.Year == 0 {
		return "----------"
	}
	day, month, year := f.Day, f.Month, 2000+f.Year

	local := f.Hours*60 + f.Minutes + offsetMin
	if local < 0 {
		day--
		if day < 1 {
			month--
			if month < 1 {
				month = 12
				year--
			}
			day = monthDays(month, year)
		}
	} else if local >= minutesPerDay {
		day++
		if day > monthDays(month, year) {
			day = 1
			month++
			if month > 12 {
				month = 1
				year++
			}
		}
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
