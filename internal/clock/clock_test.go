package clock

import (
	"testing"

	"github.com/relabs-tech/gps_clock/internal/gps"
)

func rec(h, m int, s float64, day, month, year int) gps.FixRecord {
	return gps.FixRecord{Hours: h, Minutes: m, Seconds: s, Day: day, Month: month, Year: year}
}

func TestTimeStringRollover(t *testing.T) {
	tests := []struct {
		f         gps.FixRecord
		offsetMin int
		want      string
	}{
		{rec(23, 59, 59, 15, 6, 25), -5 * 60, "18:59:59"},
		{rec(0, 0, 1, 15, 6, 25), 10 * 60, "10:00:01"},
		{rec(2, 30, 0, 15, 6, 25), -5 * 60, "21:30:00"},
		{rec(12, 0, 0, 15, 6, 25), 0, "12:00:00"},
		{rec(22, 45, 12, 15, 6, 25), 90, "00:15:12"},
	}
	for _, tc := range tests {
		if got := TimeString(tc.f, tc.offsetMin); got != tc.want {
			t.Errorf("TimeString(%02d:%02d, %d) = %q, want %q",
				tc.f.Hours, tc.f.Minutes, tc.offsetMin, got, tc.want)
		}
	}
}

func TestDateStringRollover(t *testing.T) {
	tests := []struct {
		name      string
		f         gps.FixRecord
		offsetMin int
		want      string
	}{
		{"no shift", rec(12, 0, 0, 15, 6, 25), -5 * 60, "2025-06-15"},
		{"backward across midnight", rec(2, 0, 0, 15, 6, 25), -5 * 60, "2025-06-14"},
		{"forward across midnight", rec(23, 0, 0, 15, 6, 25), 10 * 60, "2025-06-16"},
		{"backward across month", rec(1, 0, 0, 1, 3, 25), -5 * 60, "2025-02-28"},
		{"backward into leap february", rec(1, 0, 0, 1, 3, 24), -5 * 60, "2024-02-29"},
		{"backward across year", rec(1, 0, 0, 1, 1, 25), -5 * 60, "2024-12-31"},
		{"forward across month", rec(23, 30, 0, 30, 4, 25), 10 * 60, "2025-05-01"},
		{"forward across year", rec(23, 30, 0, 31, 12, 25), 10 * 60, "2026-01-01"},
		{"no date yet", rec(12, 0, 0, 0, 0, 0), -5 * 60, "----------"},
	}
	for _, tc := range tests {
		if got := DateString(tc.f, tc.offsetMin); got != tc.want {
			t.Errorf("%s: DateString = %q, want %q", tc.name, got, tc.want)
		}
	}
}
