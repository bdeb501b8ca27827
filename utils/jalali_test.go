package utils

import (
	"testing"
	"time"
)

func TestToJalali(t *testing.T) {
	tests := []struct {
		name      string
		gregorian time.Time
		want      string
	}{
		{"nowruz 1403", time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC), "1403/01/01"},
		{"last day of 1402", time.Date(2024, 3, 19, 12, 0, 0, 0, time.UTC), "1402/12/29"},
		{"first of mehr", time.Date(2023, 9, 23, 12, 0, 0, 0, time.UTC), "1402/07/01"},
		{"nowruz 1404 after leap year", time.Date(2025, 3, 21, 12, 0, 0, 0, time.UTC), "1404/01/01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToJalali(tt.gregorian); got != tt.want {
				t.Errorf("ToJalali(%v) = %q, expected %q", tt.gregorian, got, tt.want)
			}
		})
	}
}

func TestJalaliDateStringOrdering(t *testing.T) {
	// Zero-padded date strings must order correctly, because the dashboard
	// windows compare them with >=.
	today := TodayJalali()
	weekAgo := JalaliDaysAgo(7)
	monthAgo := JalaliDaysAgo(30)

	if !(monthAgo < weekAgo && weekAgo < today) {
		t.Errorf("date strings out of order: month=%q week=%q today=%q", monthAgo, weekAgo, today)
	}
	if len(today) != 10 {
		t.Errorf("expected zero-padded YYYY/MM/DD, got %q", today)
	}
}

func TestCurrentWallClock(t *testing.T) {
	stamp := CurrentWallClock()
	if _, err := time.Parse("15:04:05", stamp); err != nil {
		t.Errorf("CurrentWallClock() = %q, not a HH:MM:SS stamp: %v", stamp, err)
	}
}
