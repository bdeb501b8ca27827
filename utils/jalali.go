// utils/jalali.go
package utils

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// ToJalali formats a time as a Jalali calendar date string (YYYY/MM/DD),
// the canonical date format for records and invoices.
func ToJalali(t time.Time) string {
	pt := ptime.New(t)
	return fmt.Sprintf("%04d/%02d/%02d", pt.Year(), int(pt.Month()), pt.Day())
}

// TodayJalali returns today's Jalali date string.
func TodayJalali() string {
	return ToJalali(time.Now())
}

// JalaliDaysAgo returns the Jalali date string of n calendar days ago.
// Jalali date strings are zero-padded, so >= comparison orders them correctly.
func JalaliDaysAgo(n int) string {
	return ToJalali(time.Now().AddDate(0, 0, -n))
}

// CurrentWallClock stamps a record's entry time when the client omits it.
func CurrentWallClock() string {
	return time.Now().Format("15:04:05")
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
