package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
	layoutDisplay  = "02/01/2006"
)

// NowLocal returns current time in the terminal's local timezone.
func NowLocal() time.Time {
	return time.Now().Local()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseDateTime parses "YYYY-MM-DD HH:MM:SS" in local timezone.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDateTime, strings.TrimSpace(s), time.Local)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" for storage.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// FormatFecha formats time to zero-padded DD/MM/YYYY for printed documents.
func FormatFecha(t time.Time) string {
	return t.In(time.Local).Format(layoutDisplay)
}

// StartOfYesterday returns 00:00:00 of the previous day, the default
// cutoff anchor so the rolling report window never opens a cross-midnight gap.
func StartOfYesterday(now time.Time) time.Time {
	y := now.In(time.Local).AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, time.Local)
}
