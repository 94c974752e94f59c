package utils

import (
	"testing"
	"time"
)

func TestFormatFecha(t *testing.T) {
	d := time.Date(2026, 3, 5, 18, 45, 0, 0, time.Local)
	if got := FormatFecha(d); got != "05/03/2026" {
		t.Fatalf("FormatFecha = %q, want 05/03/2026", got)
	}
}

func TestParseDateTimeRoundTrip(t *testing.T) {
	s := "2026-03-10 08:00:00"
	parsed, err := ParseDateTime(s)
	if err != nil {
		t.Fatalf("ParseDateTime error: %v", err)
	}
	if got := FormatDateTime(parsed); got != s {
		t.Fatalf("round trip = %q, want %q", got, s)
	}

	if _, err := ParseDateTime("hoy temprano"); err == nil {
		t.Fatalf("garbage datetime should fail to parse")
	}
}

func TestStartOfYesterday(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 12, 0, time.Local)
	got := StartOfYesterday(now)
	want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("StartOfYesterday = %v, want %v", got, want)
	}

	// crossing a month boundary
	now = time.Date(2026, 3, 1, 1, 0, 0, 0, time.Local)
	got = StartOfYesterday(now)
	want = time.Date(2026, 2, 28, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("StartOfYesterday across month = %v, want %v", got, want)
	}
}
