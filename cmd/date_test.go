package cmd

import (
	"strings"
	"testing"
	"time"
)

func mustParse(t *testing.T, format, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(format, value)
	if err != nil {
		t.Fatalf("parsing %q: %v", value, err)
	}
	return parsed
}

func TestGetImplicitDateRange_year(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020", "2020-01-01", "2020-12-31")
}

func TestGetImplicitDateRange_month(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020-01", "2020-01-01", "2020-01-31")
}

func TestGetImplicitDateRange_day(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020-01-15", "2020-01-15", "2020-01-15")
}

func doTestGetImplicitDateRange(t *testing.T, input, wantStart, wantEnd string) {
	start, end, err := getImplicitDateRange(input)
	if err != nil {
		t.Fatalf("getImplicitDateRange(%q): %v", input, err)
	}

	expectedStart := mustParse(t, "2006-01-02", wantStart)
	expectedEnd := mustParse(t, "2006-01-02", wantEnd)

	if start != expectedStart {
		t.Fatalf("Expected start to be %q, got %q", expectedStart, start)
	}

	if end != expectedEnd {
		t.Fatalf("Expected end to be %q, got %q", expectedEnd, end)
	}
}

func TestGetImplicitDateRange_invalid(t *testing.T) {
	for _, bad := range []string{"2020-01-0123", "not_real"} {
		_, _, err := getImplicitDateRange(bad)
		if err == nil {
			t.Fatalf("Expected error parsing %q", bad)
		}
		if !strings.Contains(err.Error(), "Invalid format") {
			t.Fatalf("Should have error with invalid format: %v", err)
		}
	}
}

func TestParseDateRangeFromArgs_none(t *testing.T) {
	start, end, err := parseDateRangeFromArgs(nil)
	if err != nil {
		t.Fatalf("parseDateRangeFromArgs(nil): %v", err)
	}
	if !start.IsZero() || !end.IsZero() {
		t.Fatalf("no args should mean no constraint, got %v to %v", start, end)
	}
}

func TestParseDateRangeFromArgs_explicit(t *testing.T) {
	start, end, err := parseDateRangeFromArgs([]string{"2020", "2020-02-01"})
	if err != nil {
		t.Fatalf("parseDateRangeFromArgs: %v", err)
	}
	if start != mustParse(t, "2006", "2020") {
		t.Fatalf("start = %v", start)
	}
	if end != mustParse(t, "2006-01-02", "2020-02-01") {
		t.Fatalf("end = %v", end)
	}
}
