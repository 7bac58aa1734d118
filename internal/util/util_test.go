package util

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "all components", text: "PT1H2M3S", expected: 3723},
		{name: "minutes and seconds", text: "PT10M", expected: 600},
		{name: "hours only", text: "PT2H", expected: 7200},
		{name: "seconds only", text: "PT45S", expected: 45},
		{name: "hours and seconds", text: "PT1H5S", expected: 3605},
		{name: "bare prefix", text: "PT", expected: 0},
		{name: "empty", text: "", expected: 0},
		{name: "day component", text: "P1DT2H", expected: 0},
		{name: "wrong unit order", text: "PT3S2M", expected: 0},
		{name: "negative component", text: "PT-5S", expected: 0},
		{name: "garbage", text: "ten minutes", expected: 0},
		{name: "lowercase", text: "pt1m", expected: 0},
		{name: "overflowing component", text: "PT99999999999999999999S", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseDuration(tt.text); got != tt.expected {
				t.Fatalf("ParseDuration(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
