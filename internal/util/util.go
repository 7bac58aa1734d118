package util

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration converts a compact ISO-8601 time span such as "PT1H2M3S" into seconds.
// Every component is optional. Input that does not match the notation yields 0.
func ParseDuration(text string) int {
	match := isoDurationPattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}

	total := 0
	for i, unit := range []int{3600, 60, 1} {
		component := match[i+1]
		if component == "" {
			continue
		}

		value, err := strconv.Atoi(component)
		if err != nil {
			return 0
		}
		total += value * unit
	}

	return total
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
