// Package timeutil parses human-friendly duration windows such as "2h",
// "30m", or "1d12h".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units          = map[string]time.Duration{
		"s": time.Second,
		"m": time.Minute,
		"h": time.Hour,
		"d": 24 * time.Hour,
		"w": 7 * 24 * time.Hour,
	}
)

// ParseWindow parses a compact duration string made of value/unit segments,
// for example "45m" or "1d12h". Supported units are s, m, h, d and w. It
// returns the total duration and its canonical rendering. Empty input and
// zero-length windows are errors.
func ParseWindow(input string) (time.Duration, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, "", fmt.Errorf("empty window")
	}

	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("bad window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("bad window value %q: %w", matches[1], err)
		}
		base, ok := units[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unknown window unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a duration with the largest units first, for example
// "1w2d" or "90m" as "1h30m".
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	order := []struct {
		label string
		value time.Duration
	}{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}

	var b strings.Builder
	remaining := d
	for _, u := range order {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		fmt.Fprintf(&b, "%d%s", count, u.label)
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
