package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andy/tomatick/internal/domain"
)

// parseClock parses "MM:SS", "MM" or ":SS" into minutes and seconds.
// Seconds above 59 are allowed and carried by the engine.
func parseClock(s string) (minutes, seconds int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("enter a time as MM:SS")
	}

	minStr, secStr, hasSec := strings.Cut(s, ":")
	if minStr != "" {
		minutes, err = strconv.Atoi(minStr)
		if err != nil || minutes < 0 || minutes > domain.MaxClockMinutes {
			return 0, 0, fmt.Errorf("invalid minutes %q", minStr)
		}
	}
	if hasSec && secStr != "" {
		seconds, err = strconv.Atoi(secStr)
		if err != nil || seconds < 0 {
			return 0, 0, fmt.Errorf("invalid seconds %q", secStr)
		}
	}
	return minutes, seconds, nil
}

// cycle returns the value delta steps from current, wrapping around.
// An unknown current starts from the first value.
func cycle(values []string, current string, delta int) string {
	if len(values) == 0 {
		return current
	}
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}

// titleCase turns "shortBreak" or "nature-3" into "Short Break" or "Nature 3"
func titleCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '-' || r == '_':
			b.WriteRune(' ')
			continue
		case i == 0 || s[i-1] == '-' || s[i-1] == '_':
			b.WriteString(strings.ToUpper(string(r)))
			continue
		case r >= 'A' && r <= 'Z':
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
