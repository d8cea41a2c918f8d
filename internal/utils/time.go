package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// FormatClock renders HH:MM for display; zero times become "".
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format("15:04")
}

// FormatDisplayDate renders a long human date ("Monday, January 2, 2006")
// and never errors: empty or unparsable input yields "N/A".
func FormatDisplayDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "N/A"
	}
	t, err := time.ParseInLocation(layoutDateTime, s, time.Local)
	if err != nil {
		if t, err = time.ParseInLocation(layoutDate, s, time.Local); err != nil {
			return "N/A"
		}
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatDuration converts a "HH:MM" or "HH:MM:SS" duration string into the
// "{H}h {M}m" display form. The minutes segment is dropped when zero and the
// hours segment when zero; anything unparsable yields "N/A".
func FormatDuration(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "N/A"
	}
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return "N/A"
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return "N/A"
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "N/A"
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
