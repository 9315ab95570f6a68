package helpers

import (
	"strconv"
	"strings"
	"time"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseEventDate accepts the RFC 3339 wire format and the datetime-local
// value the wizard form carries.
func ParseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, time.Local)
}

// NormalizeCategory trims and title-cases a vendor category so the catalog
// groups consistently.
func NormalizeCategory(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
