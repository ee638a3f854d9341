package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reYMD       = regexp.MustCompile(`^(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})$`)
	reDMY       = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})$`)
	reDMonthY   = regexp.MustCompile(`^(\d{1,2})\s*[\-/]?\s*([A-Za-z]+)\s*[\-/]?\s*(\d{2,4})$`)
	monthPrefix = map[string]time.Month{
		"jan": time.January, "feb": time.February, "mar": time.March,
		"apr": time.April, "may": time.May, "jun": time.June,
		"jul": time.July, "aug": time.August, "sep": time.September,
		"oct": time.October, "nov": time.November, "dec": time.December,
	}
)

// fallbackLayouts are tried last, in order.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"Mon Jan 2 2006",
	"2006 January 2",
	"20060102",
}

// ParseDate converts a date-shaped string into a calendar date (UTC midnight).
//
// Accepted forms, in order: YYYY-MM-DD, DD-MM-YYYY or DD-MM-YY, DD MonthName
// YYYY (month matched on its first three letters), then a fixed list of
// generic layouts. '/', '-' and '.' are interchangeable separators. Two-digit
// years above 30 are 19xx, the rest 20xx. Out-of-range days and months roll
// over the way time.Date does; they are not rejected.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := reYMD.FindStringSubmatch(s); m != nil {
		return civilDate(atoi(m[1]), atoi(m[2]), atoi(m[3])), true
	}

	if m := reDMY.FindStringSubmatch(s); m != nil {
		return civilDate(expandYear(atoi(m[3])), atoi(m[2]), atoi(m[1])), true
	}

	if m := reDMonthY.FindStringSubmatch(s); m != nil {
		if month, ok := monthFromName(m[2]); ok {
			return civilDate(expandYear(atoi(m[3])), int(month), atoi(m[1])), true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return civilDate(t.Year(), int(t.Month()), t.Day()), true
		}
	}

	return time.Time{}, false
}

// expandYear applies the two-digit year rule.
func expandYear(y int) int {
	if y >= 100 {
		return y
	}
	if y > 30 {
		return 1900 + y
	}
	return 2000 + y
}

func monthFromName(name string) (time.Month, bool) {
	if len(name) < 3 {
		return 0, false
	}
	m, ok := monthPrefix[strings.ToLower(name[:3])]
	return m, ok
}

func civilDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// atoi is only called on regexp-validated digit runs.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
