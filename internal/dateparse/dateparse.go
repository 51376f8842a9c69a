package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// relativeRule maps a class of relative-date keywords to a day offset from
// now. Rules are evaluated in order; the first class with any keyword hit
// wins.
type relativeRule struct {
	Keywords []string
	Offset   int
}

var relativeRules = []relativeRule{
	{[]string{"today", "current day", "now"}, 0},
	{[]string{"day before yesterday", "2 days ago"}, -2},
	{[]string{"yesterday", "previous day"}, -1},
	{[]string{"last week", "previous week"}, -7},
	{[]string{"this week", "current week"}, 0},
}

type patternRule struct {
	Pattern *regexp.Regexp
	Parse   func(m []string, now time.Time) (time.Time, bool)
}

var monthMap = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var patternRules = []patternRule{
	{
		// 2025-10-25, 2025/10/25
		regexp.MustCompile(`(\d{4})[-/](\d{2})[-/](\d{2})`),
		func(m []string, _ time.Time) (time.Time, bool) {
			return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
		},
	},
	{
		// 25-10-2025, 25/10/2025
		regexp.MustCompile(`(\d{2})[-/](\d{2})[-/](\d{4})`),
		func(m []string, _ time.Time) (time.Time, bool) {
			return makeDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
		},
	},
	{
		// 25 Oct 2025, 3 february 2025
		regexp.MustCompile(`(\d{1,2})\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})`),
		func(m []string, _ time.Time) (time.Time, bool) {
			return makeDate(atoi(m[3]), int(monthMap[m[2]]), atoi(m[1]))
		},
	},
	{
		// 25th October, 3 Feb (year defaults to the current one)
		regexp.MustCompile(`(\d{1,2})[a-z]*\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*`),
		func(m []string, now time.Time) (time.Time, bool) {
			return makeDate(now.Year(), int(monthMap[m[2]]), atoi(m[1]))
		},
	},
}

// Resolve extracts a calendar date referenced in free text. It never fails:
// text with no recognizable date reference resolves to today, which callers
// must treat as "no date mentioned" as much as "user meant today".
func Resolve(text string) time.Time {
	return ResolveAt(text, time.Now())
}

// ResolveAt is Resolve with an explicit clock, pure for testing.
func ResolveAt(text string, now time.Time) time.Time {
	lower := strings.ToLower(text)
	today := truncate(now)

	for _, rule := range relativeRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return today.AddDate(0, 0, rule.Offset)
			}
		}
	}

	for _, rule := range patternRules {
		m := rule.Pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if d, ok := rule.Parse(m, today); ok {
			return d
		}
		// Matched but not a real calendar date: try the next pattern.
	}

	return today
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// makeDate builds a date and rejects impossible day/month combinations,
// which time.Date would silently normalize (Feb 31 -> Mar 3).
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
