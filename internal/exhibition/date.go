package exhibition

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jnelson/art-exhibits/internal/logger"
)

// Gallery sites write date ranges in a handful of English forms. Each
// entry below matches one form; ParseDateRange tries them in order and
// the first one that both matches and resolves wins.
var rangePatterns = []struct {
	name  string
	re    *regexp.Regexp
	parse func(m []string) (string, string, bool)
}{
	{
		// "January 15 - April 4, 2026"
		name: "month-first shared year",
		re:   regexp.MustCompile(`(\w+ \d+)\s*[-–]\s*(\w+ \d+),?\s*(\d{4})`),
		parse: func(m []string) (string, string, bool) {
			return resolveSharedYear(m[1], m[2], m[3])
		},
	},
	{
		// "15 Jan - 4 Apr 2026"
		name: "day-first shared year",
		re:   regexp.MustCompile(`(\d+ \w+)\s*[-–]\s*(\d+ \w+)\s*(\d{4})`),
		parse: func(m []string) (string, string, bool) {
			return resolveSharedYear(m[1], m[2], m[3])
		},
	},
	{
		// "Jan 15, 2026 - Apr 4, 2026"
		name: "dual year",
		re:   regexp.MustCompile(`(\w+ \d+),?\s*(\d{4})\s*[-–]\s*(\w+ \d+),?\s*(\d{4})`),
		parse: func(m []string) (string, string, bool) {
			start, ok := resolveDate(m[1], m[2])
			if !ok {
				return "", "", false
			}
			end, ok := resolveDate(m[3], m[4])
			if !ok {
				return "", "", false
			}
			return start, end, true
		},
	},
}

// monthsByName maps lowercase month names and their standard
// three-letter abbreviations to month numbers.
var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November,
	"dec": time.December,
}

var (
	wordRe = regexp.MustCompile(`[a-z]+`)
	dayRe  = regexp.MustCompile(`\d+`)
)

// ParseDateRange parses a free-text date span like
// "January 15 - April 4, 2026" into ISO (start, end) dates. When no
// supported pattern matches, ok is false and the caller must treat the
// exhibition as lacking usable dates; a date is never invented.
//
// Ranges that cross a year boundary ("December 12 - January 8") are not
// supported: the single-year patterns put both dates in the trailing
// year.
func ParseDateRange(dateText string) (start, end string, ok bool) {
	lower := strings.ToLower(dateText)

	for _, p := range rangePatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		start, end, ok = p.parse(m)
		if !ok {
			// Matched the shape but not the content (e.g. an
			// unknown month name). Try the next pattern.
			logger.Warn("date pattern matched but did not resolve", logger.Fields{
				"pattern": p.name,
				"input":   dateText,
			})
			continue
		}
		return start, end, true
	}

	return "", "", false
}

// resolveSharedYear resolves two month/day fragments that share a
// single trailing year.
func resolveSharedYear(startPart, endPart, year string) (string, string, bool) {
	start, ok := resolveDate(startPart, year)
	if !ok {
		return "", "", false
	}
	end, ok := resolveDate(endPart, year)
	if !ok {
		return "", "", false
	}
	return start, end, true
}

// resolveDate turns a fragment like "january 15" or "15 jan" plus a
// year into an ISO date. The numeric token within the fragment is
// always the day, regardless of whether it precedes or follows the
// month name.
func resolveDate(part, year string) (string, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return "", false
	}

	var month time.Month
	found := false
	for _, tok := range wordRe.FindAllString(part, -1) {
		if m, exists := monthsByName[tok]; exists {
			month = m
			found = true
			break
		}
	}
	if !found {
		return "", false
	}

	dayStr := dayRe.FindString(part)
	if dayStr == "" {
		return "", false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", y, int(month), day), true
}
