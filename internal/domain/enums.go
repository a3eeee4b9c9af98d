package domain

import (
	"fmt"
	"strings"
)

// RangeName identifies one of the named date ranges a summary can be queried for.
type RangeName string

const (
	RangeToday     RangeName = "today"
	RangeYesterday RangeName = "yesterday"
	RangeWeek      RangeName = "week"
	RangeMonth     RangeName = "month"
	RangeYear      RangeName = "year"
)

// AllRanges lists the range names in display order.
var AllRanges = []RangeName{RangeToday, RangeYesterday, RangeWeek, RangeMonth, RangeYear}

// Title returns the capitalized label used in headings ("Week", "Today").
func (r RangeName) Title() string {
	if r == "" {
		return ""
	}
	s := string(r)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether r is one of the known range names.
func (r RangeName) Valid() bool {
	for _, known := range AllRanges {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRangeName converts user input into a RangeName, ignoring case and
// surrounding whitespace.
func ParseRangeName(s string) (RangeName, error) {
	r := RangeName(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown range %q", s)
	}
	return r, nil
}
