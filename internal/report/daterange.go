package report

import (
	"fmt"
	"time"

	"github.com/alexanderramin/wakatime/internal/domain"
)

// DateLayout is the date format the summaries endpoint expects.
const DateLayout = "2006-01-02"

// Ranges holds every named range computed from a single reference time.
type Ranges struct {
	Today     domain.DateRange
	Yesterday domain.DateRange
	Week      domain.DateRange
	Month     domain.DateRange
	Year      domain.DateRange
}

// Get returns the range with the given name.
func (r Ranges) Get(name domain.RangeName) (domain.DateRange, bool) {
	switch name {
	case domain.RangeToday:
		return r.Today, true
	case domain.RangeYesterday:
		return r.Yesterday, true
	case domain.RangeWeek:
		return r.Week, true
	case domain.RangeMonth:
		return r.Month, true
	case domain.RangeYear:
		return r.Year, true
	default:
		return domain.DateRange{}, false
	}
}

// ComputeRanges derives all named ranges from now, using now's own location.
// Every range ends on now's date.
//
//   - today:     now .. now
//   - yesterday: now-1d .. now
//   - week:      now-7d .. now
//   - month:     now-1 calendar month .. now (day clamped to the month's end)
//   - year:      now-365d .. now
func ComputeRanges(now time.Time) Ranges {
	end := now.Format(DateLayout)
	mk := func(name domain.RangeName, start time.Time) domain.DateRange {
		return domain.DateRange{Name: name, Start: start.Format(DateLayout), End: end}
	}

	return Ranges{
		Today:     mk(domain.RangeToday, now),
		Yesterday: mk(domain.RangeYesterday, now.AddDate(0, 0, -1)),
		Week:      mk(domain.RangeWeek, now.AddDate(0, 0, -7)),
		Month:     mk(domain.RangeMonth, subtractMonth(now)),
		Year:      mk(domain.RangeYear, now.AddDate(0, 0, -365)),
	}
}

// RangeFor computes a single named range relative to now. The name is
// matched ignoring case and surrounding whitespace.
func RangeFor(name domain.RangeName, now time.Time) (domain.DateRange, error) {
	parsed, err := domain.ParseRangeName(string(name))
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %q", ErrUnknownRange, name)
	}
	r, ok := ComputeRanges(now).Get(parsed)
	if !ok {
		return domain.DateRange{}, fmt.Errorf("%w: %q", ErrUnknownRange, name)
	}
	return r, nil
}

// subtractMonth moves t back one calendar month. time.AddDate would normalize
// Mar 31 to Mar 2 (via Feb 31); the start of a month range should stay in the
// previous month, so the day is clamped to that month's last day instead.
func subtractMonth(t time.Time) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m-1, 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}
