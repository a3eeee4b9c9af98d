package report

import (
	"math"

	"github.com/alexanderramin/wakatime/internal/domain"
)

// accumulator groups named entries by exact name, remembering the order in
// which names were first seen.
type accumulator struct {
	index  map[string]int
	totals []domain.NamedTotal
}

func newAccumulator() *accumulator {
	return &accumulator{
		index:  make(map[string]int),
		totals: []domain.NamedTotal{},
	}
}

func (a *accumulator) add(name string, seconds float64) {
	if i, ok := a.index[name]; ok {
		a.totals[i].TotalSeconds += seconds
		return
	}
	a.index[name] = len(a.totals)
	a.totals = append(a.totals, domain.NamedTotal{Name: name, TotalSeconds: seconds})
}

func (a *accumulator) sorted() []domain.NamedTotal {
	SortTotals(a.totals)
	return a.totals
}

// Aggregate reduces per-day summaries into the overall total, per-language
// totals and per-project totals.
//
// The filter applies to project entries only, before grouping. Language
// totals always cover every entry.
func Aggregate(days []domain.DaySummary, filter *ProjectFilter) domain.AggregateResult {
	langs := newAccumulator()
	projects := newAccumulator()
	minutes := 0

	for _, day := range days {
		minutes += day.GrandTotal.TotalMinutes()
		for _, l := range day.Languages {
			langs.add(l.Name, l.TotalSeconds)
		}
		for _, p := range day.Projects {
			if !filter.Match(p.Name) {
				continue
			}
			projects.add(p.Name, p.TotalSeconds)
		}
	}

	result := domain.AggregateResult{
		TotalMinutes: minutes,
		TotalHours:   RoundHours(minutes),
		Languages:    langs.sorted(),
		Projects:     projects.sorted(),
	}
	for _, p := range result.Projects {
		result.FilteredSeconds += p.TotalSeconds
	}
	return result
}

// RoundHours converts minutes to whole hours, rounding to the nearest hour.
func RoundHours(minutes int) int {
	return int(math.Round(float64(minutes) / 60))
}
