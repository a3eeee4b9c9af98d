package domain

// DateRange is a named start/end date pair used to scope a summary query.
// Dates are formatted as YYYY-MM-DD.
type DateRange struct {
	Name  RangeName `json:"name"`
	Start string    `json:"start"`
	End   string    `json:"end"`
}

// SingleDay reports whether the range starts and ends on the same date.
func (r DateRange) SingleDay() bool {
	return r.Start == r.End
}

// GrandTotal is a day's overall tracked duration, independent of the
// per-language and per-project breakdowns.
type GrandTotal struct {
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Text    string `json:"text"`
}

// TotalMinutes returns the grand total expressed in minutes.
func (g GrandTotal) TotalMinutes() int {
	return g.Hours*60 + g.Minutes
}

// NamedEntry is one language or project line of a DaySummary as returned by the API.
type NamedEntry struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
	Text         string  `json:"text"`
}

// SummaryRange is the date span the API reports a DaySummary for.
type SummaryRange struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
	Text  string `json:"text"`
}

// DaySummary is one record per calendar day in a queried range.
type DaySummary struct {
	GrandTotal GrandTotal   `json:"grand_total"`
	Languages  []NamedEntry `json:"languages"`
	Projects   []NamedEntry `json:"projects"`
	Range      SummaryRange `json:"range"`
}

// NamedTotal is an aggregated duration keyed by a language or project name.
type NamedTotal struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
}

// AggregateResult is the reduction of a list of DaySummary records.
type AggregateResult struct {
	TotalMinutes    int          `json:"total_minutes"`
	TotalHours      int          `json:"total_hours"`
	Languages       []NamedTotal `json:"languages"`
	Projects        []NamedTotal `json:"projects"`
	FilteredSeconds float64      `json:"filtered_seconds"`
}

// LanguageSeconds returns the sum of all language totals.
func (r AggregateResult) LanguageSeconds() float64 {
	var sum float64
	for _, l := range r.Languages {
		sum += l.TotalSeconds
	}
	return sum
}
