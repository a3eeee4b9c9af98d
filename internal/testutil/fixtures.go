package testutil

import (
	"fmt"

	"github.com/alexanderramin/wakatime/internal/domain"
)

// Day options
type DayOption func(*domain.DaySummary)

// WithGrandTotal sets the day's grand total and its display text.
func WithGrandTotal(hours, minutes int) DayOption {
	return func(d *domain.DaySummary) {
		d.GrandTotal = domain.GrandTotal{
			Hours:   hours,
			Minutes: minutes,
			Text:    fmt.Sprintf("%d hrs %d mins", hours, minutes),
		}
	}
}

// WithLanguage appends a language entry.
func WithLanguage(name string, seconds float64) DayOption {
	return func(d *domain.DaySummary) {
		d.Languages = append(d.Languages, NewEntry(name, seconds))
	}
}

// WithProject appends a project entry.
func WithProject(name string, seconds float64) DayOption {
	return func(d *domain.DaySummary) {
		d.Projects = append(d.Projects, NewEntry(name, seconds))
	}
}

// WithDate sets the calendar date the day covers.
func WithDate(date string) DayOption {
	return func(d *domain.DaySummary) {
		d.Range = domain.SummaryRange{Date: date, Text: date}
	}
}

// NewEntry builds a named entry with API-style display text.
func NewEntry(name string, seconds float64) domain.NamedEntry {
	secs := int(seconds)
	return domain.NamedEntry{
		Name:         name,
		TotalSeconds: seconds,
		Text:         fmt.Sprintf("%d hrs %d mins", secs/3600, (secs%3600)/60),
	}
}

// NewTestDay builds a DaySummary with empty (non-nil) breakdowns.
func NewTestDay(opts ...DayOption) domain.DaySummary {
	d := domain.DaySummary{
		Languages: []domain.NamedEntry{},
		Projects:  []domain.NamedEntry{},
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewTestAccount returns a fully populated account.
func NewTestAccount() domain.Account {
	return domain.Account{
		ID:          "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		Email:       "ada@example.com",
		Username:    "ada",
		FullName:    "Ada Lovelace",
		DisplayName: "Ada Lovelace",
		Timezone:    "Europe/London",
		CreatedAt:   "2015-06-01T10:00:00Z",
	}
}
