package formatter

import (
	"testing"

	"github.com/alexanderramin/wakatime/internal/contract"
	"github.com/alexanderramin/wakatime/internal/domain"
	"github.com/stretchr/testify/assert"
)

func weekResponse() *contract.SummaryResponse {
	return &contract.SummaryResponse{
		Range: domain.DateRange{Name: domain.RangeWeek, Start: "2024-03-08", End: "2024-03-15"},
		Result: domain.AggregateResult{
			TotalMinutes: 210,
			TotalHours:   4,
			Languages: []domain.NamedTotal{
				{Name: "Go", TotalSeconds: 10800},
				{Name: "SQL", TotalSeconds: 1800},
			},
			Projects: []domain.NamedTotal{
				{Name: "alpha", TotalSeconds: 9000},
				{Name: "beta", TotalSeconds: 3600},
			},
			FilteredSeconds: 12600,
		},
		Days: 7,
	}
}

func TestFormatSummary_MultiDay(t *testing.T) {
	out := stripANSI(FormatSummary(weekResponse()))

	assert.Contains(t, out, "Week: 4 hours (Total)")
	assert.Contains(t, out, "2024-03-08 → 2024-03-15")
	assert.Contains(t, out, "LANGUAGES")
	assert.Contains(t, out, "PROJECTS")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "3 hours")
	assert.Contains(t, out, "30 minutes")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "2 hours")
	assert.Contains(t, out, " 86%")
	assert.NotContains(t, out, "Filtered:")
	assert.NotContains(t, out, "No activity")
}

func TestFormatSummary_SingleDayUsesGrandTotalText(t *testing.T) {
	resp := weekResponse()
	resp.Range = domain.DateRange{Name: domain.RangeToday, Start: "2024-03-15", End: "2024-03-15"}
	resp.GrandTotalText = "3 hrs 30 mins"

	out := stripANSI(FormatSummary(resp))

	assert.Contains(t, out, "Today: 3 hrs 30 mins (Total)")
	assert.NotContains(t, out, "→")
}

func TestFormatSummary_Filtered(t *testing.T) {
	resp := weekResponse()
	resp.ProjectFilter = "^al"
	resp.Result.Projects = resp.Result.Projects[:1]
	resp.Result.FilteredSeconds = 9000
	resp.Warnings = []string{"Filter /^al/ applies to projects only; language totals include all projects."}

	out := stripANSI(FormatSummary(resp))

	assert.Contains(t, out, "Filtered: 2 hours across 1 project matching /^al/")
	assert.Contains(t, out, "! Filter /^al/ applies to projects only")
	assert.NotContains(t, out, "beta")
}

func TestFormatSummary_FilterMatchesNothing(t *testing.T) {
	resp := weekResponse()
	resp.ProjectFilter = "zzz"
	resp.Result.Projects = []domain.NamedTotal{}
	resp.Result.FilteredSeconds = 0

	out := stripANSI(FormatSummary(resp))

	assert.Contains(t, out, "No matching projects.")
	assert.Contains(t, out, "Filtered: 0 seconds across 0 projects matching /zzz/")
}

func TestFormatSummary_Empty(t *testing.T) {
	resp := &contract.SummaryResponse{
		Range: domain.DateRange{Name: domain.RangeYesterday, Start: "2024-03-14", End: "2024-03-15"},
		Result: domain.AggregateResult{
			Languages: []domain.NamedTotal{},
			Projects:  []domain.NamedTotal{},
		},
	}

	out := stripANSI(FormatSummary(resp))

	assert.Contains(t, out, "Yesterday: 0 hours (Total)")
	assert.Contains(t, out, "No activity recorded")
	assert.NotContains(t, out, "LANGUAGES")
}
