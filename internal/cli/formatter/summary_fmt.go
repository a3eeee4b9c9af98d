package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wakatime/internal/contract"
	"github.com/alexanderramin/wakatime/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatSummary renders an aggregated range: total header, date span,
// language and project tables, the filter line and any warnings.
func FormatSummary(resp *contract.SummaryResponse) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StyleTitle.Render(resp.Range.Name.Title()+":") + " " + Bold(summaryTotal(resp)) + Dim(" (Total)"))
	b.WriteString("\n")
	b.WriteString(Dim(dateSpan(resp.Range)))
	b.WriteString("\n\n")

	if resp.Empty() {
		b.WriteString(Dim("No activity recorded for this period."))
		b.WriteString("\n")
		writeWarnings(&b, resp.Warnings)
		return b.String()
	}

	result := resp.Result
	if len(result.Languages) > 0 {
		b.WriteString(Header("Languages"))
		b.WriteString("\n")
		b.WriteString(totalsTable("LANGUAGE", result.Languages, result.LanguageSeconds(), StyleLanguage))
		b.WriteString("\n")
	}

	b.WriteString(Header("Projects"))
	b.WriteString("\n")
	if len(result.Projects) > 0 {
		b.WriteString(totalsTable("PROJECT", result.Projects, projectSeconds(result.Projects), StyleProject))
	} else {
		b.WriteString(Dim("  No matching projects.") + "\n")
	}

	if resp.Filtered() {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Filtered: %s across %d %s matching %s\n",
			Bold(FormatSeconds(result.FilteredSeconds)),
			len(result.Projects),
			plural(len(result.Projects), "project", "projects"),
			StyleProject.Render("/"+resp.ProjectFilter+"/"),
		))
	}

	writeWarnings(&b, resp.Warnings)
	return b.String()
}

// summaryTotal is the API's own text for a single day, otherwise whole hours.
func summaryTotal(resp *contract.SummaryResponse) string {
	if resp.GrandTotalText != "" {
		return resp.GrandTotalText
	}
	return FormatHours(resp.Result.TotalHours)
}

func dateSpan(r domain.DateRange) string {
	if r.SingleDay() {
		return r.Start
	}
	return r.Start + " → " + r.End
}

func totalsTable(label string, totals []domain.NamedTotal, sum float64, style lipgloss.Style) string {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{
			style.Render(t.Name),
			FormatSeconds(t.TotalSeconds),
			RenderShare(Share(t.TotalSeconds, sum), shareBarWidth, style),
		})
	}
	return RenderTable([]string{label, "TIME", "SHARE"}, rows, 1)
}

func projectSeconds(totals []domain.NamedTotal) float64 {
	var sum float64
	for _, t := range totals {
		sum += t.TotalSeconds
	}
	return sum
}

func writeWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(Warning(w))
		b.WriteString("\n")
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
