package contract

import (
	"time"

	"github.com/alexanderramin/wakatime/internal/domain"
)

// SummaryRequest asks for the aggregated activity of one named range.
type SummaryRequest struct {
	Range         domain.RangeName
	ProjectFilter string     // regular expression on project names; empty matches all
	Now           *time.Time // reference time; nil uses the current local time
}

// NewSummaryRequest creates a request for r with no project filter.
func NewSummaryRequest(r domain.RangeName) SummaryRequest {
	return SummaryRequest{Range: r}
}

// SummaryResponse is the aggregated view of a range.
type SummaryResponse struct {
	Range          domain.DateRange       `json:"range"`
	Result         domain.AggregateResult `json:"result"`
	Days           int                    `json:"days"`
	GrandTotalText string                 `json:"grand_total_text,omitempty"`
	ProjectFilter  string                 `json:"project_filter,omitempty"`
	Warnings       []string               `json:"warnings,omitempty"`
}

// Filtered reports whether project totals were restricted by a filter.
func (r *SummaryResponse) Filtered() bool {
	return r.ProjectFilter != ""
}

// Empty reports whether no time was recorded in the range.
func (r *SummaryResponse) Empty() bool {
	return r.Result.TotalMinutes == 0 && len(r.Result.Languages) == 0 && len(r.Result.Projects) == 0
}
