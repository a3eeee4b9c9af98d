package report

import (
	"sort"

	"github.com/alexanderramin/wakatime/internal/domain"
)

// SortTotals orders totals by TotalSeconds, largest first. Equal totals keep
// their relative order, which for aggregated totals is first occurrence in
// the input days.
func SortTotals(totals []domain.NamedTotal) {
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].TotalSeconds > totals[j].TotalSeconds
	})
}
