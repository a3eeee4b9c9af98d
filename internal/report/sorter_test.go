package report

import (
	"testing"

	"github.com/alexanderramin/wakatime/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSortTotals_Descending(t *testing.T) {
	totals := []domain.NamedTotal{
		{Name: "small", TotalSeconds: 10},
		{Name: "large", TotalSeconds: 300},
		{Name: "medium", TotalSeconds: 120},
	}

	SortTotals(totals)

	assert.Equal(t, "large", totals[0].Name)
	assert.Equal(t, "medium", totals[1].Name)
	assert.Equal(t, "small", totals[2].Name)
}

func TestSortTotals_TiesKeepInputOrder(t *testing.T) {
	totals := []domain.NamedTotal{
		{Name: "first", TotalSeconds: 60},
		{Name: "bigger", TotalSeconds: 90},
		{Name: "second", TotalSeconds: 60},
		{Name: "third", TotalSeconds: 60},
	}

	SortTotals(totals)

	names := make([]string, len(totals))
	for i, tt := range totals {
		names[i] = tt.Name
	}
	assert.Equal(t, []string{"bigger", "first", "second", "third"}, names)
}

func TestSortTotals_Empty(t *testing.T) {
	var totals []domain.NamedTotal
	assert.NotPanics(t, func() { SortTotals(totals) })
}
