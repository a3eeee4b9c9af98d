package report

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/wakatime/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var propertyNames = []string{"Go", "SQL", "YAML", "Markdown", "alpha", "beta", "api", ""}

// randomDays builds days with whole-second values so float sums are exact
// regardless of summation order.
func randomDays(rng *rand.Rand) []domain.DaySummary {
	days := make([]domain.DaySummary, rng.Intn(10))
	for i := range days {
		days[i].GrandTotal = domain.GrandTotal{Hours: rng.Intn(10), Minutes: rng.Intn(60)}
		for n := rng.Intn(5); n > 0; n-- {
			days[i].Languages = append(days[i].Languages, domain.NamedEntry{
				Name:         propertyNames[rng.Intn(len(propertyNames))],
				TotalSeconds: float64(rng.Intn(7200)),
			})
		}
		for n := rng.Intn(5); n > 0; n-- {
			days[i].Projects = append(days[i].Projects, domain.NamedEntry{
				Name:         propertyNames[rng.Intn(len(propertyNames))],
				TotalSeconds: float64(rng.Intn(7200)),
			})
		}
	}
	return days
}

func totalsByName(totals []domain.NamedTotal) map[string]float64 {
	m := make(map[string]float64, len(totals))
	for _, tt := range totals {
		m[tt.Name] = tt.TotalSeconds
	}
	return m
}

// TestAggregate_Invariants property-tests grouping, filtering and ordering
// against a direct recomputation from the raw entries.
func TestAggregate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	patterns := []string{"", "^a", "o", "^$", "^(Go|beta)$"}

	for trial := 0; trial < 300; trial++ {
		days := randomDays(rng)
		pattern := patterns[rng.Intn(len(patterns))]
		f, err := NewProjectFilter(pattern)
		require.NoError(t, err)

		got := Aggregate(days, f)

		wantLangs := map[string]float64{}
		wantProjects := map[string]float64{}
		var wantFiltered float64
		wantMinutes := 0
		for _, d := range days {
			wantMinutes += d.GrandTotal.Hours*60 + d.GrandTotal.Minutes
			for _, l := range d.Languages {
				wantLangs[l.Name] += l.TotalSeconds
			}
			for _, p := range d.Projects {
				if f.Match(p.Name) {
					wantProjects[p.Name] += p.TotalSeconds
					wantFiltered += p.TotalSeconds
				}
			}
		}

		msg := fmt.Sprintf("trial %d pattern %q", trial, pattern)
		assert.Equal(t, wantMinutes, got.TotalMinutes, msg)
		assert.Equal(t, wantLangs, totalsByName(got.Languages), msg)
		assert.Equal(t, wantProjects, totalsByName(got.Projects), msg)
		assert.Equal(t, wantFiltered, got.FilteredSeconds, msg)

		for _, list := range [][]domain.NamedTotal{got.Languages, got.Projects} {
			for i := 1; i < len(list); i++ {
				assert.GreaterOrEqual(t, list[i-1].TotalSeconds, list[i].TotalSeconds, msg)
			}
		}
	}
}

func TestAggregate_OrderOfDaysDoesNotChangeTotals(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		days := randomDays(rng)
		shuffled := make([]domain.DaySummary, len(days))
		copy(shuffled, days)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		a := Aggregate(days, nil)
		b := Aggregate(shuffled, nil)

		assert.Equal(t, totalsByName(a.Languages), totalsByName(b.Languages))
		assert.Equal(t, totalsByName(a.Projects), totalsByName(b.Projects))
		assert.Equal(t, a.TotalMinutes, b.TotalMinutes)
		assert.Equal(t, a.FilteredSeconds, b.FilteredSeconds)
	}
}

func TestAggregate_MatchAllEqualsUnfilteredSum(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	all, err := NewProjectFilter(".*")
	require.NoError(t, err)

	for trial := 0; trial < 100; trial++ {
		days := randomDays(rng)
		var raw float64
		for _, d := range days {
			for _, p := range d.Projects {
				raw += p.TotalSeconds
			}
		}
		assert.Equal(t, raw, Aggregate(days, all).FilteredSeconds)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f, err := NewProjectFilter("^a")
	require.NoError(t, err)

	for trial := 0; trial < 50; trial++ {
		days := randomDays(rng)
		assert.Equal(t, Aggregate(days, f), Aggregate(days, f))
	}
}
