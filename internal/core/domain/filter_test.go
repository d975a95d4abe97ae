package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixtureCreatives() []Creative {
	return []Creative{
		{
			ID: "1", Name: "B", Format: FormatVideo, Status: StatusActive,
			CreatedAt: day("2024-01-01"),
			Tags:      Tags{Hook: "question", Style: "ugc"},
			Networks:  []string{"meta", "tiktok"},
			Metrics:   &Metrics{CTR: 5, IPM: 10, CPI: 1.5},
		},
		{
			ID: "2", Name: "A", Format: FormatBanner, Status: StatusPaused,
			CreatedAt: day("2024-02-01"),
			Tags:      Tags{Hook: "problem", Style: "cinematic"},
			Networks:  []string{"google"},
			Metrics:   &Metrics{CTR: 3, IPM: 12, CPI: 0.9},
		},
		{
			ID: "3", Name: "C", Format: FormatPlayable, Status: StatusTesting,
			CreatedAt: day("2024-03-01"),
		},
	}
}

func ids(cs []Creative) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestMatches_Format(t *testing.T) {
	f := CreativeFilter{Format: []Format{FormatVideo, FormatPlayable}}
	got := Query(fixtureCreatives(), f, "", SortAsc)
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestMatches_HookOnlyAppliedWhenTagged(t *testing.T) {
	f := CreativeFilter{Hook: []string{"question"}}
	got := Query(fixtureCreatives(), f, "", SortAsc)
	// "3" carries no hook tag so the predicate does not apply to it.
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestMatches_StyleOnlyAppliedWhenTagged(t *testing.T) {
	f := CreativeFilter{Style: []string{"cinematic"}}
	got := Query(fixtureCreatives(), f, "", SortAsc)
	assert.Equal(t, []string{"2", "3"}, ids(got))
}

func TestMatches_Status(t *testing.T) {
	f := CreativeFilter{Status: []Status{StatusPaused}}
	assert.Equal(t, []string{"2"}, ids(Query(fixtureCreatives(), f, "", SortAsc)))
}

func TestMatches_NetworkRequiresIntersection(t *testing.T) {
	f := CreativeFilter{Network: []string{"tiktok", "unity"}}
	// "3" has no network list and is excluded.
	assert.Equal(t, []string{"1"}, ids(Query(fixtureCreatives(), f, "", SortAsc)))
}

func TestMatches_DateRangeInclusive(t *testing.T) {
	f := CreativeFilter{DateRange: &DateRange{From: day("2024-01-01"), To: day("2024-02-01")}}
	assert.Equal(t, []string{"1", "2"}, ids(Query(fixtureCreatives(), f, "", SortAsc)))
}

func TestMatches_PerformanceThreshold(t *testing.T) {
	tests := []struct {
		name string
		pt   PerformanceThreshold
		want []string
	}{
		{"gt", PerformanceThreshold{Metric: "ctr", Operator: OpGreater, Value: 4}, []string{"1"}},
		{"lt", PerformanceThreshold{Metric: "cpi", Operator: OpLess, Value: 1}, []string{"2"}},
		{"eq", PerformanceThreshold{Metric: "ipm", Operator: OpEqual, Value: 12}, []string{"2"}},
		{"unknown metric", PerformanceThreshold{Metric: "roas", Operator: OpGreater, Value: 0}, []string{}},
		{"unset retention", PerformanceThreshold{Metric: "retentionD1", Operator: OpGreater, Value: 0}, []string{}},
		{"bad operator", PerformanceThreshold{Metric: "ctr", Operator: "gte", Value: 0}, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pt := tc.pt
			got := Query(fixtureCreatives(), CreativeFilter{PerformanceThreshold: &pt}, "", SortAsc)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestMatches_ExplicitEmptySetMatchesNothing(t *testing.T) {
	f := CreativeFilter{Status: []Status{}}
	assert.Empty(t, Query(fixtureCreatives(), f, "", SortAsc))
}

func TestQuery_IdentityFilter(t *testing.T) {
	all := fixtureCreatives()
	got := Query(all, CreativeFilter{}, SortByName, SortAsc)
	assert.Equal(t, []string{"2", "1", "3"}, ids(got))
}

func TestQuery_Soundness(t *testing.T) {
	filters := []CreativeFilter{
		{Format: []Format{FormatVideo}},
		{Network: []string{"google"}, Status: []Status{StatusPaused}},
		{PerformanceThreshold: &PerformanceThreshold{Metric: "ctr", Operator: OpGreater, Value: 1}},
		{DateRange: &DateRange{From: day("2024-02-01"), To: day("2024-12-31")}},
	}
	for _, f := range filters {
		for _, c := range Query(fixtureCreatives(), f, SortByName, SortAsc) {
			assert.True(t, f.Matches(c), "creative %s returned but does not match", c.ID)
		}
	}
}

func TestQuery_DoesNotAliasInput(t *testing.T) {
	all := fixtureCreatives()
	got := Query(all, CreativeFilter{}, "", SortAsc)
	got[0].Networks[0] = "changed"
	got[0].Metrics.CTR = 99
	assert.Equal(t, "meta", all[0].Networks[0])
	assert.Equal(t, 5.0, all[0].Metrics.CTR)
}

func TestMerge_ReplacesOnlyProvidedPredicates(t *testing.T) {
	f := CreativeFilter{Format: []Format{FormatVideo}, Hook: []string{"question"}}
	f = f.Merge(CreativeFilter{Format: []Format{FormatBanner}})
	assert.Equal(t, []Format{FormatBanner}, f.Format)
	assert.Equal(t, []string{"question"}, f.Hook)
	assert.False(t, f.IsZero())
	assert.True(t, CreativeFilter{}.IsZero())
}

func TestPatchApply_EmptyPatchIsIdentity(t *testing.T) {
	c := fixtureCreatives()[0]
	assert.Equal(t, c, CreativePatch{}.Apply(c))
}

func TestPatchApply_IncomingWins(t *testing.T) {
	name := "Renamed"
	status := StatusArchived
	c := CreativePatch{Name: &name, Status: &status}.Apply(fixtureCreatives()[0])
	assert.Equal(t, "Renamed", c.Name)
	assert.Equal(t, StatusArchived, c.Status)
	assert.Equal(t, "question", c.Tags.Hook)
}
