package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort_ScenarioNameAsc(t *testing.T) {
	all := []Creative{
		{ID: "1", Name: "B", CreatedAt: day("2024-01-01"), Metrics: &Metrics{CTR: 5}},
		{ID: "2", Name: "A", CreatedAt: day("2024-02-01"), Metrics: &Metrics{CTR: 3}},
	}
	assert.Equal(t, []string{"2", "1"}, ids(Query(all, CreativeFilter{}, SortByName, SortAsc)))

	f := CreativeFilter{PerformanceThreshold: &PerformanceThreshold{Metric: "ctr", Operator: OpGreater, Value: 4}}
	assert.Equal(t, []string{"1"}, ids(Query(all, f, SortByName, SortAsc)))
}

func TestSort_NameDescReversesAsc(t *testing.T) {
	all := fixtureCreatives()
	asc := ids(Query(all, CreativeFilter{}, SortByName, SortAsc))
	desc := ids(Query(all, CreativeFilter{}, SortByName, SortDesc))
	slices.Reverse(desc)
	assert.Equal(t, asc, desc)
}

func TestSort_CreatedAt(t *testing.T) {
	all := fixtureCreatives()
	assert.Equal(t, []string{"3", "2", "1"}, ids(Query(all, CreativeFilter{}, SortByCreatedAt, SortDesc)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Query(all, CreativeFilter{}, SortByCreatedAt, SortAsc)))
}

func TestSort_Metric(t *testing.T) {
	all := fixtureCreatives()[:2]
	assert.Equal(t, []string{"2", "1"}, ids(Query(all, CreativeFilter{}, SortByCTR, SortAsc)))
	assert.Equal(t, []string{"1", "2"}, ids(Query(all, CreativeFilter{}, SortByCPI, SortDesc)))
	assert.Equal(t, []string{"2", "1"}, ids(Query(all, CreativeFilter{}, SortByIPM, SortDesc)))
}

func TestSort_MetricSkippedWhenSnapshotMissing(t *testing.T) {
	all := fixtureCreatives()
	// "3" has no metrics: the metric sort degrades to the input order.
	assert.Equal(t, []string{"1", "2", "3"}, ids(Query(all, CreativeFilter{}, SortByCTR, SortAsc)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Query(all, CreativeFilter{}, SortByCTR, SortDesc)))
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	all := fixtureCreatives()[:2]
	assert.Equal(t, []string{"1", "2"}, ids(Query(all, CreativeFilter{}, "bogus", SortDesc)))
}

func TestSort_StableOnTies(t *testing.T) {
	all := []Creative{
		{ID: "a", Name: "same"},
		{ID: "b", Name: "same"},
		{ID: "c", Name: "same"},
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids(Query(all, CreativeFilter{}, SortByName, SortAsc)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(Query(all, CreativeFilter{}, SortByName, SortDesc)))
}

func TestMetricsValue(t *testing.T) {
	d7 := 12.5
	m := &Metrics{Impressions: 1000, Installs: 7, Retention: &Retention{D7: &d7}}

	v, ok := m.Value("impressions")
	assert.True(t, ok)
	assert.Equal(t, 1000.0, v)

	v, ok = m.Value("retentionD7")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	_, ok = m.Value("retentionD1")
	assert.False(t, ok)

	var nilMetrics *Metrics
	_, ok = nilMetrics.Value("ctr")
	assert.False(t, ok)
}
