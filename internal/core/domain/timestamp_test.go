package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseTimestamp("2024-01-01T10:30:00+02:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)))

	_, err = ParseTimestamp("01/02/2024")
	assert.Error(t, err)
}

func TestDateRange_UnmarshalDates(t *testing.T) {
	var f CreativeFilter
	require.NoError(t, json.Unmarshal([]byte(`{"dateRange":{"from":"2024-01-01","to":"2024-01-02T00:00:00Z"}}`), &f))
	require.NotNil(t, f.DateRange)
	assert.Equal(t, day("2024-01-01"), f.DateRange.From)
	assert.True(t, f.DateRange.To.Equal(day("2024-01-02")))

	assert.Error(t, json.Unmarshal([]byte(`{"dateRange":{"from":"yesterday"}}`), &f))
}

func TestCreative_UnmarshalDates(t *testing.T) {
	var c Creative
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","name":"A","type":"video","createdAt":"2024-01-01","network":["meta"]}`), &c))
	assert.Equal(t, "1", c.ID)
	assert.Equal(t, FormatVideo, c.Format)
	assert.Equal(t, []string{"meta"}, c.Networks)
	assert.Equal(t, day("2024-01-01"), c.CreatedAt)
	assert.True(t, c.UpdatedAt.IsZero())

	// Encoding is unchanged, so a round trip through the API keeps RFC 3339.
	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"createdAt":"2024-01-01T00:00:00Z"`)

	var list []Creative
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"a","createdAt":"2024-02-03"},{"id":"b"}]`), &list))
	require.Len(t, list, 2)
	assert.Equal(t, day("2024-02-03"), list[0].CreatedAt)

	assert.Error(t, json.Unmarshal([]byte(`{"createdAt":"soon"}`), &c))
}
