package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creative-hub/internal/core/domain"
	"creative-hub/internal/core/port/mocks"
)

func TestMockCreatives(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	all := MockCreatives(12, 42, now)

	// n creatives plus one variation of the newest.
	require.Len(t, all, 13)

	v := all[0]
	assert.True(t, v.IsVariation)
	assert.Equal(t, all[1].ID, v.ParentID)
	assert.Nil(t, v.Metrics)
	assert.Equal(t, now, v.CreatedAt)

	formats := map[domain.Format]bool{}
	ids := map[string]bool{}
	for i, c := range all {
		formats[c.Format] = true
		assert.False(t, ids[c.ID], "duplicate id %s", c.ID)
		ids[c.ID] = true
		assert.NotEmpty(t, c.Networks)
		if i > 0 {
			assert.False(t, c.CreatedAt.After(all[i-1].CreatedAt), "not newest first at %d", i)
			require.NotNil(t, c.Metrics)
			assert.Positive(t, c.Metrics.Impressions)
		}
	}
	assert.Len(t, formats, 3)
}

func TestMockCreativesDeterministic(t *testing.T) {
	now := time.Now()
	a := MockCreatives(5, 7, now)
	b := MockCreatives(5, 7, now)
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Tags, b[i].Tags)
		assert.Equal(t, a[i].Metrics, b[i].Metrics)
	}
}

func TestMockCreativesEmpty(t *testing.T) {
	assert.Empty(t, MockCreatives(0, 1, time.Now()))
}

func TestSeed(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	repo.EXPECT().UpsertCreative(mock.Anything, mock.Anything).Return(nil).Times(4)

	require.NoError(t, Seed(context.Background(), repo, 3))
}

func TestSeedStopsOnError(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	repo.EXPECT().UpsertCreative(mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	assert.Error(t, Seed(context.Background(), repo, 3))
}
