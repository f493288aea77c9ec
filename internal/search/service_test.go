package search

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicklip/internal/domain"
)

type fakeItems struct {
	items []domain.StoredItem
}

func (f fakeItems) GetAll(context.Context) ([]domain.StoredItem, error) {
	return f.items, nil
}

type fakeClips struct {
	clips []domain.TrackedClip
}

func (f fakeClips) Snapshot() []domain.TrackedClip {
	return f.clips
}

func storedN(n int) []domain.StoredItem {
	items := make([]domain.StoredItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, domain.StoredItem{
			ID:    fmt.Sprintf("id-%d", i),
			Value: fmt.Sprintf("value-%d", i),
			Tags:  []string{},
		})
	}
	return items
}

func clipWithUsages(value string, count int) domain.TrackedClip {
	usages := make([]time.Time, count)
	for i := range usages {
		usages[i] = time.Now()
	}
	return domain.TrackedClip{Value: value, Usages: usages}
}

func TestEmptyQueryCapsStoredItems(t *testing.T) {
	svc := NewService(fakeItems{items: storedN(12)}, fakeClips{clips: []domain.TrackedClip{
		clipWithUsages("popular", 4),
	}})

	results, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, results, 11)

	// First ten stored items in store order
	for i := 0; i < 10; i++ {
		assert.Equal(t, domain.ResultStored, results[i].Type)
		assert.Equal(t, fmt.Sprintf("value-%d", i), results[i].Value)
		assert.Equal(t, domain.SectionRecentlyUsed, results[i].Section)
	}
	assert.Equal(t, domain.ResultClipboardTracked, results[10].Type)
	assert.Equal(t, "popular", results[10].Value)
	assert.Equal(t, domain.SectionFrequentlyUsed, results[10].Section)
}

func TestEmptyQueryExcludesClipsBelowThreshold(t *testing.T) {
	svc := NewService(fakeItems{}, fakeClips{clips: []domain.TrackedClip{
		clipWithUsages("rare", 2),
		clipWithUsages("frequent", 3),
	}})

	results, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "frequent", results[0].Value)
}

func TestEmptyQuerySortsClipsByUsageCount(t *testing.T) {
	svc := NewService(fakeItems{}, fakeClips{clips: []domain.TrackedClip{
		clipWithUsages("third", 3),
		clipWithUsages("first", 9),
		clipWithUsages("second", 5),
	}})

	results, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Value)
	assert.Equal(t, "second", results[1].Value)
	assert.Equal(t, "third", results[2].Value)
}

func TestEmptyQueryCapsClips(t *testing.T) {
	clips := make([]domain.TrackedClip, 0, 7)
	for i := 0; i < 7; i++ {
		clips = append(clips, clipWithUsages(fmt.Sprintf("clip-%d", i), 3+i))
	}
	svc := NewService(fakeItems{}, fakeClips{clips: clips})

	results, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestQueryMatchesTags(t *testing.T) {
	svc := NewService(fakeItems{items: []domain.StoredItem{
		{ID: "1", Value: "abc", Tags: []string{"work"}},
		{ID: "2", Value: "def", Tags: []string{"home"}},
	}}, fakeClips{})

	results, err := svc.Search(context.Background(), "wor")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "abc", results[0].Value)
	assert.Equal(t, domain.SectionStoredResults, results[0].Section)
}

func TestQueryMatchesCaseInsensitively(t *testing.T) {
	svc := NewService(fakeItems{items: []domain.StoredItem{
		{ID: "1", Value: "Hello World", Tags: []string{}},
	}}, fakeClips{clips: []domain.TrackedClip{
		clipWithUsages("HELLO again", 1),
	}})

	results, err := svc.Search(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.ResultStored, results[0].Type)
	assert.Equal(t, domain.ResultClipboardTracked, results[1].Type)
	assert.Equal(t, domain.SectionClipboardResults, results[1].Section)
}

func TestQueryIgnoresThresholdAndCaps(t *testing.T) {
	items := make([]domain.StoredItem, 0, 15)
	for i := 0; i < 15; i++ {
		items = append(items, domain.StoredItem{ID: fmt.Sprintf("%d", i), Value: "match", Tags: []string{}})
	}
	svc := NewService(fakeItems{items: items}, fakeClips{clips: []domain.TrackedClip{
		clipWithUsages("match once", 1),
	}})

	results, err := svc.Search(context.Background(), "match")
	require.NoError(t, err)
	// All 15 stored matches plus the single-use clip
	assert.Len(t, results, 16)
}

func TestQueryKeepsSourceOrder(t *testing.T) {
	svc := NewService(fakeItems{items: []domain.StoredItem{
		{ID: "1", Value: "zz needle", Tags: []string{}},
		{ID: "2", Value: "aa needle", Tags: []string{}},
	}}, fakeClips{clips: []domain.TrackedClip{
		clipWithUsages("needle late", 1),
		clipWithUsages("needle early", 9),
	}})

	results, err := svc.Search(context.Background(), "needle")
	require.NoError(t, err)
	require.Len(t, results, 4)
	// Stored first in store order, then clips in ledger order
	assert.Equal(t, "zz needle", results[0].Value)
	assert.Equal(t, "aa needle", results[1].Value)
	assert.Equal(t, "needle late", results[2].Value)
	assert.Equal(t, "needle early", results[3].Value)
}

func TestClipResultsUseValueAsID(t *testing.T) {
	svc := NewService(fakeItems{}, fakeClips{clips: []domain.TrackedClip{
		clipWithUsages("the value", 3),
	}})

	results, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "the value", results[0].ID)
	assert.Empty(t, results[0].Tags)
}
