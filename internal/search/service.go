package search

import (
	"context"
	"sort"
	"strings"

	"quicklip/internal/domain"
)

// Suggestion-mode tuning. Clipboard-tracked values are a low-confidence
// signal (accidental copies, one-off values), so they only surface on an
// empty query once copied at least minClipboardUsages times. A typed query
// is explicit intent and lifts the threshold entirely.
const (
	minClipboardUsages = 3
	maxSuggestedClips  = 5
	maxSuggestedStored = 10
)

// ItemSource is the stored-snippet side of a search.
type ItemSource interface {
	GetAll(ctx context.Context) ([]domain.StoredItem, error)
}

// ClipSource is the clipboard-ledger side of a search.
type ClipSource interface {
	Snapshot() []domain.TrackedClip
}

// Service merges stored items and tracked clips into one ranked, sectioned
// result list. It is read-only over both sources.
type Service struct {
	items ItemSource
	clips ClipSource
}

// NewService creates a new search service
func NewService(items ItemSource, clips ClipSource) *Service {
	return &Service{items: items, clips: clips}
}

// Search returns the ranked result list for query. An empty query is
// suggestion mode: the first stored items in store order plus the most
// frequently copied clips. A non-empty query is filter mode: every
// case-insensitive substring match, stored items first.
func (s *Service) Search(ctx context.Context, query string) ([]domain.SearchResultItem, error) {
	storedItems, err := s.items.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	clips := s.clips.Snapshot()

	if query == "" {
		return s.suggestions(storedItems, clips), nil
	}
	return s.filter(storedItems, clips, query), nil
}

func (s *Service) suggestions(storedItems []domain.StoredItem, clips []domain.TrackedClip) []domain.SearchResultItem {
	results := []domain.SearchResultItem{}

	top := storedItems
	if len(top) > maxSuggestedStored {
		top = top[:maxSuggestedStored]
	}
	for _, item := range top {
		results = append(results, storedResult(item, domain.SectionRecentlyUsed))
	}

	frequent := make([]domain.TrackedClip, 0, len(clips))
	for _, clip := range clips {
		if len(clip.Usages) >= minClipboardUsages {
			frequent = append(frequent, clip)
		}
	}
	sort.SliceStable(frequent, func(i, j int) bool {
		return len(frequent[i].Usages) > len(frequent[j].Usages)
	})
	if len(frequent) > maxSuggestedClips {
		frequent = frequent[:maxSuggestedClips]
	}
	for _, clip := range frequent {
		results = append(results, clipResult(clip, domain.SectionFrequentlyUsed))
	}

	return results
}

func (s *Service) filter(storedItems []domain.StoredItem, clips []domain.TrackedClip, query string) []domain.SearchResultItem {
	queryLower := strings.ToLower(query)
	results := []domain.SearchResultItem{}

	for _, item := range storedItems {
		if matchesStored(item, queryLower) {
			results = append(results, storedResult(item, domain.SectionStoredResults))
		}
	}
	for _, clip := range clips {
		if strings.Contains(strings.ToLower(clip.Value), queryLower) {
			results = append(results, clipResult(clip, domain.SectionClipboardResults))
		}
	}

	return results
}

// matchesStored reports whether the query matches the item's value or any
// of its tags.
func matchesStored(item domain.StoredItem, queryLower string) bool {
	if strings.Contains(strings.ToLower(item.Value), queryLower) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), queryLower) {
			return true
		}
	}
	return false
}

func storedResult(item domain.StoredItem, section string) domain.SearchResultItem {
	return domain.SearchResultItem{
		ID:      item.ID,
		Value:   item.Value,
		Tags:    item.Tags,
		Type:    domain.ResultStored,
		Section: section,
	}
}

// clipResult builds a result row for a tracked clip. The value doubles as
// the id; tracked clips have no tags.
func clipResult(clip domain.TrackedClip, section string) domain.SearchResultItem {
	return domain.SearchResultItem{
		ID:      clip.Value,
		Value:   clip.Value,
		Tags:    []string{},
		Type:    domain.ResultClipboardTracked,
		Section: section,
	}
}
