package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"quicklip/internal/domain"
)

func resultList() []domain.SearchResultItem {
	return []domain.SearchResultItem{
		{ID: "1", Value: "a", Type: domain.ResultStored, Section: domain.SectionRecentlyUsed},
		{ID: "2", Value: "b", Type: domain.ResultStored, Section: domain.SectionRecentlyUsed},
		{ID: "c", Value: "c", Type: domain.ResultClipboardTracked, Section: domain.SectionFrequentlyUsed},
		{ID: "d", Value: "d", Type: domain.ResultClipboardTracked, Section: domain.SectionFrequentlyUsed},
	}
}

func TestSectionLabelOnlyAtTypeTransitions(t *testing.T) {
	results := resultList()

	assert.Equal(t, domain.SectionRecentlyUsed, SectionLabel(results, 0))
	assert.Equal(t, "", SectionLabel(results, 1))
	assert.Equal(t, domain.SectionFrequentlyUsed, SectionLabel(results, 2))
	assert.Equal(t, "", SectionLabel(results, 3))
}

func TestSectionLabelOutOfRange(t *testing.T) {
	results := resultList()

	assert.Equal(t, "", SectionLabel(results, -1))
	assert.Equal(t, "", SectionLabel(results, len(results)))
	assert.Equal(t, "", SectionLabel(nil, 0))
}

func TestRenderRowShowsValue(t *testing.T) {
	r := NewResultRenderer(NewStyles())
	item := domain.SearchResultItem{ID: "1", Value: "hello world", Type: domain.ResultStored}

	row := r.RenderRow(item, "", false, 0)
	assert.Contains(t, row, "hello world")
}

func TestRenderRowShowsTags(t *testing.T) {
	r := NewResultRenderer(NewStyles())
	item := domain.SearchResultItem{ID: "1", Value: "v", Tags: []string{"work", "mail"}, Type: domain.ResultStored}

	row := r.RenderRow(item, "", false, 0)
	assert.Contains(t, row, "#work")
	assert.Contains(t, row, "#mail")
}

func TestRenderRowCollapsesNewlines(t *testing.T) {
	r := NewResultRenderer(NewStyles())
	item := domain.SearchResultItem{ID: "1", Value: "line one\nline two", Type: domain.ResultStored}

	row := r.RenderRow(item, "", false, 0)
	assert.False(t, strings.Contains(row, "\n"))
	assert.Contains(t, row, "line one line two")
}
