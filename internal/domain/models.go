package domain

import "time"

// StoredItem is a snippet the user explicitly saved, with optional tags
// used for searching. IDs are assigned once at creation and never reused.
type StoredItem struct {
	ID    string   `json:"id"`
	Value string   `json:"value"`
	Tags  []string `json:"tags"`
}

// Clipboard is the single persisted record holding every stored item,
// in insertion order.
type Clipboard struct {
	Items []StoredItem `json:"items"`
}

// TrackedClip is one value observed on the system clipboard together with
// the times it was copied. The value is its own identity.
type TrackedClip struct {
	Value  string
	Usages []time.Time
}

// ResultType distinguishes where a search result came from.
type ResultType int

const (
	ResultStored ResultType = iota
	ResultClipboardTracked
)

// Section labels shown above the first result of each contiguous type run.
const (
	SectionRecentlyUsed     = "Recently used"
	SectionFrequentlyUsed   = "Frequently used in clipboard"
	SectionStoredResults    = "Stored results"
	SectionClipboardResults = "Clipboard results"
)

// SearchResultItem is a read-only row in a ranked result list. It is built
// fresh on every search and never persisted. For clipboard-tracked entries
// the id is the value itself.
type SearchResultItem struct {
	ID      string
	Value   string
	Tags    []string
	Type    ResultType
	Section string
}
