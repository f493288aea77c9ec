// Package highlight splits text into matched and unmatched spans against a
// query, for rendering search matches.
package highlight

import "unicode"

// Segment is one span of tokenized text. Plain precedes Matched; joining
// Plain+Matched over all segments reconstructs the input text exactly.
// Offset counts runes from the start of the text.
type Segment struct {
	Offset  int
	Plain   string
	Matched string
}

// Tokenize scans text for case-insensitive, non-overlapping occurrences of
// query, left to right. Matched spans keep the original casing of text.
// An empty query yields a single all-plain segment. Pure: the result is
// derived from (text, query) alone.
func Tokenize(text, query string) []Segment {
	textRunes := []rune(text)
	textLower := lowerRunes(textRunes)
	queryLower := lowerRunes([]rune(query))

	if len(queryLower) == 0 {
		return []Segment{{Offset: 0, Plain: text, Matched: ""}}
	}

	var segments []Segment
	cursor := 0
	for {
		rel := indexRunes(textLower[cursor:], queryLower)
		if rel < 0 {
			if cursor < len(textRunes) {
				segments = append(segments, Segment{
					Offset:  cursor,
					Plain:   string(textRunes[cursor:]),
					Matched: "",
				})
			}
			return segments
		}

		idx := cursor + rel
		segments = append(segments, Segment{
			Offset:  cursor,
			Plain:   string(textRunes[cursor:idx]),
			Matched: string(textRunes[idx : idx+len(queryLower)]),
		})
		cursor = idx + len(queryLower)
	}
}

// lowerRunes lowercases rune by rune. The per-rune mapping is always 1:1,
// so indices into the lowered slice stay valid for the original runes even
// where full-string lowering would change a rune's byte length.
func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// indexRunes returns the index of the first occurrence of needle in
// haystack, or -1.
func indexRunes(haystack, needle []rune) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
