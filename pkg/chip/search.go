package chip

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Match is a filtered chip matching a search query.
type Match struct {
	Chip Chip
	// Position is the chip's index in FilteredChips, usable with TakeChipAt.
	Position int
	// Score ranks the match; higher is better.
	Score int
	// Text is the normalized title the query was matched against.
	Text string
	// MatchedIndexes are byte offsets into Text of the matched characters.
	// Empty when only the subtitle matched.
	MatchedIndexes []int
}

// Search returns the filtered chips of ds whose title or subtitle fuzzily
// matches query, best match first. Matching ignores case and diacritics.
// An empty query returns every filtered chip in order.
func Search(ds DataSource, query string) []Match {
	chips := ds.FilteredChips()
	titles := make([]string, len(chips))
	subtitles := make([]string, len(chips))
	for i, c := range chips {
		titles[i] = Normalize(c.Title())
		subtitles[i] = Normalize(c.Subtitle())
	}

	query = strings.TrimSpace(Normalize(query))
	if query == "" {
		matches := make([]Match, len(chips))
		for i, c := range chips {
			matches[i] = Match{Chip: c, Position: i, Text: titles[i]}
		}
		return matches
	}

	byPosition := make(map[int]*Match)
	for _, m := range fuzzy.Find(query, titles) {
		byPosition[m.Index] = &Match{
			Chip:           chips[m.Index],
			Position:       m.Index,
			Score:          m.Score,
			Text:           titles[m.Index],
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	for _, m := range fuzzy.Find(query, subtitles) {
		if existing, ok := byPosition[m.Index]; ok {
			existing.Score = max(existing.Score, m.Score)
			continue
		}
		byPosition[m.Index] = &Match{
			Chip:     chips[m.Index],
			Position: m.Index,
			Score:    m.Score,
			Text:     titles[m.Index],
		}
	}

	matches := make([]Match, 0, len(byPosition))
	for _, m := range byPosition {
		matches = append(matches, *m)
	}
	slices.SortFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Position, b.Position)
	})
	return matches
}

// Normalize removes diacritics from s, so "Zoë" becomes "Zoe".
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
