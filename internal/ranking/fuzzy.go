package ranking

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

type suggestion struct {
	value string
	ratio float64
}

// Suggest returns up to maxResults candidates whose similarity to query is at
// least cutoff, most similar first. Similarity is the Ratcliff/Obershelp ratio
// over lowercased runes, in [0, 1]. Candidates with equal ratios keep their
// input order. A blank query or a non-positive maxResults yields no
// suggestions; cutoff is clamped into [0, 1] and a NaN cutoff admits only
// exact matches.
func Suggest(query string, candidates []string, maxResults int, cutoff float64) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || maxResults <= 0 || len(candidates) == 0 {
		return []string{}
	}
	if math.IsNaN(cutoff) {
		cutoff = 1
	}
	cutoff = min(max(cutoff, 0), 1)

	// seq2 is the cached side in difflib, so it holds the query.
	matcher := difflib.NewMatcher(nil, splitRunes(query))

	matches := make([]suggestion, 0, len(candidates))
	for _, candidate := range candidates {
		matcher.SetSeq1(splitRunes(strings.ToLower(candidate)))

		if matcher.RealQuickRatio() < cutoff || matcher.QuickRatio() < cutoff {
			continue
		}

		ratio := matcher.Ratio()
		if ratio < cutoff {
			continue
		}

		matches = append(matches, suggestion{value: candidate, ratio: ratio})
	}

	slices.SortStableFunc(matches, func(a, b suggestion) int {
		return cmp.Compare(b.ratio, a.ratio)
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.value
	}

	return result
}

func splitRunes(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}

	return out
}
