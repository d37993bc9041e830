package film

import (
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultViewSize is how many films the popularity-ordered default
	// view returns when the query is empty or nothing matches.
	DefaultViewSize = 5

	// MaxResults caps a ranked result set.
	MaxResults = 10
)

// Score weights for query matches.
const (
	titleScore = 3
	genreScore = 2
	yearScore  = 1
)

// Rank orders a catalog snapshot against a free-text query. It is a pure
// function of its inputs: no state, no I/O.
//
// An empty query yields the top DefaultViewSize films by popularity. A
// non-empty query scores every record (+3 title substring, +2 exact genre,
// +1 exact year for all-digit queries), discards zero scores, and returns
// up to MaxResults films ordered by score then popularity, both descending.
// When nothing scores, the default view is returned instead of an empty
// result.
func Rank(query string, catalog []Film) []Film {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return TopByPopularity(catalog, DefaultViewSize)
	}

	year, isYear := queryYear(q)

	type scored struct {
		score int
		film  Film
	}
	matches := make([]scored, 0, len(catalog))
	for _, f := range catalog {
		score := 0
		if strings.Contains(strings.ToLower(f.Title), q) {
			score += titleScore
		}
		if q == strings.ToLower(f.Genre) {
			score += genreScore
		}
		if isYear && year == f.Year {
			score += yearScore
		}
		if score > 0 {
			matches = append(matches, scored{score: score, film: f})
		}
	}

	if len(matches) == 0 {
		return TopByPopularity(catalog, DefaultViewSize)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].film.Popularity > matches[j].film.Popularity
	})

	n := len(matches)
	if n > MaxResults {
		n = MaxResults
	}
	result := make([]Film, 0, n)
	for _, m := range matches[:n] {
		result = append(result, m.film)
	}
	return result
}

// TopByPopularity returns up to n films ordered by popularity descending.
// The input slice is not modified.
func TopByPopularity(catalog []Film, n int) []Film {
	sorted := make([]Film, len(catalog))
	copy(sorted, catalog)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity > sorted[j].Popularity
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// queryYear parses q as a release year. Only all-digit queries qualify.
func queryYear(q string) (int, bool) {
	if q == "" {
		return 0, false
	}
	for _, r := range q {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	year, err := strconv.Atoi(q)
	if err != nil {
		return 0, false
	}
	return year, true
}
