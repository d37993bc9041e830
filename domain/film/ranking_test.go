package film

import "testing"

func testCatalog() []Film {
	return []Film{
		{Title: "Nova", Genre: "Drama", Year: 2001, Popularity: 8.0},
		{Title: "Nova Two", Genre: "Action", Year: 2001, Popularity: 9.0},
		{Title: "Quiet Rooms", Genre: "Drama", Year: 1994, Popularity: 7.2},
		{Title: "Redline", Genre: "Action", Year: 2010, Popularity: 6.5},
		{Title: "Winterlight", Genre: "Romance", Year: 2001, Popularity: 5.9},
		{Title: "Afterglow", Genre: "Sci-Fi", Year: 2020, Popularity: 9.4},
	}
}

func TestRank_TitleMatchOrderedByPopularity(t *testing.T) {
	got := Rank("nova", testCatalog())

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	// Both score 3 on the title substring; popularity breaks the tie.
	if got[0].Title != "Nova Two" {
		t.Errorf("expected Nova Two first, got %q", got[0].Title)
	}
	if got[1].Title != "Nova" {
		t.Errorf("expected Nova second, got %q", got[1].Title)
	}
}

func TestRank_EmptyQueryReturnsDefaultView(t *testing.T) {
	got := Rank("", testCatalog())

	if len(got) != DefaultViewSize {
		t.Fatalf("expected %d results, got %d", DefaultViewSize, len(got))
	}
	if got[0].Title != "Afterglow" {
		t.Errorf("expected most popular film first, got %q", got[0].Title)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Popularity > got[i-1].Popularity {
			t.Errorf("results not ordered by popularity at index %d", i)
		}
	}
}

func TestRank_NoMatchFallsBackToDefaultView(t *testing.T) {
	got := Rank("zzz-no-match", testCatalog())

	if len(got) == 0 {
		t.Fatal("fallback must never return an empty result for a non-empty catalog")
	}
	if len(got) != DefaultViewSize {
		t.Fatalf("expected %d results, got %d", DefaultViewSize, len(got))
	}
	if got[0].Title != "Afterglow" {
		t.Errorf("expected most popular film first, got %q", got[0].Title)
	}
}

func TestRank_Scoring(t *testing.T) {
	tests := []struct {
		name  string
		query string
		first string
	}{
		{
			// Genre match only: both dramas qualify, popularity decides.
			name:  "exact genre match",
			query: "drama",
			first: "Nova",
		},
		{
			// "Nova" and "Nova Two" score 3+1 via title and year,
			// "Winterlight" scores 1 on the year alone.
			name:  "year match stacks with title",
			query: "2001",
			first: "Nova Two",
		},
		{
			name:  "query is case-insensitive",
			query: "NOVA",
			first: "Nova Two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.query, testCatalog())
			if len(got) == 0 {
				t.Fatal("expected results")
			}
			if got[0].Title != tt.first {
				t.Errorf("expected %q first, got %q", tt.first, got[0].Title)
			}
		})
	}
}

func TestRank_YearQueryScoresYearMatches(t *testing.T) {
	got := Rank("2001", testCatalog())

	// Nova Two (4), Nova (4), Winterlight (1).
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	if got[2].Title != "Winterlight" {
		t.Errorf("expected lowest-scoring match last, got %q", got[2].Title)
	}
}

func TestRank_CapsAtMaxResults(t *testing.T) {
	catalog := make([]Film, 0, 15)
	for i := 0; i < 15; i++ {
		catalog = append(catalog, Film{
			Title:      "Echo Chamber",
			Genre:      "Drama",
			Year:       2000 + i,
			Popularity: float64(i),
		})
	}

	got := Rank("echo", catalog)
	if len(got) != MaxResults {
		t.Fatalf("expected %d results, got %d", MaxResults, len(got))
	}
}

func TestRank_DeterministicAcrossCalls(t *testing.T) {
	first := Rank("drama", testCatalog())
	second := Rank("drama", testCatalog())

	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("results diverge at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestTopByPopularity_EmptyCatalog(t *testing.T) {
	got := TopByPopularity(nil, DefaultViewSize)
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}
