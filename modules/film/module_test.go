package film

import (
	"context"
	"path/filepath"
	"testing"

	domain "github.com/example/taskboard/domain/film"
	"github.com/example/taskboard/storage/jsonfile"
)

func newTestModule(t *testing.T) *FilmModule {
	t.Helper()
	store := jsonfile.New(filepath.Join(t.TempDir(), "db.json"))
	module := NewModule(store)

	err := store.AddFilms(context.Background(), []domain.Film{
		{Title: "Nova", Genre: "Drama", Year: 2001, Popularity: 8.0},
		{Title: "Nova Two", Genre: "Action", Year: 2001, Popularity: 9.0},
		{Title: "Redline", Genre: "Action", Year: 2010, Popularity: 6.5},
	})
	if err != nil {
		t.Fatalf("AddFilms() error = %v", err)
	}
	return module
}

func TestRecommendFilms_RankedByScoreThenPopularity(t *testing.T) {
	module := newTestModule(t)

	resp, err := module.recommendFilms(context.Background(), RecommendFilmsRequest{Query: "nova"}, nil)
	if err != nil {
		t.Fatalf("recommendFilms() error = %v", err)
	}
	if len(resp.Films) != 2 {
		t.Fatalf("expected 2 films, got %d", len(resp.Films))
	}
	if resp.Films[0].Title != "Nova Two" || resp.Films[1].Title != "Nova" {
		t.Errorf("unexpected order: %+v", resp.Films)
	}
}

func TestRecommendFilms_EmptyQueryDefaultView(t *testing.T) {
	module := newTestModule(t)

	resp, err := module.recommendFilms(context.Background(), RecommendFilmsRequest{Query: ""}, nil)
	if err != nil {
		t.Fatalf("recommendFilms() error = %v", err)
	}
	if len(resp.Films) != 3 {
		t.Fatalf("expected the whole small catalog, got %d", len(resp.Films))
	}
	if resp.Films[0].Title != "Nova Two" {
		t.Errorf("expected most popular film first, got %q", resp.Films[0].Title)
	}
}

func TestRecommendFilms_NoMatchFallsBack(t *testing.T) {
	module := newTestModule(t)

	resp, err := module.recommendFilms(context.Background(), RecommendFilmsRequest{Query: "zzz-no-match"}, nil)
	if err != nil {
		t.Fatalf("recommendFilms() error = %v", err)
	}
	if len(resp.Films) == 0 {
		t.Fatal("fallback must never return an empty result for a non-empty catalog")
	}
}

func TestAddFilms(t *testing.T) {
	store := jsonfile.New(filepath.Join(t.TempDir(), "db.json"))
	module := NewModule(store)

	resp, err := module.addFilms(context.Background(), AddFilmsRequest{
		Films: []FilmInfo{
			{Title: "Glass Orchard", Genre: "Fantasy", Year: 2009, Popularity: 7.1},
		},
	}, nil)
	if err != nil {
		t.Fatalf("addFilms() error = %v", err)
	}
	if resp.Added != 1 {
		t.Errorf("expected 1 added, got %d", resp.Added)
	}

	top, err := module.topFilms(context.Background(), TopFilmsRequest{}, nil)
	if err != nil {
		t.Fatalf("topFilms() error = %v", err)
	}
	if len(top.Films) != 1 || top.Films[0].Title != "Glass Orchard" {
		t.Errorf("unexpected catalog: %+v", top.Films)
	}
}

func TestStart_SeedsEmptyCatalog(t *testing.T) {
	store := jsonfile.New(filepath.Join(t.TempDir(), "db.json"))
	module := NewModule(store)

	if err := module.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	films, err := store.TopFilms(context.Background(), 100)
	if err != nil {
		t.Fatalf("TopFilms() error = %v", err)
	}
	if len(films) == 0 {
		t.Fatal("expected the demo catalog to be seeded")
	}

	// A second start must not duplicate the seed.
	if err := module.Start(context.Background()); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}
	again, err := store.TopFilms(context.Background(), 100)
	if err != nil {
		t.Fatalf("TopFilms() error = %v", err)
	}
	if len(again) != len(films) {
		t.Errorf("seed ran twice: %d vs %d films", len(again), len(films))
	}
}
