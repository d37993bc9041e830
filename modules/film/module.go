package film

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	domain "github.com/example/taskboard/domain/film"
	"github.com/example/taskboard/storage"
)

// catalogScanLimit caps how many records the ranking engine scores per
// query. The catalog is small reference data, so this effectively means
// "all of it".
const catalogScanLimit = 2000

// FilmModule serves ranked catalog search over the storage gateway.
// The ranking itself is a pure function in domain/film; this module only
// feeds it a catalog snapshot.
type FilmModule struct {
	store storage.Store
}

var _ mono.Module = (*FilmModule)(nil)
var _ mono.ServiceProviderModule = (*FilmModule)(nil)

// NewModule creates a film module with the storage gateway injected.
func NewModule(store storage.Store) *FilmModule {
	return &FilmModule{store: store}
}

func (m *FilmModule) Name() string {
	return "film"
}

func (m *FilmModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "recommend-films", json.Unmarshal, json.Marshal, m.recommendFilms,
	); err != nil {
		return fmt.Errorf("failed to register recommend-films service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "top-films", json.Unmarshal, json.Marshal, m.topFilms,
	); err != nil {
		return fmt.Errorf("failed to register top-films service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "add-films", json.Unmarshal, json.Marshal, m.addFilms,
	); err != nil {
		return fmt.Errorf("failed to register add-films service: %w", err)
	}

	log.Printf("[film] Registered services: recommend-films, top-films, add-films")
	return nil
}

// recommendFilms handles the recommend-films service request.
func (m *FilmModule) recommendFilms(ctx context.Context, req RecommendFilmsRequest, _ *mono.Msg) (FilmsResponse, error) {
	catalog, err := m.store.TopFilms(ctx, catalogScanLimit)
	if err != nil {
		return FilmsResponse{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	return toFilmsResponse(domain.Rank(req.Query, catalog)), nil
}

// topFilms handles the top-films service request.
func (m *FilmModule) topFilms(ctx context.Context, req TopFilmsRequest, _ *mono.Msg) (FilmsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = domain.DefaultViewSize
	}
	films, err := m.store.TopFilms(ctx, limit)
	if err != nil {
		return FilmsResponse{}, fmt.Errorf("failed to load top films: %w", err)
	}
	return toFilmsResponse(films), nil
}

// addFilms handles the add-films service request. The catalog is
// reference data populated out of band; this is the in-band equivalent.
func (m *FilmModule) addFilms(ctx context.Context, req AddFilmsRequest, _ *mono.Msg) (AddFilmsResponse, error) {
	films := make([]domain.Film, 0, len(req.Films))
	for _, f := range req.Films {
		films = append(films, domain.Film{
			Title:      f.Title,
			Year:       f.Year,
			Genre:      f.Genre,
			Popularity: f.Popularity,
		})
	}
	if err := m.store.AddFilms(ctx, films); err != nil {
		return AddFilmsResponse{}, fmt.Errorf("failed to add films: %w", err)
	}
	return AddFilmsResponse{Added: len(films)}, nil
}

// Start seeds a small demo catalog when the store is empty.
func (m *FilmModule) Start(ctx context.Context) error {
	if m.store == nil {
		return fmt.Errorf("store dependency not set")
	}

	existing, err := m.store.TopFilms(ctx, 1)
	if err != nil {
		return fmt.Errorf("failed to probe film catalog: %w", err)
	}
	if len(existing) == 0 {
		if err := m.store.AddFilms(ctx, demoCatalog()); err != nil {
			return fmt.Errorf("failed to seed film catalog: %w", err)
		}
		log.Println("[film] Seeded demo catalog")
	}

	log.Println("[film] Module started")
	return nil
}

func (m *FilmModule) Stop(_ context.Context) error {
	log.Println("[film] Module stopped")
	return nil
}

// demoCatalog is a fixed stand-in for the externally populated catalog.
func demoCatalog() []domain.Film {
	return []domain.Film{
		{Title: "Silent Harbor", Year: 1997, Genre: "Drama", Popularity: 8.4},
		{Title: "Iron Meridian", Year: 2012, Genre: "Action", Popularity: 9.1},
		{Title: "Paper Lanterns", Year: 2004, Genre: "Romance", Popularity: 6.8},
		{Title: "The Last Equation", Year: 2019, Genre: "Sci-Fi", Popularity: 8.9},
		{Title: "Crooked Mile", Year: 1988, Genre: "Crime", Popularity: 7.5},
		{Title: "Summer of Static", Year: 2001, Genre: "Comedy", Popularity: 6.2},
		{Title: "Northern Veil", Year: 2015, Genre: "Thriller", Popularity: 7.9},
		{Title: "Glass Orchard", Year: 2009, Genre: "Fantasy", Popularity: 7.1},
	}
}

func toFilmsResponse(films []domain.Film) FilmsResponse {
	resp := FilmsResponse{Films: make([]FilmInfo, 0, len(films))}
	for _, f := range films {
		resp.Films = append(resp.Films, FilmInfo{
			Title:      f.Title,
			Year:       f.Year,
			Genre:      f.Genre,
			Popularity: f.Popularity,
		})
	}
	return resp
}
