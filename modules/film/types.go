package film

import "context"

// FilmInfo is the wire form of a catalog record.
type FilmInfo struct {
	Title      string  `json:"title"`
	Year       int     `json:"year"`
	Genre      string  `json:"genre"`
	Popularity float64 `json:"popularity"`
}

// RecommendFilmsRequest asks for a ranked view of the catalog. An empty
// query yields the popularity-ordered default view.
type RecommendFilmsRequest struct {
	Query string `json:"query"`
}

// TopFilmsRequest asks for the most popular films.
type TopFilmsRequest struct {
	Limit int `json:"limit,omitempty"`
}

// AddFilmsRequest ingests catalog records.
type AddFilmsRequest struct {
	Films []FilmInfo `json:"films"`
}

// AddFilmsResponse reports how many records were ingested.
type AddFilmsResponse struct {
	Added int `json:"added"`
}

// FilmsResponse is a sequence of catalog records.
type FilmsResponse struct {
	Films []FilmInfo `json:"films"`
}

// FilmPort is the contract driving adapters use to reach the film
// services.
type FilmPort interface {
	RecommendFilms(ctx context.Context, query string) (*FilmsResponse, error)
	TopFilms(ctx context.Context, limit int) (*FilmsResponse, error)
	AddFilms(ctx context.Context, req *AddFilmsRequest) (*AddFilmsResponse, error)
}
