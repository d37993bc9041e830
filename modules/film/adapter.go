package film

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// filmAdapter wraps ServiceContainer for type-safe cross-module calls.
// It implements the FilmPort interface.
type filmAdapter struct {
	container mono.ServiceContainer
}

// NewFilmAdapter creates an adapter for the film services.
func NewFilmAdapter(container mono.ServiceContainer) FilmPort {
	if container == nil {
		panic("film adapter requires non-nil ServiceContainer")
	}
	return &filmAdapter{container: container}
}

func (a *filmAdapter) RecommendFilms(ctx context.Context, query string) (*FilmsResponse, error) {
	req := RecommendFilmsRequest{Query: query}
	var resp FilmsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "recommend-films", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("recommend-films service call failed: %w", err)
	}
	return &resp, nil
}

func (a *filmAdapter) TopFilms(ctx context.Context, limit int) (*FilmsResponse, error) {
	req := TopFilmsRequest{Limit: limit}
	var resp FilmsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "top-films", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("top-films service call failed: %w", err)
	}
	return &resp, nil
}

func (a *filmAdapter) AddFilms(ctx context.Context, req *AddFilmsRequest) (*AddFilmsResponse, error) {
	var resp AddFilmsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "add-films", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("add-films service call failed: %w", err)
	}
	return &resp, nil
}
