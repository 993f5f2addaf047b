package cinemenu

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Rating bounds TMDB accepts
const (
	MinRating = 0.5
	MaxRating = 10.0
)

// ListKind names one of the account's personal movie lists
type ListKind string

const (
	WatchlistList ListKind = "watchlist"
	FavoriteList  ListKind = "favorite"
	RatedList     ListKind = "rated"
)

// TMDBService is everything the menu needs from TMDB
type TMDBService interface {
	Discover(context.Context) ([]MovieSummary, error)
	Search(context.Context, string) ([]MovieSummary, error)
	Details(context.Context, int) (*MovieDetail, error)
	AccountList(context.Context, ListKind) ([]MovieSummary, error)
	SetWatchlist(context.Context, int, bool) error
	SetFavorite(context.Context, int, bool) error
	SetRating(context.Context, int, float64) error
	DeleteRating(context.Context, int) error
}

type TMDBServiceOp struct {
	client *Client
}

type mediaToggle struct {
	MediaType string `json:"media_type"`
	MediaID   int    `json:"media_id"`
	Watchlist *bool  `json:"watchlist,omitempty"`
	Favorite  *bool  `json:"favorite,omitempty"`
}

type ratingValue struct {
	Value float64 `json:"value"`
}

func discoverParams() url.Values {
	params := url.Values{}
	params.Set("include_adult", "false")
	params.Set("include_video", "false")
	params.Set("language", "en-US")
	params.Set("page", "1")
	params.Set("sort_by", "popularity.desc")
	return params
}

func (t *TMDBServiceOp) Discover(ctx context.Context) ([]MovieSummary, error) {
	data, err := t.client.do(ctx, http.MethodGet, "/discover/movie", authAPIKey, discoverParams(), nil)
	if err != nil {
		return nil, err
	}
	return ParseMovieSummaries(data)
}

func (t *TMDBServiceOp) Search(ctx context.Context, query string) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("language", "en-US")
	params.Set("page", "1")
	params.Set("include_adult", "false")
	params.Set("query", query)
	data, err := t.client.do(ctx, http.MethodGet, "/search/movie", authAPIKey, params, nil)
	if err != nil {
		return nil, err
	}
	return ParseMovieSummaries(data)
}

func (t *TMDBServiceOp) Details(ctx context.Context, id int) (*MovieDetail, error) {
	data, err := t.client.do(ctx, http.MethodGet, fmt.Sprintf("/movie/%d", id), authAPIKey, nil, nil)
	if err != nil {
		return nil, err
	}
	return ParseMovieDetail(data)
}

func (t *TMDBServiceOp) AccountList(ctx context.Context, kind ListKind) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("language", "en-US")
	params.Set("page", "1")
	params.Set("sort_by", "created_at.asc")
	path := fmt.Sprintf("/account/%v/%v/movies", url.PathEscape(t.client.Credentials.AccountID), kind)
	data, err := t.client.do(ctx, http.MethodGet, path, authBearer, params, nil)
	if err != nil {
		return nil, err
	}
	return ParseMovieSummaries(data)
}

func (t *TMDBServiceOp) SetWatchlist(ctx context.Context, id int, on bool) error {
	path := fmt.Sprintf("/account/%v/watchlist", url.PathEscape(t.client.Credentials.AccountID))
	_, err := t.client.do(ctx, http.MethodPost, path, authBearer, nil, mediaToggle{
		MediaType: "movie",
		MediaID:   id,
		Watchlist: &on,
	})
	return err
}

func (t *TMDBServiceOp) SetFavorite(ctx context.Context, id int, on bool) error {
	path := fmt.Sprintf("/account/%v/favorite", url.PathEscape(t.client.Credentials.AccountID))
	_, err := t.client.do(ctx, http.MethodPost, path, authBearer, nil, mediaToggle{
		MediaType: "movie",
		MediaID:   id,
		Favorite:  &on,
	})
	return err
}

func (t *TMDBServiceOp) SetRating(ctx context.Context, id int, value float64) error {
	_, err := t.client.do(ctx, http.MethodPost, fmt.Sprintf("/movie/%d/rating", id), authBearer, nil, ratingValue{Value: value})
	return err
}

func (t *TMDBServiceOp) DeleteRating(ctx context.Context, id int) error {
	_, err := t.client.do(ctx, http.MethodDelete, fmt.Sprintf("/movie/%d/rating", id), authBearer, nil, nil)
	return err
}
