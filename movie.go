package cinemenu

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

// MovieSummary is a single row of a list response
type MovieSummary struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	VoteAverage float64 `json:"vote_average" yaml:"vote_average"`
	ReleaseDate string  `json:"release_date,omitempty" yaml:"release_date,omitempty"`
	Overview    string  `json:"overview,omitempty" yaml:"overview,omitempty"`
	// Rating is the account's own rating, only present on the rated list
	Rating *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
}

// Score is the number shown next to the title
func (m MovieSummary) Score() float64 {
	if m.Rating != nil {
		return *m.Rating
	}
	return m.VoteAverage
}

// MovieDetail is the full record returned by /movie/{id}
type MovieDetail struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Tagline     string   `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Overview    string   `json:"overview" yaml:"overview"`
	ReleaseDate string   `json:"release_date" yaml:"release_date"`
	VoteAverage float64  `json:"vote_average" yaml:"vote_average"`
	Genres      []string `json:"genres" yaml:"genres"`
}

// MovieAt resolves a 1-based list position to the movie in that slot
func MovieAt(movies []MovieSummary, position int) (MovieSummary, error) {
	if !inBetween(position, 1, len(movies)) {
		return MovieSummary{}, fmt.Errorf("%w: %v is not between 1 and %v", ErrInvalidSelection, position, len(movies))
	}
	return movies[position-1], nil
}

// The wire shapes use pointers so a missing field can be told apart from a
// zero value.
type wireSummary struct {
	ID          *int     `json:"id"`
	Title       *string  `json:"title"`
	VoteAverage *float64 `json:"vote_average"`
	ReleaseDate *string  `json:"release_date"`
	Overview    *string  `json:"overview"`
	Rating      *float64 `json:"rating"`
}

type wirePage struct {
	Page    int            `json:"page"`
	Results *[]wireSummary `json:"results"`
}

type wireGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type wireDetail struct {
	ID          *int        `json:"id"`
	Title       *string     `json:"title"`
	Tagline     *string     `json:"tagline"`
	Overview    *string     `json:"overview"`
	ReleaseDate *string     `json:"release_date"`
	VoteAverage *float64    `json:"vote_average"`
	Genres      []wireGenre `json:"genres"`
}

// ParseMovieSummaries decodes a paged list response into its ordered results
func ParseMovieSummaries(data []byte) ([]MovieSummary, error) {
	var page wirePage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, &MalformedResponseError{Cause: err}
	}
	if page.Results == nil {
		return nil, &MalformedResponseError{Field: "results"}
	}
	movies := make([]MovieSummary, 0, len(*page.Results))
	for i, w := range *page.Results {
		switch {
		case w.ID == nil:
			return nil, &MalformedResponseError{Field: fmt.Sprintf("results[%v].id", i)}
		case w.Title == nil:
			return nil, &MalformedResponseError{Field: fmt.Sprintf("results[%v].title", i)}
		case w.VoteAverage == nil && w.Rating == nil:
			return nil, &MalformedResponseError{Field: fmt.Sprintf("results[%v].vote_average", i)}
		}
		movies = append(movies, MovieSummary{
			ID:          *w.ID,
			Title:       *w.Title,
			VoteAverage: lo.FromPtr(w.VoteAverage),
			ReleaseDate: lo.FromPtr(w.ReleaseDate),
			Overview:    lo.FromPtr(w.Overview),
			Rating:      w.Rating,
		})
	}
	return movies, nil
}

// ParseMovieDetail decodes a /movie/{id} response
func ParseMovieDetail(data []byte) (*MovieDetail, error) {
	var w wireDetail
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &MalformedResponseError{Cause: err}
	}
	required := []struct {
		name    string
		present bool
	}{
		{"id", w.ID != nil},
		{"title", w.Title != nil},
		{"overview", w.Overview != nil},
		{"release_date", w.ReleaseDate != nil},
		{"vote_average", w.VoteAverage != nil},
	}
	for _, r := range required {
		if !r.present {
			return nil, &MalformedResponseError{Field: r.name}
		}
	}
	return &MovieDetail{
		ID:          *w.ID,
		Title:       *w.Title,
		Tagline:     lo.FromPtr(w.Tagline),
		Overview:    *w.Overview,
		ReleaseDate: *w.ReleaseDate,
		VoteAverage: *w.VoteAverage,
		Genres: lo.Map(w.Genres, func(g wireGenre, _ int) string {
			return g.Name
		}),
	}, nil
}
