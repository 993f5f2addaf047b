package cinemenu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMovieSummaries(t *testing.T) {
	movies, err := ParseMovieSummaries([]byte(mustReadFile(t, "testdata/discover.json")))
	require.NoError(t, err)
	require.Len(t, movies, 2)
	require.Equal(t, "Inside Out 2", movies[1].Title)
	require.Equal(t, 7.7, movies[1].Score())
}

func TestParseMovieSummariesMalformed(t *testing.T) {
	tests := map[string]struct {
		body      string
		wantField string
	}{
		"not json":      {body: `<html>`, wantField: ""},
		"no results":    {body: `{"page": 1}`, wantField: "results"},
		"no id":         {body: `{"results": [{"title": "A", "vote_average": 1}]}`, wantField: "results[0].id"},
		"no title":      {body: `{"results": [{"id": 1, "vote_average": 1}]}`, wantField: "results[0].title"},
		"no score":      {body: `{"results": [{"id": 1, "title": "A"}, {"id": 2, "title": "B"}]}`, wantField: "results[0].vote_average"},
		"second broken": {body: `{"results": [{"id": 1, "title": "A", "vote_average": 1}, {"title": "B"}]}`, wantField: "results[1].id"},
	}
	for k, tt := range tests {
		_, err := ParseMovieSummaries([]byte(tt.body))
		var malformed *MalformedResponseError
		require.True(t, errors.As(err, &malformed), k)
		require.Equal(t, tt.wantField, malformed.Field, k)
	}
}

func TestParseMovieSummariesEmpty(t *testing.T) {
	movies, err := ParseMovieSummaries([]byte(`{"page": 1, "results": []}`))
	require.NoError(t, err)
	require.Empty(t, movies)
}

func TestParseMovieDetailOptionalFields(t *testing.T) {
	d, err := ParseMovieDetail([]byte(`{"id": 1, "title": "A", "overview": "", "release_date": "", "vote_average": 0}`))
	require.NoError(t, err)
	require.Equal(t, "", d.Tagline)
	require.Empty(t, d.Genres)
}

func TestMovieAt(t *testing.T) {
	movies := []MovieSummary{{ID: 10}, {ID: 20}, {ID: 30}}
	for n := 1; n <= len(movies); n++ {
		m, err := MovieAt(movies, n)
		require.NoError(t, err)
		require.Equal(t, movies[n-1].ID, m.ID)
	}
	for _, n := range []int{-1, 0, 4} {
		_, err := MovieAt(movies, n)
		require.ErrorIs(t, err, ErrInvalidSelection)
	}
}
