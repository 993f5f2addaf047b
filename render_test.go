package cinemenu

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncateOverview(t *testing.T) {
	tests := map[string]struct {
		in        string
		truncated bool
	}{
		"empty":      {in: "", truncated: false},
		"short":      {in: "A short overview.", truncated: false},
		"exactly":    {in: strings.Repeat("a", 150), truncated: false},
		"one over":   {in: strings.Repeat("a", 151), truncated: true},
		"long":       {in: strings.Repeat("word ", 100), truncated: true},
		"multi byte": {in: strings.Repeat("é", 200), truncated: true},
	}
	for k, tt := range tests {
		got := TruncateOverview(tt.in)
		if !tt.truncated {
			require.Equal(t, tt.in, got, k)
			continue
		}
		require.True(t, strings.HasSuffix(got, "..."), k)
		require.Equal(t, 150, utf8.RuneCountInString(strings.TrimSuffix(got, "...")), k)
		require.True(t, strings.HasPrefix(tt.in, strings.TrimSuffix(got, "...")), k)
	}
}

func TestRenderListNumbering(t *testing.T) {
	movies := []MovieSummary{
		{ID: 11, Title: "Star Wars", VoteAverage: 8.2},
		{ID: 12, Title: "Finding Nemo", VoteAverage: 7.8},
		{ID: 13, Title: "Forrest Gump", VoteAverage: 8.5},
	}
	for _, mode := range []RenderMode{Compact, Rich} {
		lines := RenderList(movies, mode)
		require.Len(t, lines, len(movies))
		for i, l := range lines {
			require.True(t, strings.HasPrefix(l, fmt.Sprintf("%d. %v", i+1, movies[i].Title)), l)
		}
	}
}

func TestRenderListModes(t *testing.T) {
	overview := strings.Repeat("x", 200)
	movies := []MovieSummary{
		{ID: 1, Title: "Dune", VoteAverage: 7.842, ReleaseDate: "2021-09-15", Overview: overview},
	}

	require.Equal(t, []string{"1. Dune (7.8)"}, RenderList(movies, Compact))

	rich := RenderList(movies, Rich)
	require.Equal(t, "1. Dune (7.8)\n   Release Date: 2021-09-15\n   "+strings.Repeat("x", 150)+"...", rich[0])
	require.Equal(t, overview, movies[0].Overview, "rendering must not touch the summary")
}

func TestRenderListAccountRating(t *testing.T) {
	r := 9.5
	lines := RenderList([]MovieSummary{{ID: 1, Title: "Dune", VoteAverage: 7.8, Rating: &r}}, Compact)
	require.Equal(t, []string{"1. Dune (9.5)"}, lines)
}

func TestRenderDetail(t *testing.T) {
	d := &MovieDetail{
		ID:          438631,
		Title:       "Dune",
		Tagline:     "It begins.",
		Overview:    "Spice.",
		ReleaseDate: "2021-09-15",
		VoteAverage: 7.8,
		Genres:      []string{"Science Fiction", "Adventure"},
	}

	got := RenderDetail(d, true)
	require.Contains(t, got, "Dune")
	require.Contains(t, got, "It begins.")
	require.Contains(t, got, "Spice.")
	require.Contains(t, got, "Release Date: 2021-09-15")
	require.Contains(t, got, "Rating: 7.8")
	require.Contains(t, got, "Genres: Science Fiction, Adventure")
	require.Contains(t, got, "Enter 'r' to rate this movie")
	require.Contains(t, got, "Enter 'a' to add this movie to your watchlist")
	require.Contains(t, got, "Enter 'f' to add this movie to your favorites")
	require.Contains(t, got, "Enter 'b' to go back")
	require.Contains(t, got, "Enter 'e' to exit")

	got = RenderDetail(d, false)
	require.NotContains(t, got, "Enter 'r'")
	require.NotContains(t, got, "Enter 'a'")
	require.NotContains(t, got, "Enter 'f'")
	require.Contains(t, got, "Enter 'b' to go back")
	require.Contains(t, got, "Enter 'e' to exit")
}

func TestRenderDetailNoTagline(t *testing.T) {
	got := RenderDetail(&MovieDetail{Title: "Heat", Overview: "LA."}, false)
	require.NotContains(t, got, "Genres:")
	require.Len(t, DetailLegend(false), 2)
	require.Len(t, DetailLegend(true), 5)
}
