package cinemenu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OverviewLimit is how many characters of an overview a rich list shows
const OverviewLimit = 150

const ellipsis = "..."

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	taglineStyle = lipgloss.NewStyle().Italic(true)
	legendStyle  = lipgloss.NewStyle().Faint(true)
)

// RenderMode controls how much of each summary a list shows
type RenderMode int

const (
	// Compact shows the title and score
	Compact RenderMode = iota
	// Rich adds the release date and a truncated overview
	Rich
)

// TruncateOverview shortens s to OverviewLimit characters plus an ellipsis
func TruncateOverview(s string) string {
	r := []rune(s)
	if len(r) <= OverviewLimit {
		return s
	}
	return string(r[:OverviewLimit]) + ellipsis
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// RenderList returns one entry per movie, numbered from 1. Rich entries span
// several lines.
func RenderList(movies []MovieSummary, mode RenderMode) []string {
	ret := make([]string, 0, len(movies))
	for i, m := range movies {
		entry := fmt.Sprintf("%d. %v (%v)", i+1, m.Title, formatScore(m.Score()))
		if mode == Rich {
			if m.ReleaseDate != "" {
				entry += "\n   Release Date: " + m.ReleaseDate
			}
			if m.Overview != "" {
				entry += "\n   " + TruncateOverview(m.Overview)
			}
		}
		ret = append(ret, entry)
	}
	return ret
}

// DetailLegend lists the keys accepted on the detail screen
func DetailLegend(showActions bool) []string {
	var legend []string
	if showActions {
		legend = append(legend,
			"Enter 'r' to rate this movie",
			"Enter 'a' to add this movie to your watchlist",
			"Enter 'f' to add this movie to your favorites",
		)
	}
	return append(legend,
		"Enter 'b' to go back to the previous menu",
		"Enter 'e' to exit",
	)
}

// RenderDetail formats a movie's detail view followed by its action legend
func RenderDetail(d *MovieDetail, showActions bool) string {
	var b strings.Builder
	b.WriteString("\nMovie Details\n\n")
	b.WriteString(titleStyle.Render(d.Title) + "\n")
	if d.Tagline != "" {
		b.WriteString(taglineStyle.Render(d.Tagline) + "\n")
	}
	b.WriteString("\n" + d.Overview + "\n\n")
	fmt.Fprintf(&b, " Release Date: %v\n", d.ReleaseDate)
	fmt.Fprintf(&b, " Rating: %v\n", formatScore(d.VoteAverage))
	if len(d.Genres) > 0 {
		fmt.Fprintf(&b, " Genres: %v\n", strings.Join(d.Genres, ", "))
	}
	b.WriteString("\n")
	for _, l := range DetailLegend(showActions) {
		b.WriteString(legendStyle.Render(l) + "\n")
	}
	return b.String()
}
