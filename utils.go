package cinemenu

import (
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/gobwas/glob"
)

type number interface {
	~int | ~int64 | ~float64
}

func inBetween[T number](i, min, max T) bool {
	return i >= min && i <= max
}

// MatchesGlobOf returns true if an item matches any of the given globs
func MatchesGlobOf(item string, globs []string) bool {
	for _, matchGlob := range globs {
		g := glob.MustCompile(matchGlob)
		if g.Match(item) {
			return true
		}
	}
	log.WithField("title", item).Debug("Skipping because it matches no globs")
	return false
}

// FilterByGlobs keeps the movies whose title matches at least one glob. No
// globs means no filtering.
func FilterByGlobs(movies []MovieSummary, globs []string) []MovieSummary {
	if len(globs) == 0 {
		return movies
	}
	var ret []MovieSummary
	for _, m := range movies {
		if MatchesGlobOf(m.Title, globs) {
			ret = append(ret, m)
		}
	}
	return ret
}

// ParseSelection reads a 1-based list position typed by the user
func ParseSelection(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ParseRating reads a rating value typed by the user. It does not check the range.
func ParseRating(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ValidRating reports whether a rating is something TMDB will accept
func ValidRating(v float64) bool {
	return inBetween(v, MinRating, MaxRating)
}
