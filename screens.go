package cinemenu

import (
	"context"
)

// ScreenKind identifies one state of the menu
type ScreenKind int

const (
	MainMenuScreen ScreenKind = iota
	DiscoverScreen
	SearchScreen
	WatchlistScreen
	FavoritesScreen
	RatedScreen
	DetailScreen
	ExitScreen
)

func (k ScreenKind) String() string {
	switch k {
	case MainMenuScreen:
		return "main-menu"
	case DiscoverScreen:
		return "discover"
	case SearchScreen:
		return "search"
	case WatchlistScreen:
		return "watchlist"
	case FavoritesScreen:
		return "favorites"
	case RatedScreen:
		return "rated"
	case DetailScreen:
		return "detail"
	case ExitScreen:
		return "exit"
	default:
		return "unknown"
	}
}

// Screen is a ScreenKind plus whatever is needed to enter it again. Origin and
// ShowActions only matter for the detail screen.
type Screen struct {
	Kind        ScreenKind
	Origin      ScreenKind
	ShowActions bool
}

type fetchFunc func(ctx context.Context, svc TMDBService, query string) ([]MovieSummary, error)

// listCommand is a single letter command offered below a list
type listCommand struct {
	key    string
	legend string
	run    func(ctx context.Context, n *Navigator, kind ScreenKind) (Screen, error)
}

type listScreen struct {
	heading string
	mode    RenderMode
	// failure completes "Failed to ..." when the fetch does not work
	failure string
	// empty, when set, is shown on the main menu instead of an empty list
	empty       string
	showActions bool
	fetch       fetchFunc
	commands    []listCommand
}

// detailAction is a key offered on the detail screen when mutations are
// allowed. run only returns input errors, TMDB failures become notices.
type detailAction struct {
	key string
	run func(ctx context.Context, n *Navigator, id int) error
}

func accountList(kind ListKind) fetchFunc {
	return func(ctx context.Context, svc TMDBService, _ string) ([]MovieSummary, error) {
		return svc.AccountList(ctx, kind)
	}
}

var menuScreens = map[string]ScreenKind{
	"1": DiscoverScreen,
	"2": SearchScreen,
	"3": WatchlistScreen,
	"4": FavoritesScreen,
	"5": RatedScreen,
	"6": ExitScreen,
}

var listScreens = map[ScreenKind]listScreen{
	DiscoverScreen: {
		heading:     "Discover Movies",
		mode:        Rich,
		failure:     "fetch data from TheMovieDB API",
		showActions: true,
		fetch: func(ctx context.Context, svc TMDBService, _ string) ([]MovieSummary, error) {
			return svc.Discover(ctx)
		},
	},
	SearchScreen: {
		heading:     "Search Results",
		mode:        Rich,
		failure:     "fetch data from TheMovieDB API",
		empty:       "No movies found with that title.",
		showActions: true,
		fetch: func(ctx context.Context, svc TMDBService, query string) ([]MovieSummary, error) {
			return svc.Search(ctx, query)
		},
	},
	WatchlistScreen: {
		heading: "Your Watchlist",
		mode:    Compact,
		failure: "retrieve watchlist",
		fetch:   accountList(WatchlistList),
		commands: []listCommand{
			removeCommand("Enter 'x' to remove a movie from your watchlist",
				"Movie removed from your watchlist.", "remove movie from watchlist",
				func(ctx context.Context, svc TMDBService, id int) error {
					return svc.SetWatchlist(ctx, id, false)
				}),
		},
	},
	FavoritesScreen: {
		heading: "Your Favorites List",
		mode:    Compact,
		failure: "retrieve favorites list",
		fetch:   accountList(FavoriteList),
		commands: []listCommand{
			removeCommand("Enter 'x' to remove a movie from your favorites",
				"Movie removed from your favorites.", "remove movie from favorites",
				func(ctx context.Context, svc TMDBService, id int) error {
					return svc.SetFavorite(ctx, id, false)
				}),
		},
	},
	RatedScreen: {
		heading: "Your Rated Movies",
		mode:    Compact,
		failure: "retrieve rated movies",
		fetch:   accountList(RatedList),
		commands: []listCommand{
			removeCommand("Enter 'x' to delete a rating",
				"Rating deleted.", "delete rating",
				func(ctx context.Context, svc TMDBService, id int) error {
					return svc.DeleteRating(ctx, id)
				}),
			{key: "e", legend: "Enter 'e' to edit a rating", run: editRating},
		},
	},
}

var detailActions = []detailAction{
	{
		key: "a",
		run: func(ctx context.Context, n *Navigator, id int) error {
			n.mutate("Movie successfully added to your watchlist.", "add movie to watchlist", func() error {
				return n.svc.SetWatchlist(ctx, id, true)
			})
			return nil
		},
	},
	{
		key: "f",
		run: func(ctx context.Context, n *Navigator, id int) error {
			n.mutate("Movie successfully added to your favorites.", "add movie to favorites", func() error {
				return n.svc.SetFavorite(ctx, id, true)
			})
			return nil
		},
	},
	{key: "r", run: rateFromDetail},
}
