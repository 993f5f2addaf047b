package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/drewstinnett/cinemenu"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var listNames = []string{"discover", "search", "watchlist", "favorites", "rated"}

func newClientWithViper(v *viper.Viper) (*cinemenu.Client, error) {
	creds, err := cinemenu.NewCredentialsWithViper(v)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("account-id", creds.AccountID).Str("base-url", v.GetString("base-url")).Msg("Configuring TMDB client")
	return cinemenu.NewClient(&cinemenu.ClientConfig{
		BaseURL:     v.GetString("base-url"),
		Credentials: creds,
	})
}

// fetchNamedList fetches one of the menu's lists by name. Search needs a query,
// every other list refuses one.
func fetchNamedList(ctx context.Context, svc cinemenu.TMDBService, name string, args []string) ([]cinemenu.MovieSummary, error) {
	if !lo.Contains(listNames, name) {
		return nil, fmt.Errorf("unknown list %q, must be one of %v", name, listNames)
	}
	if name == "search" {
		if len(args) == 0 {
			return nil, fmt.Errorf("search needs a query")
		}
		return svc.Search(ctx, strings.Join(args, " "))
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("%v does not take a query", name)
	}
	switch name {
	case "discover":
		return svc.Discover(ctx)
	case "watchlist":
		return svc.AccountList(ctx, cinemenu.WatchlistList)
	case "favorites":
		return svc.AccountList(ctx, cinemenu.FavoriteList)
	default:
		return svc.AccountList(ctx, cinemenu.RatedList)
	}
}
