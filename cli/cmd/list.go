/*
Copyright © 2022 Drew Stinnett <drew@drewlink.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/drewstinnett/cinemenu"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var matchGlobs []string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:       "list <discover|search|watchlist|favorites|rated> [query]",
	Short:     "Print one of the menu's movie lists as YAML",
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: listNames,
	Run: func(cmd *cobra.Command, args []string) {
		movies, err := fetchNamedList(cmd.Context(), cmc.TMDB, args[0], args[1:])
		cobra.CheckErr(err)
		movies = cinemenu.FilterByGlobs(movies, matchGlobs)

		data, err := yaml.Marshal(movies)
		cobra.CheckErr(err)
		fmt.Println(string(data))

		log.Info().Str("list", args[0]).Int("total_items", len(movies)).Msg("Listed movies")
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.PersistentFlags().StringArrayVar(&matchGlobs, "match", []string{}, "Only show movies whose title matches one of these globs")
}
