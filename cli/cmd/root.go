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
	"os"

	alog "github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/drewstinnett/cinemenu"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	envFile string
	Verbose bool
	cmc     *cinemenu.Client
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cinemenu",
	Short: "Browse TheMovieDB and manage your watchlist, favorites and ratings",
	Long: `cinemenu is a menu driven client for TheMovieDB. Discover and search for
movies, look at their details, and keep your watchlist, favorites and ratings
up to date.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cmc, err = newClientWithViper(viper.GetViper())
		cobra.CheckErr(err)
	},
	Run: func(cmd *cobra.Command, args []string) {
		nav, err := cinemenu.NewNavigator(&cinemenu.NavigatorConfig{
			Service: cmc.TMDB,
			In:      os.Stdin,
			Out:     os.Stdout,
			Pause:   viper.GetDuration("pause"),
		})
		cobra.CheckErr(err)
		cobra.CheckErr(nav.Run(cmd.Context()))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cinemenu.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file holding ACCOUNT_ID, ACCESS_TOKEN and API_KEY")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.PersistentFlags().String("account-id", "", "TMDB account id")
	viper.BindPFlag(cinemenu.AccountIDKey, rootCmd.PersistentFlags().Lookup("account-id"))
	rootCmd.PersistentFlags().String("access-token", "", "TMDB API read access token")
	viper.BindPFlag(cinemenu.AccessTokenKey, rootCmd.PersistentFlags().Lookup("access-token"))
	rootCmd.PersistentFlags().String("api-key", "", "TMDB API key")
	viper.BindPFlag(cinemenu.APIKeyKey, rootCmd.PersistentFlags().Lookup("api-key"))
	rootCmd.PersistentFlags().String("base-url", cinemenu.DefaultBaseURL, "TMDB API root")
	viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))
	rootCmd.PersistentFlags().Duration("pause", cinemenu.DefaultPause, "How long success messages stay up before the menu redraws")
	viper.BindPFlag("pause", rootCmd.PersistentFlags().Lookup("pause"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigName(".cinemenu")
	}

	viper.AutomaticEnv() // read in environment variables that match
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	alog.SetHandler(cli.New(os.Stderr))
	// Failed requests already show up in the menu
	alog.SetLevel(alog.ErrorLevel)
	if Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		alog.SetLevel(alog.DebugLevel)
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("config-file", viper.ConfigFileUsed()).Msg("Using config file")
	}
	cobra.CheckErr(cinemenu.MergeEnvFile(viper.GetViper(), envFile))
}
