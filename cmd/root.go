package cmd

import (
	"fmt"
	"log"
	"os"

	"movie-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	config  *utils.Config
	logger  *zap.Logger
)

// rootCmd runs the API server when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "movie-catalog",
	Short: "Personal movie rating catalog backed by TMDB",
	Long: `movie-catalog serves a JSON API for searching TMDB, adding titles to a
personal list, rating and reviewing them, and viewing the list ranked by rating.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: syncLogger,
	RunE:               runServe,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".env", "path to the .env config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// initializeApp loads configuration and builds the logger
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	config, err = utils.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err = utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production logger.", err)
		logger, _ = zap.NewProduction()
	}

	return nil
}

func syncLogger(cmd *cobra.Command, args []string) error {
	if logger != nil {
		logger.Sync()
	}
	return nil
}
