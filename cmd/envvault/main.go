// Package main is the envvault CLI, a thin caller over the vault API
// surface. All commands go through the coarse bool/empty contract; the
// underlying causes are logged to stderr by the api layer.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Okramjimmy/EnvVault/internal/adapter/driven/sqlite"
	"github.com/Okramjimmy/EnvVault/internal/adapter/driving/api"
	"github.com/Okramjimmy/EnvVault/internal/application"
	"github.com/Okramjimmy/EnvVault/internal/config"
	"github.com/Okramjimmy/EnvVault/internal/shell"
)

var (
	verbose bool

	cfg   *config.Config
	db    *sqlite.DB
	vault *api.API
)

var rootCmd = &cobra.Command{
	Use:   "envvault",
	Short: "Local vault for environment secrets",
	Long: `envvault stores environment secrets in a local SQLite vault,
shows masked previews, imports and exports .env text, and publishes the
vault into ~/.envvault for shell sourcing.

Values are stored in cleartext; treat the vault file accordingly.`,
	SilenceUsage:      true,
	PersistentPreRunE: openVault,
	PersistentPostRun: closeVault,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		initCmd,
		addCmd,
		getCmd,
		listCmd,
		searchCmd,
		updateCmd,
		rmCmd,
		importCmd,
		exportCmd,
		syncCmd,
		pathCmd,
	)
}

// openVault wires config, storage, and the api layer. Migrations run on
// every invocation so the schema is ready before any command body executes.
func openVault(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg = config.Load()
	slog.Debug("config loaded", "db_path", cfg.DBPath, "home", cfg.HomeDir)

	var err error
	db, err = sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}

	repo := sqlite.NewSecretRepo(db, nil)
	svc := application.NewService(repo, shell.NewSyncer(cfg.HomeDir), slog.Default())
	vault = api.New(svc, slog.Default())

	if !vault.Init() {
		return errors.New("vault initialization failed")
	}
	return nil
}

func closeVault(cmd *cobra.Command, args []string) {
	if db != nil {
		if err := db.Close(); err != nil {
			slog.Error("error closing vault database", "error", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
