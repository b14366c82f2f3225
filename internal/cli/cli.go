package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jnelson/art-exhibits/internal/calendar"
	"github.com/jnelson/art-exhibits/internal/config"
	"github.com/jnelson/art-exhibits/internal/exhibition"
	"github.com/jnelson/art-exhibits/internal/fetcher"
	"github.com/jnelson/art-exhibits/internal/logger"
	"github.com/jnelson/art-exhibits/internal/storage"
	"github.com/jnelson/art-exhibits/internal/sync"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagFetch       bool
	flagSync        bool
	flagCleanup     bool
	flagDaysPast    int
	flagAddManual   bool
	flagExportICS   string
	flagConfig      string
	flagDataDir     string
	flagCalendarID  string
	flagCredentials string
	flagTokenPath   string
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "art-exhibits",
		Short: "Track art gallery exhibitions and sync them to Google Calendar",
		Long: `A CLI tool that finds current art gallery exhibitions, caches them
locally, and mirrors them into Google Calendar as all-day events.
Running with no action flags fetches listings and then syncs them.`,
		RunE: runBatch,
	}

	// Define flags
	cmd.Flags().BoolVar(&flagFetch, "fetch", false, "Fetch exhibition listings into the local cache")
	cmd.Flags().BoolVar(&flagSync, "sync", false, "Sync cached exhibitions to Google Calendar")
	cmd.Flags().BoolVar(&flagCleanup, "cleanup", false, "Delete calendar events for long-finished exhibitions")
	cmd.Flags().IntVar(&flagDaysPast, "days-past", 30, "Cleanup grace period in days")
	cmd.Flags().BoolVar(&flagAddManual, "add-manual", false, "Add the curated exhibition list to the cache")
	cmd.Flags().StringVar(&flagExportICS, "export-ics", "", "Write cached exhibitions to an iCalendar file")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a JSON config file")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Data directory for the exhibition cache")
	cmd.Flags().StringVar(&flagCalendarID, "calendar-id", "", "Google Calendar ID to sync into")
	cmd.Flags().StringVar(&flagCredentials, "credentials", "", "Path to OAuth client credentials JSON")
	cmd.Flags().StringVar(&flagTokenPath, "token-path", "", "Path to the stored OAuth token")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runBatch is the main command logic
func runBatch(cmd *cobra.Command, args []string) error {
	// A missing .env file is not an error.
	godotenv.Load()

	cfg, err := config.Load(flagConfig, config.Overrides{
		CalendarID:      flagCalendarID,
		CredentialsPath: flagCredentials,
		TokenPath:       flagTokenPath,
		DataDir:         flagDataDir,
	})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := setupLogging(cfg); err != nil {
		return err
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	doFetch := flagFetch
	doSync := flagSync
	// No action flags means fetch then sync.
	if !flagFetch && !flagSync && !flagCleanup && !flagAddManual && flagExportICS == "" {
		doFetch = true
		doSync = true
	}

	if flagAddManual {
		added, err := store.Add(exhibition.Manual)
		if err != nil {
			return fmt.Errorf("adding manual exhibitions: %w", err)
		}
		fmt.Printf("Added %d manual exhibitions to cache\n", added)
	}

	if doFetch {
		if err := runFetch(cfg, store); err != nil {
			return err
		}
	}

	if flagExportICS != "" {
		if err := runExportICS(store, flagExportICS); err != nil {
			return err
		}
	}

	if doSync || flagCleanup {
		syncer, err := buildSyncer(cfg)
		if err != nil {
			return err
		}

		if doSync {
			if err := runSync(store, syncer); err != nil {
				return err
			}
		}

		if flagCleanup {
			deleted := syncer.DeletePastEvents(flagDaysPast)
			fmt.Printf("Deleted %d past events\n", deleted)
		}
	}

	return nil
}

func setupLogging(cfg *config.Config) error {
	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}

	if cfg.LogFile != "" {
		log, err := logger.NewWithFile(level, cfg.LogFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logger.SetDefault(log)
		return nil
	}

	logger.SetDefault(logger.New(level, os.Stderr))
	return nil
}

func runFetch(cfg *config.Config, store *storage.Store) error {
	exhibitions := fetcher.New(cfg).FetchAll()
	fmt.Printf("Fetched %d exhibitions\n", len(exhibitions))

	added, err := store.Add(exhibitions)
	if err != nil {
		return fmt.Errorf("updating cache: %w", err)
	}
	fmt.Printf("Added %d new exhibitions to cache\n", added)
	return nil
}

func runSync(store *storage.Store, syncer *sync.Syncer) error {
	exhibitions, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading cache: %w", err)
	}
	if len(exhibitions) == 0 {
		fmt.Println("No exhibitions to sync. Run with --fetch first.")
		return nil
	}

	created, skipped := syncer.SyncAll(exhibitions)
	fmt.Printf("Sync complete: %d created, %d skipped\n", created, skipped)
	return nil
}

func runExportICS(store *storage.Store, path string) error {
	exhibitions, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading cache: %w", err)
	}

	ics := calendar.GenerateICS(exhibitions)
	if err := os.WriteFile(path, []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing iCalendar file: %w", err)
	}
	fmt.Printf("Exported %d exhibitions to %s\n", len(exhibitions), path)
	return nil
}

// buildSyncer authenticates against Google Calendar and wires up the
// sync engine. The first run prompts for an authorization code on
// stdin; later runs reuse the stored token.
func buildSyncer(cfg *config.Config) (*sync.Syncer, error) {
	if err := cfg.ValidateForSync(); err != nil {
		return nil, err
	}

	ctx := context.Background()

	oauthConfig, err := calendar.BuildOAuthConfig(cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}

	httpClient, err := calendar.GetAuthenticatedClient(ctx, oauthConfig, calendar.NewFileTokenStore(cfg.TokenPath))
	if err != nil {
		return nil, fmt.Errorf("authenticating with Google: %w", err)
	}

	client, err := calendar.NewClient(ctx, httpClient)
	if err != nil {
		return nil, fmt.Errorf("creating calendar client: %w", err)
	}

	return sync.New(client, cfg), nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
