// Package config holds the runtime configuration for the exhibition
// sync tool. The configuration is built once at process start and
// passed by reference into each component; there is no ambient global
// lookup.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all settings for one invocation.
type Config struct {
	// CalendarID is the Google Calendar the exhibitions are synced into.
	CalendarID string `json:"calendar_id,omitempty"`
	// CredentialsPath points at the OAuth client credentials JSON
	// downloaded from Google Cloud Console.
	CredentialsPath string `json:"credentials_path,omitempty"`
	// TokenPath is where the OAuth token is stored between runs.
	TokenPath string `json:"token_path,omitempty"`
	// TimeZone is applied to the all-day events created on the calendar.
	TimeZone string `json:"time_zone,omitempty"`
	// DataDir holds the exhibition cache file.
	DataDir string `json:"data_dir,omitempty"`
	// LogFile, when set, receives a copy of every log line.
	LogFile string `json:"log_file,omitempty"`

	// Search settings for the listing fetcher.
	Locations     []string `json:"locations,omitempty"`
	Neighborhoods []string `json:"neighborhoods,omitempty"`

	// GalleryDomains maps gallery slugs to their websites, used to
	// recognize gallery links in search results.
	GalleryDomains map[string]string `json:"gallery_domains,omitempty"`

	// GalleryExhibitionURLs maps gallery display names to their
	// current-exhibitions pages, fetched directly.
	GalleryExhibitionURLs map[string]string `json:"gallery_exhibition_urls,omitempty"`
}

// Overrides carries command-line flag values into Load. Empty fields
// leave the underlying setting untouched.
type Overrides struct {
	CalendarID      string
	CredentialsPath string
	TokenPath       string
	DataDir         string
	LogFile         string
}

// loadFromFile loads configuration from a JSON file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Load builds the configuration with the following precedence (highest
// to lowest):
// 1. Command-line flags
// 2. Environment variables
// 3. Config file
// 4. Defaults
func Load(configFile string, overrides Overrides) (*Config, error) {
	var config Config

	// Step 1: config file, if provided
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		config = *fileConfig
	}

	// Step 2: environment variables
	if v := os.Getenv("EXHIBITS_CALENDAR_ID"); v != "" {
		config.CalendarID = v
	}
	if v := os.Getenv("GOOGLE_CREDENTIALS_PATH"); v != "" {
		config.CredentialsPath = v
	}
	if v := os.Getenv("GOOGLE_TOKEN_PATH"); v != "" {
		config.TokenPath = v
	}
	if v := os.Getenv("EXHIBITS_DATA_DIR"); v != "" {
		config.DataDir = v
	}
	if v := os.Getenv("EXHIBITS_LOG_FILE"); v != "" {
		config.LogFile = v
	}

	// Step 3: command-line flags (highest priority)
	if overrides.CalendarID != "" {
		config.CalendarID = overrides.CalendarID
	}
	if overrides.CredentialsPath != "" {
		config.CredentialsPath = overrides.CredentialsPath
	}
	if overrides.TokenPath != "" {
		config.TokenPath = overrides.TokenPath
	}
	if overrides.DataDir != "" {
		config.DataDir = overrides.DataDir
	}
	if overrides.LogFile != "" {
		config.LogFile = overrides.LogFile
	}

	// Step 4: defaults
	applyDefaults(&config)

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.TimeZone == "" {
		config.TimeZone = "America/New_York"
	}
	if config.DataDir == "" {
		config.DataDir = "~/.local/share/art-exhibits"
	}
	if config.TokenPath == "" {
		config.TokenPath = "token.json"
	}
	if len(config.Locations) == 0 {
		config.Locations = []string{"new-york"}
	}
	if len(config.Neighborhoods) == 0 {
		config.Neighborhoods = []string{
			"chelsea", "upper-east-side", "lower-east-side", "tribeca", "soho",
		}
	}
	if len(config.GalleryDomains) == 0 {
		config.GalleryDomains = map[string]string{
			"hauser-wirth":   "hauserwirth.com",
			"david-zwirner":  "davidzwirner.com",
			"gagosian":       "gagosian.com",
			"pace-gallery":   "pacegallery.com",
			"jack-shainman":  "jackshainman.com",
			"petzel":         "petzel.com",
			"gladstone":      "gladstonegallery.com",
			"paula-cooper":   "paulacoopergallery.com",
			"marian-goodman": "mariangoodman.com",
			"matthew-marks":  "matthewmarks.com",
			"lisson":         "lissongallery.com",
			"white-cube":     "whitecube.com",
		}
	}
	if len(config.GalleryExhibitionURLs) == 0 {
		config.GalleryExhibitionURLs = map[string]string{
			"Hauser & Wirth": "https://www.hauserwirth.com/hauser-wirth-exhibitions/",
			"David Zwirner":  "https://www.davidzwirner.com/exhibitions",
			"Gagosian":       "https://gagosian.com/exhibitions/",
			"Pace Gallery":   "https://www.pacegallery.com/exhibitions/",
		}
	}
}

// ValidateForSync checks the settings the calendar path cannot run
// without. The fetch-only path does not need credentials, so this is
// called only before talking to the calendar service.
func (c *Config) ValidateForSync() error {
	if c.CalendarID == "" {
		return fmt.Errorf("calendar ID must be provided via --calendar-id flag, EXHIBITS_CALENDAR_ID environment variable, or config file")
	}
	if c.CredentialsPath == "" {
		return fmt.Errorf("no Google credentials configured.\n"+
			"Expected an OAuth credentials JSON path via --credentials flag, GOOGLE_CREDENTIALS_PATH environment variable, or config file.\n\n"+
			"To obtain credentials:\n"+
			"1. Create an OAuth client ID (Desktop app) in Google Cloud Console\n"+
			"2. Download the credentials JSON and point this tool at it\n"+
			"Token will be stored at: %s", c.TokenPath)
	}
	return nil
}
