package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", Overrides{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.TimeZone != "America/New_York" {
		t.Errorf("TimeZone = %q, want America/New_York", cfg.TimeZone)
	}
	if len(cfg.Locations) != 1 || cfg.Locations[0] != "new-york" {
		t.Errorf("Locations = %v, want [new-york]", cfg.Locations)
	}
	if len(cfg.Neighborhoods) != 5 {
		t.Errorf("got %d neighborhoods, want 5", len(cfg.Neighborhoods))
	}
	if len(cfg.GalleryDomains) != 12 {
		t.Errorf("got %d gallery domains, want 12", len(cfg.GalleryDomains))
	}
	if len(cfg.GalleryExhibitionURLs) != 4 {
		t.Errorf("got %d gallery exhibition URLs, want 4", len(cfg.GalleryExhibitionURLs))
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"calendar_id": "abc@group.calendar.google.com",
		"credentials_path": "/tmp/credentials.json",
		"time_zone": "Europe/London"
	}`)

	cfg, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.CalendarID != "abc@group.calendar.google.com" {
		t.Errorf("CalendarID = %q", cfg.CalendarID)
	}
	if cfg.TimeZone != "Europe/London" {
		t.Errorf("TimeZone = %q, want Europe/London", cfg.TimeZone)
	}
	// Defaults still fill the unset fields
	if len(cfg.Locations) == 0 {
		t.Error("Locations not defaulted")
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfigFile(t, `{"calendar_id": "from-file", "data_dir": "/from/file"}`)

	t.Setenv("EXHIBITS_CALENDAR_ID", "from-env")
	t.Setenv("EXHIBITS_DATA_DIR", "/from/env")

	cfg, err := Load(path, Overrides{CalendarID: "from-flag"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.CalendarID != "from-flag" {
		t.Errorf("CalendarID = %q, want flag to win over env and file", cfg.CalendarID)
	}
	if cfg.DataDir != "/from/env" {
		t.Errorf("DataDir = %q, want env to win over file", cfg.DataDir)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.json", Overrides{}); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	if _, err := Load(path, Overrides{}); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestValidateForSync(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "complete",
			cfg: Config{
				CalendarID:      "abc@group.calendar.google.com",
				CredentialsPath: "/tmp/credentials.json",
			},
			wantErr: false,
		},
		{
			name:    "missing calendar ID",
			cfg:     Config{CredentialsPath: "/tmp/credentials.json"},
			wantErr: true,
		},
		{
			name:    "missing credentials",
			cfg:     Config{CalendarID: "abc@group.calendar.google.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateForSync()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateForSync() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
