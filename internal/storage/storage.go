package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jnelson/art-exhibits/internal/exhibition"
	"github.com/jnelson/art-exhibits/internal/logger"
)

const cacheFileName = "exhibitions.json"

// Store handles persistence of the deduplicated exhibition set.
type Store struct {
	dataDir string
}

// New creates a new Store instance
func New(dataDir string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{
		dataDir: dataDir,
	}, nil
}

func (s *Store) cachePath() string {
	return filepath.Join(s.dataDir, cacheFileName)
}

// Load reads the cached exhibitions. An absent cache file yields an
// empty list, and a corrupt one is logged and likewise treated as
// empty; neither is an error.
func (s *Store) Load() ([]*exhibition.Exhibition, error) {
	path := s.cachePath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*exhibition.Exhibition{}, nil
		}
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	var exhibitions []*exhibition.Exhibition
	if err := json.Unmarshal(data, &exhibitions); err != nil {
		logger.Error("cache file is corrupt, treating as empty", logger.Fields{
			"path": path,
		}, err)
		return []*exhibition.Exhibition{}, nil
	}

	return exhibitions, nil
}

// Save writes the exhibition set wholesale, replacing the cache file.
func (s *Store) Save(exhibitions []*exhibition.Exhibition) error {
	data, err := json.MarshalIndent(exhibitions, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	if err := os.WriteFile(s.cachePath(), data, 0644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}

	return nil
}

// Add merges exhibitions into the cache as an append-only upsert keyed
// by identity: records whose key is already cached are dropped, so
// re-adding is a no-op. Returns how many records were actually added.
func (s *Store) Add(exhibitions []*exhibition.Exhibition) (int, error) {
	existing, err := s.Load()
	if err != nil {
		return 0, err
	}

	keys := make(map[string]bool, len(existing))
	for _, ex := range existing {
		keys[ex.Key()] = true
	}

	added := 0
	for _, ex := range exhibitions {
		key := ex.Key()
		if keys[key] {
			continue
		}
		keys[key] = true
		existing = append(existing, ex)
		added++
	}

	if added > 0 {
		if err := s.Save(existing); err != nil {
			return 0, err
		}
	}

	return added, nil
}
