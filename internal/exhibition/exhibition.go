package exhibition

import (
	"fmt"
	"strings"
)

// Exhibition represents one gallery show
type Exhibition struct {
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Gallery       string `json:"gallery"`
	Location      string `json:"location"`
	StartDate     string `json:"start_date"` // ISO format YYYY-MM-DD, may be empty
	EndDate       string `json:"end_date"`   // ISO format YYYY-MM-DD, may be empty
	Description   string `json:"description"`
	ArtistBio     string `json:"artist_bio"`
	ExhibitionURL string `json:"exhibition_url"`
	ArtistURL     string `json:"artist_url"`
	SourceURL     string `json:"source_url"`
}

// Key returns the identity key used for deduplication: the
// case-insensitive (title, gallery) pair. Two exhibitions with equal
// keys are the same show regardless of other field differences.
func (e *Exhibition) Key() string {
	return strings.ToLower(strings.TrimSpace(e.Title)) + "|" + strings.ToLower(strings.TrimSpace(e.Gallery))
}

// DisplayTitle returns the string used as the calendar event summary
// and as the de-facto matching key against existing events.
func (e *Exhibition) DisplayTitle() string {
	return fmt.Sprintf("%s: %s", e.Artist, e.Title)
}

// HasDates reports whether both start and end dates are present.
func (e *Exhibition) HasDates() bool {
	return e.StartDate != "" && e.EndDate != ""
}

// Dedupe returns one exhibition per distinct identity key, preserving
// first-seen order and first-seen field values. Later duplicates are
// dropped silently.
func Dedupe(exhibitions []*Exhibition) []*Exhibition {
	seen := make(map[string]bool)
	unique := make([]*Exhibition, 0, len(exhibitions))
	for _, ex := range exhibitions {
		key := ex.Key()
		if !seen[key] {
			seen[key] = true
			unique = append(unique, ex)
		}
	}
	return unique
}
