// Package cli implements the command-line interface for art-exhibits.
//
// The cli package provides the Cobra-based CLI with flags for fetching
// exhibition listings, syncing them to Google Calendar, cleaning up
// events for long-finished shows, and exporting the cache as iCalendar.
// It coordinates the fetcher, storage, calendar, and sync packages.
package cli
