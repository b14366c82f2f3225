package sync

import (
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"github.com/jnelson/art-exhibits/internal/calendar"
	"github.com/jnelson/art-exhibits/internal/config"
	"github.com/jnelson/art-exhibits/internal/exhibition"
	"github.com/jnelson/art-exhibits/internal/logger"
)

// lookaheadDays bounds the future window scanned for existing events
// during sync, and the width of the historical window scanned during
// cleanup. Exhibitions are assumed to run for under a year.
const lookaheadDays = 365

// Syncer reconciles cached exhibitions against the calendar.
type Syncer struct {
	client calendar.EventsClient
	cfg    *config.Config
}

// New creates a new Syncer instance.
func New(client calendar.EventsClient, cfg *config.Config) *Syncer {
	return &Syncer{
		client: client,
		cfg:    cfg,
	}
}

// existingEvents fetches the events scheduled in the window and indexes
// them by display title. Duplicate titles collapse last-write-wins; the
// title is an approximation of identity, not a unique key, so an
// unrelated event with a colliding title will make the matching
// exhibition look already synced. A transport failure is logged and an
// empty index substituted, which means the sync degrades to attempting
// creates rather than aborting.
func (s *Syncer) existingEvents(timeMin, timeMax time.Time) map[string]*gcal.Event {
	events, err := s.client.ListEvents(s.cfg.CalendarID, timeMin, timeMax)
	if err != nil {
		logger.Error("failed to fetch existing events", logger.Fields{
			"calendar_id": s.cfg.CalendarID,
		}, err)
		return map[string]*gcal.Event{}
	}

	index := make(map[string]*gcal.Event, len(events))
	for _, e := range events {
		index[e.Summary] = e
	}
	return index
}

// SyncAll reconciles exhibitions against the calendar: exhibitions
// whose display title already appears in the lookahead window are
// skipped, the rest are created. A failed create is logged and does not
// halt the remaining exhibitions. The returned counts are informational
// only.
func (s *Syncer) SyncAll(exhibitions []*exhibition.Exhibition) (created, skipped int) {
	logger.Info("starting sync", logger.Fields{"exhibitions": len(exhibitions)})

	now := time.Now()
	existing := s.existingEvents(now, now.AddDate(0, 0, lookaheadDays))
	logger.Info("found existing events in calendar", logger.Fields{"count": len(existing)})

	for _, ex := range exhibitions {
		title := ex.DisplayTitle()

		if _, exists := existing[title]; exists {
			logger.Info("event already exists", logger.Fields{"summary": title})
			skipped++
			continue
		}

		event, err := buildEventBody(ex, s.cfg.TimeZone)
		if err != nil {
			logger.Error("cannot build event", logger.Fields{"summary": title}, err)
			continue
		}

		if err := s.client.InsertEvent(s.cfg.CalendarID, event); err != nil {
			logger.Error("failed to create event", logger.Fields{"summary": title}, err)
			continue
		}

		logger.Info("created event", logger.Fields{"summary": title})
		created++
	}

	logger.Info("sync complete", logger.Fields{"created": created, "skipped": skipped})
	return created, skipped
}

// buildEventBody turns an exhibition into an all-day calendar event.
// The end date is exclusive per the all-day-event convention, so the
// event runs through the exhibition's closing day.
func buildEventBody(ex *exhibition.Exhibition, timeZone string) (*gcal.Event, error) {
	if !ex.HasDates() {
		return nil, fmt.Errorf("exhibition has no usable dates")
	}

	endDate, err := time.Parse("2006-01-02", ex.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parsing end date %q: %w", ex.EndDate, err)
	}

	description := fmt.Sprintf(`EXHIBITION: %s

ARTIST: %s

ABOUT THE EXHIBITION:
%s

ABOUT THE ARTIST:
%s

LINKS:
Exhibition: %s
Artist: %s
Source: %s
`, ex.Title, ex.Artist, ex.Description, ex.ArtistBio, ex.ExhibitionURL, ex.ArtistURL, ex.SourceURL)

	return &gcal.Event{
		Summary:     ex.DisplayTitle(),
		Location:    ex.Location,
		Description: description,
		Start: &gcal.EventDateTime{
			Date:     ex.StartDate,
			TimeZone: timeZone,
		},
		End: &gcal.EventDateTime{
			Date:     endDate.AddDate(0, 0, 1).Format("2006-01-02"),
			TimeZone: timeZone,
		},
		// "transparent" shows the owner as free for the duration.
		Transparency: "transparent",
	}, nil
}

// DeletePastEvents deletes events whose scheduling fell in the window
// [today-daysPast-365d, today-daysPast). The window is a coarse
// heuristic over the events' original start times, not an inspection
// of each event's actual end date. Returns the count actually deleted.
func (s *Syncer) DeletePastEvents(daysPast int) int {
	cutoff := time.Now().AddDate(0, 0, -daysPast)
	existing := s.existingEvents(cutoff.AddDate(0, 0, -lookaheadDays), cutoff)

	deleted := 0
	for _, event := range existing {
		if err := s.client.DeleteEvent(s.cfg.CalendarID, event.Id); err != nil {
			logger.Error("failed to delete event", logger.Fields{
				"summary":  event.Summary,
				"event_id": event.Id,
			}, err)
			continue
		}
		logger.Info("deleted past event", logger.Fields{"summary": event.Summary})
		deleted++
	}

	logger.Info("cleanup complete", logger.Fields{"deleted": deleted})
	return deleted
}
