package calendar

import (
	"time"

	"google.golang.org/api/calendar/v3"
)

// EventsClient is the calendar surface the sync engine consumes. The
// Google implementation below is the only production client; tests
// substitute their own.
type EventsClient interface {
	ListEvents(calendarID string, timeMin, timeMax time.Time) ([]*calendar.Event, error)
	InsertEvent(calendarID string, event *calendar.Event) error
	DeleteEvent(calendarID, eventID string) error
}
