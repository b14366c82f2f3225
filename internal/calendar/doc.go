// Package calendar talks to the Google Calendar API on behalf of the
// sync engine, handles the OAuth token lifecycle between scheduled
// runs, and can render the exhibition set as an iCalendar document for
// offline use.
package calendar
