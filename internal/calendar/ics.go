package calendar

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	"github.com/jnelson/art-exhibits/internal/exhibition"
)

// GenerateICS renders exhibitions as an iCalendar (.ics) document with
// one all-day event per show. Exhibitions without usable dates are
// left out. This is an offline alternative to the calendar service:
// the output can be imported into any calendar application.
func GenerateICS(exhibitions []*exhibition.Exhibition) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Art Exhibits//art-exhibits//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	now := time.Now().UTC()

	for _, ex := range exhibitions {
		if !ex.HasDates() {
			continue
		}

		start, err := time.Parse("2006-01-02", ex.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse("2006-01-02", ex.EndDate)
		if err != nil {
			continue
		}

		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s@art-exhibits\r\n", uidFor(ex)))
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", now.Format("20060102T150405Z")))

		// All-day events: DTEND is exclusive, so it is the day after
		// the exhibition closes.
		ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", start.Format("20060102")))
		ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", end.AddDate(0, 0, 1).Format("20060102")))

		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(ex.DisplayTitle())))
		if ex.Location != "" {
			ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(ex.Location)))
		}
		if ex.Description != "" {
			ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(ex.Description)))
		}
		if ex.ExhibitionURL != "" {
			ics.WriteString(fmt.Sprintf("URL:%s\r\n", ex.ExhibitionURL))
		}
		ics.WriteString("STATUS:CONFIRMED\r\n")
		ics.WriteString("TRANSP:TRANSPARENT\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// uidFor derives a stable UID from the exhibition's identity key.
func uidFor(ex *exhibition.Exhibition) string {
	h := sha1.New()
	h.Write([]byte(ex.Key()))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// escapeICS escapes special characters according to RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
