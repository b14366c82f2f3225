package calendar

import (
	"strings"
	"testing"

	"github.com/jnelson/art-exhibits/internal/exhibition"
)

func TestGenerateICS(t *testing.T) {
	exhibitions := []*exhibition.Exhibition{
		{
			Title:         "Grids",
			Artist:        "Dan Flavin",
			Gallery:       "David Zwirner",
			Location:      "David Zwirner, 525 West 19th Street, New York, NY",
			StartDate:     "2026-01-15",
			EndDate:       "2026-02-21",
			ExhibitionURL: "https://www.davidzwirner.com/exhibitions/dan-flavin-grids",
		},
		{
			// No dates: must be skipped.
			Title:   "Opening Soon",
			Gallery: "Petzel Gallery",
		},
	}

	ics := GenerateICS(exhibitions)

	if !strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n") {
		t.Error("output does not start with BEGIN:VCALENDAR")
	}
	if !strings.HasSuffix(ics, "END:VCALENDAR\r\n") {
		t.Error("output does not end with END:VCALENDAR")
	}

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("got %d VEVENT blocks, want 1 (dateless exhibition skipped)", got)
	}

	if !strings.Contains(ics, "SUMMARY:Dan Flavin: Grids\r\n") {
		t.Error("missing display-title summary")
	}
	if !strings.Contains(ics, "DTSTART;VALUE=DATE:20260115\r\n") {
		t.Error("missing all-day DTSTART")
	}
	// DTEND is exclusive: the day after the exhibition closes.
	if !strings.Contains(ics, "DTEND;VALUE=DATE:20260222\r\n") {
		t.Error("missing exclusive DTEND")
	}
	if !strings.Contains(ics, "LOCATION:David Zwirner\\, 525 West 19th Street\\, New York\\, NY\r\n") {
		t.Error("location not escaped per RFC 5545")
	}
	if !strings.Contains(ics, "TRANSP:TRANSPARENT\r\n") {
		t.Error("events should be marked free")
	}
}

func TestGenerateICS_StableUID(t *testing.T) {
	ex := &exhibition.Exhibition{
		Title:     "Grids",
		Artist:    "Dan Flavin",
		Gallery:   "David Zwirner",
		StartDate: "2026-01-15",
		EndDate:   "2026-02-21",
	}
	recased := &exhibition.Exhibition{
		Title:     "GRIDS",
		Artist:    "Dan Flavin",
		Gallery:   "david zwirner",
		StartDate: "2026-01-15",
		EndDate:   "2026-02-21",
	}

	if uidFor(ex) != uidFor(recased) {
		t.Error("UID should be stable across identity-key casing")
	}
}

func TestEscapeICS(t *testing.T) {
	in := "a,b;c\nd\\e"
	want := "a\\,b\\;c\\nd\\\\e"
	if got := escapeICS(in); got != want {
		t.Errorf("escapeICS(%q) = %q, want %q", in, got, want)
	}
}
