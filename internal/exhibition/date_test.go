package exhibition

import "testing"

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name      string
		dateText  string
		wantStart string
		wantEnd   string
		wantOK    bool
	}{
		{
			name:      "Month-first shared year",
			dateText:  "January 15 - April 4, 2026",
			wantStart: "2026-01-15",
			wantEnd:   "2026-04-04",
			wantOK:    true,
		},
		{
			name:      "Day-first shared year",
			dateText:  "15 Jan - 4 Apr 2026",
			wantStart: "2026-01-15",
			wantEnd:   "2026-04-04",
			wantOK:    true,
		},
		{
			name:      "Dual year",
			dateText:  "Jan 15, 2026 - Apr 4, 2026",
			wantStart: "2026-01-15",
			wantEnd:   "2026-04-04",
			wantOK:    true,
		},
		{
			name:      "En dash separator",
			dateText:  "January 15 – April 4, 2026",
			wantStart: "2026-01-15",
			wantEnd:   "2026-04-04",
			wantOK:    true,
		},
		{
			name:      "Uppercase input",
			dateText:  "JANUARY 15 - APRIL 4, 2026",
			wantStart: "2026-01-15",
			wantEnd:   "2026-04-04",
			wantOK:    true,
		},
		{
			name:      "Abbreviated months shared year",
			dateText:  "Sep 3 - Oct 18, 2026",
			wantStart: "2026-09-03",
			wantEnd:   "2026-10-18",
			wantOK:    true,
		},
		{
			name:      "Range embedded in surrounding text",
			dateText:  "On view January 15 - April 4, 2026 at the gallery",
			wantStart: "2026-01-15",
			wantEnd:   "2026-04-04",
			wantOK:    true,
		},
		{
			name:     "Not a date",
			dateText: "not a date",
			wantOK:   false,
		},
		{
			name:     "Empty string",
			dateText: "",
			wantOK:   false,
		},
		{
			name:     "Single date without range",
			dateText: "January 15, 2026",
			wantOK:   false,
		},
		{
			name:     "Matched shape with unknown month names",
			dateText: "blursday 15 - flimuary 4, 2026",
			wantOK:   false,
		},
		{
			// Cross-year ranges are unsupported: both dates land in
			// the trailing year, producing an inverted range.
			name:      "December to January lands in one year",
			dateText:  "December 12 - January 8, 2026",
			wantStart: "2026-12-12",
			wantEnd:   "2026-01-08",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := ParseDateRange(tt.dateText)

			if ok != tt.wantOK {
				t.Fatalf("ParseDateRange(%q) ok = %v, want %v", tt.dateText, ok, tt.wantOK)
			}
			if !tt.wantOK {
				if start != "" || end != "" {
					t.Errorf("ParseDateRange(%q) = (%q, %q), want empty dates", tt.dateText, start, end)
				}
				return
			}
			if start != tt.wantStart {
				t.Errorf("ParseDateRange(%q) start = %q, want %q", tt.dateText, start, tt.wantStart)
			}
			if end != tt.wantEnd {
				t.Errorf("ParseDateRange(%q) end = %q, want %q", tt.dateText, end, tt.wantEnd)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name   string
		part   string
		year   string
		want   string
		wantOK bool
	}{
		{name: "Month first", part: "january 15", year: "2026", want: "2026-01-15", wantOK: true},
		{name: "Day first", part: "15 jan", year: "2026", want: "2026-01-15", wantOK: true},
		{name: "Unknown month", part: "smarch 15", year: "2026", wantOK: false},
		{name: "Missing day", part: "january", year: "2026", wantOK: false},
		{name: "Day out of range", part: "january 32", year: "2026", wantOK: false},
		{name: "Bad year", part: "january 15", year: "20xx", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveDate(tt.part, tt.year)
			if ok != tt.wantOK {
				t.Fatalf("resolveDate(%q, %q) ok = %v, want %v", tt.part, tt.year, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("resolveDate(%q, %q) = %q, want %q", tt.part, tt.year, got, tt.want)
			}
		})
	}
}
