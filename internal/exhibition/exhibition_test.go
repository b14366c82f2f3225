package exhibition

import "testing"

func TestDisplayTitle(t *testing.T) {
	ex := &Exhibition{
		Title:   "Late at night, early in the morning, at noon",
		Artist:  "Glenn Ligon",
		Gallery: "Hauser & Wirth",
	}

	want := "Glenn Ligon: Late at night, early in the morning, at noon"
	if got := ex.DisplayTitle(); got != want {
		t.Errorf("DisplayTitle() = %q, want %q", got, want)
	}
}

func TestKey_CaseInsensitive(t *testing.T) {
	a := &Exhibition{Title: "Show", Gallery: "Gagosian"}
	b := &Exhibition{Title: "show", Gallery: "GAGOSIAN"}

	if a.Key() != b.Key() {
		t.Errorf("keys differ: %q vs %q", a.Key(), b.Key())
	}

	c := &Exhibition{Title: "Show", Gallery: "Pace Gallery"}
	if a.Key() == c.Key() {
		t.Errorf("different galleries produced equal key %q", a.Key())
	}
}

func TestDedupe(t *testing.T) {
	first := &Exhibition{Title: "Show", Gallery: "Gagosian", Artist: "First Seen"}
	duplicate := &Exhibition{Title: "show", Gallery: "GAGOSIAN", Artist: "Second Seen"}
	other := &Exhibition{Title: "Grids", Gallery: "David Zwirner"}

	got := Dedupe([]*Exhibition{first, duplicate, other})

	if len(got) != 2 {
		t.Fatalf("Dedupe() returned %d exhibitions, want 2", len(got))
	}
	if got[0] != first {
		t.Errorf("Dedupe() did not keep the first-seen record")
	}
	if got[0].Artist != "First Seen" {
		t.Errorf("Dedupe() kept fields from a later duplicate: %q", got[0].Artist)
	}
	if got[1] != other {
		t.Errorf("Dedupe() did not preserve input order")
	}
}

func TestDedupe_Idempotent(t *testing.T) {
	list := []*Exhibition{
		{Title: "Show", Gallery: "Gagosian"},
		{Title: "Grids", Gallery: "David Zwirner"},
		{Title: "Feedback Loop", Gallery: "Jack Shainman Gallery"},
	}

	doubled := append(append([]*Exhibition{}, list...), list...)

	once := Dedupe(list)
	twice := Dedupe(doubled)

	if len(once) != len(twice) {
		t.Fatalf("Dedupe(L ++ L) returned %d exhibitions, Dedupe(L) returned %d", len(twice), len(once))
	}
	for i := range once {
		if once[i].Key() != twice[i].Key() {
			t.Errorf("entry %d differs: %q vs %q", i, once[i].Key(), twice[i].Key())
		}
	}
}

func TestHasDates(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{name: "Both present", start: "2026-01-15", end: "2026-04-04", want: true},
		{name: "Missing end", start: "2026-01-15", want: false},
		{name: "Missing both", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &Exhibition{StartDate: tt.start, EndDate: tt.end}
			if got := ex.HasDates(); got != tt.want {
				t.Errorf("HasDates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestManualEntries(t *testing.T) {
	if len(Manual) == 0 {
		t.Fatal("manual exhibition table is empty")
	}

	if len(Dedupe(Manual)) != len(Manual) {
		t.Error("manual exhibition table contains duplicate identity keys")
	}

	for _, ex := range Manual {
		if ex.Title == "" || ex.Artist == "" || ex.Gallery == "" {
			t.Errorf("manual entry missing required fields: %+v", ex)
		}
		if !ex.HasDates() {
			t.Errorf("manual entry %q has no dates", ex.Title)
		}
	}
}
