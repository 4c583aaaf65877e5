package note

import (
	"encoding/json"
	"testing"
)

func TestSequenceMintsIncreasingIDs(t *testing.T) {
	var seq Sequence
	a := seq.New(Blue)
	b := seq.New(Pink)
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", a.ID, b.ID)
	}
	if !a.Draggable || !b.Draggable {
		t.Fatalf("new notes must be draggable")
	}
	seq.Reset()
	if c := seq.New(Yellow); c.ID != 1 {
		t.Fatalf("expected id 1 after reset, got %d", c.ID)
	}
}

func TestParseID(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    ID
		wantErr bool
	}{
		"prefixed": {in: "note-12", want: 12},
		"bare":     {in: "7", want: 7},
		"spaces":   {in: " note-3 ", want: 3},
		"zero":     {in: "note-0", wantErr: true},
		"garbage":  {in: "pink", wantErr: true},
		"empty":    {in: "", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseID(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}

func TestColorLabels(t *testing.T) {
	want := map[Color]string{
		Blue:   "Birthday 🎂",
		Yellow: "Appt 🩺",
		Pink:   "Event ⭐",
	}
	for c, title := range want {
		if got := c.Title(); got != title {
			t.Fatalf("%s: got %q want %q", c, got, title)
		}
	}
}

func TestParseColorAcceptsKeyAndLabel(t *testing.T) {
	for in, want := range map[string]Color{"blue": Blue, "YELLOW": Yellow, "event": Pink, "Birthday": Blue} {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseColor("green"); err == nil {
		t.Fatalf("expected error for unknown color")
	}
}

func TestNoteJSONUsesExternalForms(t *testing.T) {
	b, err := json.Marshal(Note{ID: 4, Color: Yellow, Draggable: true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `{"id":"note-4","color":"yellow","draggable":true}`; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}
