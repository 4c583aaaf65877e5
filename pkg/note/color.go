package note

import (
	"fmt"
	"strings"
)

// Color is the category of a sticky note. The set is fixed.
type Color int

const (
	Blue Color = iota
	Yellow
	Pink
)

// Style describes how a color is presented to the user.
type Style struct {
	Key   string
	Label string
	Glyph string
	Hex   string
}

func defaultStyles() []Style {
	return []Style{
		{Key: "blue", Label: "Birthday", Glyph: "🎂", Hex: "#5DA9E9"},
		{Key: "yellow", Label: "Appt", Glyph: "🩺", Hex: "#F4D35E"},
		{Key: "pink", Label: "Event", Glyph: "⭐", Hex: "#F28DB2"},
	}
}

// Colors returns every color in workspace order.
func Colors() []Color {
	return []Color{Blue, Yellow, Pink}
}

// Valid reports whether c is one of the known colors.
func (c Color) Valid() bool {
	return c >= Blue && c <= Pink
}

// Style returns the presentation for c.
func (c Color) Style() Style {
	if !c.Valid() {
		return Style{Key: fmt.Sprintf("color(%d)", int(c))}
	}
	return defaultStyles()[c]
}

// String returns the lowercase key, e.g. "blue".
func (c Color) String() string { return c.Style().Key }

// Label returns the display text bound to the color.
func (c Color) Label() string { return c.Style().Label }

// Glyph returns the emoji bound to the color.
func (c Color) Glyph() string { return c.Style().Glyph }

// Hex returns the display color in #RRGGBB form.
func (c Color) Hex() string { return c.Style().Hex }

// Title is the label followed by the glyph, as shown on a note.
func (c Color) Title() string {
	s := c.Style()
	if s.Glyph == "" {
		return s.Label
	}
	return s.Label + " " + s.Glyph
}

// ParseColor accepts the color key, case-insensitively, or its label.
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Colors() {
		st := c.Style()
		if v == st.Key || v == strings.ToLower(st.Label) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("note: unknown color %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("note: invalid color %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Later reports whether c is placed after other in the workspace.
func (c Color) Later(other Color) bool { return c > other }
