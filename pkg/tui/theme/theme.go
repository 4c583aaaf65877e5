package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/stickycal/pkg/note"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Dark   bool
	Footer FooterTheme
	Board  BoardTheme
	Modal  ModalTheme
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Warn   lipgloss.Style
}

// BoardTheme styles the month grid, the tray and the trash target.
type BoardTheme struct {
	Title     lipgloss.Style
	Weekday   lipgloss.Style
	Cell      lipgloss.Style
	Blank     lipgloss.Style
	Cursor    lipgloss.Style
	HoverOK   lipgloss.Style
	HoverBad  lipgloss.Style
	DayNumber lipgloss.Style
	FullDay   lipgloss.Style
	Trash     lipgloss.Style
	Note      lipgloss.Style
	Empty     lipgloss.Style
}

// ModalTheme styles the blocking full-calendar dialog.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Hint  lipgloss.Style
}

const (
	green = "#3FB950"
	red   = "#F85149"
	focus = "63"
)

// Default returns the built-in theme for a dark or light background.
func Default(dark bool) Theme {
	fg := lipgloss.Color("252")
	muted := lipgloss.Color("244")
	if !dark {
		fg = lipgloss.Color("236")
		muted = lipgloss.Color("246")
	}
	cell := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	return Theme{
		Dark: dark,
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color(red)),
		},
		Board: BoardTheme{
			Title:     lipgloss.NewStyle().Bold(true).Foreground(fg),
			Weekday:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Cell:      cell,
			Blank:     cell.BorderForeground(lipgloss.Color("236")),
			Cursor:    cell.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color(focus)),
			HoverOK:   cell.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color(green)),
			HoverBad:  cell.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color(red)),
			DayNumber: lipgloss.NewStyle().Foreground(muted),
			FullDay:   lipgloss.NewStyle().Foreground(fg).Bold(true),
			Trash: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			Note: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color(red)).
				Padding(1, 3),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(red)),
			Body:  lipgloss.NewStyle().Foreground(fg),
			Hint:  lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
	}
}

// NoteHex returns the display color for c. Disabled notes are desaturated
// and pulled toward the background.
func (t Theme) NoteHex(c note.Color, enabled bool) string {
	base, err := colorful.Hex(c.Hex())
	if err != nil {
		return c.Hex()
	}
	if enabled {
		return base.Hex()
	}
	h, s, l := base.Hsl()
	muted := colorful.Hsl(h, s*0.25, l)
	bg := colorful.Color{R: 0.1, G: 0.1, B: 0.1}
	if !t.Dark {
		bg = colorful.Color{R: 0.95, G: 0.95, B: 0.95}
	}
	return muted.BlendLab(bg, 0.45).Clamped().Hex()
}

// NoteText is the style for a note label painted in its color.
func (t Theme) NoteText(c note.Color, enabled bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.NoteHex(c, enabled)))
}

// NoteCard is the bordered tray card for a note.
func (t Theme) NoteCard(c note.Color, enabled bool) lipgloss.Style {
	hex := lipgloss.Color(t.NoteHex(c, enabled))
	return t.Board.Note.BorderForeground(hex).Foreground(hex)
}
