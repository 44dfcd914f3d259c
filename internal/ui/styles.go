package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent    = lipgloss.Color("#FF8C42")
	highlight = lipgloss.Color("#FFB84D")
	muted     = lipgloss.Color("#6B7280")
	danger    = lipgloss.Color("#FF4757")
)

var letterColors = map[string]lipgloss.Color{
	"A": lipgloss.Color("#2ECC71"),
	"B": lipgloss.Color("#A3D977"),
	"C": highlight,
	"D": accent,
	"F": danger,
}

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginTop(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(muted).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2)
)

// LetterStyle returns the style used for a letter grade.
func LetterStyle(letter string) lipgloss.Style {
	c, ok := letterColors[letter]
	if !ok {
		c = lipgloss.Color("#FFFFFF")
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
