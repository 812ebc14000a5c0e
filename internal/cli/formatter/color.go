package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// EnergyColor returns the lipgloss style corresponding to the day energy.
func EnergyColor(energy domain.Energy) lipgloss.Style {
	switch energy {
	case domain.EnergyFavorable:
		return StyleGreen
	case domain.EnergyChallenging:
		return StyleRed
	default:
		return StyleYellow
	}
}

// EnergyIndicator returns a colored energy indicator string such as "● FAVORABLE".
func EnergyIndicator(energy domain.Energy) string {
	switch energy {
	case domain.EnergyFavorable:
		return StyleGreen.Render("● FAVORABLE")
	case domain.EnergyChallenging:
		return StyleRed.Render("▲ CHALLENGING")
	default:
		return StyleYellow.Render("○ NEUTRAL")
	}
}

// EnergyMark returns a single colored glyph for compact calendar cells.
func EnergyMark(energy domain.Energy) string {
	switch energy {
	case domain.EnergyFavorable:
		return StyleGreen.Render("●")
	case domain.EnergyChallenging:
		return StyleRed.Render("▲")
	default:
		return StyleYellow.Render("○")
	}
}

// CategoryBadge returns a capitalized category label in its fixed color.
func CategoryBadge(c domain.Category) string {
	label := string(c)
	if label == "" {
		return StyleDim.Render("--")
	}
	label = strings.ToUpper(label[:1]) + label[1:]

	switch c {
	case domain.CategoryWork:
		return StyleBlue.Render(label)
	case domain.CategoryHealth:
		return StyleGreen.Render(label)
	case domain.CategoryFinance:
		return StyleYellow.Render(label)
	case domain.CategoryCreativity:
		return StyleHeader.Render(label)
	case domain.CategoryRelationships:
		return StylePurple.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

// PriorityFlag returns a colored priority marker.
func PriorityFlag(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("⚑ high")
	case domain.PriorityMedium:
		return StyleYellow.Render("⚑ medium")
	case domain.PriorityLow:
		return StyleDim.Render("⚑ low")
	default:
		return StyleDim.Render(string(p))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
