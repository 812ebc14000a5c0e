package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/astroplan/internal/domain"
)

// FormatProfile renders a user's account and birth data.
func FormatProfile(u *domain.User, sign *domain.ZodiacSign) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Username:"), StyleFg.Render(u.Username)))

	if !u.HasBirthData() {
		b.WriteString("\n" + StyleYellow.Render("No birth data yet.") + " " + Dim("Run `astroplan profile set` to add it.") + "\n")
		return RenderBox("Profile", b.String())
	}

	bd := u.BirthData
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Name:"), StyleFg.Render(bd.Name)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Born:"), StyleFg.Render(bd.DateOfBirth.Format("January 2, 2006"))))
	if bd.TimeOfBirth != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Time:"), StyleFg.Render(bd.TimeOfBirth)))
	}
	if bd.PlaceOfBirth != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Place:"), StyleFg.Render(bd.PlaceOfBirth)))
	}
	if sign != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Sign:"), StylePurple.Render(sign.Symbol+" "+sign.Name)))
	}

	return RenderBox("Profile", b.String())
}

// FormatZodiac renders a resolved zodiac sign.
func FormatZodiac(sign domain.ZodiacSign) string {
	return fmt.Sprintf("%s %s", StylePurple.Render(sign.Symbol), Bold(sign.Name))
}

// FormatHoroscope renders a generated reading with its source note.
func FormatHoroscope(text, source string) string {
	body := StyleFg.Render(strings.TrimSpace(text))
	if source == "fallback" {
		body += "\n\n" + Dim("(offline reading; start Ollama for a personalized one)")
	}
	return RenderBox("Daily horoscope", body)
}
