package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/alexanderramin/astroplan/internal/service"
)

// FormatDayDetail formats the full reading for one calendar date.
func FormatDayDetail(detail *service.DayDetail) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(detail.Date.Format("Monday, January 2, 2006")), EnergyIndicator(detail.Recommendation.Energy)))
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Ruling planet:"), StylePurple.Render(detail.RulingPlanet)))

	b.WriteString(StyleGreen.Render("Favorable") + "\n")
	b.WriteString("  " + categoryLine(detail.Recommendation.Favorable) + "\n\n")

	b.WriteString(StyleRed.Render("Better avoided") + "\n")
	b.WriteString("  " + categoryLine(detail.Recommendation.Avoid) + "\n")

	if detail.Tasks != nil {
		b.WriteString("\n" + Header("Scheduled tasks") + "\n")
		if len(detail.Tasks) == 0 {
			b.WriteString(Dim("Nothing scheduled.") + "\n")
		} else {
			b.WriteString(FormatTaskList(detail.Tasks))
		}
	}

	return RenderBox("Day reading", b.String())
}

// FormatMonth renders one compact line per day of a month.
func FormatMonth(days []service.DayDetail) string {
	var b strings.Builder

	if len(days) > 0 {
		b.WriteString(Header(days[0].Date.Format("January 2006")) + "\n")
	}

	for _, d := range days {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			EnergyMark(d.Recommendation.Energy),
			StyleFg.Render(d.Date.Format("Mon 02")),
			Dim(categoryNames(d.Recommendation.Favorable)),
		))
	}

	return b.String()
}

// FormatRecommendations renders the grouped lookahead for a user's open tasks.
func FormatRecommendations(recs []service.CategoryRecommendation) string {
	if len(recs) == 0 {
		return Dim("No open tasks to recommend days for.")
	}

	var b strings.Builder
	for i, rec := range recs {
		b.WriteString(fmt.Sprintf("%s %s\n",
			CategoryBadge(rec.Category),
			Dim(fmt.Sprintf("(%d open)", rec.TaskCount)),
		))

		for _, d := range rec.Favorable {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n", EnergyMark(d.Energy), HumanDate(d.Date), Dim(d.Reason)))
		}
		for _, d := range rec.Challenging {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n", EnergyMark(d.Energy), HumanDate(d.Date), Dim(d.Reason)))
		}

		if i < len(recs)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Recommended days", b.String())
}

// FormatLookahead renders the full two-week window for one category.
func FormatLookahead(category domain.Category, days []domain.CategoryDay) string {
	var b strings.Builder

	b.WriteString(CategoryBadge(category) + "\n")
	for _, d := range days {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			EnergyMark(d.Energy),
			StyleFg.Render(d.Date.Format("Mon, Jan 2")),
			Dim(d.Reason),
		))
	}

	return RenderBox("Two-week outlook", b.String())
}

func categoryLine(categories []domain.Category) string {
	if len(categories) == 0 {
		return Dim("none")
	}
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, CategoryBadge(c))
	}
	return strings.Join(parts, "  ")
}

func categoryNames(categories []domain.Category) string {
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}
