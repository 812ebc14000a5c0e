package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
)

// FormatTaskList formats tasks into an aligned table.
func FormatTaskList(tasks []*domain.Task) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			taskCheckbox(t),
			taskText(t),
			CategoryBadge(t.Category),
			PriorityFlag(t.Priority),
			taskDate(t),
			TruncID(t.ID),
		})
	}
	return RenderTable([]string{"", "Task", "Category", "Priority", "When", "ID"}, rows)
}

// FormatTask formats a single task as a detail card.
func FormatTask(t *domain.Task) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", taskCheckbox(t), taskText(t)))
	b.WriteString(fmt.Sprintf("%s %s   %s\n", Dim("Category:"), CategoryBadge(t.Category), PriorityFlag(t.Priority)))
	if t.Date != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Scheduled:"), taskDate(t)))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), TruncID(t.ID)))

	return b.String()
}

// FormatTaskDays renders the best and worst upcoming days for a task.
func FormatTaskDays(t *domain.Task, days domain.TaskDays) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", StyleFg.Render(t.Text), CategoryBadge(t.Category)))

	b.WriteString(StyleGreen.Render("Best days") + "\n")
	if len(days.Favorable) == 0 {
		b.WriteString(Dim("  none in the next two weeks") + "\n")
	}
	for _, d := range days.Favorable {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", EnergyMark(d.Energy), HumanDate(d.Date), Dim(d.Reason)))
	}

	b.WriteString("\n" + StyleRed.Render("Days to avoid") + "\n")
	if len(days.Challenging) == 0 {
		b.WriteString(Dim("  none in the next two weeks") + "\n")
	}
	for _, d := range days.Challenging {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", EnergyMark(d.Energy), HumanDate(d.Date), Dim(d.Reason)))
	}

	return b.String()
}

// FormatPrediction renders the category predictor's suggestion.
func FormatPrediction(p domain.CategoryPrediction, autoAssigned bool) string {
	line := fmt.Sprintf("%s %s %s",
		Dim("Suggested category:"),
		CategoryBadge(p.Category),
		Dim(fmt.Sprintf("(%d%% confidence)", p.Confidence)),
	)
	if autoAssigned {
		line += " " + StyleGreen.Render("✔ applied")
	}
	return line
}

func taskCheckbox(t *domain.Task) string {
	if t.Completed {
		return StyleGreen.Render("[✔]")
	}
	return StyleDim.Render("[ ]")
}

func taskText(t *domain.Task) string {
	if t.Completed {
		return StyleDim.Render(t.Text)
	}
	return StyleFg.Render(t.Text)
}

func taskDate(t *domain.Task) string {
	if t.Date == "" {
		return Dim("anytime")
	}
	if parsed, err := time.Parse("2006-01-02", t.Date); err == nil {
		return StyleBlue.Render(HumanDate(parsed))
	}
	return StyleBlue.Render(t.Date)
}
