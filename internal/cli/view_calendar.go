package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/alexanderramin/astroplan/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// calendarView renders a month grid where each day carries its energy mark.
// The cursor moves by day; enter opens the day detail.
type calendarView struct {
	state  *SharedState
	year   int
	month  time.Month
	cursor int // 1-based day of month
	days   []service.DayDetail
}

func newCalendarView(state *SharedState) *calendarView {
	now := time.Now()
	v := &calendarView{
		state:  state,
		year:   now.Year(),
		month:  now.Month(),
		cursor: now.Day(),
	}
	v.reload()
	return v
}

func (v *calendarView) reload() {
	v.days = v.state.App.Recommend.Month(v.year, v.month)
	if v.cursor > len(v.days) {
		v.cursor = len(v.days)
	}
	if v.cursor < 1 {
		v.cursor = 1
	}
}

func (v *calendarView) ID() ViewID { return ViewCalendar }
func (v *calendarView) Title() string {
	return strings.ToLower(v.month.String())
}

func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "day detail")),
		key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("←→", "move")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next month")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev month")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	}
}

func (v *calendarView) Init() tea.Cmd { return nil }

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		if v.cursor > 1 {
			v.cursor--
		}

	case "right", "l":
		if v.cursor < len(v.days) {
			v.cursor++
		}

	case "up", "k":
		if v.cursor > 7 {
			v.cursor -= 7
		}

	case "down", "j":
		if v.cursor+7 <= len(v.days) {
			v.cursor += 7
		}

	case "n":
		v.year, v.month = nextMonth(v.year, v.month)
		v.cursor = 1
		v.reload()

	case "p":
		v.year, v.month = prevMonth(v.year, v.month)
		v.cursor = 1
		v.reload()

	case "t":
		now := time.Now()
		v.year, v.month, v.cursor = now.Year(), now.Month(), now.Day()
		v.reload()

	case "enter":
		date := time.Date(v.year, v.month, v.cursor, 0, 0, 0, 0, time.UTC)
		return v, pushView(newDayDetailView(v.state, date))
	}
	return v, nil
}

func (v *calendarView) View() string {
	var b strings.Builder

	b.WriteString("\n  " + formatter.Bold(fmt.Sprintf("%s %d", v.month, v.year)) + "\n\n")

	// Weekday header, weeks starting on Monday.
	b.WriteString("   " + formatter.Dim(" Mo  Tu  We  Th  Fr  Sa  Su") + "\n")

	first := time.Date(v.year, v.month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7 // Monday = 0

	b.WriteString("   " + strings.Repeat("    ", offset))
	col := offset
	for _, d := range v.days {
		cell := fmt.Sprintf("%s%2d", formatter.EnergyMark(d.Recommendation.Energy), d.Date.Day())
		if d.Date.Day() == v.cursor {
			cell = formatter.StyleHeader.Render(fmt.Sprintf("[%2d]", d.Date.Day()))
			b.WriteString(cell)
		} else {
			b.WriteString(cell + " ")
		}
		col++
		if col == 7 {
			b.WriteString("\n   ")
			col = 0
		}
	}
	b.WriteString("\n\n")

	// Summary line for the selected day.
	if v.cursor >= 1 && v.cursor <= len(v.days) {
		sel := v.days[v.cursor-1]
		b.WriteString("  " + sel.Date.Format("Monday, January 2") + "  " +
			formatter.EnergyIndicator(sel.Recommendation.Energy) + "  " +
			formatter.Dim("ruled by "+sel.RulingPlanet) + "\n")
	}

	b.WriteString("\n  " + formatter.StyleGreen.Render("●") + formatter.Dim(" favorable  ") +
		formatter.StyleRed.Render("▲") + formatter.Dim(" challenging  ") +
		formatter.StyleYellow.Render("○") + formatter.Dim(" neutral") + "\n")

	return b.String()
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
