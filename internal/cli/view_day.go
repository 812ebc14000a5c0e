package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/alexanderramin/astroplan/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dayDetailLoadedMsg carries the day reading with the user's scheduled tasks.
type dayDetailLoadedMsg struct {
	detail *service.DayDetail
	err    error
}

// dayDetailView shows one date's classification plus the tasks scheduled on it.
type dayDetailView struct {
	state   *SharedState
	date    time.Time
	detail  *service.DayDetail
	loading bool
	err     error
}

func newDayDetailView(state *SharedState, date time.Time) *dayDetailView {
	return &dayDetailView{state: state, date: date, loading: true}
}

func (v *dayDetailView) ID() ViewID    { return ViewDayDetail }
func (v *dayDetailView) Title() string { return v.date.Format("Jan 2") }

func (v *dayDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *dayDetailView) Init() tea.Cmd {
	app := v.state.App
	userID := v.state.User.ID
	date := v.date
	return func() tea.Msg {
		detail, err := app.Recommend.DayWithTasks(context.Background(), userID, date)
		return dayDetailLoadedMsg{detail: detail, err: err}
	}
}

func (v *dayDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(dayDetailLoadedMsg); ok {
		v.loading = false
		v.detail = loaded.detail
		v.err = loaded.err
	}
	return v, nil
}

func (v *dayDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Reading the stars...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render(v.err.Error())
	}
	return "\n" + formatter.FormatDayDetail(v.detail)
}
