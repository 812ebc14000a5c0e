package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/alexanderramin/astroplan/internal/horoscope"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// horoscopeLoadedMsg carries the generated daily reading.
type horoscopeLoadedMsg struct {
	reading *horoscope.Reading
}

// horoscopeView fetches and shows today's reading for the logged-in user.
// Generation may take a few seconds when a language model is reachable, so
// the reading loads asynchronously behind a pending line.
type horoscopeView struct {
	state   *SharedState
	reading *horoscope.Reading
	loading bool
}

func newHoroscopeView(state *SharedState) *horoscopeView {
	return &horoscopeView{state: state, loading: true}
}

func (v *horoscopeView) ID() ViewID    { return ViewHoroscope }
func (v *horoscopeView) Title() string { return "horoscope" }

func (v *horoscopeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *horoscopeView) Init() tea.Cmd {
	app := v.state.App
	sign := v.state.Sign()
	name := v.state.User.BirthData.Name
	return func() tea.Msg {
		reading := app.Horoscopes.Daily(context.Background(), horoscope.Request{
			Sign: sign.Name,
			Name: name,
			Date: time.Now(),
		})
		return horoscopeLoadedMsg{reading: reading}
	}
}

func (v *horoscopeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(horoscopeLoadedMsg); ok {
		v.loading = false
		v.reading = loaded.reading
	}
	return v, nil
}

func (v *horoscopeView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Consulting the stars...")
	}
	return "\n" + formatter.FormatHoroscope(v.reading.Text, string(v.reading.Source))
}
