package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// profileView shows the logged-in user's birth data and zodiac sign.
type profileView struct {
	state *SharedState
	err   error
}

func newProfileView(state *SharedState) *profileView {
	return &profileView{state: state}
}

func (v *profileView) ID() ViewID    { return ViewProfile }
func (v *profileView) Title() string { return "profile" }

func (v *profileView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit birth data")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "horoscope")),
		key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log out")),
	}
}

func (v *profileView) Init() tea.Cmd { return nil }

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case birthDataSavedMsg:
		v.err = msg.err
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			return v, v.openEditForm()
		case "h":
			if v.state.User.HasBirthData() {
				return v, pushView(newHoroscopeView(v.state))
			}
			return v, nil
		case "L":
			return v, v.logout()
		}
	}
	return v, nil
}

func (v *profileView) openEditForm() tea.Cmd {
	state := v.state
	app := v.state.App
	vals := birthFormValuesFrom(state.User.BirthData)
	form := buildBirthForm(&vals)

	done := func() tea.Cmd {
		return func() tea.Msg {
			born, err := time.Parse("2006-01-02", vals.Born)
			if err != nil {
				return birthDataSavedMsg{err: fmt.Errorf("invalid date of birth: %w", err)}
			}
			u, err := app.Users.SetBirthData(context.Background(), state.User.ID, domain.BirthData{
				Name:         vals.Name,
				DateOfBirth:  born,
				TimeOfBirth:  vals.Time,
				PlaceOfBirth: vals.Place,
			})
			if err != nil {
				return birthDataSavedMsg{err: err}
			}
			state.SetUser(u)
			return birthDataSavedMsg{}
		}
	}

	return pushView(newFormView(state, "edit birth data", form, done))
}

func (v *profileView) logout() tea.Cmd {
	app := v.state.App
	state := v.state
	return func() tea.Msg {
		if err := app.Users.Logout(context.Background()); err != nil {
			return birthDataSavedMsg{err: err}
		}
		state.SetUser(nil)
		return screenEventMsg{event: eventLoggedOut}
	}
}

func (v *profileView) View() string {
	out := "\n" + formatter.FormatProfile(v.state.User, v.state.Sign())
	if v.err != nil {
		out += "\n  " + formatter.StyleRed.Render(v.err.Error())
	}
	return out
}
