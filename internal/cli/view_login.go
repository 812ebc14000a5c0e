package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginDoneMsg carries the result of a login attempt.
type loginDoneMsg struct {
	err error
}

// loginView asks for a username. Logging in creates the account on first use.
type loginView struct {
	state *SharedState
	input textinput.Model
	err   error
}

func newLoginView(state *SharedState) *loginView {
	ti := textinput.New()
	ti.Placeholder = "username"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()

	return &loginView{state: state, input: ti}
}

func (v *loginView) ID() ViewID    { return ViewLogin }
func (v *loginView) Title() string { return "" }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "log in")),
	}
}

func (v *loginView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *loginView) login(username string) tea.Cmd {
	app := v.state.App
	state := v.state
	return func() tea.Msg {
		u, err := app.Users.Login(context.Background(), username)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		state.SetUser(u)
		return loginDoneMsg{}
	}
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		return v, fireEvent(eventLoggedIn)

	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			username := strings.TrimSpace(v.input.Value())
			if username == "" {
				return v, nil
			}
			return v, v.login(username)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *loginView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("✦ astroplan") + "\n\n")
	b.WriteString("  " + formatter.Bold("Who is planning today?") + "\n")
	b.WriteString("  " + formatter.Dim("New usernames are registered on first login.") + "\n\n")
	b.WriteString("  " + v.input.View() + "\n")
	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render(v.err.Error()) + "\n")
	}
	return b.String()
}
