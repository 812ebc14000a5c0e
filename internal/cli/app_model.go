package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI. The top-level screen is
// chosen by the navigation state machine; transient views (forms, day
// details) stack on top of it.
type appModel struct {
	state     *SharedState
	screen    screen
	viewStack []View
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state, screen: screenLoggedOut}

	// Resume the previous session when someone is still logged in.
	if u, err := app.Users.Current(context.Background()); err == nil {
		state.SetUser(u)
		m.screen = nextScreen(screenLoggedOut, eventLoggedIn, u.HasBirthData())
	}

	m.viewStack = []View{m.viewFor(m.screen)}
	return m
}

// viewFor builds the base view for a screen.
func (m *appModel) viewFor(s screen) View {
	switch s {
	case screenNeedsBirthData:
		return newBirthFormView(m.state)
	case screenTaskList:
		return newTaskListView(m.state)
	case screenCalendar:
		return newCalendarView(m.state)
	case screenProfile:
		return newProfileView(m.state)
	}
	return newLoginView(m.state)
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case screenEventMsg:
		next := nextScreen(m.screen, msg.event, m.state.User.HasBirthData())
		if next == m.screen {
			return m, nil
		}
		m.screen = next
		v := m.viewFor(next)
		m.viewStack = []View{v}
		return m, v.Init()

	case formCompleteMsg:
		// Atomically pop the form view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews())

	case refreshViewMsg:
		// Broadcast to the whole stack so views under a form reload after
		// mutations made above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	// Forward everything else to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Views with their own text input receive all keys, including q and tab.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		return m, fireEvent(m.nextTab())

	case "esc":
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// nextTab cycles tasks, calendar, profile. The state machine enforces the
// birth data guard, so an ineligible event is simply a no-op.
func (m *appModel) nextTab() screenEvent {
	switch m.screen {
	case screenTaskList:
		return eventOpenCalendar
	case screenCalendar:
		return eventOpenProfile
	default:
		return eventOpenTasks
	}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeader.Render("✦ astroplan")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb

	if u := m.state.User; u != nil {
		who := formatter.StyleGreen.Render(u.Username)
		if sign := m.state.Sign(); sign != nil {
			who += " " + formatter.StylePurple.Render(sign.Symbol)
		}
		header += "  " + formatter.Dim("[") + who + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	if m.screen != screenLoggedOut && !viewCapturesInput(m.activeView()) {
		hints = append(hints, formatter.Dim("tab: switch"), formatter.Dim("q: quit"))
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput reports whether the active view owns a text input and
// should receive all key events, bypassing global keybindings.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewLogin, ViewBirthForm, ViewForm:
		return true
	}
	return false
}
