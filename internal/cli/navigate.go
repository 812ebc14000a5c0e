package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// screenEventMsg fires a navigation event through the screen state machine.
// When the machine moves to a new screen the whole stack is replaced.
type screenEventMsg struct {
	event screenEvent
}

// refreshViewMsg asks every stacked view to reload its data after a mutation.
type refreshViewMsg struct{}

// statusMsg carries a transient one-line confirmation for the view that
// owns it.
type statusMsg struct {
	text string
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// fireEvent returns a tea.Cmd that sends a screen event.
func fireEvent(ev screenEvent) tea.Cmd {
	return func() tea.Msg { return screenEventMsg{event: ev} }
}

// refreshViews returns a tea.Cmd that broadcasts a reload to all views.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
