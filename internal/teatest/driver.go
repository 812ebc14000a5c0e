// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of starting a tea.Program, the driver feeds messages straight into
// Update and immediately executes any returned Cmds, so a whole interaction
// runs deterministically on the test goroutine. Cmds that block, such as
// cursor blink timers, are abandoned after a short wait.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds recursive command draining so a message loop cannot hang
// the test forever.
const maxDepth = 100

// cmdWait is how long a Cmd may run before the driver gives up on it.
// Real Cmds here finish in microseconds; blink timers sleep for ~530ms.
const cmdWait = 10 * time.Millisecond

// Driver steps a tea.Model through an interaction.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quit is set once tea.QuitMsg is observed. The real runtime intercepts
	// that message before the model sees it, so the driver tracks it itself.
	Quit bool
}

// Start creates a Driver, sends an initial window size and runs Init.
func Start(t *testing.T, model tea.Model, width, height int) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	d.Model = updated
	d.drain(d.Model.Init(), 0)
	return d
}

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quit {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Press sends a single character key.
func (d *Driver) Press(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends a string one key event at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Press(r)
	}
}

// Enter sends the Enter key.
func (d *Driver) Enter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// Esc sends the Escape key.
func (d *Driver) Esc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// Tab sends the Tab key.
func (d *Driver) Tab() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyTab})
}

// Space sends the space bar.
func (d *Driver) Space() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

// Down sends the Down arrow key.
func (d *Driver) Down() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

// Up sends the Up arrow key.
func (d *Driver) Up() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyUp})
}

// CtrlC sends Ctrl+C.
func (d *Driver) CtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// View returns the current rendered frame.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", maxDepth)
		return
	}

	msg := runCmd(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
		return
	}

	if _, ok := msg.(tea.QuitMsg); ok {
		d.Quit = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// runCmd executes a Cmd with a timeout so blocking Cmds cannot stall the test.
func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdWait):
		return nil
	}
}

// isBlink filters bubbles/cursor blink messages, whose types are unexported.
func isBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
