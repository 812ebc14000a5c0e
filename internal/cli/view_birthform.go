package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/astroplan/internal/astro"
	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// birthDataSavedMsg carries the result of saving birth data.
type birthDataSavedMsg struct {
	err error
}

// birthFormView collects the birth data required before the planner screens
// open. It wraps the shared birth data form with an intro banner.
type birthFormView struct {
	state *SharedState
	vals  birthFormValues
	form  *huh.Form
	err   error
}

func newBirthFormView(state *SharedState) *birthFormView {
	var data *domain.BirthData
	if state.User != nil {
		data = state.User.BirthData
	}
	vals := birthFormValuesFrom(data)
	v := &birthFormView{state: state, vals: vals}
	v.form = buildBirthForm(&v.vals)
	return v
}

func (v *birthFormView) ID() ViewID    { return ViewBirthForm }
func (v *birthFormView) Title() string { return "birth data" }

func (v *birthFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next field")),
	}
}

func (v *birthFormView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *birthFormView) save() tea.Cmd {
	app := v.state.App
	state := v.state
	vals := v.vals
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

func (v *birthFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case birthDataSavedMsg:
		if msg.err != nil {
			v.err = msg.err
			v.form = buildBirthForm(&v.vals)
			return v, v.form.Init()
		}
		return v, fireEvent(eventBirthDataSaved)

	case tea.KeyMsg:
		// No way back but logout before birth data is set.
		if msg.Type == tea.KeyEsc {
			return v, fireEvent(eventOpenProfile)
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		return v, tea.Batch(cmd, v.save())
	}

	return v, cmd
}

func (v *birthFormView) View() string {
	header := "\n  " + formatter.Bold("Tell the stars about yourself") + "\n" +
		"  " + formatter.Dim("Your sign and daily readings are derived from your birth date.") + "\n\n"

	body := v.form.View()
	if v.err != nil {
		body += "\n  " + formatter.StyleRed.Render(v.err.Error())
	}
	if sign := previewSign(v.vals.Born); sign != nil {
		body += "\n  " + formatter.StylePurple.Render(sign.Symbol) + " " + formatter.Bold(sign.Name)
	}
	return header + body
}

// previewSign resolves the sign live while the date field is being typed.
func previewSign(born string) *domain.ZodiacSign {
	t, err := time.Parse("2006-01-02", born)
	if err != nil {
		return nil
	}
	sign := astro.ResolveSign(t)
	return &sign
}
