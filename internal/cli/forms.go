package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// astroplanHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func astroplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formCompleteMsg is sent when a pushed form completes or is cancelled.
// The appModel handles it atomically: pop the form view, then run nextCmd.
type formCompleteMsg struct {
	nextCmd tea.Cmd
}

// formView wraps a huh.Form as a View on the navigation stack. When the form
// completes, done runs with the bound values already filled in.
type formView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd
}

func newFormView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *formView {
	return &formView{
		state:    state,
		form:     form,
		titleStr: title,
		done:     done,
	}
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return formCompleteMsg{} }
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done()
		}
		return v, func() tea.Msg {
			return formCompleteMsg{nextCmd: tea.Batch(cmd, doneCmd)}
		}
	}

	return v, cmd
}

func (v *formView) View() string {
	return v.form.View()
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.titleStr }
func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// taskFormValues binds the task add/edit form fields.
type taskFormValues struct {
	Text     string
	Category string
	Priority string
	Date     string
}

func taskFormValuesFrom(t *domain.Task) taskFormValues {
	return taskFormValues{
		Text:     t.Text,
		Category: string(t.Category),
		Priority: string(t.Priority),
		Date:     t.Date,
	}
}

// buildTaskForm creates the add/edit task form bound to vals.
func buildTaskForm(vals *taskFormValues) *huh.Form {
	categoryOptions := []huh.Option[string]{
		huh.NewOption("Suggest from text", ""),
	}
	for _, c := range domain.Categories {
		label := strings.ToUpper(string(c)[:1]) + string(c)[1:]
		categoryOptions = append(categoryOptions, huh.NewOption(label, string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("What needs doing?").
				Value(&vals.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("task text is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&vals.Category),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(&vals.Priority),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD, empty = anytime").
				Value(&vals.Date).
				Validate(validateOptionalDate),
		),
	).WithTheme(astroplanHuhTheme()).WithShowHelp(false)
}

// birthFormValues binds the birth data form fields.
type birthFormValues struct {
	Name  string
	Born  string
	Time  string
	Place string
}

func birthFormValuesFrom(data *domain.BirthData) birthFormValues {
	if data == nil {
		return birthFormValues{}
	}
	return birthFormValues{
		Name:  data.Name,
		Born:  data.DateOfBirth.Format("2006-01-02"),
		Time:  data.TimeOfBirth,
		Place: data.PlaceOfBirth,
	}
}

// buildBirthForm creates the birth data form bound to vals.
func buildBirthForm(vals *birthFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("How should readings address you?").
				Value(&vals.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date of birth").
				Placeholder("YYYY-MM-DD").
				Value(&vals.Born).
				Validate(func(s string) error {
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD format")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time of birth").
				Placeholder("HH:MM, optional").
				Value(&vals.Time),
			huh.NewInput().
				Title("Place of birth").
				Placeholder("optional").
				Value(&vals.Place),
		),
	).WithTheme(astroplanHuhTheme()).WithShowHelp(false)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
