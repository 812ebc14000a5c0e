package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/astroplan/internal/astro"
	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/alexanderramin/astroplan/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// taskListLoadedMsg signals that the task list has been loaded.
type taskListLoadedMsg struct {
	tasks []*domain.Task
	err   error
}

// taskListView shows the user's tasks with inline toggle, add, edit and
// delete, plus a per-task best-days lookup.
type taskListView struct {
	state       *SharedState
	tasks       []*domain.Task
	cursor      int
	showAll     bool
	loading     bool
	err         error
	lastUpdated string // transient confirmation line
}

func newTaskListView(state *SharedState) *taskListView {
	return &taskListView{state: state, loading: true}
}

func (v *taskListView) ID() ViewID    { return ViewTaskList }
func (v *taskListView) Title() string { return "tasks" }

func (v *taskListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle done")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "best days")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "show completed")),
	}
}

func (v *taskListView) Init() tea.Cmd {
	return v.loadTasks()
}

func (v *taskListView) loadTasks() tea.Cmd {
	app := v.state.App
	userID := v.state.User.ID
	all := v.showAll
	return func() tea.Msg {
		ctx := context.Background()
		var (
			tasks []*domain.Task
			err   error
		)
		if all {
			tasks, err = app.Tasks.List(ctx, userID)
		} else {
			tasks, err = app.Tasks.ListOpen(ctx, userID)
		}
		return taskListLoadedMsg{tasks: tasks, err: err}
	}
}

func (v *taskListView) selected() *domain.Task {
	if v.cursor < 0 || v.cursor >= len(v.tasks) {
		return nil
	}
	return v.tasks[v.cursor]
}

func (v *taskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskListLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.tasks = msg.tasks
		if v.cursor >= len(v.tasks) {
			v.cursor = len(v.tasks) - 1
		}
		if v.cursor < 0 {
			v.cursor = 0
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadTasks()

	case statusMsg:
		v.lastUpdated = msg.text
		return v, v.loadTasks()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *taskListView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.lastUpdated = ""

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < len(v.tasks)-1 {
			v.cursor++
		}

	case " ":
		t := v.selected()
		if t == nil {
			return v, nil
		}
		return v, v.toggleTask(t.ID)

	case "a":
		return v, v.openTaskForm(nil)

	case "e":
		t := v.selected()
		if t == nil {
			return v, nil
		}
		return v, v.openTaskForm(t)

	case "x":
		t := v.selected()
		if t == nil {
			return v, nil
		}
		return v, v.deleteTask(t.ID)

	case "d":
		t := v.selected()
		if t == nil {
			return v, nil
		}
		return v, pushView(newTaskDaysView(v.state, t))

	case "c":
		v.showAll = !v.showAll
		v.loading = true
		return v, v.loadTasks()
	}
	return v, nil
}

func (v *taskListView) toggleTask(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if _, err := app.Tasks.Toggle(context.Background(), id); err != nil {
			return taskListLoadedMsg{err: err}
		}
		return refreshViewMsg{}
	}
}

func (v *taskListView) deleteTask(id string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if err := app.Tasks.Delete(context.Background(), id); err != nil {
			return taskListLoadedMsg{err: err}
		}
		return refreshViewMsg{}
	}
}

// openTaskForm pushes the add/edit form. A nil task means add.
func (v *taskListView) openTaskForm(t *domain.Task) tea.Cmd {
	state := v.state
	app := v.state.App

	vals := &taskFormValues{Priority: string(domain.PriorityMedium)}
	title := "add task"
	if t != nil {
		copied := taskFormValuesFrom(t)
		vals = &copied
		title = "edit task"
	}

	form := buildTaskForm(vals)
	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			if t == nil {
				task := &domain.Task{
					UserID:   state.User.ID,
					Text:     vals.Text,
					Date:     vals.Date,
					Category: domain.Category(vals.Category),
					Priority: domain.Priority(vals.Priority),
				}
				note := ""
				if task.Category == "" {
					p := app.Tasks.Suggest(task.Text)
					if p.Confidence > astro.AutoAssignThreshold {
						task.Category = p.Category
						note = fmt.Sprintf("Suggested category: %s (%d%% confidence)", p.Category, p.Confidence)
					} else {
						task.Category = domain.CategoryPersonal
					}
				}
				if err := app.Tasks.Add(ctx, task); err != nil {
					return taskListLoadedMsg{err: err}
				}
				if note != "" {
					return statusMsg{text: note}
				}
				return refreshViewMsg{}
			}

			cat := domain.Category(vals.Category)
			prio := domain.Priority(vals.Priority)
			upd := service.TaskUpdate{Text: &vals.Text, Date: &vals.Date, Priority: &prio}
			if cat != "" {
				upd.Category = &cat
			}
			if _, err := app.Tasks.Edit(ctx, t.ID, upd); err != nil {
				return taskListLoadedMsg{err: err}
			}
			return refreshViewMsg{}
		}
	}

	return pushView(newFormView(state, title, form, done))
}

func (v *taskListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading tasks...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render(v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(v.tasks) == 0 {
		if v.showAll {
			b.WriteString("  " + formatter.Dim("No tasks yet. Press a to add one.") + "\n")
		} else {
			b.WriteString("  " + formatter.Dim("No open tasks. Press a to add one, c to see completed.") + "\n")
		}
		return b.String()
	}

	for i, t := range v.tasks {
		prefix := "  "
		if i == v.cursor {
			prefix = formatter.StyleHeader.Render("› ")
		}
		line := fmt.Sprintf("%s%s %s  %s %s %s",
			prefix,
			taskListCheckbox(t),
			taskListText(t, i == v.cursor),
			formatter.CategoryBadge(t.Category),
			formatter.PriorityFlag(t.Priority),
			taskListDate(t),
		)
		b.WriteString(line + "\n")
	}

	open := 0
	for _, t := range v.tasks {
		if !t.Completed {
			open++
		}
	}
	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d open, %d total", open, len(v.tasks))) + "\n")

	if v.lastUpdated != "" {
		b.WriteString("  " + formatter.StyleGreen.Render(v.lastUpdated) + "\n")
	}

	return b.String()
}

func taskListCheckbox(t *domain.Task) string {
	if t.Completed {
		return formatter.StyleGreen.Render("[✔]")
	}
	return formatter.Dim("[ ]")
}

func taskListText(t *domain.Task, focused bool) string {
	if t.Completed {
		return formatter.Dim(t.Text)
	}
	if focused {
		return formatter.Bold(t.Text)
	}
	return formatter.StyleFg.Render(t.Text)
}

func taskListDate(t *domain.Task) string {
	if t.Date == "" {
		return formatter.Dim("anytime")
	}
	if parsed, err := time.Parse("2006-01-02", t.Date); err == nil {
		return formatter.StyleBlue.Render(formatter.HumanDate(parsed))
	}
	return formatter.StyleBlue.Render(t.Date)
}
