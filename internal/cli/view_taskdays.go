package cli

import (
	"time"

	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// taskDaysView shows the best and worst upcoming days for one task's category.
type taskDaysView struct {
	state *SharedState
	task  *domain.Task
	days  domain.TaskDays
}

func newTaskDaysView(state *SharedState, task *domain.Task) *taskDaysView {
	return &taskDaysView{
		state: state,
		task:  task,
		days:  state.App.Recommend.TaskDays(time.Now(), task.Category),
	}
}

func (v *taskDaysView) ID() ViewID    { return ViewTaskDays }
func (v *taskDaysView) Title() string { return "best days" }

func (v *taskDaysView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *taskDaysView) Init() tea.Cmd { return nil }

func (v *taskDaysView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *taskDaysView) View() string {
	return "\n" + formatter.FormatTaskDays(v.task, v.days)
}
