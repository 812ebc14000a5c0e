package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/astroplan/internal/horoscope"
	"github.com/alexanderramin/astroplan/internal/idgen"
	"github.com/alexanderramin/astroplan/internal/llm"
	"github.com/alexanderramin/astroplan/internal/repository"
	"github.com/alexanderramin/astroplan/internal/service"
	"github.com/alexanderramin/astroplan/internal/teatest"
	"github.com/alexanderramin/astroplan/internal/testutil"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires real services over an in-memory database. Horoscopes run with
// a nil LLM client, so every reading is a fallback text.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	state := repository.NewSQLiteAppStateRepo(database)
	ids := idgen.NewSequenceGenerator("id")

	return &App{
		Users:      service.NewUserService(users, state, ids),
		Tasks:      service.NewTaskService(tasks, users, ids),
		Recommend:  service.NewRecommendService(tasks),
		Horoscopes: horoscope.NewService(nil, llm.DefaultConfig()),
	}
}

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return nil }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, nil
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return nil }
func (v *stubView) Title() string            { return v.title }

func TestNewAppModel_StartsAtLogin(t *testing.T) {
	m := newAppModel(testApp(t))

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, screenLoggedOut, m.screen)
	assert.Equal(t, ViewLogin, m.activeView().ID())
}

func TestNewAppModel_ResumesSession(t *testing.T) {
	app := testApp(t)
	_, err := app.Users.Login(context.Background(), "stella")
	require.NoError(t, err)

	m := newAppModel(app)
	assert.Equal(t, screenNeedsBirthData, m.screen)
	assert.Equal(t, ViewBirthForm, m.activeView().ID())
}

func TestAppModel_PushPop(t *testing.T) {
	m := newAppModel(testApp(t))
	v := &stubView{id: ViewDayDetail, title: "Jun 12", viewText: "day"}

	model, _ := m.Update(pushViewMsg{view: v})
	m = model.(appModel)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v, m.activeView())

	model, cmd := m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewLogin, m.activeView().ID())
}

func TestAppModel_ScreenEventReplacesStack(t *testing.T) {
	app := testApp(t)
	m := newAppModel(app)
	d := teatest.Start(t, m, 100, 30)

	// Log in and complete birth data via the forms.
	d.Type("stella")
	d.Enter()
	d.Type("Stella")
	d.Enter()
	d.Type("1995-08-10")
	d.Enter()
	d.Enter() // time of birth, empty
	d.Enter() // place of birth, empty

	got := d.Model.(appModel)
	assert.Equal(t, screenTaskList, got.screen)
	require.Len(t, got.viewStack, 1)
	assert.Equal(t, ViewTaskList, got.activeView().ID())
}

func TestAppModel_TabCyclesScreens(t *testing.T) {
	app := testApp(t)
	d := teatest.Start(t, newAppModel(app), 100, 30)
	d.Type("stella")
	d.Enter()
	d.Type("Stella")
	d.Enter()
	d.Type("1995-08-10")
	d.Enter()
	d.Enter()
	d.Enter()
	require.Equal(t, screenTaskList, d.Model.(appModel).screen)

	d.Tab()
	assert.Equal(t, screenCalendar, d.Model.(appModel).screen)
	d.Tab()
	assert.Equal(t, screenProfile, d.Model.(appModel).screen)
	d.Tab()
	assert.Equal(t, screenTaskList, d.Model.(appModel).screen)
}

func TestAppModel_TabGuardedWithoutBirthData(t *testing.T) {
	app := testApp(t)
	_, err := app.Users.Login(context.Background(), "stella")
	require.NoError(t, err)

	m := newAppModel(app)
	require.Equal(t, screenNeedsBirthData, m.screen)

	// Birth form captures input, so tab stays inside the form and the
	// screen does not change.
	d := teatest.Start(t, m, 100, 30)
	d.Tab()
	assert.Equal(t, screenNeedsBirthData, d.Model.(appModel).screen)
}

func TestAppModel_QuitKeys(t *testing.T) {
	t.Run("ctrl+c quits from anywhere", func(t *testing.T) {
		d := teatest.Start(t, newAppModel(testApp(t)), 100, 30)
		d.CtrlC()
		assert.True(t, d.Quit)
	})

	t.Run("q does not quit while the login input is focused", func(t *testing.T) {
		d := teatest.Start(t, newAppModel(testApp(t)), 100, 30)
		d.Press('q')
		assert.False(t, d.Quit)
	})
}

func TestAppModel_LoginFlowRendersTasks(t *testing.T) {
	d := teatest.Start(t, newAppModel(testApp(t)), 100, 30)
	d.Type("stella")
	d.Enter()
	d.Type("Stella")
	d.Enter()
	d.Type("1995-08-10")
	d.Enter()
	d.Enter()
	d.Enter()

	view := d.View()
	assert.Contains(t, view, "astroplan")
	assert.Contains(t, view, "stella")
	// Leo symbol from the resumed birth date.
	assert.Contains(t, view, "♌")
}

func TestAppModel_HeaderShowsBreadcrumb(t *testing.T) {
	m := newAppModel(testApp(t))
	v := &stubView{id: ViewDayDetail, title: "Jun 12", viewText: "day"}
	model, _ := m.Update(pushViewMsg{view: v})
	m = model.(appModel)

	assert.Contains(t, m.View(), "Jun 12")
}

func TestAppModel_LogoutReturnsToLogin(t *testing.T) {
	d := teatest.Start(t, newAppModel(testApp(t)), 100, 30)
	d.Type("stella")
	d.Enter()
	d.Type("Stella")
	d.Enter()
	d.Type("1995-08-10")
	d.Enter()
	d.Enter()
	d.Enter()

	d.Tab() // calendar
	d.Tab() // profile
	require.Equal(t, screenProfile, d.Model.(appModel).screen)

	d.Press('L')
	got := d.Model.(appModel)
	assert.Equal(t, screenLoggedOut, got.screen)
	assert.Nil(t, got.state.User)
}
