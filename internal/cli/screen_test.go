package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextScreen_LoginRoutesOnBirthData(t *testing.T) {
	assert.Equal(t, screenNeedsBirthData, nextScreen(screenLoggedOut, eventLoggedIn, false))
	assert.Equal(t, screenTaskList, nextScreen(screenLoggedOut, eventLoggedIn, true))
}

func TestNextScreen_LoginIgnoredWhenAlreadyIn(t *testing.T) {
	assert.Equal(t, screenCalendar, nextScreen(screenCalendar, eventLoggedIn, true))
}

func TestNextScreen_BirthDataSavedOpensTasks(t *testing.T) {
	assert.Equal(t, screenTaskList, nextScreen(screenNeedsBirthData, eventBirthDataSaved, true))
}

func TestNextScreen_BirthDataSavedFromProfileStays(t *testing.T) {
	assert.Equal(t, screenProfile, nextScreen(screenProfile, eventBirthDataSaved, true))
}

func TestNextScreen_GuardsTasksAndCalendar(t *testing.T) {
	// Not logged in.
	assert.Equal(t, screenLoggedOut, nextScreen(screenLoggedOut, eventOpenTasks, false))
	assert.Equal(t, screenLoggedOut, nextScreen(screenLoggedOut, eventOpenCalendar, false))

	// Logged in without birth data.
	assert.Equal(t, screenNeedsBirthData, nextScreen(screenNeedsBirthData, eventOpenTasks, false))
	assert.Equal(t, screenProfile, nextScreen(screenProfile, eventOpenCalendar, false))

	// Birth data set.
	assert.Equal(t, screenCalendar, nextScreen(screenTaskList, eventOpenCalendar, true))
	assert.Equal(t, screenTaskList, nextScreen(screenCalendar, eventOpenTasks, true))
}

func TestNextScreen_ProfileReachableWithoutBirthData(t *testing.T) {
	assert.Equal(t, screenProfile, nextScreen(screenNeedsBirthData, eventOpenProfile, false))
	assert.Equal(t, screenLoggedOut, nextScreen(screenLoggedOut, eventOpenProfile, false))
}

func TestNextScreen_LogoutFromAnywhere(t *testing.T) {
	for _, cur := range []screen{screenNeedsBirthData, screenTaskList, screenCalendar, screenProfile} {
		assert.Equal(t, screenLoggedOut, nextScreen(cur, eventLoggedOut, true))
	}
}
