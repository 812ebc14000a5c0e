package cli

// screen enumerates the top-level TUI screens. Navigation between them is a
// small state machine so the guard rules live in one place instead of being
// scattered across key handlers.
type screen int

const (
	screenLoggedOut screen = iota
	screenNeedsBirthData
	screenTaskList
	screenCalendar
	screenProfile
)

func (s screen) String() string {
	switch s {
	case screenLoggedOut:
		return "login"
	case screenNeedsBirthData:
		return "birth data"
	case screenTaskList:
		return "tasks"
	case screenCalendar:
		return "calendar"
	case screenProfile:
		return "profile"
	}
	return "unknown"
}

// screenEvent is a navigation trigger fired by a view.
type screenEvent int

const (
	eventLoggedIn screenEvent = iota
	eventBirthDataSaved
	eventLoggedOut
	eventOpenTasks
	eventOpenCalendar
	eventOpenProfile
)

// nextScreen computes the screen to show after an event. Task and calendar
// screens are unreachable until birth data has been set; disallowed events
// leave the current screen unchanged.
func nextScreen(cur screen, ev screenEvent, hasBirthData bool) screen {
	switch ev {
	case eventLoggedIn:
		if cur != screenLoggedOut {
			return cur
		}
		if hasBirthData {
			return screenTaskList
		}
		return screenNeedsBirthData

	case eventBirthDataSaved:
		if cur == screenLoggedOut {
			return cur
		}
		if cur == screenProfile {
			return screenProfile
		}
		return screenTaskList

	case eventLoggedOut:
		return screenLoggedOut

	case eventOpenTasks:
		if cur == screenLoggedOut || !hasBirthData {
			return cur
		}
		return screenTaskList

	case eventOpenCalendar:
		if cur == screenLoggedOut || !hasBirthData {
			return cur
		}
		return screenCalendar

	case eventOpenProfile:
		if cur == screenLoggedOut {
			return cur
		}
		return screenProfile
	}
	return cur
}
