package tui

import "github.com/sadopc/gpacalc/internal/state"

// screen is a top-level view of the app.
type screen int

const (
	screenHome screen = iota
	screenSubjects
	screenSemesters
)

var screenNames = []string{"Home", "GPA Calculator", "CGPA Calculator"}

var screenViews = []state.View{state.ViewHome, state.ViewGPA, state.ViewCGPA}

// route picks the screen for a view. Unknown views fall back to home.
func route(v state.View) screen {
	switch v {
	case state.ViewGPA:
		return screenSubjects
	case state.ViewCGPA:
		return screenSemesters
	default:
		return screenHome
	}
}
