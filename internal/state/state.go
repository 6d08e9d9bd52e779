// Package state holds the calculator's application state and the store that
// mediates every change to it.
package state

import "github.com/sadopc/gpacalc/internal/gpa"

// View names the screen the user is looking at.
type View string

const (
	ViewHome View = "home"
	ViewGPA  View = "gpa"
	ViewCGPA View = "cgpa"
)

// State is an immutable snapshot. Reduce always returns a fresh value and
// never writes into the slices of the one it was given.
type State struct {
	Subjects    []gpa.Subject
	Semesters   []gpa.Semester
	DarkMode    bool
	CurrentView View
}

// Initial is the state before hydration.
func Initial() State {
	return State{CurrentView: ViewHome}
}
