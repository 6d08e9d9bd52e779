package state

import "github.com/sadopc/gpacalc/internal/gpa"

// Command is a change request for the store. The set is closed: only the
// types in this file implement it.
type Command interface {
	command()
}

type AddSubject struct{ Subject gpa.Subject }

// UpdateSubject replaces the subject with the same ID.
type UpdateSubject struct{ Subject gpa.Subject }

type DeleteSubject struct{ ID string }

type ResetSubjects struct{}

type AddSemester struct{ Semester gpa.Semester }

// UpdateSemester replaces the semester with the same ID.
type UpdateSemester struct{ Semester gpa.Semester }

type DeleteSemester struct{ ID string }

type ResetSemesters struct{}

type ToggleDarkMode struct{}

type SetCurrentView struct{ View View }

// LoadFromStorage overwrites only the fields that are non-nil.
type LoadFromStorage struct{ Data Partial }

// Partial is a persisted state in which any field may be missing.
type Partial struct {
	Subjects  *[]gpa.Subject  `json:"subjects"`
	Semesters *[]gpa.Semester `json:"semesters"`
	DarkMode  *bool           `json:"darkMode"`
}

func (AddSubject) command()      {}
func (UpdateSubject) command()   {}
func (DeleteSubject) command()   {}
func (ResetSubjects) command()   {}
func (AddSemester) command()     {}
func (UpdateSemester) command()  {}
func (DeleteSemester) command()  {}
func (ResetSemesters) command()  {}
func (ToggleDarkMode) command()  {}
func (SetCurrentView) command()  {}
func (LoadFromStorage) command() {}
