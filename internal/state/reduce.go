package state

import (
	"slices"

	"github.com/sadopc/gpacalc/internal/gpa"
)

// Reduce applies cmd to s and returns the next state. It never fails and
// performs no validation. Pointer commands are applied like their values.
// A nil or unrecognized command returns s unchanged.
func Reduce(s State, cmd Command) State {
	switch c := deref(cmd).(type) {
	case nil:
		return s
	case AddSubject:
		s.Subjects = append(slices.Clip(s.Subjects), c.Subject)
	case UpdateSubject:
		s.Subjects = replaceByID(s.Subjects, c.Subject, func(x gpa.Subject) string { return x.ID })
	case DeleteSubject:
		s.Subjects = removeByID(s.Subjects, c.ID, func(x gpa.Subject) string { return x.ID })
	case ResetSubjects:
		s.Subjects = nil
	case AddSemester:
		s.Semesters = append(slices.Clip(s.Semesters), c.Semester)
	case UpdateSemester:
		s.Semesters = replaceByID(s.Semesters, c.Semester, func(x gpa.Semester) string { return x.ID })
	case DeleteSemester:
		s.Semesters = removeByID(s.Semesters, c.ID, func(x gpa.Semester) string { return x.ID })
	case ResetSemesters:
		s.Semesters = nil
	case ToggleDarkMode:
		s.DarkMode = !s.DarkMode
	case SetCurrentView:
		s.CurrentView = c.View
	case LoadFromStorage:
		if c.Data.Subjects != nil {
			s.Subjects = slices.Clone(*c.Data.Subjects)
		}
		if c.Data.Semesters != nil {
			s.Semesters = slices.Clone(*c.Data.Semesters)
		}
		if c.Data.DarkMode != nil {
			s.DarkMode = *c.Data.DarkMode
		}
	default:
		return s
	}
	return s
}

// deref unwraps pointer commands. A nil pointer becomes a nil command.
func deref(cmd Command) Command {
	switch c := cmd.(type) {
	case *AddSubject:
		return derefOf(c)
	case *UpdateSubject:
		return derefOf(c)
	case *DeleteSubject:
		return derefOf(c)
	case *ResetSubjects:
		return derefOf(c)
	case *AddSemester:
		return derefOf(c)
	case *UpdateSemester:
		return derefOf(c)
	case *DeleteSemester:
		return derefOf(c)
	case *ResetSemesters:
		return derefOf(c)
	case *ToggleDarkMode:
		return derefOf(c)
	case *SetCurrentView:
		return derefOf(c)
	case *LoadFromStorage:
		return derefOf(c)
	}
	return cmd
}

func derefOf[T Command](p *T) Command {
	if p == nil {
		return nil
	}
	return *p
}

// replaceByID returns items with the element matching repl's id swapped out.
// The original slice is returned as-is when nothing matches.
func replaceByID[T any](items []T, repl T, id func(T) string) []T {
	i := slices.IndexFunc(items, func(x T) bool { return id(x) == id(repl) })
	if i < 0 {
		return items
	}
	out := slices.Clone(items)
	out[i] = repl
	return out
}

func removeByID[T any](items []T, target string, id func(T) string) []T {
	if !slices.ContainsFunc(items, func(x T) bool { return id(x) == target }) {
		return items
	}
	return slices.DeleteFunc(slices.Clone(items), func(x T) bool { return id(x) == target })
}
