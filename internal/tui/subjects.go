package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/gpacalc/internal/gpa"
	"github.com/sadopc/gpacalc/internal/state"
)

type subjectsModel struct {
	store  *state.Store
	width  int
	height int
	cursor int

	formActive bool
	form       *huh.Form
	formType   string // "add", "edit", "reset"

	// Form field pointers (survive value copies)
	formName    *string
	formCredits *string
	formGrade   *string
	formConfirm *bool

	editingID string
}

func newSubjectsModel(st *state.Store) subjectsModel {
	name, credits, grade, confirm := "", "", "", false
	return subjectsModel{
		store:       st,
		formName:    &name,
		formCredits: &credits,
		formGrade:   &grade,
		formConfirm: &confirm,
	}
}

func (m *subjectsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m subjectsModel) subjects() []gpa.Subject {
	return m.store.State().Subjects
}

func (m subjectsModel) update(msg tea.Msg) (subjectsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	subjects := m.subjects()
	switch {
	case key.Matches(km, keys.Up):
		m.cursor = clamp(m.cursor-1, 0, len(subjects)-1)
	case key.Matches(km, keys.Down):
		m.cursor = clamp(m.cursor+1, 0, len(subjects)-1)
	case key.Matches(km, keys.New):
		return m.showAddForm()
	case key.Matches(km, keys.Edit), key.Matches(km, keys.Enter):
		if len(subjects) > 0 {
			return m.showEditForm()
		}
	case key.Matches(km, keys.Delete):
		if len(subjects) > 0 {
			s := subjects[m.cursor]
			next := m.store.Dispatch(state.DeleteSubject{ID: s.ID})
			m.cursor = clamp(m.cursor, 0, len(next.Subjects)-1)
			return m, statusCmd("Deleted "+s.Name, false)
		}
	case key.Matches(km, keys.Reset):
		if len(subjects) > 0 {
			return m.showResetForm()
		}
	}
	return m, nil
}

func gradeOptions() []huh.Option[string] {
	grades := gpa.Grades()
	opts := make([]huh.Option[string], len(grades))
	for i, g := range grades {
		opts[i] = huh.NewOption(fmt.Sprintf("%-3s (%.1f)", g, gpa.PointValue(g)), g)
	}
	return opts
}

func (m subjectsModel) subjectForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Subject Name").Placeholder("e.g. Mathematics").
				Value(m.formName).Validate(gpa.ValidateName),
			huh.NewInput().Title("Credits").Placeholder("3").
				Value(m.formCredits).Validate(gpa.ValidateCredits),
			huh.NewSelect[string]().Title("Grade").Options(gradeOptions()...).Value(m.formGrade),
		),
	).WithShowHelp(true).WithShowErrors(true).WithTheme(formTheme(m.store.State().DarkMode))
}

func (m subjectsModel) showAddForm() (subjectsModel, tea.Cmd) {
	*m.formName = ""
	*m.formCredits = ""
	*m.formGrade = gpa.Grades()[0]
	m.formType = "add"
	m.editingID = ""

	m.form = m.subjectForm()
	m.formActive = true
	return m, m.form.Init()
}

func (m subjectsModel) showEditForm() (subjectsModel, tea.Cmd) {
	s := m.subjects()[m.cursor]
	*m.formName = s.Name
	*m.formCredits = fmt.Sprintf("%d", s.Credits)
	*m.formGrade = s.Grade
	m.formType = "edit"
	m.editingID = s.ID

	m.form = m.subjectForm()
	m.formActive = true
	return m, m.form.Init()
}

func (m subjectsModel) showResetForm() (subjectsModel, tea.Cmd) {
	*m.formConfirm = false
	m.formType = "reset"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove all %d subjects?", len(m.subjects()))).
				Affirmative("Reset").
				Negative("Cancel").
				Value(m.formConfirm),
		),
	).WithShowHelp(true).WithTheme(formTheme(m.store.State().DarkMode))
	m.formActive = true
	return m, m.form.Init()
}

func (m subjectsModel) updateForm(msg tea.Msg) (subjectsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.commit()
	case huh.StateAborted:
		m.formActive = false
		m.form = nil
		return m, nil
	}
	return m, cmd
}

// commit turns the finished form into a store command.
func (m subjectsModel) commit() (subjectsModel, tea.Cmd) {
	m.formActive = false
	m.form = nil

	switch m.formType {
	case "add":
		s, err := gpa.ParseSubject(gpa.NewID(), *m.formName, *m.formCredits, *m.formGrade)
		if err != nil {
			return m, statusCmd(err.Error(), true)
		}
		next := m.store.Dispatch(state.AddSubject{Subject: s})
		m.cursor = len(next.Subjects) - 1
		return m, statusCmd("Added "+s.Name, false)
	case "edit":
		s, err := gpa.ParseSubject(m.editingID, *m.formName, *m.formCredits, *m.formGrade)
		if err != nil {
			return m, statusCmd(err.Error(), true)
		}
		m.store.Dispatch(state.UpdateSubject{Subject: s})
		return m, statusCmd("Updated "+s.Name, false)
	case "reset":
		if *m.formConfirm {
			m.store.Dispatch(state.ResetSubjects{})
			m.cursor = 0
			return m, statusCmd("All subjects cleared", false)
		}
	}
	return m, nil
}

func (m subjectsModel) view(th theme) string {
	w := m.width - 4
	if w < 20 {
		return "Terminal too small"
	}

	if m.formActive && m.form != nil {
		title := th.titleStyle.Render("Add Subject")
		switch m.formType {
		case "edit":
			title = th.titleStyle.Render("Edit Subject")
		case "reset":
			title = th.titleStyle.Render("Reset Subjects")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return th.activePanelStyle.Width(w).Render(content)
	}

	if w >= 90 {
		resultsWidth := 34
		list := m.renderList(th, w-resultsWidth-1)
		results := m.renderResults(th, resultsWidth)
		return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", results)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderResults(th, w), m.renderList(th, w))
}

func (m subjectsModel) renderList(th theme, w int) string {
	title := th.titleStyle.Render("Your Subjects")
	subjects := m.subjects()

	if len(subjects) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			th.mutedStyle.Render("No subjects added yet. Press n to add one."),
		)
		return th.panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := th.mutedStyle.Render(fmt.Sprintf("  %-24s %7s %-5s %6s %8s", "Name", "Credits", "Grade", "Points", "Quality"))
	rows = append(rows, header)

	for i, s := range subjects {
		cursor := "  "
		style := th.normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = th.selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%-24s %7d %-5s %6.1f %8.2f",
			cursor, truncate(s.Name, 24), s.Credits, s.Grade, gpa.PointValue(s.Grade), s.QualityPoints()))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, th.mutedStyle.Render("  n: new  e: edit  d: delete  R: reset  x: export"))

	return th.panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (m subjectsModel) renderResults(th theme, w int) string {
	subjects := m.subjects()
	avg := gpa.GPA(subjects)
	tier := gpa.Classify(avg)

	rows := []string{
		th.titleStyle.Render("Results"),
		"",
		th.mutedStyle.Render("Current GPA"),
		th.tierStyle(tier).Inherit(th.bigNumberStyle).Render(formatAverage(avg) + " ●"),
		"",
		th.mutedStyle.Render("Total Credits"),
		th.highlightStyle.Render(fmt.Sprintf("%d", gpa.TotalCredits(subjects))),
		"",
		th.mutedStyle.Render("Total Subjects"),
		th.highlightStyle.Render(fmt.Sprintf("%d", len(subjects))),
	}

	if avg > 0 {
		msg := gpaMessages[tier]
		rows = append(rows, "",
			th.tierStyle(tier).Bold(true).Render(msg.headline),
			th.tierStyle(tier).Render(msg.detail),
		)
	}

	return th.panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
