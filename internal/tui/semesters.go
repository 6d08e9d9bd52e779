package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/gpacalc/internal/gpa"
	"github.com/sadopc/gpacalc/internal/state"
)

type semestersModel struct {
	store  *state.Store
	width  int
	height int
	cursor int

	formActive bool
	form       *huh.Form
	formType   string // "add", "edit", "reset"

	formName    *string
	formGPA     *string
	formCredits *string
	formConfirm *bool

	editingID string
}

func newSemestersModel(st *state.Store) semestersModel {
	name, g, credits, confirm := "", "", "", false
	return semestersModel{
		store:       st,
		formName:    &name,
		formGPA:     &g,
		formCredits: &credits,
		formConfirm: &confirm,
	}
}

func (m *semestersModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m semestersModel) semesters() []gpa.Semester {
	return m.store.State().Semesters
}

func (m semestersModel) update(msg tea.Msg) (semestersModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	semesters := m.semesters()
	switch {
	case key.Matches(km, keys.Up):
		m.cursor = clamp(m.cursor-1, 0, len(semesters)-1)
	case key.Matches(km, keys.Down):
		m.cursor = clamp(m.cursor+1, 0, len(semesters)-1)
	case key.Matches(km, keys.New):
		return m.showAddForm()
	case key.Matches(km, keys.Edit), key.Matches(km, keys.Enter):
		if len(semesters) > 0 {
			return m.showEditForm()
		}
	case key.Matches(km, keys.Delete):
		if len(semesters) > 0 {
			s := semesters[m.cursor]
			next := m.store.Dispatch(state.DeleteSemester{ID: s.ID})
			m.cursor = clamp(m.cursor, 0, len(next.Semesters)-1)
			return m, statusCmd("Deleted "+s.Name, false)
		}
	case key.Matches(km, keys.Reset):
		if len(semesters) > 0 {
			return m.showResetForm()
		}
	}
	return m, nil
}

func (m semestersModel) semesterForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Semester Name").Placeholder("e.g. Fall 2025").
				Value(m.formName).Validate(gpa.ValidateName),
			huh.NewInput().Title("GPA").Placeholder("3.50").
				Value(m.formGPA).Validate(gpa.ValidateGPA),
			huh.NewInput().Title("Credits").Placeholder("15").
				Value(m.formCredits).Validate(gpa.ValidateCredits),
		),
	).WithShowHelp(true).WithShowErrors(true).WithTheme(formTheme(m.store.State().DarkMode))
}

func (m semestersModel) showAddForm() (semestersModel, tea.Cmd) {
	*m.formName = ""
	*m.formGPA = ""
	*m.formCredits = ""
	m.formType = "add"
	m.editingID = ""

	m.form = m.semesterForm()
	m.formActive = true
	return m, m.form.Init()
}

func (m semestersModel) showEditForm() (semestersModel, tea.Cmd) {
	s := m.semesters()[m.cursor]
	*m.formName = s.Name
	*m.formGPA = fmt.Sprintf("%.2f", s.GPA)
	*m.formCredits = fmt.Sprintf("%d", s.Credits)
	m.formType = "edit"
	m.editingID = s.ID

	m.form = m.semesterForm()
	m.formActive = true
	return m, m.form.Init()
}

func (m semestersModel) showResetForm() (semestersModel, tea.Cmd) {
	*m.formConfirm = false
	m.formType = "reset"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove all %d semesters?", len(m.semesters()))).
				Affirmative("Reset").
				Negative("Cancel").
				Value(m.formConfirm),
		),
	).WithShowHelp(true).WithTheme(formTheme(m.store.State().DarkMode))
	m.formActive = true
	return m, m.form.Init()
}

func (m semestersModel) updateForm(msg tea.Msg) (semestersModel, tea.Cmd) {
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

func (m semestersModel) commit() (semestersModel, tea.Cmd) {
	m.formActive = false
	m.form = nil

	switch m.formType {
	case "add":
		s, err := gpa.ParseSemester(gpa.NewID(), *m.formName, *m.formGPA, *m.formCredits)
		if err != nil {
			return m, statusCmd(err.Error(), true)
		}
		next := m.store.Dispatch(state.AddSemester{Semester: s})
		m.cursor = len(next.Semesters) - 1
		return m, statusCmd("Added "+s.Name, false)
	case "edit":
		s, err := gpa.ParseSemester(m.editingID, *m.formName, *m.formGPA, *m.formCredits)
		if err != nil {
			return m, statusCmd(err.Error(), true)
		}
		m.store.Dispatch(state.UpdateSemester{Semester: s})
		return m, statusCmd("Updated "+s.Name, false)
	case "reset":
		if *m.formConfirm {
			m.store.Dispatch(state.ResetSemesters{})
			m.cursor = 0
			return m, statusCmd("All semesters cleared", false)
		}
	}
	return m, nil
}

func (m semestersModel) view(th theme) string {
	w := m.width - 4
	if w < 20 {
		return "Terminal too small"
	}

	if m.formActive && m.form != nil {
		title := th.titleStyle.Render("Add Semester")
		switch m.formType {
		case "edit":
			title = th.titleStyle.Render("Edit Semester")
		case "reset":
			title = th.titleStyle.Render("Reset Semesters")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return th.activePanelStyle.Width(w).Render(content)
	}

	if w >= 90 {
		resultsWidth := 38
		left := lipgloss.JoinVertical(lipgloss.Left,
			m.renderList(th, w-resultsWidth-1),
			m.renderChart(th, w-resultsWidth-1),
		)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.renderResults(th, resultsWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderResults(th, w), m.renderList(th, w))
}

func (m semestersModel) renderList(th theme, w int) string {
	title := th.titleStyle.Render("Your Semesters")
	semesters := m.semesters()

	if len(semesters) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			th.mutedStyle.Render("No semesters added yet. Press n to add one."),
		)
		return th.panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := th.mutedStyle.Render(fmt.Sprintf("  %-24s %6s %7s %8s", "Name", "GPA", "Credits", "Quality"))
	rows = append(rows, header)

	for i, s := range semesters {
		cursor := "  "
		style := th.normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = th.selectedItemStyle
		}
		dot := th.tierStyle(gpa.Classify(s.GPA)).Render("●")
		row := style.Render(fmt.Sprintf("%s%-24s %6.2f %7d %8.2f",
			cursor, truncate(s.Name, 24), s.GPA, s.Credits, s.QualityPoints()))
		rows = append(rows, row+" "+dot)
	}

	rows = append(rows, "")
	rows = append(rows, th.mutedStyle.Render("  n: new  e: edit  d: delete  R: reset  x: export"))

	return th.panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// renderChart draws one bar per semester, coloured by tier.
func (m semestersModel) renderChart(th theme, w int) string {
	semesters := m.semesters()
	if len(semesters) == 0 {
		return ""
	}

	chartWidth := max(w-8, 20)
	chartHeight := 8
	if m.height > 36 {
		chartHeight = 12
	}

	chart := barchart.New(chartWidth, chartHeight)
	var bars []barchart.BarData
	for i, s := range semesters {
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("S%d", i+1),
			Values: []barchart.BarValue{{
				Name:  s.Name,
				Value: s.GPA,
				Style: th.tierStyle(gpa.Classify(s.GPA)),
			}},
		})
	}
	chart.PushAll(bars)
	chart.Draw()

	title := th.titleStyle.Render("GPA by Semester")
	return th.panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", chart.View()))
}

func (m semestersModel) renderResults(th theme, w int) string {
	semesters := m.semesters()
	avg := gpa.CGPA(semesters)
	tier := gpa.Classify(avg)

	rows := []string{
		th.titleStyle.Render("Results"),
		"",
		th.mutedStyle.Render("Cumulative GPA"),
		th.tierStyle(tier).Inherit(th.bigNumberStyle).Render(formatAverage(avg) + " ●"),
		"",
		th.mutedStyle.Render("Total Credits"),
		th.highlightStyle.Render(fmt.Sprintf("%d", gpa.TotalCredits(semesters))),
		"",
		th.mutedStyle.Render("Total Semesters"),
		th.highlightStyle.Render(fmt.Sprintf("%d", len(semesters))),
	}

	if len(semesters) > 0 {
		rows = append(rows, "",
			th.mutedStyle.Render("Average GPA"),
			th.highlightStyle.Render(formatAverage(gpa.AverageGPA(semesters))),
		)
	}

	if avg > 0 {
		msg := cgpaMessages[tier]
		rows = append(rows, "",
			th.tierStyle(tier).Bold(true).Render(msg.headline),
			th.tierStyle(tier).Render(msg.detail),
		)
	}

	return th.panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
