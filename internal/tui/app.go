package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/sadopc/gpacalc/internal/export"
	"github.com/sadopc/gpacalc/internal/gpa"
	"github.com/sadopc/gpacalc/internal/state"
)

// App is the root Bubble Tea model.
type App struct {
	store     *state.Store
	exportDir string
	logger    log.Logger
	width     int
	height    int

	showHelp      bool
	exportPicking bool
	exportCursor  int

	home      homeModel
	subjects  subjectsModel
	semesters semestersModel

	help      help.Model
	status    string
	statusErr bool
}

// NewApp builds the UI around st. Reports are written to exportDir.
func NewApp(st *state.Store, exportDir string, logger log.Logger) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:     st,
		exportDir: exportDir,
		logger:    logger,
		home:      newHomeModel(st),
		subjects:  newSubjectsModel(st),
		semesters: newSemestersModel(st),
		help:      h,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) screen() screen {
	return route(a.store.State().CurrentView)
}

func (a App) theme() theme {
	return newTheme(a.store.State().DarkMode)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.home.setSize(a.width, contentHeight)
		a.subjects.setSize(a.width, contentHeight)
		a.semesters.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Theme):
			next := a.store.Dispatch(state.ToggleDarkMode{})
			a.status = "Light mode"
			if next.DarkMode {
				a.status = "Dark mode"
			}
			a.statusErr = false
			return a, nil
		case key.Matches(msg, keys.Export):
			return a.startExport()
		case key.Matches(msg, keys.Tab1):
			return a.navigate(screenHome)
		case key.Matches(msg, keys.Tab2):
			return a.navigate(screenSubjects)
		case key.Matches(msg, keys.Tab3):
			return a.navigate(screenSemesters)
		case key.Matches(msg, keys.Tab):
			return a.navigate((a.screen() + 1) % screen(len(screenViews)))
		}

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusErr = false
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) navigate(s screen) (tea.Model, tea.Cmd) {
	a.store.Dispatch(state.SetCurrentView{View: screenViews[s]})
	a.status = ""
	return a, nil
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.screen() {
	case screenHome:
		a.home, cmd = a.home.update(msg)
	case screenSubjects:
		a.subjects, cmd = a.subjects.update(msg)
	case screenSemesters:
		a.semesters, cmd = a.semesters.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.screen() {
	case screenSubjects:
		return a.subjects.formActive
	case screenSemesters:
		return a.semesters.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	th := a.theme()
	header := a.renderHeader(th)
	footer := a.renderFooter(th)

	var content string
	switch a.screen() {
	case screenHome:
		content = a.home.view(th)
	case screenSubjects:
		content = a.subjects.view(th)
	case screenSemesters:
		content = a.semesters.view(th)
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker(th)
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return th.appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, content, footer))
}

func (a App) renderHeader(th theme) string {
	var tabs []string
	current := a.screen()
	for i, name := range screenNames {
		if screen(i) == current {
			tabs = append(tabs, th.activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, th.inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(th.primary).Render("GPA Calculator")
	mode := th.mutedStyle.Render("☀ light")
	if th.dark {
		mode = th.highlightStyle.Render("☾ dark")
	}

	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - lipgloss.Width(mode) - 6
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return th.headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", tabRow, spacer, mode),
	)
}

func (a App) renderFooter(th theme) string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := th.mutedStyle
		if a.statusErr {
			style = th.errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := th.footerStyle.Render(helpView)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

// startExport opens the format picker when the current screen has records.
// The export collaborator is never called for an empty list.
func (a App) startExport() (tea.Model, tea.Cmd) {
	st := a.store.State()
	switch a.screen() {
	case screenSubjects:
		if len(st.Subjects) == 0 {
			return a, statusCmd("Add subjects before exporting", true)
		}
	case screenSemesters:
		if len(st.Semesters) == 0 {
			return a, statusCmd("Add semesters before exporting", true)
		}
	default:
		return a, statusCmd("Open a calculator to export its results", true)
	}
	a.exportPicking = true
	a.exportCursor = 0
	return a, nil
}

func (a App) renderExportPicker(th theme) string {
	title := th.titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range export.Formats() {
		cursor := "  "
		style := th.normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = th.selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f.String()))
	}
	rows = append(rows, "")
	rows = append(rows, th.mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return th.activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	formats := export.Formats()
	switch {
	case key.Matches(msg, keys.Up):
		a.exportCursor = clamp(a.exportCursor-1, 0, len(formats)-1)
	case key.Matches(msg, keys.Down):
		a.exportCursor = clamp(a.exportCursor+1, 0, len(formats)-1)
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(formats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

// doExport writes a report for the current screen. The report is built from
// a snapshot taken now, not when the command runs.
func (a App) doExport(format export.Format) tea.Cmd {
	st := a.store.State()
	var report export.Report
	switch a.screen() {
	case screenSubjects:
		report = export.SubjectsReport(st.Subjects, gpa.GPA(st.Subjects), gpa.TotalCredits(st.Subjects))
	case screenSemesters:
		report = export.SemestersReport(st.Semesters, gpa.CGPA(st.Semesters), gpa.TotalCredits(st.Semesters))
	default:
		return nil
	}

	dir, logger := a.exportDir, a.logger
	return func() tea.Msg {
		path, err := export.Write(report, format, dir)
		if err != nil {
			level.Error(logger).Log("msg", "export failed", "format", format, "err", err)
			return statusMsg{text: fmt.Sprintf("%s error: %v", format, err), isError: true}
		}
		level.Info(logger).Log("msg", "exported report", "format", format, "path", path, "records", report.Count())
		return exportDoneMsg{path: path}
	}
}
