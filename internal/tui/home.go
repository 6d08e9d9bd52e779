package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/gpacalc/internal/state"
)

type homeCard struct {
	title string
	blurb string
	view  state.View
}

var homeCards = []homeCard{
	{"GPA Calculator", "Calculate your semester GPA from subjects, credits and grades", state.ViewGPA},
	{"CGPA Calculator", "Calculate your cumulative GPA across multiple semesters", state.ViewCGPA},
}

var homeFeatures = []string{
	"Add, edit, and delete subjects or semesters on the fly",
	"Your data is automatically saved locally",
	"Export your results as CSV, JSON or a text report",
}

type homeModel struct {
	store  *state.Store
	width  int
	height int
	cursor int
}

func newHomeModel(st *state.Store) homeModel {
	return homeModel{store: st}
}

func (h *homeModel) setSize(w, ht int) {
	h.width = w
	h.height = ht
}

func (h homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}
	switch {
	case key.Matches(km, keys.Left), key.Matches(km, keys.Up):
		h.cursor = clamp(h.cursor-1, 0, len(homeCards)-1)
	case key.Matches(km, keys.Right), key.Matches(km, keys.Down):
		h.cursor = clamp(h.cursor+1, 0, len(homeCards)-1)
	case key.Matches(km, keys.Enter):
		h.store.Dispatch(state.SetCurrentView{View: homeCards[h.cursor].view})
	}
	return h, nil
}

func (h homeModel) view(th theme) string {
	w := h.width - 4
	if w < 20 {
		return "Terminal too small"
	}

	title := th.titleStyle.Render("GPA & CGPA Calculator")
	sub := th.subtitleStyle.Render("Track your academic performance with credit-weighted averages")

	cardWidth := (w - 4) / 2
	if cardWidth < 24 {
		cardWidth = w
	}
	var cards []string
	for i, c := range homeCards {
		style := th.panelStyle
		heading := th.titleStyle.Render(c.title)
		if i == h.cursor {
			style = th.activePanelStyle
			heading = th.selectedItemStyle.Render(c.title)
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			heading,
			"",
			th.mutedStyle.Render(c.blurb),
			"",
			th.highlightStyle.Render(fmt.Sprintf("Get Started → (%d)", i+2)),
		)
		cards = append(cards, style.Width(cardWidth).Render(body))
	}

	var cardRow string
	if cardWidth == w {
		cardRow = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		cardRow = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	var features []string
	for _, f := range homeFeatures {
		features = append(features, th.successStyle.Render("✓ ")+th.normalItemStyle.Render(f))
	}

	nav := th.mutedStyle.Render("  ←/→: choose  enter: open  t: theme")

	return lipgloss.JoinVertical(lipgloss.Left,
		title, sub, "", cardRow, "", lipgloss.JoinVertical(lipgloss.Left, features...), "", nav,
	)
}
