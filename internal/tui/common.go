package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/gpacalc/internal/gpa"
)

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}

// --- Helpers ---

// tierMessage is the headline and detail shown under a computed average.
type tierMessage struct {
	headline string
	detail   string
}

var gpaMessages = map[gpa.Tier]tierMessage{
	gpa.TierHigh: {"Excellent Performance!", "Keep up the great work!"},
	gpa.TierMid:  {"Good Performance", "You're doing well!"},
	gpa.TierLow:  {"Needs Improvement", "Consider focusing on improvement"},
}

var cgpaMessages = map[gpa.Tier]tierMessage{
	gpa.TierHigh: {"Outstanding Academic Performance!", "Excellent work across all semesters!"},
	gpa.TierMid:  {"Good Academic Standing", "Maintaining good academic progress"},
	gpa.TierLow:  {"Academic Improvement Needed", "Focus on improving future semester performance"},
}

func formatAverage(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
