package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	title := " gesturepad ─ terminal gesture drawing pad "
	if m.selGesture != "" {
		title += "─ " + m.selGesture + " "
	}
	header := lipgloss.NewStyle().Width(lo.contentW).Render(titleStyle.Render(title))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// Canvas area
	var canvas string
	switch {
	case m.showTable:
		m.tbl.SetHeight(min(lo.canvasH-2, 20))
		box := boxStyle.Render(m.tbl.View())
		canvas = lipgloss.Place(lo.canvasW, lo.canvasH, lipgloss.Center, lipgloss.Center, box)
	case m.mode != inputNone:
		m.ta.SetWidth(lo.canvasW)
		m.ta.SetHeight(min(lo.canvasH, 12))
		canvas = lipgloss.NewStyle().Width(lo.canvasW).Height(lo.canvasH).Render(m.ta.View())
	default:
		canvas = lipgloss.NewStyle().Width(lo.canvasW).Height(lo.canvasH).Render(m.renderCanvas(lo.canvasW, lo.canvasH))
	}

	// Body row
	cols := make([]string, 0, 5)
	if m.showSidebar {
		cols = append(cols, sidebar, " ")
	}
	cols = append(cols, canvas, " ", m.previewView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	counts := dimStyle.Render(fmt.Sprintf("  points=%d  ", m.drawing.Len()))
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(counts))
	right := lipgloss.Place(spacerW+lipgloss.Width(counts), 1, lipgloss.Right, lipgloss.Center, counts)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"mouse draw",
		"Tab gestures",
		"Enter select",
		"n new",
		"s save",
		"v drawings",
		"r reflect",
		"[/] rotate",
		"p paste",
		"e export",
		"c clear",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
