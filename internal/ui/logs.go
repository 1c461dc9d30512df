package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmies/bestiary/internal/logtail"
)

// handleLogsKey processes keyboard input for the debug log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.view = ViewList
		return m, nil
	case key.Matches(msg, m.keys.ViewLogs):
		return m, m.readLogCmd()
	}
	return m, nil
}

// renderLogs renders the tail of the application's own log file.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	if len(m.logLines) == 0 {
		return m.placeCenter(styles.MutedText.Render("Log is empty"))
	}

	visible := m.contentHeight()
	start := len(m.logLines) - visible
	if start < 0 {
		start = 0
	}

	var lines []string
	for _, line := range m.logLines[start:] {
		switch logtail.LevelOf(line) {
		case "ERR":
			lines = append(lines, styles.DangerText.Render(truncate(line, m.width)))
		case "WRN":
			lines = append(lines, styles.WarningText.Render(truncate(line, m.width)))
		default:
			lines = append(lines, styles.MutedText.Render(truncate(line, m.width)))
		}
	}
	for len(lines) < visible {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
