package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top status line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	parts := []string{styles.Logo.Render("BESTIARY")}

	switch m.view {
	case ViewDetail:
		parts = append(parts, styles.MutedText.Render("entry details"))
	case ViewLogs:
		parts = append(parts, styles.MutedText.Render("debug log"))
	default:
		if total := snap.Total; total > 0 {
			label := fmt.Sprintf("%d of %d", len(snap.Entries), total)
			if snap.Search != "" {
				label = fmt.Sprintf("%d matches · %s loaded", len(snap.Filtered), label)
			}
			parts = append(parts, styles.MutedText.Render(label))
		}
	}

	switch {
	case snap.Refreshing:
		parts = append(parts, m.spin.View()+styles.WarningText.Render(" refreshing"))
	case snap.LoadingMore:
		parts = append(parts, m.spin.View()+styles.MutedText.Render(" loading more"))
	}

	// A failed refresh keeps the old list on screen; surface the error
	// here instead of replacing the content.
	if snap.ListError != "" && len(snap.Entries) > 0 {
		parts = append(parts, styles.DangerText.Render(truncate(snap.ListError, 60)))
	}

	line := strings.Join(parts, "  ")
	return styles.Header.Width(m.width).Render(line)
}

// renderFooter renders the bottom hint line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var hints []string
	switch m.view {
	case ViewDetail:
		hints = []string{"esc back", "r retry", "j/k scroll", "q quit"}
	case ViewLogs:
		hints = []string{"esc back", "L reload", "q quit"}
	default:
		hints = []string{"/ search", "enter details", "R refresh", "T theme", "h help", "q quit"}
	}

	line := strings.Join(hints, "  ·  ")
	theme := styles.FaintText.Render(m.theme.Name)
	gap := m.width - lipgloss.Width(line) - lipgloss.Width(theme) - 2
	if gap < 1 {
		return styles.Footer.Width(m.width).Render(line)
	}
	return styles.Footer.Width(m.width).Render(line + strings.Repeat(" ", gap) + theme)
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
