package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmies/bestiary/internal/state"
)

// handleListKey processes keyboard input for the list view.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Retry):
		if m.snapshot.ListError != "" {
			return m, m.retryListCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.snapshot.Search != "" {
			m.searchInput.SetValue("")
			m.searchSeq++
			m.store.SetSearch("")
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		entries := m.snapshot.Filtered
		if m.selectedRow >= 0 && m.selectedRow < len(entries) {
			m.view = ViewDetail
			m.statBars = nil
			m.statBarsFor = 0
			m.detailViewport.GotoTop()
			return m, m.fetchDetailCmd(entries[m.selectedRow].ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		return m.moveSelection(1)

	case key.Matches(msg, m.keys.Up):
		return m.moveSelection(-1)

	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = len(m.snapshot.Filtered) - 1
		m.clampSelection()
		// Jumping to the bottom is also a reach for the next page.
		if shouldLoadMore(m.snapshot, m.selectedRow) {
			return m, m.loadMoreCmd()
		}
		return m, nil
	}

	return m, nil
}

// moveSelection moves the cursor and requests the next page when the
// selection closes in on the end of an unfiltered list.
func (m Model) moveSelection(delta int) (tea.Model, tea.Cmd) {
	m.selectedRow += delta
	m.clampSelection()
	if shouldLoadMore(m.snapshot, m.selectedRow) {
		return m, m.loadMoreCmd()
	}
	return m, nil
}

func (m *Model) clampSelection() {
	count := len(m.snapshot.Filtered)
	if count == 0 {
		m.selectedRow = 0
		m.scrollTop = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	m.scrollTop = computeScrollTop(m.selectedRow, m.scrollTop, m.listHeight())
}

// shouldLoadMore reports whether the selection position warrants
// requesting the next page. Searching suspends network pagination;
// the store guard re-checks all of this atomically.
func shouldLoadMore(snap state.Snapshot, selected int) bool {
	if snap.Search != "" || !snap.HasMore {
		return false
	}
	if snap.Loading || snap.Refreshing || snap.LoadingMore {
		return false
	}
	return selected >= len(snap.Filtered)-loadMoreThreshold
}

// computeScrollTop keeps the selection inside the visible window.
func computeScrollTop(selected, top, visible int) int {
	if visible <= 0 {
		return 0
	}
	if selected < top {
		return selected
	}
	if selected >= top+visible {
		return selected - visible + 1
	}
	return top
}

// listHeight is the number of rows available for entries.
func (m Model) listHeight() int {
	// One line above the rows is reserved for the search bar.
	h := m.contentHeight() - 1
	if h < 1 {
		return 1
	}
	return h
}

// renderList renders the list view: search bar plus entry rows.
func (m Model) renderList() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")

	snap := m.snapshot

	switch {
	case snap.Loading && len(snap.Entries) == 0:
		b.WriteString(m.placeCenter(m.spin.View() + " " + styles.MutedText.Render("Fetching catalog...")))
	case snap.ListError != "" && len(snap.Entries) == 0:
		msg := styles.DangerText.Render(snap.ListError) + "\n\n" +
			styles.MutedText.Render("Press r to retry")
		b.WriteString(m.placeCenter(msg))
	case len(snap.Filtered) == 0 && snap.Search != "":
		b.WriteString(m.placeCenter(styles.MutedText.Render(fmt.Sprintf("No entries match %q", snap.Search))))
	default:
		b.WriteString(m.renderListRows())
	}

	return b.String()
}

// renderListRows renders the visible window of entry rows.
func (m Model) renderListRows() string {
	styles := m.theme.Styles()
	entries := m.snapshot.Filtered
	visible := m.listHeight()

	var lines []string
	for i := m.scrollTop; i < len(entries) && i < m.scrollTop+visible; i++ {
		entry := entries[i]
		row := fmt.Sprintf(" #%04d  %s", entry.ID, entry.DisplayName())
		if i == m.selectedRow {
			lines = append(lines, styles.Selected.Width(m.width).Render(row))
			continue
		}
		idPart := styles.MutedText.Render(fmt.Sprintf(" #%04d", entry.ID))
		namePart := styles.Text.Render("  " + entry.DisplayName())
		lines = append(lines, idPart+namePart)
	}

	// Pad to a stable height so the footer stays put.
	for len(lines) < visible {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderSearchBar renders the search input line.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles()

	if m.searching {
		return lipgloss.NewStyle().Width(m.width).Render(m.searchInput.View())
	}
	if term := m.snapshot.Search; term != "" {
		return styles.AccentText.Render("/ "+term) +
			styles.FaintText.Render("  (esc clears)")
	}
	return styles.FaintText.Render("Press / to search")
}
