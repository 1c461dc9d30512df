package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleSearchKey processes keyboard input while the search input is
// focused. Edits reach the store only after a quiet period; clearing
// is applied immediately.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.searchSeq++ // cancel any pending debounce
		m.store.SetSearch("")
		return m, nil

	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.searchSeq++
		m.store.SetSearch(m.searchInput.Value())
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != before {
		m.searchSeq++
		return m, tea.Batch(cmd, debounceCmd(m.searchSeq))
	}
	return m, cmd
}
