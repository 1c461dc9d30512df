package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmies/bestiary/internal/pokeapi"
)

// maxBaseStat is the scale ceiling for stat bars. 255 is the highest
// base stat value the catalog uses.
const maxBaseStat = 255

const statBarWidth = 30

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		// Leaving the screen clears the record so a later visit never
		// shows stale data.
		m.detailer.Reset()
		m.view = ViewList
		m.statBars = nil
		m.statBarsFor = 0
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		if m.snapshot.DetailError != "" {
			return m, m.retryDetailCmd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// initStatBars builds one animated bar per stat for the current
// detail record and returns the commands that start the fill
// animations.
func (m *Model) initStatBars() []tea.Cmd {
	detail := m.snapshot.Detail
	if detail == nil {
		return nil
	}
	m.statBarsFor = detail.ID
	m.statBars = make([]progress.Model, len(detail.Stats))

	var cmds []tea.Cmd
	for i, stat := range detail.Stats {
		bar := progress.New(
			progress.WithGradient(m.theme.BarStart, m.theme.BarEnd),
			progress.WithWidth(statBarWidth),
			progress.WithoutPercentage(),
		)
		m.statBars[i] = bar
		cmds = append(cmds, m.statBars[i].SetPercent(statRatio(stat.Value)))
	}
	return cmds
}

// statRatio converts a base stat value to a bar fill ratio.
func statRatio(value int) float64 {
	if value <= 0 {
		return 0
	}
	if value >= maxBaseStat {
		return 1
	}
	return float64(value) / maxBaseStat
}

// refreshDetailViewport re-renders the detail content into the
// viewport. Called whenever the record, the bars, or the window
// change.
func (m *Model) refreshDetailViewport() {
	if !m.ready || m.view != ViewDetail {
		return
	}
	m.detailViewport.SetContent(m.renderDetailContent())
}

// renderDetail renders the detail view.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	switch {
	case snap.DetailLoading:
		return m.placeCenter(m.spin.View() + " " + styles.MutedText.Render("Fetching entry..."))
	case snap.DetailError != "":
		msg := styles.DangerText.Render(snap.DetailError) + "\n\n" +
			styles.MutedText.Render("Press r to retry, esc to go back")
		return m.placeCenter(msg)
	case snap.Detail == nil:
		return m.placeCenter(styles.MutedText.Render("No entry selected"))
	}

	return m.detailViewport.View()
}

// renderDetailContent builds the scrollable detail body.
func (m Model) renderDetailContent() string {
	detail := m.snapshot.Detail
	if detail == nil {
		return ""
	}
	styles := m.theme.Styles()

	var b strings.Builder

	// Title line with type badges.
	b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("#%04d  %s", detail.ID, detail.DisplayName())))
	if len(detail.Types) > 0 {
		b.WriteString("  ")
		badges := make([]string, len(detail.Types))
		for i, typeName := range detail.Types {
			badges[i] = styles.TypeBadge(typeName).Render(strings.ToUpper(typeName))
		}
		b.WriteString(strings.Join(badges, " "))
	}
	b.WriteString("\n\n")

	// Physical attributes. The API reports decimeters and hectograms.
	b.WriteString(styles.MutedText.Render("Height  "))
	b.WriteString(styles.Text.Render(fmt.Sprintf("%.1f m", float64(detail.HeightDM)/10)))
	b.WriteString(styles.MutedText.Render("    Weight  "))
	b.WriteString(styles.Text.Render(fmt.Sprintf("%.1f kg", float64(detail.WeightHG)/10)))
	if detail.BaseExperience > 0 {
		b.WriteString(styles.MutedText.Render("    Base XP  "))
		b.WriteString(styles.Text.Render(fmt.Sprintf("%d", detail.BaseExperience)))
	}
	b.WriteString("\n\n")

	// Stats with animated bars.
	b.WriteString(styles.AccentText.Bold(true).Render("Stats"))
	b.WriteString("\n")
	for i, stat := range detail.Stats {
		label := fmt.Sprintf("%-16s", statLabel(stat.Name))
		b.WriteString(styles.MutedText.Render(label))
		if i < len(m.statBars) {
			b.WriteString(m.statBars[i].View())
		}
		b.WriteString(styles.Text.Render(fmt.Sprintf(" %3d", stat.Value)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Abilities.
	b.WriteString(styles.AccentText.Bold(true).Render("Abilities"))
	b.WriteString("\n")
	for _, ability := range detail.Abilities {
		b.WriteString(styles.Text.Render("  " + titleCaseSlug(ability.Name)))
		if ability.Hidden {
			b.WriteString(styles.FaintText.Render("  (hidden)"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Artwork: " + detail.ImageURL))

	return b.String()
}

// statLabel maps API stat slugs to short display labels.
func statLabel(name string) string {
	switch name {
	case "hp":
		return "HP"
	case "attack":
		return "Attack"
	case "defense":
		return "Defense"
	case "special-attack":
		return "Sp. Attack"
	case "special-defense":
		return "Sp. Defense"
	case "speed":
		return "Speed"
	default:
		return titleCaseSlug(name)
	}
}

// titleCaseSlug converts an API slug to display form, mirroring
// pokeapi.Entry.DisplayName for arbitrary strings.
func titleCaseSlug(s string) string {
	return pokeapi.Entry{Name: s}.DisplayName()
}
