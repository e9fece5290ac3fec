package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/project"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/ui"
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(ui.ColorPrimary).
		Bold(true)
	return s
}

func (m Model) renderView() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	if len(m.targets) == 0 {
		s.WriteString(lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render("  No Rust or Dioxus projects found."))
		s.WriteString("\n")
	} else {
		s.WriteString(m.table.View())
		s.WriteString("\n")
	}

	s.WriteString(m.renderFooter())
	return s.String()
}

func (m Model) renderHeader() string {
	var rust, dioxus int
	for _, t := range m.targets {
		switch t.Type {
		case project.Rust:
			rust++
		case project.Dioxus:
			dioxus++
		}
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Render("  Detected projects")
	counts := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(ui.ColorRust).Render(fmt.Sprintf("  %d Rust", rust)),
		lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  ·  "),
		lipgloss.NewStyle().Foreground(ui.ColorDioxus).Render(fmt.Sprintf("%d Dioxus", dioxus)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, counts)
}

func (m Model) renderFooter() string {
	return lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Render("  ↑/↓ move · enter print path · q quit")
}
