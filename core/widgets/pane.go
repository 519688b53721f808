package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Trigger renders a popover trigger as a menu-bar cell. The expansion marker
// tracks the popover phase; focus and disabled states recolor the cell.
type Trigger struct {
	Label    string
	Focused  bool
	Expanded bool
	Disabled bool
}

func (t Trigger) Render() string {
	marker := "▸"
	if t.Expanded {
		marker = "▾"
	}
	fg := lipgloss.Color("#cdd6f4")
	if t.Disabled {
		fg = lipgloss.Color("#6c7086")
	}
	style := lipgloss.NewStyle().Foreground(fg).Padding(0, 1)
	if t.Focused {
		style = style.Bold(true).Foreground(lipgloss.Color("#a6e3a1"))
	}
	return style.Render(t.Label + " " + marker)
}

// Width returns the rendered cell width, which hosts use to lay out hit
// regions and anchor panels under their triggers.
func (t Trigger) Width() int {
	return ansi.StringWidth(t.Render())
}

// PanelCard renders a popover panel's content as a column of items, with the
// focused item marked the way focused panes are elsewhere in the UI.
type PanelCard struct {
	Title      string
	Items      []string
	FocusedIdx int // -1 when no item holds focus
}

func (p PanelCard) Render() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)

	rows := make([]string, 0, len(p.Items)+1)
	if strings.TrimSpace(p.Title) != "" {
		rows = append(rows, titleStyle.Render(p.Title))
	}
	for i, item := range p.Items {
		prefix := "  "
		style := itemStyle
		if i == p.FocusedIdx {
			prefix = "● "
			style = focusStyle
		}
		rows = append(rows, prefix+style.Render(item))
	}
	return strings.Join(rows, "\n")
}
