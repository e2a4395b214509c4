package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avkit/segcut/internal/session"
	"github.com/avkit/segcut/internal/tui/styles"
	"github.com/avkit/segcut/internal/util"
)

// View renders the segment list, per-segment marker strips, the combine
// sidebar, and a keybinding footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	listWidth := m.width - m.cfg.TUI.SidebarWidth - 2
	if listWidth < 40 {
		listWidth = 40
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	list := m.listView(listWidth)
	sidebar := m.sidebarView()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, sidebar))
	b.WriteString("\n")

	if m.globbing {
		b.WriteString(m.globInput.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		if m.statusErr {
			b.WriteString(styles.StatusError.Render(m.status))
		} else {
			b.WriteString(styles.Muted.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	name := m.host.file.Name
	if name == "" {
		name = m.path
	}
	title := styles.Title.Render("segcut") + " " + styles.Subtitle.Render(name)
	var badge string
	if m.ctrl.Mode() == session.ModePreview {
		badge = styles.ModePreview.Render("PREVIEW")
	} else {
		badge = styles.ModeSegments.Render("SEGMENTS")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge)
}

func (m Model) listView(width int) string {
	order := m.ctrl.Order()
	rows := make([]string, 0, order.Len())
	for i, seg := range order.Segments() {
		label := fmt.Sprintf("%-8s %s", seg.ID,
			util.FormatSeconds(seg.Duration()))

		flags := make([]string, 0, 3)
		if seg.Splitting {
			flags = append(flags, styles.SegmentSplitting.Render("splitting"))
		}
		if seg.Selected {
			flags = append(flags, styles.SegmentInspect.Render("inspect"))
		}
		if m.ctrl.Selection().Contains(seg.ID) {
			flags = append(flags, styles.SegmentCombine.Render("combine"))
		}
		if len(flags) > 0 {
			label += "  " + strings.Join(flags, " ")
		}

		rowStyle := styles.SegmentRow
		switch {
		case i == m.cursor:
			rowStyle = styles.SegmentRowActive
		case seg.Played:
			rowStyle = styles.SegmentPlayed
		}

		marker := "  "
		if i == m.ctrl.CurrentIndex() {
			marker = styles.Primary.Render("▶ ")
		}

		row := marker + rowStyle.Render(util.TruncateANSI(label, width-2))
		rows = append(rows, row)
		rows = append(rows, "  "+styles.Canvas.Render(m.stripView(seg.ID)))
	}
	if len(rows) == 0 {
		rows = append(rows, styles.Muted.Render("cut list is empty"))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n"))
}

// stripView renders a segment's marker strip with its playhead.
func (m Model) stripView(id string) string {
	strip, ok := m.strips[id]
	if !ok {
		return ""
	}
	col := -1
	if p, ok := m.players[id]; ok && p.Duration() > 0 {
		col = int(p.CurrentTime() / p.Duration() * float64(stripCols))
		if col >= stripCols {
			col = stripCols - 1
		}
	}
	return strip.Render(col)
}

func (m Model) sidebarView() string {
	var b strings.Builder

	b.WriteString(styles.Subtitle.Render("Combine"))
	b.WriteString("\n\n")

	if len(m.ctrl.Groups()) > 0 {
		b.WriteString(styles.CombineButton.Render(m.ctrl.CombineButtonText()))
	} else {
		b.WriteString(styles.CombineButtonOff.Render(m.ctrl.CombineButtonText()))
		b.WriteString("\n")
		b.WriteString(styles.Tooltip.Render(m.ctrl.CombineTooltip()))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Playback"))
	b.WriteString("\n\n")
	if seg := m.ctrl.Order().At(m.ctrl.CurrentIndex()); seg != nil {
		pos := 0.0
		if p, ok := m.players[seg.ID]; ok {
			pos = p.CurrentTime()
		}
		b.WriteString(fmt.Sprintf("%s  %s / %s", seg.ID,
			util.FormatSeconds(pos), util.FormatSeconds(seg.Duration())))
	} else {
		b.WriteString(styles.Muted.Render("no segment"))
	}
	b.WriteString("\n\n")

	if m.ctrl.Splitting() {
		b.WriteString(styles.SegmentSplitting.Render("split in progress"))
		b.WriteString("\n")
	}

	return styles.Sidebar.Width(m.cfg.TUI.SidebarWidth).Render(b.String())
}

func (m Model) footerView() string {
	keys := []struct{ key, desc string }{
		{"↑/↓", "move"},
		{"J/K", "reorder"},
		{"space", "combine sel"},
		{"v", "inspect"},
		{"/", "glob"},
		{"m", "marker"},
		{"x", "clear"},
		{"s", "split"},
		{"c", "combine"},
		{"p", "play"},
		{"tab", "mode"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts,
			styles.FooterKey.Render(k.key)+" "+styles.FooterText.Render(k.desc))
	}
	return strings.Join(parts, "  ")
}
