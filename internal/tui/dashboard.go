package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/user/wispmon/internal/model"
	"github.com/user/wispmon/internal/view"
)

func (m appModel) renderDashboard() string {
	var sb strings.Builder

	width := m.width
	if width < 80 {
		width = 80
	}

	// Header
	sb.WriteString(HeaderStyle.Width(width).Render("📡 WispMon Fleet Dashboard"))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderSummarySection(width))
	sb.WriteString("\n")

	sb.WriteString(m.renderFilterLine())
	sb.WriteString("\n")

	sb.WriteString(m.renderTable(width))
	sb.WriteString("\n")

	sb.WriteString(m.renderPagination())
	sb.WriteString("\n")

	if m.showDetail {
		if r, ok := m.selected(); ok {
			sb.WriteString(m.renderDetailSection(r, width))
			sb.WriteString("\n")
		}
	}

	if m.confirm != nil {
		prompt := fmt.Sprintf("%s %s? (y/n)", actionVerb(m.confirm.action), m.confirm.name)
		sb.WriteString(WarningStyle.Bold(true).Render(prompt))
		sb.WriteString("\n")
	} else if m.notice != "" {
		style := NoticeStyle
		if m.noticeErr {
			style = ErrorStyle
		}
		sb.WriteString(style.Render(m.notice))
		sb.WriteString("\n")
	}

	help := "r refresh • / location • f status • b band • c clear • 1-5 sort • ←/→ page • ↑/↓ select • enter details • R restart • x disconnect • q quit"
	sb.WriteString(HelpStyle.Render(help))

	return sb.String()
}

func (m appModel) renderSummarySection(width int) string {
	summary := m.vw.Summary()

	updated := "never"
	if !m.lastUpdated.IsZero() {
		updated = m.lastUpdated.Format("15:04:05")
	}

	refresh := ""
	if m.busy {
		refresh = "  " + m.spinner.View() + " refreshing"
	}

	content := fmt.Sprintf(
		"%s %s   %s %s   %s %s   %s %s%s",
		LabelStyle.Render("Total:"),
		ValueStyle.Render(fmt.Sprintf("%d", summary.Total)),
		LabelStyle.Render("Online:"),
		OnlineStyle.Bold(true).Render(fmt.Sprintf("%d", summary.Online)),
		LabelStyle.Render("Offline:"),
		OfflineStyle.Bold(true).Render(fmt.Sprintf("%d", summary.Offline)),
		LabelStyle.Render("Updated:"),
		ValueStyle.Render(updated),
		refresh,
	)

	sectionWidth := width - 4
	if sectionWidth < 40 {
		sectionWidth = 40
	}
	return SectionStyle.Width(sectionWidth).Render(
		SectionTitleStyle.Render("📊 Fleet Summary") + "\n" + content)
}

func (m appModel) renderFilterLine() string {
	c := m.vw.Criteria()
	s := m.vw.Sort()

	parts := []string{}
	if c.Status != "" {
		parts = append(parts, "status="+string(c.Status))
	}
	if m.searching {
		parts = append(parts, "location="+m.location.View())
	} else if c.Location != "" {
		parts = append(parts, "location="+c.Location)
	}
	if c.Band != view.BandAny {
		parts = append(parts, "band="+string(c.Band))
	}

	filters := "none"
	if len(parts) > 0 {
		filters = strings.Join(parts, "  ")
	}

	dir := "↑"
	if s.Direction == view.Descending {
		dir = "↓"
	}

	return fmt.Sprintf(" %s %s   %s %s %s   %s %s",
		LabelStyle.Render("Filters:"),
		ValueStyle.Render(filters),
		LabelStyle.Render("Sort:"),
		ValueStyle.Render(s.Field.String()),
		ValueStyle.Render(dir),
		LabelStyle.Render("Matching:"),
		ValueStyle.Render(fmt.Sprintf("%d", m.vw.FilteredLen())),
	)
}

func (m appModel) renderTable(width int) string {
	rows := m.vw.Rows()
	if len(rows) == 0 {
		return "\n " + DimStyle.Render("No routers match the current filters") + "\n"
	}

	var sb strings.Builder

	header := fmt.Sprintf(" %-22s %-9s %-12s %-14s %-18s %-12s %-8s %s",
		"Router", "Status", "Location", "Uptime", "Bandwidth", "Signal", "Clients", "Last Seen")
	sb.WriteString(TableHeaderStyle.Render(header))
	sb.WriteString("\n ")
	sb.WriteString(DimStyle.Render(strings.Repeat("─", width-2)))
	sb.WriteString("\n")

	now := time.Now()
	for i, r := range rows {
		line := m.renderRow(r, now)
		if i == m.cursor {
			sb.WriteString(SelectedRowStyle.Render("▸" + line))
		} else {
			sb.WriteString(" " + line)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m appModel) renderRow(r model.RouterRecord, now time.Time) string {
	name := r.Name
	if nr := []rune(name); len(nr) > 21 {
		name = string(nr[:18]) + "..."
	}

	status := StatusStyle(r.Status).Render(fmt.Sprintf("%-9s", r.Status))

	bar := RenderBar(r.Bandwidth.UsagePercent(), 10)
	bw := fmt.Sprintf("%s %3.0f%%", bar, r.Bandwidth.UsagePercent())

	sig := fmt.Sprintf("%s %-7s", RenderSignalBars(view.SignalBars(r.Wireless.Signal)), view.FormatSignal(r.Wireless.Signal))

	return fmt.Sprintf("%-22s %s %-12s %-14s %s %s %-8d %s",
		name,
		status,
		truncate(r.Location, 12),
		truncate(r.Uptime, 14),
		bw,
		sig,
		r.Wireless.Clients,
		DimStyle.Render(view.TimeAgo(r.LastSeen, now)),
	)
}

func (m appModel) renderPagination() string {
	p := m.vw.Pagination()
	if len(p.Links) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(" ")

	if p.HasPrev {
		sb.WriteString(PageLinkStyle.Render("‹ Prev"))
	} else {
		sb.WriteString(PageDimStyle.Render("‹ Prev"))
	}

	for _, link := range p.Links {
		if link.Gap {
			sb.WriteString(PageDimStyle.Render("…"))
			continue
		}
		if link.Number == p.Current {
			sb.WriteString(PageActiveStyle.Render(fmt.Sprintf("%d", link.Number)))
		} else {
			sb.WriteString(PageLinkStyle.Render(fmt.Sprintf("%d", link.Number)))
		}
	}

	if p.HasNext {
		sb.WriteString(PageLinkStyle.Render("Next ›"))
	} else {
		sb.WriteString(PageDimStyle.Render("Next ›"))
	}

	sb.WriteString(DimStyle.Render(fmt.Sprintf("  page %d of %d", p.Current, p.TotalPages)))

	return sb.String()
}

func (m appModel) renderDetailSection(r model.RouterRecord, width int) string {
	sectionWidth := width - 4
	if sectionWidth < 40 {
		sectionWidth = 40
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		LabelStyle.Render("ID:"), ValueStyle.Render(r.ID),
		LabelStyle.Render("SSID:"), ValueStyle.Render(r.Wireless.SSID),
		LabelStyle.Render("Version:"), ValueStyle.Render(r.System.Version),
	))
	sb.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		LabelStyle.Render("Board:"), ValueStyle.Render(r.System.BoardName),
		LabelStyle.Render("CPU:"), ValueStyle.Render(fmt.Sprintf("%.0f%%", r.System.CPULoad)),
		LabelStyle.Render("Memory:"), ValueStyle.Render(fmt.Sprintf("%.0f%%", r.System.MemoryUsed)),
	))

	if len(r.Interfaces) == 0 {
		sb.WriteString(DimStyle.Render("No interface data"))
	} else {
		sb.WriteString(fmt.Sprintf("%-10s %-10s %-10s %-10s %s\n", "Interface", "Type", "RX", "TX", "Status"))
		for _, ifc := range r.Interfaces {
			sb.WriteString(fmt.Sprintf("%-10s %-10s %-10s %-10s %s\n",
				ifc.Name, ifc.Type, ifc.RX, ifc.TX, ifc.Status))
		}
	}

	return SectionStyle.Width(sectionWidth).Render(
		SectionTitleStyle.Render("🔍 "+r.Name) + "\n" + sb.String())
}

// truncate pads or shortens s to max columns, slicing on runes so a
// multibyte name is never cut mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s + strings.Repeat(" ", max-len(r))
	}
	return string(r[:max-3]) + "..."
}
