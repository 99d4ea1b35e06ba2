package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/billcraft/billcraft/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Width(44)

	labelStyle = lipgloss.NewStyle().Foreground(dim)
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(success)
	faintStyle = lipgloss.NewStyle().Foreground(faint)

	separatorLine = faintStyle.Render(strings.Repeat("─", 32))
)

// Text returns the plain two-line invoice summary. The file store writes
// exactly this text, so persisted content round-trips with rendering.
func Text(inv domain.Invoice) string {
	return inv.Summary()
}

// Invoice renders a styled invoice box for the terminal.
func Invoice(inv domain.Invoice) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("billcraft"))
	b.WriteString("\n\n")
	b.WriteString(row("Invoice for", valueStyle.Render(inv.Customer)))
	b.WriteString(row("Amount due", valueStyle.Render(domain.FormatAmount(inv.Amount))))
	return boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

// Receipt renders the outcome of a processed invoice: base amount, tax and
// the notified total.
func Receipt(r domain.Receipt) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("billcraft"))
	b.WriteString("\n\n")
	b.WriteString(row("Customer", valueStyle.Render(r.Invoice.Customer)))
	b.WriteString(row("Amount", valueStyle.Render(domain.FormatAmount(r.Invoice.Amount))))
	b.WriteString(row("Tax", valueStyle.Render(domain.FormatAmount(r.Tax))))
	b.WriteString(separatorLine)
	b.WriteString("\n")
	b.WriteString(row("Total", totalStyle.Render(domain.FormatAmount(r.Total))))
	return boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func row(label, value string) string {
	return fmt.Sprintf("%s  %s\n", labelStyle.Render(label+":"), value)
}
