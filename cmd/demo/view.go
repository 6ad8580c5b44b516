package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	prefixStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	pronStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	prefix := m.current.Prefix.String()
	if prefix == "" {
		prefix = "(word start)"
	}
	titleBar := fmt.Sprintf("%s  %s %s  %s",
		titleStyle.Render("Cohort Explorer"),
		labelStyle.Render("Prefix:"),
		prefixStyle.Render(prefix),
		helpStyle.Render("[a-z…]extend [backspace]up [ctrl+r]new lexicon [esc]quit"))

	leftBox := boxStyle.Width(42).Height(10).Render(m.renderStats())
	rightBox := boxStyle.Width(34).Height(10).Render(m.renderExtensions())
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, " ", rightBox)

	bottomBox := boxStyle.Width(78).Render(m.renderMembers())

	return titleBar + "\n" + topRow + "\n" + bottomBox + "\n"
}

func (m model) renderStats() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Cohort"))
	sb.WriteString("\n\n")

	rows := [][]string{
		{"Candidates", fmt.Sprintf("%d", m.current.Count)},
		{"Frequency mass", fmt.Sprintf("%d", m.current.Frequency)},
		{"Entropy (unweighted)", fmt.Sprintf("%.3f bits", m.current.EntropyUniform)},
		{"Entropy (weighted)", fmt.Sprintf("%.3f bits", m.current.EntropyFreq)},
		{"Surprisal (unweighted)", fmt.Sprintf("%.3f bits", m.current.SurprisalUniform)},
		{"Surprisal (weighted)", fmt.Sprintf("%.3f bits", m.current.SurprisalFreq)},
		{"Lexicon", fmt.Sprintf("%d words, %d smoothed", m.words, m.diag.NoFrequency)},
	}
	for _, row := range rows {
		sb.WriteString(labelStyle.Width(24).Render(row[0]))
		sb.WriteString(valueStyle.Render(row[1]))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) renderExtensions() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Next Phoneme"))
	sb.WriteString("\n\n")

	if len(m.next) == 0 {
		sb.WriteString(labelStyle.Render("(no continuations)"))
		return sb.String()
	}

	total := m.current.Frequency
	for i, ext := range m.next {
		if i >= 7 {
			sb.WriteString(labelStyle.Render(fmt.Sprintf("… %d more", len(m.next)-i)))
			break
		}
		sym := ext.Pronunciation[len(ext.Pronunciation)-1]
		pct := float64(ext.Frequency) / float64(total) * 100
		barLen := int(pct / 10)
		if barLen < 1 {
			barLen = 1
		}
		bar := strings.Repeat("█", barLen)
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			prefixStyle.Width(3).Render(sym),
			labelStyle.Width(11).Render(bar),
			valueStyle.Render(fmt.Sprintf("%5.1f%%", pct))))
	}
	return sb.String()
}

func (m model) renderMembers() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Cohort Members"))
	sb.WriteString(labelStyle.Render(fmt.Sprintf(" (%d candidates, by frequency)", m.current.Count)))
	sb.WriteString("\n\n")

	if len(m.current.Members) == 0 {
		sb.WriteString(labelStyle.Render("(empty cohort)"))
		return sb.String()
	}

	perLine := 5
	for i, member := range m.current.Members {
		if i >= 20 {
			sb.WriteString(labelStyle.Render(fmt.Sprintf("… %d more", len(m.current.Members)-i)))
			break
		}
		cell := fmt.Sprintf("%s %s",
			pronStyle.Render(member.Pronunciation.String()),
			labelStyle.Render(fmt.Sprintf("(%d)", member.Frequency)))
		sb.WriteString(lipgloss.NewStyle().Width(15).Render(cell))
		if (i+1)%perLine == 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
