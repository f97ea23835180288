package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinebook-cli/booking"
)

func (m appModel) renderSeatMap() string {
	seatStyleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleBooked := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatStyleSelected := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	cellWidth := 2
	if m.showSeatNumbers {
		cellWidth = 3 // widest label is "a20"
	}

	available := 0
	booked := 0
	rows := (booking.SeatCount + seatMapColumns - 1) / seatMapColumns

	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < seatMapColumns; c++ {
			i := r*seatMapColumns + c
			if i >= booking.SeatCount {
				break
			}

			isBooked := m.mask&(1<<uint(i)) != 0
			if isBooked {
				booked++
			} else {
				available++
			}

			text := "[]"
			if isBooked {
				text = "XX"
			}
			if m.showSeatNumbers {
				text = booking.SeatLabelFromIndex(i)
			}

			rendered := padCell(text, cellWidth)
			switch {
			case i == m.cursor:
				rendered = cursorStyle.Render(rendered)
			case isBooked:
				rendered = seatStyleBooked.Render(rendered)
			case m.selected[i]:
				rendered = seatStyleSelected.Render(rendered)
			default:
				rendered = seatStyleAvailable.Render(rendered)
			}
			b.WriteString(rendered)
			if c < seatMapColumns-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	gridWidth := seatMapColumns*(cellWidth+1) - 1
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Background(lipgloss.Color("236"))

	screenBar := screenBarBlock(gridWidth, "SCREEN")
	b.WriteString("\n")
	b.WriteString(screenBorderStyle.Render(screenBar.top))
	b.WriteString("\n")
	b.WriteString(screenStyle.Render(screenBar.mid))
	b.WriteString("\n")
	b.WriteString(screenBorderStyle.Render(screenBar.bot))
	b.WriteString("\n\n")

	legend := "Legend: [] available • XX booked • selected in yellow • cursor inverted"
	if m.showSeatNumbers {
		legend = "Legend: color shows status • green available • red booked • yellow selected"
	}
	counts := fmt.Sprintf("Available: %d • Booked: %d • Selected: %d", available, booked, len(m.selected))

	out := b.String() + hint(legend) + "\n" + hint(counts)
	if m.statusMsg != "" {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
		if m.statusOK {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
		}
		out += "\n\n" + style.Render(m.statusMsg)
	}
	return out
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
