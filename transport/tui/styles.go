package tui

import "github.com/charmbracelet/lipgloss"

// Cell geometry in terminal cells. Borders add one column/row on each side.
const (
	cellInnerWidth  = 7
	cellInnerHeight = 3
	cellWidth       = cellInnerWidth + 2
	cellHeight      = cellInnerHeight + 2

	// status line plus one blank line
	boardTop = 2
	// blank line between the grid and the restart control
	restartTop = boardTop + 3*cellHeight + 1
)

var (
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3a50cb")).
			Background(lipgloss.Color("#b5d4f8")).
			Bold(true).
			Padding(0, 2)

	WinnerStatusStyle = StatusStyle.
				Foreground(lipgloss.Color("#BC4EB3")).
				Background(lipgloss.Color("#FDB8F7"))

	CellStyle = lipgloss.NewStyle().
			Width(cellInnerWidth).
			Height(cellInnerHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("#3a50cb")).
			Background(lipgloss.Color("#F9EEFF")).
			Bold(true).
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#EAC4FF"))

	CursorCellStyle = CellStyle.
			Background(lipgloss.Color("#B588E9")).
			BorderForeground(lipgloss.Color("#B588E9"))

	WinningCellStyle = CellStyle.
				Foreground(lipgloss.Color("#BC4EB3")).
				Background(lipgloss.Color("#FDB8F7")).
				BorderForeground(lipgloss.Color("#BC4EB3"))

	RestartStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3a50cb")).
			Background(lipgloss.Color("#b5d4f8")).
			Bold(true).
			Padding(0, 1)
)
