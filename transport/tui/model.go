package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	boardSide    = 3
	restartLabel = "⟳ restart"
)

type gameUseCase interface {
	MakeTurn(cell int) bool
	Restart()
	Snapshot() entity.Snapshot
}

// Model renders the board and turns keys and clicks into moves.
type Model struct {
	logger *slog.Logger
	game   gameUseCase

	keys keyMap
	help help.Model

	cursor   int
	mouse    bool
	quitting bool

	// terminal rows, 0 until the first WindowSizeMsg
	height int
}

// New creates the view. When mouse is false, mouse events are ignored.
func New(logger *slog.Logger, game gameUseCase, mouse bool) *Model {
	return &Model{
		logger: logger.With("component", "tui"),
		game:   game,
		keys:   newKeyMap(),
		help:   help.New(),
		cursor: entity.BoardSize / 2,
		mouse:  mouse,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("quit requested")
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor >= boardSide {
			m.cursor -= boardSide
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < entity.BoardSize-boardSide {
			m.cursor += boardSide
		}

	case key.Matches(msg, m.keys.Left):
		if m.cursor%boardSide > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor%boardSide < boardSide-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Place):
		m.game.MakeTurn(m.cursor)

	case key.Matches(msg, m.keys.Cell):
		m.cursor = int(msg.String()[0] - '1')
		m.game.MakeTurn(m.cursor)

	case key.Matches(msg, m.keys.Restart):
		m.game.Restart()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.mouse || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}

	y := msg.Y + m.hiddenLines()

	if cell, ok := cellAt(msg.X, y); ok {
		m.cursor = cell
		m.game.MakeTurn(cell)
		return
	}

	if y == restartTop && msg.X >= 0 && msg.X < lipgloss.Width(RestartStyle.Render(restartLabel)) {
		m.game.Restart()
	}
}

// hiddenLines is the number of view lines above the top of the screen. The
// renderer keeps only the last height lines of a view taller than the terminal.
func (m *Model) hiddenLines() int {
	if m.height <= 0 {
		return 0
	}

	return max(0, lipgloss.Height(m.View())-m.height)
}

// cellAt maps a screen position onto a board cell.
func cellAt(x, y int) (int, bool) {
	if x < 0 || y < boardTop {
		return 0, false
	}

	col, row := x/cellWidth, (y-boardTop)/cellHeight
	if col >= boardSide || row >= boardSide {
		return 0, false
	}

	return row*boardSide + col, true
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snapshot := m.game.Snapshot()

	status := StatusStyle
	if snapshot.Winner != entity.EmptyCell {
		status = WinnerStatusStyle
	}

	var b strings.Builder

	b.WriteString(status.Render(snapshot.Status))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard(snapshot))
	b.WriteString("\n\n")
	b.WriteString(RestartStyle.Render(restartLabel))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) renderBoard(snapshot entity.Snapshot) string {
	rows := make([]string, 0, boardSide)

	for row := 0; row < boardSide; row++ {
		cells := make([]string, 0, boardSide)

		for col := 0; col < boardSide; col++ {
			cell := row*boardSide + col
			cells = append(cells, m.cellStyle(snapshot, cell).Render(string(snapshot.Board[cell])))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) cellStyle(snapshot entity.Snapshot, cell int) lipgloss.Style {
	switch {
	case snapshot.InWinningLine(cell):
		return WinningCellStyle
	case cell == m.cursor && !snapshot.Outcome.IsTerminal():
		return CursorCellStyle
	default:
		return CellStyle
	}
}
