package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

// Mark is the content of a single cell and also names whose turn it is.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

// Opponent returns the mark that moves after m.
func (m Mark) Opponent() Mark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

type Outcome string

const (
	OutcomeInProgress Outcome = "in-progress"
	OutcomeWonByX     Outcome = "won-by-X"
	OutcomeWonByO     Outcome = "won-by-O"
	OutcomeDraw       Outcome = "draw"
)

func (o Outcome) IsTerminal() bool {
	return o != OutcomeInProgress
}

const BoardSize = 9

// Board holds the cells row by row: 0-2 is the top row, 6-8 the bottom one.
type Board [BoardSize]Mark

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinningLine returns the first combo whose three cells hold the same mark.
func (that Board) WinningLine() ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return combo, true
		}
	}

	return [3]int{}, false
}

func (that Board) Winner() (Mark, bool) {
	line, ok := that.WinningLine()
	if !ok {
		return EmptyCell, false
	}

	return that[line[0]], true
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// DetermineOutcome derives the result of a board. A winner takes precedence
// over a full board.
func DetermineOutcome(board Board) Outcome {
	if winner, ok := board.Winner(); ok {
		if winner == PlayerX {
			return OutcomeWonByX
		}
		return OutcomeWonByO
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return OutcomeDraw
	}

	return OutcomeInProgress
}

type Game struct {
	Board Board
	Turn  Mark
}

func NewGame() *Game {
	return &Game{
		Turn: PlayerX,
	}
}

// MakeTurn places the current player's mark on cell and passes the turn.
// A rejected move leaves the game untouched.
func (that *Game) MakeTurn(cell int) error {
	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Board[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board[cell] = that.Turn
	that.Turn = that.Turn.Opponent()

	return nil
}

func (that *Game) Reset() {
	that.Board = Board{}
	that.Turn = PlayerX
}

func (that *Game) Outcome() Outcome {
	return DetermineOutcome(that.Board)
}

func (that *Game) IsFinished() bool {
	return that.Outcome().IsTerminal()
}

// Status is the one-line summary shown above the board.
func (that *Game) Status() string {
	switch that.Outcome() {
	case OutcomeWonByX:
		return fmt.Sprintf("Winner: %s", PlayerX)
	case OutcomeWonByO:
		return fmt.Sprintf("Winner: %s", PlayerO)
	case OutcomeDraw:
		return "Draw!"
	default:
		return fmt.Sprintf("Next player: %s", that.Turn)
	}
}
