package usecase

import (
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// GameManager owns the single in-memory game of a session.
type GameManager struct {
	logger *slog.Logger
	game   *entity.Game
}

func NewGameManager(logger *slog.Logger, game *entity.Game) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		game:   game,
	}
}

// MakeTurn tries to place the current player's mark on cell. Rejected moves
// are ignored; the result only tells the caller whether the board changed.
func (that *GameManager) MakeTurn(cell int) bool {
	log := that.logger.With("method", "MakeTurn", "cell", cell)

	mark := that.game.Turn
	if err := that.game.MakeTurn(cell); err != nil {
		log.Debug("move rejected", "reason", rejectReason(err), "error", err)
		return false
	}

	log.Info("move accepted", "mark", mark)

	if outcome := that.game.Outcome(); outcome.IsTerminal() {
		log.Info("game finished", "outcome", outcome)
	}

	return true
}

func (that *GameManager) Restart() {
	that.game.Reset()

	that.logger.Info("game restarted", "turn", that.game.Turn)
}

func (that *GameManager) Snapshot() entity.Snapshot {
	return that.game.Snapshot()
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		return "finished"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "occupied"
	case errors.Is(err, apperror.ErrInvalidCell):
		return "out_of_range"
	default:
		return "unknown"
	}
}
