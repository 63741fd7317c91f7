package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MakeTurn - applies a move for mark and updates the round status. A rejected move leaves the round unchanged.
func MakeTurn(round *entity.Round, mark entity.Cell, move entity.Move) error {
	if round.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(round, mark, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	round.Board.Place(move, mark)
	updateRoundStatus(round, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(round *entity.Round, mark entity.Cell, move entity.Move) error {
	if !move.InRange() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if round.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if !round.Board.IsLegal(move) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateRoundStatus - checks the round status after a move.
func updateRoundStatus(round *entity.Round, mark entity.Cell) {
	switch {
	case round.Board.IsWin(mark):
		round.Winner = mark
		round.Status = entity.StatusFinished
		round.Turn = entity.EmptyCell
	case round.Board.IsFull():
		round.Winner = entity.EmptyCell
		round.Status = entity.StatusFinished
		round.Turn = entity.EmptyCell
	default:
		round.Turn = mark.Opponent()
	}
}
