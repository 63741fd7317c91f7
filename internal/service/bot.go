package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/ai"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type BotService interface {
	Mark() entity.Cell
	ChooseMove(board *entity.Board, difficulty entity.Difficulty) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger

	mark   entity.Cell
	source ai.Source
}

// NewBotService - bot playing mark, drawing Easy and Medium randomness from source.
func NewBotService(logger *slog.Logger, mark entity.Cell, source ai.Source) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		mark:   mark,
		source: source,
	}
}

func (that *botService) Mark() entity.Cell {
	return that.mark
}

// ChooseMove - picks a move for the bot's mark. The board is left as it was; the caller applies the move.
func (that *botService) ChooseMove(board *entity.Board, difficulty entity.Difficulty) (entity.Move, error) {
	var (
		move  entity.Move
		found bool
	)

	switch difficulty {
	case entity.Easy:
		move, found = ai.EasyMove(board, that.source)
	case entity.Medium:
		move, found = ai.MediumMove(board, that.mark, that.source)
	case entity.Hard:
		result := ai.BestMove(board, that.mark)
		move, found = result.Move, result.Found
	default:
		return entity.Move{}, fmt.Errorf("%w: %d", apperror.ErrUnknownDifficulty, int(difficulty))
	}

	if !found {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	that.logger.Debug("bot chose move",
		"difficulty", difficulty.String(),
		"mark", that.mark.String(),
		"row", move.Row,
		"col", move.Col,
	)

	return move, nil
}
