package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type botService interface {
	ChooseMove(board *entity.Board, difficulty entity.Difficulty) (entity.Move, error)
}

type resultService interface {
	RecordMatch(ctx context.Context, match *entity.Match) error
}

// matchView - where the match is shown and human moves come from.
type matchView interface {
	AskMove(ctx context.Context, player *entity.Player, board *entity.Board) (entity.Move, error)

	ShowRoundStart(match *entity.Match)
	ShowBoard(board *entity.Board)
	ShowTurn(player *entity.Player)
	ShowMoveRejected(err error)
	ShowRoundResult(match *entity.Match, round *entity.Round)
	ShowMatchResult(match *entity.Match)
}

type MatchManager struct {
	logger *slog.Logger

	bot     botService
	results resultService
	view    matchView
}

func NewMatchManager(logger *slog.Logger, bot botService, results resultService, view matchView) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match"),

		bot:     bot,
		results: results,
		view:    view,
	}
}

// PlayMatch - plays rounds until the match is over, then records the result.
// A failure to record is logged and does not fail the match.
func (that *MatchManager) PlayMatch(ctx context.Context, match *entity.Match) error {
	log := that.logger.With("method", "PlayMatch")

	for !match.IsOver() {
		that.view.ShowRoundStart(match)
		number := match.CurrentRound

		round, err := that.playRound(ctx, match)
		if err != nil {
			return fmt.Errorf("failed to play round %d: %w", number, err)
		}

		match.RecordRound(round)
		that.view.ShowRoundResult(match, round)

		log.Info("round finished",
			"round", number,
			"winner", round.Winner.String(),
			"scores", match.Scores,
			"ties", match.Ties,
		)
	}

	that.view.ShowMatchResult(match)

	if err := that.results.RecordMatch(ctx, match); err != nil {
		log.Error("failed to record match", "error", err)
		return nil
	}

	log.Info("match recorded", "id", match.ID)

	return nil
}

func (that *MatchManager) playRound(ctx context.Context, match *entity.Match) (*entity.Round, error) {
	round := entity.NewRound()

	for !round.IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("round interrupted: %w", err)
		}

		player := match.PlayerByMark(round.Turn)

		that.view.ShowBoard(&round.Board)
		that.view.ShowTurn(player)

		if err := that.takeTurn(ctx, match, round, player); err != nil {
			return nil, err
		}
	}

	that.view.ShowBoard(&round.Board)

	return round, nil
}

func (that *MatchManager) takeTurn(ctx context.Context, match *entity.Match, round *entity.Round, player *entity.Player) error {
	if player.IsComputer() {
		move, err := that.bot.ChooseMove(&round.Board, match.Difficulty)
		if err != nil {
			return fmt.Errorf("bot failed to choose move: %w", err)
		}

		if err = tictactoe.MakeTurn(round, player.Mark, move); err != nil {
			return fmt.Errorf("bot failed to make turn: %w", err)
		}

		return nil
	}

	for {
		move, err := that.view.AskMove(ctx, player, &round.Board)
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		err = tictactoe.MakeTurn(round, player.Mark, move)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrInvalidCell):
			that.view.ShowMoveRejected(err)
		default:
			return fmt.Errorf("failed to make turn: %w", err)
		}
	}
}
