package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var errMoveFormat = errors.New("expected row and column")

// AskMove - reads "row col" until both are numbers on the board.
func (that *Console) AskMove(ctx context.Context, _ *entity.Player, _ *entity.Board) (entity.Move, error) {
	that.printf("Enter row (0-2) and column (0-2): ")

	for {
		if err := ctx.Err(); err != nil {
			return entity.Move{}, fmt.Errorf("move input canceled: %w", err)
		}

		line, err := that.readLine()
		if err != nil {
			return entity.Move{}, err
		}

		move, err := parseMove(line)
		switch {
		case err != nil:
			that.printf("Invalid input. Enter row (0-2) and column (0-2): ")
		case !move.InRange():
			that.printf("Invalid position. Enter row (0-2) and column (0-2): ")
		default:
			return move, nil
		}
	}
}

// parseMove - accepts "1 2" and "1,2".
func parseMove(line string) (entity.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return entity.Move{}, errMoveFormat
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("invalid row: %w", err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("invalid column: %w", err)
	}

	return entity.Move{Row: row, Col: col}, nil
}

func (that *Console) ShowRoundStart(match *entity.Match) {
	that.header(fmt.Sprintf("ROUND %d/%d", match.CurrentRound, match.TotalRounds))
	that.showStats(match)
}

func (that *Console) ShowBoard(board *entity.Board) {
	that.printf("\n%s\n", board.String())
}

func (that *Console) ShowTurn(player *entity.Player) {
	if player.IsComputer() {
		that.printf("%s's turn (%s)...\n", player.Name, player.Mark)
		return
	}

	that.printf("%s's turn (%s).\n", player.Name, player.Mark)
}

func (that *Console) ShowMoveRejected(err error) {
	if errors.Is(err, apperror.ErrCellOccupied) {
		that.printf("Cell already occupied. Try again.\n")
		return
	}

	that.printf("Invalid position. Try again.\n")
}

func (that *Console) ShowRoundResult(match *entity.Match, round *entity.Round) {
	if round.IsTie() {
		that.printf("This round is a tie!\nTied game will be reset without advancing round.\n")
	} else if winner := match.PlayerByMark(round.Winner); winner != nil {
		that.printf("%s wins this round!\n", winner.Name)
	}

	if match.ReachedWinsNeeded() {
		if champion := match.Champion(); champion != nil {
			that.printf("%s wins the game with %d victories!\n", champion.Name, match.WinsNeeded)
		}
	}
}

func (that *Console) ShowMatchResult(match *entity.Match) {
	that.printf("\n%s\n%s\n%s\n", separator, centered("FINAL RESULTS"), separator)
	that.showStats(match)

	if champion := match.Champion(); champion != nil {
		that.printf("Champion: %s\n", champion.Name)
		return
	}

	that.printf("The match ends in a draw.\n")
}

func (that *Console) showStats(match *entity.Match) {
	first, second := match.Players[0], match.Players[1]
	that.printf("%s (%s): %d | %s (%s): %d | Ties: %d\n",
		first.Name, first.Mark, match.Scores[0],
		second.Name, second.Mark, match.Scores[1],
		match.Ties,
	)
}
