package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

type mockBot struct {
	mock.Mock
}

func (that *mockBot) ChooseMove(board *entity.Board, difficulty entity.Difficulty) (entity.Move, error) {
	args := that.Called(board, difficulty)
	return args.Get(0).(entity.Move), args.Error(1)
}

type mockResults struct {
	mock.Mock
}

func (that *mockResults) RecordMatch(ctx context.Context, match *entity.Match) error {
	args := that.Called(ctx, match)
	return args.Error(0)
}

// scriptedView - hands out scripted human moves and records what was shown.
type scriptedView struct {
	moves []entity.Move

	roundStarts  int
	rejected     []error
	roundResults []entity.Round
	matchShown   bool
}

func (that *scriptedView) AskMove(_ context.Context, _ *entity.Player, _ *entity.Board) (entity.Move, error) {
	if len(that.moves) == 0 {
		return entity.Move{}, apperror.ErrInputClosed
	}

	move := that.moves[0]
	that.moves = that.moves[1:]

	return move, nil
}

func (that *scriptedView) ShowRoundStart(_ *entity.Match) { that.roundStarts++ }
func (that *scriptedView) ShowBoard(_ *entity.Board)      {}
func (that *scriptedView) ShowTurn(_ *entity.Player)      {}
func (that *scriptedView) ShowMoveRejected(err error)     { that.rejected = append(that.rejected, err) }
func (that *scriptedView) ShowMatchResult(_ *entity.Match) {
	that.matchShown = true
}

func (that *scriptedView) ShowRoundResult(_ *entity.Match, round *entity.Round) {
	that.roundResults = append(that.roundResults, *round)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mv(row, col int) entity.Move {
	return entity.Move{Row: row, Col: col}
}

// topRowForX - X takes the top row while O plays the middle row.
var topRowForX = []entity.Move{mv(0, 0), mv(1, 0), mv(0, 1), mv(1, 1), mv(0, 2)}

// fullBoardTie - nine moves that fill the board without a line.
var fullBoardTie = []entity.Move{mv(0, 0), mv(1, 1), mv(2, 2), mv(0, 2), mv(2, 0), mv(1, 0), mv(1, 2), mv(2, 1), mv(0, 1)}

func humanMatch(rounds, wins int) *entity.Match {
	return entity.NewMatch(
		entity.NewHumanPlayer("Alice", entity.PlayerX),
		entity.NewHumanPlayer("Bob", entity.PlayerO),
		rounds, wins,
	)
}

func TestMatchManager_PlayMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Player vs player until wins needed", func(t *testing.T) {
		// Given: Alice wins the top row three times in a row
		var moves []entity.Move
		for i := 0; i < 3; i++ {
			moves = append(moves, topRowForX...)
		}
		view := &scriptedView{moves: moves}
		results := &mockResults{}
		match := humanMatch(5, 3)
		results.On("RecordMatch", ctx, match).Return(nil).Once()

		manager := NewMatchManager(discardLogger(), &mockBot{}, results, view)

		// When: the match is played
		err := manager.PlayMatch(ctx, match)

		// Then: Alice is champion after three rounds and the result is recorded
		require.NoError(t, err)
		assert.Equal(t, [2]int{3, 0}, match.Scores)
		assert.Equal(t, 4, match.CurrentRound)
		assert.Equal(t, 3, view.roundStarts)
		assert.True(t, view.matchShown)
		assert.Equal(t, "Alice", match.Champion().Name)
		results.AssertExpectations(t)
	})

	t.Run("Occupied and out of range cells are asked again", func(t *testing.T) {
		// Given: Bob first tries Alice's corner, then a cell off the board
		moves := []entity.Move{mv(0, 0), mv(0, 0), mv(5, 5), mv(1, 0), mv(0, 1), mv(1, 1), mv(0, 2)}
		view := &scriptedView{moves: moves}
		results := &mockResults{}
		results.On("RecordMatch", ctx, mock.Anything).Return(nil).Once()

		manager := NewMatchManager(discardLogger(), &mockBot{}, results, view)

		// When: a one-round match is played
		err := manager.PlayMatch(ctx, humanMatch(1, 1))

		// Then: both bad moves were rejected and the round still finished
		require.NoError(t, err)
		require.Len(t, view.rejected, 2)
		assert.ErrorIs(t, view.rejected[0], apperror.ErrCellOccupied)
		assert.ErrorIs(t, view.rejected[1], apperror.ErrInvalidCell)
		require.Len(t, view.roundResults, 1)
		assert.Equal(t, entity.PlayerX, view.roundResults[0].Winner)
	})

	t.Run("Tied round is replayed without advancing", func(t *testing.T) {
		// Given: the first round ends in a tie, the replay is won by Alice
		moves := append(append([]entity.Move{}, fullBoardTie...), topRowForX...)
		view := &scriptedView{moves: moves}
		results := &mockResults{}
		match := humanMatch(1, 1)
		results.On("RecordMatch", ctx, match).Return(nil).Once()

		manager := NewMatchManager(discardLogger(), &mockBot{}, results, view)

		// When: the match is played
		err := manager.PlayMatch(ctx, match)

		// Then: two rounds were played for a single counted round
		require.NoError(t, err)
		assert.Equal(t, 1, match.Ties)
		assert.Equal(t, [2]int{1, 0}, match.Scores)
		assert.Equal(t, 2, view.roundStarts)
		require.Len(t, view.roundResults, 2)
		assert.True(t, view.roundResults[0].IsTie())
	})

	t.Run("Computer moves come from the bot", func(t *testing.T) {
		// Given: a human against a computer on medium
		match := entity.NewMatch(entity.NewHumanPlayer("Alice", entity.PlayerX), entity.NewComputerPlayer(entity.PlayerO), 1, 1)
		match.Difficulty = entity.Medium

		bot := &mockBot{}
		bot.On("ChooseMove", mock.AnythingOfType("*entity.Board"), entity.Medium).Return(mv(1, 0), nil).Once()
		bot.On("ChooseMove", mock.AnythingOfType("*entity.Board"), entity.Medium).Return(mv(1, 1), nil).Once()

		view := &scriptedView{moves: []entity.Move{mv(0, 0), mv(0, 1), mv(0, 2)}}
		results := &mockResults{}
		results.On("RecordMatch", ctx, match).Return(nil).Once()

		manager := NewMatchManager(discardLogger(), bot, results, view)

		// When: the match is played
		err := manager.PlayMatch(ctx, match)

		// Then: the bot was asked twice and Alice won
		require.NoError(t, err)
		bot.AssertExpectations(t)
		assert.Equal(t, [2]int{1, 0}, match.Scores)
	})

	t.Run("Bot without moves aborts the match", func(t *testing.T) {
		match := entity.NewMatch(entity.NewHumanPlayer("Alice", entity.PlayerX), entity.NewComputerPlayer(entity.PlayerO), 1, 1)
		match.Difficulty = entity.Hard

		bot := &mockBot{}
		bot.On("ChooseMove", mock.Anything, entity.Hard).Return(entity.Move{}, apperror.ErrNoAvailableMoves).Once()

		results := &mockResults{}
		manager := NewMatchManager(discardLogger(), bot, results, &scriptedView{moves: []entity.Move{mv(0, 0)}})

		err := manager.PlayMatch(ctx, match)

		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
		results.AssertNotCalled(t, "RecordMatch", mock.Anything, mock.Anything)
	})

	t.Run("Closed input stops the match", func(t *testing.T) {
		results := &mockResults{}
		manager := NewMatchManager(discardLogger(), &mockBot{}, results, &scriptedView{})

		err := manager.PlayMatch(ctx, humanMatch(1, 1))

		require.ErrorIs(t, err, apperror.ErrInputClosed)
		results.AssertNotCalled(t, "RecordMatch", mock.Anything, mock.Anything)
	})

	t.Run("Record failure does not fail the match", func(t *testing.T) {
		results := &mockResults{}
		results.On("RecordMatch", ctx, mock.Anything).Return(errRedisDown).Once()

		manager := NewMatchManager(discardLogger(), &mockBot{}, results, &scriptedView{moves: topRowForX})

		err := manager.PlayMatch(ctx, humanMatch(1, 1))

		require.NoError(t, err)
		results.AssertExpectations(t)
	})

	t.Run("Canceled context interrupts the round", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		manager := NewMatchManager(discardLogger(), &mockBot{}, &mockResults{}, &scriptedView{moves: topRowForX})

		err := manager.PlayMatch(canceled, humanMatch(1, 1))

		require.ErrorIs(t, err, context.Canceled)
	})
}
