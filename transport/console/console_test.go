package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, false), out
}

func TestConsole_AskMove(t *testing.T) {
	ctx := context.Background()
	player := entity.NewHumanPlayer("Alice", entity.PlayerX)

	t.Run("Valid move", func(t *testing.T) {
		console, _ := newTestConsole("1 2\n")

		move, err := console.AskMove(ctx, player, &entity.Board{})

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
	})

	t.Run("Garbage and out of range input are asked again", func(t *testing.T) {
		// Given: a word, a single number, an off-board cell and finally a good answer
		console, out := newTestConsole("hello\n1\n3 0\n2,0\n")

		// When: a move is asked
		move, err := console.AskMove(ctx, player, &entity.Board{})

		// Then: the last answer is used and both kinds of complaints were printed
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 0}, move)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid input."))
		assert.Equal(t, 1, strings.Count(out.String(), "Invalid position."))
	})

	t.Run("End of input", func(t *testing.T) {
		console, _ := newTestConsole("")

		_, err := console.AskMove(ctx, player, &entity.Board{})

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		console, _ := newTestConsole("0 0\n")

		_, err := console.AskMove(canceled, player, &entity.Board{})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConsole_AskChoice(t *testing.T) {
	t.Run("Out of range answers are asked again", func(t *testing.T) {
		console, out := newTestConsole("0\nsix\n3\n")

		choice, err := console.askChoice("Enter your choice (1-5): ", 1, 5)

		require.NoError(t, err)
		assert.Equal(t, 3, choice)
		assert.Equal(t, 2, strings.Count(out.String(), "Please enter a number between 1 and 5"))
	})

	t.Run("End of input", func(t *testing.T) {
		console, _ := newTestConsole("0\n")

		_, err := console.askChoice("Enter your choice (1-5): ", 1, 5)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestConsole_AskNumber(t *testing.T) {
	console, _ := newTestConsole("\nabc\n7\n")

	for _, expected := range []int{5, 5, 7} {
		number, err := console.askNumber("rounds: ", 5)
		require.NoError(t, err)
		assert.Equal(t, expected, number)
	}
}

func TestConsole_ClearScreen(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		out := &bytes.Buffer{}
		New(strings.NewReader(""), out, true).header("PLAY GAME")

		assert.True(t, strings.HasPrefix(out.String(), clearSequence))
	})

	t.Run("Disabled", func(t *testing.T) {
		console, out := newTestConsole("")
		console.header("PLAY GAME")

		assert.NotContains(t, out.String(), clearSequence)
		assert.Contains(t, out.String(), "PLAY GAME")
	})
}

func TestConsole_Show(t *testing.T) {
	alice := entity.NewHumanPlayer("Alice", entity.PlayerX)
	computer := entity.NewComputerPlayer(entity.PlayerO)

	t.Run("Board", func(t *testing.T) {
		console, out := newTestConsole("")
		board := entity.Board{}
		board.Place(entity.Move{Row: 0, Col: 0}, entity.PlayerX)
		board.Place(entity.Move{Row: 2, Col: 2}, entity.PlayerO)

		console.ShowBoard(&board)

		assert.Contains(t, out.String(), "  0 1 2\n0 X| | \n  -+-+-\n1  | | \n  -+-+-\n2  | |O\n")
	})

	t.Run("Turns", func(t *testing.T) {
		console, out := newTestConsole("")

		console.ShowTurn(alice)
		console.ShowTurn(computer)

		assert.Equal(t, "Alice's turn (X).\nComputer's turn (O)...\n", out.String())
	})

	t.Run("Rejected moves", func(t *testing.T) {
		console, out := newTestConsole("")

		console.ShowMoveRejected(apperror.ErrCellOccupied)
		console.ShowMoveRejected(apperror.ErrInvalidCell)

		assert.Equal(t, "Cell already occupied. Try again.\nInvalid position. Try again.\n", out.String())
	})

	t.Run("Round and match results", func(t *testing.T) {
		// Given: a one-win match that Alice just won after a tie
		console, out := newTestConsole("")
		match := entity.NewMatch(alice, computer, 3, 1)
		match.Ties = 1
		match.Scores[0] = 1

		// When: the results are shown
		console.ShowRoundResult(match, &entity.Round{Winner: entity.PlayerX, Status: entity.StatusFinished})
		console.ShowMatchResult(match)

		// Then: the round winner, the champion and the score line are printed
		assert.Contains(t, out.String(), "Alice wins this round!\n")
		assert.Contains(t, out.String(), "Alice wins the game with 1 victories!\n")
		assert.Contains(t, out.String(), "Alice (X): 1 | Computer (O): 0 | Ties: 1\n")
		assert.Contains(t, out.String(), "Champion: Alice\n")
	})

	t.Run("Tied round", func(t *testing.T) {
		console, out := newTestConsole("")
		match := entity.NewMatch(alice, computer, 3, 2)

		console.ShowRoundResult(match, &entity.Round{Winner: entity.EmptyCell, Status: entity.StatusFinished})
		console.ShowMatchResult(match)

		assert.Contains(t, out.String(), "This round is a tie!")
		assert.Contains(t, out.String(), "The match ends in a draw.")
	})
}
