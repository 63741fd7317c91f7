package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	leaderboardLimit   = 10
	recentMatchesLimit = 5
)

type matchPlayer interface {
	PlayMatch(ctx context.Context, match *entity.Match) error
}

type resultReader interface {
	RecentMatches(ctx context.Context, limit int) ([]*entity.Match, error)
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

// Defaults - answers used when the player leaves a question blank.
type Defaults struct {
	Rounds     int
	WinsNeeded int
	Difficulty entity.Difficulty
}

type menuHandler func(ctx context.Context) (exit bool, err error)

type Menu struct {
	*Console
	logger *slog.Logger

	matches  matchPlayer
	results  resultReader
	defaults Defaults

	handlers map[int]menuHandler
}

func NewMenu(logger *slog.Logger, console *Console, matches matchPlayer, results resultReader, defaults Defaults) *Menu {
	menu := &Menu{
		Console: console,
		logger:  logger.With("component", "console"),

		matches:  matches,
		results:  results,
		defaults: defaults,

		handlers: make(map[int]menuHandler),
	}

	menu.handlers[1] = menu.handlePlayGame
	menu.handlers[2] = menu.handleHowToPlay
	menu.handlers[3] = menu.handleLeaderboard
	menu.handlers[4] = menu.handleDevelopers
	menu.handlers[5] = menu.handleExit

	return menu
}

// Run - shows the main menu until the player exits. End of input surfaces as apperror.ErrInputClosed.
func (that *Menu) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("menu canceled: %w", err)
		}

		that.header("TIC TAC TOE GAME")
		that.printf("1. Play Game\n2. How to Play\n3. Leaderboard\n4. Developers\n5. Exit\n%s\n", separator)

		choice, err := that.askChoice("Enter your choice (1-5): ", 1, len(that.handlers))
		if err != nil {
			return err
		}

		log.Debug("menu choice", "choice", choice)

		exit, err := that.handlers[choice](ctx)
		if err != nil {
			return err
		}

		if exit {
			return nil
		}
	}
}

func (that *Menu) handlePlayGame(ctx context.Context) (bool, error) {
	for {
		match, err := that.setupMatch()
		if err != nil {
			return false, err
		}

		if err = that.matches.PlayMatch(ctx, match); err != nil {
			return false, fmt.Errorf("failed to play match: %w", err)
		}

		again, err := that.askYesNo("Do you want to play again? (y/n): ")
		if err != nil || !again {
			return false, err
		}
	}
}

// setupMatch - asks for mode, names, difficulty, rounds and wins needed.
func (that *Menu) setupMatch() (*entity.Match, error) {
	that.header("PLAY GAME")
	that.printf("Choose game mode:\n1. Player vs Player\n2. Player vs Computer\n")

	mode, err := that.askChoice("Enter your choice (1-2): ", 1, 2)
	if err != nil {
		return nil, err
	}

	firstName, err := that.askName("Enter Player 1 name: ", "Player 1")
	if err != nil {
		return nil, err
	}

	first := entity.NewHumanPlayer(firstName, entity.PlayerX)

	var (
		second     *entity.Player
		difficulty entity.Difficulty
	)

	if mode == 2 {
		second = entity.NewComputerPlayer(entity.PlayerO)

		if difficulty, err = that.askDifficulty(); err != nil {
			return nil, err
		}
	} else {
		secondName, nameErr := that.askName("Enter Player 2 name: ", "Player 2")
		if nameErr != nil {
			return nil, nameErr
		}

		second = entity.NewHumanPlayer(secondName, entity.PlayerO)
	}

	rounds, err := that.askNumber(fmt.Sprintf("Enter number of rounds (default is %d): ", that.defaults.Rounds), that.defaults.Rounds)
	if err != nil {
		return nil, err
	}

	wins, err := that.askNumber(fmt.Sprintf("Enter number of wins needed to win the game (default is %d): ", that.defaults.WinsNeeded), that.defaults.WinsNeeded)
	if err != nil {
		return nil, err
	}

	if rounds < 1 {
		rounds = that.defaults.Rounds
	}

	if wins < 1 {
		wins = that.defaults.WinsNeeded
	}

	match := entity.NewMatch(first, second, rounds, wins)
	match.Difficulty = difficulty

	return match, nil
}

func (that *Menu) askName(text, fallback string) (string, error) {
	name, err := that.prompt(text)
	if err != nil {
		return "", err
	}

	if name == "" {
		return fallback, nil
	}

	return name, nil
}

// askDifficulty - accepts a number or a name, blank keeps the default.
func (that *Menu) askDifficulty() (entity.Difficulty, error) {
	that.printf("Choose difficulty level:\n1. Easy\n2. Medium\n3. Hard\n")
	that.printf("Enter your choice (1-3, default %s): ", that.defaults.Difficulty)

	for {
		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		if line == "" {
			return that.defaults.Difficulty, nil
		}

		difficulty, err := entity.ParseDifficulty(line)
		if err == nil {
			return difficulty, nil
		}

		if !errors.Is(err, apperror.ErrUnknownDifficulty) {
			return 0, err
		}

		that.printf("Invalid input. Please enter a number between 1 and 3: ")
	}
}

func (that *Menu) handleHowToPlay(_ context.Context) (bool, error) {
	that.header("HOW TO PLAY")
	that.printf(`Game Rules:
1. The game is played on a 3x3 grid.
2. Players take turns placing their symbol (X or O) in empty cells.
3. The first player to get 3 of their symbols in a row (horizontally,
   vertically, or diagonally) wins the round.
4. If all cells are filled and no player has won, the round is a tie.

Game Features:
- Two game modes: Player vs Player or Player vs Computer
- Three difficulty levels for computer opponent
- Customizable number of rounds
- Customizable win condition (how many rounds to win)
- Tied rounds do not count and will be replayed

Moves are entered as row and column, for example "1 2".

`)

	return false, that.waitForEnter()
}

func (that *Menu) handleLeaderboard(ctx context.Context) (bool, error) {
	log := that.logger.With("method", "handleLeaderboard")

	that.header("LEADERBOARD")

	entries, err := that.results.Leaderboard(ctx, leaderboardLimit)
	if err != nil {
		log.Error("failed to load leaderboard", "error", err)
		that.printf("Leaderboard is not available right now.\n\n")

		return false, that.waitForEnter()
	}

	if len(entries) == 0 {
		that.printf("No matches have been won yet.\n")
	}

	for i, entry := range entries {
		that.printf("%2d. %-20s %d\n", i+1, entry.Name, entry.Wins)
	}

	matches, err := that.results.RecentMatches(ctx, recentMatchesLimit)
	if err != nil {
		log.Error("failed to load recent matches", "error", err)
	}

	if len(matches) > 0 {
		that.printf("\nRecent matches:\n")
	}

	for _, match := range matches {
		first, second := match.Players[0], match.Players[1]
		that.printf("%s %s %d - %d %s\n",
			match.FinishedAt.Local().Format("2006-01-02 15:04"),
			first.Name, match.Scores[0], match.Scores[1], second.Name,
		)
	}

	that.printf("\n")

	return false, that.waitForEnter()
}

func (that *Menu) handleDevelopers(_ context.Context) (bool, error) {
	that.header("DEVELOPERS")
	that.printf("Name: Allain\nMotto: \"Balo ani bai\"\nStatus: It's complicated UwU\n\n")

	return false, that.waitForEnter()
}

func (that *Menu) handleExit(_ context.Context) (bool, error) {
	that.header("GOODBYE!")
	that.printf("Thank you for playing Tic Tac Toe!\n")

	return that.askYesNo("Are you sure you want to exit? (y/n): ")
}
