package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	clearSequence = "\033[H\033[2J"
	separator     = "======================================"
)

// Console - line oriented terminal. Reads answers from in and writes everything to out.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer

	clearScreen bool
}

func New(in io.Reader, out io.Writer, clearScreen bool) *Console {
	return &Console{
		scanner:     bufio.NewScanner(in),
		out:         out,
		clearScreen: clearScreen,
	}
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Console) clear() {
	if that.clearScreen {
		that.printf(clearSequence)
	}
}

// header - clears the screen and prints a framed title.
func (that *Console) header(title string) {
	that.clear()
	that.printf("%s\n%s\n%s\n", separator, centered(title), separator)
}

// readLine - next trimmed line of input. End of input is reported as apperror.ErrInputClosed.
func (that *Console) readLine() (string, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", apperror.ErrInputClosed
	}

	return strings.TrimSpace(that.scanner.Text()), nil
}

func (that *Console) prompt(text string) (string, error) {
	that.printf("%s", text)
	return that.readLine()
}

// askChoice - asks until the answer is a number in [low, high].
func (that *Console) askChoice(text string, low, high int) (int, error) {
	that.printf("%s", text)

	for {
		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		if err == nil && choice >= low && choice <= high {
			return choice, nil
		}

		that.printf("Invalid input. Please enter a number between %d and %d: ", low, high)
	}
}

// askNumber - blank or non-numeric answers keep the default.
func (that *Console) askNumber(text string, def int) (int, error) {
	line, err := that.prompt(text)
	if err != nil {
		return 0, err
	}

	number, err := strconv.Atoi(line)
	if err != nil {
		return def, nil
	}

	return number, nil
}

func (that *Console) askYesNo(text string) (bool, error) {
	line, err := that.prompt(text)
	if err != nil {
		return false, err
	}

	return strings.HasPrefix(strings.ToLower(line), "y"), nil
}

func (that *Console) waitForEnter() error {
	_, err := that.prompt("Press Enter to continue...")
	return err
}

func centered(title string) string {
	pad := (len(separator) - len(title)) / 2
	if pad <= 0 {
		return title
	}

	return strings.Repeat(" ", pad) + title
}
