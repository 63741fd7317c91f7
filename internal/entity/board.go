package entity

import "strings"

const BoardSize = 3

// Cell - state of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerX
	PlayerO
)

// Opponent - returns the other player's mark. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// Move - a (row, column) pair on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Index - row-major index of the move, 0..8.
func (that Move) Index() int {
	return that.Row*BoardSize + that.Col
}

var (
	Center  = Move{Row: 1, Col: 1}
	Corners = [4]Move{{0, 0}, {0, 2}, {2, 0}, {2, 2}}

	WinLines = [8][3]Move{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
)

// Board - 3x3 grid, indexed [row][col].
type Board [BoardSize][BoardSize]Cell

func (that *Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

// IsLegal - the move is on the board and the cell is empty.
func (that *Board) IsLegal(move Move) bool {
	return move.InRange() && that.At(move) == EmptyCell
}

// Place - puts mark on the cell. Returns false and leaves the board untouched
// if the cell is occupied or out of range.
func (that *Board) Place(move Move, mark Cell) bool {
	if !that.IsLegal(move) {
		return false
	}

	that[move.Row][move.Col] = mark

	return true
}

// Clear - empties the cell, undoing a placement.
func (that *Board) Clear(move Move) {
	if move.InRange() {
		that[move.Row][move.Col] = EmptyCell
	}
}

func (that *Board) IsWin(mark Cell) bool {
	for _, line := range WinLines {
		if that.At(line[0]) == mark && that.At(line[1]) == mark && that.At(line[2]) == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Winner - mark that holds a full line, EmptyCell if nobody does.
func (that *Board) Winner() Cell {
	switch {
	case that.IsWin(PlayerX):
		return PlayerX
	case that.IsWin(PlayerO):
		return PlayerO
	default:
		return EmptyCell
	}
}

// LegalMoves - empty cells in row-major order.
func (that *Board) LegalMoves() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that[row][col] == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Board) Count(mark Cell) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

func (that *Board) String() string {
	var sb strings.Builder

	sb.WriteString("  0 1 2\n")
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte('0' + row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(that[row][col].String())
			if col < BoardSize-1 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
		if row < BoardSize-1 {
			sb.WriteString("  -+-+-\n")
		}
	}

	return sb.String()
}
