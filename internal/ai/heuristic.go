package ai

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// EasyMove - uniform random legal move. False when the board is full.
func EasyMove(board *entity.Board, source Source) (entity.Move, bool) {
	return randomMove(board.LegalMoves(), source)
}

// MediumMove - win if possible, otherwise block, then center, a random corner, a random cell.
// Speculative placements are cleared before the next check.
func MediumMove(board *entity.Board, mark entity.Cell, source Source) (entity.Move, bool) {
	legal := board.LegalMoves()
	if len(legal) == 0 {
		return entity.Move{}, false
	}

	if move, ok := winningMove(board, legal, mark); ok {
		return move, true
	}

	// a cell where the opponent would complete a line is the one to block
	if move, ok := winningMove(board, legal, mark.Opponent()); ok {
		return move, true
	}

	if board.IsLegal(entity.Center) {
		return entity.Center, true
	}

	corners := make([]entity.Move, 0, len(entity.Corners))
	for _, corner := range entity.Corners {
		if board.IsLegal(corner) {
			corners = append(corners, corner)
		}
	}

	if move, ok := randomMove(corners, source); ok {
		return move, true
	}

	return randomMove(legal, source)
}

// winningMove - first move in candidates that completes a line for mark.
func winningMove(board *entity.Board, candidates []entity.Move, mark entity.Cell) (entity.Move, bool) {
	for _, move := range candidates {
		if !board.Place(move, mark) {
			continue
		}

		won := board.IsWin(mark)
		board.Clear(move)

		if won {
			return move, true
		}
	}

	return entity.Move{}, false
}

func randomMove(moves []entity.Move, source Source) (entity.Move, bool) {
	if len(moves) == 0 {
		return entity.Move{}, false
	}

	return moves[source.Intn(len(moves))], true
}
