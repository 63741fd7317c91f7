package ai

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

const (
	// scoreBound sits outside the reachable score range [-10, 10].
	scoreBound = 1000
	winScore   = 10
)

// SearchResult - best root move and its minimax score. Found is false only when the board has no legal moves.
type SearchResult struct {
	Move  entity.Move
	Score int
	Found bool
}

// Searcher - exhaustive minimax over the game tree. Not safe for concurrent use.
type Searcher struct {
	pruning bool
	nodes   int
}

func NewSearcher(pruning bool) *Searcher {
	return &Searcher{pruning: pruning}
}

// BestMove - optimal move for maximizer using alpha-beta search.
func BestMove(board *entity.Board, maximizer entity.Cell) SearchResult {
	return NewSearcher(true).BestMove(board, maximizer)
}

// Nodes - positions evaluated by the last BestMove call.
func (that *Searcher) Nodes() int {
	return that.nodes
}

// BestMove - tries root candidates in row-major order and keeps the first one with the highest score.
// The board is mutated during the search and restored before return.
func (that *Searcher) BestMove(board *entity.Board, maximizer entity.Cell) SearchResult {
	that.nodes = 0

	result := SearchResult{Score: -scoreBound}
	for _, move := range board.LegalMoves() {
		board.Place(move, maximizer)
		score := that.minimax(board, maximizer, 0, false, -scoreBound, scoreBound)
		board.Clear(move)

		if score > result.Score {
			result = SearchResult{Move: move, Score: score, Found: true}
		}
	}

	if !result.Found {
		result.Score = 0
	}

	return result
}

func (that *Searcher) minimax(board *entity.Board, maximizer entity.Cell, depth int, maximizing bool, alpha, beta int) int {
	that.nodes++

	minimizer := maximizer.Opponent()

	switch {
	case board.IsWin(maximizer):
		return winScore - depth
	case board.IsWin(minimizer):
		return depth - winScore
	case board.IsFull():
		return 0
	}

	if maximizing {
		best := -scoreBound
		for _, move := range board.LegalMoves() {
			board.Place(move, maximizer)
			score := that.minimax(board, maximizer, depth+1, false, alpha, beta)
			board.Clear(move)

			best = max(best, score)
			alpha = max(alpha, best)
			if that.pruning && beta <= alpha {
				break
			}
		}

		return best
	}

	best := scoreBound
	for _, move := range board.LegalMoves() {
		board.Place(move, minimizer)
		score := that.minimax(board, maximizer, depth+1, true, alpha, beta)
		board.Clear(move)

		best = min(best, score)
		beta = min(beta, best)
		if that.pruning && beta <= alpha {
			break
		}
	}

	return best
}
