package entity

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Round - a single game on one board. Winner stays EmptyCell on a tie.
type Round struct {
	Board  Board  `json:"board"`
	Turn   Cell   `json:"turn"`
	Winner Cell   `json:"winner"`
	Status string `json:"status"`
}

// NewRound - empty board, X to move.
func NewRound() *Round {
	return &Round{
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

func (that *Round) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Round) IsTie() bool {
	return that.IsFinished() && that.Winner == EmptyCell
}
