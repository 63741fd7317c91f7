package entity

import "time"

const (
	DefaultRounds     = 5
	DefaultWinsNeeded = 3
)

// Match - a series of rounds between two players. Players[0] plays X and opens every round.
type Match struct {
	ID         string     `json:"id"`
	Players    [2]*Player `json:"players"`
	Difficulty Difficulty `json:"difficulty,omitempty"`

	TotalRounds  int `json:"total_rounds"`
	WinsNeeded   int `json:"wins_needed"`
	CurrentRound int `json:"current_round"`

	Scores [2]int `json:"scores"`
	Ties   int    `json:"ties"`

	FinishedAt time.Time `json:"finished_at"`
}

// NewMatch - non-positive rounds and wins fall back to the defaults.
func NewMatch(first, second *Player, totalRounds, winsNeeded int) *Match {
	if totalRounds < 1 {
		totalRounds = DefaultRounds
	}

	if winsNeeded < 1 {
		winsNeeded = DefaultWinsNeeded
	}

	return &Match{
		Players:      [2]*Player{first, second},
		TotalRounds:  totalRounds,
		WinsNeeded:   winsNeeded,
		CurrentRound: 1,
	}
}

func (that *Match) HasComputer() bool {
	return that.Players[0].IsComputer() || that.Players[1].IsComputer()
}

// PlayerByMark - player that plays mark, nil for EmptyCell.
func (that *Match) PlayerByMark(mark Cell) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// RecordRound - counts a finished round. A tie is replayed, so it does not advance the round counter.
func (that *Match) RecordRound(round *Round) {
	if !round.IsFinished() {
		return
	}

	if round.IsTie() {
		that.Ties++
		return
	}

	for i, player := range that.Players {
		if player.Mark == round.Winner {
			that.Scores[i]++
		}
	}

	that.CurrentRound++
}

func (that *Match) IsOver() bool {
	if that.CurrentRound > that.TotalRounds {
		return true
	}

	return that.Scores[0] >= that.WinsNeeded || that.Scores[1] >= that.WinsNeeded
}

// ReachedWinsNeeded - true when the match ended because someone collected enough round wins.
func (that *Match) ReachedWinsNeeded() bool {
	return that.Scores[0] >= that.WinsNeeded || that.Scores[1] >= that.WinsNeeded
}

// Champion - player with more round wins, nil on equal scores.
func (that *Match) Champion() *Player {
	switch {
	case that.Scores[0] > that.Scores[1]:
		return that.Players[0]
	case that.Scores[1] > that.Scores[0]:
		return that.Players[1]
	default:
		return nil
	}
}

// LeaderboardEntry - player name and the number of matches it won.
type LeaderboardEntry struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}
