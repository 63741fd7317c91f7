package entity

type PlayerKind string

const (
	HumanPlayer    PlayerKind = "human"
	ComputerPlayer PlayerKind = "computer"
)

const ComputerName = "Computer"

type Player struct {
	Name string     `json:"name"`
	Mark Cell       `json:"mark"`
	Kind PlayerKind `json:"kind"`
}

func NewHumanPlayer(name string, mark Cell) *Player {
	return &Player{Name: name, Mark: mark, Kind: HumanPlayer}
}

func NewComputerPlayer(mark Cell) *Player {
	return &Player{Name: ComputerName, Mark: mark, Kind: ComputerPlayer}
}

func (that *Player) IsComputer() bool {
	return that.Kind == ComputerPlayer
}
