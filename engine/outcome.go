package engine

// Outcome is the result of a game as seen from the final counts.
type Outcome int

const (
	InProgress Outcome = iota
	BlackWins
	WhiteWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "Black wins"
	case WhiteWins:
		return "White wins"
	case Draw:
		return "Draw"
	default:
		return "In progress"
	}
}
