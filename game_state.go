package main

type PlayerColor int

type GameStatus int

const (
	PlayerBlack PlayerColor = iota
	PlayerWhite
)

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusBlackWon
	StatusWhiteWon
	StatusDraw
)

// GameState is a plain value: the board array copies by assignment, so Clone
// is trivial and search tasks can hold private copies without aliasing.
type GameState struct {
	Board       Board
	ToMove      PlayerColor
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
}

func DefaultGameState() GameState {
	state := GameState{}
	state.Reset()
	return state
}

func (s *GameState) Reset() {
	s.Board.Reset()
	s.ToMove = PlayerBlack
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = Move{X: -1, Y: -1}
}

func (s GameState) Clone() GameState {
	return s
}

// Turn reports whose move is next.
func (s GameState) Turn() PlayerColor {
	return s.ToMove
}

// PieceAt is the read surface consumed by front ends. Out-of-bounds reads
// report empty rather than panicking.
func (s GameState) PieceAt(x, y int) Cell {
	if !s.Board.InBounds(x, y) {
		return CellEmpty
	}
	return s.Board.At(x, y)
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

func (p PlayerColor) String() string {
	if p == PlayerBlack {
		return "black"
	}
	return "white"
}

func (s GameStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	default:
		return "draw"
	}
}
