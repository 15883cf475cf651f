package main

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is the single recoverable error surface: the target was out
// of bounds or occupied, and the state is guaranteed unchanged.
var ErrInvalidMove = errors.New("invalid move")

// MoveOutcome is the result of a successfully applied move.
type MoveOutcome int

const (
	MoveContinues MoveOutcome = iota
	MoveWin
	MoveDraw
)

type Rules struct{}

func NewRules() Rules {
	return Rules{}
}

var axisDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

func (r Rules) IsLegal(state GameState, move Move) (bool, string) {
	if !move.IsValid() {
		return false, "out of bounds"
	}
	if !state.Board.IsEmpty(move.X, move.Y) {
		return false, "occupied"
	}
	return true, ""
}

// ApplyMove places the current side's stone, flips the turn, and resolves the
// outcome from the just-placed stone. On failure the state is untouched.
func (r Rules) ApplyMove(state *GameState, move Move) (MoveOutcome, error) {
	if ok, reason := r.IsLegal(*state, move); !ok {
		return MoveContinues, fmt.Errorf("%w: %s at (%d,%d)", ErrInvalidMove, reason, move.X, move.Y)
	}
	mover := state.ToMove
	state.Board.Set(move.X, move.Y, CellFromPlayer(mover))
	state.LastMove = move
	state.HasLastMove = true
	state.ToMove = otherPlayer(mover)
	if state.Status == StatusNotStarted {
		state.Status = StatusRunning
	}
	if r.IsWin(state.Board, move) {
		if mover == PlayerBlack {
			state.Status = StatusBlackWon
		} else {
			state.Status = StatusWhiteWon
		}
		return MoveWin, nil
	}
	if r.IsDraw(state.Board) {
		state.Status = StatusDraw
		return MoveDraw, nil
	}
	return MoveContinues, nil
}

// UndoMove reverses an ApplyMove inside the search recursion. The caller
// supplies the pre-move bookkeeping it saved; the stone itself is the only
// board change since there are no captures.
func (r Rules) UndoMove(state *GameState, move Move, prev UndoRecord) {
	state.Board.Remove(move.X, move.Y)
	state.ToMove = otherPlayer(state.ToMove)
	state.Status = prev.Status
	state.LastMove = prev.LastMove
	state.HasLastMove = prev.HasLastMove
}

type UndoRecord struct {
	Status      GameStatus
	LastMove    Move
	HasLastMove bool
}

func SaveUndo(state GameState) UndoRecord {
	return UndoRecord{
		Status:      state.Status,
		LastMove:    state.LastMove,
		HasLastMove: state.HasLastMove,
	}
}

// IsWin walks outward from the last placed stone along the 4 axes, counting
// contiguous same-color stones in both senses; the placed stone counts once.
func (r Rules) IsWin(board Board, lastMove Move) bool {
	if !lastMove.IsValid() || board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return false
	}
	best := 0
	for i := 0; i < 4; i++ {
		dx := axisDirections[i][0]
		dy := axisDirections[i][1]
		count := 1
		count += r.countDirection(board, lastMove, dx, dy)
		count += r.countDirection(board, lastMove, -dx, -dy)
		if count > best {
			best = count
		}
	}
	return best >= WinLength
}

func (r Rules) IsDraw(board Board) bool {
	return board.CountEmpty() == 0
}

// FindAlignmentLine returns the winning run through lastMove, for display.
func (r Rules) FindAlignmentLine(board Board, lastMove Move) ([]Move, bool) {
	if !lastMove.IsValid() || board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return nil, false
	}
	for i := 0; i < 4; i++ {
		dx := axisDirections[i][0]
		dy := axisDirections[i][1]
		line := r.collectLine(board, lastMove, dx, dy)
		if len(line) >= WinLength {
			return line, true
		}
	}
	return nil, false
}

func (r Rules) countDirection(board Board, start Move, dx, dy int) int {
	target := board.At(start.X, start.Y)
	x := start.X + dx
	y := start.Y + dy
	count := 0
	for board.InBounds(x, y) && board.At(x, y) == target {
		count++
		x += dx
		y += dy
	}
	return count
}

func (r Rules) collectLine(board Board, start Move, dx, dy int) []Move {
	target := board.At(start.X, start.Y)
	x := start.X
	y := start.Y
	for board.InBounds(x-dx, y-dy) && board.At(x-dx, y-dy) == target {
		x -= dx
		y -= dy
	}
	line := []Move{}
	for board.InBounds(x, y) && board.At(x, y) == target {
		line = append(line, Move{X: x, Y: y})
		x += dx
		y += dy
	}
	return line
}
