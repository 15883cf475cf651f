package main

import "testing"

func TestEmptyBoardCandidateIsCenter(t *testing.T) {
	state := DefaultGameState()
	state.Status = StatusRunning

	candidates := collectCandidateMoves(state)
	if len(candidates) != 1 {
		t.Fatalf("expected exactly one candidate on the empty board, got %d", len(candidates))
	}
	if !candidates[0].Equals(NewMove(7, 7)) {
		t.Fatalf("expected center opening (7,7), got %v", candidates[0])
	}
}

func TestCandidatesAfterCenterAreItsNeighbors(t *testing.T) {
	rules := NewRules()
	state := DefaultGameState()
	state.Status = StatusRunning
	if outcome, err := rules.ApplyMove(&state, NewMove(7, 7)); err != nil || outcome != MoveContinues {
		t.Fatalf("expected Continues for the first placement, got outcome=%v err=%v", outcome, err)
	}

	candidates := collectCandidateMoves(state)
	if len(candidates) != 8 {
		t.Fatalf("expected the 8 neighbors of (7,7), got %d candidates", len(candidates))
	}
	seen := map[Move]bool{}
	for _, move := range candidates {
		seen[move] = true
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			neighbor := NewMove(7+dx, 7+dy)
			if !seen[neighbor] {
				t.Fatalf("missing neighbor candidate %v", neighbor)
			}
		}
	}
}

func TestCandidatesAreEmptyAndAdjacentToStones(t *testing.T) {
	state := DefaultGameState()
	state.Status = StatusRunning
	state.Board.Set(0, 0, CellBlack)
	state.Board.Set(7, 7, CellWhite)
	state.Board.Set(14, 14, CellBlack)
	state.Board.Set(3, 11, CellWhite)

	candidates := collectCandidateMoves(state)
	if len(candidates) == 0 {
		t.Fatalf("expected candidates around the stones")
	}
	for _, move := range candidates {
		if state.Board.At(move.X, move.Y) != CellEmpty {
			t.Fatalf("candidate %v targets a non-empty cell", move)
		}
		if !hasStoneWithin(state.Board, move.X, move.Y, 1) {
			t.Fatalf("candidate %v has no stone within Chebyshev distance 1", move)
		}
	}
}

func TestCandidateOrderingPrefersCompletingRuns(t *testing.T) {
	state := DefaultGameState()
	state.Status = StatusRunning
	for x := 0; x <= 3; x++ {
		state.Board.Set(x, 0, CellBlack)
	}
	state.Board.Set(10, 10, CellWhite)
	state.ToMove = PlayerWhite

	candidates := collectCandidateMoves(state)
	if len(candidates) == 0 {
		t.Fatalf("expected candidates")
	}
	if !candidates[0].Equals(NewMove(4, 0)) {
		t.Fatalf("expected (4,0) ordered first, got %v", candidates[0])
	}
}

func TestLocationScoreCountsBothSides(t *testing.T) {
	board := NewBoard()
	for x := 1; x <= 3; x++ {
		board.Set(x, 0, CellBlack)
	}
	for y := 1; y <= 3; y++ {
		board.Set(4, y, CellWhite)
	}
	// (0,0) extends black's three to a four-run on its own.
	blackSide := locationScore(board, NewMove(0, 0))
	if blackSide < 1000 {
		t.Fatalf("expected at least a four-run credit at (0,0), got %d", blackSide)
	}
	// (4,0) makes a four for black's row and for white's column at once.
	bothSides := locationScore(board, NewMove(4, 0))
	if bothSides < 2000 {
		t.Fatalf("expected credit from both sides at (4,0), got %d", bothSides)
	}
}
