package main

import "testing"

func testConfig(seed int64) Config {
	config := DefaultConfig()
	config.Seed = seed
	return config
}

func TestBestMoveOnEmptyBoardOpensCenter(t *testing.T) {
	searcher := NewSearcher(testConfig(1))
	state := DefaultGameState()
	state.Status = StatusRunning

	result := searcher.BestMove(state)
	if !result.HasMove {
		t.Fatalf("expected a move on the empty board")
	}
	if !result.Move.Equals(NewMove(7, 7)) {
		t.Fatalf("expected the center opening, got %v", result.Move)
	}
}

func TestBestMoveTakesImmediateWin(t *testing.T) {
	searcher := NewSearcher(testConfig(1))
	state := DefaultGameState()
	state.Status = StatusRunning
	for i := 0; i <= 3; i++ {
		state.Board.Set(i, i, CellBlack)
	}
	state.Board.Set(14, 0, CellWhite)
	state.Board.Set(14, 1, CellWhite)
	state.Board.Set(14, 2, CellWhite)
	state.ToMove = PlayerBlack

	result := searcher.BestMove(state)
	if !result.HasMove {
		t.Fatalf("expected a move")
	}
	if !result.Move.Equals(NewMove(4, 4)) {
		t.Fatalf("expected the winning completion (4,4), got %v", result.Move)
	}
	if result.Score != winScore {
		t.Fatalf("expected the win sentinel score, got %d", result.Score)
	}
}

func TestBestMoveBlocksRushFour(t *testing.T) {
	searcher := NewSearcher(testConfig(1))
	state := DefaultGameState()
	state.Status = StatusRunning
	// White four against the left edge: only (4,7) stops five.
	for x := 0; x <= 3; x++ {
		state.Board.Set(x, 7, CellWhite)
	}
	state.Board.Set(10, 10, CellBlack)
	state.Board.Set(11, 10, CellBlack)
	state.Board.Set(12, 10, CellBlack)
	state.ToMove = PlayerBlack

	result := searcher.BestMove(state)
	if !result.HasMove {
		t.Fatalf("expected a move")
	}
	if !result.Move.Equals(NewMove(4, 7)) {
		t.Fatalf("expected the blocking move (4,7), got %v", result.Move)
	}
}

func TestBestMoveReproducibleWithSeed(t *testing.T) {
	state := DefaultGameState()
	state.Status = StatusRunning
	rules := NewRules()
	for _, move := range []Move{{X: 7, Y: 7}, {X: 7, Y: 8}, {X: 8, Y: 8}} {
		if _, err := rules.ApplyMove(&state, move); err != nil {
			t.Fatalf("setup move failed: %v", err)
		}
	}

	first := NewSearcher(testConfig(42)).BestMove(state)
	for i := 0; i < 3; i++ {
		again := NewSearcher(testConfig(42)).BestMove(state)
		if !again.HasMove || !again.Move.Equals(first.Move) || again.Score != first.Score {
			t.Fatalf("seeded search diverged: run %d gave %v/%d, want %v/%d",
				i, again.Move, again.Score, first.Move, first.Score)
		}
	}
}

func TestBestMoveFullBoardHasNoMove(t *testing.T) {
	searcher := NewSearcher(testConfig(1))
	state := DefaultGameState()
	state.Status = StatusDraw
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			state.Board.Set(x, y, drawTilingCell(x, y))
		}
	}

	result := searcher.BestMove(state)
	if result.HasMove {
		t.Fatalf("expected no move on a full board, got %v", result.Move)
	}
}

func TestBestMoveStatsAreReset(t *testing.T) {
	searcher := NewSearcher(testConfig(7))
	state := DefaultGameState()
	state.Status = StatusRunning
	rules := NewRules()
	if _, err := rules.ApplyMove(&state, NewMove(7, 7)); err != nil {
		t.Fatalf("setup move failed: %v", err)
	}

	first := searcher.BestMove(state)
	second := searcher.BestMove(state)
	if first.Stats.Evaluations == 0 {
		t.Fatalf("expected a nonzero evaluation count")
	}
	// A fresh context per call: the counter must not accumulate across calls.
	if second.Stats.Evaluations != first.Stats.Evaluations {
		t.Fatalf("expected identical per-call evaluation counts, got %d then %d",
			first.Stats.Evaluations, second.Stats.Evaluations)
	}
}

func TestMinimaxPrunesSiblings(t *testing.T) {
	state := DefaultGameState()
	state.Status = StatusRunning
	rules := NewRules()
	for _, move := range []Move{{X: 7, Y: 7}, {X: 8, Y: 7}, {X: 7, Y: 8}, {X: 8, Y: 8}} {
		if _, err := rules.ApplyMove(&state, move); err != nil {
			t.Fatalf("setup move failed: %v", err)
		}
	}

	sctx := newSearchContext()
	minimax(&state, sctx, rules, 3, false, lossScore, winScore)
	if sctx.cutoffs.Load() == 0 {
		t.Fatalf("expected alpha-beta cutoffs in a midgame search")
	}
}
