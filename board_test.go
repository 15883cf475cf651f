package main

import "testing"

func TestBoardSetAtAndBounds(t *testing.T) {
	board := NewBoard()
	if !board.InBounds(0, 0) || !board.InBounds(14, 14) {
		t.Fatalf("corners must be in bounds")
	}
	if board.InBounds(-1, 0) || board.InBounds(0, 15) {
		t.Fatalf("out-of-range coordinates must not be in bounds")
	}

	board.Set(3, 4, CellWhite)
	if board.At(3, 4) != CellWhite {
		t.Fatalf("expected white at (3,4), got %v", board.At(3, 4))
	}
	if board.IsEmpty(3, 4) {
		t.Fatalf("occupied cell reported empty")
	}
	if !board.IsEmpty(4, 3) {
		t.Fatalf("empty cell reported occupied")
	}
	if board.CountEmpty() != cellCount-1 {
		t.Fatalf("expected %d empty cells, got %d", cellCount-1, board.CountEmpty())
	}

	board.Remove(3, 4)
	if board.At(3, 4) != CellEmpty {
		t.Fatalf("expected the cell cleared")
	}
}

func TestPlayerCellRoundTrip(t *testing.T) {
	if CellFromPlayer(PlayerBlack) != CellBlack || CellFromPlayer(PlayerWhite) != CellWhite {
		t.Fatalf("player to cell mapping broken")
	}
	if player, err := PlayerFromCell(CellWhite); err != nil || player != PlayerWhite {
		t.Fatalf("cell to player mapping broken: %v %v", player, err)
	}
	if _, err := PlayerFromCell(CellEmpty); err == nil {
		t.Fatalf("expected an error for the empty cell")
	}
}

func TestBoardValuesAreIndependentCopies(t *testing.T) {
	original := NewBoard()
	original.Set(7, 7, CellBlack)
	copied := original
	copied.Set(0, 0, CellWhite)
	if original.At(0, 0) != CellEmpty {
		t.Fatalf("copy aliased the original board")
	}
}
