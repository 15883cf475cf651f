package main

import "fmt"

// BoardSize and WinLength are fixed: standard 15x15 gobang, five in a row.
const (
	BoardSize = 15
	WinLength = 5

	cellCount = BoardSize * BoardSize
)

type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// Board is a fixed-size grid backed by an array so that values are comparable
// and copies are plain assignments. The eval cache keys on this directly.
type Board struct {
	cells [cellCount]Cell
}

func NewBoard() Board {
	return Board{}
}

func (b *Board) Reset() {
	b.cells = [cellCount]Cell{}
}

func (b Board) At(x, y int) Cell {
	return b.cells[index(x, y)]
}

func (b *Board) Set(x, y int, value Cell) {
	b.cells[index(x, y)] = value
}

func (b *Board) Remove(x, y int) {
	b.cells[index(x, y)] = CellEmpty
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < BoardSize && y < BoardSize
}

func (b Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.At(x, y) == CellEmpty
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) StoneCount() int {
	return cellCount - b.CountEmpty()
}

func index(x, y int) int {
	return y*BoardSize + x
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}

func PlayerFromCell(cell Cell) (PlayerColor, error) {
	switch cell {
	case CellBlack:
		return PlayerBlack, nil
	case CellWhite:
		return PlayerWhite, nil
	default:
		return PlayerBlack, fmt.Errorf("empty cell has no player")
	}
}
