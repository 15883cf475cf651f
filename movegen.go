package main

import "sort"

type candidateMove struct {
	move  Move
	score int
}

// collectCandidateMoves enumerates the empty cells within Chebyshev distance 1
// of at least one stone, ordered best-first by locationScore. On an empty
// board there is nothing to be adjacent to; the center opening is returned so
// the search is defined from move one.
func collectCandidateMoves(state GameState) []Move {
	candidates := make([]candidateMove, 0, 64)
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if state.Board.At(x, y) != CellEmpty {
				continue
			}
			if !hasStoneWithin(state.Board, x, y, 1) {
				continue
			}
			move := Move{X: x, Y: y}
			candidates = append(candidates, candidateMove{move: move, score: locationScore(state.Board, move)})
		}
	}
	if len(candidates) == 0 {
		if state.Board.StoneCount() == 0 {
			return []Move{{X: BoardSize / 2, Y: BoardSize / 2}}
		}
		return nil
	}
	// Stable keeps row-major order among equal scores, so candidate order
	// (and therefore the root tie-break set) is deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	moves := make([]Move, len(candidates))
	for i, cand := range candidates {
		moves[i] = cand.move
	}
	return moves
}

func hasStoneWithin(board Board, x, y, distance int) bool {
	for dy := -distance; dy <= distance; dy++ {
		for dx := -distance; dx <= distance; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			ny := y + dy
			if board.InBounds(nx, ny) && board.At(nx, ny) != CellEmpty {
				return true
			}
		}
	}
	return false
}

// locationScore rates a candidate square by the runs of either color that
// would pass through it: for both colors and all 4 axes, count the contiguous
// run through the square (the square itself counts once) and credit
// >=5 -> 100000, 4 -> 1000, 3 -> 10. Higher is better.
func locationScore(board Board, move Move) int {
	score := 0
	for _, cell := range [2]Cell{CellBlack, CellWhite} {
		for i := 0; i < 4; i++ {
			dx := axisDirections[i][0]
			dy := axisDirections[i][1]
			count := 1
			count += countContiguous(board, move.X, move.Y, dx, dy, cell)
			count += countContiguous(board, move.X, move.Y, -dx, -dy, cell)
			switch {
			case count >= 5:
				score += 100000
			case count == 4:
				score += 1000
			case count == 3:
				score += 10
			}
		}
	}
	return score
}

func countContiguous(board Board, x, y, dx, dy int, target Cell) int {
	count := 0
	x += dx
	y += dy
	for board.InBounds(x, y) && board.At(x, y) == target {
		count++
		x += dx
		y += dy
	}
	return count
}
