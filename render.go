package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// renderBoard draws the grid with coordinate rails, coloring stones when the
// terminal supports it and marking the last move.
func renderBoard(out *termenv.Output, state GameState, colored bool) string {
	var sb strings.Builder
	sb.WriteString("    ")
	for x := 0; x < BoardSize; x++ {
		sb.WriteString(fmt.Sprintf("%2d ", x))
	}
	sb.WriteByte('\n')
	for y := 0; y < BoardSize; y++ {
		sb.WriteString(fmt.Sprintf("%2d  ", y))
		for x := 0; x < BoardSize; x++ {
			sb.WriteString(" ")
			sb.WriteString(cellGlyph(out, state, x, y, colored))
			sb.WriteString(" ")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellGlyph(out *termenv.Output, state GameState, x, y int, colored bool) string {
	cell := state.PieceAt(x, y)
	isLast := state.HasLastMove && state.LastMove.X == x && state.LastMove.Y == y
	switch cell {
	case CellBlack:
		return stoneGlyph(out, "X", termenv.ANSIRed, colored, isLast)
	case CellWhite:
		return stoneGlyph(out, "O", termenv.ANSICyan, colored, isLast)
	default:
		return "."
	}
}

func stoneGlyph(out *termenv.Output, glyph string, color termenv.Color, colored, isLast bool) string {
	if !colored {
		if isLast {
			return strings.ToLower(glyph)
		}
		return glyph
	}
	style := out.String(glyph).Foreground(color)
	if isLast {
		style = style.Bold().Underline()
	}
	return style.String()
}
