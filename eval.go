package main

// Line tokens: 'M' friendly stone, '.' empty, 'O' enemy stone or board edge.
// Every scan line is wrapped in 'O' sentinels so edge-blocked shapes match the
// same patterns as enemy-blocked ones.

type Shape int

const (
	ShapeLong Shape = iota
	ShapeFive
	ShapeLiveFour
	ShapeRushFour
	ShapeLiveThree
	ShapeSleepThree
	ShapeLiveTwo
	ShapeSleepTwo

	shapeCount
)

type shapeTotals [shapeCount]int

type shapeValues [shapeCount]int

// Value tables from the side-to-move's perspective. The opponent's RushFour
// and LiveThree weigh heavier than the mover's own: the opponent moves next,
// so their forcing shapes carry the tempo.
var (
	moverValues = shapeValues{
		ShapeLong:       1000000,
		ShapeFive:       1000000,
		ShapeLiveFour:   10000,
		ShapeRushFour:   2000,
		ShapeLiveThree:  2000,
		ShapeSleepThree: 100,
		ShapeLiveTwo:    5,
		ShapeSleepTwo:   1,
	}
	opponentValues = shapeValues{
		ShapeLong:       1000000,
		ShapeFive:       1000000,
		ShapeLiveFour:   10000,
		ShapeRushFour:   5000,
		ShapeLiveThree:  200,
		ShapeSleepThree: 100,
		ShapeLiveTwo:    5,
		ShapeSleepTwo:   1,
	}
)

type patternEntry struct {
	pattern string
	shape   Shape
}

// Base catalogue in priority order. Matching tries entries top to bottom and
// takes the first hit, so stronger shapes shadow their weaker substrings.
var basePatterns = [...]patternEntry{
	{pattern: "MMMMMM", shape: ShapeLong},
	{pattern: "MMMMM", shape: ShapeFive},
	{pattern: ".MMMM.", shape: ShapeLiveFour},
	{pattern: ".MMM..", shape: ShapeLiveThree},
	{pattern: ".M.MM.", shape: ShapeLiveThree},
	{pattern: "..MM..", shape: ShapeLiveTwo},
	{pattern: "OMMMM.", shape: ShapeRushFour},
	{pattern: "MM.MM", shape: ShapeRushFour},
	{pattern: "M.MMM", shape: ShapeRushFour},
	{pattern: "M..MM", shape: ShapeSleepThree},
	{pattern: "OMMM..", shape: ShapeSleepThree},
	{pattern: "OMM.M.", shape: ShapeSleepThree},
	{pattern: "OM.MM.", shape: ShapeSleepThree},
	{pattern: "OMM...", shape: ShapeSleepTwo},
	{pattern: "OM.M..", shape: ShapeSleepTwo},
	{pattern: "OM..M.", shape: ShapeSleepTwo},
	{pattern: "OM...M", shape: ShapeSleepTwo},
	{pattern: "O.MM..O", shape: ShapeSleepTwo},
	{pattern: "O.M.M.O", shape: ShapeSleepTwo},
}

// evalPatterns is the expanded catalogue: each non-palindromic base pattern is
// followed by its mirror, preserving priority order.
var evalPatterns = expandPatterns()

// minPatternLen bounds the greedy scan; no pattern shorter than this exists.
var minPatternLen = shortestPattern()

func expandPatterns() []patternEntry {
	out := make([]patternEntry, 0, 2*len(basePatterns))
	for _, entry := range basePatterns {
		out = append(out, entry)
		rev := reverseString(entry.pattern)
		if rev != entry.pattern {
			out = append(out, patternEntry{pattern: rev, shape: entry.shape})
		}
	}
	return out
}

func shortestPattern() int {
	shortest := len(basePatterns[0].pattern)
	for _, entry := range basePatterns {
		if len(entry.pattern) < shortest {
			shortest = len(entry.pattern)
		}
	}
	return shortest
}

func reverseString(s string) string {
	buf := []byte(s)
	for left, right := 0, len(buf)-1; left < right; left, right = left+1, right-1 {
		buf[left], buf[right] = buf[right], buf[left]
	}
	return string(buf)
}

// boardLines holds the cell indices of every scan line: all rows, all
// columns, and both diagonal families. Computed once; the board size is fixed.
var boardLines = buildLines()

func buildLines() [][]int {
	lines := [][]int{}
	for y := 0; y < BoardSize; y++ {
		line := make([]int, 0, BoardSize)
		for x := 0; x < BoardSize; x++ {
			line = append(line, index(x, y))
		}
		lines = append(lines, line)
	}
	for x := 0; x < BoardSize; x++ {
		line := make([]int, 0, BoardSize)
		for y := 0; y < BoardSize; y++ {
			line = append(line, index(x, y))
		}
		lines = append(lines, line)
	}
	// Diagonals (\): start cells along the top row and left column.
	for x := 0; x < BoardSize; x++ {
		lines = append(lines, collectDiagonal(x, 0, 1, 1))
	}
	for y := 1; y < BoardSize; y++ {
		lines = append(lines, collectDiagonal(0, y, 1, 1))
	}
	// Anti-diagonals (/): start cells along the bottom row and left column.
	for x := 0; x < BoardSize; x++ {
		lines = append(lines, collectDiagonal(x, BoardSize-1, 1, -1))
	}
	for y := BoardSize - 2; y >= 0; y-- {
		lines = append(lines, collectDiagonal(0, y, 1, -1))
	}
	return lines
}

func collectDiagonal(x, y, dx, dy int) []int {
	line := []int{}
	for x >= 0 && y >= 0 && x < BoardSize && y < BoardSize {
		line = append(line, index(x, y))
		x += dx
		y += dy
	}
	return line
}

// Evaluate scores the position from the perspective of the side to move:
// positive favors that side. Results are memoized in the search context by
// exact board plus turn identity.
func Evaluate(state GameState, sctx *SearchContext) int {
	sctx.evaluations.Add(1)
	key := evalKeyFor(state)
	sctx.mu.Lock()
	if score, ok := sctx.evalCache[key]; ok {
		sctx.mu.Unlock()
		sctx.cacheHits.Add(1)
		return score
	}
	sctx.mu.Unlock()

	mover := state.ToMove
	score := scoreSide(state.Board, mover, moverValues) - scoreSide(state.Board, otherPlayer(mover), opponentValues)

	sctx.mu.Lock()
	sctx.evalCache[key] = score
	sctx.mu.Unlock()
	return score
}

func scoreSide(board Board, player PlayerColor, values shapeValues) int {
	var totals shapeTotals
	var tokens []byte
	for _, line := range boardLines {
		// Short diagonals cannot hold any catalogued shape.
		if len(line)+2 < 8 {
			continue
		}
		var ok bool
		tokens, ok = buildTokensInto(board, line, player, tokens)
		if !ok {
			continue
		}
		accumulatePatterns(tokens, &totals)
	}
	score := 0
	for shape, count := range totals {
		score += count * values[shape]
	}
	return score
}

// buildTokensInto tokenizes one line for player, reusing buf. It reports
// false when the line holds no stone at all: such lines match nothing.
func buildTokensInto(board Board, line []int, player PlayerColor, buf []byte) ([]byte, bool) {
	needed := len(line) + 2
	if cap(buf) < needed {
		buf = make([]byte, needed)
	} else {
		buf = buf[:needed]
	}
	friendly := CellFromPlayer(player)
	hasStone := false
	buf[0] = 'O'
	for i, idx := range line {
		switch cell := board.cells[idx]; {
		case cell == CellEmpty:
			buf[i+1] = '.'
		case cell == friendly:
			buf[i+1] = 'M'
			hasStone = true
		default:
			buf[i+1] = 'O'
			hasStone = true
		}
	}
	buf[needed-1] = 'O'
	return buf, hasStone
}

// accumulatePatterns scans left to right, crediting the first catalogue match
// at each position and skipping past the matched span (greedy,
// non-overlapping); with no match the scan advances by one token.
func accumulatePatterns(tokens []byte, totals *shapeTotals) {
	limit := len(tokens) - minPatternLen + 1
	for i := 0; i < limit; {
		matched := false
		for _, entry := range evalPatterns {
			if matchAt(tokens, entry.pattern, i) {
				totals[entry.shape]++
				i += len(entry.pattern)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
}

func matchAt(tokens []byte, pattern string, start int) bool {
	if start+len(pattern) > len(tokens) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if tokens[start+i] != pattern[i] {
			return false
		}
	}
	return true
}
