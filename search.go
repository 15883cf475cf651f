package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

const (
	// Depth of recursive lookahead below the root placement.
	defaultSearchDepth = 3

	winScore  = math.MaxInt32
	lossScore = math.MinInt32
	drawScore = 0
)

// evalKey is the exact identity used for memoization: board contents plus
// side to move, nothing else.
type evalKey struct {
	board  Board
	toMove PlayerColor
}

func evalKeyFor(state GameState) evalKey {
	return evalKey{board: state.Board, toMove: state.ToMove}
}

// SearchContext carries the only mutable state shared across the root tasks
// of one search: the eval memo and the diagnostic counters. A fresh context
// is built per BestMove call, so searches never see each other's caches.
type SearchContext struct {
	mu        sync.Mutex
	evalCache map[evalKey]int

	evaluations atomic.Uint64
	cacheHits   atomic.Uint64
	nodes       atomic.Uint64
	cutoffs     atomic.Uint64
}

func newSearchContext() *SearchContext {
	return &SearchContext{evalCache: make(map[evalKey]int)}
}

type SearchStats struct {
	Candidates  int
	Nodes       uint64
	Cutoffs     uint64
	Evaluations uint64
	CacheHits   uint64
	Elapsed     time.Duration
}

type SearchResult struct {
	Move    Move
	HasMove bool
	Score   int
	Stats   SearchStats
}

// Searcher picks moves for the automated side. The tie-break generator is
// owned here so a fixed seed reproduces a search exactly.
type Searcher struct {
	rules   Rules
	depth   int
	workers int
	rng     *frand.RNG
}

func NewSearcher(config Config) *Searcher {
	depth := config.SearchDepth
	if depth <= 0 {
		depth = defaultSearchDepth
	}
	workers := config.SearchWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Searcher{
		rules:   NewRules(),
		depth:   depth,
		workers: workers,
		rng:     rngFromSeed(config.Seed),
	}
}

func rngFromSeed(seed int64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	return frand.NewCustom(key[:], 1024, 12)
}

// BestMove fans out one task per root candidate, each searching its own
// private copy of the state, joins them all, and picks the strictly greatest
// score with a uniform tie-break. Alpha-beta windows are per task: pruning
// never crosses the root tasks.
func (s *Searcher) BestMove(state GameState) SearchResult {
	start := time.Now()
	sctx := newSearchContext()
	candidates := collectCandidateMoves(state)
	result := SearchResult{}
	if len(candidates) == 0 {
		result.Stats.Elapsed = time.Since(start)
		return result
	}

	scores := make([]int, len(candidates))
	group := errgroup.Group{}
	group.SetLimit(s.workers)
	for i, move := range candidates {
		i, move := i, move
		group.Go(func() error {
			child := state.Clone()
			outcome, err := s.rules.ApplyMove(&child, move)
			if err != nil {
				panic(fmt.Sprintf("generated candidate is illegal: %v", err))
			}
			switch outcome {
			case MoveWin:
				scores[i] = winScore
			case MoveDraw:
				scores[i] = drawScore
			default:
				scores[i] = minimax(&child, sctx, s.rules, s.depth, false, lossScore, winScore)
			}
			return nil
		})
	}
	_ = group.Wait()

	bestScore := lossScore
	bestMoves := make([]Move, 0, 4)
	for i, score := range scores {
		if score > bestScore {
			bestScore = score
			bestMoves = bestMoves[:0]
			bestMoves = append(bestMoves, candidates[i])
		} else if score == bestScore {
			bestMoves = append(bestMoves, candidates[i])
		}
	}
	result.HasMove = true
	result.Score = bestScore
	if len(bestMoves) == 1 {
		result.Move = bestMoves[0]
	} else {
		result.Move = bestMoves[s.rng.Intn(len(bestMoves))]
	}
	result.Stats = SearchStats{
		Candidates:  len(candidates),
		Nodes:       sctx.nodes.Load(),
		Cutoffs:     sctx.cutoffs.Load(),
		Evaluations: sctx.evaluations.Load(),
		CacheHits:   sctx.cacheHits.Load(),
		Elapsed:     time.Since(start),
	}
	return result
}

// minimax is the sequential alpha-beta recursion run inside one root task.
// Moves are applied and undone on the task's single mutable state. A move
// that wins resolves the branch immediately at the extreme value for the
// player at this ply.
func minimax(state *GameState, sctx *SearchContext, rules Rules, depth int, maximizing bool, alpha, beta int) int {
	if depth == 0 {
		return Evaluate(*state, sctx)
	}
	candidates := collectCandidateMoves(*state)
	if len(candidates) == 0 {
		return Evaluate(*state, sctx)
	}
	sctx.nodes.Add(1)

	if maximizing {
		best := lossScore
		for _, move := range candidates {
			eval := searchChild(state, sctx, rules, move, depth, false, alpha, beta, winScore)
			best = maxOf(best, eval)
			alpha = maxOf(alpha, eval)
			if beta <= alpha {
				sctx.cutoffs.Add(1)
				break
			}
		}
		return best
	}
	best := winScore
	for _, move := range candidates {
		eval := searchChild(state, sctx, rules, move, depth, true, alpha, beta, lossScore)
		best = minOf(best, eval)
		beta = minOf(beta, eval)
		if beta <= alpha {
			sctx.cutoffs.Add(1)
			break
		}
	}
	return best
}

// searchChild applies one move, resolves or recurses, and undoes the move.
// winValue is the extreme value for the player moving at this ply.
func searchChild(state *GameState, sctx *SearchContext, rules Rules, move Move, depth int, childMaximizing bool, alpha, beta, winValue int) int {
	prev := SaveUndo(*state)
	outcome, err := rules.ApplyMove(state, move)
	if err != nil {
		panic(fmt.Sprintf("generated candidate is illegal: %v", err))
	}
	var eval int
	switch outcome {
	case MoveWin:
		eval = winValue
	case MoveDraw:
		eval = drawScore
	default:
		eval = minimax(state, sctx, rules, depth-1, childMaximizing, alpha, beta)
	}
	rules.UndoMove(state, move, prev)
	return eval
}
