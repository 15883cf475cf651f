package main

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// AIPlayer wraps a Searcher behind the IPlayer interface and keeps the last
// search result around for history entries and logging.
type AIPlayer struct {
	mu         sync.Mutex
	searcher   *Searcher
	lastResult SearchResult
	hasResult  bool
}

func NewAIPlayer(config Config) *AIPlayer {
	return &AIPlayer{searcher: NewSearcher(config)}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) ChooseMove(state GameState) (Move, bool) {
	result := a.searcher.BestMove(state)
	a.mu.Lock()
	a.lastResult = result
	a.hasResult = true
	a.mu.Unlock()
	if GetConfig().LogSearchStats {
		log.Debug().
			Int("candidates", result.Stats.Candidates).
			Uint64("nodes", result.Stats.Nodes).
			Uint64("cutoffs", result.Stats.Cutoffs).
			Uint64("evaluations", result.Stats.Evaluations).
			Uint64("cache_hits", result.Stats.CacheHits).
			Dur("elapsed", result.Stats.Elapsed).
			Msg("search-stats")
	}
	return result.Move, result.HasMove
}

func (a *AIPlayer) LastResult() (SearchResult, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastResult, a.hasResult
}
