package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Game owns the rules, the authoritative state, the players and the move
// history. Front ends drive it one turn at a time; the observer reads it from
// other goroutines, hence the lock.
type Game struct {
	mu          sync.RWMutex
	rules       Rules
	state       GameState
	history     MoveHistory
	blackPlayer IPlayer
	whitePlayer IPlayer
	turnStart   time.Time
}

func NewGame(black, white IPlayer) *Game {
	g := &Game{
		rules:       NewRules(),
		blackPlayer: black,
		whitePlayer: white,
	}
	g.state.Reset()
	return g
}

func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
		log.Info().
			Str("black", playerLabel(g.blackPlayer)).
			Str("white", playerLabel(g.whitePlayer)).
			Msg("game-started")
	}
}

func (g *Game) State() GameState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return MoveHistory{entries: g.history.All()}
}

func (g *Game) Running() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Status == StatusRunning
}

func (g *Game) CurrentPlayer() IPlayer {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.currentPlayerLocked()
}

func (g *Game) currentPlayerLocked() IPlayer {
	if g.state.ToMove == PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

// PlayTurn asks the current player for a move and applies it. A false second
// return means the player produced no move (resign/EOF for humans, full board
// for the AI).
func (g *Game) PlayTurn() (MoveOutcome, bool, error) {
	player := g.CurrentPlayer()
	move, ok := player.ChooseMove(g.State())
	if !ok {
		return MoveContinues, false, nil
	}
	outcome, err := g.TryApplyMove(move)
	return outcome, true, err
}

// TryApplyMove applies one move for the side to move, recording it in the
// history. ErrInvalidMove passes through with the state untouched.
func (g *Game) TryApplyMove(move Move) (MoveOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.Status != StatusRunning {
		return MoveContinues, fmt.Errorf("game is not running (status %s)", g.state.Status)
	}
	mover := g.state.ToMove
	player := g.currentPlayerLocked()
	outcome, err := g.rules.ApplyMove(&g.state, move)
	if err != nil {
		return outcome, err
	}
	elapsedMs := float64(time.Since(g.turnStart).Microseconds()) / 1000.0
	entry := HistoryEntry{
		Move:      move,
		Player:    mover,
		ElapsedMs: elapsedMs,
		IsAi:      player != nil && !player.IsHuman(),
	}
	if ai, isAi := player.(*AIPlayer); isAi {
		if result, ok := ai.LastResult(); ok {
			entry.Score = result.Score
			entry.Evaluations = result.Stats.Evaluations
		}
	}
	g.history.Push(entry)
	g.logMovePlayed(entry)
	switch outcome {
	case MoveWin:
		log.Info().Str("winner", mover.String()).Msg("game-over")
	case MoveDraw:
		log.Info().Msg("game-drawn")
	default:
		g.turnStart = time.Now()
	}
	return outcome, nil
}

// WinningLine reports the five-or-more run that ended the game, if any.
func (g *Game) WinningLine() ([]Move, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.state.Status != StatusBlackWon && g.state.Status != StatusWhiteWon {
		return nil, false
	}
	return g.rules.FindAlignmentLine(g.state.Board, g.state.LastMove)
}

func (g *Game) logMovePlayed(entry HistoryEntry) {
	event := log.Info().
		Int("x", entry.Move.X).
		Int("y", entry.Move.Y).
		Str("player", entry.Player.String()).
		Float64("elapsed_ms", entry.ElapsedMs).
		Bool("ai", entry.IsAi)
	if entry.IsAi {
		event = event.Int("score", entry.Score).Uint64("evaluations", entry.Evaluations)
	}
	event.Msg("move-played")
}

func playerLabel(player IPlayer) string {
	if player == nil {
		return "none"
	}
	if player.IsHuman() {
		return "human"
	}
	return "ai"
}
