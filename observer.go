package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Observer serves a read-only view of a running game: a status snapshot over
// HTTP and board broadcasts over websocket. Spectators cannot submit moves.
type Observer struct {
	hub  *Hub
	game *Game
	done chan struct{}
}

type statusResponse struct {
	Status     string            `json:"status"`
	NextPlayer int               `json:"next_player"`
	BoardSize  int               `json:"board_size"`
	MoveCount  int               `json:"move_count"`
	History    []historyEntryDTO `json:"history"`
}

type historyEntryDTO struct {
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Player      int     `json:"player"`
	ElapsedMs   float64 `json:"elapsed_ms"`
	IsAi        bool    `json:"is_ai"`
	Score       int     `json:"score"`
	Evaluations uint64  `json:"evaluations"`
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func NewObserver(game *Game) *Observer {
	return &Observer{
		hub:  NewHub(),
		game: game,
		done: make(chan struct{}),
	}
}

// Serve runs the hub and the HTTP listener until Close is called. It returns
// immediately; failures surface in the log.
func (o *Observer) Serve(addr string) {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	router.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, o.statusSnapshot())
	})
	router.Get("/ws", o.handleWS)

	server := &http.Server{Addr: addr, Handler: router}
	group := errgroup.Group{}
	group.Go(func() error {
		o.hub.Run(o.done)
		return nil
	})
	group.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("observer-listen-failed")
		}
		return nil
	})
	go func() {
		<-o.done
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		_ = group.Wait()
	}()
	log.Info().Str("addr", addr).Msg("observer-listening")
}

func (o *Observer) Close() {
	close(o.done)
}

// PublishState pushes the current board to all spectators.
func (o *Observer) PublishState() {
	if !o.hub.HasClients() {
		return
	}
	state := o.game.State()
	o.hub.PublishBoard(boardPayload{
		Board:      boardToRows(state.Board),
		NextPlayer: playerToInt(state.ToMove),
		Status:     state.Status.String(),
		MoveCount:  o.game.History().Size(),
		History:    historyDTOs(o.game.History()),
	})
}

func (o *Observer) statusSnapshot() statusResponse {
	state := o.game.State()
	return statusResponse{
		Status:     state.Status.String(),
		NextPlayer: playerToInt(state.ToMove),
		BoardSize:  BoardSize,
		MoveCount:  o.game.History().Size(),
		History:    historyDTOs(o.game.History()),
	}
}

func (o *Observer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws-upgrade-failed")
		return
	}
	client := &Client{hub: o.hub, send: make(chan []byte, 32)}
	o.hub.Register(client)
	client.sendJSON(wsMessage{Type: "board", Payload: mustMarshal(boardPayload{
		Board:      boardToRows(o.game.State().Board),
		NextPlayer: playerToInt(o.game.State().ToMove),
		Status:     o.game.State().Status.String(),
		MoveCount:  o.game.History().Size(),
		History:    historyDTOs(o.game.History()),
	})})
	go func() {
		defer func() {
			o.hub.Unregister(client)
			conn.Close()
		}()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			log.Debug().Err(err).Msg("ws-client-gone")
		}
	}()
	// Spectators never send anything meaningful; drain until close.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func boardToRows(board Board) [][]int {
	rows := make([][]int, BoardSize)
	for y := 0; y < BoardSize; y++ {
		row := make([]int, BoardSize)
		for x := 0; x < BoardSize; x++ {
			row[x] = int(board.At(x, y))
		}
		rows[y] = row
	}
	return rows
}

func historyDTOs(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	out := make([]historyEntryDTO, len(entries))
	for i, entry := range entries {
		out[i] = historyEntryDTO{
			X:           entry.Move.X,
			Y:           entry.Move.Y,
			Player:      playerToInt(entry.Player),
			ElapsedMs:   entry.ElapsedMs,
			IsAi:        entry.IsAi,
			Score:       entry.Score,
			Evaluations: entry.Evaluations,
		}
	}
	return out
}

func playerToInt(player PlayerColor) int {
	if player == PlayerBlack {
		return 1
	}
	return 2
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(mustMarshal(v))
}
