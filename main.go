package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config := DefaultConfig()
	var blackSide, whiteSide string
	var noColor, verbose bool
	flag.Int64Var(&config.Seed, "seed", 0, "tie-break seed, 0 for random")
	flag.IntVar(&config.SearchDepth, "depth", defaultSearchDepth, "plies of lookahead below the root move")
	flag.IntVar(&config.SearchWorkers, "workers", 0, "parallel root tasks, 0 for GOMAXPROCS")
	flag.BoolVar(&config.LogSearchStats, "stats", false, "log per-search statistics")
	flag.StringVar(&config.ObserverAddr, "listen", "", "address for the read-only web observer, empty to disable")
	flag.StringVar(&blackSide, "black", "human", "black player: human or ai")
	flag.StringVar(&whiteSide, "white", "ai", "white player: human or ai")
	flag.BoolVar(&noColor, "no-color", false, "disable colored board rendering")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	config.BlackIsHuman = strings.EqualFold(blackSide, "human")
	config.WhiteIsHuman = strings.EqualFold(whiteSide, "human")
	config.ColoredRenderer = !noColor
	configStore.Update(config)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	out := termenv.NewOutput(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	prompt := func() (Move, bool) {
		for {
			fmt.Print("move (x y)> ")
			if !scanner.Scan() {
				return Move{}, false
			}
			var x, y int
			if _, err := fmt.Sscanf(strings.TrimSpace(scanner.Text()), "%d %d", &x, &y); err != nil {
				fmt.Println("expected two integers, e.g. \"7 7\"")
				continue
			}
			return NewMove(x, y), true
		}
	}

	makePlayer := func(human bool) IPlayer {
		if human {
			return NewHumanPlayer(prompt)
		}
		return NewAIPlayer(config)
	}
	game := NewGame(makePlayer(config.BlackIsHuman), makePlayer(config.WhiteIsHuman))
	game.Start()

	var observer *Observer
	if config.ObserverAddr != "" {
		observer = NewObserver(game)
		observer.Serve(config.ObserverAddr)
		defer observer.Close()
	}

	for game.Running() {
		fmt.Print(renderBoard(out, game.State(), config.ColoredRenderer))
		fmt.Printf("%s to move\n", game.State().Turn())
		outcome, ok, err := game.PlayTurn()
		if err != nil {
			if errors.Is(err, ErrInvalidMove) {
				fmt.Printf("%v\n", err)
				continue
			}
			log.Fatal().Err(err).Msg("move-failed")
		}
		if !ok {
			fmt.Println("no move available, stopping")
			return
		}
		if observer != nil {
			observer.PublishState()
		}
		if outcome != MoveContinues {
			break
		}
	}

	state := game.State()
	fmt.Print(renderBoard(out, state, config.ColoredRenderer))
	switch state.Status {
	case StatusBlackWon:
		fmt.Println("black wins")
	case StatusWhiteWon:
		fmt.Println("white wins")
	case StatusDraw:
		fmt.Println("draw: board is full")
	}
	if line, ok := game.WinningLine(); ok {
		fmt.Printf("winning line: %s\n", formatMoves(line))
	}
}

func formatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, move := range moves {
		parts[i] = fmt.Sprintf("(%d,%d)", move.X, move.Y)
	}
	return strings.Join(parts, " ")
}
