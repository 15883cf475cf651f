package main

// HumanPlayer asks an injected prompt for the next coordinate. The prompt
// belongs to the front end; legality is the game loop's problem.
type HumanPlayer struct {
	prompt func() (Move, bool)
}

func NewHumanPlayer(prompt func() (Move, bool)) *HumanPlayer {
	return &HumanPlayer{prompt: prompt}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) ChooseMove(state GameState) (Move, bool) {
	if h.prompt == nil {
		return Move{}, false
	}
	return h.prompt()
}
