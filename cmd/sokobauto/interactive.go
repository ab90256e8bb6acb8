package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"sokobauto/board"
	"sokobauto/levelfmt"
	"sokobauto/puzzle"
)

// runInteractive plays the level on the terminal: one line of input per
// move (w/a/s/d, u/l/r, or up/down/left/right; d is right), q to quit. Rendering is the plain ASCII form;
// there is no TUI layer.
func runInteractive(logger *slog.Logger, b *board.Board, state puzzle.GameState) int {
	reader := bufio.NewScanner(os.Stdin)
	targets := b.Targets()
	moves := 0

	for {
		fmt.Print(levelfmt.Render(b, state))
		if state.Boxes.CoversAll(targets) {
			fmt.Printf("solved in %d moves\n", moves)
			return 0
		}
		fmt.Print("move (w/a/s/d, q to quit): ")
		if !reader.Scan() {
			fmt.Println()
			return 0
		}

		input := strings.TrimSpace(strings.ToLower(reader.Text()))
		if input == "q" || input == "quit" {
			return 0
		}
		dir, ok := parseDirection(input)
		if !ok {
			fmt.Println("unknown input")
			continue
		}

		next, kind, err := puzzle.Step(b, state, board.Move(dir))
		if err != nil {
			// Illegal moves are a routine filter, not a failure.
			logger.Debug("illegal move", "dir", dir, "err", err)
			continue
		}
		state = next
		moves++
		logger.Debug("stepped", "dir", dir, "kind", kind)
	}
}

func parseDirection(input string) (board.Direction, bool) {
	switch input {
	case "w", "u", "up":
		return board.Up, true
	case "s", "down":
		return board.Down, true
	case "a", "l", "left":
		return board.Left, true
	case "d", "r", "right":
		return board.Right, true
	default:
		return 0, false
	}
}
