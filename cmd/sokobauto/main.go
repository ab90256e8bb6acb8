// Command sokobauto explores the state space of a Sokoban-style level.
//
// Usage:
//
//	sokobauto [interactive|graph] [flags]
//
// The first argument selects the sub-mode: interactive (play the level on
// the terminal, the default) or graph (explore the full state space, trim
// it, and optionally export it as JSON). Exit code 0 on normal
// termination, non-zero on I/O or parse errors.
package main

import (
	"flag"
	"log/slog"
	"os"

	"sokobauto/levelfmt"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	mode := "interactive"
	if len(args) > 0 && (args[0] == "interactive" || args[0] == "graph") {
		mode = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("sokobauto", flag.ContinueOnError)
	levelPath := fs.String("level", "", "path to an ASCII level file (defaults to a built-in demo level)")
	jsonOut := fs.String("json", "", "graph mode: write the explored graph as JSON to this file")
	noTrim := fs.Bool("no-trim", false, "graph mode: skip the win-reachability trim")
	noHeuristic := fs.Bool("no-heuristic", false, "graph mode: disable dead-state successor pruning")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	levelText := demoLevel
	if *levelPath != "" {
		data, err := os.ReadFile(*levelPath)
		if err != nil {
			logger.Error("read level", "path", *levelPath, "err", err)
			return 1
		}
		levelText = string(data)
	}

	b, initial, err := levelfmt.Parse(levelText)
	if err != nil {
		logger.Error("parse level", "err", err)
		return 1
	}
	logger.Debug("level parsed",
		"width", b.Width(), "height", b.Height(),
		"targets", b.TotalTargets(), "boxes", initial.Boxes.Len())

	switch mode {
	case "graph":
		return runGraph(logger, b, initial, graphConfig{
			jsonOut:   *jsonOut,
			trim:      !*noTrim,
			heuristic: !*noHeuristic,
		})
	default:
		return runInteractive(logger, b, initial)
	}
}

// demoLevel is a small built-in puzzle used when -level is not given.
const demoLevel = `
####
# .#
#  ###
#*@  #
#  $ #
#  ###
####
`
