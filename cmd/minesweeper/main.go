package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/amalg/go-minesweeper/internal/game"
	"github.com/amalg/go-minesweeper/internal/ui"
)

func main() {
	presetName := flag.StringP("preset", "p", game.Easy.Name, "Starting difficulty: easy, medium or hard")
	onLoss := flag.String("on-loss", ui.KeepBoard.String(), "What to do after hitting a mine: keep, same or easy")
	seed := flag.Uint64("seed", 0, "Seed for mine layouts (0 picks a random seed)")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	logLevel := flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	flag.Parse()

	preset, err := game.ParsePreset(*presetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	policy, err := ui.ParseRestartPolicy(*onLoss)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Redirect logs before anything else runs: any stderr output corrupts
	// Bubbletea's terminal rendering.
	closeLog, err := setupLogging(*logFile, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	r := game.NewRand()
	if *seed != 0 {
		r = game.NewSeededRand(*seed)
	}
	engine := game.NewEngine(r)
	if err := engine.NewPresetGame(preset); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	game.Log.WithFields(logrus.Fields{
		"preset":  preset.Name,
		"on_loss": policy.String(),
		"seed":    *seed,
	}).Info("starting")

	// Start the TUI, this takes over the terminal completely
	model := ui.NewModel(engine, preset, policy)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging points both loggers at the log file, or discards their
// output when no file is given.
func setupLogging(path, level string) (func(), error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = io.Discard
	closeLog := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}

	for _, l := range []*logrus.Logger{game.Log, ui.Log} {
		l.SetOutput(out)
		l.SetLevel(lvl)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return closeLog, nil
}
