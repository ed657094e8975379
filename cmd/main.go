package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/rankmatch/config"
	"github.com/luca-patrignani/rankmatch/console"
	"github.com/luca-patrignani/rankmatch/domain/deck"
	"github.com/luca-patrignani/rankmatch/domain/game"
	"github.com/luca-patrignani/rankmatch/ledger"
	"github.com/luca-patrignani/rankmatch/logger"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [config.yaml]\n", os.Args[0])
		os.Exit(1)
	}
	path := ""
	if len(os.Args) == 2 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Setup(cfg.LogLevel, os.Stderr)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("R", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ank ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("M", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("atch", pterm.FgDarkGray.ToStyle()),
	).Render()

	opts, err := buildOptions(cfg)
	if err != nil {
		log.Error("invalid game options", "error", err)
		os.Exit(1)
	}
	history := ledger.NewBlockchain(opts.SessionID)
	opts.Recorder = history
	opts.Logger = log
	if cfg.Interactive {
		opts.Console = console.NewInteractiveConsole()
	} else {
		opts.Console = console.NewLineConsole(os.Stdin, os.Stdout)
	}
	opts.Render = func(s *game.Session) {
		var panels []pterm.Panel
		if latest, err := history.GetLatest(); err == nil && latest.Index > 0 {
			panels = append(panels, getTurnPanel(latest.Turn))
		}
		pterm.Print(renderState(s, opts.Rule, panels...))
	}

	engine := game.NewEngine(opts)
	pterm.Info.Printfln("Shuffling the deck %d times and dealing %d cards to %d players ...",
		cfg.ShufflePasses, cfg.HandSize, len(cfg.Players))
	if err := engine.Setup(); err != nil {
		pterm.Error.Println("Could not set up the game")
		log.Error("setup failed", "error", err)
		os.Exit(1)
	}

	if err := run(engine); err != nil {
		engine.Stop()
		if errors.Is(err, io.EOF) {
			pterm.Info.Println("Input closed, leaving the game.")
			return
		}
		log.Error("game aborted", "error", err)
		os.Exit(1)
	}

	if winner, ok := engine.Winner(); ok {
		p, err := engine.Session().Player(winner)
		if err != nil {
			log.Error("winner left the table", "winner", winner, "error", err)
			os.Exit(1)
		}
		pterm.DefaultPanel.WithPanels([][]pterm.Panel{
			{getWinnerPanel(winner, p.Score(opts.Rule))},
		}).Render()
	}
	if err := verifyHistory(history, log); err == nil && history.Len() > 1 {
		if err := pterm.DefaultTable.WithHasHeader().WithData(historyTable(history)).Render(); err != nil {
			log.Warn("could not render the turn history", "error", err)
		}
	}
	engine.Stop()
}

// run plays rounds until a player finishes the game.
func run(engine *game.Engine) error {
	for {
		more, err := engine.PlayRound()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func buildOptions(cfg *config.Config) (game.Options, error) {
	rule, err := game.RuleByName(cfg.ScoringRule)
	if err != nil {
		return game.Options{}, err
	}
	opts := game.DefaultOptions()
	opts.SessionID = uuid.New()
	opts.Players = cfg.Players
	opts.HandSize = cfg.HandSize
	opts.ShufflePasses = cfg.ShufflePasses
	opts.FinishThreshold = cfg.FinishThreshold
	opts.Rule = rule
	switch cfg.ShuffleSource {
	case "crypto":
		opts.Source = deck.NewCryptoSource()
	case "math":
		opts.Source = deck.NewMathSource(cfg.Seed)
	default:
		return game.Options{}, fmt.Errorf("unknown shuffle source %q", cfg.ShuffleSource)
	}
	return opts, nil
}

// verifyHistory checks the hash chain and replays it into a summary.
func verifyHistory(history *ledger.Blockchain, log *slog.Logger) error {
	if err := history.Verify(); err != nil {
		log.Error("turn history is corrupted", "error", err)
		return err
	}
	turns := history.Turns()
	laid, mismatches := 0, 0
	for _, turn := range turns {
		laid += len(turn.Laid)
		if ledger.Event(turn) == "mismatch" {
			mismatches++
		}
	}
	log.Info("turn history verified", "turns", len(turns), "laid", laid, "mismatches", mismatches)
	return nil
}
