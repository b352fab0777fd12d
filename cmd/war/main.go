package main

import (
	"fmt"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"os"
	"strings"
	"warsim/internal/config"
	"warsim/internal/rng"
	"warsim/internal/util"
	"warsim/pkg/trace"
	"warsim/pkg/war"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

func main() {
	cfg := config.Instance()
	setupLogger(cfg)

	logrus.WithField("version", Version).WithField("seed", cfg.Seed).Debug("starting game")
	if err := run(cfg, logrus.StandardLogger()); err != nil {
		logrus.WithError(err).Fatal("could not play game")
	}
}

// run plays a single game and renders its trace
// The renderer is built first so a bad output setting fails before any cards are dealt.
func run(cfg config.Config, logger logrus.FieldLogger) error {
	renderer, err := newRenderer(cfg)
	if err != nil {
		return fmt.Errorf("could not create renderer: %w", err)
	}

	gen := rng.FromSeed(cfg.Seed)
	game, err := war.NewGame(logger, options(cfg, gen))
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	log, err := game.Run(gen)
	if err != nil {
		return err
	}

	return renderer.Render(log)
}

func options(cfg config.Config, gen rng.Generator) war.Options {
	opts := war.DefaultOptions()
	if cfg.Players.Random {
		opts.PlayerOne, opts.PlayerTwo = util.GetRandomNames(gen)
		return opts
	}

	if cfg.Players.One != "" {
		opts.PlayerOne = cfg.Players.One
	}

	if cfg.Players.Two != "" {
		opts.PlayerTwo = cfg.Players.Two
	}

	return opts
}

func newRenderer(cfg config.Config) (trace.Renderer, error) {
	output, err := trace.ParseOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	switch output {
	case trace.OutputLog:
		return trace.NewLogger(logrus.StandardLogger()), nil
	case trace.OutputConsole:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			pterm.DisableStyling()
		}

		c := trace.NewConsole(os.Stdout)
		c.ShowHands = cfg.ShowHands
		return c, nil
	}

	return nil, fmt.Errorf("unsupported output: %s", output)
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
