package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/solitairelab/klondike/bridge"
	"github.com/solitairelab/klondike/config"
	"github.com/solitairelab/klondike/heuristics"
	"github.com/solitairelab/klondike/shell"
)

var GitVersion string

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}

	var logger zerolog.Logger
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	if GitVersion != "" {
		logger.Info().Str("version", GitVersion).Msg("klondike advisory shell")
	}

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	eng := bridge.NewLocalEngine()
	sc := shell.NewShellController(eng, cfg.HistoryFile)
	if cfg.WeightsFile != "" {
		if err := sc.LoadWeightsFile(cfg.WeightsFile); err != nil {
			log.Error().Err(err).Str("path", cfg.WeightsFile).Msg("could not load initial weights")
		}
	}
	if cfg.Style != "" {
		if style, err := heuristics.StyleFromString(cfg.Style); err != nil {
			log.Error().Err(err).Msg("ignoring initial style")
		} else {
			sc.SetStyle(style)
		}
	}

	go sc.Loop(sig)

	<-idleConnsClosed
	log.Debug().Msg("shutting down")
}
