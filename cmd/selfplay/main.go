// selfplay plays seeded games with the neutral ranked-move policy and
// writes one JSONL record per turn, for offline policy training.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/solitairelab/klondike/analysis"
	"github.com/solitairelab/klondike/config"
	"github.com/solitairelab/klondike/engine"
	"github.com/solitairelab/klondike/heuristics"
	"github.com/solitairelab/klondike/move"
)

type turnRecord struct {
	Turn           int             `json:"turn"`
	PartialState   json.RawMessage `json:"partial_state"`
	AvailableMoves []string        `json:"available_moves"`
	SelectedMove   string          `json:"selected_move"`
	Win            bool            `json:"win"`
	Style          string          `json:"style"`
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	f, err := os.Create(cfg.SelfplayOut)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create output file")
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	enc := json.NewEncoder(w)
	hcfg := &heuristics.Config{}

	for i := 0; i < cfg.SelfplayGames; i++ {
		if i > 0 && i%1000 == 0 {
			log.Info().Int("done", i).Int("total", cfg.SelfplayGames).Msg("generating games")
		}
		if err := playGame(uint32(i), hcfg, enc); err != nil {
			log.Fatal().Err(err).Msg("selfplay failed")
		}
	}
}

func playGame(seed uint32, hcfg *heuristics.Config, enc *json.Encoder) error {
	g := engine.NewGame(seed)
	seen := map[string]bool{}

	for turn := 0; !g.IsWin(); turn++ {
		// loop guard: stop when a position repeats. Keyed on the full
		// state; distinct positions can share a blind view.
		fullDoc, err := g.ToJSON()
		if err != nil {
			return err
		}
		if seen[string(fullDoc)] {
			break
		}
		seen[string(fullDoc)] = true

		// records carry the observer's view only
		stateDoc, err := g.ToBlindJSON()
		if err != nil {
			return err
		}

		moves := g.LegalMoves()
		if len(moves) == 0 {
			break
		}
		ranked := analysis.RankedMoves(g, heuristics.StyleNeutral, hcfg)
		selected := ranked[0].Move
		g = g.DoMove(selected)

		rec := turnRecord{
			Turn:         turn,
			PartialState: stateDoc,
			AvailableMoves: lo.Map(moves, func(m move.Move, _ int) string {
				return m.String()
			}),
			SelectedMove: selected.String(),
			Win:          g.IsWin(),
			Style:        heuristics.StyleNeutral.String(),
		}
		if err := enc.Encode(&rec); err != nil {
			return err
		}
	}
	return nil
}
