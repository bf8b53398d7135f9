// Package analysis ranks legal moves with expert-inspired heuristics
// and picks moves under hidden information with a sampled Monte-Carlo
// search.
package analysis

import (
	"sort"

	"github.com/solitairelab/klondike/card"
	"github.com/solitairelab/klondike/engine"
	"github.com/solitairelab/klondike/heuristics"
	"github.com/solitairelab/klondike/move"
)

// longColumnThreshold is the face-down depth past which digging a
// column out earns the long-column bonus.
const longColumnThreshold = 3

// RankedMove is a legal move annotated with its evaluation.
type RankedMove struct {
	Move           move.Move
	HeuristicScore int
	// WinRate is the rollout average filled in by BestMoveMCTS.
	WinRate float64
}

// RankedMoves evaluates every legal move of the state and returns them
// sorted best first. Unset config fields resolve to engine defaults.
func RankedMoves(g *engine.Game, style heuristics.Style, cfg *heuristics.Config) []RankedMove {
	w := cfg.Resolve()
	moves := g.LegalMoves()
	res := make([]RankedMove, 0, len(moves))
	for _, m := range moves {
		res = append(res, RankedMove{
			Move:           m,
			HeuristicScore: evaluateMove(g, m, style, w),
		})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].HeuristicScore > res[j].HeuristicScore
	})
	return res
}

func evaluateMove(g *engine.Game, m move.Move, style heuristics.Style, w heuristics.Weights) int {
	c := m.Card()
	hasEmpty := g.HasEmptyColumn()
	score := 0

	switch m.Kind() {
	case move.Reveal:
		score += w.RevealBonus
		col := g.ColumnOf(c)
		if g.HiddenLen(col) > longColumnThreshold {
			score += w.LongColumnBonus
		}
		if hasEmpty && c.IsKing() {
			score += w.EmptyColumnBonus
		}
		if enablesChain(g, m, col) {
			score += w.ChainBonus
		}

	case move.PileStack:
		// sending A-5 up early starves the tableau of low cards
		if c.Rank() < 5 {
			score += w.EarlyFoundationPenalty
		}
		col := g.ColumnOf(c)
		if down := g.HiddenLen(col); down > 0 && down > longColumnThreshold {
			score += w.LongColumnBonus
		}
		if enablesChain(g, m, col) {
			score += w.ChainBonus
		}

	case move.DeckPile, move.StackPile:
		if c.IsKing() && hasEmpty {
			score += w.EmptyColumnBonus
		}
		if c.IsKing() && g.HiddenLen(engine.NColumns-1) == 0 {
			score += w.KeepKingBonus
		}
	}

	// a won game also has zero legal moves; only a live dead end is a deadlock
	if next := g.DoMove(m); !next.IsWin() && len(next.LegalMoves()) == 0 {
		score += w.DeadlockPenalty
	}

	score += w.StyleCoef(style)
	return score
}

// enablesChain reports whether applying m exposes a card that is
// immediately playable, setting up a follow-up move on the same column.
func enablesChain(g *engine.Game, m move.Move, col int) bool {
	next, known := g.PeekHidden(col)
	if !known {
		return false
	}
	after := g.DoMove(m)
	for _, mv := range after.LegalMoves() {
		if mv.Card() == next {
			return true
		}
	}
	return false
}

// StateAnalysis summarizes a partially known state.
type StateAnalysis struct {
	// UnknownCards counts slots whose card identity is unknown.
	UnknownCards int
	// RemainingCards lists cards absent from the information set.
	RemainingCards []card.Card
	// BlockedColumns counts columns whose exposed run cannot move.
	BlockedColumns int
	// Mobility is the legal-move count of a deterministic fill.
	Mobility int
	// DeadlockRisk is a rough risk estimate in [0, 1].
	DeadlockRisk float64
}

// AnalyzeState computes basic metrics for a partially known state.
// Unknown slots are filled with a fixed-seed sample so the metrics are
// reproducible.
func AnalyzeState(g *engine.Game) StateAnalysis {
	unknown := g.UnknownCount()
	remaining := g.RemainingCards()

	filled := g.FillUnknowns(engine.AnalysisRNG())
	mobility := len(filled.LegalMoves())

	blocked := 0
	for col := 0; col < engine.NColumns; col++ {
		if g.ColumnBlocked(col) {
			blocked++
		}
	}

	risk := float64(blocked) / float64(engine.NColumns)
	if mobility == 0 && unknown == 0 {
		risk = 1.0
	}

	return StateAnalysis{
		UnknownCards:   unknown,
		RemainingCards: remaining,
		BlockedColumns: blocked,
		Mobility:       mobility,
		DeadlockRisk:   risk,
	}
}
