package analysis

import (
	"lukechampine.com/frand"

	"github.com/solitairelab/klondike/engine"
	"github.com/solitairelab/klondike/heuristics"
)

// Search defaults used when the caller passes no overrides.
const (
	DefaultPlayouts = 3
	DefaultDepth    = 10

	// samples is the number of determinized fills evaluated per move.
	samples = 3
	// winScore is the rollout reward for reaching a won game.
	winScore = 10
)

// BestMoveMCTS runs a light Monte-Carlo search over determinized
// samples of the hidden cards and returns the move with the best
// rollout average. playouts is the number of rollouts per sample and
// depth the rollout move budget; zero or negative values select the
// engine defaults. The second result is false when the state has no
// legal moves.
func BestMoveMCTS(g *engine.Game, style heuristics.Style, cfg *heuristics.Config, playouts, depth int, rng *frand.RNG) (RankedMove, bool) {
	if playouts <= 0 {
		playouts = DefaultPlayouts
	}
	if depth <= 0 {
		depth = DefaultDepth
	}

	filled := g.FillUnknowns(rng)
	moves := RankedMoves(filled, style, cfg)
	if len(moves) == 0 {
		return RankedMove{}, false
	}

	best := -1
	for i := range moves {
		if filled.DoMove(moves[i].Move).IsWin() {
			// an immediate win beats any rollout estimate
			moves[i].WinRate = float64(winScore * playouts)
			return moves[i], true
		}
		total := 0.0
		for s := 0; s < samples; s++ {
			child := g.FillUnknowns(rng).DoMove(moves[i].Move)
			total += float64(rollout(child, playouts, depth, rng))
		}
		moves[i].WinRate = total / samples
		if best < 0 || moves[i].WinRate > moves[best].WinRate {
			best = i
		}
	}
	return moves[best], true
}

func rollout(g *engine.Game, playouts, depth int, rng *frand.RNG) int {
	score := 0
	for p := 0; p < playouts; p++ {
		if g.IsWin() {
			score += winScore
			continue
		}
		tmp := g
		for d := 0; d < depth; d++ {
			list := tmp.LegalMoves()
			if len(list) == 0 {
				break
			}
			tmp = tmp.DoMove(list[rng.Intn(len(list))])
			if tmp.IsWin() {
				score += winScore
				break
			}
		}
	}
	return score
}
