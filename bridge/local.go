package bridge

import (
	"lukechampine.com/frand"

	"github.com/samber/lo"

	"github.com/solitairelab/klondike/analysis"
	"github.com/solitairelab/klondike/card"
	"github.com/solitairelab/klondike/engine"
	"github.com/solitairelab/klondike/heuristics"
	"github.com/solitairelab/klondike/move"
)

// LocalEngine adapts the in-process engine to the Engine contract.
// It is single-threaded: the search RNG is owned by the instance and
// no cross-instance synchronization is performed.
type LocalEngine struct {
	rng *frand.RNG
}

func NewLocalEngine() *LocalEngine {
	return &LocalEngine{rng: frand.New()}
}

func (e *LocalEngine) game(st GameState) *engine.Game {
	return st.(*engine.Game)
}

func (e *LocalEngine) NewGame(seed uint32) GameState {
	return engine.NewGame(seed)
}

func (e *LocalEngine) LegalMoves(st GameState) []move.Move {
	return e.game(st).LegalMoves()
}

func (e *LocalEngine) DoMove(st GameState, m move.Move) GameState {
	return e.game(st).DoMove(m)
}

func (e *LocalEngine) IsWin(st GameState) bool {
	return e.game(st).IsWin()
}

func (e *LocalEngine) EncodeObservation(st GameState) []uint8 {
	return e.game(st).EncodeObservation()
}

func (e *LocalEngine) MoveToActionIndex(m move.Move) int {
	return m.ActionIndex()
}

func (e *LocalEngine) ValidActions(st GameState) []int {
	return lo.FilterMap(e.game(st).LegalMoves(), func(m move.Move, _ int) (int, bool) {
		idx := m.ActionIndex()
		return idx, idx >= 0
	})
}

func (e *LocalEngine) RankedMoves(st GameState, style heuristics.Style, cfg *heuristics.Config) []analysis.RankedMove {
	return analysis.RankedMoves(e.game(st), style, cfg)
}

func (e *LocalEngine) BestMoveMCTS(st GameState, style heuristics.Style, cfg *heuristics.Config, playouts, depth int) (move.Move, bool) {
	rm, ok := analysis.BestMoveMCTS(e.game(st), style, cfg, playouts, depth, e.rng)
	return rm.Move, ok
}

func (e *LocalEngine) ColumnProbabilities(st GameState) [][]card.Prob {
	return e.game(st).ColumnProbabilities()
}

func (e *LocalEngine) StateToJSON(st GameState) ([]byte, error) {
	return e.game(st).ToJSON()
}

func (e *LocalEngine) StateFromJSON(data []byte) (GameState, error) {
	return engine.FromJSON(data)
}
