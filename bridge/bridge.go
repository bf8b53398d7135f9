// Package bridge defines the contract between the solitaire solving
// engine and its consumers: the RL environment, the advisory shell and
// the policy-value predictor. Consumers depend only on the Engine
// interface, never on engine internals, so a test double can stand in
// for the real engine.
package bridge

import (
	"github.com/solitairelab/klondike/analysis"
	"github.com/solitairelab/klondike/card"
	"github.com/solitairelab/klondike/engine"
	"github.com/solitairelab/klondike/heuristics"
	"github.com/solitairelab/klondike/move"
)

// ObservationLen is the fixed length of every encoded observation.
const ObservationLen = engine.ObservationLen

// GameState is an opaque, engine-owned state handle. Consumers never
// inspect or mutate it; they only pass it back to the engine.
type GameState any

// Engine enumerates exactly the operations this layer consumes from the
// solving engine. Every call is synchronous and runs to completion.
type Engine interface {
	// NewGame deals a reproducible game from a seed.
	NewGame(seed uint32) GameState
	// LegalMoves lists the legal moves of a state.
	LegalMoves(st GameState) []move.Move
	// DoMove applies a legal move and returns the successor state.
	DoMove(st GameState, m move.Move) GameState
	// IsWin reports whether the state is won.
	IsWin(st GameState) bool
	// EncodeObservation projects a state onto a fixed-length byte
	// vector of ObservationLen slots.
	EncodeObservation(st GameState) []uint8
	// MoveToActionIndex maps a move to its stable action index, or -1
	// for a move outside the producible vocabulary. The mapping is a
	// pure function of the move, never of the state.
	MoveToActionIndex(m move.Move) int
	// ValidActions lists the action indices of the legal moves.
	ValidActions(st GameState) []int
	// RankedMoves scores the legal moves under a style and config,
	// best first.
	RankedMoves(st GameState, style heuristics.Style, cfg *heuristics.Config) []analysis.RankedMove
	// BestMoveMCTS searches for a move; playouts and depth of zero
	// select engine defaults. The bool is false when no move exists.
	BestMoveMCTS(st GameState, style heuristics.Style, cfg *heuristics.Config, playouts, depth int) (move.Move, bool)
	// ColumnProbabilities estimates per-column hidden-card odds.
	ColumnProbabilities(st GameState) [][]card.Prob
	// StateToJSON serializes a state.
	StateToJSON(st GameState) ([]byte, error)
	// StateFromJSON deserializes a state document.
	StateFromJSON(data []byte) (GameState, error)
}
