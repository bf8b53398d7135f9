// Package env wraps the engine adapter in a fixed reset/step contract
// with reward shaping and a stable discrete action space.
package env

import (
	"errors"

	"lukechampine.com/frand"

	"github.com/solitairelab/klondike/bridge"
	"github.com/solitairelab/klondike/move"
)

// Reward shaping. An illegal action and a move into a deadlock share
// the -1 signal; a training loop that needs to tell them apart should
// use Step.Legal.
const (
	RewardIllegal  = -1
	RewardWin      = 100
	RewardProgress = 1
	RewardDeadlock = -1
)

// ErrNotReset is returned by Step before the first Reset.
var ErrNotReset = errors.New("env: Reset must be called before Step")

// Step is the result of one environment transition.
type Step struct {
	// Obs is the encoding of the post-transition state. For an illegal
	// action it encodes the unchanged state.
	Obs    []uint8
	Reward int
	Done   bool
	// Truncated is always false; the environment has no time limit.
	Truncated bool
	// Move is the resolved move token, empty for illegal actions.
	Move string
	// Legal reports whether the action mapped to a legal move.
	Legal bool
}

// Env is a single-episode-at-a-time Klondike environment. Instances are
// not safe for concurrent use; a parallel training loop needs one Env
// per worker.
type Env struct {
	eng   bridge.Engine
	state bridge.GameState
	rng   *frand.RNG
}

func New(eng bridge.Engine) *Env {
	return &Env{eng: eng, rng: frand.New()}
}

// ActionSpaceSize returns the fixed size of the discrete action space.
func (e *Env) ActionSpaceSize() int { return move.NbActions }

// ObservationLen returns the fixed observation length.
func (e *Env) ObservationLen() int { return bridge.ObservationLen }

// Reset starts a new game from a seed drawn from the environment's own
// random source over [0, 2^32-1) and returns the initial observation.
func (e *Env) Reset() []uint8 {
	return e.ResetSeed(uint32(e.rng.Uint64n(1<<32 - 1)))
}

// ResetSeed starts a new game from an explicit seed. The same seed
// always yields the same initial observation.
func (e *Env) ResetSeed(seed uint32) []uint8 {
	e.state = e.eng.NewGame(seed)
	return e.eng.EncodeObservation(e.state)
}

// Step applies the move mapped to the action index. The legal-move set
// and its index mapping are recomputed on every call: the legal set
// changes as the game progresses even though the index space does not.
// An index with no currently-legal move is a defined transition
// (reward -1, state unchanged), not a fault.
func (e *Env) Step(action int) (Step, error) {
	if e.state == nil {
		return Step{}, ErrNotReset
	}

	var mv move.Move
	found := false
	for _, m := range e.eng.LegalMoves(e.state) {
		if e.eng.MoveToActionIndex(m) == action {
			mv = m
			found = true
			break
		}
	}

	if !found {
		return Step{
			Obs:    e.eng.EncodeObservation(e.state),
			Reward: RewardIllegal,
		}, nil
	}

	e.state = e.eng.DoMove(e.state, mv)
	res := Step{Move: mv.String(), Legal: true}
	switch {
	case e.eng.IsWin(e.state):
		res.Reward = RewardWin
		res.Done = true
	case len(e.eng.ValidActions(e.state)) == 0:
		res.Reward = RewardDeadlock
		res.Done = true
	default:
		res.Reward = RewardProgress
	}
	res.Obs = e.eng.EncodeObservation(e.state)
	return res, nil
}

// Render is a no-op; this layer does no drawing.
func (e *Env) Render() {}
