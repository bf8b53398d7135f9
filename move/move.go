package move

import (
	"fmt"
	"strings"

	"github.com/solitairelab/klondike/card"
)

// NbActions is the size of the discrete action space. It is the single
// source of truth for the action dimension; the environment and the
// policy-value network both derive from it.
const NbActions = 256

// Kind is the type of a Klondike move.
type Kind uint8

const (
	// DeckPile moves a reachable deck card onto a tableau pile.
	DeckPile Kind = iota
	// DeckStack moves a reachable deck card onto its foundation.
	DeckStack
	// PileStack moves a tableau pile's top card onto its foundation.
	PileStack
	// StackPile moves a foundation's top card back onto a tableau pile.
	StackPile
	// Reveal moves the run starting at a column's bottom-most visible
	// card onto another pile, exposing the next face-down card.
	Reveal
)

var kindTokens = [...]string{"DP", "DS", "PS", "SP", "R"}

// Move is one entry of the engine's move vocabulary. A move is fully
// identified by its kind and the card it acts on; the destination pile
// is resolved deterministically by the engine.
type Move struct {
	kind Kind
	card card.Card
}

func New(kind Kind, c card.Card) Move {
	return Move{kind: kind, card: c}
}

func (m Move) Kind() Kind { return m.kind }

func (m Move) Card() card.Card { return m.card }

// String renders the short token form, e.g. "DP 5H" or "R KS".
func (m Move) String() string {
	return kindTokens[m.kind] + " " + m.card.String()
}

// Parse converts a short token back into a Move.
func Parse(tok string) (Move, error) {
	fields := strings.Fields(tok)
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("bad move token %q", tok)
	}
	var kind Kind
	found := false
	for i, kt := range kindTokens {
		if strings.EqualFold(fields[0], kt) {
			kind = Kind(i)
			found = true
			break
		}
	}
	if !found {
		return Move{}, fmt.Errorf("bad move kind %q", fields[0])
	}
	c, err := card.Parse(fields[1])
	if err != nil {
		return Move{}, err
	}
	return Move{kind: kind, card: c}, nil
}

// ActionIndex maps a move to its stable index in [0, NbActions). The
// mapping is a pure function of the move, never of the state. Aces
// never move back from a foundation to a pile, so the StackPile block
// spans only the 48 non-ace cards; that is what makes five kinds fit
// in 256 slots. Moves outside the producible vocabulary map to -1.
func (m Move) ActionIndex() int {
	if m.card.IsUnknown() {
		return -1
	}
	v := int(m.card.Value())
	switch m.kind {
	case DeckPile:
		return v
	case DeckStack:
		return 52 + v
	case PileStack:
		return 104 + v
	case StackPile:
		if m.card.IsAce() {
			return -1
		}
		return 156 + (v - card.NSuits)
	case Reveal:
		return 204 + v
	}
	return -1
}
