// Package engine implements the Klondike solitaire engine backing the
// bridge adapter: dealing, legal-move generation, move application,
// win detection, observation encoding and state (de)serialization.
// States may carry unknown face-down cards; see partial.go.
package engine

import "github.com/solitairelab/klondike/card"

const (
	// NColumns is the number of tableau columns.
	NColumns = 7
	// DeckSize is the number of cards left for the stock after dealing.
	DeckSize = card.NCards - NColumns*(NColumns+1)/2
)

type column struct {
	// hidden holds the face-down cards bottom to top; the last entry is
	// the next card to be revealed. card.Unknown marks cards whose
	// identity the observer does not know.
	hidden []card.Card
	// visible holds the face-up run bottom to top.
	visible []card.Card
}

// Game is the full board state: foundations, tableau columns and the
// combined stock/waste deck. Values are engine-owned; consumers treat
// them as opaque handles and never mutate them directly.
type Game struct {
	// foundations counts the cards stacked per suit; the next needed
	// rank equals the count.
	foundations [card.NSuits]uint8
	columns     [NColumns]column
	// deck is the stock in draw order, bottom first.
	deck     []card.Card
	drawStep int
}

// Clone returns a deep copy. Every move application works on a clone so
// callers can hold on to earlier states.
func (g *Game) Clone() *Game {
	ng := &Game{
		foundations: g.foundations,
		drawStep:    g.drawStep,
		deck:        append([]card.Card(nil), g.deck...),
	}
	for i := range g.columns {
		ng.columns[i] = column{
			hidden:  append([]card.Card(nil), g.columns[i].hidden...),
			visible: append([]card.Card(nil), g.columns[i].visible...),
		}
	}
	return ng
}

// IsWin reports whether all four foundations are complete.
func (g *Game) IsWin() bool {
	for _, n := range g.foundations {
		if n != card.NRanks {
			return false
		}
	}
	return true
}

func (g *Game) foundationAccepts(c card.Card) bool {
	if c.IsUnknown() {
		return false
	}
	return g.foundations[c.Suit()] == c.Rank()
}

func (g *Game) columnEmpty(i int) bool {
	return len(g.columns[i].hidden) == 0 && len(g.columns[i].visible) == 0
}

// HasEmptyColumn reports whether any tableau column is fully cleared.
func (g *Game) HasEmptyColumn() bool {
	for i := range g.columns {
		if g.columnEmpty(i) {
			return true
		}
	}
	return false
}

// ColumnOf returns the index of the column whose visible run contains
// c, or -1.
func (g *Game) ColumnOf(c card.Card) int {
	for i := range g.columns {
		for _, v := range g.columns[i].visible {
			if v == c {
				return i
			}
		}
	}
	return -1
}

// HiddenLen returns the number of face-down cards in a column.
func (g *Game) HiddenLen(col int) int {
	if col < 0 || col >= NColumns {
		return 0
	}
	return len(g.columns[col].hidden)
}

// PeekHidden returns the card that a reveal on the given column would
// expose. The second result is false when the column has no face-down
// cards or the card's identity is unknown.
func (g *Game) PeekHidden(col int) (card.Card, bool) {
	if col < 0 || col >= NColumns || len(g.columns[col].hidden) == 0 {
		return card.Unknown, false
	}
	c := g.columns[col].hidden[len(g.columns[col].hidden)-1]
	return c, !c.IsUnknown()
}

// Foundations returns the per-suit foundation counts.
func (g *Game) Foundations() [card.NSuits]uint8 {
	return g.foundations
}

// DrawStep returns the stock draw step.
func (g *Game) DrawStep() int { return g.drawStep }

// DeckLen returns the number of cards left in the stock.
func (g *Game) DeckLen() int { return len(g.deck) }
