package engine

import (
	"github.com/solitairelab/klondike/card"
	"github.com/solitairelab/klondike/move"
)

// reachableDeckIndices returns the stock positions a player can draw to
// under the current draw step: every step-th card plus the final one.
// This is the standard solver approximation of stock cycling with
// unlimited redeals.
func (g *Game) reachableDeckIndices() []int {
	var idx []int
	n := len(g.deck)
	for i := 0; i < n; i++ {
		if (i+1)%g.drawStep == 0 || i == n-1 {
			idx = append(idx, i)
		}
	}
	return idx
}

// pileDestination resolves the column a card (or run starting at that
// card) lands on: the leftmost column whose top accepts it, falling
// back to the leftmost empty column for kings. exclude skips the source
// column; pass -1 for deck and foundation moves.
func (g *Game) pileDestination(c card.Card, exclude int) int {
	for i := range g.columns {
		if i == exclude || len(g.columns[i].visible) == 0 {
			continue
		}
		top := g.columns[i].visible[len(g.columns[i].visible)-1]
		if c.GoesOn(top) {
			return i
		}
	}
	if c.IsKing() {
		for i := range g.columns {
			if i != exclude && g.columnEmpty(i) {
				return i
			}
		}
	}
	return -1
}

// LegalMoves enumerates the legal moves of the state in a fixed order:
// deck moves in stock order, then pile-to-foundation by column, then
// foundation-to-pile by suit, then reveals by column.
func (g *Game) LegalMoves() []move.Move {
	var res []move.Move
	seen := map[move.Move]bool{}
	add := func(m move.Move) {
		if !seen[m] {
			seen[m] = true
			res = append(res, m)
		}
	}

	for _, i := range g.reachableDeckIndices() {
		c := g.deck[i]
		if c.IsUnknown() {
			continue
		}
		if g.foundationAccepts(c) {
			add(move.New(move.DeckStack, c))
		}
		if g.pileDestination(c, -1) >= 0 {
			add(move.New(move.DeckPile, c))
		}
	}

	for i := range g.columns {
		vis := g.columns[i].visible
		if len(vis) == 0 {
			continue
		}
		if top := vis[len(vis)-1]; g.foundationAccepts(top) {
			add(move.New(move.PileStack, top))
		}
	}

	for suit := uint8(0); suit < card.NSuits; suit++ {
		n := g.foundations[suit]
		if n < 2 {
			// aces never come back down
			continue
		}
		c := card.New(n-1, suit)
		if g.pileDestination(c, -1) >= 0 {
			add(move.New(move.StackPile, c))
		}
	}

	for i := range g.columns {
		vis := g.columns[i].visible
		if len(vis) == 0 {
			continue
		}
		bottom := vis[0]
		if bottom.IsUnknown() {
			continue
		}
		if bottom.IsKing() && len(g.columns[i].hidden) == 0 {
			// moving a king run off a cleared column is a null move
			continue
		}
		if g.pileDestination(bottom, i) >= 0 {
			add(move.New(move.Reveal, bottom))
		}
	}
	return res
}

// flip turns up the next face-down card of a column whose visible run
// was just emptied.
func (g *Game) flip(col int) {
	c := &g.columns[col]
	if len(c.visible) == 0 && len(c.hidden) > 0 {
		last := len(c.hidden) - 1
		c.visible = append(c.visible, c.hidden[last])
		c.hidden = c.hidden[:last]
	}
}

func (g *Game) removeFromDeck(c card.Card) bool {
	for _, i := range g.reachableDeckIndices() {
		if g.deck[i] == c {
			g.deck = append(g.deck[:i], g.deck[i+1:]...)
			return true
		}
	}
	return false
}

// DoMove applies a move and returns the resulting state, leaving the
// receiver untouched. Moves are expected to come from LegalMoves; a
// move that does not apply to this state returns an unchanged copy.
func (g *Game) DoMove(m move.Move) *Game {
	ng := g.Clone()
	c := m.Card()

	switch m.Kind() {
	case move.DeckPile:
		dest := ng.pileDestination(c, -1)
		if dest < 0 || !ng.removeFromDeck(c) {
			return ng
		}
		ng.columns[dest].visible = append(ng.columns[dest].visible, c)

	case move.DeckStack:
		if !ng.foundationAccepts(c) || !ng.removeFromDeck(c) {
			return ng
		}
		ng.foundations[c.Suit()]++

	case move.PileStack:
		col := ng.ColumnOf(c)
		if col < 0 || !ng.foundationAccepts(c) {
			return ng
		}
		vis := ng.columns[col].visible
		if vis[len(vis)-1] != c {
			return ng
		}
		ng.columns[col].visible = vis[:len(vis)-1]
		ng.foundations[c.Suit()]++
		ng.flip(col)

	case move.StackPile:
		suit := c.Suit()
		if ng.foundations[suit] == 0 || card.New(ng.foundations[suit]-1, suit) != c {
			return ng
		}
		dest := ng.pileDestination(c, -1)
		if dest < 0 {
			return ng
		}
		ng.foundations[suit]--
		ng.columns[dest].visible = append(ng.columns[dest].visible, c)

	case move.Reveal:
		col := ng.ColumnOf(c)
		if col < 0 || ng.columns[col].visible[0] != c {
			return ng
		}
		dest := ng.pileDestination(c, col)
		if dest < 0 {
			return ng
		}
		run := ng.columns[col].visible
		ng.columns[col].visible = nil
		ng.columns[dest].visible = append(ng.columns[dest].visible, run...)
		ng.flip(col)
	}
	return ng
}
