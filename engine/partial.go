package engine

import (
	"lukechampine.com/frand"

	"github.com/solitairelab/klondike/card"
)

// UnknownCount returns the number of hidden or deck slots whose card
// identity is unknown.
func (g *Game) UnknownCount() int {
	n := 0
	g.eachCard(func(c card.Card) {
		if c.IsUnknown() {
			n++
		}
	})
	return n
}

func (g *Game) eachCard(fn func(card.Card)) {
	for i := range g.columns {
		for _, c := range g.columns[i].hidden {
			fn(c)
		}
		for _, c := range g.columns[i].visible {
			fn(c)
		}
	}
	for _, c := range g.deck {
		fn(c)
	}
}

// RemainingCards lists the cards absent from the current information
// set: not visible, not in a known hidden slot, not in the deck and not
// already on a foundation. These are the candidates for unknown slots.
func (g *Game) RemainingCards() []card.Card {
	used := [card.NCards]bool{}
	g.eachCard(func(c card.Card) {
		if !c.IsUnknown() {
			used[c.Value()] = true
		}
	})
	for suit := uint8(0); suit < card.NSuits; suit++ {
		for rank := uint8(0); rank < g.foundations[suit]; rank++ {
			used[card.New(rank, suit).Value()] = true
		}
	}
	var remaining []card.Card
	for v := 0; v < card.NCards; v++ {
		if !used[v] {
			remaining = append(remaining, card.Card(v))
		}
	}
	return remaining
}

// FillUnknowns replaces every unknown slot with a card drawn from a
// random permutation of the remaining cards, producing a fully
// determined state the solver can roll out.
func (g *Game) FillUnknowns(rng *frand.RNG) *Game {
	remaining := g.RemainingCards()
	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
	ng := g.Clone()
	next := 0
	fill := func(c card.Card) card.Card {
		if !c.IsUnknown() || next >= len(remaining) {
			return c
		}
		c = remaining[next]
		next++
		return c
	}
	for i := range ng.columns {
		for j, c := range ng.columns[i].hidden {
			ng.columns[i].hidden[j] = fill(c)
		}
	}
	for j, c := range ng.deck {
		ng.deck[j] = fill(c)
	}
	return ng
}

// ColumnProbabilities estimates, per column, the probability of each
// remaining card occupying one of that column's unknown slots. Columns
// without unknown cards get zero across the board.
func (g *Game) ColumnProbabilities() [][]card.Prob {
	remaining := g.RemainingCards()
	totalUnknown := g.UnknownCount()

	res := make([][]card.Prob, NColumns)
	for i := range g.columns {
		unknown := 0
		for _, c := range g.columns[i].hidden {
			if c.IsUnknown() {
				unknown++
			}
		}
		colProb := 0.0
		if totalUnknown > 0 {
			colProb = float64(unknown) / float64(totalUnknown)
		}
		probs := make([]card.Prob, 0, len(remaining))
		for _, c := range remaining {
			probs = append(probs, card.Prob{Card: c, P: colProb / float64(len(remaining))})
		}
		res[i] = probs
	}
	return res
}

// AnalysisRNG returns a fixed-seed RNG so analysis metrics computed on
// sampled fills are reproducible.
func AnalysisRNG() *frand.RNG {
	return seededRNG(0)
}

// ColumnBlocked reports whether the column's exposed card currently has
// no tableau destination. A column with only face-down cards counts as
// blocked.
func (g *Game) ColumnBlocked(col int) bool {
	c := &g.columns[col]
	if len(c.visible) == 0 {
		return len(c.hidden) > 0
	}
	top := c.visible[len(c.visible)-1]
	for i := range g.columns {
		if i == col {
			continue
		}
		other := g.columns[i].visible
		if len(other) > 0 {
			if top.GoesOn(other[len(other)-1]) {
				return false
			}
		} else if g.columnEmpty(i) && top.IsKing() {
			return false
		}
	}
	return true
}
