package engine

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/solitairelab/klondike/card"
)

// DefaultDrawStep matches the engine's standard single-card draw.
const DefaultDrawStep = 1

func seededRNG(seed uint32) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint32(key[:4], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// NewGame deals a fresh game from the given seed. The same seed always
// produces the same deal.
func NewGame(seed uint32) *Game {
	rng := seededRNG(seed)
	deck := make([]card.Card, card.NCards)
	for i := range deck {
		deck[i] = card.Card(i)
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	g := &Game{drawStep: DefaultDrawStep}
	pos := 0
	for i := 0; i < NColumns; i++ {
		g.columns[i].hidden = append(g.columns[i].hidden, deck[pos:pos+i]...)
		pos += i
		g.columns[i].visible = []card.Card{deck[pos]}
		pos++
	}
	g.deck = append(g.deck, deck[pos:]...)
	return g
}
