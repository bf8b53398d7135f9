package engine

import "github.com/solitairelab/klondike/card"

// Observation encoding constants. Slots hold card values 0-51, the
// face-down marker, or the pad sentinel; every slot fits in a byte.
const (
	// ObservationLen is the fixed length of every encoded observation.
	ObservationLen = 156

	// ObsHidden marks a face-down card slot.
	ObsHidden = 52
	// ObsPad fills slots beyond the current board content.
	ObsPad = 255

	obsColumnSlots = 18
	obsDeckSlots   = DeckSize
)

// EncodeObservation projects the state onto a fixed-length byte vector:
// 4 foundation counts, 24 stock slots, 7 columns of 18 slots (face-down
// run then face-up run), the draw step and the stock size. Encoding the
// same logical state always produces the same bytes.
func (g *Game) EncodeObservation() []uint8 {
	obs := make([]uint8, ObservationLen)
	for i := range obs {
		obs[i] = ObsPad
	}

	for suit := 0; suit < card.NSuits; suit++ {
		obs[suit] = g.foundations[suit]
	}

	pos := card.NSuits
	for i, c := range g.deck {
		if i >= obsDeckSlots {
			break
		}
		obs[pos+i] = cardSlot(c)
	}
	pos += obsDeckSlots

	for i := range g.columns {
		col := g.columns[i]
		slot := 0
		// face-down cards encode as the hidden marker even when the
		// engine knows their identity; the observation is the
		// observer's view, not the engine's.
		for range col.hidden {
			if slot >= obsColumnSlots {
				break
			}
			obs[pos+slot] = ObsHidden
			slot++
		}
		for _, c := range col.visible {
			if slot >= obsColumnSlots {
				break
			}
			obs[pos+slot] = cardSlot(c)
			slot++
		}
		pos += obsColumnSlots
	}

	obs[pos] = uint8(g.drawStep)
	obs[pos+1] = uint8(len(g.deck))
	return obs
}

func cardSlot(c card.Card) uint8 {
	if c.IsUnknown() {
		return ObsHidden
	}
	return c.Value()
}
