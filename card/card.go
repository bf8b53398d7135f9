package card

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	NSuits = 4
	NRanks = 13
	NCards = NSuits * NRanks

	KingRank = NRanks - 1
)

var rankNames = [NRanks]string{
	"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

var suitNames = [NSuits]string{"H", "D", "C", "S"}

// Card packs a rank and a suit into a single byte as rank*NSuits + suit.
// Suits are ordered H, D, C, S so that the second suit bit is the color bit.
type Card uint8

// Unknown is the sentinel for a card whose identity the observer does not
// know (a face-down card in a partial state).
const Unknown Card = 0xff

func New(rank, suit uint8) Card {
	return Card(rank*NSuits + suit)
}

func (c Card) Rank() uint8 { return uint8(c) / NSuits }

func (c Card) Suit() uint8 { return uint8(c) % NSuits }

func (c Card) Value() uint8 { return uint8(c) }

func (c Card) IsKing() bool { return c.Rank() == KingRank }

func (c Card) IsAce() bool { return c.Rank() == 0 }

func (c Card) IsUnknown() bool { return c == Unknown }

// GoesOn reports whether c can be placed on top of other in the tableau:
// other is one rank higher and of the opposite color.
func (c Card) GoesOn(other Card) bool {
	if c.IsUnknown() || other.IsUnknown() {
		return false
	}
	return c.Rank()+1 == other.Rank() && (c.Suit()^other.Suit())&2 == 2
}

func (c Card) String() string {
	if c.IsUnknown() {
		return "unknown"
	}
	return rankNames[c.Rank()] + suitNames[c.Suit()]
}

// Parse converts a token such as "10H" or "AS" to a Card. The token
// "unknown" parses to the Unknown sentinel, and a bare decimal in
// [0, NCards) is read as a packed card value.
func Parse(tok string) (Card, error) {
	tok = strings.ToUpper(strings.TrimSpace(tok))
	if strings.EqualFold(tok, "unknown") {
		return Unknown, nil
	}
	if v, err := strconv.Atoi(tok); err == nil {
		if v < 0 || v >= NCards {
			return Unknown, fmt.Errorf("card value %d out of range", v)
		}
		return Card(v), nil
	}
	if len(tok) < 2 {
		return Unknown, fmt.Errorf("bad card token %q", tok)
	}
	suitStr := tok[len(tok)-1:]
	rankStr := tok[:len(tok)-1]
	var rank, suit = -1, -1
	for i, r := range rankNames {
		if r == rankStr {
			rank = i
			break
		}
	}
	for i, s := range suitNames {
		if s == suitStr {
			suit = i
			break
		}
	}
	if rank < 0 || suit < 0 {
		return Unknown, fmt.Errorf("bad card token %q", tok)
	}
	return New(uint8(rank), uint8(suit)), nil
}

// Prob pairs a candidate card with a probability estimate.
type Prob struct {
	Card Card
	P    float64
}
