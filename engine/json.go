package engine

import (
	"encoding/json"
	"fmt"

	"github.com/solitairelab/klondike/card"
)

// jsonState is the interchange schema. Hidden and deck entries are card
// tokens or "unknown"; unrecognized top-level keys in incoming
// documents are ignored. The optional foundations array carries the
// per-suit counts in H, D, C, S order.
type jsonState struct {
	DrawStep    int          `json:"draw_step"`
	Columns     []jsonColumn `json:"columns"`
	Deck        []string     `json:"deck"`
	Foundations []uint8      `json:"foundations,omitempty"`
}

type jsonColumn struct {
	Hidden  []string `json:"hidden"`
	Visible []string `json:"visible"`
}

func cardTokens(cards []card.Card) []string {
	toks := make([]string, len(cards))
	for i, c := range cards {
		toks[i] = c.String()
	}
	return toks
}

func parseCards(toks []string) ([]card.Card, error) {
	cards := make([]card.Card, len(toks))
	for i, t := range toks {
		c, err := card.Parse(t)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}

// ToJSON serializes the state.
func (g *Game) ToJSON() ([]byte, error) {
	js := jsonState{
		DrawStep:    g.drawStep,
		Foundations: g.foundations[:],
		Deck:        cardTokens(g.deck),
	}
	for i := range g.columns {
		js.Columns = append(js.Columns, jsonColumn{
			Hidden:  cardTokens(g.columns[i].hidden),
			Visible: cardTokens(g.columns[i].visible),
		})
	}
	return json.Marshal(js)
}

func unknownTokens(n int) []string {
	toks := make([]string, n)
	for i := range toks {
		toks[i] = card.Unknown.String()
	}
	return toks
}

// ToBlindJSON serializes the observer's view of the state: face-down
// and stock slots carry the "unknown" token regardless of whether the
// engine knows their identity. Training data built from this view stays
// partial-information even when the engine dealt the game itself.
func (g *Game) ToBlindJSON() ([]byte, error) {
	js := jsonState{
		DrawStep:    g.drawStep,
		Foundations: g.foundations[:],
		Deck:        unknownTokens(len(g.deck)),
	}
	for i := range g.columns {
		js.Columns = append(js.Columns, jsonColumn{
			Hidden:  unknownTokens(len(g.columns[i].hidden)),
			Visible: cardTokens(g.columns[i].visible),
		})
	}
	return json.Marshal(js)
}

// FromJSON deserializes a state document. Unknown hidden or deck cards
// carry the "unknown" token; the resulting state supports the
// partial-information operations in partial.go.
func FromJSON(data []byte) (*Game, error) {
	var js jsonState
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("parsing state document: %w", err)
	}
	if len(js.Columns) > NColumns {
		return nil, fmt.Errorf("state document has %d columns, at most %d allowed", len(js.Columns), NColumns)
	}
	if len(js.Foundations) > card.NSuits {
		return nil, fmt.Errorf("state document has %d foundations, at most %d allowed", len(js.Foundations), card.NSuits)
	}

	g := &Game{drawStep: js.DrawStep}
	if g.drawStep < 1 {
		g.drawStep = DefaultDrawStep
	}
	for i, col := range js.Columns {
		hidden, err := parseCards(col.Hidden)
		if err != nil {
			return nil, err
		}
		visible, err := parseCards(col.Visible)
		if err != nil {
			return nil, err
		}
		for _, c := range visible {
			if c.IsUnknown() {
				return nil, fmt.Errorf("column %d has an unknown visible card", i)
			}
		}
		g.columns[i] = column{hidden: hidden, visible: visible}
	}
	deck, err := parseCards(js.Deck)
	if err != nil {
		return nil, err
	}
	g.deck = deck
	for i, n := range js.Foundations {
		if n > card.NRanks {
			return nil, fmt.Errorf("foundation %d count %d out of range", i, n)
		}
		g.foundations[i] = n
	}
	return g, nil
}
