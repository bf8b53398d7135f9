package engine

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solitairelab/klondike/card"
	"github.com/solitairelab/klondike/move"
)

func TestNewGameReproducible(t *testing.T) {
	is := is.New(t)
	a := NewGame(42)
	b := NewGame(42)
	is.True(bytes.Equal(a.EncodeObservation(), b.EncodeObservation()))

	c := NewGame(43)
	is.True(!bytes.Equal(a.EncodeObservation(), c.EncodeObservation()))
}

func TestNewGameLayout(t *testing.T) {
	is := is.New(t)
	g := NewGame(7)
	is.Equal(g.DeckLen(), DeckSize)
	is.Equal(g.DrawStep(), DefaultDrawStep)
	for i := 0; i < NColumns; i++ {
		is.Equal(g.HiddenLen(i), i)
		is.Equal(len(g.columns[i].visible), 1)
	}
	is.True(!g.IsWin())
}

func TestObservationShape(t *testing.T) {
	g := NewGame(1)
	for steps := 0; ; steps++ {
		obs := g.EncodeObservation()
		require.Len(t, obs, ObservationLen)

		moves := g.LegalMoves()
		if len(moves) == 0 || steps > 40 {
			break
		}
		g = g.DoMove(moves[0])
	}
}

func TestObservationStable(t *testing.T) {
	g := NewGame(9)
	assert.Equal(t, g.EncodeObservation(), g.EncodeObservation())
}

func TestLegalMoveIndices(t *testing.T) {
	g := NewGame(3)
	moves := g.LegalMoves()
	require.NotEmpty(t, moves)

	seen := map[int]bool{}
	for _, m := range moves {
		idx := m.ActionIndex()
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, move.NbActions)
		require.False(t, seen[idx], "duplicate index %d for %v", idx, m)
		seen[idx] = true
	}
}

func TestDoMoveDoesNotMutateReceiver(t *testing.T) {
	g := NewGame(5)
	before := g.EncodeObservation()
	moves := g.LegalMoves()
	require.NotEmpty(t, moves)
	_ = g.DoMove(moves[0])
	assert.Equal(t, before, g.EncodeObservation())
}

func TestJSONRoundTrip(t *testing.T) {
	is := is.New(t)
	g := NewGame(11)
	data, err := g.ToJSON()
	is.NoErr(err)
	back, err := FromJSON(data)
	is.NoErr(err)
	is.True(bytes.Equal(g.EncodeObservation(), back.EncodeObservation()))

	data2, err := back.ToJSON()
	is.NoErr(err)
	is.Equal(string(data), string(data2))
}

func TestBlindJSONHidesFaceDownCards(t *testing.T) {
	is := is.New(t)
	g := NewGame(1)
	data, err := g.ToBlindJSON()
	is.NoErr(err)

	var js jsonState
	is.NoErr(json.Unmarshal(data, &js))
	is.Equal(len(js.Columns), NColumns)
	for i, col := range js.Columns {
		is.Equal(len(col.Hidden), i)
		for _, tok := range col.Hidden {
			is.Equal(tok, "unknown")
		}
		is.Equal(len(col.Visible), 1)
		is.True(col.Visible[0] != "unknown")
	}
	is.Equal(len(js.Deck), DeckSize)
	for _, tok := range js.Deck {
		is.Equal(tok, "unknown")
	}

	// the blind view loads back as a partial state
	back, err := FromJSON(data)
	is.NoErr(err)
	is.Equal(back.UnknownCount(), 21+DeckSize)
	is.Equal(back.Foundations(), g.Foundations())
}

func TestWinningMove(t *testing.T) {
	is := is.New(t)
	g, err := FromJSON([]byte(`{
		"foundations": [13, 13, 13, 12],
		"columns": [{"hidden": [], "visible": ["KS"]}],
		"deck": []
	}`))
	is.NoErr(err)
	is.True(!g.IsWin())

	ks, _ := card.Parse("KS")
	target := move.New(move.PileStack, ks)
	found := false
	for _, m := range g.LegalMoves() {
		if m == target {
			found = true
		}
	}
	is.True(found)
	is.True(g.DoMove(target).IsWin())
}

func TestDeadlockState(t *testing.T) {
	is := is.New(t)
	g, err := FromJSON([]byte(`{
		"columns": [
			{"hidden": [], "visible": ["KS"]},
			{"hidden": [], "visible": ["QD"]}
		],
		"deck": []
	}`))
	is.NoErr(err)

	moves := g.LegalMoves()
	is.Equal(len(moves), 1) // only QD onto KS
	qd, _ := card.Parse("QD")
	is.Equal(moves[0], move.New(move.Reveal, qd))

	after := g.DoMove(moves[0])
	is.Equal(len(after.LegalMoves()), 0)
	is.True(!after.IsWin())
}

func TestRevealFlipsHiddenCard(t *testing.T) {
	is := is.New(t)
	g, err := FromJSON([]byte(`{
		"columns": [
			{"hidden": ["7C"], "visible": ["QD"]},
			{"hidden": [], "visible": ["KS"]}
		],
		"deck": []
	}`))
	is.NoErr(err)

	qd, _ := card.Parse("QD")
	after := g.DoMove(move.New(move.Reveal, qd))
	is.Equal(after.HiddenLen(0), 0)
	sevenC, _ := card.Parse("7C")
	is.Equal(after.columns[0].visible, []card.Card{sevenC})
	is.Equal(after.ColumnOf(qd), 1)
}

func TestDeckMoves(t *testing.T) {
	is := is.New(t)
	g, err := FromJSON([]byte(`{
		"columns": [{"hidden": [], "visible": ["2H"]}],
		"deck": ["AH", "AS"]
	}`))
	is.NoErr(err)

	moves := g.LegalMoves()
	ah, _ := card.Parse("AH")
	as, _ := card.Parse("AS")
	is.True(containsMove(moves, move.New(move.DeckStack, ah)))
	is.True(containsMove(moves, move.New(move.DeckStack, as)))

	after := g.DoMove(move.New(move.DeckStack, ah))
	is.Equal(after.DeckLen(), 1)
	is.Equal(after.Foundations()[0], uint8(1))

	// 2H can now follow AH to the foundation
	twoH, _ := card.Parse("2H")
	is.True(containsMove(after.LegalMoves(), move.New(move.PileStack, twoH)))
}

func TestFromJSONRejectsBadDocuments(t *testing.T) {
	bad := []string{
		`not json`,
		`{"columns": [{"visible": ["ZZ"]}]}`,
		`{"columns": [{"visible": ["unknown"]}]}`,
		`{"foundations": [20]}`,
	}
	for _, doc := range bad {
		if _, err := FromJSON([]byte(doc)); err == nil {
			t.Errorf("FromJSON(%q) should fail", doc)
		}
	}
}

func containsMove(moves []move.Move, m move.Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}
