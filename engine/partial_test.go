package engine

import (
	"math"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/require"

	"github.com/solitairelab/klondike/card"
)

const partialDoc = `{
	"draw_step": 1,
	"columns": [
		{"hidden": ["unknown", "unknown"], "visible": ["QD"]},
		{"hidden": ["7C"], "visible": ["KS"]}
	],
	"deck": ["AH", "unknown"]
}`

func TestUnknownCount(t *testing.T) {
	is := is.New(t)
	g, err := FromJSON([]byte(partialDoc))
	is.NoErr(err)
	is.Equal(g.UnknownCount(), 3)

	full := NewGame(1)
	is.Equal(full.UnknownCount(), 0)
}

func TestRemainingCards(t *testing.T) {
	is := is.New(t)
	g, err := FromJSON([]byte(partialDoc))
	is.NoErr(err)

	remaining := g.RemainingCards()
	// 52 minus the four known cards
	is.Equal(len(remaining), card.NCards-4)
	for _, c := range remaining {
		is.True(!c.IsUnknown())
		is.True(c.String() != "QD" && c.String() != "KS" && c.String() != "7C" && c.String() != "AH")
	}
}

func TestFillUnknowns(t *testing.T) {
	is := is.New(t)
	g, err := FromJSON([]byte(partialDoc))
	is.NoErr(err)

	filled := g.FillUnknowns(AnalysisRNG())
	is.Equal(filled.UnknownCount(), 0)

	// the original is untouched
	is.Equal(g.UnknownCount(), 3)

	// no card is assigned twice
	seen := map[card.Card]bool{}
	filled.eachCard(func(c card.Card) {
		is.True(!seen[c])
		seen[c] = true
	})
}

func TestFillUnknownsDeterministicForFixedSeed(t *testing.T) {
	g, err := FromJSON([]byte(partialDoc))
	require.NoError(t, err)
	a := g.FillUnknowns(AnalysisRNG())
	b := g.FillUnknowns(AnalysisRNG())
	require.Equal(t, a.EncodeObservation(), b.EncodeObservation())
}

func TestColumnProbabilities(t *testing.T) {
	is := is.New(t)
	g, err := FromJSON([]byte(partialDoc))
	is.NoErr(err)

	cols := g.ColumnProbabilities()
	is.Equal(len(cols), NColumns)

	// column 0 holds 2 of the 3 unknown slots; its candidate
	// probabilities sum to 2/3
	sum := 0.0
	for _, cp := range cols[0] {
		is.True(cp.P >= 0)
		sum += cp.P
	}
	if math.Abs(sum-2.0/3.0) > 1e-9 {
		t.Fatalf("column 0 probability mass = %v, want 2/3", sum)
	}

	// column 1 has no unknown slots
	for _, cp := range cols[1] {
		is.Equal(cp.P, 0.0)
	}
}

func TestColumnProbabilitiesFullyKnown(t *testing.T) {
	g := NewGame(2)
	for _, col := range g.ColumnProbabilities() {
		for _, cp := range col {
			if cp.P != 0 {
				t.Fatalf("fully known state should have zero probabilities, got %v", cp.P)
			}
		}
	}
}

func TestColumnBlocked(t *testing.T) {
	is := is.New(t)
	g, err := FromJSON([]byte(`{
		"columns": [
			{"hidden": [], "visible": ["9S"]},
			{"hidden": [], "visible": ["QD"]},
			{"hidden": ["unknown"], "visible": []},
			{"hidden": [], "visible": ["KS"]}
		],
		"deck": []
	}`))
	is.NoErr(err)

	is.True(g.ColumnBlocked(0))  // 9S has no red ten to land on
	is.True(!g.ColumnBlocked(1)) // QD fits on KS
	is.True(g.ColumnBlocked(2))  // face-down only
	is.True(!g.ColumnBlocked(3)) // KS can take an empty column
}
