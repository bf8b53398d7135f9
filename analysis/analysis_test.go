package analysis

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solitairelab/klondike/engine"
	"github.com/solitairelab/klondike/heuristics"
	"github.com/solitairelab/klondike/move"
)

func mustState(t *testing.T, doc string) *engine.Game {
	t.Helper()
	g, err := engine.FromJSON([]byte(doc))
	require.NoError(t, err)
	return g
}

func TestRankedMovesSorted(t *testing.T) {
	g := engine.NewGame(17)
	ranked := RankedMoves(g, heuristics.StyleNeutral, nil)
	require.Equal(t, len(g.LegalMoves()), len(ranked))
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].HeuristicScore, ranked[i].HeuristicScore)
	}
}

func TestStyleCoefShiftsScores(t *testing.T) {
	is := is.New(t)
	g := engine.NewGame(17)

	coef := 10
	cfg := &heuristics.Config{AggressiveCoef: &coef}
	base := RankedMoves(g, heuristics.StyleNeutral, cfg)
	aggr := RankedMoves(g, heuristics.StyleAggressive, cfg)
	require.NotEmpty(t, base)

	// every score moves by the coefficient, so the shift is uniform
	byMove := map[move.Move]int{}
	for _, rm := range base {
		byMove[rm.Move] = rm.HeuristicScore
	}
	for _, rm := range aggr {
		is.Equal(rm.HeuristicScore, byMove[rm.Move]+coef)
	}
}

func TestConfigOverrideChangesRanking(t *testing.T) {
	// grounded on the engine's style_coef behavior: bumping a single
	// weight must be visible in the scores
	g := mustState(t, `{
		"columns": [
			{"hidden": ["7C"], "visible": ["QD"]},
			{"hidden": [], "visible": ["KS"]}
		],
		"deck": []
	}`)

	def := RankedMoves(g, heuristics.StyleNeutral, nil)
	big := 50
	cfg := &heuristics.Config{RevealBonus: &big}
	boosted := RankedMoves(g, heuristics.StyleNeutral, cfg)

	require.NotEmpty(t, def)
	require.Equal(t, move.Reveal, def[0].Move.Kind())
	assert.Equal(t, def[0].HeuristicScore+big-heuristics.DefaultRevealBonus,
		boosted[0].HeuristicScore)
}

func scoreOf(t *testing.T, ranked []RankedMove, token string) int {
	t.Helper()
	for _, rm := range ranked {
		if rm.Move.String() == token {
			return rm.HeuristicScore
		}
	}
	t.Fatalf("move %q not ranked", token)
	return 0
}

func TestEarlyFoundationPenaltyCoversFives(t *testing.T) {
	is := is.New(t)
	// the KS/QD pair keeps a follow-up move alive so only the
	// early-foundation term is in play
	g := mustState(t, `{
		"foundations": [4, 0, 0, 0],
		"columns": [
			{"hidden": [], "visible": ["5H"]},
			{"hidden": [], "visible": ["KS"]},
			{"hidden": [], "visible": ["QD"]}
		],
		"deck": []
	}`)
	ranked := RankedMoves(g, heuristics.StyleNeutral, nil)
	is.Equal(scoreOf(t, ranked, "PS 5H"), heuristics.DefaultEarlyFoundationPenalty)

	// a six is past the early range
	g = mustState(t, `{
		"foundations": [5, 0, 0, 0],
		"columns": [
			{"hidden": [], "visible": ["6H"]},
			{"hidden": [], "visible": ["KS"]},
			{"hidden": [], "visible": ["QD"]}
		],
		"deck": []
	}`)
	ranked = RankedMoves(g, heuristics.StyleNeutral, nil)
	is.Equal(scoreOf(t, ranked, "PS 6H"), 0)
}

func TestDeadlockPenaltyApplied(t *testing.T) {
	is := is.New(t)
	// the only move (QD onto KS) leaves no follow-up
	g := mustState(t, `{
		"columns": [
			{"hidden": [], "visible": ["KS"]},
			{"hidden": [], "visible": ["QD"]}
		],
		"deck": []
	}`)

	ranked := RankedMoves(g, heuristics.StyleNeutral, nil)
	is.Equal(len(ranked), 1)
	is.Equal(ranked[0].HeuristicScore,
		heuristics.DefaultRevealBonus+heuristics.DefaultDeadlockPenalty)
}

func TestBestMoveMCTSPicksWinningMove(t *testing.T) {
	g := mustState(t, `{
		"foundations": [13, 13, 13, 12],
		"columns": [{"hidden": [], "visible": ["KS"]}],
		"deck": []
	}`)

	rm, ok := BestMoveMCTS(g, heuristics.StyleNeutral, nil, 0, 0, engine.AnalysisRNG())
	require.True(t, ok)
	assert.Equal(t, move.PileStack, rm.Move.Kind())
	assert.Equal(t, "PS KS", rm.Move.String())
	assert.Greater(t, rm.WinRate, 0.0)
}

func TestBestMoveMCTSNoMoves(t *testing.T) {
	g := mustState(t, `{
		"columns": [{"hidden": [], "visible": ["KS"]}],
		"deck": []
	}`)
	_, ok := BestMoveMCTS(g, heuristics.StyleNeutral, nil, 0, 0, engine.AnalysisRNG())
	assert.False(t, ok)
}

func TestAnalyzeState(t *testing.T) {
	is := is.New(t)
	g := mustState(t, `{
		"columns": [
			{"hidden": ["unknown", "unknown"], "visible": ["QD"]},
			{"hidden": [], "visible": ["KS"]}
		],
		"deck": ["unknown"]
	}`)

	sa := AnalyzeState(g)
	is.Equal(sa.UnknownCards, 3)
	is.Equal(len(sa.RemainingCards), 52-2)
	is.True(sa.DeadlockRisk >= 0 && sa.DeadlockRisk <= 1)

	// reproducible: the fill is seeded
	sb := AnalyzeState(g)
	is.Equal(sa.Mobility, sb.Mobility)
}
