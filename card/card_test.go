package card

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseRoundTrip(t *testing.T) {
	is := is.New(t)
	for v := 0; v < NCards; v++ {
		c := Card(v)
		parsed, err := Parse(c.String())
		is.NoErr(err)
		is.Equal(parsed, c)
	}
}

func TestParseUnknown(t *testing.T) {
	is := is.New(t)
	c, err := Parse("unknown")
	is.NoErr(err)
	is.True(c.IsUnknown())
}

func TestParseBadTokens(t *testing.T) {
	for _, tok := range []string{"", "X", "11H", "AX", "-1", "52"} {
		if _, err := Parse(tok); err == nil {
			t.Errorf("Parse(%q) should fail", tok)
		}
	}
}

func TestParsePackedValue(t *testing.T) {
	is := is.New(t)
	c, err := Parse("0")
	is.NoErr(err)
	is.Equal(c.String(), "AH")
	c, err = Parse("51")
	is.NoErr(err)
	is.Equal(c.String(), "KS")
}

func TestGoesOn(t *testing.T) {
	is := is.New(t)
	fiveH, _ := Parse("5H")
	sixS, _ := Parse("6S")
	sixD, _ := Parse("6D")
	is.True(fiveH.GoesOn(sixS))   // red on black, one rank up
	is.True(!fiveH.GoesOn(sixD))  // same color
	is.True(!sixS.GoesOn(fiveH))  // wrong direction
	is.True(!fiveH.GoesOn(Unknown))
}

func TestRankSuit(t *testing.T) {
	is := is.New(t)
	kh, _ := Parse("KH")
	is.Equal(kh.Rank(), uint8(KingRank))
	is.Equal(kh.Suit(), uint8(0))
	is.True(kh.IsKing())
	as, _ := Parse("AS")
	is.True(as.IsAce())
	is.Equal(as.Suit(), uint8(3))
}
