package board

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// P3: fromFen(toFen(b)) reproduces b exactly, for a representative spread
// of positions.
func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		StartFEN,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq -",
		"r3k2r/8/8/8/8/8/8/R3K2R b kq -",
		"8/P7/8/8/8/8/8/4k2K w - -",
		"8/8/8/8/8/8/8/4K2k w - -",
	}

	for _, fen := range cases {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			p1, err := ParseFEN(fen)
			require.NoError(t, err)

			again, err := ParseFEN(toFEN(p1))
			require.NoError(t, err)

			require.Equal(t, *p1, *again)
			require.Equal(t, fen, toFEN(p1))
		})
	}
}

// TestFENRejectsMalformedInput checks the narrowed 4-field contract: fewer
// than 4 fields is an error, a 5th/6th field is tolerated and discarded.
func TestFENRejectsMalformedInput(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq")
	require.Error(t, err)

	p, err := ParseFEN(StartFEN + " 0 1")
	require.NoError(t, err)
	require.Equal(t, StartFEN, toFEN(p))
}

// TestFENRoundTripQuick fuzzes round-tripping over a handful of
// hand-written legal-looking move sequences from the start position
// (testing/quick only picks the sequence), checking that every
// intermediate position's FEN round-trips.
func TestFENRoundTripQuick(t *testing.T) {
	sequences := [][][2]Square{
		{{E2, E4}, {E7, E5}, {G1, F3}, {B8, C6}},
		{{D2, D4}, {D7, D5}, {C1, F4}, {G8, F6}},
		{{G1, F3}, {G8, F6}, {G2, G3}, {G7, G6}},
	}

	f := func(idx uint8) bool {
		seq := sequences[int(idx)%len(sequences)]
		b := NewBoard()
		for _, mv := range seq {
			b.Move(mv[0], mv[1], NoPieceType)
			fen := b.ToFEN()
			replayed, err := FromFEN(fen)
			if err != nil {
				return false
			}
			if replayed.ToFEN() != fen {
				return false
			}
		}
		return true
	}

	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 20}))
}
