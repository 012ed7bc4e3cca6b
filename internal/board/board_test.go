package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// S2: 1. e4 e5.
func TestOpeningDoublePawnPush(t *testing.T) {
	b := NewBoard()

	b.Move(E2, E4, NoPieceType)
	require.Equal(t, E3, b.EPTarget())

	b.Move(E7, E5, NoPieceType)
	require.Equal(t, E6, b.EPTarget())
	require.Equal(t, White, b.ColorToMove())

	require.Equal(t,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6",
		b.ToFEN())
}

// S3: en passant capture and its exact undo.
func TestEnPassantCaptureAndUndo(t *testing.T) {
	const startFEN = "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6"
	b, err := FromFEN(startFEN)
	require.NoError(t, err)
	preHash := b.ZobristHash()

	token := b.Move(E5, D6, NoPieceType)
	require.True(t, token.WasEnPassant)
	require.Equal(t, Black, token.CapturedColor)

	pt, _ := b.At(D5)
	require.Equal(t, NoPieceType, pt)
	pt, c := b.At(D6)
	require.Equal(t, Pawn, pt)
	require.Equal(t, White, c)
	require.Equal(t, NoSquare, b.EPTarget())

	b.UndoMove(token)
	require.Equal(t, startFEN, b.ToFEN())
	require.Equal(t, preHash, b.ZobristHash())
}

// S4: kingside castle and its exact undo.
func TestKingsideCastleAndUndo(t *testing.T) {
	const startFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq -"
	b, err := FromFEN(startFEN)
	require.NoError(t, err)
	preHash := b.ZobristHash()

	token := b.Move(E1, G1, NoPieceType)

	pt, c := b.At(G1)
	require.Equal(t, King, pt)
	require.Equal(t, White, c)
	pt, c = b.At(F1)
	require.Equal(t, Rook, pt)
	require.Equal(t, White, c)

	q, k := b.CastlingRightsOf(White)
	require.False(t, q)
	require.False(t, k)
	require.Equal(t, H1, token.SecondaryFrom)
	require.Equal(t, F1, token.SecondaryTo)

	b.UndoMove(token)
	require.Equal(t, startFEN, b.ToFEN())
	require.Equal(t, preHash, b.ZobristHash())
}

// S5: a rook capturing on a8 clears both the mover's and the victim's
// queenside rights.
func TestRookCaptureClearsCastlingRights(t *testing.T) {
	b, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq -")
	require.NoError(t, err)

	b.Move(A1, A8, NoPieceType)

	wq, wk := b.CastlingRightsOf(White)
	require.False(t, wq)
	require.True(t, wk)

	bq, bk := b.CastlingRightsOf(Black)
	require.False(t, bq)
	require.True(t, bk)
}

// S6: promotion and its exact undo.
func TestPromotionAndUndo(t *testing.T) {
	const startFEN = "8/P7/8/8/8/8/8/4k2K w - -"
	b, err := FromFEN(startFEN)
	require.NoError(t, err)
	preHash := b.ZobristHash()

	token := b.Move(A7, A8, Queen)
	require.True(t, token.WasPromotion)

	pt, c := b.At(A8)
	require.Equal(t, Queen, pt)
	require.Equal(t, White, c)
	require.True(t, b.EmptyAt(A7))

	b.UndoMove(token)

	pt, c = b.At(A7)
	require.Equal(t, Pawn, pt)
	require.Equal(t, White, c)
	require.True(t, b.EmptyAt(A8))
	require.Equal(t, preHash, b.ZobristHash())
	require.Equal(t, startFEN, b.ToFEN())
}

// P1: make/unmake round-trips a whole game fragment back to the exact
// starting BitboardMap, field for field.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := NewBoard()
	before := *b.pos

	type mv struct {
		from, to Square
		promo    PieceType
	}
	moves := []mv{
		{E2, E4, NoPieceType},
		{E7, E5, NoPieceType},
		{G1, F3, NoPieceType},
		{B8, C6, NoPieceType},
		{F1, C4, NoPieceType},
		{F8, C5, NoPieceType},
		{E1, G1, NoPieceType}, // kingside castle
	}

	var tokens []RevertToken
	for _, m := range moves {
		tokens = append(tokens, b.Move(m.from, m.to, m.promo))
	}
	for i := len(tokens) - 1; i >= 0; i-- {
		b.UndoMove(tokens[i])
	}

	require.Equal(t, before, *b.pos)
}

// P4: occupancy/PieceAt agree with the bitboards at every reachable point.
func TestOccupancyConsistency(t *testing.T) {
	b := NewBoard()
	b.Move(E2, E4, NoPieceType)
	b.Move(B8, C6, NoPieceType)
	b.Move(G1, F3, NoPieceType)

	assertConsistent(t, b.pos)
}

func assertConsistent(t *testing.T, p *Position) {
	t.Helper()

	var whiteUnion, blackUnion, allUnion Bitboard
	for pt := Pawn; pt <= King; pt++ {
		whiteUnion |= p.Pieces[White][pt]
		blackUnion |= p.Pieces[Black][pt]
		require.Zero(t, p.Pieces[White][pt]&p.Pieces[Black][pt], "white/black overlap for %v", pt)
	}
	allUnion = whiteUnion | blackUnion

	require.Equal(t, whiteUnion, p.Occupied[White])
	require.Equal(t, blackUnion, p.Occupied[Black])
	require.Equal(t, allUnion, p.AllOccupied)

	for sq := A1; sq <= H8; sq++ {
		pt, c := p.PieceAt(sq)
		bit := SquareBB(sq)
		if p.AllOccupied&bit == 0 {
			require.Equal(t, NoPieceType, pt)
			require.Equal(t, NoColor, c)
			continue
		}
		require.True(t, p.Pieces[c][pt]&bit != 0)
	}
}

// P6: en passant exclusivity — the target is only set immediately after a
// double pawn push, and clears on any other move.
func TestEnPassantExclusivity(t *testing.T) {
	b := NewBoard()

	b.Move(E2, E4, NoPieceType)
	require.Equal(t, E3, b.EPTarget())

	b.Move(G8, F6, NoPieceType) // non-pawn move clears it
	require.Equal(t, NoSquare, b.EPTarget())

	b.Move(E4, E5, NoPieceType) // single push, not a double push
	require.Equal(t, NoSquare, b.EPTarget())
}

// P7: castling rights are non-increasing across a move sequence, except
// when restored by UndoMove.
func TestCastlingRightsMonotonicity(t *testing.T) {
	b, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq -")
	require.NoError(t, err)

	prevRights := b.pos.CastlingRights

	b.Move(H1, H2, NoPieceType) // rook leaves its corner square, not yet a capture
	require.LessOrEqual(t, popCountRights(b.pos.CastlingRights), popCountRights(prevRights))
	prevRights = b.pos.CastlingRights

	b.Move(E1, E2, NoPieceType) // king move clears both white rights
	require.LessOrEqual(t, popCountRights(b.pos.CastlingRights), popCountRights(prevRights))
	require.Equal(t, NoCastling, b.pos.CastlingRights&AllCastling&(WhiteKingSideCastle|WhiteQueenSideCastle))
}

func popCountRights(cr CastlingRights) int {
	return Bitboard(cr).PopCount()
}
