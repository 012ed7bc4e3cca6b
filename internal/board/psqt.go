package board

// Piece values in centipawns, shared by the early- and late-game tables.
var pieceValue = [6]int32{100, 320, 330, 500, 900, 0}

// psqt holds one early-game and one late-game score per (piece type, square),
// indexed from White's point of view (rank 0 = rank 1). Black's contribution
// is looked up with the square mirrored (sq ^ 56), the same mirror used by
// the NNUE black-perspective feature index.
//
// These are folded incrementally into Position.MaterialEarly/MaterialLate by
// insert/empty exactly as the Zobrist hash is folded by the same calls, so
// the two scalars never need a from-scratch recompute on the hot path.
var psqt = [6][64][2]int32{
	// Pawn: early favors central files and advancing past the 4th rank;
	// late flattens out since passed/connected pawns matter more than PST.
	Pawn: {
		{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
		{5, 5}, {10, 5}, {10, 5}, {-20, 5}, {-20, 5}, {10, 5}, {10, 5}, {5, 5},
		{5, 5}, {-5, 5}, {-10, 5}, {0, 5}, {0, 5}, {-10, 5}, {-5, 5}, {5, 5},
		{0, 10}, {0, 10}, {0, 10}, {20, 15}, {20, 15}, {0, 10}, {0, 10}, {0, 10},
		{5, 20}, {5, 20}, {10, 25}, {25, 30}, {25, 30}, {10, 25}, {5, 20}, {5, 20},
		{10, 40}, {10, 40}, {20, 45}, {30, 50}, {30, 50}, {20, 45}, {10, 40}, {10, 40},
		{50, 70}, {50, 70}, {50, 70}, {50, 70}, {50, 70}, {50, 70}, {50, 70}, {50, 70},
		{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
	},
	Knight: {
		{-50, -40}, {-40, -20}, {-30, -10}, {-30, -10}, {-30, -10}, {-30, -10}, {-40, -20}, {-50, -40},
		{-40, -20}, {-20, -5}, {0, 0}, {5, 0}, {5, 0}, {0, 0}, {-20, -5}, {-40, -20},
		{-30, -10}, {5, 0}, {10, 10}, {15, 15}, {15, 15}, {10, 10}, {5, 0}, {-30, -10},
		{-30, -5}, {0, 0}, {15, 15}, {20, 20}, {20, 20}, {15, 15}, {0, 0}, {-30, -5},
		{-30, -5}, {5, 0}, {15, 15}, {20, 20}, {20, 20}, {15, 15}, {5, 0}, {-30, -5},
		{-30, -10}, {0, 0}, {10, 10}, {15, 15}, {15, 15}, {10, 10}, {0, 0}, {-30, -10},
		{-40, -20}, {-20, -5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-20, -5}, {-40, -20},
		{-50, -40}, {-40, -20}, {-30, -10}, {-30, -10}, {-30, -10}, {-30, -10}, {-40, -20}, {-50, -40},
	},
	Bishop: {
		{-20, -15}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-20, -15},
		{-10, -10}, {5, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {5, 0}, {-10, -10},
		{-10, -10}, {10, 0}, {10, 5}, {10, 5}, {10, 5}, {10, 5}, {10, 0}, {-10, -10},
		{-10, -10}, {0, 0}, {10, 5}, {15, 10}, {15, 10}, {10, 5}, {0, 0}, {-10, -10},
		{-10, -10}, {5, 0}, {10, 5}, {15, 10}, {15, 10}, {10, 5}, {5, 0}, {-10, -10},
		{-10, -10}, {0, 0}, {10, 5}, {10, 5}, {10, 5}, {10, 5}, {0, 0}, {-10, -10},
		{-10, -10}, {5, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {5, 0}, {-10, -10},
		{-20, -15}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-20, -15},
	},
	Rook: {
		{0, 0}, {0, 0}, {5, 0}, {10, 5}, {10, 5}, {5, 0}, {0, 0}, {0, 0},
		{-5, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, 0},
		{-5, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, 0},
		{-5, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, 0},
		{-5, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, 0},
		{-5, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, 0},
		{5, 5}, {10, 5}, {10, 5}, {10, 5}, {10, 5}, {10, 5}, {10, 5}, {5, 5},
		{0, 0}, {0, 0}, {0, 0}, {5, 0}, {5, 0}, {0, 0}, {0, 0}, {0, 0},
	},
	Queen: {
		{-20, -20}, {-10, -10}, {-10, -10}, {-5, -5}, {-5, -5}, {-10, -10}, {-10, -10}, {-20, -20},
		{-10, -10}, {0, 0}, {5, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-10, -10},
		{-10, -10}, {5, 0}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {0, 0}, {-10, -10},
		{0, 0}, {0, 0}, {5, 5}, {5, 10}, {5, 10}, {5, 5}, {0, 0}, {-5, 0},
		{-5, 0}, {0, 0}, {5, 5}, {5, 10}, {5, 10}, {5, 5}, {0, 0}, {-5, 0},
		{-10, -10}, {0, 0}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {0, 0}, {-10, -10},
		{-10, -10}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-10, -10},
		{-20, -20}, {-10, -10}, {-10, -10}, {-5, -5}, {-5, -5}, {-10, -10}, {-10, -10}, {-20, -20},
	},
	// King: early wants the corner behind pawn cover; late wants the center.
	King: {
		{20, -50}, {30, -30}, {10, -30}, {0, -30}, {0, -30}, {10, -30}, {30, -30}, {20, -50},
		{20, -30}, {20, -10}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {20, -10}, {20, -30},
		{-10, -30}, {-20, 0}, {-20, 10}, {-20, 20}, {-20, 20}, {-20, 10}, {-20, 0}, {-10, -30},
		{-20, -30}, {-30, 0}, {-30, 20}, {-40, 30}, {-40, 30}, {-30, 20}, {-30, 0}, {-20, -30},
		{-30, -30}, {-40, 0}, {-40, 20}, {-50, 30}, {-50, 30}, {-40, 20}, {-40, 0}, {-30, -30},
		{-30, -30}, {-40, 10}, {-40, 10}, {-50, 20}, {-50, 20}, {-40, 10}, {-40, 10}, {-30, -30},
		{-30, -30}, {-40, -10}, {-40, -10}, {-50, 0}, {-50, 0}, {-40, -10}, {-40, -10}, {-30, -30},
		{-30, -50}, {-40, -40}, {-40, -30}, {-50, -20}, {-50, -20}, {-40, -30}, {-40, -40}, {-30, -50},
	},
}

// psqtValue returns the (early, late) score for a piece of color c on sq,
// from that piece's own side: material plus table entry, with Black's square
// mirrored. The result is not negated for Black; callers subtract Black's
// contribution to keep the totals from White's perspective.
func psqtValue(pt PieceType, c Color, sq Square) (early, late int32) {
	s := sq
	if c == Black {
		s = sq.Mirror()
	}
	v := psqt[pt][s]
	return v[0] + pieceValue[pt], v[1] + pieceValue[pt]
}
