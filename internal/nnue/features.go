package nnue

import "chesscore/internal/board"

// nnPiece remaps board.PieceType (which runs Pawn..King) onto the feature
// layout's piece order. Kings get their own feature plane like every other
// piece: the feature set is color*384 + piece*64 + square, non-king-
// relative, so (unlike HalfKP, where the king square is folded into every
// other piece's feature index) a king move only toggles the king's own
// feature and never forces a refresh of the rest of the accumulator. This
// is the simplification the O(1) Activate/Deactivate path in
// accumulator.go depends on.
var nnPiece = [6]int{
	board.Pawn:   0,
	board.Knight: 1,
	board.Bishop: 2,
	board.Rook:   3,
	board.Queen:  4,
	board.King:   5,
}

// FeatureIndexWhite returns the feature index for (pt, c, sq) from White's
// perspective: color*384 + nnPiece(pt)*64 + sq.
func FeatureIndexWhite(pt board.PieceType, c board.Color, sq board.Square) int {
	colorBucket := 0
	if c == board.Black {
		colorBucket = 1
	}
	return colorBucket*384 + nnPiece[pt]*64 + int(sq)
}

// FeatureIndexBlack returns the feature index for (pt, c, sq) from Black's
// perspective: the color bucket is flipped (own pieces always occupy bucket
// 0) and the square is mirrored, so the same network weights serve either
// side to move.
func FeatureIndexBlack(pt board.PieceType, c board.Color, sq board.Square) int {
	colorBucket := 0
	if c == board.White {
		colorBucket = 1
	}
	return colorBucket*384 + nnPiece[pt]*64 + int(sq.Mirror())
}

// ActiveFeatures returns every active feature index for pos, from both
// perspectives. Used only by Refresh; incremental play never calls this.
func ActiveFeatures(pos *board.Position) (white, black []int) {
	white = make([]int, 0, 32)
	black = make([]int, 0, 32)

	for c := board.White; c <= board.Black; c++ {
		for pt := board.Pawn; pt <= board.King; pt++ {
			bb := pos.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				white = append(white, FeatureIndexWhite(pt, c, sq))
				black = append(black, FeatureIndexBlack(pt, c, sq))
			}
		}
	}
	return white, black
}
