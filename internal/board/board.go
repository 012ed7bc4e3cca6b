package board

// NNUEAccumulator is the collaborator Board.MoveNNUE drives on every square
// toggle. It is implemented by *nnue.Evaluator, but board never imports the
// nnue package — the dependency runs the other way (nnue imports board for
// Position), so the evaluator is passed in by the caller instead of being a
// field of Board. See spec.md §9's "cyclic NNUE/Board coupling" note.
type NNUEAccumulator interface {
	Activate(pt PieceType, c Color, sq Square)
	Deactivate(pt PieceType, c Color, sq Square)
}

// RevertToken is the minimal snapshot needed to reverse exactly one move.
// Unlike a full position copy, it only records what the move actually
// touched, which is what keeps UndoMove O(1).
type RevertToken struct {
	From, To Square

	CapturedPiece PieceType
	CapturedColor Color

	WasEnPassant bool
	WasPromotion bool

	// SecondaryFrom/SecondaryTo describe a castling rook slide; NoSquare
	// when the move was not a castle.
	SecondaryFrom, SecondaryTo Square

	PrevCastling CastlingRights
	PrevEP       Square
	PrevSTM      Color
}

// Board is the public façade over a Position: it owns the BitboardMap and
// drives NNUE updates for callers that opt into the NNUE-coupled variant.
type Board struct {
	pos *Position
}

// NewBoard returns a Board set to the standard starting position.
func NewBoard() *Board {
	return &Board{pos: NewPosition()}
}

// FromFEN parses fen and returns the Board it describes.
func FromFEN(fen string) (*Board, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Board{pos: pos}, nil
}

// Clone returns a deep copy of b; the returned Board shares no mutable
// state with the receiver.
func (b *Board) Clone() *Board {
	return &Board{pos: b.pos.Copy()}
}

// At returns the piece occupying sq.
func (b *Board) At(sq Square) (PieceType, Color) {
	return b.pos.PieceAt(sq)
}

// EmptyAt reports whether sq holds no piece.
func (b *Board) EmptyAt(sq Square) bool {
	return b.pos.IsEmpty(sq)
}

// AllOccupied returns the union of every occupied square.
func (b *Board) AllOccupied() Bitboard {
	return b.pos.AllOccupied
}

// OccupancyOf returns the squares occupied by c.
func (b *Board) OccupancyOf(c Color) Bitboard {
	return b.pos.Occupied[c]
}

// PiecesOf returns the squares occupied by pieces of type pt and color c.
func (b *Board) PiecesOf(pt PieceType, c Color) Bitboard {
	return b.pos.Pieces[c][pt]
}

// KingOf returns the square of c's king.
func (b *Board) KingOf(c Color) Square {
	return b.pos.KingSquare[c]
}

// CastlingRightsOf returns (queenside, kingside) castling rights for c.
func (b *Board) CastlingRightsOf(c Color) (queenside, kingside bool) {
	if c == White {
		return b.pos.CastlingRights&WhiteQueenSideCastle != 0, b.pos.CastlingRights&WhiteKingSideCastle != 0
	}
	return b.pos.CastlingRights&BlackQueenSideCastle != 0, b.pos.CastlingRights&BlackKingSideCastle != 0
}

// ColorToMove returns the side to move.
func (b *Board) ColorToMove() Color {
	return b.pos.SideToMove
}

// EPTarget returns the current en-passant target square, or NoSquare.
func (b *Board) EPTarget() Square {
	return b.pos.EnPassant
}

// ZobristHash returns the incrementally-maintained Zobrist hash.
func (b *Board) ZobristHash() uint64 {
	return b.pos.Hash
}

// MaterialEvalEarly returns the tapered early-game material+PSQT score.
func (b *Board) MaterialEvalEarly() int32 {
	return b.pos.MaterialEarly
}

// MaterialEvalLate returns the tapered late-game material+PSQT score.
func (b *Board) MaterialEvalLate() int32 {
	return b.pos.MaterialLate
}

// InsertPiece places a piece on an empty square, maintaining every
// incremental invariant. Precondition: sq is empty.
func (b *Board) InsertPiece(pt PieceType, c Color, sq Square) {
	b.pos.Insert(pt, c, sq)
}

// RemovePiece removes a piece from sq. Precondition: that piece/color
// occupies sq.
func (b *Board) RemovePiece(pt PieceType, c Color, sq Square) {
	b.pos.Empty(pt, c, sq)
}

// ToFEN renders the board field and metadata as a 4-field FEN string.
func (b *Board) ToFEN() string {
	return toFEN(b.pos)
}

// Move applies a pseudo-legal move without touching any NNUE state.
// Legality with respect to leaving the mover's own king in check is the
// caller's responsibility (move generation is out of scope for this core).
func (b *Board) Move(from, to Square, promotion PieceType) RevertToken {
	return b.doMove(from, to, promotion, nil)
}

// MoveNNUE applies a pseudo-legal move exactly like Move, and additionally
// emits Activate/Deactivate calls into nn for every square toggled. A
// captured piece is deactivated first, before the en-passant and
// primary-move toggles, although the board removes it during the primary
// move. Callers must Push nn's accumulator
// stack before calling MoveNNUE and Pop it after the matching UndoMove —
// MoveNNUE does not push/pop itself, since the accumulator stack is owned
// by the evaluator, not by Board.
func (b *Board) MoveNNUE(nn NNUEAccumulator, from, to Square, promotion PieceType) RevertToken {
	return b.doMove(from, to, promotion, nn)
}

// doMove is the single implementation shared by Move and MoveNNUE, so the
// two variants can never drift out of sync (spec.md §4.3).
func (b *Board) doMove(from, to Square, promotion PieceType, nn NNUEAccumulator) RevertToken {
	p := b.pos

	pieceF, colorF := p.PieceAt(from)
	pieceT, colorT := p.PieceAt(to)

	token := RevertToken{
		From:          from,
		To:            to,
		CapturedPiece: NoPieceType,
		SecondaryFrom: NoSquare,
		SecondaryTo:   NoSquare,
		PrevCastling:  p.CastlingRights,
		PrevEP:        p.EnPassant,
		PrevSTM:       p.SideToMove,
	}

	if pieceT != NoPieceType {
		token.CapturedPiece = pieceT
		token.CapturedColor = colorT
		if nn != nil {
			nn.Deactivate(pieceT, colorT, to)
		}
	}

	// En-passant resolution.
	if pieceF == Pawn && to == p.EnPassant {
		var epSq Square
		if colorF == White {
			epSq = to - 8
		} else {
			epSq = to + 8
		}
		epColor := colorF.Other()
		p.Empty(Pawn, epColor, epSq)
		token.WasEnPassant = true
		token.CapturedColor = epColor
		if nn != nil {
			nn.Deactivate(Pawn, epColor, epSq)
		}
	}

	// Ep hash out.
	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	// New ep target.
	if pieceF == Pawn && absSq(to, from) == 16 {
		if colorF == White {
			p.EnPassant = from + 8
		} else {
			p.EnPassant = from - 8
		}
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	} else {
		p.EnPassant = NoSquare
	}

	// Primary mutation.
	p.Move(pieceF, colorF, pieceT, colorT, from, to)
	if nn != nil {
		nn.Deactivate(pieceF, colorF, from)
		nn.Activate(pieceF, colorF, to)
	}

	// Promotion.
	if promotion != NoPieceType {
		p.Empty(Pawn, colorF, to)
		p.Insert(promotion, colorF, to)
		token.WasPromotion = true
		if nn != nil {
			nn.Deactivate(Pawn, colorF, to)
			nn.Activate(promotion, colorF, to)
		}
	}

	// Castling-rights update: XOR out the old contribution, mutate, XOR the
	// new one back in, exactly once, around every rights change below.
	p.Hash ^= zobristCastlingFold(p.CastlingRights)

	if pieceF == Rook {
		if from.File() == 0 {
			clearRight(p, colorF, false)
		} else if from.File() == 7 {
			clearRight(p, colorF, true)
		}
	}
	if pieceF == King {
		clearRight(p, colorF, true)
		clearRight(p, colorF, false)

		if absSq(to, from) == 2 {
			var rookFrom, rookTo Square
			if to > from {
				rookFrom, rookTo = to+1, to-1
			} else {
				rookFrom, rookTo = to-2, to+1
			}
			rPt, rColor := p.PieceAt(rookFrom)
			if rPt != Rook || rColor != colorF {
				panic("board: castling " + from.String() + "-" + to.String() +
					" found no " + colorF.String() + " rook on " + rookFrom.String())
			}
			p.Move(rPt, rColor, NoPieceType, NoColor, rookFrom, rookTo)
			token.SecondaryFrom = rookFrom
			token.SecondaryTo = rookTo
			if nn != nil {
				nn.Deactivate(Rook, colorF, rookFrom)
				nn.Activate(Rook, colorF, rookTo)
			}
		}
	}
	if pieceT == Rook {
		switch to {
		case H1:
			p.CastlingRights &^= WhiteKingSideCastle
		case A1:
			p.CastlingRights &^= WhiteQueenSideCastle
		case H8:
			p.CastlingRights &^= BlackKingSideCastle
		case A8:
			p.CastlingRights &^= BlackQueenSideCastle
		}
	}

	p.Hash ^= zobristCastlingFold(p.CastlingRights)

	// Side to move.
	p.SideToMove = p.SideToMove.Other()
	p.Hash ^= zobristSideToMove

	return token
}

// clearRight clears one wing's castling right for color c. Idempotent: a
// rook captured on its original corner after it already moved away clears
// a flag that may already be zero.
func clearRight(p *Position, c Color, kingSide bool) {
	if c == White {
		if kingSide {
			p.CastlingRights &^= WhiteKingSideCastle
		} else {
			p.CastlingRights &^= WhiteQueenSideCastle
		}
		return
	}
	if kingSide {
		p.CastlingRights &^= BlackKingSideCastle
	} else {
		p.CastlingRights &^= BlackQueenSideCastle
	}
}

func absSq(a, b Square) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// UndoMove reverses exactly the move that produced token. NNUE restoration
// is the caller's responsibility via AccumulatorStack.Pop — it is never
// done here by replaying toggles (spec.md §4.6).
func (b *Board) UndoMove(token RevertToken) {
	p := b.pos
	from, to := token.From, token.To

	p.Hash ^= zobristCastlingFold(p.CastlingRights)
	p.CastlingRights = token.PrevCastling
	p.Hash ^= zobristCastlingFold(p.CastlingRights)

	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}
	p.EnPassant = token.PrevEP
	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	p.SideToMove = token.PrevSTM
	p.Hash ^= zobristSideToMove

	if token.WasPromotion {
		pt, c := p.PieceAt(to)
		p.Empty(pt, c, to)
		p.Insert(Pawn, c, to)
	}

	pt, c := p.PieceAt(to)
	p.Move(pt, c, NoPieceType, NoColor, to, from)

	switch {
	case token.WasEnPassant:
		var capSq Square
		if token.CapturedColor == White {
			capSq = to + 8
		} else {
			capSq = to - 8
		}
		p.Insert(Pawn, token.CapturedColor, capSq)
	case token.CapturedPiece != NoPieceType:
		p.Insert(token.CapturedPiece, token.CapturedColor, to)
	case token.SecondaryFrom != NoSquare:
		p.MoveOnly(token.SecondaryTo, token.SecondaryFrom)
	}
}
