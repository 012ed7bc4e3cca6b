package board

// Zobrist hash keys for position hashing.
// Generated once from a fixed-seed PRNG and never mutated afterwards,
// so the tables are safe to share by reference across any number of
// boards without synchronization.
var (
	zobristPiece      [2][6][64]uint64 // [Color][PieceType][Square]
	zobristEnPassant  [8]uint64        // one per file
	zobristCastling   [4]uint64        // one per right: WK, WQ, BK, BQ
	zobristSideToMove uint64           // XORed in iff Black is to move
)

func init() {
	initZobrist()
}

// prng is a simple xorshift64* generator used only to seed the Zobrist
// tables deterministically.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	for i := 0; i < 4; i++ {
		zobristCastling[i] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// castling right bit positions match the iota order in position.go.
const (
	zobristWK = 0
	zobristWQ = 1
	zobristBK = 2
	zobristBQ = 3
)

// zobristCastlingFold returns the XOR of the keys for every right set in cr.
// Each right has its own key (rather than one key per 16 combinations).
// Board.Move and UndoMove XOR out the fold of the old rights and XOR in the
// fold of the new ones, so the keys of unchanged rights cancel out.
func zobristCastlingFold(cr CastlingRights) uint64 {
	var h uint64
	if cr&WhiteKingSideCastle != 0 {
		h ^= zobristCastling[zobristWK]
	}
	if cr&WhiteQueenSideCastle != 0 {
		h ^= zobristCastling[zobristWQ]
	}
	if cr&BlackKingSideCastle != 0 {
		h ^= zobristCastling[zobristBK]
	}
	if cr&BlackQueenSideCastle != 0 {
		h ^= zobristCastling[zobristBQ]
	}
	return h
}

// computeHash recomputes the Zobrist hash of p from scratch. Used by
// ParseFEN and by tests asserting P2 (hash recomputability).
func computeHash(p *Position) uint64 {
	var hash uint64

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				hash ^= zobristPiece[c][pt][sq]
			}
		}
	}

	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}

	hash ^= zobristCastlingFold(p.CastlingRights)

	if p.EnPassant != NoSquare {
		hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	return hash
}
