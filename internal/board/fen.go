package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// ParseFEN parses the board/stm/castling/ep fields of a FEN string and
// returns the Position they describe. At least four space-separated fields
// are required; any further fields (the halfmove-clock/fullmove-number
// fields of FEN strings found in the wild) are accepted and then ignored —
// this core does not model those counters (spec.md §4.5).
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("board: invalid FEN %q: need at least 4 fields, got %d", fen, len(parts))
	}

	pos := &Position{EnPassant: NoSquare}
	pos.KingSquare[White] = NoSquare
	pos.KingSquare[Black] = NoSquare

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("board: invalid side to move %q", parts[1])
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("board: invalid en passant square %q: %w", parts[3], err)
		}
		pos.EnPassant = sq
	}

	pos.updateOccupied()
	pos.Hash = computeHash(pos)
	foldInitialMaterial(pos)

	return pos, nil
}

// foldInitialMaterial sums the PSQT contribution of every placed piece.
// Only ParseFEN needs this from-scratch fold; every other mutation keeps
// MaterialEarly/MaterialLate incrementally via Insert/Empty.
func foldInitialMaterial(p *Position) {
	p.MaterialEarly = 0
	p.MaterialLate = 0
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				early, late := psqtValue(pt, c, sq)
				if c == White {
					p.MaterialEarly += early
					p.MaterialLate += late
				} else {
					p.MaterialEarly -= early
					p.MaterialLate -= late
				}
			}
		}
	}
}

func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: invalid piece placement %q: need 8 ranks, got %d", placement, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, ch := range rankStr {
			if file > 7 {
				return fmt.Errorf("board: too many squares in rank %d", rank+1)
			}
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := PieceFromChar(byte(ch))
			if piece == NoPiece {
				return fmt.Errorf("board: invalid piece character %q", ch)
			}
			sq := NewSquare(file, rank)
			pos.Pieces[piece.Color()][piece.Type()] |= SquareBB(sq)
			if piece.Type() == King {
				pos.KingSquare[piece.Color()] = sq
			}
			file++
		}

		if file != 8 {
			return fmt.Errorf("board: invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		pos.CastlingRights = NoCastling
		return nil
	}
	for _, ch := range castling {
		switch ch {
		case 'K':
			pos.CastlingRights |= WhiteKingSideCastle
		case 'Q':
			pos.CastlingRights |= WhiteQueenSideCastle
		case 'k':
			pos.CastlingRights |= BlackKingSideCastle
		case 'q':
			pos.CastlingRights |= BlackQueenSideCastle
		default:
			return fmt.Errorf("board: invalid castling character %q", ch)
		}
	}
	return nil
}

// toFEN renders the four core FEN fields for p, in the same order ParseFEN
// consumes them. Halfmove/fullmove counters are never emitted, since this
// core does not model them — this is what makes fromFen(toFen(b)) round
// trip exactly (P3).
func toFEN(p *Position) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			pt, c := p.PieceAt(sq)
			if pt == NoPieceType {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(NewPiece(pt, c).String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	return sb.String()
}
