package chess

import (
	"fmt"
	"strings"
)

// Notation encode/decode (C13). Grounded on barakmich-chess notation.go's
// EncodeUCI/EncodeSAN/formS1 disambiguation shape; the orphaned
// san_decode.go parser (built on an incompatible packed-int Move draft,
// see move.go) is not carried forward as a type, only its disambiguation
// *algorithm*, adapted here onto the struct-based Move and the
// mask-based legal move list from GenerateMoves.

// EncodeUCI renders m in long-algebraic (UCI-like) form, per spec.md §6:
// source square, target square, and for promotions the lowercase
// promotion-piece letter.
func EncodeUCI(m Move) string {
	return m.String()
}

// DecodeUCI parses a long-algebraic move string against the legal moves
// of pos and returns the matching Move.
func DecodeUCI(pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, fmt.Errorf("chess: invalid uci move %q", s)
	}
	s1, ok := strToSquareMap[s[0:2]]
	if !ok {
		return Move{}, fmt.Errorf("chess: invalid uci move %q: bad source square", s)
	}
	s2, ok := strToSquareMap[s[2:4]]
	if !ok {
		return Move{}, fmt.Errorf("chess: invalid uci move %q: bad target square", s)
	}
	promo := NoPromo
	if len(s) == 5 {
		promo = promoFromPieceType(pieceTypeFromChar(rune(s[4])))
		if promo == NoPromo {
			return Move{}, fmt.Errorf("chess: invalid uci move %q: bad promotion letter", s)
		}
	}
	for _, m := range GenerateMoves(pos) {
		if m.S1 == s1 && m.S2 == s2 && m.Promo == promo {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("chess: move %q is not legal in this position", s)
}

func pieceTypeFromChar(ch rune) PieceType {
	switch ch {
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	case 'p':
		return Pawn
	}
	return NoPieceType
}

// EncodeSAN renders m in standard algebraic notation. legal is the full
// legal move list of the position m was drawn from, used to compute
// disambiguation and the check/checkmate suffix.
func EncodeSAN(pos *Position, m Move, legal []Move) string {
	if m.HasTag(KingSideCastle) {
		return "O-O" + checkSuffix(pos, m)
	}
	if m.HasTag(QueenSideCastle) {
		return "O-O-O" + checkSuffix(pos, m)
	}

	var sb strings.Builder
	if m.Piece.Type() == Pawn {
		if m.HasTag(Capture) {
			sb.WriteString(m.S1.File().String())
			sb.WriteByte('x')
		}
		sb.WriteString(m.S2.String())
		if m.Promo != NoPromo {
			sb.WriteByte('=')
			sb.WriteString(strings.ToUpper(m.Promo.PieceType().String()))
		}
		return sb.String() + checkSuffix(pos, m)
	}

	sb.WriteString(strings.ToUpper(m.Piece.Type().String()))
	sb.WriteString(disambiguator(m, legal))
	if m.HasTag(Capture) {
		sb.WriteByte('x')
	}
	sb.WriteString(m.S2.String())
	return sb.String() + checkSuffix(pos, m)
}

// disambiguator adapts san_decode.go's original scan-for-collisions
// algorithm: find every other legal move of the same piece kind landing on
// the same target square, then add the minimum of file, rank, or full
// square needed to tell m apart from all of them.
func disambiguator(m Move, legal []Move) string {
	collision, sameFile, sameRank := false, false, false
	for _, other := range legal {
		if other.S1 == m.S1 || other.Piece != m.Piece || other.S2 != m.S2 {
			continue
		}
		collision = true
		if other.S1.File() == m.S1.File() {
			sameFile = true
		}
		if other.S1.Rank() == m.S1.Rank() {
			sameRank = true
		}
	}
	switch {
	case !collision:
		return ""
	case !sameFile:
		return m.S1.File().String()
	case !sameRank:
		return m.S1.Rank().String()
	}
	return m.S1.String()
}

func checkSuffix(pos *Position, m Move) string {
	cp := pos.Clone()
	cp.MakeMove(m)
	if !cp.InCheck() {
		return ""
	}
	if len(GenerateMoves(cp)) == 0 {
		return "#"
	}
	return "+"
}

// DecodeSAN parses san against the legal moves of pos.
func DecodeSAN(pos *Position, san string) (Move, error) {
	legal := GenerateMoves(pos)
	for _, m := range legal {
		if EncodeSAN(pos, m, legal) == san {
			return m, nil
		}
	}
	trimmed := strings.TrimRight(san, "+#")
	for _, m := range legal {
		if strings.TrimRight(EncodeSAN(pos, m, legal), "+#") == trimmed {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("chess: san move %q is not legal in this position", san)
}
