package chess

// Make / unmake move (C10). Grounded on barakmich-chess board.go's
// update() (in-place XOR mutation of source/target bits, promotion swap,
// en-passant capture removal, castling rook relocation), adapted from its
// pure-copy style to in-place mutation with an undo stack per spec.md
// §4.7 and the History Snapshots Design Note (minimal undo information
// rather than a full position clone).

// MakeMove mutates pos according to m, which must be a move returned by
// GenerateMoves for the current position.
func (pos *Position) MakeMove(m Move) {
	side := pos.sideToMove
	u := undo{
		move:            m,
		capturedPiece:   NoPiece,
		capturedSquare:  NoSquare,
		castleRights:    pos.castleRights,
		enPassantTarget: pos.enPassantTarget,
		halfMoveClock:   pos.halfMoveClock,
		checkMaskW:      pos.checkMaskW,
		checkMaskB:      pos.checkMaskB,
		pinsW:           pos.pinsW,
		pinsB:           pos.pinsB,
	}

	isPawnMove := m.Piece.Type() == Pawn
	isCapture := m.HasTag(Capture)

	if isPawnMove || isCapture {
		pos.halfMoveClock = 0
	} else {
		pos.halfMoveClock++
	}
	if side == Black {
		pos.fullMoveNumber++
	}

	pos.updateCastleRightsForMove(m)

	switch {
	case m.HasTag(KingSideCastle) || m.HasTag(QueenSideCastle):
		pos.makeCastle(side, m)
	default:
		if m.HasTag(EnPassant) {
			capSq := enPassantCapturedSquare(side, m.S2)
			capPiece := GetPiece(Pawn, side.Other())
			u.capturedPiece = capPiece
			u.capturedSquare = capSq
			pos.boards[capPiece] = ClearBit(pos.boards[capPiece], capSq)
		} else if isCapture {
			capPiece := pos.PieceAt(m.S2)
			u.capturedPiece = capPiece
			u.capturedSquare = m.S2
			if capPiece != NoPiece {
				pos.boards[capPiece] = ClearBit(pos.boards[capPiece], m.S2)
			}
		}

		if m.Promo != NoPromo {
			pos.boards[m.Piece] = ClearBit(pos.boards[m.Piece], m.S1)
			promoted := GetPiece(m.Promo.PieceType(), side)
			pos.boards[promoted] = SetBit(pos.boards[promoted], m.S2)
		} else {
			pos.boards[m.Piece] ^= bbForSquare(m.S1) | bbForSquare(m.S2)
		}
	}

	pos.history = append(pos.history, u)

	if isPawnMove && absRankDiff(m.S1, m.S2) == 2 {
		pos.enPassantTarget = enPassantCapturedSquare(side, m.S2)
	} else {
		pos.enPassantTarget = NoSquare
	}

	pos.sideToMove = side.Other()
	pos.gameUpdate()
}

func absRankDiff(a, b Square) int {
	d := int(a.Rank()) - int(b.Rank())
	if d < 0 {
		d = -d
	}
	return d
}

func (pos *Position) makeCastle(side Color, m Move) {
	king := GetPiece(King, side)
	pos.boards[king] ^= bbForSquare(m.S1) | bbForSquare(m.S2)

	var homeRank Rank
	if side == White {
		homeRank = Rank1
	} else {
		homeRank = Rank8
	}
	rook := GetPiece(Rook, side)
	if m.HasTag(KingSideCastle) {
		from, to := NewSquare(FileH, homeRank), NewSquare(FileF, homeRank)
		pos.boards[rook] ^= bbForSquare(from) | bbForSquare(to)
	} else {
		from, to := NewSquare(FileA, homeRank), NewSquare(FileD, homeRank)
		pos.boards[rook] ^= bbForSquare(from) | bbForSquare(to)
	}
}

// updateCastleRightsForMove clears rights per spec.md §4.7 step 2: a king
// move loses both rights for its color; a rook leaving its home square, or
// a capture landing on a rook's home square, loses the corresponding
// right. Per spec.md §9's Design Note, rights are cleared unconditionally
// on these events — never gated behind a test of the rights bits
// themselves (the inverted-condition bug one source draft contained).
func (pos *Position) updateCastleRightsForMove(m Move) {
	switch m.Piece {
	case WhiteKing:
		pos.castleRights &^= castleWK | castleWQ
	case BlackKing:
		pos.castleRights &^= castleBK | castleBQ
	}
	pos.clearRightsForSquare(m.S1)
	pos.clearRightsForSquare(m.S2)
}

func (pos *Position) clearRightsForSquare(sq Square) {
	switch sq {
	case A1:
		pos.castleRights &^= castleWQ
	case H1:
		pos.castleRights &^= castleWK
	case A8:
		pos.castleRights &^= castleBQ
	case H8:
		pos.castleRights &^= castleBK
	}
}

// UnmakeMove reverses the most recent MakeMove call.
func (pos *Position) UnmakeMove() {
	n := len(pos.history)
	u := pos.history[n-1]
	pos.history = pos.history[:n-1]

	side := pos.sideToMove.Other()
	m := u.move

	if m.HasTag(KingSideCastle) || m.HasTag(QueenSideCastle) {
		pos.unmakeCastle(side, m)
	} else {
		if m.Promo != NoPromo {
			promoted := GetPiece(m.Promo.PieceType(), side)
			pos.boards[promoted] = ClearBit(pos.boards[promoted], m.S2)
			pos.boards[m.Piece] = SetBit(pos.boards[m.Piece], m.S1)
		} else {
			pos.boards[m.Piece] ^= bbForSquare(m.S1) | bbForSquare(m.S2)
		}
		if u.capturedPiece != NoPiece {
			pos.boards[u.capturedPiece] = SetBit(pos.boards[u.capturedPiece], u.capturedSquare)
		}
	}

	pos.castleRights = u.castleRights
	pos.enPassantTarget = u.enPassantTarget
	pos.halfMoveClock = u.halfMoveClock
	pos.checkMaskW = u.checkMaskW
	pos.checkMaskB = u.checkMaskB
	pos.pinsW = u.pinsW
	pos.pinsB = u.pinsB
	if side == Black {
		pos.fullMoveNumber--
	}
	pos.sideToMove = side
	pos.recomputeOccupancies()
}

func (pos *Position) unmakeCastle(side Color, m Move) {
	king := GetPiece(King, side)
	pos.boards[king] ^= bbForSquare(m.S1) | bbForSquare(m.S2)

	var homeRank Rank
	if side == White {
		homeRank = Rank1
	} else {
		homeRank = Rank8
	}
	rook := GetPiece(Rook, side)
	if m.HasTag(KingSideCastle) {
		from, to := NewSquare(FileH, homeRank), NewSquare(FileF, homeRank)
		pos.boards[rook] ^= bbForSquare(from) | bbForSquare(to)
	} else {
		from, to := NewSquare(FileA, homeRank), NewSquare(FileD, homeRank)
		pos.boards[rook] ^= bbForSquare(from) | bbForSquare(to)
	}
}
