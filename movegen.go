package chess

// Pseudo-legal move generation (C8) and the filter / legality stage (C9).
// Grounded on barakmich-chess engine.go's standardMoves/castleMoves, but
// restructured from "generate, apply, simulate, test for check" into the
// mask-intersection scheme spec.md §4.5/§4.6 specifies: every pseudo-legal
// move is tested against a precomputed filter mask instead of being played
// out on a scratch board.

// GenerateMoves returns every legal move for the side to move.
func GenerateMoves(pos *Position) []Move {
	side := pos.sideToMove
	check := pos.checkMask(side)

	moves := make([]Move, 0, 32)
	moves = genKingMoves(pos, side, moves)

	if doubleCheck(check) {
		return moves
	}

	moves = genKnightMoves(pos, side, check, moves)
	moves = genBishopMoves(pos, side, check, moves)
	moves = genRookMoves(pos, side, check, moves)
	moves = genQueenMoves(pos, side, check, moves)
	moves = genPawnMoves(pos, side, check, moves)
	moves = genCastles(pos, side, moves)
	return moves
}

// filterMask computes, per spec.md §4.6, the mask a non-king move's target
// bit must intersect to be legal.
func filterMask(pos *Position, side Color, check bitboard, s1, s2 Square, enPassant bool) bitboard {
	if ray, pinned := pos.pinRayFor(side, s1); pinned {
		if check == checkMaskAll {
			return ray
		}
		return ray & check
	}
	if check == checkMaskAll {
		return bbForSquare(s2)
	}
	if enPassant {
		capturedSq := enPassantCapturedSquare(side, s2)
		if bbForSquare(capturedSq)&check != 0 {
			return bbForSquare(s2)
		}
		return NoBits
	}
	return check
}

func enPassantCapturedSquare(side Color, target Square) Square {
	if side == White {
		return target - 8
	}
	return target + 8
}

func emit(moves []Move, side Color, piece Piece, s1, s2 Square, tags MoveTag, promo PromoType) []Move {
	return append(moves, Move{Side: side, Piece: piece, S1: s1, S2: s2, Tags: tags, Promo: promo})
}

func leaperTargets(pos *Position, side Color, piece Piece, table [64]bitboard, check bitboard, moves []Move) []Move {
	friendly := pos.occupancyOf(side)
	enemy := pos.occupancyOf(side.Other())
	for _, from := range pos.board(piece).Squares() {
		targets := table[from] &^ friendly
		for _, to := range targets.Squares() {
			f := filterMask(pos, side, check, from, to, false)
			if bbForSquare(to)&f == 0 {
				continue
			}
			tags := MoveTag(0)
			if bbForSquare(to)&enemy != 0 {
				tags |= Capture
			}
			moves = emit(moves, side, piece, from, to, tags, NoPromo)
		}
	}
	return moves
}

func sliderTargets(pos *Position, side Color, piece Piece, attack func(Square, bitboard) bitboard, check bitboard, moves []Move) []Move {
	friendly := pos.occupancyOf(side)
	enemy := pos.occupancyOf(side.Other())
	for _, from := range pos.board(piece).Squares() {
		occWithoutSelf := pos.allPieces &^ bbForSquare(from)
		targets := attack(from, occWithoutSelf) &^ friendly
		for _, to := range targets.Squares() {
			f := filterMask(pos, side, check, from, to, false)
			if bbForSquare(to)&f == 0 {
				continue
			}
			tags := MoveTag(0)
			if bbForSquare(to)&enemy != 0 {
				tags |= Capture
			}
			moves = emit(moves, side, piece, from, to, tags, NoPromo)
		}
	}
	return moves
}

func genKnightMoves(pos *Position, side Color, check bitboard, moves []Move) []Move {
	return leaperTargets(pos, side, GetPiece(Knight, side), knightMoves, check, moves)
}

func genBishopMoves(pos *Position, side Color, check bitboard, moves []Move) []Move {
	return sliderTargets(pos, side, GetPiece(Bishop, side), BishopAttacks, check, moves)
}

func genRookMoves(pos *Position, side Color, check bitboard, moves []Move) []Move {
	return sliderTargets(pos, side, GetPiece(Rook, side), RookAttacks, check, moves)
}

func genQueenMoves(pos *Position, side Color, check bitboard, moves []Move) []Move {
	return sliderTargets(pos, side, GetPiece(Queen, side), QueenAttacks, check, moves)
}

func genKingMoves(pos *Position, side Color, moves []Move) []Move {
	friendly := pos.occupancyOf(side)
	enemy := side.Other()
	piece := GetPiece(King, side)
	from := pos.kingSquare(side)
	enemyAttacks := AllAttackedSquares(pos, enemy, from)
	targets := kingMoves[from] &^ friendly &^ enemyAttacks

	enemyOcc := pos.occupancyOf(enemy)
	for _, to := range targets.Squares() {
		tags := MoveTag(0)
		if bbForSquare(to)&enemyOcc != 0 {
			tags |= Capture
		}
		moves = emit(moves, side, piece, from, to, tags, NoPromo)
	}
	return moves
}

var promoPieces = [4]PromoType{PromoQueen, PromoRook, PromoBishop, PromoKnight}

func genPawnMoves(pos *Position, side Color, check bitboard, moves []Move) []Move {
	piece := GetPiece(Pawn, side)
	enemy := side.Other()
	enemyOcc := pos.occupancyOf(enemy)

	var captureTable [64]bitboard
	var promoRank, preRank, startRank Rank
	if side == White {
		captureTable = whitePawnCaps
		promoRank, preRank, startRank = Rank8, Rank7, Rank2
	} else {
		captureTable = blackPawnCaps
		promoRank, preRank, startRank = Rank1, Rank2, Rank7
	}

	for _, from := range pos.board(piece).Squares() {
		rank := from.Rank()

		if rank != preRank {
			single := onePawnStep(side, from)
			if single != NoSquare && !pos.allPieces.Occupied(single) {
				if f := filterMask(pos, side, check, from, single, false); bbForSquare(single)&f != 0 {
					moves = emit(moves, side, piece, from, single, 0, NoPromo)
				}
				if rank == startRank {
					double := onePawnStep(side, single)
					if double != NoSquare && !pos.allPieces.Occupied(double) {
						if f := filterMask(pos, side, check, from, double, false); bbForSquare(double)&f != 0 {
							moves = emit(moves, side, piece, from, double, 0, NoPromo)
						}
					}
				}
			}
		}

		captures := captureTable[from] & enemyOcc
		for _, to := range captures.Squares() {
			f := filterMask(pos, side, check, from, to, false)
			if bbForSquare(to)&f == 0 {
				continue
			}
			if to.Rank() == promoRank {
				for _, pr := range promoPieces {
					moves = emit(moves, side, piece, from, to, Capture, pr)
				}
			} else {
				moves = emit(moves, side, piece, from, to, Capture, NoPromo)
			}
		}

		if rank == preRank {
			to := onePawnStep(side, from)
			if to != NoSquare && !pos.allPieces.Occupied(to) {
				f := filterMask(pos, side, check, from, to, false)
				if bbForSquare(to)&f != 0 {
					for _, pr := range promoPieces {
						moves = emit(moves, side, piece, from, to, 0, pr)
					}
				}
			}
		}

		if pos.enPassantTarget != NoSquare {
			if captureTable[from]&bbForSquare(pos.enPassantTarget) != 0 {
				to := pos.enPassantTarget
				f := filterMask(pos, side, check, from, to, true)
				if bbForSquare(to)&f != 0 {
					moves = emit(moves, side, piece, from, to, Capture|EnPassant, NoPromo)
				}
			}
		}
	}
	return moves
}

func onePawnStep(side Color, sq Square) Square {
	if side == White {
		if sq.Rank() == Rank8 {
			return NoSquare
		}
		return NewSquare(sq.File(), sq.Rank()+1)
	}
	if sq.Rank() == Rank1 {
		return NoSquare
	}
	return NewSquare(sq.File(), sq.Rank()-1)
}

func genCastles(pos *Position, side Color, moves []Move) []Move {
	if pos.InCheck() {
		return moves
	}
	enemy := side.Other()
	occ := pos.allPieces

	var homeRank Rank
	var kingBit, queenBit castleRight
	if side == White {
		homeRank = Rank1
		kingBit, queenBit = castleWK, castleWQ
	} else {
		homeRank = Rank8
		kingBit, queenBit = castleBK, castleBQ
	}

	kingFrom := NewSquare(FileE, homeRank)
	if pos.kingSquare(side) != kingFrom {
		return moves
	}

	if pos.castleRights&kingBit != 0 {
		fSq, gSq := NewSquare(FileF, homeRank), NewSquare(FileG, homeRank)
		if !occ.Occupied(fSq) && !occ.Occupied(gSq) &&
			!IsAttackedBy(pos, kingFrom, enemy, NoSquare) &&
			!IsAttackedBy(pos, fSq, enemy, NoSquare) &&
			!IsAttackedBy(pos, gSq, enemy, NoSquare) {
			moves = emit(moves, side, GetPiece(King, side), kingFrom, gSq, KingSideCastle, NoPromo)
		}
	}

	if pos.castleRights&queenBit != 0 {
		dSq, cSq, bSq := NewSquare(FileD, homeRank), NewSquare(FileC, homeRank), NewSquare(FileB, homeRank)
		if !occ.Occupied(dSq) && !occ.Occupied(cSq) && !occ.Occupied(bSq) &&
			!IsAttackedBy(pos, kingFrom, enemy, NoSquare) &&
			!IsAttackedBy(pos, dSq, enemy, NoSquare) &&
			!IsAttackedBy(pos, cSq, enemy, NoSquare) {
			moves = emit(moves, side, GetPiece(King, side), kingFrom, cSq, QueenSideCastle, NoPromo)
		}
	}

	return moves
}
